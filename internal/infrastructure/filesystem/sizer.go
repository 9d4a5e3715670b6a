// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectorySizer はディレクトリ配下のサイズ集計機能を提供するインターフェースです
type DirectorySizer interface {
	DirectoryValidator
	Measure(path string) (uint64, error)
}

// Sizer はディレクトリ配下の通常ファイルの合計サイズを計測する構造体です
type Sizer struct{}

// NewSizer は新しい Sizer インスタンスを作成します
func NewSizer() *Sizer {
	return &Sizer{}
}

// ValidateDirectoryPath はパスが存在する有効なディレクトリであることを確認します
func (s *Sizer) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	return nil
}

// Measure は path 配下を深さ優先で走査し、通常ファイルの合計バイト数を返します。
// ディレクトリ・シンボリックリンク・デバイスファイル等は合計へ直接は寄与しません。
// 走査を継続できないエラーが発生した場合は計測全体を打ち切り、
// 部分的な合計値を返さずにエラーのみを返します。
func (s *Sizer) Measure(root string) (uint64, error) {
	var total uint64

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("ディレクトリ '%s' の走査に失敗しました: %w", root, err)
	}

	return total, nil
}
