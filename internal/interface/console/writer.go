// Package console は標準出力への整形出力機能を提供します
package console

import (
	"fmt"
	"io"
	"os"
)

const (
	// NameWidth はディレクトリ名フィールドの桁数です
	NameWidth = 30
	// SizeWidth はサイズフィールドの桁数です
	SizeWidth = 10
)

// Writer は固定幅のレポート行を書き出す構造体です
type Writer struct {
	out io.Writer
}

// NewWriter は新しい Writer インスタンスを作成します
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out}
}

// WriteLine はディレクトリ名とサイズ表記を左詰めの固定幅で1行出力します
func (w *Writer) WriteLine(name, size string) {
	fmt.Fprintf(w.out, "%-*s Size: %-*s\n", NameWidth, name, SizeWidth, size)
}
