// Package report はディレクトリサイズのレポート生成機能を提供します
package report

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"SizeScope/internal/domain/model"
	"SizeScope/internal/infrastructure/filesystem"
	"SizeScope/internal/interface/console"
)

// ErrorLabel は計測に失敗したディレクトリのサイズ欄に表示する文字列です
const ErrorLabel = "Error"

// Reporter はルート直下の各ディレクトリのサイズを集計し、コンソールへ報告します
type Reporter struct {
	sizer   filesystem.DirectorySizer
	writer  *console.Writer
	logger  zerolog.Logger
	minSize uint64
}

// NewReporter は新しい Reporter インスタンスを作成します
func NewReporter(sizer filesystem.DirectorySizer, writer *console.Writer, logger zerolog.Logger) *Reporter {
	return &Reporter{
		sizer:  sizer,
		writer: writer,
		logger: logger,
	}
}

// SetMinSize は出力対象とする最小バイト数を設定します。
// 0 の場合はすべての計測結果を出力します
func (r *Reporter) SetMinSize(minSize uint64) {
	r.minSize = minSize
}

// Run はルートディレクトリ直下の隠しでないディレクトリを列挙し、
// それぞれのサイズを計測して1行ずつ報告します。
// 個々のディレクトリの計測失敗は記録のうえ処理を継続し、
// 列挙自体の失敗も記録のみで終了ステータスには影響しません
func (r *Reporter) Run(root string) error {
	entries, err := os.ReadDir(root)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		candidate := model.Candidate{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		}
		if candidate.Hidden() {
			continue
		}

		r.report(r.measure(candidate))
	}

	// 読み取れた分までの出力行はそのまま有効とする
	if err != nil {
		r.logger.Error().Msgf("ルートディレクトリ '%s' の列挙に失敗しました: %v", root, err)
	}

	return nil
}

func (r *Reporter) measure(candidate model.Candidate) model.SizeResult {
	r.logger.Info().Msgf("処理中のディレクトリ: %s", candidate.Path)

	bytes, err := r.sizer.Measure(candidate.Path)
	if err != nil {
		return model.SizeResult{Candidate: candidate, Err: err}
	}

	return model.SizeResult{Candidate: candidate, Bytes: bytes}
}

func (r *Reporter) report(result model.SizeResult) {
	if result.Failed() {
		r.logger.Error().Msgf("ディレクトリ '%s' のサイズ計測に失敗しました: %v", result.Candidate.Path, result.Err)
		r.writer.WriteLine(result.Candidate.Name, ErrorLabel)
		return
	}

	if r.minSize > 0 && result.Bytes < r.minSize {
		return
	}

	r.writer.WriteLine(result.Candidate.Name, HumanReadableSize(result.Bytes))
}
