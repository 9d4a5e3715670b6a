// Package logging はロギング機能を提供します
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// TimestampLayout はログの時刻フォーマットを表します
const TimestampLayout = "2006-01-02 15:04:05"

// Open は指定されたパスのログファイルを追記モードで開き、
// そのファイルへ書き込むロガーとファイルハンドルを返します。
// ファイルは呼び出し側がクローズする責任を持ちます
func Open(path string) (zerolog.Logger, *os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("ログファイル '%s' を開けません: %w", path, err)
	}

	return New(file), file, nil
}

// New は `2006-01-02 15:04:05 - LEVEL: メッセージ` 形式で
// 1行ずつ書き込むロガーを作成します
func New(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = TimestampLayout

	output := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("%s -", i)
		},
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%s:", i))
		},
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
