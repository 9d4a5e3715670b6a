// Package cli はコマンドラインインターフェースを提供します
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"

	"SizeScope/internal/infrastructure/filesystem"
	"SizeScope/internal/infrastructure/logging"
	"SizeScope/internal/interface/console"
	"SizeScope/internal/usecase/report"
)

// DefaultLogFileName は引数でログファイルが指定されなかった場合の既定値です
const DefaultLogFileName = "error_log.txt"

// Paths は1回の実行で使用するルートディレクトリとログファイルのパスを保持します
type Paths struct {
	// Root は調査対象のルートディレクトリです
	Root string
	// LogFile はログの出力先ファイルです
	LogFile string
}

// ResolvePaths は位置引数から調査対象ディレクトリとログファイルのパスを決定します。
// 省略された引数にはカレントディレクトリと既定のログファイル名を使用します
func ResolvePaths(args []string) (Paths, error) {
	paths := Paths{LogFile: DefaultLogFileName}

	switch len(args) {
	case 0:
		wd, err := os.Getwd()
		if err != nil {
			return Paths{}, fmt.Errorf("カレントディレクトリを取得できません: %w", err)
		}
		paths.Root = wd
	case 1:
		paths.Root = args[0]
	default:
		paths.Root = args[0]
		paths.LogFile = args[1]
	}

	return paths, nil
}

// NewRootCmd はルートコマンドを作成します
func NewRootCmd() *cobra.Command {
	var minSize string

	cmd := &cobra.Command{
		Use:   "sizescope [directory] [logfile]",
		Short: "ルート直下の各ディレクトリの合計サイズを報告します",
		Long: `sizescope は指定されたディレクトリ直下の隠しでない各ディレクトリについて、
配下の通常ファイルの合計サイズを人間が読みやすい単位で標準出力へ報告します。
進行状況とエラーはログファイルへ追記されます。`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args, minSize)
		},
	}

	cmd.Flags().StringVar(&minSize, "min-size", "", "このサイズ未満のディレクトリを出力しない（例: 10MB）")

	return cmd
}

func run(out io.Writer, args []string, minSize string) error {
	paths, err := ResolvePaths(args)
	if err != nil {
		return err
	}

	var threshold datasize.ByteSize
	if minSize != "" {
		threshold, err = datasize.ParseString(minSize)
		if err != nil {
			return fmt.Errorf("--min-size の値 '%s' を解釈できません: %w", minSize, err)
		}
	}

	logger, logFile, err := logging.Open(paths.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sizer := filesystem.NewSizer()
	if err := sizer.ValidateDirectoryPath(paths.Root); err != nil {
		logger.Error().Msgf("不正なディレクトリパスです: %s: %v", paths.Root, err)
		return fmt.Errorf("不正なディレクトリパスです '%s': %w", paths.Root, err)
	}

	reporter := report.NewReporter(sizer, console.NewWriter(out), logger)
	reporter.SetMinSize(threshold.Bytes())

	return reporter.Run(paths.Root)
}

// Execute はルートコマンドを実行します
func Execute() error {
	return NewRootCmd().Execute()
}
