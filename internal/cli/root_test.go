package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want Paths
	}{
		{
			name: "引数なしはカレントディレクトリと既定のログファイル",
			args: nil,
			want: Paths{Root: wd, LogFile: DefaultLogFileName},
		},
		{
			name: "引数1つはディレクトリのみ指定",
			args: []string{"/data"},
			want: Paths{Root: "/data", LogFile: DefaultLogFileName},
		},
		{
			name: "引数2つは両方指定",
			args: []string{"/data", "/var/log/scan.log"},
			want: Paths{Root: "/data", LogFile: "/var/log/scan.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePaths(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_InvalidRoot(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "error_log.txt")

	var out strings.Builder
	err := run(&out, []string{filepath.Join(tempDir, "notexist"), logPath}, "")

	// 不正なルートはエラー終了し、レポート行は1行も出力されない
	require.Error(t, err)
	assert.Empty(t, out.String())

	// ログファイルには ERROR エントリが残る
	content, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "ERROR")
	assert.Contains(t, string(content), "notexist")
}

func TestRun_InvalidMinSize(t *testing.T) {
	tempDir := t.TempDir()

	var out strings.Builder
	err := run(&out, []string{tempDir, filepath.Join(tempDir, "error_log.txt")}, "lots")

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_ReportsSubdirectories(t *testing.T) {
	tempDir := t.TempDir()
	sub := filepath.Join(tempDir, "docs")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.txt"), make([]byte, 1536), 0644))

	logPath := filepath.Join(t.TempDir(), "error_log.txt")

	var out strings.Builder
	require.NoError(t, run(&out, []string{tempDir, logPath}, ""))

	assert.Contains(t, out.String(), "docs")
	assert.Contains(t, out.String(), "1.50 KB")
}

func TestNewRootCmd_TooManyArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"a", "b", "c"})

	var stderr strings.Builder
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)

	err := cmd.Execute()

	// 引数が多すぎる場合は使用方法を表示してエラー終了する
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage:")
}
