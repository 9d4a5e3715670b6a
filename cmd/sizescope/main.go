// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"fmt"
	"os"

	"SizeScope/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}
