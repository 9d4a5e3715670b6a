// package model はドメインモデルを定義します
package model

import "strings"

// Candidate は計測対象となるルート直下のディレクトリを表します
type Candidate struct {
	// Name はディレクトリ名を表します
	Name string
	// Path はディレクトリのフルパスを表します
	Path string
}

// Hidden は隠しディレクトリ（名前が . で始まる）かどうかを返します
func (c Candidate) Hidden() bool {
	return strings.HasPrefix(c.Name, ".")
}

// SizeResult は1つの Candidate に対するサイズ計測の結果を表します
type SizeResult struct {
	// Candidate は計測対象のディレクトリです
	Candidate Candidate
	// Bytes は配下の通常ファイルの合計バイト数を表します
	Bytes uint64
	// Err は走査が継続不能になった場合のエラーを保持します
	Err error
}

// Failed は計測が失敗した（Bytes が信頼できない）かどうかを返します
func (r SizeResult) Failed() bool {
	return r.Err != nil
}
