// Package normalize はフィードアイテムのフィールド正規化を提供する。
//
// 各関数はソースごとにスキーマの異なる生アイテムから正準フィールドを
// 抽出する純粋関数で、常に利用可能なデフォルト値を返す（失敗しない）。
package normalize

import (
	"regexp"
	"strings"
)

// tagPattern はHTMLタグにマッチするパターン。
// スキーマ検証は行わず、山括弧で囲まれた範囲を無差別に除去する。
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// spacePattern は連続する空白文字にマッチするパターン。
var spacePattern = regexp.MustCompile(`\s+`)

// entityReplacer は固定の名前付きエンティティをデコードする。
// ここに無いエンティティはそのまま残す。
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// HTMLToText はHTML断片をプレーンテキストに変換する。
// タグ除去 → エンティティデコード → 空白正規化 → トリム の順に適用する。
// 意図的に損失のある変換で、HTMLとしての忠実性は保証しない。
func HTMLToText(s string) string {
	if s == "" {
		return ""
	}
	s = tagPattern.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
