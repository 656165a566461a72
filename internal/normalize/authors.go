package normalize

import (
	"regexp"
	"strings"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

// UnknownAuthors はどの抽出戦略もマッチしなかった場合のフォールバック値。
const UnknownAuthors = "Unknown authors"

// bylinePattern は説明文中の "by NAME [and NAME]" 形式にマッチするパターン。
// "by" は大文字小文字を問わないが、名前部分は大文字始まりのみ受け付ける。
var bylinePattern = regexp.MustCompile(
	`\b[Bb]y\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*(?:\s+(?:and|&)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)*)`,
)

// authorStrategy は著者抽出戦略。抽出できた場合に値とtrueを返す。
type authorStrategy func(item model.RawItem) (string, bool)

// authorStrategies は優先順の抽出戦略リスト。先勝ちで、複数シグナルの
// マージは行わない。順序: dc:creator → author要素 → 説明文のbyline。
var authorStrategies = []authorStrategy{
	authorFromCreator,
	authorFromAuthorField,
	authorFromByline,
}

// ExtractAuthors はアイテムから著者表記を抽出する。
// どの戦略もマッチしない場合はUnknownAuthorsを返す。
func ExtractAuthors(item model.RawItem) string {
	for _, strategy := range authorStrategies {
		if v, ok := strategy(item); ok {
			return v
		}
	}
	return UnknownAuthors
}

// authorFromCreator はdc:creator要素から抽出する。
func authorFromCreator(item model.RawItem) (string, bool) {
	v := strings.TrimSpace(item.Creator)
	return v, v != ""
}

// authorFromAuthorField はauthor要素から抽出する。
func authorFromAuthorField(item model.RawItem) (string, bool) {
	v := strings.TrimSpace(item.Author)
	return v, v != ""
}

// authorFromByline は説明文（無ければ本文）のbylineパターンから抽出する。
func authorFromByline(item model.RawItem) (string, bool) {
	text := item.Description
	if text == "" {
		text = item.Content
	}
	m := bylinePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
