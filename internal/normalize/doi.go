package normalize

import (
	"regexp"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

// doiLinkPattern はURL中のDOI（10. + 4桁以上の数字 + / + 非空白列）にマッチする。
var doiLinkPattern = regexp.MustCompile(`10\.\d{4,}/\S+`)

// doiDescPattern は説明文中の "doi:" 表記に続くDOIにマッチする。
var doiDescPattern = regexp.MustCompile(`(?i)doi[:\s]+(10\.\d{4,}/[^\s<]+)`)

// ExtractDOI はアイテムからDOIを抽出する。
// 明示フィールド → リンク中のパターン → 説明文中のパターン の順に試し、
// どれもマッチしない場合は空文字列を返す（エラーではなく不在）。
func ExtractDOI(item model.RawItem) string {
	if item.DOI != "" {
		return item.DOI
	}
	if m := doiLinkPattern.FindString(item.Link); m != "" {
		return m
	}
	if m := doiDescPattern.FindStringSubmatch(item.Description); m != nil {
		return m[1]
	}
	return ""
}
