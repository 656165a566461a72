package fetch

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

// dcDateLayouts はdc:date文字列の解析に試行するレイアウト。
var dcDateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// rawItemFrom はgofeedのアイテムをソース固有の揺れを保持したまま
// model.RawItemに変換する。dc:*やprism:*の拡張要素もここで取り出す。
func rawItemFrom(item *gofeed.Item) model.RawItem {
	raw := model.RawItem{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Content:     item.Content,
	}

	// dc:creator
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		raw.Creator = strings.Join(item.DublinCoreExt.Creator, ", ")
	}

	// author要素
	if item.Author != nil && item.Author.Name != "" {
		raw.Author = item.Author.Name
	}
	if raw.Author == "" && len(item.Authors) > 0 && item.Authors[0] != nil {
		raw.Author = item.Authors[0].Name
	}

	// prism:doi
	raw.DOI = prismDOI(item)

	// 公開日時: pubDate → updated → dc:date の順で解決する
	if item.PublishedParsed != nil {
		t := *item.PublishedParsed
		raw.Published = &t
	} else if item.UpdatedParsed != nil {
		t := *item.UpdatedParsed
		raw.Published = &t
	} else if item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
		if t, ok := parseDCDate(item.DublinCoreExt.Date[0]); ok {
			raw.Published = &t
		}
	}

	return raw
}

// prismDOI はprism名前空間のdoi要素の値を取り出す。
func prismDOI(item *gofeed.Item) string {
	prism, ok := item.Extensions["prism"]
	if !ok {
		return ""
	}
	dois, ok := prism["doi"]
	if !ok || len(dois) == 0 {
		return ""
	}
	return strings.TrimSpace(dois[0].Value)
}

// parseDCDate はdc:date文字列の解析を試みる。
func parseDCDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dcDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
