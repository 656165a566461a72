package fetch

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

func TestRawItemFrom(t *testing.T) {
	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	t.Run("dc:creatorは連結される", func(t *testing.T) {
		item := &gofeed.Item{
			Title: "t",
			DublinCoreExt: &ext.DublinCoreExtension{
				Creator: []string{"Jane Doe", "John Smith"},
			},
		}
		raw := rawItemFrom(item)
		if raw.Creator != "Jane Doe, John Smith" {
			t.Errorf("Creator = %q", raw.Creator)
		}
	})

	t.Run("author要素からの抽出", func(t *testing.T) {
		item := &gofeed.Item{Author: &gofeed.Person{Name: "Alice Wong"}}
		if raw := rawItemFrom(item); raw.Author != "Alice Wong" {
			t.Errorf("Author = %q", raw.Author)
		}
	})

	t.Run("authorsリストへのフォールバック", func(t *testing.T) {
		item := &gofeed.Item{Authors: []*gofeed.Person{{Name: "Ken Sato"}}}
		if raw := rawItemFrom(item); raw.Author != "Ken Sato" {
			t.Errorf("Author = %q", raw.Author)
		}
	})

	t.Run("prism:doi拡張の取り出し", func(t *testing.T) {
		item := &gofeed.Item{
			Extensions: ext.Extensions{
				"prism": {
					"doi": []ext.Extension{{Name: "doi", Value: " 10.1234/abcd.5678 "}},
				},
			},
		}
		if raw := rawItemFrom(item); raw.DOI != "10.1234/abcd.5678" {
			t.Errorf("DOI = %q", raw.DOI)
		}
	})

	t.Run("prism拡張が無ければDOIは空", func(t *testing.T) {
		if raw := rawItemFrom(&gofeed.Item{}); raw.DOI != "" {
			t.Errorf("DOI = %q, want 空", raw.DOI)
		}
	})

	t.Run("公開日時はpubDateが最優先", func(t *testing.T) {
		item := &gofeed.Item{
			PublishedParsed: &published,
			UpdatedParsed:   &updated,
		}
		raw := rawItemFrom(item)
		if raw.Published == nil || !raw.Published.Equal(published) {
			t.Errorf("Published = %v, want %v", raw.Published, published)
		}
	})

	t.Run("pubDateが無ければupdated", func(t *testing.T) {
		item := &gofeed.Item{UpdatedParsed: &updated}
		raw := rawItemFrom(item)
		if raw.Published == nil || !raw.Published.Equal(updated) {
			t.Errorf("Published = %v, want %v", raw.Published, updated)
		}
	})

	t.Run("dc:dateへのフォールバック", func(t *testing.T) {
		item := &gofeed.Item{
			DublinCoreExt: &ext.DublinCoreExtension{Date: []string{"2026-08-20"}},
		}
		raw := rawItemFrom(item)
		want := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		if raw.Published == nil || !raw.Published.Equal(want) {
			t.Errorf("Published = %v, want %v", raw.Published, want)
		}
	})

	t.Run("日付情報が無ければnil", func(t *testing.T) {
		if raw := rawItemFrom(&gofeed.Item{}); raw.Published != nil {
			t.Errorf("Published = %v, want nil", raw.Published)
		}
	})
}

func TestParseDCDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339",
			input:  "2026-08-20T10:30:00Z",
			want:   time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "RFC1123Z",
			input:  "Thu, 20 Aug 2026 10:30:00 +0000",
			want:   time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "日付のみ",
			input:  "2026-08-20",
			want:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "前後の空白はトリム",
			input:  "  2026-08-20  ",
			want:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "解析不能な文字列",
			input:  "next tuesday",
			wantOK: false,
		},
		{
			name:   "空文字列",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDCDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseDCDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseDCDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
