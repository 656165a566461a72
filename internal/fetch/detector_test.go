package fetch

import "testing"

func TestDiscoverFeedLinks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		baseURL  string
		wantURLs []string
	}{
		{
			name: "headのalternateリンクを検出",
			html: `<html><head>
<link rel="alternate" type="application/rss+xml" href="https://example.com/feed.rss">
<link rel="alternate" type="application/atom+xml" href="https://example.com/feed.atom">
</head><body></body></html>`,
			baseURL:  "https://example.com/",
			wantURLs: []string{"https://example.com/feed.rss", "https://example.com/feed.atom"},
		},
		{
			name: "相対URLはベースURLで解決",
			html: `<html><head>
<link rel="alternate" type="application/rss+xml" href="/rss/current.xml">
</head></html>`,
			baseURL:  "https://journal.example.com/home",
			wantURLs: []string{"https://journal.example.com/rss/current.xml"},
		},
		{
			name: "stylesheetリンクは対象外",
			html: `<html><head>
<link rel="stylesheet" type="text/css" href="/style.css">
<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head></html>`,
			baseURL:  "https://example.com/",
			wantURLs: []string{"https://example.com/feed.xml"},
		},
		{
			name: "type属性がフィード系でなければ対象外",
			html: `<html><head>
<link rel="alternate" type="text/html" href="/mobile">
</head></html>`,
			baseURL:  "https://example.com/",
			wantURLs: nil,
		},
		{
			name: "body内のlinkは無視される",
			html: `<html><head><title>t</title></head><body>
<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</body></html>`,
			baseURL:  "https://example.com/",
			wantURLs: nil,
		},
		{
			name:     "linkの無いHTML",
			html:     `<html><head><title>nothing</title></head><body></body></html>`,
			baseURL:  "https://example.com/",
			wantURLs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := discoverFeedLinks([]byte(tt.html), tt.baseURL)
			if len(got) != len(tt.wantURLs) {
				t.Fatalf("候補数 = %d, want %d (%+v)", len(got), len(tt.wantURLs), got)
			}
			for i, want := range tt.wantURLs {
				if got[i].url != want {
					t.Errorf("candidates[%d].url = %q, want %q", i, got[i].url, want)
				}
			}
		})
	}
}

func TestSelectCandidate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []feedCandidate
		inputURL   string
		want       string
	}{
		{
			name: "同一ホストを優先",
			candidates: []feedCandidate{
				{url: "https://cdn.example.net/feed.atom", feedType: "atom"},
				{url: "https://journal.example.com/feed.rss", feedType: "rss"},
			},
			inputURL: "https://journal.example.com/home",
			want:     "https://journal.example.com/feed.rss",
		},
		{
			name: "同点ならAtomを優先",
			candidates: []feedCandidate{
				{url: "https://example.com/feed.rss", feedType: "rss"},
				{url: "https://example.com/feed.atom", feedType: "atom"},
			},
			inputURL: "https://example.com/",
			want:     "https://example.com/feed.atom",
		},
		{
			name: "完全に同点なら先頭",
			candidates: []feedCandidate{
				{url: "https://example.com/a.rss", feedType: "rss"},
				{url: "https://example.com/b.rss", feedType: "rss"},
			},
			inputURL: "https://example.com/",
			want:     "https://example.com/a.rss",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectCandidate(tt.candidates, tt.inputURL); got.url != tt.want {
				t.Errorf("selectCandidate() = %q, want %q", got.url, tt.want)
			}
		})
	}
}
