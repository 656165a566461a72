package normalize

import "testing"

func TestHTMLToText_StripsTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "シンプルなタグ除去",
			input: "<p>Hello world</p>",
			want:  "Hello world",
		},
		{
			name:  "ネストしたタグ",
			input: "<div><strong>Bold</strong> and <em>italic</em></div>",
			want:  "Bold and italic",
		},
		{
			name:  "属性付きタグ",
			input: `<a href="https://example.com" target="_blank">link text</a>`,
			want:  "link text",
		},
		{
			name:  "タグのみの文字列は空になる",
			input: "<div><span></span></div>",
			want:  "",
		},
		{
			name:  "タグなしの文字列はそのまま",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "空文字列",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.input); got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLToText_DecodesFixedEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "アンパサンド",
			input: "Tom &amp; Jerry",
			want:  "Tom & Jerry",
		},
		{
			name:  "山括弧のエンティティはデコード後も残る",
			input: "a &lt; b &gt; c",
			want:  "a < b > c",
		},
		{
			name:  "引用符",
			input: "&quot;quoted&quot; and &#39;single&#39;",
			want:  `"quoted" and 'single'`,
		},
		{
			name:  "nbspは空白になる",
			input: "a&nbsp;b",
			want:  "a b",
		},
		{
			name:  "未知のエンティティはそのまま残す",
			input: "&copy; 2026 &hellip;",
			want:  "&copy; 2026 &hellip;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.input); got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLToText_NormalizesWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "連続空白は1つに",
			input: "a   b\t\tc",
			want:  "a b c",
		},
		{
			name:  "改行も空白に正規化",
			input: "line one\n\nline two",
			want:  "line one line two",
		},
		{
			name:  "先頭末尾はトリム",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "タグ除去で生じた空白も正規化される",
			input: "<p>one</p><p>two</p>",
			want:  "one two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLToText(tt.input); got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
