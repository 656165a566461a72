package security

import (
	"strings"
	"testing"
)

func TestContentSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "許可タグは保持される",
			input: "<p>A <strong>major</strong> finding in <em>memory</em> research.</p>",
			want:  "<p>A <strong>major</strong> finding in <em>memory</em> research.</p>",
		},
		{
			name:  "scriptタグは中身ごと除去",
			input: `<p>safe</p><script>alert("x")</script>`,
			want:  "<p>safe</p>",
		},
		{
			name:  "許可外タグはタグのみ除去してテキストを残す",
			input: "<div>plain text</div>",
			want:  "plain text",
		},
		{
			name:  "イベント属性は除去",
			input: `<p onclick="steal()">text</p>`,
			want:  "<p>text</p>",
		},
		{
			name:  "リストは保持される",
			input: "<ul><li>one</li><li>two</li></ul>",
			want:  "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name:  "空文字列",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizer.Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContentSanitizer_Images(t *testing.T) {
	sanitizer := NewContentSanitizer()

	t.Run("httpsのimgは保持", func(t *testing.T) {
		got := sanitizer.Sanitize(`<img src="https://example.com/fig1.png" alt="figure"/>`)
		if !strings.Contains(got, `src="https://example.com/fig1.png"`) {
			t.Errorf("httpsのsrc属性が失われた: %q", got)
		}
		if !strings.Contains(got, `alt="figure"`) {
			t.Errorf("alt属性が失われた: %q", got)
		}
	})

	t.Run("httpのimgは除去", func(t *testing.T) {
		got := sanitizer.Sanitize(`<p>text</p><img src="http://example.com/fig1.png"/>`)
		if strings.Contains(got, "http://example.com") {
			t.Errorf("httpのsrcが残っている: %q", got)
		}
	})
}

func TestContentSanitizer_Idempotent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := `<p>A study of <strong>auditory</strong> learning.</p><script>bad()</script><div>note</div>`
	once := sanitizer.Sanitize(input)
	twice := sanitizer.Sanitize(once)
	if once != twice {
		t.Errorf("サニタイズが冪等でない: 1回目 %q, 2回目 %q", once, twice)
	}
}
