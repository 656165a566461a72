package score

import (
	"reflect"
	"testing"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

func TestSuggestPublications(t *testing.T) {
	tests := []struct {
		name       string
		article    model.Article
		pitchScore int
		want       []string
	}{
		{
			name:       "低スコア・キーワード無しなら空",
			article:    model.Article{Keywords: []string{}},
			pitchScore: 50,
			want:       []string{},
		},
		{
			name:       "トピック特化媒体のみ",
			article:    model.Article{Keywords: []string{"music", "rhythm"}},
			pitchScore: 73,
			want:       []string{"The Conversation", "Psyche"},
		},
		{
			name:       "スコア75以上で一般媒体が先頭に来る",
			article:    model.Article{Keywords: []string{"music"}},
			pitchScore: 78,
			want:       []string{"Scientific American", "Aeon", "The Conversation", "Psyche"},
		},
		{
			name:       "スコア85以上でさらに上位媒体が加わり5件で切り詰め",
			article:    model.Article{Keywords: []string{"therapy", "music"}},
			pitchScore: 90,
			want:       []string{"The Atlantic", "Wired", "Scientific American", "Aeon", "STAT News"},
		},
		{
			name:       "重複する媒体は1回だけ",
			article:    model.Article{Keywords: []string{"culture"}},
			pitchScore: 80,
			// 閾値由来のAeonとcultural由来のAeonが重複する
			want: []string{"Scientific American", "Aeon", "Nautilus"},
		},
		{
			name:       "臨床系キーワード",
			article:    model.Article{Keywords: []string{"clinical"}},
			pitchScore: 60,
			want:       []string{"STAT News", "Psychology Today"},
		},
		{
			name:       "発達系キーワード",
			article:    model.Article{Keywords: []string{"infant", "development"}},
			pitchScore: 60,
			want:       []string{"Scientific American Mind", "Quartz"},
		},
		{
			name:       "神経系キーワード",
			article:    model.Article{Keywords: []string{"cortex"}},
			pitchScore: 60,
			want:       []string{"Quanta Magazine", "Discover"},
		},
		{
			name:       "複数トピックは対応表の宣言順に蓄積",
			article:    model.Article{Keywords: []string{"brain", "music"}},
			pitchScore: 60,
			want:       []string{"The Conversation", "Psyche", "Quanta Magazine", "Discover"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestPublications(tt.article, tt.pitchScore)
			if got == nil {
				t.Fatal("SuggestPublications() = nil, want non-nil slice")
			}
			if len(got) > 5 {
				t.Fatalf("候補が%d件、上限5件を超過", len(got))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestPublications() = %v, want %v", got, tt.want)
			}
		})
	}
}
