package normalize

import "strings"

// maxKeywords は1記事あたりのキーワード上限。
const maxKeywords = 6

// vocabulary は神経科学・心理学・音楽認知分野の統制語彙。
// 宣言順がそのまま切り詰め時の優先順になる（頻度順ではない）。
var vocabulary = []string{
	"neural", "brain", "cognition", "cognitive", "memory", "perception",
	"attention", "learning", "behavior", "behaviour", "emotion", "social",
	"music", "auditory", "visual", "motor", "language", "speech",
	"development", "aging", "plasticity", "therapy", "treatment",
	"depression", "anxiety", "disorder", "clinical", "fmri", "eeg",
	"rhythm", "pitch", "temporal", "spatial", "sensory", "cortex",
	"hippocampus", "prefrontal", "consciousness", "decision", "reward",
	"infant", "child", "adult", "culture", "cross-cultural",
}

// ExtractKeywords はタイトルと説明文から統制語彙にマッチするキーワードを
// 抽出する。小文字化した連結テキストへの部分一致で判定し、語彙の宣言順に
// 最大maxKeywords件まで収集する。
func ExtractKeywords(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	found := make([]string, 0, maxKeywords)
	for _, term := range vocabulary {
		if !strings.Contains(text, term) {
			continue
		}
		found = append(found, term)
		if len(found) == maxKeywords {
			break
		}
	}
	return found
}
