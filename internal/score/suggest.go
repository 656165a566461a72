package score

import "github.com/sciencebrief/sciencebrief/internal/model"

// maxSuggestions は売り込み先候補の上限。
const maxSuggestions = 5

// suggestionRule はキーワード集合から媒体への対応。
type suggestionRule struct {
	keywords []string
	outlets  []string
}

// topicRules はトピック別の媒体対応表。
// 追加順が切り詰め時の優先順になる（スコア閾値による一般媒体が先、
// トピック特化媒体が後）。
var topicRules = []suggestionRule{
	{
		keywords: []string{"therapy", "treatment", "depression", "anxiety", "clinical"},
		outlets:  []string{"STAT News", "Psychology Today"},
	},
	{
		keywords: []string{"music", "rhythm", "auditory", "pitch"},
		outlets:  []string{"The Conversation", "Psyche"},
	},
	{
		keywords: []string{"infant", "child", "development"},
		outlets:  []string{"Scientific American Mind", "Quartz"},
	},
	{
		keywords: []string{"culture", "social"},
		outlets:  []string{"Nautilus", "Aeon"},
	},
	{
		keywords: []string{"brain", "neural", "cortex", "consciousness"},
		outlets:  []string{"Quanta Magazine", "Discover"},
	},
}

// SuggestPublications は記事の売り込み先候補の媒体名を返す。
// スコア閾値による一般媒体 → トピック特化媒体の順に重複を除いて蓄積し、
// maxSuggestions件に切り詰める。
func SuggestPublications(article model.Article, pitchScore int) []string {
	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)

	add := func(outlets ...string) {
		for _, o := range outlets {
			if seen[o] {
				continue
			}
			seen[o] = true
			suggestions = append(suggestions, o)
		}
	}

	if pitchScore >= 85 {
		add("The Atlantic", "Wired")
	}
	if pitchScore >= 75 {
		add("Scientific American", "Aeon")
	}

	for _, rule := range topicRules {
		if matchesAny(article.Keywords, rule.keywords) {
			add(rule.outlets...)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// matchesAny はキーワード集合と対象集合に共通要素があるかを判定する。
func matchesAny(keywords, targets []string) bool {
	for _, t := range targets {
		if hasKeyword(keywords, t) {
			return true
		}
	}
	return false
}
