// Package score は記事のピッチスコア算出と売り込み先候補の提案を提供する。
//
// すべての関数は純粋・決定的で、同一の記事と基準時刻に対して常に
// 同一の結果を返す。
package score

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

const (
	baseScore = 50
	minScore  = 20
	maxScore  = 100

	highInterestBonus   = 8
	mediumInterestBonus = 4

	longTitleLength = 80
	longTitleBonus  = 5
	subtitleBonus   = 3
)

// highInterestKeywords は高関心キーワード集合。1件マッチごとに+8。
var highInterestKeywords = []string{
	"therapy", "treatment", "depression", "anxiety", "consciousness",
	"decision", "social", "development", "infant", "culture", "music",
	"plasticity",
}

// mediumInterestKeywords は中関心キーワード集合。1件マッチごとに+4。
// 高関心集合とは重複しないよう設計されている。
var mediumInterestKeywords = []string{
	"memory", "learning", "attention", "emotion", "perception",
	"cognition", "brain", "neural",
}

// PitchScore は記事の編集的関心度を20〜100の整数で見積もる。
// 基礎点50にキーワード加点・新しさ加点・タイトル形状加点を積み、
// [minScore, maxScore]にクランプする。nowは新しさ判定の基準時刻。
func PitchScore(article model.Article, now time.Time) int {
	s := baseScore

	for _, kw := range highInterestKeywords {
		if hasKeyword(article.Keywords, kw) {
			s += highInterestBonus
		}
	}
	for _, kw := range mediumInterestKeywords {
		if hasKeyword(article.Keywords, kw) {
			s += mediumInterestBonus
		}
	}

	// 新しさ加点。Dateはフェッチ時刻フォールバック込みの値をそのまま使う。
	days := now.Sub(article.Date).Hours() / 24
	switch {
	case days < 7:
		s += 15
	case days < 14:
		s += 10
	case days < 30:
		s += 5
	}

	// タイトル形状加点。長さと副題（コロン）は主題の深さの弱いシグナル。
	if utf8.RuneCountInString(article.Title) > longTitleLength {
		s += longTitleBonus
	}
	if strings.Contains(article.Title, ":") {
		s += subtitleBonus
	}

	if s > maxScore {
		s = maxScore
	}
	if s < minScore {
		s = minScore
	}
	return s
}

// Apply は記事集合の各記事にピッチスコアと売り込み先候補を設定する。
// 正規化後に1回だけ呼ばれることを想定する。
func Apply(articles []model.Article, now time.Time) {
	for i := range articles {
		s := PitchScore(articles[i], now)
		articles[i].PitchScore = &s
		articles[i].SuggestedPublications = SuggestPublications(articles[i], s)
	}
}

// hasKeyword はキーワード集合にkwが含まれるかを判定する。
func hasKeyword(keywords []string, kw string) bool {
	for _, k := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}
