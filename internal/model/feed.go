package model

import "time"

// FeedDescriptor は1つの配信ソースの識別子と取得先を表す。
// 呼び出し側（デフォルトレジストリまたはユーザー入力）が供給し、
// 集約実行をまたいで不変として扱う。
type FeedDescriptor struct {
	// ID はフィードの一意識別子。
	ID string `json:"id" yaml:"id"`

	// Name は表示名（記事のJournalフィールドになる）。
	Name string `json:"name" yaml:"name"`

	// URL はフィードドキュメントの取得先。
	URL string `json:"url" yaml:"url"`

	// Category は所属カテゴリ。レジストリ由来の場合のみ設定される。
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// FeedResult は1フィード1実行分のフェッチ結果を表す。
// 成功・失敗のどちらでも必ず値として返され、フェッチ境界を
// エラーが越えることはない。
//
// 不変条件: Success=false ならば Articles は空かつ Error は非空。
// Success=true ならば Error は空。
type FeedResult struct {
	Success   bool      `json:"success"`
	FeedID    string    `json:"feedId"`
	FeedName  string    `json:"feedName"`
	Articles  []Article `json:"articles"`
	Error     string    `json:"error,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// FailedFeed は集約結果に含まれる失敗フィードの報告。
type FailedFeed struct {
	FeedID   string `json:"feedId"`
	FeedName string `json:"feedName"`
	Error    string `json:"error"`
}

// AggregationSummary は複数フィードの集約結果を表す。
//
// 不変条件: TotalArticles は成功した各FeedResultの記事数の合計に等しい。
type AggregationSummary struct {
	Success         bool         `json:"success"`
	TotalFeeds      int          `json:"totalFeeds"`
	SuccessfulFeeds int          `json:"successfulFeeds"`
	FailedFeeds     []FailedFeed `json:"failedFeeds"`
	TotalArticles   int          `json:"totalArticles"`
	Articles        []Article    `json:"articles"`
	FetchedAt       time.Time    `json:"fetchedAt"`
}
