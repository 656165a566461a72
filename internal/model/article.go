// Package model はドメインモデルを定義する。
package model

import "time"

// Article は正規化済みの学術記事を表す。
// ソースごとにスキーマの異なるフィードアイテムをFeed Fetcherが
// 正規化して生成する、システム内の正準表現。
type Article struct {
	// ID は `{feedId}-{itemIndex}-{fetchTimestampMillis}` 形式の実行スコープID。
	// 同一集約実行内での一意性のみを保証し、再フェッチすると同じ記事でも
	// 別のIDになる（実行をまたいだ安定性は提供しない）。
	ID string `json:"id"`

	// FeedID は取得元FeedDescriptorのIDへの参照。
	FeedID string `json:"feedId"`

	// Title はHTML除去・エンティティデコード済みのタイトル。
	// ソースがタイトルを持たない場合は "Untitled"。
	Title string `json:"title"`

	// Journal は取得元フィードの表示名。
	Journal string `json:"journal"`

	// Authors は抽出された著者表記。抽出できない場合は "Unknown authors"。
	Authors string `json:"authors"`

	// Date は公開日時。ソースが日時を提供しない場合はフェッチ時刻に
	// フォールバックする（「日時なし」と「今公開」は区別できない）。
	Date time.Time `json:"date"`

	// Description はHTML除去済みのプレーンテキスト説明。
	Description string `json:"description"`

	// DescriptionHTML はサニタイズ済みのリッチHTML説明。
	// マークアップを描画するプレゼンテーション層向けの補助フィールドで、
	// Descriptionが常に正となる。
	DescriptionHTML string `json:"descriptionHtml,omitempty"`

	// Link は記事本体へのURL。ソースが提供しない場合は空。
	Link string `json:"link"`

	// DOI は機会的に抽出された識別子。パターン不一致の場合は空（エラーではない）。
	DOI string `json:"doi,omitempty"`

	// Keywords は統制語彙とマッチしたキーワード。最大6件、語彙の宣言順。
	Keywords []string `json:"keywords"`

	// PitchScore はScoring Engineが算出する20〜100のスコア。
	// 正規化直後はnull、スコアリング後に1回だけ設定される。
	PitchScore *int `json:"pitchScore"`

	// SuggestedPublications は売り込み先候補の媒体名。最大5件。
	// 正規化直後はnull、スコアリング後に1回だけ設定される。
	SuggestedPublications []string `json:"suggestedPublications"`
}
