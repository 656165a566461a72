package model

import "time"

// RawItem はパース直後のフィードアイテムをソース固有の揺れごと保持する一時表現。
// フィールド正規化の入力としてのみ存在し、正規化後は破棄される。
type RawItem struct {
	// Title は生のタイトル（HTMLを含みうる）。
	Title string

	// Link は記事URL。
	Link string

	// Creator はdc:creator要素の値（複数の場合はカンマ結合済み）。
	Creator string

	// Author はauthor要素の値。
	Author string

	// Description はdescription要素またはAtomのsummary。
	Description string

	// Content はcontent:encoded要素またはAtomのcontent。
	Content string

	// DOI はprism:doi要素の値。
	DOI string

	// Published はパース済みの公開日時。ソースが提供しない場合はnil。
	Published *time.Time
}
