// Package registry はデフォルトフィードレジストリを提供する。
//
// カテゴリ→フィードリストの対応表はプロセス起動時に1回構築される
// イミュータブルな値で、可変のグローバル状態は持たない。
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

// Category は1カテゴリ分のフィード定義。
type Category struct {
	Name  string                 `yaml:"name"`
	Feeds []model.FeedDescriptor `yaml:"feeds"`
}

// Registry はカテゴリ別のフィードレジストリ。宣言順を保持する。
type Registry struct {
	categories []Category
}

// registryFile はYAMLレジストリファイルのルート構造。
type registryFile struct {
	Categories []Category `yaml:"categories"`
}

// Default は組み込みのデフォルトレジストリを返す。
// 心理学・神経科学・知覚・音楽認知の主要学術誌13誌を含む。
func Default() *Registry {
	return &Registry{categories: []Category{
		{Name: "psychology", Feeds: []model.FeedDescriptor{
			{ID: "psych-sci", Name: "Psychological Science", URL: "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=pss&type=etoc&feed=rss"},
			{ID: "nat-hum-beh", Name: "Nature Human Behaviour", URL: "https://www.nature.com/nathumbehav.rss"},
			{ID: "curr-dir", Name: "Current Directions in Psych Science", URL: "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=cdp&type=etoc&feed=rss"},
		}},
		{Name: "neuroscience", Feeds: []model.FeedDescriptor{
			{ID: "nat-neuro", Name: "Nature Neuroscience", URL: "https://www.nature.com/neuro.rss"},
			{ID: "nat-rev-neuro", Name: "Nature Reviews Neuroscience", URL: "https://www.nature.com/nrn.rss"},
			{ID: "neuron", Name: "Neuron", URL: "https://www.cell.com/neuron/current.rss"},
			{ID: "j-neuro", Name: "Journal of Neuroscience", URL: "https://www.jneurosci.org/rss/current.xml"},
			{ID: "trends-cog", Name: "Trends in Cognitive Sciences", URL: "https://www.cell.com/trends/cognitive-sciences/current.rss"},
		}},
		{Name: "perception", Feeds: []model.FeedDescriptor{
			{ID: "perception", Name: "Perception", URL: "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=pec&type=etoc&feed=rss"},
			{ID: "aud-perc-cog", Name: "Auditory Perception & Cognition", URL: "https://www.tandfonline.com/feed/rss/rpac20"},
		}},
		{Name: "music", Feeds: []model.FeedDescriptor{
			{ID: "music-perc", Name: "Music Perception", URL: "https://online.ucpress.edu/mp/rss/current.xml"},
			{ID: "psych-music", Name: "Psychology of Music", URL: "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=pom&type=etoc&feed=rss"},
			{ID: "musicae-sci", Name: "Musicae Scientiae", URL: "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=msx&type=etoc&feed=rss"},
		}},
	}}
}

// LoadFile はYAMLファイルからレジストリを読み込む。
// ファイル形式の例:
//
//	categories:
//	  - name: psychology
//	    feeds:
//	      - id: psych-sci
//	        name: Psychological Science
//	        url: https://example.com/feed.rss
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("レジストリファイルの読み込みに失敗しました: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("レジストリファイルの解析に失敗しました: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("レジストリファイルにカテゴリが定義されていません: %s", path)
	}

	return &Registry{categories: file.Categories}, nil
}

// ByCategory はカテゴリ名→フィードリストの対応を返す。
// 各フィードにはカテゴリ名が設定される。
func (r *Registry) ByCategory() map[string][]model.FeedDescriptor {
	result := make(map[string][]model.FeedDescriptor, len(r.categories))
	for _, cat := range r.categories {
		feeds := make([]model.FeedDescriptor, len(cat.Feeds))
		for i, f := range cat.Feeds {
			f.Category = cat.Name
			feeds[i] = f
		}
		result[cat.Name] = feeds
	}
	return result
}

// Resolve はカテゴリ名のリストをフィードリストに解決する。
// namesが空の場合は全カテゴリを対象とする。未知のカテゴリ名は
// エラーにせず読み飛ばす。順序はレジストリの宣言順。
func (r *Registry) Resolve(names []string) []model.FeedDescriptor {
	if len(names) == 0 {
		return r.all()
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var feeds []model.FeedDescriptor
	for _, cat := range r.categories {
		if !wanted[cat.Name] {
			continue
		}
		for _, f := range cat.Feeds {
			f.Category = cat.Name
			feeds = append(feeds, f)
		}
	}
	return feeds
}

// all は全カテゴリのフィードを宣言順に返す。
func (r *Registry) all() []model.FeedDescriptor {
	var feeds []model.FeedDescriptor
	for _, cat := range r.categories {
		for _, f := range cat.Feeds {
			f.Category = cat.Name
			feeds = append(feeds, f)
		}
	}
	return feeds
}
