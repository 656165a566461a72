// Package aggregate は複数フィードの並行フェッチと結果の集約を提供する。
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sciencebrief/sciencebrief/internal/model"
)

// FeedFetcher は単一フィードのフェッチインターフェース。
// 実装は失敗を必ずFeedResultの値として返す（エラーを返さない）。
type FeedFetcher interface {
	Fetch(ctx context.Context, desc model.FeedDescriptor) model.FeedResult
}

// Aggregator は複数フィードの並行フェッチと集約を行う。
//
// 各フィードは独立したgoroutineでフェッチされ、結果はインデックス固定の
// スライスに書き込まれるため、フェッチ間に共有可変状態はなくロックも不要。
// あるフィードの失敗が他のフィードの処理に影響することはない。
type Aggregator struct {
	fetcher FeedFetcher
	logger  *slog.Logger
	clock   func() time.Time
}

// NewAggregator はAggregatorの新しいインスタンスを生成する。
func NewAggregator(fetcher FeedFetcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		clock:   time.Now,
	}
}

// Aggregate は全フィードを並行フェッチし、成功分の記事をマージして
// 日付降順の集約結果を返す。
//
// 失敗するのはdescriptorsが空の場合のみ（前提条件エラー）。全フィードが
// 失敗しても集約自体は成功し、空の記事リストと全件分の失敗報告を返す。
func (a *Aggregator) Aggregate(ctx context.Context, descriptors []model.FeedDescriptor) (*model.AggregationSummary, error) {
	if len(descriptors) == 0 {
		return nil, model.NewEmptyFeedListError()
	}

	start := a.clock()
	a.logger.Info("フィード集約を開始します",
		slog.Int("feed_count", len(descriptors)),
	)

	// 全フィードへ同時にファンアウトし、全件完了を1箇所で待つ。
	// 個々のフェッチはそれぞれのタイムアウトで打ち切られるため、
	// 集約全体の所要時間は最悪でもタイムアウト1回分に収まる。
	results := make([]model.FeedResult, len(descriptors))
	var wg sync.WaitGroup
	for i, desc := range descriptors {
		wg.Add(1)
		go func(i int, desc model.FeedDescriptor) {
			defer wg.Done()
			results[i] = a.fetcher.Fetch(ctx, desc)
		}(i, desc)
	}
	wg.Wait()

	summary := &model.AggregationSummary{
		Success:     true,
		TotalFeeds:  len(descriptors),
		FailedFeeds: []model.FailedFeed{},
		FetchedAt:   a.clock(),
	}

	articles := []model.Article{}
	for _, r := range results {
		if r.Success {
			summary.SuccessfulFeeds++
			articles = append(articles, r.Articles...)
			continue
		}
		summary.FailedFeeds = append(summary.FailedFeeds, model.FailedFeed{
			FeedID:   r.FeedID,
			FeedName: r.FeedName,
			Error:    r.Error,
		})
	}

	// 日付降順の安定ソート。同時刻の相対順はフェッチ結果の出現順に依存する。
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})

	summary.Articles = articles
	summary.TotalArticles = len(articles)

	a.logger.Info("フィード集約が完了しました",
		slog.Int("total_feeds", summary.TotalFeeds),
		slog.Int("successful_feeds", summary.SuccessfulFeeds),
		slog.Int("failed_feeds", len(summary.FailedFeeds)),
		slog.Int("total_articles", summary.TotalArticles),
		slog.Float64("duration_ms", float64(a.clock().Sub(start).Milliseconds())),
	)

	return summary, nil
}
