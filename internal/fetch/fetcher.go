// Package fetch はフィードの取得・解析・正規化を提供する。
//
// Fetcherはフェッチ境界であり、ネットワークエラー・タイムアウト・
// 解析失敗を含むすべての失敗を値（FeedResult）に降格する。
// エラーがこの境界を越えて伝播することはない。
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/sciencebrief/sciencebrief/internal/model"
	"github.com/sciencebrief/sciencebrief/internal/normalize"
)

// acceptHeader はフィード取得時のAcceptヘッダー。
const acceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml, text/html, */*"

// SSRFValidator はSSRF検証のインターフェース。
// security.SSRFGuardServiceを抽象化してテスタビリティを向上させる。
type SSRFValidator interface {
	ValidateURL(rawURL string) error
	NewSafeClient(timeout time.Duration) *http.Client
}

// ContentSanitizer はHTMLサニタイズのインターフェース。
type ContentSanitizer interface {
	Sanitize(rawHTML string) string
}

// Recorder はフェッチ結果のメトリクス記録インターフェース。
type Recorder interface {
	RecordFetchSuccess(feedID string)
	RecordFetchFailure(feedID string)
	RecordParseFailure(feedID string)
	RecordUpstreamStatus(statusCode int)
	RecordFetchLatency(duration time.Duration)
	RecordArticlesNormalized(count int)
}

// nopRecorder はメトリクス未設定時のRecorder実装。
type nopRecorder struct{}

func (nopRecorder) RecordFetchSuccess(string)            {}
func (nopRecorder) RecordFetchFailure(string)            {}
func (nopRecorder) RecordParseFailure(string)            {}
func (nopRecorder) RecordUpstreamStatus(int)             {}
func (nopRecorder) RecordFetchLatency(time.Duration)     {}
func (nopRecorder) RecordArticlesNormalized(int)         {}

// Fetcher は個別フィードのHTTPフェッチと正規化を行う。
// SSRF検証付きクライアントでの取得、gofeedによる解析、
// normalizeパッケージによるフィールド抽出を実行する。
type Fetcher struct {
	ssrfGuard   SSRFValidator
	sanitizer   ContentSanitizer
	recorder    Recorder
	logger      *slog.Logger
	timeout     time.Duration
	maxBodySize int64
	userAgent   string
	clock       func() time.Time
}

// NewFetcher はFetcherの新しいインスタンスを生成する。
// recorderがnilの場合はメトリクスを記録しない。
func NewFetcher(
	ssrfGuard SSRFValidator,
	sanitizer ContentSanitizer,
	recorder Recorder,
	logger *slog.Logger,
	timeout time.Duration,
	maxBodySize int64,
	userAgent string,
) *Fetcher {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Fetcher{
		ssrfGuard:   ssrfGuard,
		sanitizer:   sanitizer,
		recorder:    recorder,
		logger:      logger,
		timeout:     timeout,
		maxBodySize: maxBodySize,
		userAgent:   userAgent,
		clock:       time.Now,
	}
}

// Fetch はフィードを取得して正規化済みのFeedResultを返す。
// すべての失敗はSuccess=falseの結果値に変換され、エラーは返さない。
// アイテムの順序はソースドキュメントの出現順を保持する。
func (f *Fetcher) Fetch(ctx context.Context, desc model.FeedDescriptor) model.FeedResult {
	start := f.clock()
	defer func() {
		f.recorder.RecordFetchLatency(f.clock().Sub(start))
	}()

	if err := f.ssrfGuard.ValidateURL(desc.URL); err != nil {
		return f.failure(desc, start, fmt.Errorf("URL検証に失敗しました: %s", err.Error()))
	}

	client := f.ssrfGuard.NewSafeClient(f.timeout)

	body, status, err := f.get(ctx, client, desc.URL)
	if err != nil {
		return f.failure(desc, start, fmt.Errorf("HTTPリクエストに失敗しました: %s", err.Error()))
	}
	f.recorder.RecordUpstreamStatus(status)
	if status != http.StatusOK {
		return f.failure(desc, start, fmt.Errorf("取得元がHTTP %dを返しました", status))
	}

	parsed, parseErr := gofeed.NewParser().ParseString(string(body))
	if parseErr != nil {
		// HTMLページの場合はheadのalternateリンクからフィードを自動検出する
		parsed = f.discoverAndParse(ctx, client, desc, body)
	}
	if parsed == nil {
		f.recorder.RecordParseFailure(desc.ID)
		return f.failure(desc, start, fmt.Errorf("フィードの解析に失敗しました: %s", parseErr.Error()))
	}

	articles := make([]model.Article, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, f.buildArticle(desc, i, rawItemFrom(item), start))
	}

	f.recorder.RecordFetchSuccess(desc.ID)
	f.recorder.RecordArticlesNormalized(len(articles))
	f.logger.Info("フィードフェッチが完了しました",
		slog.String("feed_id", desc.ID),
		slog.String("feed_url", desc.URL),
		slog.Int("articles", len(articles)),
	)

	return model.FeedResult{
		Success:   true,
		FeedID:    desc.ID,
		FeedName:  desc.Name,
		Articles:  articles,
		FetchedAt: start,
	}
}

// failure は失敗タグ付きのFeedResultを生成し、ログとメトリクスを記録する。
func (f *Fetcher) failure(desc model.FeedDescriptor, fetchedAt time.Time, err error) model.FeedResult {
	f.recorder.RecordFetchFailure(desc.ID)
	f.logger.Warn("フィードフェッチに失敗しました",
		slog.String("feed_id", desc.ID),
		slog.String("feed_url", desc.URL),
		slog.String("error", err.Error()),
	)
	return model.FeedResult{
		Success:   false,
		FeedID:    desc.ID,
		FeedName:  desc.Name,
		Articles:  []model.Article{},
		Error:     err.Error(),
		FetchedAt: fetchedAt,
	}
}

// get はURLをGETしてボディとステータスコードを返す。
// ボディはmaxBodySizeで打ち切る。
func (f *Fetcher) get(ctx context.Context, client *http.Client, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// discoverAndParse はHTMLボディからフィードリンクを自動検出し、
// 検出できた場合は1回だけ再フェッチして解析する。
// 検出・再フェッチ・再解析のいずれかに失敗した場合はnilを返す。
func (f *Fetcher) discoverAndParse(ctx context.Context, client *http.Client, desc model.FeedDescriptor, body []byte) *gofeed.Feed {
	candidates := discoverFeedLinks(body, desc.URL)
	if len(candidates) == 0 {
		return nil
	}
	best := selectCandidate(candidates, desc.URL)

	if err := f.ssrfGuard.ValidateURL(best.url); err != nil {
		return nil
	}
	feedBody, status, err := f.get(ctx, client, best.url)
	if err != nil || status != http.StatusOK {
		return nil
	}
	parsed, err := gofeed.NewParser().ParseString(string(feedBody))
	if err != nil {
		return nil
	}

	f.logger.Info("HTMLページからフィードを自動検出しました",
		slog.String("feed_id", desc.ID),
		slog.String("page_url", desc.URL),
		slog.String("feed_url", best.url),
	)
	return parsed
}

// buildArticle は1アイテムを正規化してArticleを生成する。
// IDはフィードID・アイテム位置・フェッチ時刻から導出される実行スコープ値。
func (f *Fetcher) buildArticle(desc model.FeedDescriptor, index int, raw model.RawItem, fetchedAt time.Time) model.Article {
	rawDesc := raw.Description
	if rawDesc == "" {
		rawDesc = raw.Content
	}
	description := normalize.HTMLToText(rawDesc)

	title := normalize.HTMLToText(raw.Title)
	if title == "" {
		title = "Untitled"
	}

	date := fetchedAt
	if raw.Published != nil {
		date = *raw.Published
	}

	article := model.Article{
		ID:          fmt.Sprintf("%s-%d-%d", desc.ID, index, fetchedAt.UnixMilli()),
		FeedID:      desc.ID,
		Title:       title,
		Journal:     desc.Name,
		Authors:     normalize.ExtractAuthors(raw),
		Date:        date,
		Description: description,
		Link:        raw.Link,
		DOI:         normalize.ExtractDOI(raw),
		Keywords:    normalize.ExtractKeywords(title, description),
	}

	if f.sanitizer != nil && rawDesc != "" {
		article.DescriptionHTML = f.sanitizer.Sanitize(rawDesc)
	}
	return article
}
