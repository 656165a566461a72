// Package handler はHTTP APIハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sciencebrief/sciencebrief/internal/middleware"
	"github.com/sciencebrief/sciencebrief/internal/model"
	"github.com/sciencebrief/sciencebrief/internal/registry"
	"github.com/sciencebrief/sciencebrief/internal/score"
)

// Version はAPIのバージョン文字列。ヘルスチェックレスポンスに含める。
const Version = "1.0.0"

// AggregatorService は集約処理のインターフェース。
type AggregatorService interface {
	// Aggregate は全フィードを並行フェッチし日付降順の集約結果を返す。
	// 失敗するのはフィードリストが空の場合のみ。
	Aggregate(ctx context.Context, descriptors []model.FeedDescriptor) (*model.AggregationSummary, error)
}

// FetcherService は単一フィードフェッチのインターフェース。
type FetcherService interface {
	// Fetch はフィードを取得して成功・失敗タグ付きの結果を返す。
	Fetch(ctx context.Context, desc model.FeedDescriptor) model.FeedResult
}

// FeedHandler はフィード取得・集約のHTTPハンドラー。
// 集約結果の各記事にはレスポンス生成前にScoring Engineを適用する。
type FeedHandler struct {
	aggregator AggregatorService
	fetcher    FetcherService
	registry   *registry.Registry
	clock      func() time.Time
}

// NewFeedHandler はFeedHandlerを生成する。
func NewFeedHandler(aggregator AggregatorService, fetcher FetcherService, reg *registry.Registry) *FeedHandler {
	return &FeedHandler{
		aggregator: aggregator,
		fetcher:    fetcher,
		registry:   reg,
		clock:      time.Now,
	}
}

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// listFeedsResponse はデフォルトフィード一覧のレスポンス。
type listFeedsResponse struct {
	Success bool                              `json:"success"`
	Feeds   map[string][]model.FeedDescriptor `json:"feeds"`
}

// fetchFeedRequest は単一フィード取得リクエストのボディ。
type fetchFeedRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

// fetchFeedsRequest は複数フィード取得リクエストのボディ。
type fetchFeedsRequest struct {
	Feeds []model.FeedDescriptor `json:"feeds"`
}

// Health はヘルスチェックを処理する。
// GET /api/health
func (h *FeedHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
		Version:   Version,
	})
}

// ListFeeds はデフォルトフィードレジストリをカテゴリ別に返す。
// GET /api/feeds
func (h *FeedHandler) ListFeeds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listFeedsResponse{
		Success: true,
		Feeds:   h.registry.ByCategory(),
	})
}

// FetchFeed は単一フィードの取得を処理する。
// URLのみ必須で、ID・名前は未指定の場合に自動補完する。
// POST /api/fetch-feed
func (h *FeedHandler) FetchFeed(w http.ResponseWriter, r *http.Request) {
	var req fetchFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError(err.Error()))
		return
	}

	if req.URL == "" {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidURLError("URLが指定されていません"))
		return
	}

	desc := model.FeedDescriptor{
		ID:   req.ID,
		Name: req.Name,
		URL:  req.URL,
	}
	if desc.ID == "" {
		desc.ID = "custom-" + uuid.New().String()
	}
	if desc.Name == "" {
		desc.Name = "Custom Feed"
	}

	result := h.fetcher.Fetch(r.Context(), desc)
	score.Apply(result.Articles, h.clock())

	writeJSON(w, http.StatusOK, result)
}

// FetchFeeds は複数フィードの並行取得と集約を処理する。
// POST /api/fetch-feeds
func (h *FeedHandler) FetchFeeds(w http.ResponseWriter, r *http.Request) {
	var req fetchFeedsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError(err.Error()))
		return
	}

	h.aggregate(w, r, req.Feeds)
}

// FetchAll はデフォルトレジストリのフィードを集約する。
// categoriesクエリパラメータでカテゴリを絞り込める（カンマ区切り）。
// GET /api/fetch-all?categories=psychology,music
func (h *FeedHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	var names []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	h.aggregate(w, r, h.registry.Resolve(names))
}

// aggregate は集約を実行し、スコアリング済みの結果を書き込む。
func (h *FeedHandler) aggregate(w http.ResponseWriter, r *http.Request, descriptors []model.FeedDescriptor) {
	summary, err := h.aggregator.Aggregate(r.Context(), descriptors)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			middleware.WriteErrorResponse(w, http.StatusBadRequest, apiErr)
			return
		}
		slog.Error("集約処理で予期しないエラーが発生しました",
			slog.String("error", err.Error()),
		)
		middleware.WriteInternalServerError(w)
		return
	}

	score.Apply(summary.Articles, h.clock())
	writeJSON(w, http.StatusOK, summary)
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
