package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sciencebrief/sciencebrief/internal/metrics"
	"github.com/sciencebrief/sciencebrief/internal/middleware"
	"github.com/sciencebrief/sciencebrief/internal/registry"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	Aggregator AggregatorService
	Fetcher    FetcherService
	Registry   *registry.Registry

	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// Gatherer は/metricsエンドポイント用。nilの場合はエンドポイントを公開しない。
	Gatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを
// 構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORS → Recovery → Logging → RateLimit(General)
//
// フェッチ系POSTエンドポイントには専用のレート制限を追加で適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	// CORS ミドルウェアを最上位に適用（全ルートに効く）
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))

	h := NewFeedHandler(deps.Aggregator, deps.Fetcher, deps.Registry)

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Get("/health", h.Health)
		r.Get("/feeds", h.ListFeeds)
		r.Get("/fetch-all", h.FetchAll)

		// フェッチ系POSTは外部リクエストを誘発するため専用レート制限を追加
		r.With(deps.RateLimiter.FetchMiddleware()).Post("/fetch-feed", h.FetchFeed)
		r.With(deps.RateLimiter.FetchMiddleware()).Post("/fetch-feeds", h.FetchFeeds)
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	return r
}
