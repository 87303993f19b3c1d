package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/diveshopfinder/api/internal/config"
	"github.com/diveshopfinder/api/internal/infrastructure/dataset"
	"github.com/diveshopfinder/api/internal/infrastructure/rediscache"
	adminhttp "github.com/diveshopfinder/api/internal/interfaces/http/admin"
	publichttp "github.com/diveshopfinder/api/internal/interfaces/http/public"
	publicapp "github.com/diveshopfinder/api/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
// データセットの読み込みとルーティングの組み立てに責務を限定する。
type Server struct {
	logger              *log.Logger
	catalog             *dataset.Catalog
	shopQueryService    publicapp.ShopQueryService
	redisClient         *redis.Client
	httpClient          *http.Client
	pageSize            int
	feedbackEndpoint    string
	feedbackDestination string
	addr                string
	allowedOrigins      []string
}

// New は Config を受け取り、ローダー・カタログ・キャッシュ・サービスを組み立てた Server を返す。
// 依存解決の起点となるファクトリとして機能する。
func New(cfg config.Config) *Server {
	datasetClient := &http.Client{Timeout: cfg.DatasetTimeout}
	loader := dataset.NewLoader(cfg.DatasetSource, datasetClient, cfg.ServerLog)
	catalog := dataset.NewCatalog(loader, cfg.ServerLog)

	var redisClient *redis.Client
	var resultCache publicapp.ResultCache
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		resultCache = rediscache.New(redisClient, cfg.CacheTTL, cfg.ServerLog)
	}

	endpoint := normaliseBaseURL(cfg.FeedbackEndpoint)

	return &Server{
		logger:              cfg.ServerLog,
		catalog:             catalog,
		shopQueryService:    publicapp.NewShopQueryService(catalog, resultCache, cfg.ServerLog),
		redisClient:         redisClient,
		httpClient:          &http.Client{Timeout: cfg.FeedbackTimeout},
		pageSize:            cfg.PageSize,
		feedbackEndpoint:    endpoint,
		feedbackDestination: cfg.FeedbackDestination,
		addr:                cfg.Addr,
		allowedOrigins:      append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Run はHTTPサーバーを起動し、Public/Adminのルーティングやミドルウェアを組み立てる。
// 初回のデータセット読み込みに失敗してもサーバーは起動し、エラー表示可能な状態を保つ。
func (s *Server) Run() error {
	if err := s.catalog.Reload(context.Background()); err != nil {
		s.logger.Printf("初回のデータセット読み込みに失敗しました（空の状態で起動します）: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Handle("/metrics", promhttp.Handler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:              s.logger,
		ShopQueries:         s.shopQueryService,
		Catalog:             s.catalog,
		PageSize:            s.pageSize,
		HTTPClient:          s.httpClient,
		FeedbackEndpoint:    s.feedbackEndpoint,
		FeedbackDestination: s.feedbackDestination,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:  s.logger,
		Catalog: s.catalog,
	})
	router.Route("/admin", adminHandler.Register)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// normaliseBaseURL は入力文字列をトリムして末尾スラッシュを削除したURLを返す。
func normaliseBaseURL(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.TrimRight(trimmed, "/")
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler はデータセットの状態を返す。未読み込みかつ直近の読み込みが
// 失敗している場合のみ degraded。アプリ自体は常に応答可能。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		status := s.catalog.Status()

		payload := map[string]any{
			"status":  "ok",
			"records": status.Count,
			"time":    time.Now().Format(time.RFC3339),
		}
		httpStatus := http.StatusOK

		if status.LastError != "" && status.Count == 0 {
			payload["status"] = "degraded"
			payload["error"] = status.LastError
			httpStatus = http.StatusServiceUnavailable
		}

		s.writeJSON(w, httpStatus, payload)
	}
}

// writeJSON は JSON レスポンスの共通書き込み処理。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown は Redis クライアントを切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown() {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Close(); err != nil {
		s.logger.Printf("Redis 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
// アプリケーションの外側で扱うべき OS 依存の関心事をここへ閉じ込める。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown()
}
