package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"

	"github.com/example/movie-discovery/internal/catalog"
	"github.com/example/movie-discovery/internal/favorites"
	"github.com/example/movie-discovery/internal/genai"
	"github.com/example/movie-discovery/internal/handlers"
	"github.com/example/movie-discovery/internal/platform/auth"
	"github.com/example/movie-discovery/internal/platform/config"
	"github.com/example/movie-discovery/internal/platform/db"
	"github.com/example/movie-discovery/internal/platform/httpserver"
	"github.com/example/movie-discovery/internal/platform/logging"
	"github.com/example/movie-discovery/internal/platform/natsconn"
	"github.com/example/movie-discovery/internal/platform/run"
	"github.com/example/movie-discovery/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Catalog implementation is chosen once here; nothing downstream
	// branches on mock vs. live again.
	var cat catalog.Client
	if cfg.Catalog.Mock {
		log.Info("catalog running in mock mode")
		cat = catalog.NewMockClient()
	} else {
		cat = catalog.NewTMDBClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey)
	}

	var gen genai.Completer
	if cfg.GenAI.APIKey != "" {
		gen = genai.NewClient(cfg.GenAI.BaseURL, cfg.GenAI.APIKey, cfg.GenAI.Model)
	} else {
		log.Warn("OPENAI_API_KEY not configured, recommendations fall back to catalog similarity")
	}

	var nc *nats.Conn
	if cfg.NATSURL != "" {
		nc, err = natsconn.Connect(natsconn.Options{URL: cfg.NATSURL})
		if err != nil {
			log.Error("connect nats", zap.Error(err))
			run.Exit(1)
		}
		defer nc.Close()
	}

	cache := recommend.NewCache(cfg.Recommend.CacheTTL, nc, cfg.Recommend.InvalidateSubject)
	engine := recommend.NewEngine(cat, gen, cache, log)

	favStore, favReady, closeFavorites := initFavorites(log, cfg.DatabaseURL)
	if closeFavorites != nil {
		defer closeFavorites()
	}

	verifier := auth.JWTVerifier{Secret: cfg.JWTSecret}

	r := chi.NewRouter()
	httpserver.SetupRouter(r, httpserver.RouterConfig{ReadyFunc: favReady})

	r.Get("/v1/movies/trending", handlers.Trending(cat))
	r.Get("/v1/movies/search", handlers.Search(cat))
	r.Get("/v1/movies/discover", handlers.Discover(cat))
	r.Get("/v1/movies/{movie_id}", handlers.GetMovie(cat))
	r.Get("/v1/genres", handlers.GetGenres(cat))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(verifier))
		r.Get("/v1/movies/{movie_id}/recommendations", handlers.GetRecommendations(engine))
		r.Get("/v1/favorites", handlers.ListFavorites(favStore))
		r.Post("/v1/favorites", handlers.CreateFavorite(favStore))
		r.Put("/v1/favorites/{id}", handlers.UpdateFavorite(favStore))
		r.Delete("/v1/favorites/{id}", handlers.DeleteFavorite(favStore))
	})

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}

// initFavorites opens the Postgres store, or serves from memory when no
// DATABASE_URL is configured. The ready func gates /readyz on the pool.
func initFavorites(log *zap.Logger, dsn string) (favorites.Store, func() error, func()) {
	if dsn == "" {
		log.Warn("DATABASE_URL not configured, favorites are kept in memory")
		return favorites.NewMemoryStore(), nil, nil
	}

	pool, err := db.Open(context.Background(), dsn)
	if err != nil {
		log.Error("open favorites database", zap.Error(err))
		run.Exit(1)
	}
	ready := func() error { return pool.Ping(context.Background()) }
	return favorites.NewPostgresStore(pool), ready, pool.Close
}
