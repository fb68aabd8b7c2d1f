package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/moviedeck/core/internal/config"
	http_init "github.com/moviedeck/core/internal/delivery/http/init"
	http_ratelimit_middleware "github.com/moviedeck/core/internal/delivery/http/middleware/ratelimit"
	http_requestid_middleware "github.com/moviedeck/core/internal/delivery/http/middleware/requestid"
	http_movie "github.com/moviedeck/core/internal/delivery/http/movie"
	infra_moviesjson "github.com/moviedeck/core/internal/infra/moviesjson"
	infra_postgres_movie "github.com/moviedeck/core/internal/infra/postgres/movie"
	"github.com/moviedeck/core/internal/model"
	service_icons "github.com/moviedeck/core/internal/service/icons"
	service_reviews "github.com/moviedeck/core/internal/service/reviews"
	storage_catalog "github.com/moviedeck/core/internal/storage/catalog"
	usecase_search "github.com/moviedeck/core/internal/usecase/search"
)

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store := storage_catalog.New(loadCatalog(cfg, logger))
	if store.Len() == 0 {
		logger.Warn("catalog is empty, serving empty lists and not-found")
	}

	searchUC := usecase_search.New(store, usecase_search.WithLogger(logger))

	controllerPool := http_init.NewControllerPool(cfg.Templates.Glob,
		http_requestid_middleware.New(logger).Tag(),
		http_ratelimit_middleware.New(cfg.Rate.RPS, cfg.Rate.Burst).Limit(),
	)
	controllerPool.Add(http_movie.New(searchUC,
		service_reviews.New(),
		service_icons.New(),
		http_movie.WithLogger(logger),
	))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

// loadCatalog produces the startup collection. Either source failing
// degrades to an empty catalog; the service still comes up.
func loadCatalog(cfg *config.Config, logger *slog.Logger) []model.Movie {
	if dsn := cfg.Catalog.PostgresDSN; dsn != "" {
		movies, err := loadFromPostgres(dsn)
		if err == nil {
			logger.Info("movie catalog loaded from postgres", slog.Int("movies", len(movies)))
			return movies
		}
		logger.Error("postgres catalog load failed, falling back to file",
			slog.String("error", err.Error()),
		)
	}

	return infra_moviesjson.New(infra_moviesjson.WithLogger(logger)).Load(cfg.Catalog.MoviesFile)
}

func loadFromPostgres(dsn string) ([]model.Movie, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return infra_postgres_movie.New(db).LoadAll(context.Background())
}
