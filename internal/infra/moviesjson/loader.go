package infra_moviesjson

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/moviedeck/core/internal/model"
)

// Loader reads the seed catalog from a JSON file at startup. Load
// failures degrade to an empty catalog instead of stopping the
// service: every endpoint then answers with empty lists and not-found.
type Loader struct {
	logger *slog.Logger
}

type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Load(path string) []model.Movie {
	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error("failed to read movie catalog, starting empty",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil
	}

	var movies []model.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		l.logger.Error("failed to parse movie catalog, starting empty",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil
	}

	l.logger.Info("movie catalog loaded",
		slog.String("path", path),
		slog.Int("movies", len(movies)),
	)
	return movies
}
