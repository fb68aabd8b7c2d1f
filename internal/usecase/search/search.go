package usecase_search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/moviedeck/core/internal/model"
)

// Catalog is the read-only record store the engine filters over.
type Catalog interface {
	All() []model.Movie
	ByID(id int64) (model.Movie, bool)
}

type Usecase struct {
	catalog Catalog
	logger  *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(catalog Catalog, opts ...Option) *Usecase {
	u := &Usecase{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// IsValidQuery reports whether at least one search criterion is set:
// a name or genre that is non-empty after trimming, or a positive id.
// Callers are expected to check this before running Search; Search
// itself never rejects a query.
func IsValidQuery(name string, id int64, genre string) bool {
	hasName := strings.TrimSpace(name) != ""
	hasID := id > 0
	hasGenre := strings.TrimSpace(genre) != ""

	return hasName || hasID || hasGenre
}

func (u *Usecase) AllMovies() []model.Movie {
	return u.catalog.All()
}

func (u *Usecase) MovieByID(id int64) (model.Movie, bool) {
	return u.catalog.ByID(id)
}

// Search narrows the full catalog by each set criterion in turn,
// combined with AND. Unset criteria (empty after trim, id <= 0) are
// skipped rather than treated as faults; with nothing set the full
// catalog comes back in load order.
func (u *Usecase) Search(name string, id int64, genre string) []model.Movie {
	matches := u.catalog.All()

	if id > 0 {
		matches = keep(matches, func(m model.Movie) bool {
			return m.ID == id
		})
		u.logger.Debug("narrowed by id", slog.Int64("id", id), slog.Int("left", len(matches)))
	}

	if q := strings.ToLower(strings.TrimSpace(name)); q != "" {
		matches = keep(matches, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Name), q)
		})
		u.logger.Debug("narrowed by name", slog.String("name", q), slog.Int("left", len(matches)))
	}

	if q := strings.ToLower(strings.TrimSpace(genre)); q != "" {
		matches = keep(matches, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Genre), q)
		})
		u.logger.Debug("narrowed by genre", slog.String("genre", q), slog.Int("left", len(matches)))
	}

	return matches
}

// AllGenres returns the distinct genre strings across the catalog,
// sorted ascending. Compound values stay whole: "Crime/Drama" is one
// genre, not two.
func (u *Usecase) AllGenres() []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0)

	for _, m := range u.catalog.All() {
		if _, ok := seen[m.Genre]; ok {
			continue
		}
		seen[m.Genre] = struct{}{}
		genres = append(genres, m.Genre)
	}

	sort.Strings(genres)
	return genres
}

func keep(in []model.Movie, match func(model.Movie) bool) []model.Movie {
	out := make([]model.Movie, 0, len(in))
	for _, m := range in {
		if match(m) {
			out = append(out, m)
		}
	}
	return out
}
