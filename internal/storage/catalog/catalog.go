package storage_catalog

import (
	"github.com/moviedeck/core/internal/model"
)

// Store owns the immutable in-memory movie collection plus an index
// from id to record. It is built once at startup and read-only for the
// rest of the process lifetime, so concurrent reads need no locking.
type Store struct {
	movies []model.Movie
	byID   map[int64]model.Movie
}

func New(movies []model.Movie) *Store {
	ms := make([]model.Movie, 0, len(movies))
	ms = append(ms, movies...)

	byID := make(map[int64]model.Movie, len(ms))
	for _, m := range ms {
		// Duplicate ids in the source: later record wins.
		byID[m.ID] = m
	}

	return &Store{
		movies: ms,
		byID:   byID,
	}
}

// All returns every record in original load order. The slice is never
// nil; callers must not mutate it.
func (s *Store) All() []model.Movie {
	return s.movies
}

// ByID looks a record up by exact id. Non-positive ids are never valid
// lookups regardless of what the source contained.
func (s *Store) ByID(id int64) (model.Movie, bool) {
	if id <= 0 {
		return model.Movie{}, false
	}
	m, ok := s.byID[id]
	return m, ok
}

func (s *Store) Len() int {
	return len(s.movies)
}
