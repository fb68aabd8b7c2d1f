package infra_postgres_movie

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/moviedeck/core/internal/model"
)

// Driver reads the seed catalog out of Postgres. It only runs during
// startup: the catalog is loaded once into memory and the database is
// never touched again, so the connection can be closed right after.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) LoadAll(ctx context.Context) ([]model.Movie, error) {
	const (
		q = `
		SELECT id, name, director, year, genre, description, duration, rating
		FROM movies
		ORDER BY id
		`
	)

	var rows []model.Movie
	if err := d.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	return rows, nil
}
