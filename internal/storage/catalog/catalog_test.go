package storage_catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviedeck/core/internal/model"
)

func fixtureMovies() []model.Movie {
	return []model.Movie{
		{ID: 1, Name: "The Prison Escape", Genre: "Drama", Year: 1994, Rating: 9.3},
		{ID: 2, Name: "The Family Boss", Genre: "Action/Crime", Year: 1972, Rating: 9.2},
		{ID: 3, Name: "The Masked Vigilante", Genre: "Action", Year: 2008, Rating: 9.0},
	}
}

func TestAllPreservesLoadOrder(t *testing.T) {
	store := New(fixtureMovies())

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestAllNeverNil(t *testing.T) {
	store := New(nil)

	assert.NotNil(t, store.All())
	assert.Empty(t, store.All())
	assert.Equal(t, 0, store.Len())
}

func TestByIDRoundTrip(t *testing.T) {
	movies := fixtureMovies()
	store := New(movies)

	for _, want := range movies {
		got, ok := store.ByID(want.ID)
		require.True(t, ok, "missing id %d", want.ID)
		assert.Equal(t, want, got)
	}
}

func TestByIDRejectsInvalidIDs(t *testing.T) {
	store := New(fixtureMovies())

	testCases := []struct {
		name string
		id   int64
	}{
		{name: "zero id", id: 0},
		{name: "negative id", id: -1},
		{name: "unknown id", id: 999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := store.ByID(tc.id)
			assert.False(t, ok)
		})
	}
}

func TestDuplicateIDsLastWriteWins(t *testing.T) {
	store := New([]model.Movie{
		{ID: 7, Name: "First Cut"},
		{ID: 7, Name: "Director's Cut"},
	})

	got, ok := store.ByID(7)
	require.True(t, ok)
	assert.Equal(t, "Director's Cut", got.Name)

	// The sequence itself is not deduplicated.
	assert.Len(t, store.All(), 2)
}
