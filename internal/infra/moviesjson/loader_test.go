package infra_moviesjson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidFile(t *testing.T) {
	movies := New().Load(filepath.Join("testdata", "movies.json"))

	require.Len(t, movies, 2)
	assert.Equal(t, int64(1), movies[0].ID)
	assert.Equal(t, "The Prison Escape", movies[0].Name)
	assert.Equal(t, "Drama", movies[0].Genre)
	assert.Equal(t, 142, movies[0].Duration)
	assert.InDelta(t, 9.3, movies[0].Rating, 0.001)
	assert.Equal(t, "Action/Crime", movies[1].Genre)
}

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	movies := New().Load(filepath.Join("testdata", "no-such-file.json"))

	assert.Empty(t, movies)
}

func TestLoadMalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"`), 0o644))

	movies := New().Load(path)

	assert.Empty(t, movies)
}
