package service_reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsForMovieDeterministic(t *testing.T) {
	p := New()

	first := p.ReviewsForMovie(1)
	second := p.ReviewsForMovie(1)

	assert.Equal(t, first, second)
}

func TestReviewsForMovieShape(t *testing.T) {
	p := New()

	for id := int64(1); id <= 12; id++ {
		reviews := p.ReviewsForMovie(id)
		require.GreaterOrEqual(t, len(reviews), 2)
		require.LessOrEqual(t, len(reviews), 4)
		for _, r := range reviews {
			assert.Equal(t, id, r.MovieID)
			assert.NotEmpty(t, r.Reviewer)
			assert.NotEmpty(t, r.Comment)
			assert.GreaterOrEqual(t, r.Rating, 3)
			assert.LessOrEqual(t, r.Rating, 5)
		}
	}
}

func TestReviewsForMovieInvalidID(t *testing.T) {
	p := New()

	assert.Empty(t, p.ReviewsForMovie(0))
	assert.Empty(t, p.ReviewsForMovie(-3))
}
