package service_reviews

import (
	"github.com/moviedeck/core/internal/model"
)

// Provider serves the canned review lists shown on detail pages. The
// set for a given movie id is deterministic, so pages render the same
// on every request.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

var reviewers = []string{
	"Captain Reelbeard",
	"First Mate Flickster",
	"Old Salty the Critic",
	"Deckhand Dolores",
	"The Crow's Nest Gazette",
}

var comments = []string{
	"A fine voyage from start to finish. Worth every doubloon.",
	"Kept the whole crew on the edge of the plank.",
	"Seen better storms in a teacup, but the cast carries it.",
	"A treasure of a picture. Watched it thrice already.",
	"Started slow, but the second half blows a strong wind.",
}

// ReviewsForMovie returns between two and four reviews derived from
// the movie id. Unknown ids still get reviews; the catalog decides
// what exists, not this provider.
func (p *Provider) ReviewsForMovie(id int64) []model.Review {
	if id <= 0 {
		return []model.Review{}
	}

	n := 2 + int(id%3)
	reviews := make([]model.Review, 0, n)
	for i := 0; i < n; i++ {
		k := (int(id) + i) % len(reviewers)
		reviews = append(reviews, model.Review{
			MovieID:  id,
			Reviewer: reviewers[k],
			Rating:   3 + (int(id)+i)%3,
			Comment:  comments[(k+i)%len(comments)],
		})
	}
	return reviews
}
