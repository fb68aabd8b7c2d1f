package http_movie

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moviedeck/core/internal/model"
	usecase_search "github.com/moviedeck/core/internal/usecase/search"
)

// Fixed user-facing strings. The pirate voice is part of the product,
// not placeholder copy.
const (
	searchErrorAPI  = "Arrr! Ye must provide at least one search parameter (name, id, or genre), matey!"
	searchErrorPage = "Arrr! Ye must provide at least one search parameter, matey!"
	noResultsMsg    = "Arrr! No treasure found with those search criteria, matey! Try adjusting yer search parameters."

	notFoundTitle = "Movie Not Found"
)

// SearchErrorResponse is the structured shape for a rejected search:
// a single error field, no envelope around it.
type SearchErrorResponse struct {
	Error string `json:"error"`
}

type ReviewProvider interface {
	ReviewsForMovie(id int64) []model.Review
}

type IconLookup interface {
	IconFor(name string) string
}

type Controller struct {
	uc      *usecase_search.Usecase
	reviews ReviewProvider
	icons   IconLookup

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_search.Usecase,
	reviews ReviewProvider,
	icons IconLookup,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:      uc,
		reviews: reviews,
		icons:   icons,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/search", c.searchMovies)
	movies.GET("/genres", c.getGenres)
	movies.GET("/:id/details", c.getMovieDetails)
}

// getMovies renders the full catalog page.
func (c *Controller) getMovies(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "movies.html", gin.H{
		"movies":      c.uc.AllMovies(),
		"genres":      c.uc.AllGenres(),
		"searchName":  "",
		"searchId":    "",
		"searchGenre": "",
	})
}

// getGenres returns the distinct sorted genre list as JSON.
func (c *Controller) getGenres(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.uc.AllGenres())
}

// searchMovies handles both API calls and browser form submissions on
// the same route. An Accept header mentioning application/json selects
// the structured shape; everything else gets the rendered page.
func (c *Controller) searchMovies(ctx *gin.Context) {
	rawName := ctx.Query("name")
	rawID := ctx.Query("id")
	rawGenre := ctx.Query("genre")

	// A non-numeric id is treated as "criterion not set", same as an
	// out-of-range one. Malformed input never faults the search.
	var id int64
	if rawID != "" {
		parsed, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			c.logger.Warn("ignoring non-numeric id parameter", slog.String("id", rawID))
		} else {
			id = parsed
		}
	}

	wantsJSON := strings.Contains(ctx.GetHeader("Accept"), "application/json")

	if !usecase_search.IsValidQuery(rawName, id, rawGenre) {
		c.logger.Warn("search rejected, no usable criterion",
			slog.String("name", rawName),
			slog.String("id", rawID),
			slog.String("genre", rawGenre),
		)

		if wantsJSON {
			ctx.JSON(http.StatusBadRequest, SearchErrorResponse{Error: searchErrorAPI})
			return
		}

		ctx.HTML(http.StatusOK, "movies.html", gin.H{
			"movies":      c.uc.AllMovies(),
			"genres":      c.uc.AllGenres(),
			"searchError": searchErrorPage,
			"searchName":  rawName,
			"searchId":    rawID,
			"searchGenre": rawGenre,
		})
		return
	}

	results := c.uc.Search(rawName, id, rawGenre)

	if wantsJSON {
		// Bare array, no envelope. An empty result is a 200, not an error.
		ctx.JSON(http.StatusOK, results)
		return
	}

	page := gin.H{
		"movies":          results,
		"genres":          c.uc.AllGenres(),
		"searchPerformed": true,
		"searchName":      rawName,
		"searchId":        rawID,
		"searchGenre":     rawGenre,
	}
	if len(results) == 0 {
		page["noResults"] = true
		page["noResultsMessage"] = noResultsMsg
	}
	ctx.HTML(http.StatusOK, "movies.html", page)
}

// getMovieDetails renders a single movie with its icon and reviews, or
// the not-found page when the id is unknown or malformed.
func (c *Controller) getMovieDetails(ctx *gin.Context) {
	idParam := ctx.Param("id")

	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.renderNotFound(ctx, idParam)
		return
	}

	movie, ok := c.uc.MovieByID(movieID)
	if !ok {
		c.logger.Warn("movie not found", slog.Int64("movie_id", movieID))
		c.renderNotFound(ctx, idParam)
		return
	}

	ctx.HTML(http.StatusOK, "movie-details.html", gin.H{
		"movie":      movie,
		"movieIcon":  c.icons.IconFor(movie.Name),
		"allReviews": c.reviews.ReviewsForMovie(movie.ID),
	})
}

func (c *Controller) renderNotFound(ctx *gin.Context, idParam string) {
	ctx.HTML(http.StatusNotFound, "error.html", gin.H{
		"title":   notFoundTitle,
		"message": fmt.Sprintf("Movie with ID %s was not found.", idParam),
	})
}
