package model

// Movie is a single catalog record. The collection is loaded once at
// startup and never mutated afterwards, so values are shared freely
// between goroutines.
//
// Genre is one opaque string; compound values like "Crime/Drama" are
// matched as-is, never split on the separator.
type Movie struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"movieName" db:"name"`
	Director    string  `json:"director" db:"director"`
	Year        int     `json:"year" db:"year"`
	Genre       string  `json:"genre" db:"genre"`
	Description string  `json:"description" db:"description"`
	Duration    int     `json:"duration" db:"duration"`
	Rating      float64 `json:"imdbRating" db:"rating"`
}
