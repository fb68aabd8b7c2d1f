package service_icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	l := New()

	testCases := []struct {
		name  string
		movie string
		want  string
	}{
		{name: "keyword match", movie: "The Prison Escape", want: "🔒"},
		{name: "case-insensitive", movie: "PRISON BREAKERS", want: "🔒"},
		{name: "first keyword in table wins", movie: "The Family Boss", want: "🕴️"},
		{name: "no keyword", movie: "Midnight Diner", want: "🎬"},
		{name: "empty name", movie: "", want: "🎬"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.IconFor(tc.movie))
		})
	}
}
