package service_icons

import "strings"

const defaultIcon = "🎬"

// keyword table checked in order against the lowercased movie name.
var table = []struct {
	keyword string
	icon    string
}{
	{"prison", "🔒"},
	{"boss", "🕴️"},
	{"family", "👪"},
	{"dream", "💭"},
	{"space", "🚀"},
	{"king", "👑"},
	{"street", "🌃"},
	{"war", "⚔️"},
	{"love", "❤️"},
}

type Lookup struct{}

func New() *Lookup {
	return &Lookup{}
}

// IconFor picks a display icon from the movie name. Names with no
// matching keyword get the generic clapperboard.
func (l *Lookup) IconFor(name string) string {
	lower := strings.ToLower(name)
	for _, e := range table {
		if strings.Contains(lower, e.keyword) {
			return e.icon
		}
	}
	return defaultIcon
}
