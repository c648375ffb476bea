package icons

import "strings"

// ID identifies one icon.
type ID string

const (
	ArrowDown   ID = "arrow-down"
	ChevronDown ID = "chevron-down"
)

// ViewBox is shared by every icon in the catalog.
const ViewBox = "0 0 24 24"

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
	// Paths are SVG path data drawn with a 2px round stroke.
	Paths []string
}

var catalog = []Definition{
	{
		ID:          ArrowDown,
		Name:        "Arrow down",
		Description: "Scroll hint pointing at the next section.",
		Paths:       []string{"M19 14l-7 7m0 0l-7-7m7 7V3"},
	},
	{
		ID:          ChevronDown,
		Name:        "Chevron down",
		Description: "Disclosure toggle.",
		Paths:       []string{"M19 9l-7 7-7-7"},
	},
}

// Catalog returns all icon definitions in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	id = ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
