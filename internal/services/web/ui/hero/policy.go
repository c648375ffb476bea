package hero

import (
	"strconv"
	"strings"

	"github.com/radchenko/landing/internal/services/web/ui/responsive"
)

// Alignment is the horizontal alignment of the text block.
type Alignment string

const (
	// AlignCenter centres the text block under the portrait.
	AlignCenter Alignment = "center"
	// AlignStart aligns the text block to the leading edge beside the portrait.
	AlignStart  Alignment = "start"
)

// Rule is the layout that holds from its breakpoint upwards.
type Rule struct {
	Columns         int
	TextOrder       int
	ImageOrder      int
	Align           Alignment
	ScrollIndicator bool
}

// PolicyEntry binds a rule to a breakpoint name (responsive.Base for the
// unprefixed rule).
type PolicyEntry struct {
	Breakpoint string
	Rule       Rule
}

// Policy lists rules in ascending breakpoint order; the first entry must be
// the base rule.
type Policy []PolicyEntry

// LayoutPolicy is the hero layout: stacked with the portrait first on narrow
// screens, two columns with the copy first from lg up.
var LayoutPolicy = Policy{
	{Breakpoint: responsive.Base, Rule: Rule{Columns: 1, TextOrder: 2, ImageOrder: 1, Align: AlignCenter}},
	{Breakpoint: "lg", Rule: Rule{Columns: 2, TextOrder: 1, ImageOrder: 2, Align: AlignStart, ScrollIndicator: true}},
}

// layoutClasses holds the responsive class lists derived from a Policy.
type layoutClasses struct {
	grid          string
	textBlock     string
	imageBlock    string
	imageJustify  string
	paragraphEdge string
	actions       string
	scroll        string
}

func (p Policy) classes() layoutClasses {
	return layoutClasses{
		grid: p.derive(func(r Rule) string { return "grid-cols-" + strconv.Itoa(r.Columns) }),
		textBlock: join(
			p.derive(func(r Rule) string { return "order-" + strconv.Itoa(r.TextOrder) }),
			p.derive(func(r Rule) string { return r.Align.textClass() }),
		),
		imageBlock:    p.derive(func(r Rule) string { return "order-" + strconv.Itoa(r.ImageOrder) }),
		imageJustify:  p.derive(func(r Rule) string { return r.Align.imageJustifyClass() }),
		paragraphEdge: p.derive(func(r Rule) string { return r.Align.marginClass() }),
		actions:       p.derive(func(r Rule) string { return r.Align.justifyClass() }),
		scroll: p.derive(func(r Rule) string {
			if r.ScrollIndicator {
				return "flex"
			}
			return "hidden"
		}),
	}
}

// derive emits one class per entry, prefixed by its breakpoint, skipping
// entries that repeat the value already in effect.
func (p Policy) derive(class func(Rule) string) string {
	out := make([]string, 0, len(p))
	previous := ""
	for _, entry := range p {
		value := class(entry.Rule)
		if value == "" || value == previous {
			continue
		}
		previous = value
		out = append(out, responsive.Prefix(entry.Breakpoint, value))
	}
	return strings.Join(out, " ")
}

func (a Alignment) textClass() string {
	if a == AlignStart {
		return "text-left"
	}
	return "text-center"
}

func (a Alignment) justifyClass() string {
	if a == AlignStart {
		return "justify-start"
	}
	return "justify-center"
}

// imageJustifyClass pushes the portrait to the outer edge when the copy is
// start-aligned.
func (a Alignment) imageJustifyClass() string {
	if a == AlignStart {
		return "justify-end"
	}
	return "justify-center"
}

func (a Alignment) marginClass() string {
	if a == AlignStart {
		return "mx-0"
	}
	return "mx-auto"
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
