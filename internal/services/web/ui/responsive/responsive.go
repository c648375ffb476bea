// Package responsive models mobile-first breakpoints and resolves which
// responsive utility classes apply at a given viewport width.
//
// Utilities are applied in layers: unprefixed classes first, then each active
// breakpoint prefix in ascending min-width order, so wider breakpoints win.
package responsive

import (
	"sort"
	"strconv"
	"strings"
)

// Breakpoint is a named min-width threshold.
type Breakpoint struct {
	Name       string
	MinWidthPX int
}

// Base is the unprefixed layer that applies at every width.
const Base = ""

var breakpoints = []Breakpoint{
	{Name: "sm", MinWidthPX: 640},
	{Name: "md", MinWidthPX: 768},
	{Name: "lg", MinWidthPX: 1024},
	{Name: "xl", MinWidthPX: 1280},
	{Name: "2xl", MinWidthPX: 1536},
}

// Breakpoints returns the known breakpoints in ascending order.
func Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpoints))
	copy(out, breakpoints)
	return out
}

// Lookup returns the breakpoint called name. Base resolves to a zero-width
// breakpoint.
func Lookup(name string) (Breakpoint, bool) {
	if name == Base {
		return Breakpoint{}, true
	}
	for _, bp := range breakpoints {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// Prefix returns the class with the breakpoint variant prefix applied.
func Prefix(name string, class string) string {
	if name == Base || class == "" {
		return class
	}
	return name + ":" + class
}

// Display values produced by display utilities.
const (
	DisplayNone        = "none"
	DisplayBlock       = "block"
	DisplayFlex        = "flex"
	DisplayGrid        = "grid"
	DisplayInline      = "inline"
	DisplayInlineFlex  = "inline-flex"
	DisplayInlineBlock = "inline-block"
)

var displayUtilities = map[string]string{
	"hidden":       DisplayNone,
	"block":        DisplayBlock,
	"flex":         DisplayFlex,
	"grid":         DisplayGrid,
	"inline":       DisplayInline,
	"inline-flex":  DisplayInlineFlex,
	"inline-block": DisplayInlineBlock,
}

var alignUtilities = map[string]string{
	"text-left":   "left",
	"text-center": "center",
	"text-right":  "right",
	"text-start":  "start",
	"text-end":    "end",
}

// Computed is the effective value of the layout utilities at one width.
// Zero values mean no utility set the property.
type Computed struct {
	Order     int
	Display   string
	TextAlign string
	Columns   int
}

// Hidden reports whether the element is removed from layout.
func (c Computed) Hidden() bool {
	return c.Display == DisplayNone
}

// Resolve computes the layout utilities from classes at widthPX.
func Resolve(classes string, widthPX int) Computed {
	byLayer := map[string][]string{}
	for _, token := range strings.Fields(classes) {
		layer, utility := splitVariant(token)
		byLayer[layer] = append(byLayer[layer], utility)
	}

	var out Computed
	apply(&out, byLayer[Base])
	for _, bp := range breakpoints {
		if widthPX < bp.MinWidthPX {
			break
		}
		apply(&out, byLayer[bp.Name])
	}
	return out
}

// splitVariant separates a breakpoint prefix. Tokens with other variants
// (hover:, focus:, stacked variants) land in a layer that is never applied.
func splitVariant(token string) (string, string) {
	idx := strings.IndexByte(token, ':')
	if idx < 0 {
		return Base, token
	}
	prefix, rest := token[:idx], token[idx+1:]
	if _, ok := Lookup(prefix); !ok || prefix == Base || strings.Contains(rest, ":") {
		return "!" + token, ""
	}
	return prefix, rest
}

func apply(out *Computed, utilities []string) {
	for _, utility := range utilities {
		if display, ok := displayUtilities[utility]; ok {
			out.Display = display
			continue
		}
		if align, ok := alignUtilities[utility]; ok {
			out.TextAlign = align
			continue
		}
		if order, ok := parseOrder(utility); ok {
			out.Order = order
			continue
		}
		if cols, ok := parseIntSuffix(utility, "grid-cols-"); ok {
			out.Columns = cols
		}
	}
}

func parseOrder(utility string) (int, bool) {
	switch utility {
	case "order-first":
		return -9999, true
	case "order-last":
		return 9999, true
	case "order-none":
		return 0, true
	}
	if strings.HasPrefix(utility, "-order-") {
		n, ok := parseIntSuffix(utility, "-order-")
		return -n, ok
	}
	return parseIntSuffix(utility, "order-")
}

func parseIntSuffix(utility string, prefix string) (int, bool) {
	if !strings.HasPrefix(utility, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(utility, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Block is a named element and its class list.
type Block struct {
	Name    string
	Classes string
}

// PaintOrder returns the names of the visible blocks in the order a flex or
// grid container paints them at widthPX. Equal orders keep source order.
func PaintOrder(blocks []Block, widthPX int) []string {
	type resolved struct {
		name  string
		order int
	}
	visible := make([]resolved, 0, len(blocks))
	for _, block := range blocks {
		computed := Resolve(block.Classes, widthPX)
		if computed.Hidden() {
			continue
		}
		visible = append(visible, resolved{name: block.Name, order: computed.Order})
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].order < visible[j].order
	})
	out := make([]string, 0, len(visible))
	for _, item := range visible {
		out = append(out, item.name)
	}
	return out
}
