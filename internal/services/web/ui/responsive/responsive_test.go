package responsive

import (
	"reflect"
	"testing"
)

func TestResolveAppliesBreakpointsMobileFirst(t *testing.T) {
	t.Parallel()

	classes := "order-2 lg:order-1 text-center lg:text-left grid-cols-1 lg:grid-cols-2"

	narrow := Resolve(classes, 375)
	if narrow.Order != 2 || narrow.TextAlign != "center" || narrow.Columns != 1 {
		t.Fatalf("narrow = %+v", narrow)
	}

	wide := Resolve(classes, 1280)
	if wide.Order != 1 || wide.TextAlign != "left" || wide.Columns != 2 {
		t.Fatalf("wide = %+v", wide)
	}

	edge := Resolve(classes, 1024)
	if edge.Order != 1 {
		t.Fatalf("at lg threshold order = %d, want 1", edge.Order)
	}
	belowEdge := Resolve(classes, 1023)
	if belowEdge.Order != 2 {
		t.Fatalf("below lg threshold order = %d, want 2", belowEdge.Order)
	}
}

func TestResolveDisplay(t *testing.T) {
	t.Parallel()

	classes := "hidden lg:flex justify-center mt-16"
	if got := Resolve(classes, 768); !got.Hidden() {
		t.Fatalf("md display = %q, want none", got.Display)
	}
	if got := Resolve(classes, 1440); got.Display != DisplayFlex {
		t.Fatalf("xl display = %q, want flex", got.Display)
	}
}

func TestResolveIgnoresNonBreakpointVariants(t *testing.T) {
	t.Parallel()

	got := Resolve("block hover:hidden lg:hover:hidden dark:order-3 text-4xl md:text-5xl", 1600)
	if got.Display != DisplayBlock {
		t.Fatalf("display = %q, want block", got.Display)
	}
	if got.Order != 0 {
		t.Fatalf("order = %d, want 0", got.Order)
	}
	if got.TextAlign != "" {
		t.Fatalf("text align = %q, want empty", got.TextAlign)
	}
}

func TestResolveOrderKeywords(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"order-first": -9999,
		"order-last":  9999,
		"order-none":  0,
		"-order-2":    -2,
		"order-12":    12,
		"order-x":     0,
	}
	for classes, want := range tests {
		if got := Resolve(classes, 0).Order; got != want {
			t.Fatalf("Resolve(%q).Order = %d, want %d", classes, got, want)
		}
	}
}

func TestPaintOrder(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		{Name: "text", Classes: "order-2 lg:order-1"},
		{Name: "image", Classes: "order-1 lg:order-2"},
		{Name: "aside", Classes: "hidden xl:block order-3"},
	}
	if got := PaintOrder(blocks, 390); !reflect.DeepEqual(got, []string{"image", "text"}) {
		t.Fatalf("narrow paint order = %v", got)
	}
	if got := PaintOrder(blocks, 1100); !reflect.DeepEqual(got, []string{"text", "image"}) {
		t.Fatalf("lg paint order = %v", got)
	}
	if got := PaintOrder(blocks, 1300); !reflect.DeepEqual(got, []string{"text", "image", "aside"}) {
		t.Fatalf("xl paint order = %v", got)
	}
}

func TestLookupAndPrefix(t *testing.T) {
	t.Parallel()

	bp, ok := Lookup("lg")
	if !ok || bp.MinWidthPX != 1024 {
		t.Fatalf("Lookup(lg) = %+v, %t", bp, ok)
	}
	if _, ok := Lookup("tablet"); ok {
		t.Fatal("Lookup(tablet) found unknown breakpoint")
	}
	if got := Prefix("lg", "order-1"); got != "lg:order-1" {
		t.Fatalf("Prefix() = %q", got)
	}
	if got := Prefix(Base, "order-1"); got != "order-1" {
		t.Fatalf("Prefix(base) = %q", got)
	}
}
