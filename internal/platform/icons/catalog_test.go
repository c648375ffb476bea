package icons

import "testing"

func TestCatalogIDsAreUniqueAndDrawable(t *testing.T) {
	t.Parallel()

	seen := map[ID]bool{}
	for _, def := range Catalog() {
		if seen[def.ID] {
			t.Fatalf("duplicate icon id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Name == "" {
			t.Fatalf("icon %q has no name", def.ID)
		}
		if len(def.Paths) == 0 {
			t.Fatalf("icon %q has no paths", def.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	def, ok := Lookup(" arrow-down ")
	if !ok {
		t.Fatal("expected arrow-down to exist")
	}
	if def.Paths[0] != "M19 14l-7 7m0 0l-7-7m7 7V3" {
		t.Fatalf("arrow-down path = %q", def.Paths[0])
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatal("expected missing icon lookup to fail")
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	t.Parallel()

	defs := Catalog()
	defs[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Fatal("Catalog exposed internal slice")
	}
}
