package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := Load(embeddedFS)
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got := bundle.Locales()
	if len(got) != 2 || got[0] != "en-US" || got[1] != BaseLocale {
		t.Fatalf("Locales() = %v", got)
	}
	if value, ok := bundle.Message(BaseLocale, "hero.consult_cta"); !ok || value == "" {
		t.Fatalf("Message(%s, hero.consult_cta) = %q, %t", BaseLocale, value, ok)
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle, err := Load(embeddedFS)
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.messages[BaseLocale]
	for _, locale := range bundle.Locales() {
		messages := bundle.messages[locale]
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s is missing key %q", locale, key)
			}
		}
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, base has %d", locale, len(messages), len(base))
		}
	}
}

func TestLoadRejectsKeyOutsideNamespace(t *testing.T) {
	dir := writeBaseCatalogs(t)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/hero.yaml"), `locale: "en-US"
namespace: "hero"
messages:
  "core.bad": "nope"
`)

	if _, err := Load(os.DirFS(dir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadRejectsLocaleMismatch(t *testing.T) {
	dir := writeBaseCatalogs(t)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/core.yaml"), `locale: "de-DE"
namespace: "core"
messages:
  "core.a": "a"
`)

	if _, err := Load(os.DirFS(dir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadRejectsUnknownNamespace(t *testing.T) {
	dir := writeBaseCatalogs(t)
	mustWriteFile(t, filepath.Join(dir, "locales/ru-RU/footer.yaml"), `locale: "ru-RU"
namespace: "footer"
messages:
  "footer.a": "a"
`)

	if _, err := Load(os.DirFS(dir)); err == nil {
		t.Fatal("expected unknown namespace error")
	}
}

func TestLoadRequiresEveryBaseNamespace(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/ru-RU/core.yaml"), `locale: "ru-RU"
namespace: "core"
messages:
  "core.a": "a"
`)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/hero.yaml"), `locale: "en-US"
namespace: "hero"
messages:
  "hero.a": "a"
`)

	if _, err := Load(os.DirFS(dir)); err == nil {
		t.Fatal("expected missing base namespace error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := writeBaseCatalogs(t)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/core.yaml"), "locale: [\n")

	if _, err := Load(os.DirFS(dir)); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	dir := writeBaseCatalogs(t)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.shared": "shared"
`)

	bundle, err := Load(os.DirFS(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, ok := bundle.Message("en-US", "core.shared"); !ok || got != "shared" {
		t.Fatalf("Message(en-US, core.shared) = %q, %t", got, ok)
	}
	if got, ok := bundle.Message("en-US", "core.only_base"); !ok || got != "база" {
		t.Fatalf("Message(en-US, core.only_base) = %q, %t", got, ok)
	}
	if got, ok := bundle.Message("fr-FR", "hero.title"); !ok || got != "Заголовок" {
		t.Fatalf("Message(fr-FR, hero.title) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("en-US", "core.missing"); ok {
		t.Fatal("expected missing key")
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()
	for _, tag := range []string{"en-US", "en"} {
		printer := message.NewPrinter(language.MustParse(tag))
		if got := printer.Sprintf("core.back_home"); got != "Back to home" {
			t.Fatalf("%s: Sprintf(core.back_home) = %q", tag, got)
		}
	}
}

func writeBaseCatalogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/ru-RU/core.yaml"), `locale: "ru-RU"
namespace: "core"
messages:
  "core.only_base": "база"
  "core.shared": "общий"
`)
	mustWriteFile(t, filepath.Join(dir, "locales/ru-RU/hero.yaml"), `locale: "ru-RU"
namespace: "hero"
messages:
  "hero.title": "Заголовок"
`)
	return dir
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
