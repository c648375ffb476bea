// Package catalog holds the landing page copy: one YAML file per locale and
// namespace under locales/, embedded into the binary.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the locale every lookup falls back to.
	BaseLocale = "ru-RU"

	// NamespaceCore holds page chrome: titles, meta and status pages.
	NamespaceCore = "core"
	// NamespaceHero holds the hero section copy.
	NamespaceHero = "hero"
)

var namespaces = []string{NamespaceCore, NamespaceHero}

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle maps locale to message key to text.
type Bundle struct {
	messages map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the embedded bundle. Its messages are registered with
// x/text/message on package init.
func Default() *Bundle {
	return defaultBundle
}

// Load reads locales/<locale>/<namespace>.yaml files from fsys. Every file
// must name the locale and namespace its path implies, and every key must
// carry the namespace prefix. The base locale must provide every namespace.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	seen := map[string]bool{}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, err
		}
		seen[p] = true
	}

	for _, ns := range namespaces {
		if !seen[path.Join("locales", BaseLocale, ns+".yaml")] {
			return nil, fmt.Errorf("base locale %s is missing namespace %q", BaseLocale, ns)
		}
	}
	return bundle, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q does not match directory %q", p, locale, dirLocale)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", p, locale, err)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q does not match file name %q", p, namespace, fileNamespace)
	}
	if !slices.Contains(namespaces, namespace) {
		return fmt.Errorf("catalog %s: unknown namespace %q", p, namespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: no messages", p)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("catalog %s: key %q lacks prefix %q", p, key, namespace+".")
		}
		messages[key] = value
	}
	return nil
}

// Locales returns the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the text for key in locale, falling back to the base
// locale when the locale or the key is missing.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}

// Register hands every message to x/text/message, under both the full tag
// and its base language, so message.Printer lookups resolve "en" as well as
// "en-US".
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != tag.String() {
			tags = append(tags, language.Make(base.String()))
		}
		for key, value := range b.messages[locale] {
			for _, t := range tags {
				if err := message.SetString(t, key, value); err != nil {
					return fmt.Errorf("register %s/%s: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

func mustLoadEmbedded() *Bundle {
	bundle, err := Load(embeddedFS)
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
