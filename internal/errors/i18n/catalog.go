// Package i18n provides localized message catalogs for error codes and
// stack disablement reasons.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable message key (duplicated from the errors
// package to avoid an import cycle).
type Code = string

// BaseLocale is the fallback locale.
const BaseLocale = "en-US"

// Catalog maps message codes to templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

// NewCatalog creates a catalog for a locale.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	return &Catalog{locale: locale, messages: messages}
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{
		BaseLocale: enUSCatalog,
	}
)

// GetCatalog returns the best catalog for the given locale using BCP 47
// matching, falling back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return lookup(BaseLocale)
	}

	catalogsMu.RLock()
	tags := make([]language.Tag, 0, len(catalogs))
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		tags = append(tags, language.Make(name))
		names = append(names, name)
	}
	catalogsMu.RUnlock()

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(language.Make(requested))
	if confidence == language.No {
		return lookup(BaseLocale)
	}
	return lookup(names[index])
}

func lookup(name string) *Catalog {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	if c, ok := catalogs[name]; ok {
		return c
	}
	return enUSCatalog
}

// RegisterCatalog registers a catalog for a locale, replacing any
// previous registration. Intended for init-time and test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the code itself if no template is found. Templates are
// executed even with nil metadata so variables render as empty strings.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
