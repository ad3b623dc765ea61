package i18n

import "testing"

func TestGetCatalogFallsBackToBase(t *testing.T) {
	tests := []struct {
		name   string
		locale string
	}{
		{"empty", ""},
		{"unregistered", "xx-XX"},
		{"garbage", "not a locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetCatalog(tt.locale)
			if c.Locale() != BaseLocale {
				t.Errorf("locale = %q, want %q", c.Locale(), BaseLocale)
			}
		})
	}
}

func TestGetCatalogMatchesRegionalVariant(t *testing.T) {
	// en-GB has no catalog of its own but should match en-US.
	c := GetCatalog("en-GB")
	if c.Locale() != BaseLocale {
		t.Errorf("locale = %q, want %q", c.Locale(), BaseLocale)
	}
}

func TestGetCatalogPrefersRegisteredLocale(t *testing.T) {
	RegisterCatalog("pt-BR", NewCatalog("pt-BR", map[Code]string{
		ReasonFateNone: "Sem destino disponível",
	}))

	c := GetCatalog("pt-BR")
	if c.Locale() != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", c.Locale())
	}
	if got := c.Format(ReasonFateNone, nil); got != "Sem destino disponível" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		metadata map[string]string
		want     string
	}{
		{"plain message", ReasonFateNone, nil, "No fate available"},
		{"templated", CodeEntityInvalidKind, map[string]string{"Kind": "relic"}, "Unknown entity kind relic"},
		{"template without metadata", CodeEntityInvalidKind, nil, "Unknown entity kind "},
		{"unknown code echoes", "NO_SUCH_CODE", nil, "NO_SUCH_CODE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enUSCatalog.Format(tt.code, tt.metadata); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
