package engine

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("engine", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StoragePath != "greymark.db" {
		t.Errorf("storage path = %q, want default", cfg.StoragePath)
	}
	if cfg.Locale != "en-US" {
		t.Errorf("locale = %q, want en-US", cfg.Locale)
	}
	if cfg.DefaultFateBase {
		t.Error("default fate base should be off by default")
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("GREYMARK_STORAGE_PATH", "/from/env.db")
	t.Setenv("GREYMARK_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("engine", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-storage-path", "/from/flag.db", "-default-fate-base"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StoragePath != "/from/flag.db" {
		t.Errorf("storage path = %q, want flag override", cfg.StoragePath)
	}
	if cfg.Locale != "pt-BR" {
		t.Errorf("locale = %q, want env value", cfg.Locale)
	}
	if !cfg.DefaultFateBase {
		t.Error("expected flag to enable default fate base")
	}
}

func TestRulesConfig(t *testing.T) {
	cfg := Config{DefaultFateBase: true, FateTraitTag: "destiny"}
	rules := cfg.RulesConfig()
	if !rules.DefaultFateBase {
		t.Error("expected default fate base to carry over")
	}
	if rules.FateTraitTag != "destiny" {
		t.Errorf("fate trait tag = %q, want destiny", rules.FateTraitTag)
	}
	if rules.RestrictedAttr == "" {
		t.Error("expected restricted attribute from the default ruleset")
	}

	blank := Config{}
	if blank.RulesConfig().FateTraitTag == "" {
		t.Error("blank tag should fall back to the default ruleset tag")
	}
}
