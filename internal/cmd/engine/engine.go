// Package engine parses engine command flags and runs the MCP server.
package engine

import (
	"context"
	"flag"
	"log"

	platformcmd "github.com/louisbranch/greymark/internal/platform/cmd"
	"github.com/louisbranch/greymark/internal/services/mcp/domain"
	"github.com/louisbranch/greymark/internal/services/mcp/service"
	"github.com/louisbranch/greymark/internal/storage/sqlite"
	"github.com/louisbranch/greymark/internal/systems/greymark"
	"github.com/louisbranch/greymark/internal/telemetry"
)

// Config holds engine command configuration.
type Config struct {
	StoragePath     string `env:"GREYMARK_STORAGE_PATH"      envDefault:"greymark.db"`
	Locale          string `env:"GREYMARK_LOCALE"            envDefault:"en-US"`
	DefaultFateBase bool   `env:"GREYMARK_DEFAULT_FATE_BASE" envDefault:"false"`
	FateTraitTag    string `env:"GREYMARK_FATE_TRAIT_TAG"    envDefault:"fate"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for rendered error messages")
	fs.BoolVar(&cfg.DefaultFateBase, "default-fate-base", cfg.DefaultFateBase, "seed fate stacks at the default base instead of the fate trait")
	fs.StringVar(&cfg.FateTraitTag, "fate-trait-tag", cfg.FateTraitTag, "trait tag that backs fate stacks")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RulesConfig converts command configuration into a rules configuration.
func (c Config) RulesConfig() greymark.Config {
	rules := greymark.DefaultConfig()
	rules.DefaultFateBase = c.DefaultFateBase
	if c.FateTraitTag != "" {
		rules.FateTraitTag = c.FateTraitTag
	}
	return rules
}

// Run opens the engine store and serves MCP on stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceEngine, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		server, err := service.NewServer(domain.Deps{
			Store:   store,
			Emitter: telemetry.NewEmitter(store),
			Rules:   cfg.RulesConfig(),
			Locale:  cfg.Locale,
		})
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	})
}
