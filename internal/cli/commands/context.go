// Package commands implements the keyframe CLI subcommands.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/keyframe/internal/cli/config"
)

// configKey is used to store config in context.
type configKey struct{}

// WithConfig stores the loaded config in a context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom retrieves the loaded config from the command's context. Commands
// run without the root's setup (tests, mostly) get defaults.
func ConfigFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{DataDir: config.DefaultDataDir, OutputFormat: config.DefaultOutput}
}
