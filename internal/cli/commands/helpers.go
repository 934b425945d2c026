package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/keyframe/internal/csvio"
	"github.com/leapstack-labs/keyframe/pkg/frame"
	"github.com/leapstack-labs/keyframe/pkg/keyed"
)

// resolvePath returns the argument as-is when it names an existing file,
// otherwise it looks in the configured data directory, trying a .csv suffix
// for bare table names.
func resolvePath(cmd *cobra.Command, arg string) string {
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	cfg := ConfigFrom(cmd)
	candidate := filepath.Join(cfg.DataDir, arg)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if !strings.HasSuffix(arg, ".csv") {
		withExt := filepath.Join(cfg.DataDir, arg+".csv")
		if _, err := os.Stat(withExt); err == nil {
			return withExt
		}
	}
	return arg
}

// loadKeyed loads a CSV file and wraps it with a key. An explicit --key wins
// over the key configured for the table name; with neither, the table gets an
// empty key.
func loadKeyed(cmd *cobra.Command, arg string, keyFlag []string) (*keyed.Table, error) {
	f, err := csvio.Load(resolvePath(cmd, arg))
	if err != nil {
		return nil, err
	}
	key := keyFlag
	if len(key) == 0 {
		key = ConfigFrom(cmd).KeyFor(arg)
	}
	return keyed.New(f, key...)
}

// parseOnPairs parses --on entries: either a shared column name or an
// explicit left=right pair.
func parseOnPairs(entries []string) ([]frame.OnPair, error) {
	pairs := make([]frame.OnPair, 0, len(entries))
	for _, e := range entries {
		left, right, found := strings.Cut(e, "=")
		if !found {
			right = left
		}
		if left == "" || right == "" {
			return nil, fmt.Errorf("invalid on column %q (want NAME or LEFT=RIGHT)", e)
		}
		pairs = append(pairs, frame.OnPair{Left: left, Right: right})
	}
	return pairs, nil
}

// outputFormat resolves the effective output format for a command.
func outputFormat(cmd *cobra.Command) string {
	return ConfigFrom(cmd).OutputFormat
}

// writeResult renders the frame to stdout, or saves it as CSV when an output
// path is set.
func writeResult(cmd *cobra.Command, f *frame.Frame, outputPath string) error {
	if outputPath != "" {
		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputPath, err)
		}
		defer out.Close()
		return csvio.Save(out, f)
	}
	return RenderFrame(cmd.OutOrStdout(), f, outputFormat(cmd))
}
