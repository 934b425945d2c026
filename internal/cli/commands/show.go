package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var (
		keyCols []string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "show TABLE",
		Short: "Print a table",
		Long: `Load a CSV table and print it.

The table argument is a path or a bare table name resolved in the
configured data directory.`,
		Example: `  # Print a CSV file
  keyframe show orders.csv

  # First ten rows of a configured table, as JSON
  keyframe show orders -n 10 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadKeyed(cmd, args[0], keyCols)
			if err != nil {
				return err
			}
			if limit > 0 {
				t = t.Head(limit)
			}
			if err := RenderFrame(cmd.OutOrStdout(), t.Frame(), outputFormat(cmd)); err != nil {
				return err
			}
			if key := t.Key(); len(key) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "key: %s\n", strings.Join(key, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keyCols, "key", nil, "Key columns (overrides configured key)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print only the first N rows")

	return cmd
}
