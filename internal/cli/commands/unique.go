package commands

import (
	"github.com/spf13/cobra"
)

// NewUniqueCommand creates the unique command.
func NewUniqueCommand() *cobra.Command {
	var (
		keyCols []string
		by      []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "unique TABLE",
		Short: "Drop duplicate rows",
		Long: `Drop duplicate rows from a CSV table, keeping first occurrences.

Without --by, rows compare on the table's key columns only, giving
distinct-by-key semantics rather than whole-row distinct.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadKeyed(cmd, args[0], keyCols)
			if err != nil {
				return err
			}
			deduped, err := t.Unique(by...)
			if err != nil {
				return err
			}
			return writeResult(cmd, deduped.Frame(), output)
		},
	}

	cmd.Flags().StringSliceVar(&keyCols, "key", nil, "Key columns (overrides configured key)")
	cmd.Flags().StringSliceVar(&by, "by", nil, "Dedup columns (default: key columns)")
	cmd.Flags().StringVarP(&output, "output", "O", "", "Write the result to a CSV file")

	return cmd
}
