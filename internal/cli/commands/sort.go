package commands

import (
	"github.com/spf13/cobra"
)

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	var (
		keyCols []string
		by      []string
		reverse bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "sort TABLE",
		Short: "Sort a table",
		Long: `Sort a CSV table's rows.

Without --by, rows sort by the table's key columns, first key column
most significant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadKeyed(cmd, args[0], keyCols)
			if err != nil {
				return err
			}
			sorted, err := t.Sort(by, reverse)
			if err != nil {
				return err
			}
			return writeResult(cmd, sorted.Frame(), output)
		},
	}

	cmd.Flags().StringSliceVar(&keyCols, "key", nil, "Key columns (overrides configured key)")
	cmd.Flags().StringSliceVar(&by, "by", nil, "Sort columns (default: key columns)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort descending")
	cmd.Flags().StringVarP(&output, "output", "O", "", "Write the result to a CSV file")

	return cmd
}
