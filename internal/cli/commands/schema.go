package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	var keyCols []string

	cmd := &cobra.Command{
		Use:   "schema TABLE",
		Short: "Show a table's columns, kinds and key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadKeyed(cmd, args[0], keyCols)
			if err != nil {
				return err
			}

			inKey := make(map[string]bool)
			for _, k := range t.Key() {
				inKey[k] = true
			}

			w := table.NewWriter()
			w.SetOutputMirror(cmd.OutOrStdout())
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"column", "kind", "key"})
			f := t.Frame()
			for i := 0; i < f.NumCols(); i++ {
				c, err := f.ColumnAt(i)
				if err != nil {
					return err
				}
				mark := ""
				if inKey[c.Name] {
					mark = "*"
				}
				w.AppendRow(table.Row{c.Name, c.Kind.String(), mark})
			}
			w.Render()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keyCols, "key", nil, "Key columns (overrides configured key)")

	return cmd
}
