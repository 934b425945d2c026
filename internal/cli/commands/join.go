package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/keyframe/pkg/frame"
	"github.com/leapstack-labs/keyframe/pkg/keyed"
)

// JoinOptions holds options for the join command.
type JoinOptions struct {
	Kind     string
	On       []string
	LeftKey  []string
	RightKey []string
	Output   string
}

// NewJoinCommand creates the join command.
func NewJoinCommand() *cobra.Command {
	opts := &JoinOptions{}

	cmd := &cobra.Command{
		Use:   "join LEFT RIGHT",
		Short: "Join two tables",
		Long: `Join two CSV tables.

Without --on, the join columns default to the key columns the two
tables share; keys come from --key/--right-key or the project config.
The result keeps the left table's key semantics.`,
		Example: `  # Inner join on shared key columns
  keyframe join orders customers

  # Left join on an explicit column pair
  keyframe join orders customers --kind left --on customer_id=id

  # Anti join, written to a file
  keyframe join orders shipped --kind anti --output pending.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "inner", "Join kind: inner, left, right, outer, semi, anti, cross")
	cmd.Flags().StringSliceVar(&opts.On, "on", nil, "Join columns (NAME or LEFT=RIGHT)")
	cmd.Flags().StringSliceVar(&opts.LeftKey, "key", nil, "Left table key columns")
	cmd.Flags().StringSliceVar(&opts.RightKey, "right-key", nil, "Right table key columns")
	cmd.Flags().StringVarP(&opts.Output, "output", "O", "", "Write the result to a CSV file")

	return cmd
}

func runJoin(cmd *cobra.Command, args []string, opts *JoinOptions) error {
	kind, err := frame.ParseJoinKind(opts.Kind)
	if err != nil {
		return err
	}
	left, err := loadKeyed(cmd, args[0], opts.LeftKey)
	if err != nil {
		return err
	}
	right, err := loadKeyed(cmd, args[1], opts.RightKey)
	if err != nil {
		return err
	}
	on, err := parseOnPairs(opts.On)
	if err != nil {
		return err
	}

	result, err := keyed.Join(left, right, kind, on...)
	if err != nil {
		return err
	}

	if err := writeResult(cmd, result.Frame(), opts.Output); err != nil {
		return err
	}
	if key := result.Key(); len(key) > 0 && opts.Output == "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "key: %s\n", strings.Join(key, ", "))
	}
	return nil
}
