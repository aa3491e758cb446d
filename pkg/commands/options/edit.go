// Package options defines shared flag helpers for CLI commands.
package options

import "github.com/spf13/cobra"

// EditOptions captures the safety flags shared by every mutating
// command.
type EditOptions struct {
	Force  bool
	DryRun bool
}

// AddEditArgs wires the safety flags on the provided command.
func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().BoolVar(&o.Force, "force", false,
		"Skip the revision safety check. Concurrent edits may be overwritten.")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false,
		"Preview the operations without executing them.")
}
