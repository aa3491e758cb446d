package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/commands/options"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/replace"
	"tableflip.dev/redline/pkg/runner/submit"
)

func addReplace(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "replace <document> <start> <end> <text>",
		Short: "Replace a range with new text",
		Long: `Replace text between start and end indices with new text.

The replacement is an insert at the range end followed by a delete of
the range, ordered so neither shifts the other.`,
		Example: `
redline replace 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms 20 45 "New text here.\n"
`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			end, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}
			gw, err := newGateway()
			if err != nil {
				return err
			}
			n := replace.Replace{
				Submission: submit.Submission{
					DocumentID: doc.ExtractDocumentID(args[0]),
					Force:      eo.Force,
					DryRun:     eo.DryRun,
					JSON:       oo.JSON,
					Gateway:    gw,
				},
				Start: start,
				End:   end,
				Text:  args[3],
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
