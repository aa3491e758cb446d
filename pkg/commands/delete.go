package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/commands/options"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/del"
	"tableflip.dev/redline/pkg/runner/submit"
)

func addDelete(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "delete <document> <start> <end>",
		Short: "Delete a range of text",
		Long:  "Delete text between start and end indices (start inclusive, end exclusive).",
		Example: `
redline delete 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms 50 75
`,
		Args: cobra.ExactArgs(3),
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
			n := del.Delete{
				Submission: submit.Submission{
					DocumentID: doc.ExtractDocumentID(args[0]),
					Force:      eo.Force,
					DryRun:     eo.DryRun,
					JSON:       oo.JSON,
					Gateway:    gw,
				},
				Start: start,
				End:   end,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
