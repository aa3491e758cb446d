package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/commands/options"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/batch"
	"tableflip.dev/redline/pkg/runner/submit"
)

func addBatch(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "batch <document> <operations.json>",
		Short: "Execute multiple operations from a JSON file",
		Long: `Run multiple insert/delete/replace operations atomically from a JSON
file. All operations are specified against the indices of one read;
the scheduler orders them so earlier edits cannot shift later ones.

File format: a JSON array of records
  {"type": "insert",  "startIndex": 100, "text": "New text"}
  {"type": "delete",  "startIndex": 50,  "endIndex": 60}
  {"type": "replace", "startIndex": 20,  "endIndex": 30, "text": "Other"}`,
		Example: `
redline batch 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms ops.json --dry-run
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateway()
			if err != nil {
				return err
			}
			n := batch.Batch{
				Submission: submit.Submission{
					DocumentID: doc.ExtractDocumentID(args[0]),
					Force:      eo.Force,
					DryRun:     eo.DryRun,
					JSON:       oo.JSON,
					Gateway:    gw,
				},
				File: args[1],
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
