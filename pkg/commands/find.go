package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/commands/options"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/find"
)

func addFind(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "find <document> <heading>",
		Short: "Find a section by heading text",
		Long: `Locate a section by its exact heading text and return the heading and
content ranges. The content range runs to the next heading of the same
or higher level. When several headings share the text, the first wins.`,
		Example: `
redline find 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms "Background"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateway()
			if err != nil {
				return err
			}
			f := find.Find{
				DocumentID: doc.ExtractDocumentID(args[0]),
				Heading:    args[1],
				JSON:       oo.JSON,
				Gateway:    gw,
			}
			return oo.HandleError(f.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
