package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/read"
)

func addRead(topLevel *cobra.Command) {
	format := "json"

	cmd := &cobra.Command{
		Use:   "read <document>",
		Short: "Read document structure and content",
		Long:  "Fetch the full document with structure (headings, paragraphs) and character indices.",
		Example: `
redline read 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
redline read https://docs.google.com/document/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit --format text
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json", "text", "table":
			default:
				return fmt.Errorf("unknown format %q: expected json, text, or table", format)
			}
			gw, err := newGateway()
			if err != nil {
				return err
			}
			r := read.Read{
				DocumentID: doc.ExtractDocumentID(args[0]),
				Format:     format,
				Gateway:    gw,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&format, "format", "json",
		"Output format: json for structured data, text for plain text, table for a summary.")

	topLevel.AddCommand(cmd)
}
