package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/commands/options"
	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/runner/insert"
	"tableflip.dev/redline/pkg/runner/submit"
)

func addInsert(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	fo := &options.FormatOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "insert <document> <index> <text>",
		Short: "Insert text at a specific index",
		Long: `Insert text at a character index with optional styling.

Indices are UTF-16 code units as reported by read; use \n in the text
for newlines. Text ending in a newline gets normal-text style unless
--style says otherwise, so new paragraphs do not inherit a heading
style from the insertion point.`,
		Example: `
redline insert <doc> 100 "New paragraph.\n"
redline insert <doc> 100 "Section Title\n" --style HEADING_2
redline insert <doc> 100 "Item 1\nItem 2\n" --bullet BULLET_DISC_CIRCLE_SQUARE
redline insert <doc> 100 "# Title\n- point one\n- point two" --markdown
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			if err := fo.Validate(); err != nil {
				return err
			}
			gw, err := newGateway()
			if err != nil {
				return err
			}
			n := insert.Insert{
				Submission: submit.Submission{
					DocumentID: doc.ExtractDocumentID(args[0]),
					Force:      eo.Force,
					DryRun:     eo.DryRun,
					JSON:       oo.JSON,
					Gateway:    gw,
				},
				Index:      index,
				Text:       args[2],
				Markdown:   fo.Markdown,
				Formatting: fo.Formatting(),
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddEditArgs(cmd, eo)
	options.AddFormatArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
