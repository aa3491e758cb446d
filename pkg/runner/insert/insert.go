package insert

import (
	"context"
	"fmt"

	"tableflip.dev/redline/pkg/edit"
	"tableflip.dev/redline/pkg/markdown"
	"tableflip.dev/redline/pkg/runner/submit"
)

// Insert inserts text at an index, optionally styled or translated
// from markdown.
type Insert struct {
	submit.Submission

	Index      int64
	Text       string
	Markdown   bool
	Formatting edit.Formatting
}

func (n *Insert) Do(ctx context.Context) error {
	var (
		op  edit.Operation
		err error
	)
	if n.Markdown {
		op, err = markdown.Translate(n.Index, edit.DecodeEscapes(n.Text))
	} else {
		f := n.Formatting
		var fp *edit.Formatting
		if !f.IsZero() {
			fp = &f
		}
		op, err = edit.NewInsert(n.Index, n.Text, fp)
	}
	if err != nil {
		return err
	}
	return n.Submission.Do(ctx, []edit.Operation{op},
		fmt.Sprintf("inserted text at index %d", n.Index))
}
