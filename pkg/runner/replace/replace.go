package replace

import (
	"context"
	"fmt"

	"tableflip.dev/redline/pkg/edit"
	"tableflip.dev/redline/pkg/runner/submit"
)

// Replace swaps the half-open range [Start, End) for new text.
type Replace struct {
	submit.Submission

	Start int64
	End   int64
	Text  string
}

func (n *Replace) Do(ctx context.Context) error {
	op, err := edit.NewReplace(n.Start, n.End, n.Text, nil)
	if err != nil {
		return err
	}
	return n.Submission.Do(ctx, []edit.Operation{op},
		fmt.Sprintf("replaced range [%d, %d)", n.Start, n.End))
}
