package del

import (
	"context"
	"fmt"

	"tableflip.dev/redline/pkg/edit"
	"tableflip.dev/redline/pkg/runner/submit"
)

// Delete removes the half-open range [Start, End).
type Delete struct {
	submit.Submission

	Start int64
	End   int64
}

func (n *Delete) Do(ctx context.Context) error {
	op, err := edit.NewDelete(n.Start, n.End)
	if err != nil {
		return err
	}
	return n.Submission.Do(ctx, []edit.Operation{op},
		fmt.Sprintf("deleted range [%d, %d)", n.Start, n.End))
}
