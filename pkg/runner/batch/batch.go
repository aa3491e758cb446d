package batch

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/redline/pkg/batchfile"
	"tableflip.dev/redline/pkg/runner/submit"
)

// Batch runs every operation in a batch file as one atomic submission.
type Batch struct {
	submit.Submission

	File string
}

func (n *Batch) Do(ctx context.Context) error {
	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}
	ops, err := batchfile.Parse(data)
	if err != nil {
		return err
	}
	return n.Submission.Do(ctx, ops,
		fmt.Sprintf("executed %d operations from %s", len(ops), n.File))
}
