// Package submit carries the shared tail of every mutating runner:
// schedule, preview or guard, apply, report.
package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/redline/pkg/edit"
	"tableflip.dev/redline/pkg/gateway"
	"tableflip.dev/redline/pkg/printers"
)

// Submission is embedded by the mutating runners.
type Submission struct {
	DocumentID string
	Force      bool
	DryRun     bool
	JSON       bool

	Gateway gateway.Gateway
}

// Do schedules ops and either previews or submits them. Unless Force
// is set, the document's current revision is captured immediately
// before the mutation and attached as a precondition.
func (s *Submission) Do(ctx context.Context, ops []edit.Operation, what string) error {
	plan := edit.NewPlan(ops)

	if s.DryRun {
		entries := edit.Preview(plan.Ordered, nil)
		if s.JSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		pp := printers.PrettyPrint{}
		pp.Plan(entries)
		return nil
	}

	guard := edit.Bypassed()
	if !s.Force {
		rev, err := s.Gateway.Revision(ctx, s.DocumentID)
		if err != nil {
			return err
		}
		guard = edit.NewGuard(rev)
	}

	res, err := s.Gateway.Apply(ctx, s.DocumentID, plan.Ordered, guard)
	if err != nil {
		return err
	}

	if s.JSON {
		out, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Applied(res.Applied, what)
	return nil
}
