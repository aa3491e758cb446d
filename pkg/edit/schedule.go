package edit

import "sort"

// Plan is one batch of operations: the caller's set in the order it
// was given, and the sequence the scheduler would actually submit.
type Plan struct {
	Operations []Operation
	Ordered    []Operation
}

// NewPlan schedules ops and captures both orders.
func NewPlan(ops []Operation) Plan {
	return Plan{Operations: ops, Ordered: Schedule(ops)}
}

// Schedule orders a batch for sequential submission. Every operation is
// specified against one shared snapshot, but each applied operation
// shifts the indices of everything after its own range. Applying in
// strictly descending order of start index sidesteps that: by the time
// any operation is applied, everything already applied targeted indices
// at or above its end, so its own range has not moved.
//
// Replace expands to an insert at the range end followed by a delete of
// the range; the insert lands first, so the delete cannot shift it.
//
// The sort is stable. At equal start index an insert orders before a
// delete, otherwise input order is kept. Schedule is pure: it does no
// bounds checking against a live document and no overlap detection
// between distinct operations.
func Schedule(ops []Operation) []Operation {
	expanded := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if op.Kind == Replace {
			expanded = append(expanded,
				Operation{Kind: Insert, StartIndex: op.EndIndex, Text: op.Text, Formatting: op.Formatting},
				Operation{Kind: Delete, StartIndex: op.StartIndex, EndIndex: op.EndIndex},
			)
			continue
		}
		expanded = append(expanded, op)
	}

	sort.SliceStable(expanded, func(i, j int) bool {
		if expanded[i].StartIndex != expanded[j].StartIndex {
			return expanded[i].StartIndex > expanded[j].StartIndex
		}
		return expanded[i].Kind == Insert && expanded[j].Kind == Delete
	})
	return expanded
}
