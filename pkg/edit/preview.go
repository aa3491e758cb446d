package edit

import (
	"fmt"

	"tableflip.dev/redline/pkg/doc"
)

// ReportEntry describes one step of a planned submission.
type ReportEntry struct {
	Kind       Kind   `json:"kind"`
	StartIndex int64  `json:"startIndex"`
	EndIndex   int64  `json:"endIndex,omitempty"`
	Text       string `json:"text,omitempty"`

	// Current is the snapshot text a delete would remove, when a
	// snapshot was available to read it from.
	Current string `json:"current,omitempty"`
}

// String renders the entry the way the CLI prints a plan line.
func (r ReportEntry) String() string {
	switch r.Kind {
	case Insert:
		return fmt.Sprintf("insert %q at index %d", r.Text, r.StartIndex)
	case Delete:
		if r.Current != "" {
			return fmt.Sprintf("delete [%d, %d) removing %q", r.StartIndex, r.EndIndex, r.Current)
		}
		return fmt.Sprintf("delete [%d, %d)", r.StartIndex, r.EndIndex)
	default:
		return fmt.Sprintf("%s [%d, %d)", r.Kind, r.StartIndex, r.EndIndex)
	}
}

// Preview reports what a scheduled sequence would do, in the exact
// order it would be submitted, without touching the remote document.
// snapshot may be nil; when present it is only read, never mutated, and
// delete entries carry the text they would remove.
func Preview(ordered []Operation, snapshot *doc.Snapshot) []ReportEntry {
	entries := make([]ReportEntry, 0, len(ordered))
	for _, op := range ordered {
		e := ReportEntry{
			Kind:       op.Kind,
			StartIndex: op.StartIndex,
			EndIndex:   op.EndIndex,
			Text:       op.Text,
		}
		if snapshot != nil && op.Kind == Delete {
			if cur, ok := snapshot.TextRange(op.StartIndex, op.EndIndex); ok {
				e.Current = cur
			}
		}
		entries = append(entries, e)
	}
	return entries
}
