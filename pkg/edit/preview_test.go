package edit

import (
	"reflect"
	"testing"

	"tableflip.dev/redline/pkg/doc"
)

func previewSnapshot() *doc.Snapshot {
	return &doc.Snapshot{
		DocumentID:  "d",
		RevisionID:  "r1",
		FullText:    "Hello world\n",
		TotalLength: 13,
		Elements: []doc.Element{
			{Kind: doc.KindParagraph, Text: "Hello world\n", StartIndex: 1, EndIndex: 13},
		},
	}
}

func TestPreviewMatchesSubmissionOrder(t *testing.T) {
	ops := []Operation{
		{Kind: Insert, StartIndex: 3, Text: "x"},
		{Kind: Delete, StartIndex: 7, EndIndex: 12},
	}
	entries := Preview(Schedule(ops), previewSnapshot())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != Delete || entries[0].StartIndex != 7 {
		t.Fatalf("preview order differs from schedule: %+v", entries)
	}
	if entries[1].Kind != Insert || entries[1].Text != "x" {
		t.Fatalf("unexpected insert entry: %+v", entries[1])
	}
}

func TestPreviewReportsCurrentText(t *testing.T) {
	ops := []Operation{{Kind: Delete, StartIndex: 7, EndIndex: 12}}
	entries := Preview(Schedule(ops), previewSnapshot())
	if entries[0].Current != "world" {
		t.Fatalf("expected removed text %q, got %q", "world", entries[0].Current)
	}
}

// Preview never mutates the snapshot and is identical across calls.
func TestPreviewIdempotent(t *testing.T) {
	snap := previewSnapshot()
	before := *snap

	ops := []Operation{
		{Kind: Replace, StartIndex: 2, EndIndex: 5, Text: "yy"},
		{Kind: Insert, StartIndex: 9, Text: "z"},
	}
	ordered := Schedule(ops)
	first := Preview(ordered, snap)
	second := Preview(ordered, snap)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("preview not deterministic:\n%v\n%v", first, second)
	}
	if !reflect.DeepEqual(before, *snap) {
		t.Fatalf("preview mutated the snapshot")
	}
}

func TestPreviewWithoutSnapshot(t *testing.T) {
	ops := []Operation{{Kind: Delete, StartIndex: 2, EndIndex: 4}}
	entries := Preview(Schedule(ops), nil)
	if entries[0].Current != "" {
		t.Fatalf("no snapshot, no current text: %+v", entries[0])
	}
}
