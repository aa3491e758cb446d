package markdown

import (
	"testing"

	"tableflip.dev/redline/pkg/edit"
)

func TestTranslate(t *testing.T) {
	op, err := Translate(10, "# Title\nBody text\n- item one\n- item two\n1. step")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != edit.Insert || op.StartIndex != 10 {
		t.Fatalf("unexpected operation: %+v", op)
	}
	want := "Title\nBody text\nitem one\nitem two\nstep\n"
	if op.Text != want {
		t.Fatalf("plain text = %q, want %q", op.Text, want)
	}

	spans := op.Formatting.Spans
	if len(spans) != 4 {
		t.Fatalf("expected 4 styled spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].NamedStyle != "HEADING_1" || spans[0].Offset != 0 || spans[0].Length != 6 {
		t.Fatalf("unexpected heading span: %+v", spans[0])
	}
	if spans[1].BulletPreset != bulletPreset || spans[1].Offset != 16 || spans[1].Length != 9 {
		t.Fatalf("unexpected bullet span: %+v", spans[1])
	}
	if spans[2].BulletPreset != bulletPreset || spans[2].Offset != 25 {
		t.Fatalf("unexpected second bullet span: %+v", spans[2])
	}
	if spans[3].BulletPreset != numberedPreset || spans[3].Offset != 34 || spans[3].Length != 5 {
		t.Fatalf("unexpected numbered span: %+v", spans[3])
	}
}

func TestTranslateHeadingLevels(t *testing.T) {
	op, err := Translate(1, "## Two\n### Three")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := op.Formatting.Spans
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].NamedStyle != "HEADING_2" || spans[1].NamedStyle != "HEADING_3" {
		t.Fatalf("unexpected styles: %+v", spans)
	}
	if spans[1].Offset != 4 {
		t.Fatalf("expected second span at offset 4, got %d", spans[1].Offset)
	}
}

func TestTranslatePlainParagraphs(t *testing.T) {
	op, err := Translate(1, "just\ntext")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Text != "just\ntext\n" {
		t.Fatalf("unexpected text: %q", op.Text)
	}
	if len(op.Formatting.Spans) != 0 {
		t.Fatalf("plain lines must carry no spans: %+v", op.Formatting.Spans)
	}
}

func TestTranslateRejectsBadIndex(t *testing.T) {
	if _, err := Translate(0, "x"); err == nil {
		t.Fatalf("expected error for index 0")
	}
}
