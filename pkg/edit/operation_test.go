package edit

import (
	"errors"
	"testing"
)

func TestNewInsertValidation(t *testing.T) {
	var badIndex *InvalidIndexError
	if _, err := NewInsert(0, "x", nil); !errors.As(err, &badIndex) {
		t.Fatalf("expected InvalidIndexError for index 0, got %v", err)
	}
	if _, err := NewInsert(-4, "x", nil); !errors.As(err, &badIndex) {
		t.Fatalf("expected InvalidIndexError for negative index, got %v", err)
	}
	op, err := NewInsert(1, "x", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != Insert || op.StartIndex != 1 || op.Text != "x" {
		t.Fatalf("unexpected operation: %+v", op)
	}
}

func TestNewInsertDecodesEscapes(t *testing.T) {
	op, err := NewInsert(5, `one\ntwo\n`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Text != "one\ntwo\n" {
		t.Fatalf("escapes not decoded: %q", op.Text)
	}
}

// Text ending in a line terminator forces normal-text style unless the
// caller chose one, so the new paragraph does not inherit a heading
// style from the insertion point.
func TestNewInsertAutoStyle(t *testing.T) {
	op, err := NewInsert(5, `paragraph\n`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Formatting == nil || op.Formatting.NamedStyle != StyleNormalText {
		t.Fatalf("expected auto normal-text style, got %+v", op.Formatting)
	}

	op, err = NewInsert(5, `heading\n`, &Formatting{NamedStyle: "HEADING_2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Formatting.NamedStyle != "HEADING_2" {
		t.Fatalf("explicit style overridden: %+v", op.Formatting)
	}

	op, err = NewInsert(5, "no terminator", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Formatting != nil {
		t.Fatalf("style must not be forced without a line terminator: %+v", op.Formatting)
	}
}

func TestNewInsertAutoStyleKeepsOtherFlags(t *testing.T) {
	op, err := NewInsert(5, `bolded\n`, &Formatting{Bold: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !op.Formatting.Bold || op.Formatting.NamedStyle != StyleNormalText {
		t.Fatalf("expected bold plus auto style, got %+v", op.Formatting)
	}
}

func TestNewDeleteValidation(t *testing.T) {
	var badRange *InvalidRangeError
	if _, err := NewDelete(10, 10); !errors.As(err, &badRange) {
		t.Fatalf("expected InvalidRangeError for empty range, got %v", err)
	}
	if _, err := NewDelete(10, 4); !errors.As(err, &badRange) {
		t.Fatalf("expected InvalidRangeError for inverted range, got %v", err)
	}
	var badIndex *InvalidIndexError
	if _, err := NewDelete(0, 4); !errors.As(err, &badIndex) {
		t.Fatalf("expected InvalidIndexError, got %v", err)
	}
	if _, err := NewDelete(4, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewReplaceValidation(t *testing.T) {
	var badRange *InvalidRangeError
	if _, err := NewReplace(8, 8, "x", nil); !errors.As(err, &badRange) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
	op, err := NewReplace(2, 8, `new\n`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Kind != Replace || op.Text != "new\n" {
		t.Fatalf("unexpected operation: %+v", op)
	}
}
