package batchfile

import (
	"errors"
	"testing"

	"tableflip.dev/redline/pkg/edit"
)

func TestParse(t *testing.T) {
	data := []byte(`[
	  {"type": "insert",  "startIndex": 100, "text": "New text\n"},
	  {"type": "delete",  "startIndex": 50,  "endIndex": 60},
	  {"type": "replace", "startIndex": 20,  "endIndex": 30, "text": "Replacement"}
	]`)
	ops, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(ops))
	}
	if ops[0].Kind != edit.Insert || ops[0].StartIndex != 100 || ops[0].Text != "New text\n" {
		t.Fatalf("unexpected insert: %+v", ops[0])
	}
	if ops[1].Kind != edit.Delete || ops[1].EndIndex != 60 {
		t.Fatalf("unexpected delete: %+v", ops[1])
	}
	if ops[2].Kind != edit.Replace || ops[2].Text != "Replacement" {
		t.Fatalf("unexpected replace: %+v", ops[2])
	}
}

func TestParseNamesOffendingRecord(t *testing.T) {
	data := []byte(`[
	  {"type": "insert", "startIndex": 10, "text": "ok"},
	  {"type": "delete", "startIndex": 60, "endIndex": 50}
	]`)
	_, err := Parse(data)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Record != 1 {
		t.Fatalf("expected record 1 named, got %d", perr.Record)
	}
	var badRange *edit.InvalidRangeError
	if !errors.As(err, &badRange) {
		t.Fatalf("expected the validation error to be wrapped, got %v", err)
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	var perr *ParseError
	if _, err := Parse([]byte(`[{"type": "upsert", "startIndex": 1}]`)); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if _, err := Parse([]byte(`[{"startIndex": 1}]`)); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for missing type, got %v", err)
	}
}

func TestParseRejectsMissingFields(t *testing.T) {
	cases := []string{
		`[{"type": "insert", "text": "no index"}]`,
		`[{"type": "insert", "startIndex": 5}]`,
		`[{"type": "delete", "startIndex": 5}]`,
		`[{"type": "replace", "startIndex": 5, "endIndex": 9}]`,
	}
	for _, c := range cases {
		var perr *ParseError
		if _, err := Parse([]byte(c)); !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for %s, got %v", c, err)
		}
	}
}

func TestParseRejectsNonArray(t *testing.T) {
	var perr *ParseError
	if _, err := Parse([]byte(`{"type": "insert"}`)); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if _, err := Parse([]byte(`not json at all`)); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for invalid JSON, got %v", err)
	}
}

func TestParseDecodesEscapes(t *testing.T) {
	ops, err := Parse([]byte(`[{"type": "insert", "startIndex": 2, "text": "a\\nb"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ops[0].Text != "a\nb" {
		t.Fatalf("escapes not decoded: %q", ops[0].Text)
	}
}
