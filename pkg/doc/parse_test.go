package doc

import (
	"errors"
	"testing"
)

const rawDocument = `{
  "documentId": "doc-123",
  "title": "Design Notes",
  "revisionId": "rev-7",
  "body": {
    "content": [
      {"startIndex": 0, "endIndex": 1, "sectionBreak": {}},
      {
        "startIndex": 1, "endIndex": 12,
        "paragraph": {
          "paragraphStyle": {"namedStyleType": "HEADING_1"},
          "elements": [{"textRun": {"content": "Background\n"}}]
        }
      },
      {
        "startIndex": 12, "endIndex": 25,
        "paragraph": {
          "paragraphStyle": {"namedStyleType": "NORMAL_TEXT"},
          "elements": [
            {"textRun": {"content": "Some "}},
            {"textRun": {"content": "context.\n"}}
          ]
        }
      },
      {"startIndex": 25, "endIndex": 33, "table": {"rows": 2}}
    ]
  }
}`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(rawDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.DocumentID != "doc-123" || snap.Title != "Design Notes" || snap.RevisionID != "rev-7" {
		t.Fatalf("unexpected identity: %+v", snap)
	}
	if len(snap.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(snap.Elements))
	}
	if snap.Elements[0].Kind != KindHeading1 || snap.Elements[0].Text != "Background\n" {
		t.Fatalf("unexpected first element: %+v", snap.Elements[0])
	}
	if snap.Elements[1].Kind != KindParagraph || snap.Elements[1].Text != "Some context.\n" {
		t.Fatalf("text runs not concatenated: %+v", snap.Elements[1])
	}
	if snap.Elements[2].Kind != KindTable || snap.Elements[2].RawKind != "table" {
		t.Fatalf("unexpected table element: %+v", snap.Elements[2])
	}
	if snap.TotalLength != 33 {
		t.Fatalf("expected total length 33, got %d", snap.TotalLength)
	}
}

// Elements must partition [1, totalLength): no gaps, no overlaps.
func TestParseRejectsGaps(t *testing.T) {
	raw := `{
  "documentId": "d", "revisionId": "r",
  "body": {"content": [
    {"startIndex": 1, "endIndex": 5, "paragraph": {"elements": [{"textRun": {"content": "abc\n"}}]}},
    {"startIndex": 7, "endIndex": 9, "paragraph": {"elements": [{"textRun": {"content": "x\n"}}]}}
  ]}
}`
	_, err := Parse([]byte(raw))
	var malformed *MalformedDocumentError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDocumentError, got %v", err)
	}
	if malformed.Index != 7 {
		t.Fatalf("expected offending index 7, got %d", malformed.Index)
	}
}

func TestParseRejectsEmptyBody(t *testing.T) {
	var malformed *MalformedDocumentError
	if _, err := Parse([]byte(`{"documentId": "d", "body": {"content": []}}`)); !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDocumentError, got %v", err)
	}
	if _, err := Parse([]byte(`not json`)); !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDocumentError for invalid JSON, got %v", err)
	}
}

func TestParseUnknownStyleFallsBack(t *testing.T) {
	raw := `{
  "documentId": "d", "revisionId": "r",
  "body": {"content": [
    {"startIndex": 1, "endIndex": 6, "paragraph": {
      "paragraphStyle": {"namedStyleType": "FANCY_QUOTE"},
      "elements": [{"textRun": {"content": "text\n"}}]}}
  ]}
}`
	snap, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Elements[0].Kind != KindParagraph {
		t.Fatalf("expected paragraph fallback, got %s", snap.Elements[0].Kind)
	}
	if snap.Elements[0].RawKind != "FANCY_QUOTE" {
		t.Fatalf("raw kind not preserved: %q", snap.Elements[0].RawKind)
	}
}

func TestExtractDocumentID(t *testing.T) {
	cases := map[string]string{
		"1BxiMVs0XRA5nFMdKvBdBZ": "1BxiMVs0XRA5nFMdKvBdBZ",
		"https://docs.google.com/document/d/1BxiMVs0XRA5nFMdKvBdBZ/edit": "1BxiMVs0XRA5nFMdKvBdBZ",
		"https://docs.google.com/document/d/abc123":                      "abc123",
	}
	for in, want := range cases {
		if got := ExtractDocumentID(in); got != want {
			t.Fatalf("ExtractDocumentID(%q) = %q, want %q", in, got, want)
		}
	}
}
