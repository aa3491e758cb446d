// Package doc models a fetched document as an immutable snapshot of
// structural elements addressed by UTF-16 code-unit indices.
package doc

import (
	"strings"
	"unicode/utf16"
)

// Kind classifies a structural element.
type Kind string

const (
	KindTitle        Kind = "title"
	KindSubtitle     Kind = "subtitle"
	KindHeading1     Kind = "heading1"
	KindHeading2     Kind = "heading2"
	KindHeading3     Kind = "heading3"
	KindHeading4     Kind = "heading4"
	KindHeading5     Kind = "heading5"
	KindHeading6     Kind = "heading6"
	KindParagraph    Kind = "paragraph"
	KindTable        Kind = "table"
	KindSectionBreak Kind = "sectionBreak"
	KindOther        Kind = "other"
)

// IsHeading reports whether the kind participates in section scoping.
// Title and subtitle count as headings with level 0.
func (k Kind) IsHeading() bool {
	_, ok := k.HeadingLevel()
	return ok
}

// HeadingLevel returns the heading level for heading kinds: 1-6 for
// heading1..heading6, 0 for title and subtitle.
func (k Kind) HeadingLevel() (int, bool) {
	switch k {
	case KindTitle, KindSubtitle:
		return 0, true
	case KindHeading1:
		return 1, true
	case KindHeading2:
		return 2, true
	case KindHeading3:
		return 3, true
	case KindHeading4:
		return 4, true
	case KindHeading5:
		return 5, true
	case KindHeading6:
		return 6, true
	}
	return 0, false
}

// Element is one structural run of the document body. Indices are a
// half-open UTF-16 code-unit range.
type Element struct {
	Kind       Kind   `json:"type"`
	Text       string `json:"text"`
	StartIndex int64  `json:"startIndex"`
	EndIndex   int64  `json:"endIndex"`

	// RawKind preserves the service's own classifier for elements the
	// snapshot does not model (tables, breaks, unknown styles).
	RawKind string `json:"rawKind,omitempty"`
}

// Snapshot is an immutable view of a document at one revision. It is
// never mutated after Parse, so it is safe to share between readers.
type Snapshot struct {
	DocumentID  string    `json:"documentId"`
	Title       string    `json:"title"`
	RevisionID  string    `json:"revisionId"`
	Elements    []Element `json:"content"`
	FullText    string    `json:"fullText"`
	TotalLength int64     `json:"totalLength"`
}

// TextRange returns the snapshot text covering the half-open code-unit
// range [start, end). The second return is false when the range falls
// outside the addressable body [1, TotalLength).
func (s *Snapshot) TextRange(start, end int64) (string, bool) {
	if start < 1 || end < start || end > s.TotalLength {
		return "", false
	}
	var b strings.Builder
	pos := int64(1) // index 0 is reserved, FullText begins at index 1
	for _, r := range s.FullText {
		w := int64(utf16.RuneLen(r))
		if pos >= end {
			break
		}
		if pos >= start {
			b.WriteRune(r)
		}
		pos += w
	}
	if pos < end {
		return "", false
	}
	return b.String(), true
}

// Length returns the UTF-16 code-unit length of s, the unit the remote
// service addresses by.
func Length(s string) int64 {
	var n int64
	for _, r := range s {
		n += int64(utf16.RuneLen(r))
	}
	return n
}
