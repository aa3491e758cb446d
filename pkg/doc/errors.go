package doc

import "fmt"

// MalformedDocumentError reports a raw document that could not be
// decomposed into contiguous, non-overlapping elements.
type MalformedDocumentError struct {
	Reason string
	Index  int64
}

func (e *MalformedDocumentError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("malformed document: %s (at index %d)", e.Reason, e.Index)
	}
	return fmt.Sprintf("malformed document: %s", e.Reason)
}

// SectionNotFoundError reports that no heading matched the query
// exactly.
type SectionNotFoundError struct {
	Heading string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("no heading matches %q", e.Heading)
}
