// Package edit holds the operation model and the offset-safe batch
// scheduler. Operations are specified against a single snapshot of a
// document; Schedule orders them so that sequential application against
// the live document lands every operation on the range it named.
package edit

// Kind is the closed set of primitive operations.
type Kind string

const (
	Insert  Kind = "insert"
	Delete  Kind = "delete"
	Replace Kind = "replace"
)

// StyleSpan applies a paragraph style or list preset to a sub-range of
// an inserted text, addressed relative to the insertion point.
type StyleSpan struct {
	Offset       int64
	Length       int64
	NamedStyle   string
	BulletPreset string
}

// Formatting carries style directives for inserted text. The scheduler
// and reporter treat it as opaque; only the gateway interprets it.
type Formatting struct {
	NamedStyle    string
	BulletPreset  string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool

	// Spans carries per-line styles produced by markdown translation.
	Spans []StyleSpan
}

// IsZero reports whether no directive is set.
func (f Formatting) IsZero() bool {
	return f.NamedStyle == "" && f.BulletPreset == "" &&
		!f.Bold && !f.Italic && !f.Underline && !f.Strikethrough && !f.Code &&
		len(f.Spans) == 0
}

// Operation is a single edit request. Indices are UTF-16 code units
// against the snapshot the caller read; index 0 is reserved.
type Operation struct {
	Kind       Kind
	StartIndex int64
	EndIndex   int64 // delete and replace only
	Text       string
	Formatting *Formatting
}

// NewInsert builds an insert at index. Escape sequences in text are
// decoded first. When the decoded text ends in a line terminator and no
// explicit paragraph style was given, the insert forces normal-text
// style on the inserted span so it does not inherit a heading style
// from whatever precedes the insertion point.
func NewInsert(index int64, text string, f *Formatting) (Operation, error) {
	if index < 1 {
		return Operation{}, &InvalidIndexError{Index: index}
	}
	decoded := DecodeEscapes(text)

	if len(decoded) > 0 && decoded[len(decoded)-1] == '\n' {
		if f == nil {
			f = &Formatting{NamedStyle: StyleNormalText}
		} else if f.NamedStyle == "" && len(f.Spans) == 0 {
			g := *f
			g.NamedStyle = StyleNormalText
			f = &g
		}
	}
	return Operation{Kind: Insert, StartIndex: index, Text: decoded, Formatting: f}, nil
}

// NewDelete builds a delete of the half-open range [start, end).
func NewDelete(start, end int64) (Operation, error) {
	if start < 1 {
		return Operation{}, &InvalidIndexError{Index: start}
	}
	if end <= start {
		return Operation{}, &InvalidRangeError{Start: start, End: end}
	}
	return Operation{Kind: Delete, StartIndex: start, EndIndex: end}, nil
}

// NewReplace builds a replace of [start, end) with text. Escape
// sequences in text are decoded.
func NewReplace(start, end int64, text string, f *Formatting) (Operation, error) {
	if start < 1 {
		return Operation{}, &InvalidIndexError{Index: start}
	}
	if end <= start {
		return Operation{}, &InvalidRangeError{Start: start, End: end}
	}
	return Operation{Kind: Replace, StartIndex: start, EndIndex: end, Text: DecodeEscapes(text), Formatting: f}, nil
}

// StyleNormalText is the service's name for the default paragraph
// style.
const StyleNormalText = "NORMAL_TEXT"
