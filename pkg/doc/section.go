package doc

import "strings"

// Section is the located range of a heading and the content that
// follows it.
type Section struct {
	Heading           string `json:"heading"`
	Level             int    `json:"level"`
	HeadingStartIndex int64  `json:"headingStartIndex"`
	HeadingEndIndex   int64  `json:"headingEndIndex"`
	ContentStartIndex int64  `json:"contentStartIndex"`
	ContentEndIndex   int64  `json:"contentEndIndex"`
}

// FindSection locates a heading by exact text match, the trailing line
// terminator stripped. When several headings share the same text the
// first occurrence wins. The content range runs from the end of the
// heading to the next heading of the same or higher level (title and
// subtitle count as level 0), or to the end of the document.
func FindSection(s *Snapshot, heading string) (Section, error) {
	for i, el := range s.Elements {
		level, ok := el.Kind.HeadingLevel()
		if !ok {
			continue
		}
		if strings.TrimSuffix(el.Text, "\n") != heading {
			continue
		}

		sec := Section{
			Heading:           heading,
			Level:             level,
			HeadingStartIndex: el.StartIndex,
			HeadingEndIndex:   el.EndIndex,
			ContentStartIndex: el.EndIndex,
			ContentEndIndex:   s.TotalLength,
		}
		for _, next := range s.Elements[i+1:] {
			nl, isHeading := next.Kind.HeadingLevel()
			if isHeading && nl <= level {
				sec.ContentEndIndex = next.StartIndex
				break
			}
		}
		return sec, nil
	}
	return Section{}, &SectionNotFoundError{Heading: heading}
}
