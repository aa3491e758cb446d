// Package markdown translates a small markdown dialect into a single
// insert operation with per-line style spans: # ## ### headings, - and
// * bullets, and 1. numbered items. Inline emphasis is not translated.
package markdown

import (
	"regexp"
	"strings"

	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/edit"
)

var numbered = regexp.MustCompile(`^\d+\.\s(.*)$`)

const (
	bulletPreset   = "BULLET_DISC_CIRCLE_SQUARE"
	numberedPreset = "NUMBERED_DECIMAL_ALPHA_ROMAN"
)

// Translate converts markdown text into one insert at index. Line
// prefixes are stripped from the inserted text; the styles they imply
// are carried as spans relative to the insertion point, which the
// gateway turns into style requests over the inserted ranges.
func Translate(index int64, text string) (edit.Operation, error) {
	if index < 1 {
		return edit.Operation{}, &edit.InvalidIndexError{Index: index}
	}

	var (
		plain  strings.Builder
		spans  []edit.StyleSpan
		offset int64
	)

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		clean, style, preset := classify(line)
		length := doc.Length(clean)
		if style != "" || preset != "" {
			spans = append(spans, edit.StyleSpan{
				Offset:       offset,
				Length:       length,
				NamedStyle:   style,
				BulletPreset: preset,
			})
		}
		plain.WriteString(clean)
		offset += length
	}

	return edit.Operation{
		Kind:       edit.Insert,
		StartIndex: index,
		Text:       plain.String(),
		Formatting: &edit.Formatting{Spans: spans},
	}, nil
}

// classify strips the markdown prefix from one line and names the
// style it implied. Every line comes back terminated, matching the
// paragraph model of the remote service.
func classify(line string) (clean, style, preset string) {
	switch {
	case strings.HasPrefix(line, "# "):
		return line[2:] + "\n", "HEADING_1", ""
	case strings.HasPrefix(line, "## "):
		return line[3:] + "\n", "HEADING_2", ""
	case strings.HasPrefix(line, "### "):
		return line[4:] + "\n", "HEADING_3", ""
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return line[2:] + "\n", "", bulletPreset
	}
	if m := numbered.FindStringSubmatch(line); m != nil {
		return m[1] + "\n", "", numberedPreset
	}
	return line + "\n", "", ""
}
