package doc

import (
	"strings"

	"github.com/tidwall/gjson"
)

var namedStyles = map[string]Kind{
	"NORMAL_TEXT": KindParagraph,
	"TITLE":       KindTitle,
	"SUBTITLE":    KindSubtitle,
	"HEADING_1":   KindHeading1,
	"HEADING_2":   KindHeading2,
	"HEADING_3":   KindHeading3,
	"HEADING_4":   KindHeading4,
	"HEADING_5":   KindHeading5,
	"HEADING_6":   KindHeading6,
}

// Parse decomposes a raw document, as returned by the remote service,
// into a Snapshot. The body must break down into contiguous,
// non-overlapping elements covering [1, totalLength); anything else is a
// MalformedDocumentError.
func Parse(raw []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &MalformedDocumentError{Reason: "response is not valid JSON"}
	}
	root := gjson.ParseBytes(raw)

	s := &Snapshot{
		DocumentID: root.Get("documentId").String(),
		Title:      root.Get("title").String(),
		RevisionID: root.Get("revisionId").String(),
	}

	content := root.Get("body.content")
	if !content.IsArray() {
		return nil, &MalformedDocumentError{Reason: "document has no body content"}
	}

	var text strings.Builder
	for _, item := range content.Array() {
		el, ok := parseElement(item)
		if !ok {
			continue
		}
		// The leading section break covers [0, 1); index 0 is reserved
		// and never addressable.
		if el.EndIndex <= 1 {
			continue
		}
		s.Elements = append(s.Elements, el)
		text.WriteString(el.Text)
	}
	s.FullText = text.String()

	if len(s.Elements) == 0 {
		return nil, &MalformedDocumentError{Reason: "document body is empty"}
	}
	s.TotalLength = s.Elements[len(s.Elements)-1].EndIndex

	if err := checkContiguous(s.Elements, s.TotalLength); err != nil {
		return nil, err
	}
	return s, nil
}

func parseElement(item gjson.Result) (Element, bool) {
	el := Element{
		StartIndex: item.Get("startIndex").Int(),
		EndIndex:   item.Get("endIndex").Int(),
	}

	switch {
	case item.Get("paragraph").Exists():
		p := item.Get("paragraph")
		var text strings.Builder
		for _, run := range p.Get("elements").Array() {
			text.WriteString(run.Get("textRun.content").String())
		}
		el.Text = text.String()
		raw := p.Get("paragraphStyle.namedStyleType").String()
		el.RawKind = raw
		if kind, ok := namedStyles[raw]; ok {
			el.Kind = kind
		} else {
			el.Kind = KindParagraph
		}
	case item.Get("table").Exists():
		el.Kind = KindTable
		el.RawKind = "table"
		el.Text = "[TABLE]\n"
	case item.Get("sectionBreak").Exists():
		el.Kind = KindSectionBreak
		el.RawKind = "sectionBreak"
	default:
		el.Kind = KindOther
		for key := range item.Map() {
			if key != "startIndex" && key != "endIndex" {
				el.RawKind = key
				break
			}
		}
	}
	return el, true
}

func checkContiguous(elements []Element, total int64) error {
	expect := int64(1)
	for _, el := range elements {
		if el.StartIndex != expect {
			return &MalformedDocumentError{
				Reason: "elements are not contiguous",
				Index:  el.StartIndex,
			}
		}
		if el.EndIndex <= el.StartIndex {
			return &MalformedDocumentError{
				Reason: "element range is inverted or empty",
				Index:  el.StartIndex,
			}
		}
		expect = el.EndIndex
	}
	if expect != total {
		return &MalformedDocumentError{
			Reason: "elements do not cover the document",
			Index:  expect,
		}
	}
	return nil
}

// ExtractDocumentID accepts either a bare document id or a full document
// URL and returns the id. URLs carry the id in the path segment after
// "/d/".
func ExtractDocumentID(idOrURL string) string {
	if !strings.Contains(idOrURL, "docs.google.com") {
		return idOrURL
	}
	parts := strings.Split(idOrURL, "/")
	for i, p := range parts {
		if p == "d" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return idOrURL
}
