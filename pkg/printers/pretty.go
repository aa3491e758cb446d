// Package printers renders snapshots, sections, plans, and results for
// the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/edit"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Snapshot prints the document structure as a table of elements.
func (pp *PrettyPrint) Snapshot(s *doc.Snapshot) {
	pp.Title(s.Title)

	faint := color.New(color.Faint)
	_, _ = faint.Printf("%s at revision %s, length %d\n\n", s.DocumentID, s.RevisionID, s.TotalLength)

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("RANGE", "TYPE", "TEXT")
	for _, el := range s.Elements {
		table.AddRow(
			fmt.Sprintf("[%d, %d)", el.StartIndex, el.EndIndex),
			string(el.Kind),
			oneLine(el.Text),
		)
	}
	fmt.Println(table)
}

// Section prints a located section's ranges.
func (pp *PrettyPrint) Section(sec doc.Section) {
	pp.Title(sec.Heading)

	table := uitable.New()
	table.AddRow("heading:", fmt.Sprintf("[%d, %d)", sec.HeadingStartIndex, sec.HeadingEndIndex))
	table.AddRow("content:", fmt.Sprintf("[%d, %d)", sec.ContentStartIndex, sec.ContentEndIndex))
	table.AddRow("level:", fmt.Sprintf("%d", sec.Level))
	fmt.Println(table)
}

// Plan prints a dry-run report in submission order.
func (pp *PrettyPrint) Plan(entries []edit.ReportEntry) {
	y := color.New(color.FgHiYellow)
	_, _ = y.Println("dry run: nothing will be written")

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("#", "OP", "RANGE", "TEXT")
	for i, e := range entries {
		rng := fmt.Sprintf("@%d", e.StartIndex)
		if e.EndIndex > 0 {
			rng = fmt.Sprintf("[%d, %d)", e.StartIndex, e.EndIndex)
		}
		table.AddRow(fmt.Sprintf("%d", i+1), string(e.Kind), rng, oneLine(e.Text))
	}
	fmt.Println(table)
}

// Applied prints a mutation result.
func (pp *PrettyPrint) Applied(n int, what string) {
	g := color.New(color.FgGreen)
	switch n {
	case 1:
		_, _ = g.Printf("✓ applied 1 operation: %s\n", what)
	default:
		_, _ = g.Printf("✓ applied %d operations: %s\n", n, what)
	}
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	return s
}
