package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/redline/pkg/edit"
)

var paragraphStyles = []string{
	"NORMAL_TEXT", "TITLE", "SUBTITLE",
	"HEADING_1", "HEADING_2", "HEADING_3",
	"HEADING_4", "HEADING_5", "HEADING_6",
}

var bulletPresets = []string{
	"BULLET_DISC_CIRCLE_SQUARE", "BULLET_DIAMONDX_ARROW3D_SQUARE",
	"BULLET_CHECKBOX", "BULLET_ARROW_DIAMOND_DISC",
	"NUMBERED_DECIMAL_ALPHA_ROMAN", "NUMBERED_DECIMAL_ALPHA_ROMAN_PARENS",
	"NUMBERED_DECIMAL_NESTED", "NUMBERED_UPPERALPHA_ALPHA_ROMAN",
	"NUMBERED_UPPERROMAN_UPPERALPHA_DECIMAL", "NUMBERED_ZERODECIMAL_ALPHA_ROMAN",
}

// FormatOptions captures the styling flags of insert.
type FormatOptions struct {
	Style         string
	Bullet        string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
	Markdown      bool
}

// AddFormatArgs wires the styling flags on the provided command.
func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVar(&o.Style, "style", "",
		fmt.Sprintf("Paragraph style, one of %v.", paragraphStyles))
	cmd.Flags().StringVar(&o.Bullet, "bullet", "",
		fmt.Sprintf("Bullet or numbered list preset, one of %v.", bulletPresets))
	cmd.Flags().BoolVar(&o.Bold, "bold", false, "Make the text bold.")
	cmd.Flags().BoolVar(&o.Italic, "italic", false, "Make the text italic.")
	cmd.Flags().BoolVar(&o.Underline, "underline", false, "Underline the text.")
	cmd.Flags().BoolVar(&o.Strikethrough, "strikethrough", false, "Strike the text through.")
	cmd.Flags().BoolVar(&o.Code, "code", false, "Use a monospace font for the text.")
	cmd.Flags().BoolVar(&o.Markdown, "markdown", false,
		"Translate markdown headings and lists instead of inserting verbatim.")
}

// Validate rejects unknown style and preset names before any network
// call.
func (o *FormatOptions) Validate() error {
	if o.Style != "" && !contains(paragraphStyles, o.Style) {
		return fmt.Errorf("unknown paragraph style %q", o.Style)
	}
	if o.Bullet != "" && !contains(bulletPresets, o.Bullet) {
		return fmt.Errorf("unknown bullet preset %q", o.Bullet)
	}
	return nil
}

// Formatting converts the flags to the operation payload.
func (o *FormatOptions) Formatting() edit.Formatting {
	return edit.Formatting{
		NamedStyle:    o.Style,
		BulletPreset:  o.Bullet,
		Bold:          o.Bold,
		Italic:        o.Italic,
		Underline:     o.Underline,
		Strikethrough: o.Strikethrough,
		Code:          o.Code,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
