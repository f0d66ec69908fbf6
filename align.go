package carddex

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidth returns the display-column width of s.
func cellWidth(s string) int { return runewidth.StringWidth(s) }

// padCell left-aligns s within width display columns.
func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
