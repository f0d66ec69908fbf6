package carddex

import (
	"fmt"
	"io"
	"strings"

	"carddex/contact"
)

// Markdown renders records as GitHub-flavored Markdown: a level-two heading
// per record, header entries as bold lines, and the body as a padded
// two-column table.
type Markdown struct{}

// Name returns "markdown".
func (Markdown) Name() string { return "markdown" }

// RecordHeader writes the record heading and the header entries.
func (m Markdown) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	if _, err := fmt.Fprintf(w, "## %s\n", escapeMarkdown(rec.DisplayName())); err != nil {
		return err
	}
	if len(header) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, e := range header {
		label, value, err := Compose(m, e, rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "**%s**: %s\n", escapeMarkdown(label), escapeMarkdown(value)); err != nil {
			return err
		}
	}
	return nil
}

// RecordBody writes the body entries as a "| Field | Value |" table.
func (m Markdown) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	if len(body) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	rows := make([][2]string, len(body))
	for i, e := range body {
		label, value, err := Compose(m, e, rec)
		if err != nil {
			return err
		}
		rows[i] = [2]string{escapeMarkdown(label), escapeMarkdown(value)}
	}

	// Column widths, minimum 3 for the separator row.
	widths := [2]int{cellWidth("Field"), cellWidth("Value")}
	for _, row := range rows {
		for i, cell := range row {
			if cw := cellWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, [2]string{"Field", "Value"}, widths); err != nil {
		return err
	}
	sep := [2]string{strings.Repeat("-", widths[0]), strings.Repeat("-", widths[1])}
	if err := writeMarkdownRow(w, sep, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells [2]string, widths [2]int) error {
	_, err := fmt.Fprintf(w, "| %s | %s |\n", padCell(cells[0], widths[0]), padCell(cells[1], widths[1]))
	return err
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
