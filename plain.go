package carddex

import (
	"fmt"
	"io"

	"carddex/contact"
)

// Plain renders records as display text: a name line, the header entries,
// then the body entries as a runewidth-aligned "label: value" column.
type Plain struct{}

// Name returns "plain".
func (Plain) Name() string { return "plain" }

// RecordHeader writes the record's display name and the header entries.
func (p Plain) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	if _, err := fmt.Fprintln(w, rec.DisplayName()); err != nil {
		return err
	}
	return p.writeEntries(w, rec, header)
}

// RecordBody writes the body entries, separated from the header by a blank
// line.
func (p Plain) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	if len(body) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return p.writeEntries(w, rec, body)
}

func (p Plain) writeEntries(w io.Writer, rec contact.Record, entries []Entry) error {
	width := 0
	for _, e := range entries {
		if lw := cellWidth(Label(p, e, rec)); lw > width {
			width = lw
		}
	}
	for _, e := range entries {
		label, value, err := Compose(p, e, rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", padCell(label+":", width+1), value); err != nil {
			return err
		}
	}
	return nil
}
