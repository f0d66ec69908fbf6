package carddex

import (
	"fmt"
	"html"
	"io"

	"carddex/contact"
)

// HTML renders records as an HTML page. The batch hooks write the page
// shell with the configured charset; each record becomes a section holding
// a heading and definition lists.
type HTML struct{}

// Name returns "html".
func (HTML) Name() string { return "html" }

// BatchHeader writes the page shell up to the opening body tag.
func (HTML) BatchHeader(w io.Writer, cfg *Config, _ []contact.Record) error {
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n  <meta charset=%q>\n  <title>Contacts</title>\n</head>\n<body>\n", cfg.Coding())
	return err
}

// BatchFooter closes the page shell.
func (HTML) BatchFooter(w io.Writer, _ *Config, _ []contact.Record) error {
	_, err := fmt.Fprint(w, "</body>\n</html>\n")
	return err
}

// RecordHeader opens the record section with its heading and the header
// entries.
func (h HTML) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	if _, err := fmt.Fprintf(w, "<section>\n  <h2>%s</h2>\n", html.EscapeString(rec.DisplayName())); err != nil {
		return err
	}
	if len(header) == 0 {
		return nil
	}
	return h.writeList(w, rec, header, ` class="header"`)
}

// RecordBody writes the body entries and closes the section.
func (h HTML) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	if len(body) > 0 {
		if err := h.writeList(w, rec, body, ""); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</section>")
	return err
}

func (h HTML) writeList(w io.Writer, rec contact.Record, entries []Entry, attrs string) error {
	if _, err := fmt.Fprintf(w, "  <dl%s>\n", attrs); err != nil {
		return err
	}
	for _, e := range entries {
		label, value, err := Compose(h, e, rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    <dt>%s</dt>\n    <dd>%s</dd>\n",
			html.EscapeString(label), html.EscapeString(value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  </dl>")
	return err
}
