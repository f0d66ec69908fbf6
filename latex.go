package carddex

import (
	"fmt"
	"io"
	"strings"

	"carddex/contact"
)

// LaTeX renders records as a LaTeX document. The batch hooks write the
// preamble, with inputenc derived from the configured coding, and the
// document end; each record becomes an unnumbered subsection with a
// two-column tabular body.
type LaTeX struct{}

// Name returns "latex".
func (LaTeX) Name() string { return "latex" }

// BatchHeader writes the document preamble.
func (LaTeX) BatchHeader(w io.Writer, cfg *Config, _ []contact.Record) error {
	_, err := fmt.Fprintf(w, "\\documentclass{article}\n\\usepackage[%s]{inputenc}\n\\begin{document}\n", inputenc(cfg.Coding()))
	return err
}

// BatchFooter ends the document.
func (LaTeX) BatchFooter(w io.Writer, _ *Config, _ []contact.Record) error {
	_, err := fmt.Fprintln(w, "\\end{document}")
	return err
}

// RecordHeader writes the record subsection and the header entries.
func (l LaTeX) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	if _, err := fmt.Fprintf(w, "\\subsection*{%s}\n", escapeLaTeX(rec.DisplayName())); err != nil {
		return err
	}
	for _, e := range header {
		label, value, err := Compose(l, e, rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\\textbf{%s}: %s\\\\\n", escapeLaTeX(label), escapeLaTeX(value)); err != nil {
			return err
		}
	}
	return nil
}

// RecordBody writes the body entries as a tabular.
func (l LaTeX) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	if len(body) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\\begin{tabular}{ll}"); err != nil {
		return err
	}
	for _, e := range body {
		label, value, err := Compose(l, e, rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s & %s \\\\\n", escapeLaTeX(label), escapeLaTeX(value)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\\end{tabular}")
	return err
}

// inputenc maps a MIME-style coding name to its inputenc option.
func inputenc(coding string) string {
	return strings.ReplaceAll(strings.ToLower(coding), "-", "")
}

var latexEscaper = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
	"\n", " ",
)

func escapeLaTeX(s string) string { return latexEscaper.Replace(s) }
