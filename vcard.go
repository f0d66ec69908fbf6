package carddex

import (
	"fmt"
	"io"
	"strings"

	"carddex/contact"
)

// VCard renders records as vCard 3.0 objects. The pipeline's policy still
// decides which fields appear and in what order; the target maps each field
// to its vCard property with RFC 6350 value escaping and ignores the entry
// styles, which only concern display output.
type VCard struct{}

// Name returns "vcard".
func (VCard) Name() string { return "vcard" }

// RecordSep returns the empty string; vCard objects concatenate directly.
func (VCard) RecordSep() string { return "" }

// RecordHeader opens the vCard and writes identity properties plus the
// header entries.
func (v VCard) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	if _, err := fmt.Fprint(w, "BEGIN:VCARD\nVERSION:3.0\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "FN:%s\n", escapeVCard(rec.DisplayName())); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "UID:%s\n", rec.UUID()); err != nil {
		return err
	}
	if rec.Kind() == contact.RecordOrganization {
		if _, err := fmt.Fprintf(w, "ORG:%s\n", escapeVCard(rec.DisplayName())); err != nil {
			return err
		}
	}
	return v.writeEntries(w, rec, header)
}

// RecordBody writes the body entries and closes the vCard.
func (v VCard) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	if err := v.writeEntries(w, rec, body); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "END:VCARD\n")
	return err
}

func (v VCard) writeEntries(w io.Writer, rec contact.Record, entries []Entry) error {
	for _, e := range entries {
		for _, f := range e.Fields {
			if err := v.writeField(w, rec, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v VCard) writeField(w io.Writer, rec contact.Record, f contact.Field) error {
	var line string
	switch fv := f.(type) {
	case *contact.Mail:
		types := "INTERNET"
		if fv.Primary {
			types += ",PREF"
		}
		line = fmt.Sprintf("EMAIL;TYPE=%s:%s", types, escapeVCard(fv.Address))
	case *contact.Phone:
		line = fmt.Sprintf("TEL;TYPE=%s:%s", paramVCard(fv.Loc), escapeVCard(fv.Number))
	case *contact.Address:
		street := escapeVCard(strings.Join(fv.Streets, ", "))
		line = fmt.Sprintf("ADR;TYPE=%s:;;%s;%s;%s;%s;%s",
			paramVCard(fv.Loc), street, escapeVCard(fv.City),
			escapeVCard(fv.Region), escapeVCard(fv.PostCode), escapeVCard(fv.Country))
	case *contact.Name:
		line = "X-ALTNAME:" + escapeVCard(fv.Name)
	case *contact.Role:
		if rec.Kind() == contact.RecordOrganization {
			line = fmt.Sprintf("ROLE:%s (%s)", escapeVCard(fv.Holder), escapeVCard(fv.Title))
		} else {
			if _, err := fmt.Fprintf(w, "ORG:%s\n", escapeVCard(fv.OrgName)); err != nil {
				return err
			}
			line = "TITLE:" + escapeVCard(fv.Title)
		}
	case *contact.Relation:
		line = fmt.Sprintf("RELATED;TYPE=%s:%s", paramVCard(fv.Rel), escapeVCard(fv.String()))
	case contact.Domain:
		line = "URL:" + escapeVCard(fv.Host)
	case contact.Notes:
		line = "NOTE:" + escapeVCard(fv.Text)
	case contact.Image:
		line = "PHOTO;VALUE=URI:" + fv.Path
	case contact.ID:
		// UID is already written with the identity properties.
		return nil
	case contact.Creation:
		line = "X-CREATED:" + fv.At.Format("20060102T150405Z")
	case contact.Timestamp:
		line = "REV:" + fv.At.Format("20060102T150405Z")
	default:
		line = fmt.Sprintf("X-%s:%s", strings.ToUpper(f.Kind().String()), escapeVCard(f.String()))
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

var vcardEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\n", "\\n",
)

func escapeVCard(s string) string { return vcardEscaper.Replace(s) }

// paramVCard sanitizes a property parameter value, which cannot carry
// escapes.
func paramVCard(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', ':', ',', '\n':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "OTHER"
	}
	return s
}
