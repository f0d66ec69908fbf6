package carddex

import (
	"fmt"
	"strings"

	"carddex/contact"
	"github.com/google/uuid"
)

// Label renders an entry's label. The target's [LabelRenderer] override is
// consulted first; the default rules then apply most specific first: a
// compact or multi-instance entry shows the kind's display name, a single
// labeled instance shows its own label, everything else falls back to the
// kind's display name.
func Label(t Target, e Entry, rec contact.Record) string {
	if lr, ok := t.(LabelRenderer); ok {
		if s, ok := lr.RenderLabel(e, rec); ok {
			return s
		}
	}
	if e.Style == StyleCompact || len(e.Fields) > 1 {
		return e.Kind.Display()
	}
	if len(e.Fields) == 1 {
		if lf, ok := e.Fields[0].(contact.Labeled); ok {
			if l := lf.Label(); l != "" {
				return l
			}
		}
	}
	return e.Kind.Display()
}

// Value renders one field under a style. The target's [ValueRenderer]
// override is consulted first. A style outside the known set is a
// programming error in the caller and fails loudly with [ErrNoRule].
func Value(t Target, f contact.Field, style Style, rec contact.Record) (string, error) {
	if vr, ok := t.(ValueRenderer); ok {
		if s, ok := vr.RenderValue(f, style, rec); ok {
			return s, nil
		}
	}
	full := fieldString(f, rec)
	switch style {
	case StyleNone:
		return full, nil
	case StyleOneline:
		return firstLine(full), nil
	case StyleCompact:
		if lf, ok := f.(contact.Labeled); ok && lf.Label() != "" {
			return "(" + lf.Label() + ") " + firstLine(full), nil
		}
		return firstLine(full), nil
	case StyleCollapse:
		line := firstLine(full)
		if line != full {
			line += " ..."
		}
		return line, nil
	default:
		return "", fmt.Errorf("%w: style %d for %s field on %s record",
			ErrNoRule, int(style), f.Kind(), rec.Kind())
	}
}

// Compose renders an entry to a (label, value) pair. The label is computed
// once from the entry; multi-instance values are joined with ", ".
func Compose(t Target, e Entry, rec contact.Record) (label, value string, err error) {
	label = Label(t, e, rec)
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		v, err := Value(t, f, e.Style, rec)
		if err != nil {
			return "", "", err
		}
		parts = append(parts, v)
	}
	return label, strings.Join(parts, ", "), nil
}

// fieldString is the record-kind specialization point of the default rules.
// A role rendered for the organization side of the affiliation shows the
// holder person; everywhere else the field's own string stands.
func fieldString(f contact.Field, rec contact.Record) string {
	if _, ok := rec.(*contact.Organization); ok {
		if r, ok := roleOf(f); ok {
			if r.Holder != "" {
				return r.Holder
			}
			if r.HolderID != uuid.Nil {
				return r.HolderID.String()
			}
		}
	}
	return f.String()
}

func roleOf(f contact.Field) (contact.Role, bool) {
	switch v := f.(type) {
	case contact.Role:
		return v, true
	case *contact.Role:
		return *v, true
	}
	return contact.Role{}, false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
