package carddex

import (
	"errors"
	"fmt"
	"io"

	"carddex/contact"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDuplicateSelector = errors.New("duplicate sort selector")
	ErrNoRule            = errors.New("no rendering rule")
	ErrUnknownTarget     = errors.New("unknown target")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrDuplicatePreset   = errors.New("duplicate preset")
)

// Style is the rendering mode assigned to a field entry.
type Style int

const (
	// StyleNone renders the full value verbatim. The processor never
	// assigns it; targets that need raw values (vCard, JSON) use it
	// directly.
	StyleNone Style = iota
	// StyleOneline renders only the first line of the value.
	StyleOneline
	// StyleCompact renders "(label) value" inline, used for combined
	// entries.
	StyleCompact
	// StyleCollapse renders the first line with a trailing marker when
	// more content is hidden.
	StyleCollapse
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleOneline:
		return "oneline"
	case StyleCompact:
		return "compact"
	case StyleCollapse:
		return "collapse"
	default:
		return "invalid"
	}
}

// --- Core Target Interface ---

// Target renders one output representation. Implementing it is all a new
// export format needs; the pipeline (collect, sort, process, header/body
// split) is shared and never target-specific.
type Target interface {
	// Name identifies the target in preset files and CLI flags.
	Name() string
	// RecordHeader renders the header partition of a record's entries.
	RecordHeader(w io.Writer, rec contact.Record, header []Entry) error
	// RecordBody renders the body partition of a record's entries.
	RecordBody(w io.Writer, rec contact.Record, body []Entry) error
}

// --- Optional Interfaces ---

// BatchHeaded writes text before the first record of a batch.
// Default: nothing.
type BatchHeaded interface {
	BatchHeader(w io.Writer, cfg *Config, recs []contact.Record) error
}

// BatchFootered writes text after the last record of a batch.
// Default: nothing.
type BatchFootered interface {
	BatchFooter(w io.Writer, cfg *Config, recs []contact.Record) error
}

// Separated controls the text between consecutive records.
// Default: a blank line.
type Separated interface {
	RecordSep() string
}

// LabelRenderer overrides label rendering for an entry. Returning false
// falls through to the default rules.
type LabelRenderer interface {
	RenderLabel(e Entry, rec contact.Record) (string, bool)
}

// ValueRenderer overrides value rendering for a single field. Returning
// false falls through to the default rules.
type ValueRenderer interface {
	RenderValue(f contact.Field, style Style, rec contact.Record) (string, bool)
}

// Builtins returns the built-in targets.
func Builtins() []Target {
	return []Target{Plain{}, Markdown{}, HTML{}, LaTeX{}, VCard{}, JSONLines{}}
}

// LookupTarget finds a target by name among the given targets, falling back
// to the built-ins.
func LookupTarget(name string, extra ...Target) (Target, error) {
	for _, t := range extra {
		if t.Name() == name {
			return t, nil
		}
	}
	for _, t := range Builtins() {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}
