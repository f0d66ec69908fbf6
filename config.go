package carddex

import (
	"fmt"

	"carddex/contact"
)

// Wildcard is the catch-all sort selector. It captures every field whose
// kind matches no explicit selector in the sort specification, regardless
// of where it appears in the list.
const Wildcard = contact.Kind("*")

// Config is the formatting policy for a render pass. It is immutable after
// [NewConfig] and may be shared across concurrent passes.
type Config struct {
	coding        string
	include       map[contact.Kind]bool
	exclude       map[contact.Kind]bool
	sort          []contact.Kind
	primary       bool
	header        map[contact.RecordKind][]contact.Kind
	combine       map[contact.Kind]bool
	collapse      map[contact.Kind]bool
	keepUnmatched bool
}

// Option configures a [Config] under construction.
type Option func(*Config)

// WithCoding sets the output character encoding identifier.
// Default: "utf-8".
func WithCoding(coding string) Option {
	return func(c *Config) { c.coding = coding }
}

// WithInclude restricts candidates to exactly these kinds. A non-empty
// include set overrides the exclude set.
func WithInclude(ks ...contact.Kind) Option {
	return func(c *Config) {
		for _, k := range ks {
			c.include[k] = true
		}
	}
}

// WithExclude replaces the default exclude set {uuid, creation-date,
// timestamp}. Ignored while include is non-empty.
func WithExclude(ks ...contact.Kind) Option {
	return func(c *Config) {
		c.exclude = make(map[contact.Kind]bool, len(ks))
		for _, k := range ks {
			c.exclude[k] = true
		}
	}
}

// WithSort replaces the sort specification. Selectors are field kinds plus
// at most one [Wildcard]. Default: [mail, phone, address, *, notes].
func WithSort(ks ...contact.Kind) Option {
	return func(c *Config) {
		c.sort = append([]contact.Kind(nil), ks...)
	}
}

// WithPrimary keeps only the primary-flagged mail instead of all mails.
func WithPrimary() Option {
	return func(c *Config) { c.primary = true }
}

// WithHeader replaces the header kinds for one record kind.
// Defaults: person → {role, image}, organization → {domain, image}.
func WithHeader(rk contact.RecordKind, ks ...contact.Kind) Option {
	return func(c *Config) {
		c.header[rk] = append([]contact.Kind(nil), ks...)
	}
}

// WithCombine merges class-contiguous runs of these kinds into single
// compact entries.
func WithCombine(ks ...contact.Kind) Option {
	return func(c *Config) {
		for _, k := range ks {
			c.combine[k] = true
		}
	}
}

// WithCollapse renders singleton entries of these kinds collapsed.
func WithCollapse(ks ...contact.Kind) Option {
	return func(c *Config) {
		for _, k := range ks {
			c.collapse[k] = true
		}
	}
}

// WithKeepUnmatched keeps fields whose kind matches no sort selector when
// no wildcard is configured, appending them after all selector groups.
// Default is to drop them.
func WithKeepUnmatched() Option {
	return func(c *Config) { c.keepUnmatched = true }
}

// NewConfig builds an immutable configuration. Malformed specifications —
// an unknown kind anywhere, a duplicated sort selector, a second wildcard —
// are reported here rather than at render time.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		coding: "utf-8",
		include: make(map[contact.Kind]bool),
		exclude: map[contact.Kind]bool{
			contact.KindUUID:      true,
			contact.KindCreation:  true,
			contact.KindTimestamp: true,
		},
		sort: []contact.Kind{
			contact.KindMail, contact.KindPhone, contact.KindAddress,
			Wildcard, contact.KindNotes,
		},
		header: map[contact.RecordKind][]contact.Kind{
			contact.RecordPerson:       {contact.KindRole, contact.KindImage},
			contact.RecordOrganization: {contact.KindDomain, contact.KindImage},
		},
		combine:  make(map[contact.Kind]bool),
		collapse: make(map[contact.Kind]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	for k := range c.include {
		if _, err := contact.ParseKind(string(k)); err != nil {
			return fmt.Errorf("include: %w", err)
		}
	}
	for k := range c.exclude {
		if _, err := contact.ParseKind(string(k)); err != nil {
			return fmt.Errorf("exclude: %w", err)
		}
	}
	for k := range c.combine {
		if _, err := contact.ParseKind(string(k)); err != nil {
			return fmt.Errorf("combine: %w", err)
		}
	}
	for k := range c.collapse {
		if _, err := contact.ParseKind(string(k)); err != nil {
			return fmt.Errorf("collapse: %w", err)
		}
	}
	for rk, ks := range c.header {
		if _, err := contact.ParseRecordKind(string(rk)); err != nil {
			return fmt.Errorf("header: %w", err)
		}
		for _, k := range ks {
			if _, err := contact.ParseKind(string(k)); err != nil {
				return fmt.Errorf("header %s: %w", rk, err)
			}
		}
	}
	seen := make(map[contact.Kind]bool, len(c.sort))
	for _, sel := range c.sort {
		if seen[sel] {
			return fmt.Errorf("%w: %q", ErrDuplicateSelector, sel)
		}
		seen[sel] = true
		if sel == Wildcard {
			continue
		}
		if _, err := contact.ParseKind(string(sel)); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	}
	return nil
}

// Coding returns the output character encoding identifier.
func (c *Config) Coding() string { return c.coding }

// Primary reports whether only the primary mail is kept.
func (c *Config) Primary() bool { return c.primary }

// KeepUnmatched reports whether fields matching no sort selector are kept.
func (c *Config) KeepUnmatched() bool { return c.keepUnmatched }

// Sort returns a copy of the sort specification.
func (c *Config) Sort() []contact.Kind {
	return append([]contact.Kind(nil), c.sort...)
}

// Header returns a copy of the header kinds for a record kind.
func (c *Config) Header(rk contact.RecordKind) []contact.Kind {
	return append([]contact.Kind(nil), c.header[rk]...)
}

// admits reports whether the policy retains fields of this kind: member of
// include when include is non-empty, otherwise not a member of exclude.
func (c *Config) admits(k contact.Kind) bool {
	if len(c.include) > 0 {
		return c.include[k]
	}
	return !c.exclude[k]
}
