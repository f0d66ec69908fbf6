package carddex

import "carddex/contact"

// Collect gathers a record's candidate fields under the config's
// include/exclude policy. Each record variant contributes its own
// collections and then explicitly invokes the next-more-general gatherer,
// so the ancestor chain Person→Entity→Generic (and Organization→Entity→
// Generic) runs exactly once per level. The output order groups fields by
// collection, most specific level first, but only the sorter's output order
// is a contract.
func Collect(cfg *Config, rec contact.Record) []contact.Field {
	switch r := rec.(type) {
	case *contact.Person:
		return collectPerson(cfg, r)
	case *contact.Organization:
		return collectOrganization(cfg, r)
	case *contact.Entity:
		return collectEntity(cfg, r)
	case *contact.Generic:
		return collectGeneric(cfg, r)
	default:
		return nil
	}
}

func collectPerson(cfg *Config, p *contact.Person) []contact.Field {
	var out []contact.Field
	for _, n := range p.AKA {
		out = appendField(cfg, out, n)
	}
	for _, r := range p.Roles {
		out = appendField(cfg, out, r)
	}
	for _, r := range p.Relations {
		out = appendField(cfg, out, r)
	}
	return append(out, collectEntity(cfg, &p.Entity)...)
}

func collectOrganization(cfg *Config, o *contact.Organization) []contact.Field {
	var out []contact.Field
	if o.Domain != nil {
		out = appendField(cfg, out, *o.Domain)
	}
	for _, r := range o.Affiliations {
		out = appendField(cfg, out, r)
	}
	return append(out, collectEntity(cfg, &o.Entity)...)
}

func collectEntity(cfg *Config, e *contact.Entity) []contact.Field {
	var out []contact.Field
	for _, m := range mails(cfg, e) {
		out = appendField(cfg, out, m)
	}
	for _, p := range e.Phones {
		out = appendField(cfg, out, p)
	}
	for _, a := range e.Addresses {
		out = appendField(cfg, out, a)
	}
	if e.Image != nil {
		out = appendField(cfg, out, *e.Image)
	}
	return append(out, collectGeneric(cfg, &e.Generic)...)
}

func collectGeneric(cfg *Config, g *contact.Generic) []contact.Field {
	var out []contact.Field
	if g.Notes != "" {
		out = appendField(cfg, out, contact.Notes{Text: g.Notes})
	}
	out = appendField(cfg, out, contact.ID{UUID: g.ID})
	if !g.Created.IsZero() {
		out = appendField(cfg, out, contact.Creation{At: g.Created})
	}
	if !g.Updated.IsZero() {
		out = appendField(cfg, out, contact.Timestamp{At: g.Updated})
	}
	return out
}

// mails applies the primary reduction before the membership test.
func mails(cfg *Config, e *contact.Entity) []*contact.Mail {
	if !cfg.primary {
		return e.Mails
	}
	for _, m := range e.Mails {
		if m.Primary {
			return []*contact.Mail{m}
		}
	}
	return nil
}

func appendField(cfg *Config, out []contact.Field, f contact.Field) []contact.Field {
	if cfg.admits(f.Kind()) {
		out = append(out, f)
	}
	return out
}
