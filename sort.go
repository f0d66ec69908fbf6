package carddex

import "carddex/contact"

// Sort orders the collector's output per the config's sort specification.
// The result is a stable permutation of the admitted input: each explicit
// selector claims every field of its kind as one contiguous group, in
// selector order, preserving the fields' relative order. The wildcard
// claims the fields whose kind matches no explicit selector anywhere in the
// specification, so explicit selectors written after the wildcard still
// claim their groups at their own position.
//
// Fields matching no selector are dropped unless the config keeps them, in
// which case they are appended after all selector groups in pool order.
func Sort(cfg *Config, fields []contact.Field) []contact.Field {
	explicit := make(map[contact.Kind]bool, len(cfg.sort))
	for _, sel := range cfg.sort {
		if sel != Wildcard {
			explicit[sel] = true
		}
	}

	remaining := append([]contact.Field(nil), fields...)
	out := make([]contact.Field, 0, len(fields))
	for _, sel := range cfg.sort {
		var claim func(contact.Kind) bool
		if sel == Wildcard {
			claim = func(k contact.Kind) bool { return !explicit[k] }
		} else {
			s := sel
			claim = func(k contact.Kind) bool { return k == s }
		}
		out, remaining = move(out, remaining, claim)
	}
	if cfg.keepUnmatched {
		out = append(out, remaining...)
	}
	return out
}

// move transfers every field whose kind satisfies claim from the pool to
// the output, preserving relative order on both sides.
func move(out, pool []contact.Field, claim func(contact.Kind) bool) ([]contact.Field, []contact.Field) {
	rest := pool[:0]
	for _, f := range pool {
		if claim(f.Kind()) {
			out = append(out, f)
		} else {
			rest = append(rest, f)
		}
	}
	return out, rest
}
