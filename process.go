package carddex

import "carddex/contact"

// Entry is one renderable group of fields. Fields is non-empty and holds
// more than one instance only for kinds the config combines.
type Entry struct {
	Kind   contact.Kind
	Style  Style
	Fields []contact.Field
}

// Process clusters the sorter's output into renderable entries. A maximal
// class-contiguous run of a combined kind becomes a single compact entry,
// singleton runs included. Every other field becomes a singleton entry,
// collapsed when its kind is in the collapse set, oneline otherwise.
// Processing never reorders.
func Process(cfg *Config, fields []contact.Field) []Entry {
	var out []Entry
	for i := 0; i < len(fields); {
		k := fields[i].Kind()
		if cfg.combine[k] {
			j := i + 1
			for j < len(fields) && fields[j].Kind() == k {
				j++
			}
			out = append(out, Entry{Kind: k, Style: StyleCompact, Fields: fields[i:j:j]})
			i = j
			continue
		}
		style := StyleOneline
		if cfg.collapse[k] {
			style = StyleCollapse
		}
		out = append(out, Entry{Kind: k, Style: style, Fields: fields[i : i+1 : i+1]})
		i++
	}
	return out
}
