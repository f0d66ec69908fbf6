package carddex

import (
	"encoding/json"
	"fmt"
	"io"

	"carddex/contact"
)

// JSONLines renders one JSON object per record per line. The object carries
// the record identity plus the header and body partitions as the pipeline
// produced them, so the include/sort/combine policy shapes machine output
// exactly as it shapes display output.
type JSONLines struct{}

// Name returns "json".
func (JSONLines) Name() string { return "json" }

// RecordSep returns the empty string; records are already line-delimited.
func (JSONLines) RecordSep() string { return "" }

type jsonEntry struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// RecordHeader writes the opening of the record object through the header
// partition.
func (j JSONLines) RecordHeader(w io.Writer, rec contact.Record, header []Entry) error {
	head, err := j.entries(rec, header)
	if err != nil {
		return err
	}
	for _, part := range []struct {
		key string
		val any
	}{
		{"kind", rec.Kind().String()},
		{"uuid", rec.UUID().String()},
		{"name", rec.DisplayName()},
		{"header", head},
	} {
		data, err := json.Marshal(part.val)
		if err != nil {
			return err
		}
		prefix := ","
		if part.key == "kind" {
			prefix = "{"
		}
		if _, err := fmt.Fprintf(w, "%s%q:%s", prefix, part.key, data); err != nil {
			return err
		}
	}
	return nil
}

// RecordBody writes the body partition and closes the record object.
func (j JSONLines) RecordBody(w io.Writer, rec contact.Record, body []Entry) error {
	fields, err := j.entries(rec, body)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, ",\"fields\":%s}\n", data)
	return err
}

func (j JSONLines) entries(rec contact.Record, es []Entry) ([]jsonEntry, error) {
	out := make([]jsonEntry, 0, len(es))
	for _, e := range es {
		label, value, err := Compose(j, e, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, jsonEntry{Kind: e.Kind.String(), Label: label, Value: value})
	}
	return out, nil
}
