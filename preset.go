package carddex

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"carddex/contact"
)

// preset is the wire form of one named renderer configuration.
type preset struct {
	Target        string              `yaml:"target"`
	Coding        string              `yaml:"coding"`
	Include       []string            `yaml:"include"`
	Exclude       []string            `yaml:"exclude"`
	Sort          []string            `yaml:"sort"`
	Primary       bool                `yaml:"primary"`
	Header        map[string][]string `yaml:"header"`
	Combine       []string            `yaml:"combine"`
	Collapse      []string            `yaml:"collapse"`
	KeepUnmatched bool                `yaml:"keep-unmatched"`
}

type presetFile struct {
	Presets map[string]preset `yaml:"presets"`
}

// LoadPresets parses a preset file into a registry. Extra targets extend
// the built-ins for name resolution. Malformed specifications — unknown
// target, unknown kind, duplicate selector — fail here, never at render
// time.
func LoadPresets(data []byte, opts []RendererOption, extra ...Target) (*Registry, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	reg := NewRegistry()
	for name, p := range file.Presets {
		rend, err := buildPreset(p, opts, extra)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if err := reg.Register(name, rend); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func buildPreset(p preset, ropts []RendererOption, extra []Target) (*Renderer, error) {
	target, err := LookupTarget(p.Target, extra...)
	if err != nil {
		return nil, err
	}
	var opts []Option
	if p.Coding != "" {
		opts = append(opts, WithCoding(p.Coding))
	}
	if len(p.Include) > 0 {
		opts = append(opts, WithInclude(toKinds(p.Include)...))
	}
	if p.Exclude != nil {
		opts = append(opts, WithExclude(toKinds(p.Exclude)...))
	}
	if len(p.Sort) > 0 {
		opts = append(opts, WithSort(toKinds(p.Sort)...))
	}
	if p.Primary {
		opts = append(opts, WithPrimary())
	}
	for rk, ks := range p.Header {
		opts = append(opts, WithHeader(contact.RecordKind(rk), toKinds(ks)...))
	}
	if len(p.Combine) > 0 {
		opts = append(opts, WithCombine(toKinds(p.Combine)...))
	}
	if len(p.Collapse) > 0 {
		opts = append(opts, WithCollapse(toKinds(p.Collapse)...))
	}
	if p.KeepUnmatched {
		opts = append(opts, WithKeepUnmatched())
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return New(cfg, target, ropts...), nil
}

// toKinds converts raw selector strings without validating them; the kinds
// are checked by [NewConfig] so errors carry the configuration context.
func toKinds(ss []string) []contact.Kind {
	out := make([]contact.Kind, len(ss))
	for i, s := range ss {
		out[i] = contact.Kind(s)
	}
	return out
}
