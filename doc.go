// Package carddex renders contact-database records as text in multiple
// output representations.
//
// A render pass runs each record through a fixed pipeline: [Collect]
// gathers the record's fields under the configuration's include/exclude
// policy, [Sort] groups them per the declarative sort specification,
// [Process] clusters combined kinds and assigns a [Style] to every
// resulting [Entry], and a [Target] turns the entries into literal text.
// [Renderer] orchestrates the pass per record and per batch; the records
// themselves are read-only input owned by the [carddex/contact] database.
//
// # Configuration
//
// A [Config] is built once with [NewConfig] and functional options, is
// immutable afterwards, and may be shared across concurrent passes.
// Malformed specifications fail at construction, never at render time:
//
//	cfg, err := carddex.NewConfig(
//		carddex.WithCombine(contact.KindMail),
//		carddex.WithSort(contact.KindPhone, contact.KindMail, carddex.Wildcard),
//	)
//
// # Targets
//
// The package uses a layered interface design. Implementing [Target]
// unlocks a new output representation, and optional interfaces enhance it:
//
//   - [BatchHeaded], [BatchFootered] — text around the whole batch
//   - [Separated] — text between records
//   - [LabelRenderer], [ValueRenderer] — override the default dispatch
//
// Rendering rules resolve most specific first; combinations a target does
// not override fall back to the defaults in [Label] and [Value]. Built-in
// targets: [Plain], [Markdown], [HTML], [LaTeX], [VCard], [JSONLines].
//
// # Presets
//
// A [Registry] maps preset names to configured renderers. It is owned by
// the caller and built at startup, either from [DefaultRegistry] or from a
// YAML preset file via [LoadPresets].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrDuplicateSelector] — a sort selector appears twice
//   - [ErrNoRule] — no rendering rule covers a dispatch combination
//   - [ErrUnknownTarget] — a preset names no known target
//   - [ErrUnknownPreset] — lookup of an unregistered preset
//   - [ErrDuplicatePreset] — registering a name twice
//
// A failing record never aborts its batch: [Renderer.Render] isolates the
// failure, logs it, joins it into the returned error, and renders the
// remaining records.
package carddex
