package carddex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"carddex/contact"
)

// Renderer drives render passes of one config through one target. It is
// read-only after [New] and safe for concurrent use.
type Renderer struct {
	cfg      *Config
	target   Target
	log      *zap.Logger
	parallel int
}

// RendererOption configures a [Renderer].
type RendererOption func(*Renderer)

// WithLogger sets the logger used to report isolated per-record failures.
// Default: a nop logger.
func WithLogger(l *zap.Logger) RendererOption {
	return func(r *Renderer) { r.log = l }
}

// WithParallelism bounds the number of records rendered concurrently by
// [Renderer.RenderContext]. Default: 4.
func WithParallelism(n int) RendererOption {
	return func(r *Renderer) {
		if n > 0 {
			r.parallel = n
		}
	}
}

// New builds a renderer.
func New(cfg *Config, t Target, opts ...RendererOption) *Renderer {
	r := &Renderer{cfg: cfg, target: t, log: zap.NewNop(), parallel: 4}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Coding returns the output character encoding identifier of the pass.
func (r *Renderer) Coding() string { return r.cfg.Coding() }

// Target returns the output target.
func (r *Renderer) Target() Target { return r.target }

// Config returns the formatting policy.
func (r *Renderer) Config() *Config { return r.cfg }

// RenderRecord renders a single record: collect, sort, process, split the
// entries into the header partition (kinds listed in the config's header
// specification for the record's kind) and the body partition, both
// preserving pipeline order, then hand each partition to the target.
func (r *Renderer) RenderRecord(w io.Writer, rec contact.Record) error {
	entries := Process(r.cfg, Sort(r.cfg, Collect(r.cfg, rec)))

	headerKinds := make(map[contact.Kind]bool)
	for _, k := range r.cfg.header[rec.Kind()] {
		headerKinds[k] = true
	}
	var header, body []Entry
	for _, e := range entries {
		if headerKinds[e.Kind] {
			header = append(header, e)
		} else {
			body = append(body, e)
		}
	}

	if err := r.target.RecordHeader(w, rec, header); err != nil {
		return err
	}
	return r.target.RecordBody(w, rec, body)
}

// Render renders a batch: batch header hook, each record, separators,
// batch footer hook. A record whose render fails is logged and withheld
// from the output; its error is joined into the returned error and the
// remaining records still render.
func (r *Renderer) Render(w io.Writer, recs ...contact.Record) error {
	bufs := make([]bytes.Buffer, len(recs))
	rerrs := make([]error, len(recs))
	for i, rec := range recs {
		rerrs[i] = r.RenderRecord(&bufs[i], rec)
	}
	return r.assemble(w, recs, bufs, rerrs)
}

// RenderContext is [Renderer.Render] with records rendered concurrently,
// one unit of work per record, bounded by the configured parallelism.
// Output order and failure isolation are identical to the sequential pass.
// Cancelling the context stops dispatching new records.
func (r *Renderer) RenderContext(ctx context.Context, w io.Writer, recs ...contact.Record) error {
	bufs := make([]bytes.Buffer, len(recs))
	rerrs := make([]error, len(recs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, rec := range recs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Per-record failures stay in rerrs so they cannot cancel
			// sibling renders.
			rerrs[i] = r.RenderRecord(&bufs[i], rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return r.assemble(w, recs, bufs, rerrs)
}

func (r *Renderer) assemble(w io.Writer, recs []contact.Record, bufs []bytes.Buffer, rerrs []error) error {
	if bh, ok := r.target.(BatchHeaded); ok {
		if err := bh.BatchHeader(w, r.cfg, recs); err != nil {
			return err
		}
	}
	sep := "\n"
	if s, ok := r.target.(Separated); ok {
		sep = s.RecordSep()
	}
	var errs []error
	wrote := false
	for i, rec := range recs {
		if rerrs[i] != nil {
			r.log.Error("render record failed",
				zap.String("record", rec.DisplayName()),
				zap.String("uuid", rec.UUID().String()),
				zap.String("target", r.target.Name()),
				zap.Error(rerrs[i]))
			errs = append(errs, fmt.Errorf("record %s: %w", rec.UUID(), rerrs[i]))
			continue
		}
		if wrote && sep != "" {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if _, err := w.Write(bufs[i].Bytes()); err != nil {
			return err
		}
		wrote = true
	}
	if bf, ok := r.target.(BatchFootered); ok {
		if err := bf.BatchFooter(w, r.cfg, recs); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
