package paginate

import (
	"context"
	"errors"
	"io"

	"github.com/dahc/coreutils/internal/logging"
)

// Stats summarizes one run.
type Stats struct {
	// PagesRead counts every page of the document that was built or skipped.
	PagesRead int
	// PagesWritten counts the pages that were emitted.
	PagesWritten int
	// LinesRead counts the content lines consumed from the source.
	LinesRead int
	// LinesWritten counts the output lines, including header and trailer.
	LinesWritten int
}

// Run paginates src into w according to opts. Options are validated before
// src is touched. Output already flushed when a later error occurs is left in
// place.
func Run(ctx context.Context, src LineSource, w io.Writer, opts Options) (Stats, error) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "paginate")
	var stats Stats

	if err := opts.Validate(); err != nil {
		log.Debug().Ctx(ctx).Err(err).Stringer("phase", PhaseFailed).Msg("invalid options")
		return stats, err
	}
	layout, _ := opts.Layout()
	log.Debug().Ctx(ctx).
		Str("source", opts.SourceName).
		Int("page_length", layout.PageLength).
		Int("lines_per_page", layout.LinesPerPage).
		Msg("layout computed")

	numberer := NewNumberer(opts)
	builder := NewBuilder(src, opts.SourceName, layout, numberer)
	filter := NewFilter(builder, opts.Pages)
	renderer := NewHeaderRenderer(opts, layout)
	writer := NewWriter(w, numberer, opts.DoubleSpace)

	collect := func() {
		stats.PagesRead = builder.PagesRead()
		stats.LinesRead = builder.LinesRead()
		stats.LinesWritten = writer.LinesWritten()
	}

	for page, err := range filter.Pages() {
		if err != nil {
			collect()
			log.Debug().Ctx(ctx).Err(err).Stringer("phase", PhaseReading).Msg("reading input failed")
			// Keep what was already rendered.
			if flushErr := writer.Flush(); flushErr != nil {
				return stats, errors.Join(err, flushErr)
			}
			return stats, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			collect()
			return stats, ctxErr
		}

		renderer.Apply(page)
		if writeErr := writer.WritePage(page); writeErr != nil {
			collect()
			log.Debug().Ctx(ctx).Err(writeErr).Int("page", page.Index).Msg("writing page failed")
			return stats, writeErr
		}
		stats.PagesWritten++
	}

	if err := writer.Flush(); err != nil {
		collect()
		return stats, err
	}
	collect()

	log.Debug().Ctx(ctx).
		Int("pages_read", stats.PagesRead).
		Int("pages_written", stats.PagesWritten).
		Int("lines_read", stats.LinesRead).
		Stringer("phase", PhaseDone).
		Msg("pagination finished")
	return stats, nil
}
