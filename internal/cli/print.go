package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/dahc/coreutils/internal/cli/pagination"
	"github.com/dahc/coreutils/internal/config"
	"github.com/dahc/coreutils/internal/paginate"
	"github.com/dahc/coreutils/internal/source"
)

// runPrint validates the flags, then paginates every input in order. An
// input that cannot be read is reported and skipped; a write failure stops
// the run.
func runPrint(cmd *cobra.Command, args []string, cfg *config.Config, flags *printFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	opts, srcOpts, err := buildOptions(cmd, cfg, flags, out)
	if err != nil {
		logger.Debug().Err(err).Msg("invalid options")
		return &ExitError{Code: ExitFailure, Err: err, Silent: flags.suppress}
	}

	dateFormat := cfg.Page.DateFormat
	if flags.dateFormat != "" {
		dateFormat = flags.dateFormat
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{source.Stdin}
	}

	failed := false
	for _, input := range inputs {
		stats, name, printErr := printInput(ctx, cmd.InOrStdin(), out, input, opts, srcOpts, dateFormat)
		if printErr != nil {
			var sinkErr *paginate.SinkError
			if errors.As(printErr, &sinkErr) || ctx.Err() != nil {
				return &ExitError{Code: ExitFailure, Err: printErr, Silent: flags.suppress}
			}
			logger.Debug().Err(printErr).Str("input", input).Msg("input failed")
			if !flags.suppress {
				cmd.PrintErrln("pr: " + printErr.Error())
			}
			failed = true
			continue
		}
		if flags.summary {
			cmd.PrintErrln("pr: " + pagination.FormatSummary(name, stats))
		}
	}

	if failed {
		return &ExitError{Code: ExitFailure, Err: errInputsFailed, Silent: true}
	}
	return nil
}

// buildOptions merges config defaults and flags into paginate.Options and
// source.Options and validates them before any input is opened.
func buildOptions(
	cmd *cobra.Command,
	cfg *config.Config,
	flags *printFlags,
	out io.Writer,
) (paginate.Options, source.Options, error) {
	var srcOpts source.Options
	opts := paginate.DefaultOptions()
	opts.PageLength = cfg.Page.Length
	opts.NumberWidth = cfg.Page.NumberWidth
	opts.NumberSeparator = cfg.Separator()
	opts.FirstLineNumber = cfg.Page.FirstLineNumber

	changed := cmd.Flags().Changed
	if changed("length") {
		opts.PageLength = flags.length
	}
	if changed("first-line-number") {
		opts.FirstLineNumber = flags.firstLine
	}
	opts.HeaderText = flags.header
	opts.DoubleSpace = flags.doubleSpace
	opts.OmitHeaderTrailer = flags.omitHeader

	if changed("number-lines") {
		sep, width, err := pagination.ParseNumberSpec(flags.numberSpec, opts.NumberSeparator, opts.NumberWidth)
		if err != nil {
			return opts, srcOpts, err
		}
		opts.NumberLines = true
		opts.NumberSeparator = sep
		opts.NumberWidth = width
	}

	if changed("pages") {
		pages, err := pagination.ParsePageRange(flags.pages)
		if err != nil {
			return opts, srcOpts, err
		}
		opts.Pages = pages
	}

	decorate, err := titleDecorator(flags.color, out)
	if err != nil {
		return opts, srcOpts, err
	}
	opts.DecorateTitle = decorate

	encodingName := cfg.Page.Encoding
	if changed("encoding") {
		encodingName = flags.encoding
	}
	enc, err := source.ResolveEncoding(encodingName)
	if err != nil {
		return opts, srcOpts, &paginate.ConfigError{
			Msg: fmt.Sprintf("unknown encoding '%s'", encodingName),
			Err: err,
		}
	}
	srcOpts.Encoding = enc

	return opts, srcOpts, opts.Validate()
}

// printInput paginates one input and returns its stats and display name.
func printInput(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	input string,
	opts paginate.Options,
	srcOpts source.Options,
	dateFormat string,
) (paginate.Stats, string, error) {
	var (
		src *source.Source
		err error
	)
	if input == source.Stdin {
		src, err = source.FromReader("", in, srcOpts)
	} else {
		src, err = source.Open(input, srcOpts)
	}
	if err != nil {
		return paginate.Stats{}, input, openError(input, err)
	}
	defer func() { _ = src.Close() }()

	modTime := src.ModTime
	if modTime.IsZero() {
		modTime = time.Now()
	}
	opts.SourceName = src.Name
	opts.Timestamp = modTime.Format(dateFormat)

	logger.Debug().
		Str("input", input).
		Str("compression", src.Compression).
		Msg("input opened")

	stats, err := paginate.Run(ctx, src, out, opts)
	return stats, src.Name, err
}

// openError drops the repeated path from an open failure.
func openError(name string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &paginate.SourceError{Name: name, Err: err}
}
