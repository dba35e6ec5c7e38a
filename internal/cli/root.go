package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dahc/coreutils/internal/cli/pagination"
	"github.com/dahc/coreutils/internal/config"
	"github.com/dahc/coreutils/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// flagAliases maps alternative long flag names onto the canonical ones.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var flagAliases = map[string]string{
	"suppress-errors":     "no-file-warnings",
	"omit-header-trailer": "omit-header",
	"page-length":         "length",
	"header-text":         "header",
}

// printFlags holds the flag values of the root command.
type printFlags struct {
	numberSpec  string
	header      string
	doubleSpace bool
	firstLine   int
	pages       string
	omitHeader  bool
	length      int
	suppress    bool
	encoding    string
	color       string
	summary     bool
	configPath  string
	debug       bool
	dateFormat  string
}

// NewRootCmd creates the pr command. It paginates each FILE, or standard
// input, to standard output.
func NewRootCmd(ver string) *cobra.Command {
	var (
		flags     printFlags
		cfg       *config.Config
		logResult *logging.Result
	)

	cmd := &cobra.Command{
		Use:           "pr [flags] [FILE]...",
		Short:         "Paginate text files for printing",
		Long:          rootCmdLong,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(flags.configPath)
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err, Silent: flags.suppress}
			}
			cfg = loaded
			logResult = setupLogging(cmd, cfg, &flags)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, args, cfg, &flags)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := flagAliases[name]; ok {
			name = canonical
		}
		return pflag.NormalizedName(name)
	})

	// -h is the header flag, so help is long-form only.
	cmd.Flags().Bool("help", false, "help for pr")

	cmd.Flags().StringVarP(&flags.numberSpec, "number-lines", "n", "",
		"number lines; optional argument [SEP][WIDTH] sets the separator character and field width")
	cmd.Flags().Lookup("number-lines").NoOptDefVal = pagination.NumberSpecDefault
	cmd.Flags().StringVarP(&flags.header, "header", "h", "",
		"use HEADER instead of the file name in the page header")
	cmd.Flags().BoolVarP(&flags.doubleSpace, "double-space", "d", false,
		"double space the output")
	cmd.Flags().IntVarP(&flags.firstLine, "first-line-number", "N", config.DefaultFirstLineNumber,
		"start counting with NUMBER at the first line of the first page")
	cmd.Flags().StringVar(&flags.pages, "pages", "",
		"print only pages START[:END]")
	cmd.Flags().BoolVarP(&flags.omitHeader, "omit-header", "t", false,
		"omit page headers and trailers")
	cmd.Flags().IntVarP(&flags.length, "length", "l", config.DefaultPageLength,
		"set the page length to NUMBER lines, header included; lengths of 5 or less fail unless -t is given")
	cmd.Flags().BoolVarP(&flags.suppress, "no-file-warnings", "r", false,
		"fail silently: no diagnostics, non-zero exit status")
	cmd.Flags().StringVarP(&flags.dateFormat, "date-format", "D", "",
		"Go time layout for the header date (default from config)")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "",
		"decode input from this IANA charset")
	cmd.Flags().StringVar(&flags.color, "color", colorAuto,
		"embolden the header title: auto, always or never")
	cmd.Flags().BoolVar(&flags.summary, "summary", false,
		"print a per-file summary to standard error")
	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"YAML file merged over ~/.pr/config.yaml")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	return cmd
}

const rootCmdLong = `Paginate each FILE to standard output. With no FILE, or when FILE is -,
read standard input. Compressed (gzip, zstd) inputs are decompressed.

Each page starts with a five line header holding the date, the file name and
the page number. Defaults are read from ~/.pr/config.yaml (or $PR_HOME).`

const rootCmdExample = `  # Paginate a file with the default 66 line pages
  pr notes.txt

  # Number lines, separating numbers with ':' in a 3 wide field
  pr -n:3 notes.txt

  # Print pages 15 to 17 with a custom header
  pr --pages=15:17 --header "draft" notes.txt

  # Double spaced, no header, 40 line pages
  pr -d -t -l 40 notes.txt`
