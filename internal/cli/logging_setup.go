package cli

import (
	"github.com/spf13/cobra"

	"github.com/dahc/coreutils/internal/config"
	"github.com/dahc/coreutils/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags, and stores the logger in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config, flags *printFlags) *logging.Result {
	ctx := cmd.Context()
	runID := logging.GetOrGenerateRunID(ctx)
	ctx = logging.ContextWithRunID(ctx, runID)

	// Suppressed errors must leave stderr empty.
	if flags.suppress {
		logger = logging.Disabled()
		cmd.SetContext(logger.WithContext(ctx))
		return &logging.Result{Logger: logger}
	}

	loggingCfg := cfg.Logging
	if flags.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if err := loggingCfg.EnsureLogDir(); err != nil {
		cmd.PrintErrf("Warning: could not create log directory: %v\n", err)
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig(), cmd.ErrOrStderr())
	if result.FallbackReason != "" {
		cmd.PrintErrf("Warning: %s, logging to stderr\n", result.FallbackReason)
	}

	base := result.Logger.With().Str("run_id", runID).Logger()
	logger = logging.ComponentLogger(base, "cli")
	cmd.SetContext(base.WithContext(ctx))

	logger.Debug().
		Str("command", cmd.Name()).
		Bool("log_file", result.UsingFile()).
		Msg("command started")
	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
