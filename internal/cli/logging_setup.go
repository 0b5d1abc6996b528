package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/logging"
)

// setupLogging configures the package logger from the config file,
// environment, and CLI flags, and attaches it to the command context.
//
// Precedence for the log level: --debug, then DATASHEET_LOG_LEVEL, then the
// config file. The format follows DATASHEET_LOG_FORMAT over the config file;
// --debug forces console output so the debug stream stays readable.
func setupLogging(cmd *cobra.Command) {
	loggingCfg := config.New().Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	if envLevel := os.Getenv(logging.EnvLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(logging.EnvLogFormat); envFormat != "" && !debug {
		loggingCfg.Format = envFormat
	}

	logger = logging.ComponentLogger(logging.New(loggingCfg.ToLoggingConfig()), "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
}
