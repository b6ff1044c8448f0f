// Package log builds [log/slog] handlers for the command line.
//
// Three formats are supported: [FormatText] renders colored, human readable
// lines through [charm.land/log/v2], [FormatLogfmt] uses
// [slog.NewTextHandler] and [FormatJSON] uses [slog.NewJSONHandler]. Levels
// are [LevelError], [LevelWarn], [LevelInfo] and [LevelDebug].
//
// [Config] binds both settings to [github.com/spf13/pflag] flags and
// registers [github.com/spf13/cobra] completions for them:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	err := cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
package log
