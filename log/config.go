package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag defaults. Warn keeps findings on stdout free of progress messages
// on stderr unless asked for.
const (
	DefaultLevel  = LevelWarn
	DefaultFormat = FormatText
)

// Flags names the log flags.
type Flags struct {
	Level  string
	Format string
}

// Config holds log flag values.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] for the flags "log-level" and "log-format".
func NewConfig() *Config {
	return &Config{Flags: Flags{Level: "log-level", Format: "log-format"}}
}

type flagSpec struct {
	value   *string
	name    string
	def     string
	what    string
	choices []string
}

func (c *Config) specs() []flagSpec {
	return []flagSpec{
		{&c.Level, c.Flags.Level, string(DefaultLevel), "log level", GetAllLevelStrings()},
		{&c.Format, c.Flags.Format, string(DefaultFormat), "log format", GetAllFormatStrings()},
	}
}

// RegisterFlags adds the log flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	for _, s := range c.specs() {
		flags.StringVar(s.value, s.name, s.def, s.what+", one of: "+strings.Join(s.choices, ", "))
	}
}

// RegisterCompletions completes the log flags of cmd with their choices.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, s := range c.specs() {
		err := cmd.RegisterFlagCompletionFunc(s.name,
			cobra.FixedCompletions(s.choices, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("complete --%s: %w", s.name, err)
		}
	}

	return nil
}

// NewHandler returns a [Handler] for the configured level and format.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// NewLogger is [Config.NewHandler] wrapped in a [slog.Logger].
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	h, err := c.NewHandler(w)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}
