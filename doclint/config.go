package doclint

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for analysis configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Config                string
	Checks                string
	Format                string
	Workers               string
	ViolateOnNonTightHTML string
	Extensions            string
}

// Config holds CLI flag values for analysis configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewEngine] to create an [Engine].
type Config struct {
	Flags                 Flags
	Registry              Registry
	ConfigFile            string
	Checks                string
	Format                string
	Extensions            string
	Workers               int
	ViolateOnNonTightHTML bool

	file *FileConfig
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Config:                "config",
		Checks:                "checks",
		Format:                "format",
		Workers:               "workers",
		ViolateOnNonTightHTML: "violate-on-non-tight-html",
		Extensions:            "extensions",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds analysis flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.ConfigFile, c.Flags.Config, "c", "",
		"YAML configuration file")
	flags.StringVar(&c.Checks, c.Flags.Checks, "",
		"comma-separated list of checks to run (default: all, or those in the configuration file)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatText),
		"output format: "+strings.Join(AllFormatStrings(), ", "))
	flags.IntVarP(&c.Workers, c.Flags.Workers, "j", 4,
		"number of files analyzed concurrently")
	flags.BoolVar(&c.ViolateOnNonTightHTML, c.Flags.ViolateOnNonTightHTML, false,
		"report implicitly closed markup for checks that cannot handle it")
	flags.StringVar(&c.Extensions, c.Flags.Extensions, ".java",
		"comma-separated list of file extensions to analyze in directories")
}

// RegisterCompletions registers shell completions for analysis flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Checks,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Checks, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(AllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Config,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Config, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Workers, c.Flags.Extensions} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// FileConfig returns the decoded configuration file, loading it on first
// use. Without a configuration file it returns an empty configuration.
func (c *Config) FileConfig() (*FileConfig, error) {
	if c.file != nil {
		return c.file, nil
	}

	if c.ConfigFile == "" {
		c.file = &FileConfig{}

		return c.file, nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	fc, err := LoadFileConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.ConfigFile, err)
	}

	c.file = fc

	return fc, nil
}

// ExtensionList returns the file extensions to analyze. Extensions from the
// configuration file win over the flag default but not over an explicitly
// set flag.
func (c *Config) ExtensionList(flagChanged bool) ([]string, error) {
	fc, err := c.FileConfig()
	if err != nil {
		return nil, err
	}

	if !flagChanged && len(fc.Extensions) > 0 {
		return fc.Extensions, nil
	}

	return splitList(c.Extensions), nil
}

// NewEngine creates an [Engine] with the checks selected by the flags and
// the configuration file.
//
// The --checks flag replaces the selection of the configuration file;
// checks it names keep their file configuration. Without either, every
// check in [Config.Registry] runs with its defaults.
func (c *Config) NewEngine(opts ...Option) (*Engine, error) {
	if _, err := ParseFormat(c.Format); err != nil {
		return nil, err
	}

	fc, err := c.FileConfig()
	if err != nil {
		return nil, err
	}

	var selected []CheckConfig

	switch {
	case c.Checks != "":
		for _, name := range splitList(c.Checks) {
			cc, ok := fc.Check(name)
			if !ok {
				cc = CheckConfig{Name: name}
			}

			selected = append(selected, cc)
		}

	case len(fc.Checks) > 0:
		selected = fc.Checks

	default:
		for _, name := range c.Registry.Names() {
			selected = append(selected, CheckConfig{Name: name})
		}
	}

	violate := c.ViolateOnNonTightHTML || fc.ViolateOnNonTightHTML
	engine := NewEngine(opts...)

	for _, cc := range selected {
		check, err := c.Registry.New(cc.Name)
		if err != nil {
			return nil, err
		}

		if cc.ViolateOnNonTightHTML == nil {
			cc.ViolateOnNonTightHTML = &violate
		}

		err = engine.Register(check, cc)
		if err != nil {
			return nil, err
		}
	}

	return engine, nil
}

func splitList(s string) []string {
	var out []string

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
