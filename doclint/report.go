package doclint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Format is an output format for findings.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// AllFormatStrings returns the names of all output formats.
func AllFormatStrings() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// WriteFindings writes findings to w. The text format writes one finding
// per line. JSON and YAML write a list, which is empty rather than null
// when there are no findings.
func WriteFindings(w io.Writer, format Format, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}

	switch format {
	case FormatText:
		for _, f := range findings {
			_, err := fmt.Fprintln(w, f.String())
			if err != nil {
				return fmt.Errorf("write finding: %w", err)
			}
		}

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(findings)
		if err != nil {
			return fmt.Errorf("encode findings: %w", err)
		}

	case FormatYAML:
		out, err := yaml.Marshal(findings)
		if err != nil {
			return fmt.Errorf("encode findings: %w", err)
		}

		_, err = w.Write(out)
		if err != nil {
			return fmt.Errorf("write findings: %w", err)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}
