package doclint

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// CheckConfig configures one check.
type CheckConfig struct {
	// Options are decoded by the check itself.
	Options map[string]any `json:"options,omitempty" jsonschema:"check specific options" yaml:"options,omitempty"`
	// ViolateOnNonTightHTML overrides [FileConfig.ViolateOnNonTightHTML].
	ViolateOnNonTightHTML *bool `json:"violateOnNonTightHtml,omitempty" jsonschema:"report implicitly closed markup instead of silently skipping the comment" yaml:"violateOnNonTightHtml,omitempty"`
	Name                  string `json:"name" jsonschema:"registered check name" yaml:"name"`
	// Tokens selects node types by name, e.g. JAVADOC_TAG.
	Tokens []string `json:"tokens,omitempty" jsonschema:"node types the check visits instead of its defaults" yaml:"tokens,omitempty"`
}

// FileConfig is the content of a configuration file.
type FileConfig struct {
	Checks                []CheckConfig `json:"checks,omitempty" jsonschema:"checks to run; all registered checks when empty" yaml:"checks,omitempty"`
	Extensions            []string      `json:"extensions,omitempty" jsonschema:"file extensions to analyze" yaml:"extensions,omitempty"`
	ViolateOnNonTightHTML bool          `json:"violateOnNonTightHtml,omitempty" jsonschema:"default for checks that reject implicitly closed markup" yaml:"violateOnNonTightHtml,omitempty"`
}

// Check returns the configuration of the named check, if present.
func (fc *FileConfig) Check(name string) (CheckConfig, bool) {
	for _, cc := range fc.Checks {
		if cc.Name == name {
			return cc, true
		}
	}

	return CheckConfig{}, false
}

// Schema returns the JSON Schema of [FileConfig].
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[FileConfig](nil)
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}

	schema.Schema = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "doclint configuration"

	return schema, nil
}

// LoadFileConfig validates YAML data against [Schema] and decodes it.
// Empty data yields an empty configuration.
func LoadFileConfig(data []byte) (*FileConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &FileConfig{}, nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var instance any

	err = json.Unmarshal(jsonData, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve schema: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrInvalidConfig, ErrSchemaValidation, err)
	}

	var fc FileConfig

	err = yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &fc, nil
}
