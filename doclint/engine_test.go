package doclint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

type optionCheck struct {
	*recorder
	opts struct {
		Order []string `yaml:"order"`
		Limit int      `yaml:"limit"`
	}
}

func (o *optionCheck) Configure(options map[string]any) error {
	return doclint.DecodeOptions(options, &o.opts)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func() doclint.Check
		errMsg string
		errIs  []error
		cfg    doclint.CheckConfig
	}{
		"required outside default": {
			check: func() doclint.Check {
				r := newRecorder("r", nil, doctree.Text)
				r.required = doctree.NewTypeSet(doctree.JavadocTag)

				return r
			},
			errIs:  []error{doclint.ErrInvalidConfig},
			errMsg: `node type "JAVADOC_TAG" from required types was not found in default types of check "r"`,
		},
		"selected outside acceptable": {
			check:  func() doclint.Check { return newRecorder("r", nil, doctree.Text) },
			cfg:    doclint.CheckConfig{Tokens: []string{"TEXT", "HTML_ELEMENT"}},
			errIs:  []error{doclint.ErrInvalidConfig},
			errMsg: `node type "HTML_ELEMENT" was not found in acceptable types of check "r"`,
		},
		"unknown node type": {
			check: func() doclint.Check { return newRecorder("r", nil, doctree.Text) },
			cfg:   doclint.CheckConfig{Tokens: []string{"NOPE"}},
			errIs: []error{doclint.ErrInvalidConfig, doclint.ErrUnknownNodeType},
		},
		"options for check without options": {
			check:  func() doclint.Check { return newRecorder("r", nil, doctree.Text) },
			cfg:    doclint.CheckConfig{Options: map[string]any{"order": []string{"a"}}},
			errIs:  []error{doclint.ErrInvalidConfig},
			errMsg: `check "r" takes no options`,
		},
		"unknown option": {
			check: func() doclint.Check {
				return &optionCheck{recorder: newRecorder("r", nil, doctree.Text)}
			},
			cfg:   doclint.CheckConfig{Options: map[string]any{"color": "red"}},
			errIs: []error{doclint.ErrInvalidConfig},
		},
		"valid options": {
			check: func() doclint.Check {
				return &optionCheck{recorder: newRecorder("r", nil, doctree.Text)}
			},
			cfg: doclint.CheckConfig{Options: map[string]any{"order": []string{"a", "b"}, "limit": 3}},
		},
		"valid selection": {
			check: func() doclint.Check { return newRecorder("r", nil, doctree.Text, doctree.JavadocTag) },
			cfg:   doclint.CheckConfig{Tokens: []string{"JAVADOC_TAG"}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e := doclint.NewEngine()
			err := e.Register(tc.check(), tc.cfg)

			if len(tc.errIs) == 0 {
				require.NoError(t, err)
				assert.Equal(t, []string{"r"}, e.Checks())

				return
			}

			require.Error(t, err)

			for _, target := range tc.errIs {
				require.ErrorIs(t, err, target)
			}

			if tc.errMsg != "" {
				assert.Contains(t, err.Error(), tc.errMsg)
			}

			assert.Empty(t, e.Checks())
		})
	}
}

func TestRegisterDecodesOptions(t *testing.T) {
	t.Parallel()

	c := &optionCheck{recorder: newRecorder("r", nil, doctree.Text)}

	err := doclint.NewEngine().Register(c, doclint.CheckConfig{
		Options: map[string]any{"order": []string{"a", "b"}, "limit": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, c.opts.Order)
	assert.Equal(t, 3, c.opts.Limit)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	e := doclint.NewEngine()
	require.NoError(t, e.Register(newRecorder("r", nil, doctree.Text), doclint.CheckConfig{}))

	err := e.Register(newRecorder("r", nil, doctree.Text), doclint.CheckConfig{})
	require.ErrorIs(t, err, doclint.ErrInvalidConfig)
}

func TestRegisterInterest(t *testing.T) {
	t.Parallel()

	r := newRecorder("r", nil, doctree.Text, doctree.JavadocTag)
	r.acceptable = r.defaults.With(doctree.Description)
	r.required = doctree.NewTypeSet(doctree.JavadocTag)

	other := newRecorder("defaults", nil, doctree.Text, doctree.JavadocTag)

	e := doclint.NewEngine()
	require.NoError(t, e.Register(r, doclint.CheckConfig{Tokens: []string{"DESCRIPTION"}}))
	require.NoError(t, e.Register(other, doclint.CheckConfig{}))

	got, ok := e.Interest("r")
	require.True(t, ok)
	assert.Equal(t, []doctree.Type{doctree.Description, doctree.JavadocTag}, got.Types())

	got, ok = e.Interest("defaults")
	require.True(t, ok)
	assert.Equal(t, []doctree.Type{doctree.Text, doctree.JavadocTag}, got.Types())

	_, ok = e.Interest("missing")
	assert.False(t, ok)
}

func TestRegisterMessages(t *testing.T) {
	t.Parallel()

	e := doclint.NewEngine()
	require.NoError(t, e.Register(newRecorder("r", nil, doctree.Text), doclint.CheckConfig{}))

	assert.Equal(t, "visited TEXT", e.Catalog().Format("test.visit", "TEXT"))
	assert.Equal(t, "Extra HTML tag found: </b>", e.Catalog().Format("javadoc.extraHtml", "</b>"))
	assert.Equal(t, "no.such.key [1 x]", e.Catalog().Format("no.such.key", 1, "x"))
	assert.Equal(t, "no.such.key", e.Catalog().Format("no.such.key"))
}
