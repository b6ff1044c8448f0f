package firstsentence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/commenttest"
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks/checktest"
	"go.jacobcolvin.com/doclint/doclint/checks/firstsentence"
	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
)

const (
	noPeriod = "1: First sentence should end with a period. [first-sentence]"
	empty    = "1: Javadoc has empty description section. [first-sentence]"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	violate := true

	tcs := map[string]struct {
		decl doctree.Declaration
		cfg  doclint.CheckConfig
		text string
		want []string
	}{
		"terminated": {
			text: `
				/**
				 * Returns the value.
				 * @return the value
				 */`,
		},
		"question": {
			text: "/** Is it empty? */",
		},
		"sentence end before more text": {
			text: `
				/**
				 * Returns the
				 * value. And more
				 */`,
		},
		"period before markup": {
			text: "/** Returns.<br> More */",
		},
		"unterminated": {
			text: `
				/**
				 * Returns the value
				 * @return the value
				 */`,
			want: []string{noPeriod},
		},
		"markup text counts": {
			text: "/** Returns <b>bold</b> */",
			want: []string{noPeriod},
		},
		"first sentence check disabled": {
			cfg: doclint.CheckConfig{Options: map[string]any{"checkFirstSentence": false}},
			text: `
				/**
				 * Returns the value
				 */`,
		},
		"empty description not reported by default": {
			text: `
				/**
				 * @return the value
				 */`,
		},
		"empty description": {
			cfg: doclint.CheckConfig{Options: map[string]any{"checkEmptyJavadoc": true}},
			text: `
				/**
				 * @return the value
				 */`,
			want: []string{empty},
		},
		"custom end of sentence": {
			cfg:  doclint.CheckConfig{Options: map[string]any{"endOfSentenceFormat": `;$`}},
			text: "/** Returns the value; */",
		},
		"inherit doc on overridable method": {
			decl: checktest.Method("size", "int"),
			text: `
				/**
				 * {@inheritDoc}
				 */`,
		},
		"inherit doc without declaration": {
			text: `
				/**
				 * {@inheritDoc}
				 */`,
			want: []string{noPeriod},
		},
		"implicitly closed markup skipped": {
			text: "/** <p>para */",
		},
		"implicitly closed markup reported": {
			cfg:  doclint.CheckConfig{ViolateOnNonTightHTML: &violate},
			text: "/** <p>para */",
			want: []string{"1:5: Unclosed HTML tag found: p [first-sentence]"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := checktest.Run(t, firstsentence.New(), tc.cfg, tc.decl, tc.text)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigureInvalidPattern(t *testing.T) {
	t.Parallel()

	err := doclint.NewEngine().Register(firstsentence.New(), doclint.CheckConfig{
		Options: map[string]any{"endOfSentenceFormat": "("},
	})
	require.ErrorIs(t, err, doclint.ErrInvalidConfig)
}

func TestDescription(t *testing.T) {
	t.Parallel()

	res := docparse.Parse(commenttest.Comment(1, 0, `
		/**
		 * Returns a <b>bold
		 *    value</b> for {@code x}.
		 *
		 * @return the value
		 */`))
	require.Nil(t, res.Error)

	assert.Equal(t, "Returns a <b>bold\nvalue</b> for {@code x}.", firstsentence.Description(res.Root()))
}
