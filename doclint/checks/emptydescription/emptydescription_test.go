package emptydescription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks/checktest"
	"go.jacobcolvin.com/doclint/doclint/checks/emptydescription"
)

const msg = "At-clause should have a non-empty description. [empty-description]"

func TestCheck(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		cfg  doclint.CheckConfig
		want []string
	}{
		"described tags": {
			text: `
				/**
				 * Text.
				 * @param a the a
				 * @return the value
				 * @deprecated use other
				 */`,
		},
		"missing descriptions": {
			text: `
				/**
				 * Text.
				 * @param a
				 * @return the value
				 * @throws Exception
				 * @deprecated
				 */`,
			want: []string{"3: " + msg, "5: " + msg, "6: " + msg},
		},
		"selected tokens only": {
			text: `
				/**
				 * @param a
				 * @return
				 */`,
			cfg:  doclint.CheckConfig{Tokens: []string{"RETURN_LITERAL"}},
			want: []string{"3: " + msg},
		},
		"other tags ignored": {
			text: `
				/**
				 * @since
				 * @see
				 */`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := checktest.Run(t, emptydescription.New(), tc.cfg, nil, tc.text)
			assert.Equal(t, tc.want, got)
		})
	}
}
