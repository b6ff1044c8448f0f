package tagorder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks/checktest"
	"go.jacobcolvin.com/doclint/doclint/checks/tagorder"
)

const unordered = `
	/**
	 * Text.
	 * @return the value
	 * @param a the a
	 * @author me
	 */`

func TestCheck(t *testing.T) {
	t.Parallel()

	defaultMsg := "Block tags have to appear in the order '[" +
		strings.Join(tagorder.DefaultOrder, ", ") + "]'. [tag-order]"

	tcs := map[string]struct {
		cfg  doclint.CheckConfig
		text string
		want []string
	}{
		"default order": {
			text: unordered,
			want: []string{"4: " + defaultMsg, "5: " + defaultMsg},
		},
		"configured order": {
			cfg: doclint.CheckConfig{Options: map[string]any{
				"tagOrder": []any{"@param", "@return"},
			}},
			text: unordered,
			want: []string{"4: Block tags have to appear in the order '[@param, @return]'. [tag-order]"},
		},
		"ordered": {
			text: `
				/**
				 * @author me
				 * @param a the a
				 * @param b the b
				 * @return the value
				 * @custom whatever
				 * @see Other
				 */`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, checktest.Run(t, tagorder.New(), tc.cfg, nil, tc.text))
		})
	}
}

func TestConfigureRejectsNonTags(t *testing.T) {
	t.Parallel()

	tcs := map[string]map[string]any{
		"missing at sign": {"tagOrder": []any{"param"}},
		"bare at sign":    {"tagOrder": []any{"@"}},
		"unknown option":  {"order": []any{"@param"}},
	}

	for name, options := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := doclint.NewEngine().Register(tagorder.New(), doclint.CheckConfig{Options: options})
			require.ErrorIs(t, err, doclint.ErrInvalidConfig)
		})
	}
}
