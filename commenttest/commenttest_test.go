package commenttest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/doclint/commenttest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line with both newlines": {
			input: "\nhello\n",
			want:  "hello",
		},
		"common indent": {
			input: `
			/**
			 * Hi.
			 */`,
			want: "/**\n * Hi.\n */",
		},
		"blank line shorter than indent": {
			input: "\n    a\n\n    b",
			want:  "a\n\nb",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, commenttest.Input(tc.input))
		})
	}
}

func TestComment(t *testing.T) {
	t.Parallel()

	c := commenttest.Comment(7, 4, `
		/**
		 * Hi.
		 */`)

	assert.Equal(t, []string{"/**", " * Hi.", " */"}, c.Lines)
	assert.Equal(t, 7, c.Line)
	assert.Equal(t, 4, c.Column)

	assert.Equal(t, "a\nb", commenttest.JoinLF("a", "b"))
	assert.Equal(t, []string{"/** x */"}, commenttest.Lines("/** x */").Lines)
}
