package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/markup"
)

type diag struct {
	kind markup.DiagnosticKind
	id   string
	line int
}

func validate(lines ...string) []diag {
	var out []diag

	for _, d := range markup.Validate(markup.Scan(lines, 10, 4)) {
		out = append(out, diag{kind: d.Kind, id: d.Tag.ID, line: d.Tag.Line})
	}

	return out
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		lines []string
		want  []diag
	}{
		"balanced": {
			lines: []string{"/** <b>bold</b> */"},
		},
		"unclosed at end": {
			lines: []string{"/** <b>bold */"},
			want:  []diag{{markup.Unclosed, "b", 10}},
		},
		"extra close": {
			lines: []string{"/** </b> */"},
			want:  []diag{{markup.Extra, "b", 10}},
		},
		"singleton": {
			lines: []string{"/** line<br> */"},
		},
		"singleton p never closed": {
			lines: []string{"/**", " * <p>one", " * <p>two", " */"},
		},
		"crossed nesting": {
			lines: []string{"/** <b><i>x</b></i> */"},
			want: []diag{
				{markup.Unclosed, "i", 10},
				{markup.Extra, "i", 10},
			},
		},
		"popped above in open order": {
			lines: []string{"/**", " * <div><b><i>x", " * </div>", " */"},
			want: []diag{
				{markup.Unclosed, "b", 11},
				{markup.Unclosed, "i", 11},
			},
		},
		"repeated unclosed reported once": {
			lines: []string{"/** <b>a <b>b <b>c */"},
			want:  []diag{{markup.Unclosed, "b", 10}},
		},
		"self closing ignored": {
			lines: []string{"/** <div/> text */"},
		},
		"case insensitive close": {
			lines: []string{"/** <B>x</b> */"},
		},
		"generic type parameters ignored": {
			lines: []string{"/** Returns a List<String> of names. */"},
		},
		"markup comment skipped": {
			lines: []string{"/** <!-- <b> --> text */"},
		},
		"multi line comment skipped": {
			lines: []string{"/**", " * <!-- <b>", " * </i> -->", " * <b>x</b>", " */"},
		},
		"incomplete short circuits": {
			lines: []string{"/**", " * <b>open", " * <i", " */"},
			want:  []diag{{markup.IncompleteTag, "", 12}},
		},
		"tag spanning lines": {
			lines: []string{"/**", " * <a", " *   href=\"x\">link</a>", " */"},
		},
		"less than sign in text": {
			lines: []string{"/** a < b and 1<2 */"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, validate(tc.lines...))
		})
	}
}

func TestValidateIgnored(t *testing.T) {
	t.Parallel()

	tags := markup.Scan([]string{"/** <T> the type and <b>bold */"}, 1, 0)

	diags := markup.Validate(tags, markup.WithIgnored("b"))
	assert.Empty(t, diags)
}

func TestValidateDeepStackWithOrphans(t *testing.T) {
	t.Parallel()

	const n = 5000

	line := "/** " + strings.Repeat("<b>", n) + strings.Repeat("</i>", n) + strings.Repeat("</B>", n) + " */"

	diags := markup.Validate(markup.Scan([]string{line}, 1, 0))
	require.Len(t, diags, n)

	for _, d := range diags {
		assert.Equal(t, markup.Extra, d.Kind)
		assert.Equal(t, "i", d.Tag.ID)
	}
}

func TestStack(t *testing.T) {
	t.Parallel()

	s := markup.NewStack(func(name string) string { return name })
	assert.Equal(t, -1, s.Index("p"))

	for _, name := range []string{"ul", "LI", "b", "li"} {
		s.Push(name)
	}

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.Index("Li"))
	assert.Equal(t, 0, s.Index("UL"))
	assert.Equal(t, -1, s.Index("i"))

	s.Truncate(2)
	assert.Equal(t, []string{"ul", "LI"}, s.Items())
	assert.Equal(t, 1, s.Index("li"))
	assert.Equal(t, -1, s.Index("b"))

	s.Truncate(0)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.Index("ul"))
}

func TestScanPositions(t *testing.T) {
	t.Parallel()

	tags := markup.Scan([]string{
		"/** <b>x</b>",
		"   * <br/>",
		"   */",
	}, 5, 2)
	require.Len(t, tags, 3)

	assert.Equal(t, "b", tags[0].ID)
	assert.Equal(t, 5, tags[0].Line)
	assert.Equal(t, 6, tags[0].Column)
	assert.False(t, tags[0].Closing)
	assert.Equal(t, "<b>", tags[0].String())

	assert.True(t, tags[1].Closing)
	assert.Equal(t, "b", tags[1].ID)
	assert.Equal(t, 10, tags[1].Column)

	assert.Equal(t, "br", tags[2].ID)
	assert.True(t, tags[2].SelfClosed)
	assert.Equal(t, 6, tags[2].Line)
	assert.Equal(t, 5, tags[2].Column)
}

func TestDiagnosticMessages(t *testing.T) {
	t.Parallel()

	diags := markup.Validate(markup.Scan([]string{"/** <i>x", " * <b", " */"}, 1, 0))
	require.Len(t, diags, 1)
	assert.Equal(t, markup.MsgIncompleteTag, diags[0].Key())
	assert.Equal(t, []any{" * <b"}, diags[0].Args())

	diags = markup.Validate(markup.Scan([]string{"/** </em> */"}, 1, 0))
	require.Len(t, diags, 1)
	assert.Equal(t, markup.MsgExtraHTML, diags[0].Key())
	assert.Equal(t, []any{"</em>"}, diags[0].Args())
}

func TestPolicyTables(t *testing.T) {
	t.Parallel()

	assert.True(t, markup.IsSingleton("BR"))
	assert.False(t, markup.IsSingleton("b"))
	assert.True(t, markup.IsAllowed("table"))
	assert.False(t, markup.IsAllowed("T"))
	assert.True(t, markup.IsVoid("img"))
	assert.False(t, markup.IsVoid("p"))
	assert.True(t, markup.IsOptionalClose("li"))
	assert.False(t, markup.IsOptionalClose("b"))
}
