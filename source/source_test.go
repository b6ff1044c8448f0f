package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/commenttest"
	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/source"
)

type decl struct {
	name       string
	returnType string
	modifiers  []string
	typeParams []string
	params     []string
	kind       doctree.DeclKind
	line       int
	column     int
}

func summarize(f *source.File) []decl {
	out := make([]decl, 0, len(f.Comments))

	for _, c := range f.Comments {
		d := c.Declaration
		out = append(out, decl{
			name:       d.Name(),
			returnType: d.ReturnType(),
			modifiers:  d.Modifiers(),
			typeParams: d.TypeParameters(),
			params:     d.Parameters(),
			kind:       d.Kind(),
			line:       c.Line,
			column:     c.Column,
		})
	}

	return out
}

func TestExtract(t *testing.T) {
	t.Parallel()

	src := commenttest.Input(`
		/** Package docs. */
		package com.example;

		import java.util.List;

		/**
		 * A box.
		 * @param <T> the element type
		 */
		@Deprecated(since = "1")
		public final class Box<T extends Comparable<T>, U> {
		    /** The "count" of things /** with noise. */
		    private int count = 0;

		    // /** not a doc comment */
		    /* /** neither */
		    String s = "/** in a string */";
		    char c = '"';
		    String block = """
		        /** in a text block */
		        """;

		    /** Creates a box. */
		    public Box(@NonNull T value, final int size) {
		        /** Local. */
		        int local = 1;
		    }

		    /**
		     * Maps values.
		     */
		    @Override
		    public static <R> List<R> map(Map<String, Integer> m, int... rest) throws IOException {
		        return null;
		    }

		    /** Runs. */
		    abstract void run();

		    /** Colors. */
		    enum Color {
		        /** Red. */
		        RED(1),
		        /** Green. */
		        GREEN;

		        /** Makes a color. */
		        Color(int v) {}
		    }

		    /** A point. */
		    record Point(int x, int y) {}

		    /** An annotation. */
		    public @interface Marker {
		        /** The value. */
		        String value() default "";
		    }
		}
		`)

	f, err := source.Extract(t.Context(), "Box.java", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "Box.java", f.Path)

	assert.Equal(t, []decl{
		{kind: doctree.DeclPackage, name: "com.example", line: 1},
		{
			kind: doctree.DeclClass, name: "Box", line: 6,
			modifiers: []string{"public", "final"}, typeParams: []string{"T", "U"},
		},
		{kind: doctree.DeclField, name: "count", modifiers: []string{"private"}, line: 12, column: 4},
		{
			kind: doctree.DeclConstructor, name: "Box", line: 23, column: 4,
			modifiers: []string{"public"}, params: []string{"value", "size"},
		},
		{kind: doctree.DeclLocalVariable, name: "local", line: 25, column: 8},
		{
			kind: doctree.DeclMethod, name: "map", line: 29, column: 4, returnType: "List<R>",
			modifiers: []string{"public", "static"}, typeParams: []string{"R"}, params: []string{"m", "rest"},
		},
		{
			kind: doctree.DeclMethod, name: "run", line: 37, column: 4, returnType: "void",
			modifiers: []string{"abstract"},
		},
		{kind: doctree.DeclEnum, name: "Color", line: 40, column: 4},
		{kind: doctree.DeclEnumConstant, name: "RED", line: 42, column: 8},
		{kind: doctree.DeclEnumConstant, name: "GREEN", line: 44, column: 8},
		{kind: doctree.DeclConstructor, name: "Color", line: 47, column: 8, params: []string{"v"}},
		{kind: doctree.DeclRecord, name: "Point", line: 51, column: 4, params: []string{"x", "y"}},
		{kind: doctree.DeclAnnotation, name: "Marker", line: 54, column: 4, modifiers: []string{"public"}},
		{kind: doctree.DeclAnnotationField, name: "value", line: 56, column: 8, returnType: "String"},
	}, summarize(f))
}

func TestExtractCommentLines(t *testing.T) {
	t.Parallel()

	f, err := source.Extract(t.Context(), "A.java", []byte("class A {\r\n  /**\r\n   * Hi.\r\n   */\r\n  void a() {}\r\n}\r\n"))
	require.NoError(t, err)
	require.Len(t, f.Comments, 1)

	c := f.Comments[0]
	assert.Equal(t, []string{"/**", "   * Hi.", "   */"}, c.Lines)
	assert.Equal(t, 2, c.Line)
	assert.Equal(t, 2, c.Column)
	assert.Equal(t, doctree.DeclMethod, c.Declaration.Kind())
}

func TestExtractUnknown(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"dangling at end":         "class A {}\n/** Trailing. */\n",
		"followed by another doc": "/** First. */\n/** Second. */\nclass A {}\n",
		"before import":           "/** Odd. */\nimport a.B;\n",
		"method call in code":     "class A { void f() { /** Call. */ g(1); } }\n",
	}

	for name, src := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := source.Extract(t.Context(), "A.java", []byte(src))
			require.NoError(t, err)
			require.NotEmpty(t, f.Comments)
			assert.Equal(t, doctree.DeclUnknown, f.Comments[0].Declaration.Kind())
		})
	}
}

func TestExtractSkipsEmptyAndUnterminated(t *testing.T) {
	t.Parallel()

	f, err := source.Extract(t.Context(), "A.java", []byte("/**/ class A {} /* /** open"))
	require.NoError(t, err)
	assert.Empty(t, f.Comments)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "A.java")
	require.NoError(t, os.WriteFile(path, []byte("/** A. */\ninterface A<T> {}\n"), 0o600))

	f, err := source.ReadFile(t.Context(), path)
	require.NoError(t, err)
	require.Len(t, f.Comments, 1)

	d := f.Comments[0].Declaration
	assert.Equal(t, doctree.DeclInterface, d.Kind())
	assert.Equal(t, "A", d.Name())
	assert.Equal(t, []string{"T"}, d.TypeParameters())

	_, err = source.ReadFile(t.Context(), filepath.Join(t.TempDir(), "missing.java"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
