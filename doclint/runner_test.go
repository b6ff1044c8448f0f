package doclint_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

var errMissing = errors.New("missing")

func TestRunner(t *testing.T) {
	t.Parallel()

	r := newRecorder("r", nil, doctree.JavadocTag)
	r.report = true

	e := doclint.NewEngine()
	require.NoError(t, e.Register(r, doclint.CheckConfig{}))

	var (
		mu     sync.Mutex
		parsed []string
	)

	load := func(_ context.Context, path string) ([]doclint.Comment, error) {
		if path == "missing.java" {
			return nil, errMissing
		}

		mu.Lock()
		parsed = append(parsed, path)
		mu.Unlock()

		// Every file has the same comment at the same line, so a cache
		// shared between files would be visible as missing findings.
		return []doclint.Comment{comment(4, "/** @return x */")}, nil
	}

	paths := make([]string, 0, 20)
	for i := range 19 {
		paths = append(paths, fmt.Sprintf("F%02d.java", i))
	}

	paths = append(paths, "missing.java")

	results, err := doclint.NewRunner(e, load, 4).Run(t.Context(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)

		if res.Path == "missing.java" {
			require.ErrorIs(t, res.Err, doclint.ErrReadInput)
			require.ErrorIs(t, res.Err, errMissing)
			assert.Empty(t, res.Findings)

			continue
		}

		require.NoError(t, res.Err)

		var findings []string
		for _, f := range res.Findings {
			findings = append(findings, f.String())
		}

		// One visit finding, then the per-file tree count.
		assert.Equal(t, []string{
			res.Path + ":4:5: visited JAVADOC_TAG [r]",
			res.Path + ":0: 1 trees [r]",
		}, findings)
	}

	assert.Len(t, parsed, 19)
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	e := doclint.NewEngine()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	load := func(context.Context, string) ([]doclint.Comment, error) { return nil, nil }

	_, err := doclint.NewRunner(e, load, 0).Run(ctx, []string{"a", "b"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteFindings(t *testing.T) {
	t.Parallel()

	findings := []doclint.Finding{
		{File: "A.java", Check: "c", Key: "k", Message: "first", Line: 3, Column: 7, Args: []any{"x"}},
		{File: "A.java", Check: "parser", Key: "p", Message: "second", Line: 9},
	}

	tcs := map[string]struct {
		findings []doclint.Finding
		format   doclint.Format
		want     string
	}{
		"text": {
			format:   doclint.FormatText,
			findings: findings,
			want:     "A.java:3:7: first [c]\nA.java:9: second [parser]\n",
		},
		"json empty": {
			format: doclint.FormatJSON,
			want:   "[]\n",
		},
		"json": {
			format:   doclint.FormatJSON,
			findings: findings[1:],
			want: strings.Join([]string{
				`[`,
				`  {`,
				`    "file": "A.java",`,
				`    "check": "parser",`,
				`    "key": "p",`,
				`    "message": "second",`,
				`    "line": 9`,
				`  }`,
				`]`,
				``,
			}, "\n"),
		},
		"yaml": {
			format:   doclint.FormatYAML,
			findings: findings[1:],
			want:     "- file: A.java\n  check: parser\n  key: p\n  message: second\n  line: 9\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, doclint.WriteFindings(&buf, tc.format, tc.findings))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	err := doclint.WriteFindings(&bytes.Buffer{}, "xml", nil)
	require.ErrorIs(t, err, doclint.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range doclint.AllFormatStrings() {
		f, err := doclint.ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(f))
	}

	_, err := doclint.ParseFormat("TEXT")
	require.ErrorIs(t, err, doclint.ErrUnknownFormat)
}
