package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/log"
	"go.jacobcolvin.com/doclint/source"
)

var (
	errNoComment = errors.New("no documentation comment")
	errNotTTY    = errors.New("interactive mode needs a terminal")
)

type treeOptions struct {
	line        int
	interactive bool
}

func newTreeCmd(logCfg *log.Config) *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree [flags] FILE",
		Short: "Print the parsed trees of the documentation comments in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, logCfg, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.line, "line", "l", 0, "only the comment starting at this line")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the trees in the terminal")

	return cmd
}

// parsedComment is a documentation comment with its parse result.
type parsedComment struct {
	res     *docparse.Result
	comment source.Comment
}

func (p parsedComment) title(path string) string {
	return fmt.Sprintf("%s:%d:%d %s", path, p.comment.Line, p.comment.Column+1, declTitle(p.comment.Declaration))
}

func declTitle(d *source.Declaration) string {
	if d == nil || d.Kind() == doctree.DeclUnknown {
		return "(unknown declaration)"
	}

	return fmt.Sprintf("(%s %s)", d.Kind(), d.Name())
}

func runTree(cmd *cobra.Command, logCfg *log.Config, opts treeOptions, path string) error {
	logger, err := logCfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	f, err := source.ReadFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("%w: %w", doclint.ErrReadInput, err)
	}

	var parsed []parsedComment

	for _, c := range f.Comments {
		if opts.line > 0 && c.Line != opts.line {
			continue
		}

		res := docparse.Parse(c.Comment)
		if res.Error != nil {
			logger.Debug("comment parse failed",
				slog.String("file", path),
				slog.Int("line", c.Line),
				slog.Any("error", res.Error),
			)
		}

		parsed = append(parsed, parsedComment{comment: c, res: res})
	}

	if len(parsed) == 0 {
		if opts.line > 0 {
			return fmt.Errorf("%w at %s:%d", errNoComment, path, opts.line)
		}

		return fmt.Errorf("%w in %s", errNoComment, path)
	}

	if !opts.interactive {
		return printTrees(cmd.OutOrStdout(), path, parsed)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTTY
	}

	height := 24
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		height = h
	}

	_, err = tea.NewProgram(newBrowser(path, parsed, height)).Run()
	if err != nil {
		return fmt.Errorf("tree browser: %w", err)
	}

	return nil
}

func printTrees(w io.Writer, path string, parsed []parsedComment) error {
	catalog := doclint.DefaultCatalog()

	for i, p := range parsed {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "# %s\n", p.title(path))

		for _, line := range resultNotes(catalog, p.res) {
			fmt.Fprintf(w, "# %s\n", line)
		}

		if p.res.Tree == nil {
			continue
		}

		err := doctree.Fprint(w, p.res.Root())
		if err != nil {
			return fmt.Errorf("print tree: %w", err)
		}
	}

	return nil
}

// resultNotes describes the parse failure and markup problems of res.
func resultNotes(catalog doclint.Catalog, res *docparse.Result) []string {
	var notes []string

	if res.Error != nil {
		notes = append(notes, fmt.Sprintf("parse error at line %d: %s",
			res.Error.Line, catalog.Format(res.Error.Key, res.Error.Args...)))
	}

	if res.NonTight && res.FirstNonTight != nil {
		notes = append(notes, fmt.Sprintf("implicitly closed <%s> at %d:%d",
			res.NonTightTag, res.FirstNonTight.Line(), res.FirstNonTight.Column()+1))
	}

	for _, d := range res.Markup {
		notes = append(notes, fmt.Sprintf("markup at line %d: %s",
			d.Tag.Line, catalog.Format(d.Key(), d.Args()...)))
	}

	return notes
}
