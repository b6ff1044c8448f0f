package doclint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/doclint/doctree"
)

// Sentinel errors.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownCheck     = errors.New("unknown check")
	ErrUnknownNodeType  = doctree.ErrUnknownType
	ErrSchemaValidation = errors.New("schema validation")
	ErrReadInput        = errors.New("read input")
)

// registration is a validated, configured check prototype.
type registration struct {
	proto           Check
	name            string
	interest        doctree.TypeSet
	violateNonTight bool
}

// Engine holds the checks to run and builds per-file contexts.
//
// Registration happens before analysis starts and is not safe for
// concurrent use. Once registration is done, [Engine.NewFile] may be called
// from any number of goroutines.
type Engine struct {
	parse   ParseFunc
	logger  *slog.Logger
	catalog Catalog
	regs    []*registration
}

// Option configures an [Engine].
type Option func(*Engine)

// WithParseFunc replaces the comment parser, mostly for tests.
func WithParseFunc(fn ParseFunc) Option {
	return func(e *Engine) {
		e.parse = fn
	}
}

// WithLogger sets the logger for operational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an [Engine] without checks.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{catalog: DefaultCatalog()}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Register validates c against cfg and adds it to the engine.
//
// The required types of c must be a subset of its default types, and the
// types selected by cfg.Tokens must be a subset of its acceptable types.
// The check then visits the selected types, or its default types when
// nothing is selected, plus its required types. Options are handed to
// [Configurable.Configure]. Every failure wraps [ErrInvalidConfig].
func (e *Engine) Register(c Check, cfg CheckConfig) error {
	name := c.Name()

	for _, r := range e.regs {
		if r.name == name {
			return fmt.Errorf("%w: check %q registered twice", ErrInvalidConfig, name)
		}
	}

	defaults := c.DefaultTypes()
	required := c.RequiredTypes()

	if missing := required.Difference(defaults).Types(); len(missing) > 0 {
		return fmt.Errorf("%w: node type %q from required types was not found in default types of check %q",
			ErrInvalidConfig, missing[0], name)
	}

	interest := defaults

	if len(cfg.Tokens) > 0 {
		selected, err := doctree.ParseTypeSet(cfg.Tokens...)
		if err != nil {
			return fmt.Errorf("%w: check %q: %w", ErrInvalidConfig, name, err)
		}

		if extra := selected.Difference(c.AcceptableTypes()).Types(); len(extra) > 0 {
			return fmt.Errorf("%w: node type %q was not found in acceptable types of check %q",
				ErrInvalidConfig, extra[0], name)
		}

		interest = selected
	}

	if len(cfg.Options) > 0 {
		conf, ok := c.(Configurable)
		if !ok {
			return fmt.Errorf("%w: check %q takes no options", ErrInvalidConfig, name)
		}

		err := conf.Configure(cfg.Options)
		if err != nil {
			return fmt.Errorf("%w: check %q: %w", ErrInvalidConfig, name, err)
		}
	}

	if mp, ok := c.(MessageProvider); ok {
		e.catalog.Merge(mp.Messages())
	}

	violate := false
	if cfg.ViolateOnNonTightHTML != nil {
		violate = *cfg.ViolateOnNonTightHTML
	}

	e.regs = append(e.regs, &registration{
		proto:           c,
		name:            name,
		interest:        interest.Union(required),
		violateNonTight: violate,
	})

	return nil
}

// Checks returns the names of the registered checks in registration order.
func (e *Engine) Checks() []string {
	names := make([]string, 0, len(e.regs))
	for _, r := range e.regs {
		names = append(names, r.name)
	}

	return names
}

// Interest returns the node types the named check visits, and whether the
// check is registered.
func (e *Engine) Interest(name string) (doctree.TypeSet, bool) {
	for _, r := range e.regs {
		if r.name == name {
			return r.interest, true
		}
	}

	return doctree.TypeSet{}, false
}

// Catalog returns the message templates known to the engine.
func (e *Engine) Catalog() Catalog { return e.catalog }

// NewFile starts the analysis of one file. The returned [File] owns a
// fresh [ParseCache] and fresh check instances.
func (e *Engine) NewFile(path string) *File {
	f := &File{
		engine: e,
		path:   path,
		cache:  NewParseCache(e.parse),
		checks: make([]fileCheck, 0, len(e.regs)),
	}

	for _, r := range e.regs {
		f.checks = append(f.checks, fileCheck{reg: r, check: r.proto.ForFile(path)})
	}

	return f
}

// DecodeOptions decodes check options into v, which must be a pointer.
// Options that v has no field for are an error.
func DecodeOptions(options map[string]any, v any) error {
	data, err := yaml.Marshal(options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	err = yaml.UnmarshalWithOptions(data, v, yaml.DisallowUnknownField())
	if err != nil {
		return fmt.Errorf("decode options: %w", err)
	}

	return nil
}
