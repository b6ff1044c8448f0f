package doclint

import (
	"go.jacobcolvin.com/doclint/docparse"
)

// ParseFunc parses one comment.
type ParseFunc func(c docparse.Comment) *docparse.Result

type cacheKey struct {
	line, column int
}

// ParseCache holds the parse results of the comments of one file, keyed by
// the position where each comment starts. Every comment is parsed at most
// once, however many checks ask for it.
//
// A ParseCache belongs to a single [File] and is not safe for concurrent
// use.
type ParseCache struct {
	parse   ParseFunc
	entries map[cacheKey]*docparse.Result
}

// NewParseCache returns an empty cache that parses with fn, or with
// [docparse.Parse] when fn is nil.
func NewParseCache(fn ParseFunc) *ParseCache {
	if fn == nil {
		fn = docparse.Parse
	}

	return &ParseCache{
		parse:   fn,
		entries: make(map[cacheKey]*docparse.Result),
	}
}

// GetOrParse returns the cached result for c, parsing it on the first
// request.
func (pc *ParseCache) GetOrParse(c docparse.Comment) *docparse.Result {
	key := cacheKey{line: c.Line, column: c.Column}
	if res, ok := pc.entries[key]; ok {
		return res
	}

	res := pc.parse(c)
	pc.entries[key] = res

	return res
}

// Len returns the number of cached results.
func (pc *ParseCache) Len() int { return len(pc.entries) }

// Clear drops every cached result.
func (pc *ParseCache) Clear() { clear(pc.entries) }
