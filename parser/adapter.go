// Package parser is the C2 single-file parser adapter: it wraps the
// lexer and grammar-level parser (an external collaborator, spec.md §1,
// §6) and lowers its output into the closed ast.Node hierarchy (C1).
//
// The underlying engine is github.com/VKCOM/php-parser, a PHP 5–8
// recursive-descent parser (grounded on
// _examples/other_examples/.../whit3rabbit-phpmixer, the only repo in
// the retrieval pack that imports a real PHP grammar). Everything this
// package does downstream of calling phpparser.Parse is this system's
// own responsibility; the grammar and tokenizer themselves are treated
// as a black box per spec.md §6.
package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	phpconf "github.com/VKCOM/php-parser/pkg/conf"
	phperr "github.com/VKCOM/php-parser/pkg/errors"
	phpparser "github.com/VKCOM/php-parser/pkg/parser"
	phpversion "github.com/VKCOM/php-parser/pkg/version"

	"github.com/oxhq/phpast/ast"
)

// ParseError wraps the diagnostics the underlying grammar parser produced.
// Per spec.md §7, a ParseError is per-file fatal: the caller (C4) records
// it and moves on to the next file.
type ParseError struct {
	FilePath string
	Errors   []*phperr.Error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s: %d syntax error(s)", e.FilePath, len(e.Errors))
}

// Version re-exports the underlying grammar's version type so callers
// outside this package (internal/config, resource) can name it without
// importing php-parser directly.
type Version = phpversion.Version

// DefaultVersion is the PHP grammar version used when the caller does not
// pin one explicitly. PHP 8.1 is a reasonable modern default covering
// the constructs spec.md's node model needs (typed/nullable params,
// match has no first-class variant and goes through the generic
// fallback).
var DefaultVersion = Version{Major: 8, Minor: 1}

// ParseVersionString parses a "major.minor" dotted version string (the
// shape internal/config's PHPAST_PHP_VERSION env var takes) into a
// Version. An empty or malformed string yields DefaultVersion.
func ParseVersionString(s string) Version {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return DefaultVersion
	}
	major, err1 := strconv.ParseUint(parts[0], 10, 64)
	minor, err2 := strconv.ParseUint(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return DefaultVersion
	}
	return Version{Major: major, Minor: minor}
}

// Parse consumes a source byte stream and produces a *ast.SyntaxTree, or
// fails with *ParseError (spec.md §4.2 "Contract"). On success the
// returned tree has FilePath, FileLocation, and FileName populated and
// NearestNSParent left nil, exactly as spec.md §4.2 requires.
func Parse(src []byte, filePath string) (*ast.SyntaxTree, error) {
	return ParseVersion(src, filePath, DefaultVersion)
}

// ParseVersion is Parse with an explicit grammar version, for corpora
// pinned to an older PHP dialect.
func ParseVersion(src []byte, filePath string, version phpversion.Version) (*ast.SyntaxTree, error) {
	var parseErrors []*phperr.Error
	cfg := phpconf.Config{
		Version: &version,
		ErrorHandlerFunc: func(e *phperr.Error) {
			parseErrors = append(parseErrors, e)
		},
	}

	rootVertex, err := phpparser.Parse(src, cfg)
	if err != nil {
		return nil, &ParseError{FilePath: filePath, Errors: append(parseErrors, &phperr.Error{Msg: err.Error()})}
	}
	if len(parseErrors) > 0 {
		return nil, &ParseError{FilePath: filePath, Errors: parseErrors}
	}

	l := newLowerer(src)
	nodes := l.lowerRoot(rootVertex)

	tree := ast.NewSyntaxTree(filePath, filepath.Dir(filePath), filepath.Base(filePath), nodes)
	return tree, nil
}
