// Package js_parser implements a recursive-descent, one-token lookahead
// parser that consumes js_lexer tokens and produces a js_ast.Program. Scope
// and symbol bookkeeping is not interleaved with parsing: this parser's only
// job is to turn tokens into a faithful parse tree, leaving binding
// resolution to the semantic builder as its own later pass. This keeps the
// parser reusable for callers that only want a syntax tree (formatters,
// partial loaders) without paying for semantic analysis.
package js_parser

import (
	"fmt"
	"strings"

	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
	"github.com/oxc-go/oxc/internal/logger"
)

type Options struct {
	SourceType js_ast.SourceType
}

type parser struct {
	log     logger.Log
	source  logger.Source
	lex     js_lexer.Lexer
	options Options

	// lastEnd is the byte offset just past the most recently consumed
	// token, used to close spans that were opened with p.lex.Start().
	lastEnd uint32

	fnStack []fnCtx

	// allowIn/inGenerator/inAsync (and fnStack) are not read by any parse
	// function; allowIn is only initialized to true. The for-in "in"
	// ambiguity is handled inside parseForStmt, and "yield" is parsed the
	// same way in every context.
	allowIn    bool
	inGenerator bool
	inAsync     bool

	// Ambiguous grammar (arrow-function heads, TS paren-vs-fn-type) is
	// resolved via bounded lookahead with checkpoint/rewind rather than
	// deferred-error/rewrite once a later token disambiguates.
}

type fnCtx struct {
	isAsync     bool
	isGenerator bool
}

// Parse parses a full source file into a Program. On unrecoverable lexer or
// parser errors it recovers the lexer Panic, leaves whatever statements were
// already accumulated, and returns along with the logged diagnostic - partial
// results still let the semantic pass and linter run on the portion that did
// parse, at statement-list granularity.
func Parse(log logger.Log, source logger.Source, options Options) (program js_ast.Program, ok bool) {
	p := &parser{log: log, source: source, options: options, allowIn: true}
	p.lex = js_lexer.NewLexer(log, source)

	ok = true
	defer func() {
		if r := recover(); r != nil {
			if _, isLexerPanic := r.(js_lexer.Panic); isLexerPanic {
				ok = false
				return
			}
			panic(r)
		}
	}()

	p.lastEnd = p.lex.Start()
	if p.lex.Token == js_lexer.THashbang {
		p.next()
	}

	program.SourceType = options.SourceType
	for p.lex.Token != js_lexer.TEndOfFile {
		stmt := p.parseStmt()
		program.Stmts = append(program.Stmts, stmt)
		if _, ok := stmt.Data.(*js_ast.SLocal); ok {
			if isTopLevelLexical(stmt) {
				program.HasLexicalDeclarationInTopLevel = true
			}
		}
	}
	program.Comments = p.lex.Comments
	program.Pragma = p.lex.Pragma
	return program, ok
}

func isTopLevelLexical(stmt js_ast.Stmt) bool {
	local, ok := stmt.Data.(*js_ast.SLocal)
	return ok && local.Kind != js_ast.LocalVar
}

func (p *parser) loc() logger.Loc { return p.lex.Loc() }

// spanFrom closes a span that began at startPos (a byte offset captured
// with p.lex.Start() before parsing a construct) at the end of the most
// recently consumed token.
func (p *parser) spanFrom(startPos uint32) ast.Span {
	return ast.Span{Start: startPos, End: p.lastEnd}
}

func (p *parser) unexpected() {
	p.log.AddError(&p.source, p.loc(), fmt.Sprintf("Unexpected token %q", p.lex.Raw()))
	panic(js_lexer.Panic{})
}

// next advances the lexer and records where the consumed token ended, so a
// later spanFrom can close a span without the lexer exposing "the end of
// the previous token" itself.
func (p *parser) next() {
	p.lastEnd = p.lex.End()
	p.lex.Next()
}

func (p *parser) expect(kind js_lexer.T) {
	if p.lex.Token != kind {
		p.unexpected()
	}
	p.next()
}

func (p *parser) at(kind js_lexer.T) bool { return p.lex.Token == kind }

func (p *parser) eat(kind js_lexer.T) bool {
	if p.lex.Token == kind {
		p.next()
		return true
	}
	return false
}

var _ = strings.TrimSpace
