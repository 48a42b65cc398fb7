// Package js_lexer implements a byte-level scanner over source text that
// produces one token at a time with O(1) amortized cost per token: after
// each scan the cursor sits at the first byte not satisfying the run
// predicate for the current token. It is a streaming lexer rather than a
// materialized token vector: the parser advances it one token at a time and
// checkpoints/rewinds its full state for backtracking, giving O(1) lookahead
// and cheap rewind without a separate tokenization pass.
package js_lexer

import "github.com/oxc-go/oxc/internal/ast"

// T is a token kind. Reserved words must also be added to Keywords below.
type T uint8

const (
	TEndOfFile T = iota
	TSyntaxError // lexer recovered from malformed input

	THashbang // "#!/usr/bin/env node"

	// Literals
	TNoSubstitutionTemplateLiteral
	TNumericLiteral
	TStringLiteral
	TBigIntegerLiteral
	TRegExpLiteral

	// Pseudo-literals (template parts)
	TTemplateHead
	TTemplateMiddle
	TTemplateTail

	// JSX
	TJSXText
	TJSXIdentifier

	// Punctuation
	TAmpersand
	TAmpersandAmpersand
	TAsterisk
	TAsteriskAsterisk
	TAt
	TBar
	TBarBar
	TCaret
	TCloseBrace
	TCloseBracket
	TCloseParen
	TColon
	TComma
	TDot
	TDotDotDot
	TEqualsEquals
	TEqualsEqualsEquals
	TEqualsGreaterThan
	TExclamation
	TExclamationEquals
	TExclamationEqualsEquals
	TGreaterThan
	TGreaterThanEquals
	TGreaterThanGreaterThan
	TGreaterThanGreaterThanGreaterThan
	TLessThan
	TLessThanEquals
	TLessThanLessThan
	TLessThanSlash // "</" inside a JSX element child position
	TMinus
	TMinusMinus
	TOpenBrace
	TOpenBracket
	TOpenParen
	TPercent
	TPlus
	TPlusPlus
	TQuestion
	TQuestionDot
	TQuestionQuestion
	TSemicolon
	TSlash
	TTilde

	// Assignments
	TAmpersandAmpersandEquals
	TAmpersandEquals
	TAsteriskAsteriskEquals
	TAsteriskEquals
	TBarBarEquals
	TBarEquals
	TCaretEquals
	TEquals
	TGreaterThanGreaterThanEquals
	TGreaterThanGreaterThanGreaterThanEquals
	TLessThanLessThanEquals
	TMinusEquals
	TPercentEquals
	TPlusEquals
	TQuestionQuestionEquals
	TSlashEquals

	TPrivateIdentifier

	TIdentifier
	TEscapedKeyword // a keyword spelled with a unicode escape

	// Reserved words
	TBreak
	TCase
	TCatch
	TClass
	TConst
	TContinue
	TDebugger
	TDefault
	TDelete
	TDo
	TElse
	TEnum
	TExport
	TExtends
	TFalse
	TFinally
	TFor
	TFunction
	TIf
	TImport
	TIn
	TInstanceof
	TNew
	TNull
	TReturn
	TSuper
	TSwitch
	TThis
	TThrow
	TTrue
	TTry
	TTypeof
	TVar
	TVoid
	TWhile
	TWith
)

var Keywords = map[string]T{
	"break": TBreak, "case": TCase, "catch": TCatch, "class": TClass,
	"const": TConst, "continue": TContinue, "debugger": TDebugger,
	"default": TDefault, "delete": TDelete, "do": TDo, "else": TElse,
	"enum": TEnum, "export": TExport, "extends": TExtends, "false": TFalse,
	"finally": TFinally, "for": TFor, "function": TFunction, "if": TIf,
	"import": TImport, "in": TIn, "instanceof": TInstanceof, "new": TNew,
	"null": TNull, "return": TReturn, "super": TSuper, "switch": TSwitch,
	"this": TThis, "throw": TThrow, "true": TTrue, "try": TTry,
	"typeof": TTypeof, "var": TVar, "void": TVoid, "while": TWhile,
	"with": TWith,
}

// StrictModeReservedWords additionally can't be used as binding names once a
// scope is strict (including every TS/module file, which is always strict).
var StrictModeReservedWords = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

// ContextualKeywords are identifiers with special meaning in specific
// positions only ("async", "as", "from", "of", "get", "set", "type",
// "satisfies", "accessor", "using", "infer", "keyof", "readonly", "is",
// "asserts", "unique", "abstract", "declare", "module", "namespace",
// "override", "out", "global", "undefined"); the lexer always emits TIdentifier for
// these and the parser decides from position.
var ContextualKeywords = map[string]bool{
	"async": true, "as": true, "from": true, "of": true, "get": true,
	"set": true, "type": true, "satisfies": true, "accessor": true,
	"using": true, "infer": true, "keyof": true, "readonly": true,
	"is": true, "asserts": true, "unique": true, "abstract": true,
	"declare": true, "module": true, "namespace": true, "override": true,
	"out": true, "global": true, "undefined": true,
}

// TFlags carries per-token bits too narrow to deserve a dedicated field:
// whether the token contained a "\u" escape, whether a numeric literal had
// a legacy octal form or an invalid separator in one, and whether the token
// triggered syntax-error recovery.
type TFlags uint8

const (
	FlagHasEscape TFlags = 1 << iota
	FlagOctalLegacy
	FlagOctalNumericSeparatorInvalid
	FlagDidPanic // set on TSyntaxError tokens that triggered recovery
)

// Token is the unit the lexer produces: a byte-offset span, a kind, and
// flags. The decoded payload (identifier text, string value, number) lives
// on the Lexer itself for the token currently "at rest" - Next() leaves
// decoded fields (Identifier, which also holds a string literal's decoded
// value, and Number) set as a side effect
// instead of boxing them into every Token value.
type Token struct {
	Span  ast.Span
	Kind  T
	Flags TFlags
}

func (t Token) HasEscape() bool { return t.Flags&FlagHasEscape != 0 }
