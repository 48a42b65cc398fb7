package js_lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
)

// Panic is thrown on unrecoverable syntax errors, after the diagnostic has
// been logged, and recovered by the parser's top-level entry point
// (js_parser.Parse), which returns the statements parsed so far with
// ok=false rather than aborting the process.
type Panic struct{}

// Lexer scans one token at a time on demand; it holds no token vector.
// The parser drives it by repeatedly calling Next and reading back the
// fields below - Token/Raw/Identifier/Number are exposed as lexer state
// rather than bundled into a Token value, because the parser needs cheap
// access to the decoded payload of "the token at rest" far more often than
// it needs to carry tokens around as values.
type Lexer struct {
	log    logger.Log
	source logger.Source

	current int
	start   int
	end     int

	codePoint rune

	Token             T
	Flags             TFlags
	HasNewlineBefore  bool
	ApproximateNewlineCount int

	Identifier    string
	StringValue   []uint16
	Number        float64

	// templateRaw holds the verbatim (escapes not decoded) source text of
	// the template literal part currently at rest, read back through
	// RawTemplateContents alongside the cooked form in Identifier.
	templateRaw string

	Comments []js_ast.Comment
	Pragma   js_ast.Pragma

	// IsLogDisabled is set during speculative scans (arrow-function head
	// disambiguation, TS type-vs-expression backtracking) so that errors
	// encountered on a path the parser later abandons are never reported.
	IsLogDisabled bool
}

func NewLexer(log logger.Log, source logger.Source) Lexer {
	lexer := Lexer{log: log, source: source}
	lexer.step()
	lexer.Next()
	return lexer
}

// Checkpoint is the full rewindable state of a Lexer, used by the parser to
// back out of a speculative parse (arrow parameter lists, TS angle-bracket
// ambiguity, JSX-vs-relational "<") in O(1).
type Checkpoint struct {
	current, start, end int
	codePoint            rune
	token                T
	flags                TFlags
	hasNewlineBefore      bool
	identifier            string
	number                float64
	commentCount          int
}

func (lexer *Lexer) Save() Checkpoint {
	return Checkpoint{
		current: lexer.current, start: lexer.start, end: lexer.end,
		codePoint: lexer.codePoint, token: lexer.Token, flags: lexer.Flags,
		hasNewlineBefore: lexer.HasNewlineBefore, identifier: lexer.Identifier,
		number: lexer.Number, commentCount: len(lexer.Comments),
	}
}

func (lexer *Lexer) Restore(c Checkpoint) {
	lexer.current, lexer.start, lexer.end = c.current, c.start, c.end
	lexer.codePoint = c.codePoint
	lexer.Token = c.token
	lexer.Flags = c.flags
	lexer.HasNewlineBefore = c.hasNewlineBefore
	lexer.Identifier = c.identifier
	lexer.Number = c.number
	lexer.Comments = lexer.Comments[:c.commentCount]
}

func (lexer *Lexer) Loc() logger.Loc   { return logger.Loc{Start: int32(lexer.start)} }
func (lexer *Lexer) Span() ast.Span    { return ast.Span{Start: uint32(lexer.start), End: uint32(lexer.end)} }
func (lexer *Lexer) Raw() string       { return lexer.source.Contents[lexer.start:lexer.end] }
func (lexer *Lexer) Start() uint32     { return uint32(lexer.start) }
func (lexer *Lexer) End() uint32       { return uint32(lexer.end) }

func (lexer *Lexer) IsIdentifierOrKeyword() bool { return lexer.Token >= TIdentifier }

func (lexer *Lexer) IsContextualKeyword(text string) bool {
	return lexer.Token == TIdentifier && lexer.Raw() == text
}

func (lexer *Lexer) step() {
	codePoint, width := utf8.DecodeRuneInString(lexer.source.Contents[lexer.current:])
	if width == 0 {
		codePoint = -1
	}
	if codePoint == '\n' {
		lexer.ApproximateNewlineCount++
	}
	lexer.codePoint = codePoint
	lexer.end = lexer.current
	lexer.current += width
}

func (lexer *Lexer) addError(loc logger.Loc, text string) {
	if !lexer.IsLogDisabled {
		lexer.log.AddError(&lexer.source, loc, text)
	}
}

func (lexer *Lexer) SyntaxError() {
	loc := logger.Loc{Start: int32(lexer.end)}
	msg := "Unexpected end of file"
	if lexer.end < len(lexer.source.Contents) {
		c, _ := utf8.DecodeRuneInString(lexer.source.Contents[lexer.end:])
		msg = "Syntax error near '" + string(c) + "'"
	}
	lexer.addError(loc, msg)
	panic(Panic{})
}

func (lexer *Lexer) Expected(kind T) {
	lexer.addError(lexer.Loc(), "Unexpected token "+lexer.Raw())
	panic(Panic{})
}

func (lexer *Lexer) Expect(kind T) {
	if lexer.Token != kind {
		lexer.Expected(kind)
	}
	lexer.Next()
}

func isIdentifierStart(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c)
}

func isIdentifierContinue(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c) || unicode.IsDigit(c) || c == '‌' || c == '‍'
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// Next scans and installs the next token via a switch-on-codePoint dispatch
// table. Numeric literal parsing, regex scanning, and string/template
// decoding are each broken into their own helper to keep this dispatcher
// readable.
func (lexer *Lexer) Next() {
	lexer.HasNewlineBefore = lexer.end == 0
	lexer.Flags = 0

	for {
		lexer.start = lexer.end
		lexer.Token = TEndOfFile

		switch lexer.codePoint {
		case -1:
			lexer.Token = TEndOfFile

		case '\r', '\n', ' ', ' ':
			lexer.step()
			lexer.HasNewlineBefore = true
			continue

		case '\t', ' ', '\v', '\f':
			lexer.step()
			continue

		case '#':
			if lexer.start == 0 && strings.HasPrefix(lexer.source.Contents, "#!") {
				for lexer.codePoint != -1 && lexer.codePoint != '\n' && lexer.codePoint != '\r' {
					lexer.step()
				}
				lexer.Token = THashbang
			} else {
				lexer.step()
				lexer.scanIdentifier()
				lexer.Token = TPrivateIdentifier
			}

		case '(':
			lexer.step()
			lexer.Token = TOpenParen
		case ')':
			lexer.step()
			lexer.Token = TCloseParen
		case '[':
			lexer.step()
			lexer.Token = TOpenBracket
		case ']':
			lexer.step()
			lexer.Token = TCloseBracket
		case '{':
			lexer.step()
			lexer.Token = TOpenBrace
		case '}':
			lexer.step()
			lexer.Token = TCloseBrace
		case ',':
			lexer.step()
			lexer.Token = TComma
		case ':':
			lexer.step()
			lexer.Token = TColon
		case ';':
			lexer.step()
			lexer.Token = TSemicolon
		case '@':
			lexer.step()
			lexer.Token = TAt
		case '~':
			lexer.step()
			lexer.Token = TTilde

		case '.':
			lexer.step()
			if isDigit(lexer.codePoint) {
				lexer.scanNumber('.')
			} else if lexer.codePoint == '.' {
				lexer.step()
				if lexer.codePoint == '.' {
					lexer.step()
					lexer.Token = TDotDotDot
				} else {
					lexer.SyntaxError()
				}
			} else {
				lexer.Token = TDot
			}

		case '?':
			lexer.step()
			switch lexer.codePoint {
			case '?':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TQuestionQuestionEquals
				} else {
					lexer.Token = TQuestionQuestion
				}
			case '.':
				// "?." is ambiguous with "?.5" (a ternary with a numeric
				// consequent); only treat it as optional-chaining if the
				// following char isn't a digit.
				if c, _ := utf8.DecodeRuneInString(lexer.source.Contents[lexer.current:]); isDigit(c) {
					lexer.Token = TQuestion
				} else {
					lexer.step()
					lexer.Token = TQuestionDot
				}
			default:
				lexer.Token = TQuestion
			}

		case '%':
			lexer.step()
			if lexer.codePoint == '=' {
				lexer.step()
				lexer.Token = TPercentEquals
			} else {
				lexer.Token = TPercent
			}

		case '&':
			lexer.step()
			switch lexer.codePoint {
			case '&':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TAmpersandAmpersandEquals
				} else {
					lexer.Token = TAmpersandAmpersand
				}
			case '=':
				lexer.step()
				lexer.Token = TAmpersandEquals
			default:
				lexer.Token = TAmpersand
			}

		case '|':
			lexer.step()
			switch lexer.codePoint {
			case '|':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TBarBarEquals
				} else {
					lexer.Token = TBarBar
				}
			case '=':
				lexer.step()
				lexer.Token = TBarEquals
			default:
				lexer.Token = TBar
			}

		case '^':
			lexer.step()
			if lexer.codePoint == '=' {
				lexer.step()
				lexer.Token = TCaretEquals
			} else {
				lexer.Token = TCaret
			}

		case '+':
			lexer.step()
			switch lexer.codePoint {
			case '+':
				lexer.step()
				lexer.Token = TPlusPlus
			case '=':
				lexer.step()
				lexer.Token = TPlusEquals
			default:
				lexer.Token = TPlus
			}

		case '-':
			lexer.step()
			switch lexer.codePoint {
			case '-':
				lexer.step()
				lexer.Token = TMinusMinus
			case '=':
				lexer.step()
				lexer.Token = TMinusEquals
			default:
				lexer.Token = TMinus
			}

		case '*':
			lexer.step()
			switch lexer.codePoint {
			case '*':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TAsteriskAsteriskEquals
				} else {
					lexer.Token = TAsteriskAsterisk
				}
			case '=':
				lexer.step()
				lexer.Token = TAsteriskEquals
			default:
				lexer.Token = TAsterisk
			}

		case '=':
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TEqualsEqualsEquals
				} else {
					lexer.Token = TEqualsEquals
				}
			case '>':
				lexer.step()
				lexer.Token = TEqualsGreaterThan
			default:
				lexer.Token = TEquals
			}

		case '!':
			lexer.step()
			if lexer.codePoint == '=' {
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TExclamationEqualsEquals
				} else {
					lexer.Token = TExclamationEquals
				}
			} else {
				lexer.Token = TExclamation
			}

		case '<':
			lexer.step()
			switch lexer.codePoint {
			case '<':
				lexer.step()
				if lexer.codePoint == '=' {
					lexer.step()
					lexer.Token = TLessThanLessThanEquals
				} else {
					lexer.Token = TLessThanLessThan
				}
			case '=':
				lexer.step()
				lexer.Token = TLessThanEquals
			case '/':
				lexer.step()
				lexer.Token = TLessThanSlash
			default:
				lexer.Token = TLessThan
			}

		case '>':
			lexer.step()
			switch lexer.codePoint {
			case '>':
				lexer.step()
				switch lexer.codePoint {
				case '>':
					lexer.step()
					if lexer.codePoint == '=' {
						lexer.step()
						lexer.Token = TGreaterThanGreaterThanGreaterThanEquals
					} else {
						lexer.Token = TGreaterThanGreaterThanGreaterThan
					}
				case '=':
					lexer.step()
					lexer.Token = TGreaterThanGreaterThanEquals
				default:
					lexer.Token = TGreaterThanGreaterThan
				}
			case '=':
				lexer.step()
				lexer.Token = TGreaterThanEquals
			default:
				lexer.Token = TGreaterThan
			}

		case '/':
			lexer.step()
			switch lexer.codePoint {
			case '/':
				lexer.scanLineComment()
				continue
			case '*':
				lexer.scanBlockComment()
				continue
			case '=':
				lexer.step()
				lexer.Token = TSlashEquals
			default:
				// Whether "/" starts a regex or is a division operator is
				// ambiguous without parser context; the parser calls
				// RescanCloseBraceAsRegExp or NextRegExp when it knows a
				// regex is expected here.
				lexer.Token = TSlash
			}

		case '\'', '"':
			lexer.scanString(lexer.codePoint)

		case '`':
			lexer.step()
			lexer.scanTemplatePart(true)

		case '0':
			lexer.step()
			switch lexer.codePoint {
			case 'x', 'X':
				lexer.step()
				lexer.scanRadixNumber(16)
			case 'o', 'O':
				lexer.step()
				lexer.scanRadixNumber(8)
			case 'b', 'B':
				lexer.step()
				lexer.scanRadixNumber(2)
			default:
				lexer.scanNumber('0')
			}

		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			lexer.scanNumber(0)

		default:
			if isIdentifierStart(lexer.codePoint) {
				lexer.scanIdentifier()
				if keyword, ok := Keywords[lexer.Identifier]; ok {
					lexer.Token = keyword
				} else {
					lexer.Token = TIdentifier
				}
			} else {
				lexer.SyntaxError()
			}
		}

		break
	}
}

func (lexer *Lexer) scanIdentifier() {
	for isIdentifierContinue(lexer.codePoint) {
		lexer.step()
	}
	lexer.Identifier = lexer.Raw()
}

func (lexer *Lexer) scanLineComment() {
	start := lexer.start
	for lexer.codePoint != -1 && lexer.codePoint != '\n' && lexer.codePoint != '\r' && lexer.codePoint != ' ' && lexer.codePoint != ' ' {
		lexer.step()
	}
	text := lexer.source.Contents[start:lexer.end]
	lexer.Comments = append(lexer.Comments, js_ast.Comment{
		Text: text, Span: ast.Span{Start: uint32(start), End: uint32(lexer.end)}, IsMultiLine: false,
	})
	lexer.scanPragma(text)
}

func (lexer *Lexer) scanBlockComment() {
	start := lexer.start
	lexer.step() // consume '*'
	for {
		switch lexer.codePoint {
		case -1:
			lexer.addError(lexer.Loc(), "Unterminated block comment")
			panic(Panic{})
		case '*':
			lexer.step()
			if lexer.codePoint == '/' {
				lexer.step()
				text := lexer.source.Contents[start:lexer.end]
				lexer.Comments = append(lexer.Comments, js_ast.Comment{
					Text: text, Span: ast.Span{Start: uint32(start), End: uint32(lexer.end)}, IsMultiLine: true,
				})
				lexer.scanPragma(text)
				return
			}
		default:
			lexer.step()
		}
	}
}

// scanPragma extracts "@jsx", "@jsxFrag", "@jsxRuntime" and
// "@jsxImportSource" directives from any comment, the same way a bundler
// looks for "webpack"-style magic comments anywhere rather than only in a
// fixed leading comment.
func (lexer *Lexer) scanPragma(text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "/*"))
		switch {
		case strings.HasPrefix(line, "@jsxFrag "):
			lexer.Pragma.JSXFragment = strings.TrimSpace(strings.TrimPrefix(line, "@jsxFrag "))
		case strings.HasPrefix(line, "@jsxRuntime "):
			lexer.Pragma.JSXRuntime = strings.TrimSpace(strings.TrimPrefix(line, "@jsxRuntime "))
		case strings.HasPrefix(line, "@jsxImportSource "):
			lexer.Pragma.JSXImportSource = strings.TrimSpace(strings.TrimPrefix(line, "@jsxImportSource "))
		case strings.HasPrefix(line, "@jsx "):
			lexer.Pragma.JSXFactory = strings.TrimSpace(strings.TrimPrefix(line, "@jsx "))
		}
	}
}

func (lexer *Lexer) scanString(quote rune) {
	lexer.step()
	var sb strings.Builder
	for {
		switch lexer.codePoint {
		case quote:
			lexer.step()
			lexer.Identifier = sb.String()
			lexer.Token = TStringLiteral
			return
		case -1, '\r', '\n':
			lexer.SyntaxError()
		case '\\':
			lexer.step()
			lexer.scanEscape(&sb)
		default:
			sb.WriteRune(lexer.codePoint)
			lexer.step()
		}
	}
}

func (lexer *Lexer) scanEscape(sb *strings.Builder) {
	switch lexer.codePoint {
	case 'n':
		sb.WriteByte('\n')
		lexer.step()
	case 't':
		sb.WriteByte('\t')
		lexer.step()
	case 'r':
		sb.WriteByte('\r')
		lexer.step()
	case 'b':
		sb.WriteByte('\b')
		lexer.step()
	case 'f':
		sb.WriteByte('\f')
		lexer.step()
	case 'v':
		sb.WriteByte('\v')
		lexer.step()
	case '0':
		sb.WriteByte(0)
		lexer.step()
	case '\r':
		lexer.step()
		if lexer.codePoint == '\n' {
			lexer.step()
		}
	case '\n', ' ', ' ':
		lexer.step()
	case 'x':
		lexer.step()
		value := lexer.scanHexDigits(2)
		sb.WriteRune(rune(value))
	case 'u':
		lexer.step()
		var value uint32
		if lexer.codePoint == '{' {
			lexer.step()
			for lexer.codePoint != '}' {
				value = value*16 + uint32(hexValue(lexer.codePoint))
				lexer.step()
			}
			lexer.step()
		} else {
			value = lexer.scanHexDigits(4)
		}
		sb.WriteRune(rune(value))
		lexer.Flags |= FlagHasEscape
	default:
		sb.WriteRune(lexer.codePoint)
		lexer.step()
	}
}

func (lexer *Lexer) scanHexDigits(count int) uint32 {
	var value uint32
	for i := 0; i < count; i++ {
		value = value*16 + uint32(hexValue(lexer.codePoint))
		lexer.step()
	}
	return value
}

func hexValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// scanTemplatePart scans from just after a "`" or "}" up to the next "`" or
// "${", producing TNoSubstitutionTemplateLiteral/TTemplateHead or
// TTemplateMiddle/TTemplateTail. isFirst distinguishes the two cases
// because only the former can open with a backtick. The cooked (escapes
// decoded) content is left in lexer.Identifier and the verbatim source text
// in lexer.templateRaw, both read back via RawTemplateContents.
func (lexer *Lexer) scanTemplatePart(isFirst bool) {
	rawStart := lexer.end
	var sb strings.Builder
	for {
		switch lexer.codePoint {
		case -1:
			lexer.SyntaxError()
		case '`':
			lexer.templateRaw = lexer.source.Contents[rawStart:lexer.end]
			lexer.step()
			if isFirst {
				lexer.Token = TNoSubstitutionTemplateLiteral
			} else {
				lexer.Token = TTemplateTail
			}
			lexer.Identifier = sb.String()
			return
		case '$':
			lexer.step()
			if lexer.codePoint == '{' {
				lexer.templateRaw = lexer.source.Contents[rawStart : lexer.end-1]
				lexer.step()
				if isFirst {
					lexer.Token = TTemplateHead
				} else {
					lexer.Token = TTemplateMiddle
				}
				lexer.Identifier = sb.String()
				return
			}
			sb.WriteByte('$')
		case '\\':
			lexer.step()
			lexer.scanEscape(&sb)
		case '\r':
			sb.WriteByte('\n')
			lexer.step()
			if lexer.codePoint == '\n' {
				lexer.step()
			}
		default:
			sb.WriteRune(lexer.codePoint)
			lexer.step()
		}
	}
}

// RawTemplateContents returns the cooked (escape-decoded) and verbatim
// source text of the template literal part the lexer is currently
// positioned at, whether a TNoSubstitutionTemplateLiteral, TTemplateHead,
// TTemplateMiddle, or TTemplateTail.
func (lexer *Lexer) RawTemplateContents() (cooked, raw string) {
	return lexer.Identifier, lexer.templateRaw
}

// RescanCloseBraceAsTemplateToken is called by the parser after parsing a
// template substitution expression to re-lex the following "}" as the
// continuation of the template literal rather than a standalone brace.
func (lexer *Lexer) RescanCloseBraceAsTemplateToken() {
	if lexer.Token != TCloseBrace {
		lexer.Expected(TCloseBrace)
	}
	lexer.scanTemplatePart(false)
}

// NextRegExp re-lexes starting from the current "/" token as a regular
// expression literal; the parser calls this only in positions where a
// regex is grammatically valid (never after an identifier/")"/"]").
func (lexer *Lexer) NextRegExp() {
	lexer.start = lexer.start // current position already sits on "/"
	inClass := false
	for {
		switch lexer.codePoint {
		case -1, '\r', '\n':
			lexer.SyntaxError()
		case '/':
			lexer.step()
			if !inClass {
				goto flags
			}
		case '[':
			inClass = true
			lexer.step()
		case ']':
			inClass = false
			lexer.step()
		case '\\':
			lexer.step()
			if lexer.codePoint != -1 {
				lexer.step()
			}
		default:
			lexer.step()
		}
	}
flags:
	for isIdentifierContinue(lexer.codePoint) {
		lexer.step()
	}
	lexer.Token = TRegExpLiteral
	lexer.Identifier = lexer.Raw()
}

func (lexer *Lexer) scanRadixNumber(radix int) {
	start := lexer.end
	for isRadixDigit(lexer.codePoint, radix) || lexer.codePoint == '_' {
		lexer.step()
	}
	text := strings.ReplaceAll(lexer.source.Contents[start:lexer.end], "_", "")
	if lexer.codePoint == 'n' {
		lexer.step()
		lexer.Token = TBigIntegerLiteral
		lexer.Identifier = text
		return
	}
	value, _ := strconv.ParseInt(text, radix, 64)
	lexer.Number = float64(value)
	lexer.Token = TNumericLiteral
}

func isRadixDigit(c rune, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}

// scanNumber scans a decimal literal. first is the character already
// consumed before the call ('0', '.', or 0 meaning a 1-9 digit is still
// under the cursor).
func (lexer *Lexer) scanNumber(first rune) {
	start := lexer.start
	if first == 0 {
		for isDigit(lexer.codePoint) || lexer.codePoint == '_' {
			lexer.step()
		}
	}
	if lexer.codePoint == '.' {
		lexer.step()
		for isDigit(lexer.codePoint) || lexer.codePoint == '_' {
			lexer.step()
		}
	}
	if lexer.codePoint == 'e' || lexer.codePoint == 'E' {
		lexer.step()
		if lexer.codePoint == '+' || lexer.codePoint == '-' {
			lexer.step()
		}
		for isDigit(lexer.codePoint) {
			lexer.step()
		}
	}
	text := strings.ReplaceAll(lexer.source.Contents[start:lexer.end], "_", "")
	if lexer.codePoint == 'n' {
		lexer.step()
		lexer.Token = TBigIntegerLiteral
		lexer.Identifier = text
		return
	}
	value, _ := strconv.ParseFloat(text, 64)
	lexer.Number = value
	lexer.Token = TNumericLiteral
}

// NextJSXText scans raw text content between JSX tags up to the next "<" or
// "{". JSX children are lexed in their own mode, distinct from ordinary
// tokenization, so callers must switch into it explicitly rather than
// calling Next().
func (lexer *Lexer) NextJSXText() {
	lexer.start = lexer.end
	for lexer.codePoint != -1 && lexer.codePoint != '<' && lexer.codePoint != '{' {
		lexer.step()
	}
	lexer.Token = TJSXText
	lexer.Identifier = lexer.Raw()
}

// NextInsideJSXElement re-lexes an identifier token as a JSX tag/attribute
// name, which additionally allows "-" as a continuation character
// ("data-foo", "aria-label").
func (lexer *Lexer) NextInsideJSXElement() {
	if isIdentifierStart(lexer.codePoint) {
		lexer.start = lexer.end
		for isIdentifierContinue(lexer.codePoint) || lexer.codePoint == '-' {
			lexer.step()
		}
		lexer.Identifier = lexer.Raw()
		lexer.Token = TJSXIdentifier
		return
	}
	lexer.Next()
}
