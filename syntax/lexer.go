package syntax

import (
	"strconv"
)

// Lexer is an iterator over source text that returns tokens one at a time,
// Scanner-driven with the same error-sentinel convention a hand-rolled
// recursive-descent lexer typically uses. Ordinary code has a single
// lexing mode, plus a context flag the token source toggles to
// disambiguate `/` as division vs. the start of a regular expression
// literal. A second mode, entered between a template literal's
// delimiters, reads literal text instead of code; the token source drives
// the switch.
type Lexer struct {
	s            *Scanner
	regexOK      bool
	templateMode bool
	newline      bool
	err          *Diagnostic
}

// NewLexer creates a lexer over text. regexOK starts true, since the
// beginning of a program is a valid regex position.
func NewLexer(text string) *Lexer {
	return &Lexer{s: NewScanner(text), regexOK: true}
}

// Cursor returns the current byte position.
func (l *Lexer) Cursor() int {
	return l.s.Cursor()
}

// Jump sets the cursor to index, used when the parser rewinds to a
// checkpoint (spec §4.3, "Bounded backtracking").
func (l *Lexer) Jump(index int) {
	l.s.Jump(index)
}

// Newline reports whether the most recently lexed trivia contained a line
// terminator — the single signal ASI needs (spec §4.4).
func (l *Lexer) Newline() bool {
	return l.newline
}

// SetRegexAllowed tells the lexer whether a `/` at the current position
// should be lexed as the start of a regex literal (true) or as the
// division/divide-assign operator (false). The token source derives this
// from the kind of the previously significant token.
func (l *Lexer) SetRegexAllowed(ok bool) {
	l.regexOK = ok
}

// SetTemplateMode tells the lexer whether the current position is inside a
// template literal's text (true) or ordinary code (false). The token
// source sets this after an opening backtick and again after every `}`
// that closes a substitution, and clears it once the matching delimiter
// (closing backtick or `${`) is read back.
func (l *Lexer) SetTemplateMode(ok bool) {
	l.templateMode = ok
}

func (l *Lexer) error(message string) Kind {
	l.err = NewDiagnostic(Span{}, message)
	return ErrorToken
}

func (l *Lexer) hint(message string) {
	if l.err != nil {
		l.err.AddHint(message)
	}
}

// Next lexes and returns the next token. At end of input it returns
// (EOF, a zero-width leaf).
func (l *Lexer) Next() (Kind, *Node) {
	l.err = nil
	start := l.s.Cursor()
	l.newline = false

	var kind Kind
	if l.templateMode {
		kind = l.templateSegment()
		return l.finish(start, kind)
	}

	c := l.s.Eat()

	switch {
	case c == 0:
		kind = EOF
	case c == '#' && start == 0 && l.s.EatIf('!'):
		kind = l.shebang()
	case IsWhitespace(c) || IsLineTerminator(c):
		kind = l.whitespace(c)
	case c == '/' && l.s.EatIf('/'):
		kind = l.lineComment()
	case c == '/' && l.s.EatIf('*'):
		kind = l.blockComment()
	case c == '/' && l.regexOK:
		kind = l.regex()
	case c == '"' || c == '\'':
		kind = l.str(c)
	case c >= '0' && c <= '9':
		kind = l.number(c)
	case c == '.' && l.s.AtRune(isDigit):
		kind = l.number(c)
	case IsIdentStart(c):
		kind = l.identOrKeyword(start)
	default:
		kind = l.punctuation(c)
	}

	return l.finish(start, kind)
}

func (l *Lexer) finish(start int, kind Kind) (Kind, *Node) {
	text := l.s.From(start)
	if l.err != nil {
		node := ErrorNode(l.err, text)
		l.err = nil
		return ErrorToken, node
	}
	return kind, Leaf(kind, text)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (l *Lexer) whitespace(c rune) Kind {
	newlines := 0
	if IsLineTerminator(c) {
		newlines++
	}
	l.s.EatWhile(func(r rune) bool {
		if IsLineTerminator(r) {
			newlines++
			return true
		}
		return IsWhitespace(r)
	})
	l.newline = newlines > 0
	return Whitespace
}

func (l *Lexer) shebang() Kind {
	l.s.EatUntil(IsLineTerminator)
	return Shebang
}

func (l *Lexer) lineComment() Kind {
	l.s.EatUntil(IsLineTerminator)
	return LineComment
}

func (l *Lexer) blockComment() Kind {
	depth := 1
	for {
		if l.s.Done() {
			return BlockComment
		}
		if l.s.EatIf('*') {
			if l.s.EatIf('/') {
				depth--
				if depth == 0 {
					return BlockComment
				}
				continue
			}
		} else if l.s.Peek() == '/' {
			save := l.s.Cursor()
			l.s.Eat()
			if l.s.EatIf('*') {
				depth++
				continue
			}
			l.s.Jump(save)
		}
		if IsLineTerminator(l.s.Peek()) {
			l.newline = true
		}
		l.s.Eat()
	}
}

func (l *Lexer) str(quote rune) Kind {
	for {
		c := l.s.Eat()
		switch {
		case c == 0:
			return l.error("unterminated string literal")
		case c == quote:
			return Str
		case c == '\\':
			if l.s.Done() {
				return l.error("unterminated string literal")
			}
			l.s.Eat()
		case IsLineTerminator(c):
			return l.error("unterminated string literal")
		}
	}
}

// templateSegment lexes one piece of a template literal's body: a run of
// literal text up to (not including) the next ` or ${, or — when that run
// is empty — the delimiter itself, consumed in full (the closing backtick,
// or the two characters of `${`). The token source puts the lexer in this
// mode right after an opening backtick and again after each `}` that
// closes a substitution (token_source.go's trackTemplate).
func (l *Lexer) templateSegment() Kind {
	start := l.s.Cursor()
	for {
		if l.s.Done() {
			if l.s.Cursor() == start {
				return EOF
			}
			return l.error("unterminated template literal")
		}
		if l.s.At("`") {
			if l.s.Cursor() == start {
				l.s.Eat()
				return Backtick
			}
			return TemplateChunk
		}
		if l.s.At("${") {
			if l.s.Cursor() == start {
				l.s.Eat()
				l.s.Eat()
				return TemplateDollar
			}
			return TemplateChunk
		}
		c := l.s.Eat()
		if c == '\\' {
			if l.s.Done() {
				return l.error("unterminated template literal")
			}
			l.s.Eat()
		}
	}
}

func (l *Lexer) number(first rune) Kind {
	if first == '0' && (l.s.EatIf('x') || l.s.EatIf('X')) {
		l.s.EatWhile(isHexDigit)
		return Number
	}
	if first == '0' && (l.s.EatIf('b') || l.s.EatIf('B')) {
		l.s.EatWhile(func(r rune) bool { return r == '0' || r == '1' })
		return Number
	}
	if first == '0' && (l.s.EatIf('o') || l.s.EatIf('O')) {
		l.s.EatWhile(func(r rune) bool { return r >= '0' && r <= '7' })
		return Number
	}
	l.s.EatWhile(isDigit)
	if first != '.' && l.s.EatIf('.') {
		l.s.EatWhile(isDigit)
	}
	if l.s.EatIf('e') || l.s.EatIf('E') {
		if !l.s.EatIf('+') {
			l.s.EatIf('-')
		}
		if !l.s.AtRune(isDigit) {
			return l.error("invalid exponent in numeric literal")
		}
		l.s.EatWhile(isDigit)
	}
	l.s.EatIf('n') // BigInt suffix
	return Number
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) identOrKeyword(start int) Kind {
	l.s.EatWhile(IsIdentContinue)
	text := l.s.From(start)
	if k, ok := KeywordKind(text); ok {
		return k
	}
	return Ident
}

func (l *Lexer) regex() Kind {
	inClass := false
	for {
		c := l.s.Eat()
		switch {
		case c == 0 || IsLineTerminator(c):
			return l.error("unterminated regular expression literal")
		case c == '\\':
			if l.s.Done() {
				return l.error("unterminated regular expression literal")
			}
			l.s.Eat()
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.s.EatWhile(IsIdentContinue) // flags
			return Regex
		}
	}
}

func (l *Lexer) punctuation(c rune) Kind {
	switch c {
	case '`':
		return Backtick
	case ';':
		return Semicolon
	case ',':
		return Comma
	case '(':
		return LParen
	case ')':
		return RParen
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LBrack
	case ']':
		return RBrack
	case '~':
		return Tilde
	case ':':
		return Colon
	case '?':
		if l.s.EatIf('?') {
			if l.s.EatIf('=') {
				return Question2Eq
			}
			return Question2
		}
		if l.s.EatIf('.') {
			return QuestionDot
		}
		return Question
	case '.':
		if l.s.EatIfStr("..") {
			return Dot3
		}
		return Dot
	case '&':
		if l.s.EatIf('&') {
			if l.s.EatIf('=') {
				return Amp2Eq
			}
			return Amp2
		}
		if l.s.EatIf('=') {
			return AmpEq
		}
		return Amp
	case '|':
		if l.s.EatIf('|') {
			if l.s.EatIf('=') {
				return Pipe2Eq
			}
			return Pipe2
		}
		if l.s.EatIf('=') {
			return PipeEq
		}
		return Pipe
	case '+':
		if l.s.EatIf('+') {
			return Plus2
		}
		if l.s.EatIf('=') {
			return PlusEq
		}
		return Plus
	case '-':
		if l.s.EatIf('-') {
			return Minus2
		}
		if l.s.EatIf('=') {
			return MinusEq
		}
		return Minus
	case '*':
		if l.s.EatIf('*') {
			if l.s.EatIf('=') {
				return Star2Eq
			}
			return Star2
		}
		if l.s.EatIf('=') {
			return StarEq
		}
		return Star
	case '/':
		if l.s.EatIf('=') {
			return SlashEq
		}
		return Slash
	case '^':
		if l.s.EatIf('=') {
			return CaretEq
		}
		return Caret
	case '%':
		if l.s.EatIf('=') {
			return PercentEq
		}
		return Percent
	case '=':
		if l.s.EatIf('=') {
			if l.s.EatIf('=') {
				return Eq3
			}
			return Eq2
		}
		if l.s.EatIf('>') {
			return FatArrow
		}
		return Eq
	case '!':
		if l.s.EatIf('=') {
			if l.s.EatIf('=') {
				return Neq2
			}
			return Neq
		}
		return Bang
	case '<':
		if l.s.EatIf('<') {
			if l.s.EatIf('=') {
				return ShlEq
			}
			return Shl
		}
		if l.s.EatIf('=') {
			return LtEq
		}
		return LAngle
	case '>':
		if l.s.EatIf('>') {
			if l.s.EatIf('>') {
				if l.s.EatIf('=') {
					return UShrEq
				}
				return UShr
			}
			if l.s.EatIf('=') {
				return ShrEq
			}
			return Shr
		}
		if l.s.EatIf('=') {
			return GtEq
		}
		return RAngle
	}
	return l.error("unexpected character " + strconv.QuoteRune(c))
}
