package syntax

// lookahead is the number of significant (non-trivia) tokens TokenSource
// buffers ahead of the cursor, satisfying spec §4.1's "nth look-ahead,
// window >= 3" requirement (needed to disambiguate e.g. arrow-function
// parameter lists from parenthesized expressions before committing).
const lookahead = 4

// sigToken is one significant token together with the trivia that
// immediately preceded it, so the builder can re-attach whitespace and
// comments to the token that follows them (spec §4.1, "trivia attached to
// next significant token").
type sigToken struct {
	kind    Kind
	node    *Node
	trivia  []*Node
	newline bool // a line terminator appeared in this token's leading trivia
	start   int  // byte offset of the first trivia byte (or of node if none)
	end     int  // byte offset just past node

	// lexerPosBefore/tokensLenBefore/templateStackBefore are this token's
	// state just before it was lexed, so a TokenSourceMark taken while this
	// token sits at the front of buf can restore the lexer, the accumulated
	// leaf list, and the template-nesting stack to exactly that point
	// (spec §4.3, "Bounded backtracking").
	lexerPosBefore      int
	tokensLenBefore     int
	templateStackBefore []templateFrame
}

// TokenSourceMark is an opaque rewind point returned by Mark. Only Restore
// may consume it.
type TokenSourceMark struct {
	lexerPos      int
	tokensLen     int
	templateStack []templateFrame
}

// TokenSource adapts a Lexer into the fixed-lookahead, trivia-aware stream
// the parser consumes. It is the only component that talks to Lexer
// directly; Parser only ever calls Current/Nth/Bump. The lookahead buffer
// (trivia counted and carried alongside the next real token) is sized to
// the wider window this grammar's arrow-function disambiguation needs.
type TokenSource struct {
	lexer         *Lexer
	buf           []sigToken
	tokens        []*Node // every leaf (trivia, significant, error) in source order
	templateStack []templateFrame
}

// templateFrame tracks one open template literal: whether the cursor is
// currently inside a `${...}` substitution, and (while it is) how deeply
// nested in ordinary braces, so an RBrace belonging to a nested object or
// block isn't mistaken for the one that closes the substitution.
type templateFrame struct {
	inSubst    bool
	braceDepth int
}

// NewTokenSource builds a token source over text and primes its lookahead
// buffer.
func NewTokenSource(text string) *TokenSource {
	ts := &TokenSource{lexer: NewLexer(text)}
	ts.fill()
	return ts
}

// fill tops the lookahead buffer back up to `lookahead` significant tokens.
func (ts *TokenSource) fill() {
	for len(ts.buf) < lookahead && (len(ts.buf) == 0 || ts.buf[len(ts.buf)-1].kind != EOF) {
		ts.buf = append(ts.buf, ts.lexNext())
	}
}

// lexNext pulls trivia then one significant token (or EOF) straight from
// the lexer, recording every leaf produced along the way.
func (ts *TokenSource) lexNext() sigToken {
	var trivia []*Node
	newline := false
	lexerPosBefore := ts.lexer.Cursor()
	tokensLenBefore := len(ts.tokens)
	templateStackBefore := append([]templateFrame(nil), ts.templateStack...)
	start := lexerPosBefore

	templateText := ts.inTemplateText()
	ts.lexer.SetTemplateMode(templateText)
	ts.lexer.SetRegexAllowed(!templateText && ts.regexAllowedHere())

	for {
		kind, node := ts.lexer.Next()
		ts.tokens = append(ts.tokens, node)
		if kind.IsTrivia() {
			trivia = append(trivia, node)
			if ts.lexer.Newline() {
				newline = true
			}
			continue
		}
		ts.trackTemplate(kind, templateText)
		end := ts.lexer.Cursor()
		return sigToken{
			kind: kind, node: node, trivia: trivia,
			newline: newline, start: start, end: end,
			lexerPosBefore: lexerPosBefore, tokensLenBefore: tokensLenBefore,
			templateStackBefore: templateStackBefore,
		}
	}
}

// inTemplateText reports whether the cursor sits inside a template
// literal's literal text rather than inside a `${...}` substitution or
// ordinary code.
func (ts *TokenSource) inTemplateText() bool {
	if len(ts.templateStack) == 0 {
		return false
	}
	return !ts.templateStack[len(ts.templateStack)-1].inSubst
}

// trackTemplate updates the template-nesting stack as template delimiters
// and braces are lexed. wasTemplateText is whether the token just
// returned was lexed in template-text mode (and so, for Backtick, whether
// it is a closing delimiter rather than an opening one).
func (ts *TokenSource) trackTemplate(kind Kind, wasTemplateText bool) {
	switch kind {
	case Backtick:
		if wasTemplateText {
			ts.templateStack = ts.templateStack[:len(ts.templateStack)-1]
		} else {
			ts.templateStack = append(ts.templateStack, templateFrame{})
		}
	case TemplateDollar:
		ts.templateStack[len(ts.templateStack)-1].inSubst = true
	case LBrace:
		if n := len(ts.templateStack); n > 0 && ts.templateStack[n-1].inSubst {
			ts.templateStack[n-1].braceDepth++
		}
	case RBrace:
		if n := len(ts.templateStack); n > 0 && ts.templateStack[n-1].inSubst {
			if ts.templateStack[n-1].braceDepth > 0 {
				ts.templateStack[n-1].braceDepth--
			} else {
				ts.templateStack[n-1].inSubst = false
			}
		}
	}
}

// regexAllowedHere reports whether a `/` at the lexer's current position
// should be read as a regex literal rather than division, based on the
// last significant token consumed (spec §4.1). A `/` starts a regex unless
// it directly follows a token that can end an expression.
func (ts *TokenSource) regexAllowedHere() bool {
	if len(ts.buf) == 0 {
		return true
	}
	last := ts.buf[len(ts.buf)-1].kind
	switch last {
	case Ident, Number, Str, Regex, RParen, RBrack, This, Super, True, False,
		Null, Plus2, Minus2:
		return false
	}
	return true
}

// Current returns the kind of the token at the cursor.
func (ts *TokenSource) Current() Kind {
	return ts.Nth(0)
}

// Nth returns the kind of the token n positions ahead of the cursor
// (Nth(0) == Current). Positions beyond what has been lexed return EOF.
func (ts *TokenSource) Nth(n int) Kind {
	for len(ts.buf) <= n && ts.buf[len(ts.buf)-1].kind != EOF {
		ts.buf = append(ts.buf, ts.lexNext())
	}
	if n >= len(ts.buf) {
		return EOF
	}
	return ts.buf[n].kind
}

// CurrentText returns the exact source text of the token at the cursor.
func (ts *TokenSource) CurrentText() string {
	if len(ts.buf) == 0 {
		return ""
	}
	return ts.buf[0].node.Text()
}

// CurrentSpan returns the byte span of the token at the cursor, excluding
// its leading trivia.
func (ts *TokenSource) CurrentSpan() Span {
	if len(ts.buf) == 0 {
		return Span{}
	}
	t := ts.buf[0]
	return Span{Start: uint32(t.end - len(t.node.Text())), End: uint32(t.end)}
}

// HadNewlineBefore reports whether the token at the cursor was preceded,
// anywhere in its leading trivia, by a line terminator — the sole signal
// spec §4.4's automatic-semicolon-insertion rule needs.
func (ts *TokenSource) HadNewlineBefore() bool {
	if len(ts.buf) == 0 {
		return false
	}
	return ts.buf[0].newline
}

// Bump consumes the token at the cursor (which must match kind; callers
// check Current first), advances the window, and returns the number of
// leaves (leading trivia plus the token itself) now fixed in the
// accumulated leaf list — Builder consumes exactly that many entries for
// the matching shapeToken event, keeping trivia attached ahead of the
// token that follows it.
func (ts *TokenSource) Bump(kind Kind) int {
	if len(ts.buf) == 0 || ts.buf[0].kind != kind {
		panic("syntax: TokenSource.Bump kind mismatch")
	}
	t := ts.buf[0]
	ts.buf = ts.buf[1:]
	ts.fill()
	return len(t.trivia) + 1
}

// Trivia returns the trivia nodes immediately preceding the token at the
// cursor, used by the builder to attach them before the token's own leaf.
func (ts *TokenSource) Trivia() []*Node {
	if len(ts.buf) == 0 {
		return nil
	}
	return ts.buf[0].trivia
}

// Mark captures the token source's state at the current cursor position so
// a later Restore can undo everything lexed from here on, including
// entries already appended to the accumulated leaf list — needed because
// TokenSource eagerly lexes lookahead tokens before the parser commits to
// consuming them (spec §4.3, "checkpoint/rewind").
func (ts *TokenSource) Mark() TokenSourceMark {
	if len(ts.buf) == 0 {
		return TokenSourceMark{
			lexerPos: ts.lexer.Cursor(), tokensLen: len(ts.tokens),
			templateStack: append([]templateFrame(nil), ts.templateStack...),
		}
	}
	front := ts.buf[0]
	return TokenSourceMark{
		lexerPos: front.lexerPosBefore, tokensLen: front.tokensLenBefore,
		templateStack: front.templateStackBefore,
	}
}

// Restore rewinds to a mark taken earlier by Mark, discarding any lexing
// done since (including lookahead the parser never actually consumed).
func (ts *TokenSource) Restore(m TokenSourceMark) {
	ts.lexer.Jump(m.lexerPos)
	ts.tokens = ts.tokens[:m.tokensLen]
	ts.templateStack = append([]templateFrame(nil), m.templateStack...)
	ts.buf = nil
	ts.fill()
}

// Leaves returns every leaf (trivia, significant token, or error token)
// produced so far, in source order. Builder consumes this once parsing
// completes; it is only valid after the parser has finished (no further
// lexing may occur, or indices recorded in the event log would desync).
func (ts *TokenSource) Leaves() []*Node {
	return ts.tokens
}
