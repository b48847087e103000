package syntax

// This file implements the expression grammar: precedence-climbing
// binary/logical expressions, the assignment/conditional/arrow layer, unary
// and postfix operators, call/member chains (including optional chaining),
// and primary expressions. The precedence-climbing loop structure and
// directlyAt-style postfix dispatch generalize a single untyped binary-
// operator table to this grammar's full ECMAScript operator set.

// ParseExpr parses a full (comma-permitting) Expression and returns its
// completed marker.
func ParseExpr(p *Parser) CompletedMarker {
	first := ParseAssignExpr(p)
	if !p.At(Comma) {
		return first
	}
	for p.Eat(Comma) {
		ParseAssignExpr(p)
	}
	return first.Precede(p).Complete(p, SequenceExpr)
}

// ParseAssignExpr parses an AssignmentExpression: an arrow function, a
// yield expression, or a ConditionalExpression optionally followed by an
// assignment operator and a right-associative recursive AssignmentExpression.
func ParseAssignExpr(p *Parser) CompletedMarker {
	if p.At(Yield) && (p.state.inGenerator || p.state.inFunction) {
		return parseYieldExpr(p)
	}
	if cm, ok := tryParseArrow(p); ok {
		return cm
	}

	lhs := parseConditionalExpr(p)
	if AssignOpSet.Contains(p.Current()) {
		op := p.Current()
		m := lhs.Precede(p)
		p.Expect(op)
		ParseAssignExpr(p)
		return m.Complete(p, AssignExpr)
	}
	return lhs
}

func parseYieldExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Yield)
	if p.Eat(Star) {
		// delegating yield*
	}
	if !p.HadNewlineBefore() && ExprStartSet.Contains(p.Current()) {
		ParseAssignExpr(p)
	}
	return m.Complete(p, YieldExpr)
}

// tryParseArrow attempts the arrow-function alternative at the current
// position: `ident =>`, `(params) =>`, or the `async` variants of both. It
// fully commits (returns ok=true) only once it has confirmed a `=>` with
// no intervening line terminator; otherwise it rewinds to cp and reports
// ok=false so the caller falls through to ordinary expression parsing.
func tryParseArrow(p *Parser) (CompletedMarker, bool) {
	isAsync := p.At(Async) && !asyncBreaksHere(p)

	if (p.At(Ident) || p.Current().IsContextualKeyword()) && p.Nth(1) == FatArrow {
		m := p.Start()
		param := p.Start()
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		param.Complete(p, SinglePattern)
		p.Expect(FatArrow)
		parseArrowBody(p)
		return m.Complete(p, ArrowExpr), true
	}

	if isAsync && (p.Nth(1) == Ident || p.Nth(1).IsContextualKeyword()) && p.Nth(2) == FatArrow {
		m := p.Start()
		p.Expect(Async)
		param := p.Start()
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		param.Complete(p, SinglePattern)
		p.Expect(FatArrow)
		parseArrowBody(p)
		return m.Complete(p, ArrowExpr), true
	}

	if p.At(LParen) || (isAsync && p.Nth(1) == LParen) {
		return tryParseParenOrArrow(p, isAsync)
	}
	return CompletedMarker{}, false
}

// asyncBreaksHere reports whether `async` at the cursor cannot be the
// start of an async arrow/function — i.e. it is being used as a plain
// identifier (followed by something that can't continue an async form).
func asyncBreaksHere(p *Parser) bool {
	switch p.Nth(1) {
	case LParen, Ident, Function:
		return false
	default:
		return p.Nth(1).IsContextualKeyword()
	}
}

// tryParseParenOrArrow first skips tokens to the matching `)` without
// building anything; unless a `=>` or a return-type `:` follows it, it
// rewinds and reports ok=false right away. Otherwise it parses the group
// once, as plain expressions, purely to look ahead for a following `=>`.
// If none is found, that parse is discarded as well (Rewind to cp,
// ok=false) and the caller re-parses the text as an ordinary
// parenthesized expression. If `=>` is confirmed, the expression-shaped
// parse is likewise discarded with a full Rewind to the opening paren, and
// the same text is re-parsed with ParseParameterList so each item becomes
// a genuine binding pattern (SinglePattern/ArrayPattern/ObjectPattern/
// RestPattern) rather than the NameRef/SequenceExpr shape expression
// parsing would have produced (spec §8: `(a, b) => a + b` must yield two
// SinglePatterns under ParameterList).
func tryParseParenOrArrow(p *Parser, isAsync bool) (CompletedMarker, bool) {
	cp := p.Mark()
	for depth, open := 0, false; !p.AtEnd() && (!open || depth > 0); p.BumpAny() {
		if p.At(LParen) {
			depth, open = depth+1, true
		} else if p.At(RParen) {
			depth--
		}
	}
	arrowAhead := p.At(FatArrow) || p.At(Colon)
	p.Rewind(cp)
	if !arrowAhead {
		return CompletedMarker{}, false
	}

	if isAsync {
		p.Expect(Async)
	}
	p.Expect(LParen)

	var items []CompletedMarker
	sawRest := false
	for !p.At(RParen) && !p.AtEnd() {
		if p.At(Dot3) {
			sawRest = true
			items = append(items, parseRestBindingAsExpr(p))
		} else {
			items = append(items, ParseAssignExpr(p))
		}
		if !p.Eat(Comma) {
			break
		}
	}

	if len(items) > 1 {
		items[0].Precede(p).Complete(p, SequenceExpr)
	}

	p.Expect(RParen)

	if p.At(Colon) {
		retTypeCp := p.Mark()
		ParseTypeAnnotation(p)
		if !p.At(FatArrow) || p.HadNewlineBefore() {
			p.Rewind(retTypeCp)
		}
	}

	if p.At(FatArrow) && !p.HadNewlineBefore() {
		p.Rewind(cp)
		return parseArrowWithParamList(p, isAsync), true
	}

	if sawRest || len(items) == 0 {
		// `(...)` or `()` with no following `=>` is not a valid expression;
		// rewind entirely and let the caller's fallback report the error
		// through the ordinary expression path, which still makes progress
		// because LParen is a member of ExprStartSet.
		p.Rewind(cp)
		return CompletedMarker{}, false
	}
	p.Rewind(cp)
	return CompletedMarker{}, false
}

// parseArrowWithParamList parses a confirmed arrow function from its
// opening paren (or `async` keyword) through its body, committing the
// parameter list as real binding patterns via ParseParameterList.
func parseArrowWithParamList(p *Parser, isAsync bool) CompletedMarker {
	m := p.Start()
	if isAsync {
		p.Expect(Async)
	}
	ParseParameterList(p)
	if p.At(Colon) {
		retTypeCp := p.Mark()
		ParseTypeAnnotation(p)
		if !p.At(FatArrow) || p.HadNewlineBefore() {
			p.Rewind(retTypeCp)
		}
	}
	p.Expect(FatArrow)
	parseArrowBody(p)
	return m.Complete(p, ArrowExpr)
}

// parseRestBindingAsExpr parses `...` followed by a binding target,
// tentatively inside what may turn out to be an arrow parameter list. It
// is only ever kept if tryParseParenOrArrow commits to the arrow
// interpretation; otherwise the whole attempt is rewound.
func parseRestBindingAsExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Dot3)
	ParsePattern(p)
	return m.Complete(p, SpreadElement)
}

func parseArrowBody(p *Parser) {
	if p.At(LBrace) {
		p.WithState(func(s *state) {
			s.inFunction = true
			s.inGenerator = false
			s.inLoop = false
			s.inSwitch = false
		}, func() {
			ParseFunctionBody(p)
		})
		return
	}
	p.WithState(func(s *state) { s.allowObjectExpr = true }, func() {
		ParseAssignExpr(p)
	})
}

func parseConditionalExpr(p *Parser) CompletedMarker {
	lhs := parseBinaryExpr(p, 1)
	if !p.At(Question) {
		return lhs
	}
	m := lhs.Precede(p)
	p.Expect(Question)
	p.WithState(func(s *state) { s.noIn = false }, func() {
		ParseAssignExpr(p)
	})
	p.Expect(Colon)
	ParseAssignExpr(p)
	return m.Complete(p, CondExpr)
}

// parseBinaryExpr is the precedence-climbing core: parse one unary
// operand, then repeatedly
// consume an infix operator whose precedence is >= minPrec, recursing
// with a strictly higher minimum for left-associative operators (so equal
// precedence binds left) and the same minimum for the single
// right-associative operator (`**`).
func parseBinaryExpr(p *Parser, minPrec int) CompletedMarker {
	cleanup := p.IncreaseDepth()
	if cleanup == nil {
		// Depth already reported and the pathological tail already
		// consumed by IncreaseDepth; stop recursing instead of calling
		// back into parseUnaryExpr.
		m := p.Start()
		return m.Complete(p, Error)
	}
	defer cleanup()

	lhs := parseUnaryExpr(p)
	lhs = parseAsSatisfiesChain(p, lhs)
	for {
		kind := p.Current()
		if kind == In && p.state.noIn {
			break
		}
		op, ok := BinOpFromKind(kind)
		if !ok || op.Precedence() < minPrec {
			break
		}
		m := lhs.Precede(p)
		p.BumpAny()
		next := op.Precedence()
		if op.Assoc() == AssocLeft {
			next++
		}
		parseBinaryExpr(p, next)
		lhs = m.Complete(p, BinExpr)
	}
	return lhs
}

func parseUnaryExpr(p *Parser) CompletedMarker {
	if p.At(Await) && (p.state.inAsync || p.state.inFunction == false) {
		m := p.Start()
		p.Expect(Await)
		parseUnaryExpr(p)
		return m.Complete(p, AwaitExpr)
	}
	if _, ok := UnOpFromKind(p.Current()); ok && p.Current() != Plus2 && p.Current() != Minus2 {
		m := p.Start()
		p.BumpAny()
		parseUnaryExpr(p)
		return m.Complete(p, UnaryExpr)
	}
	if p.At(Plus2) || p.At(Minus2) {
		m := p.Start()
		p.BumpAny()
		parseUnaryExpr(p)
		return m.Complete(p, UnaryExpr)
	}
	return parsePostfixExpr(p)
}

func parsePostfixExpr(p *Parser) CompletedMarker {
	lhs := parseCallOrMemberExpr(p)
	if !p.HadNewlineBefore() && (p.At(Plus2) || p.At(Minus2)) {
		m := lhs.Precede(p)
		p.BumpAny()
		return m.Complete(p, UnaryExpr)
	}
	return lhs
}

func parseCallOrMemberExpr(p *Parser) CompletedMarker {
	lhs := parseNewOrPrimaryExpr(p)
	for {
		switch {
		case p.At(Dot):
			m := lhs.Precede(p)
			p.Expect(Dot)
			parsePropertyName(p)
			lhs = m.Complete(p, DotExpr)
		case p.At(QuestionDot):
			m := lhs.Precede(p)
			p.Expect(QuestionDot)
			switch {
			case p.At(LParen):
				parseArgs(p)
				lhs = m.Complete(p, CallExpr)
			case p.At(LBrack):
				p.Expect(LBrack)
				ParseExpr(p)
				p.Expect(RBrack)
				lhs = m.Complete(p, BracketExpr)
			default:
				parsePropertyName(p)
				lhs = m.Complete(p, DotExpr)
			}
		case p.At(LBrack):
			m := lhs.Precede(p)
			p.Expect(LBrack)
			ParseExpr(p)
			p.Expect(RBrack)
			lhs = m.Complete(p, BracketExpr)
		case p.At(LParen):
			m := lhs.Precede(p)
			parseArgs(p)
			lhs = m.Complete(p, CallExpr)
		default:
			return lhs
		}
	}
}

func parsePropertyName(p *Parser) {
	m := p.Start()
	if p.Current() == Ident || p.Current().IsKeyword() || p.Current().IsContextualKeyword() {
		p.BumpAny()
	} else {
		p.Unexpected()
	}
	m.Complete(p, Name)
}

func parseNewOrPrimaryExpr(p *Parser) CompletedMarker {
	if p.At(New) {
		m := p.Start()
		p.Expect(New)
		if p.At(Dot) {
			p.Expect(Dot)
			prop := p.Start()
			p.Expect(Ident) // `target`
			prop.Complete(p, Name)
			return m.Complete(p, NewTarget)
		}
		parseNewOrPrimaryExpr(p) // callee, member access only (no call parens here)
		if p.At(LParen) {
			parseArgs(p)
		}
		return m.Complete(p, NewExpr)
	}
	return parsePrimaryExpr(p)
}

func parsePrimaryExpr(p *Parser) CompletedMarker {
	switch p.Current() {
	case This:
		m := p.Start()
		p.Expect(This)
		return m.Complete(p, ThisExpr)
	case Super:
		m := p.Start()
		p.Expect(Super)
		if p.At(LParen) {
			parseArgs(p)
			return m.Complete(p, SuperCall)
		}
		return m.Complete(p, SuperCall)
	case Number, Str, Regex, True, False, Null:
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, Literal)
	case Backtick:
		return parseTemplate(p)
	case Ident:
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, NameRef)
	case Function:
		return parseFunctionExpr(p)
	case Async:
		if p.Nth(1) == Function {
			return parseFunctionExpr(p)
		}
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, NameRef)
	case Class:
		return ParseClassExpr(p)
	case LBrack:
		return parseArrayExpr(p)
	case LBrace:
		return parseObjectExpr(p)
	case LParen:
		return parseGroupingExpr(p)
	case Import:
		m := p.Start()
		p.Expect(Import)
		if p.At(Dot) {
			p.Expect(Dot)
			prop := p.Start()
			p.Expect(Ident) // `meta`
			prop.Complete(p, Name)
			return m.Complete(p, ImportMeta)
		}
		parseArgs(p)
		return m.Complete(p, ImportCall)
	default:
		if p.Current().IsContextualKeyword() {
			m := p.Start()
			p.BumpAny()
			return m.Complete(p, NameRef)
		}
		m := p.Start()
		p.ErrRecover(Unexpected(p.CurrentSpan(), p.Current()), ExprStartSet.Union(StmtStartSet))
		return m.Complete(p, Error)
	}
}

func parseGroupingExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	return m.Complete(p, GroupingExpr)
}

func parseArrayExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrack)
	for !p.At(RBrack) && !p.AtEnd() {
		if p.At(Comma) {
			p.BumpAny() // elision
			continue
		}
		if p.At(Dot3) {
			sm := p.Start()
			p.Expect(Dot3)
			ParseAssignExpr(p)
			sm.Complete(p, SpreadElement)
		} else {
			ParseAssignExpr(p)
		}
		if !p.At(RBrack) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrack)
	return m.Complete(p, ArrayExpr)
}

func parseObjectExpr(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		parseObjectMember(p)
		if !p.At(RBrace) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrace)
	return m.Complete(p, ObjectExpr)
}

func parseObjectMember(p *Parser) {
	if p.At(Dot3) {
		m := p.Start()
		p.Expect(Dot3)
		ParseAssignExpr(p)
		m.Complete(p, SpreadProp)
		return
	}

	if (p.At(Get) || p.At(Set)) && p.Nth(1) != Colon && p.Nth(1) != Comma && p.Nth(1) != RBrace && p.Nth(1) != LParen {
		kind := Getter
		if p.At(Set) {
			kind = Setter
		}
		m := p.Start()
		p.BumpAny()
		parsePropertyName(p)
		ParseParameterList(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		ParseFunctionBody(p)
		m.Complete(p, kind)
		return
	}

	m := p.Start()
	isComputed := p.At(LBrack)
	if isComputed {
		p.Expect(LBrack)
		ParseAssignExpr(p)
		p.Expect(RBrack)
	} else {
		parsePropertyName(p)
	}

	switch {
	case p.At(LParen):
		ParseParameterList(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		ParseFunctionBody(p)
		m.Complete(p, Method)
	case p.At(Colon):
		p.Expect(Colon)
		ParseAssignExpr(p)
		m.Complete(p, InitializedProp)
	default:
		m.Complete(p, LiteralProp)
	}
}

func parseFunctionExpr(p *Parser) CompletedMarker {
	m := p.Start()
	isAsync := p.Eat(Async)
	p.Expect(Function)
	isGen := p.Eat(Star)
	if p.At(Ident) {
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
	}
	p.WithState(func(s *state) {
		s.inFunction = true
		s.inAsync = isAsync
		s.inGenerator = isGen
		s.inLoop = false
		s.inSwitch = false
	}, func() {
		ParseParameterList(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		ParseFunctionBody(p)
	})
	return m.Complete(p, FnExpr)
}

// ParseParameterList parses `( param, param, ... )`.
func ParseParameterList(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		if p.At(Dot3) {
			rm := p.Start()
			p.Expect(Dot3)
			ParsePattern(p)
			rm.Complete(p, RestPattern)
		} else {
			ParseBindingElement(p)
		}
		if !p.At(RParen) {
			if !p.Eat(Comma) {
				break
			}
		}
	}
	p.Expect(RParen)
	return m.Complete(p, ParameterList)
}

func parseTemplate(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Backtick)
	for {
		if p.At(TemplateChunk) {
			em := p.Start()
			p.BumpAny()
			em.Complete(p, TemplateElement)
		}
		if p.Eat(Backtick) {
			break
		}
		if p.AtEnd() {
			p.Error(NewDiagnostic(p.CurrentSpan(), "unterminated template literal"))
			break
		}
		// `${` substitution: the lexer yields `${` as one TemplateDollar
		// token; the embedded expression follows and is closed by an
		// ordinary `}`.
		if p.At(TemplateDollar) {
			p.Expect(TemplateDollar)
			ParseExpr(p)
			p.Expect(RBrace)
		} else {
			break
		}
	}
	return m.Complete(p, Template)
}

// parseArgs parses a call argument list `( arg, ...arg )`.
func parseArgs(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		if p.At(Dot3) {
			sm := p.Start()
			p.Expect(Dot3)
			ParseAssignExpr(p)
			sm.Complete(p, SpreadElement)
		} else {
			ParseAssignExpr(p)
		}
		if !p.At(RParen) {
			if !p.Eat(Comma) {
				break
			}
		}
	}
	p.Expect(RParen)
	return m.Complete(p, ArgList)
}
