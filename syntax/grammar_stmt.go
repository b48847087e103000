package syntax

// This file implements the statement grammar: a single `switch` over the
// lookahead token, one production per arm, every arm either consuming at
// least one token or delegating to ErrRecover, covering this grammar's
// full ECMAScript statement list.

// ParseStatementList parses statements until the cursor reaches one of the
// stop kinds (RBrace for a block, EOF for a program).
func ParseStatementList(p *Parser, stop KindSet) {
	for !p.AtEnd() && !p.AtSet(stop) {
		before := p.Mark()
		ParseStatement(p)
		// Guard against a production that reports an error without making
		// progress; ErrRecover and BumpAny both already guarantee forward
		// progress, but a defensive check here keeps a future regression
		// from hanging instead of just mis-parsing.
		if p.Mark().eventsLen == before.eventsLen {
			p.BumpAny()
		}
	}
}

// ParseStatement parses one statement or module item.
func ParseStatement(p *Parser) CompletedMarker {
	switch p.Current() {
	case LBrace:
		return parseBlockStmt(p)
	case Var, Const:
		return parseVarDeclStmt(p)
	case Let:
		if p.Nth(1) == LBrack || p.Nth(1) == LBrace || p.Nth(1) == Ident || p.Nth(1).IsContextualKeyword() {
			return parseVarDeclStmt(p)
		}
	case Semicolon:
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, EmptyStmt)
	case If:
		return parseIfStmt(p)
	case Do:
		return parseDoWhileStmt(p)
	case While:
		return parseWhileStmt(p)
	case For:
		return parseForStmt(p)
	case Continue:
		return parseContinueStmt(p)
	case Break:
		return parseBreakStmt(p)
	case Return:
		return parseReturnStmt(p)
	case With:
		return parseWithStmt(p)
	case Switch:
		return parseSwitchStmt(p)
	case Throw:
		return parseThrowStmt(p)
	case Try:
		return parseTryStmt(p)
	case Debugger:
		m := p.Start()
		p.Expect(Debugger)
		eatSemicolon(p)
		return m.Complete(p, DebuggerStmt)
	case Function:
		return parseFnDecl(p, false)
	case Async:
		if p.Nth(1) == Function {
			return parseFnDecl(p, true)
		}
	case Class:
		return ParseClassDecl(p)
	case Import:
		if p.Nth(1) != LParen && p.Nth(1) != Dot {
			return ParseImportDecl(p)
		}
	case Export:
		return ParseExportDecl(p)
	case Interface:
		return parseInterfaceDecl(p)
	}

	if p.At(Ident) && p.CurrentText() == "type" && (p.Nth(1) == Ident || p.Nth(1).IsContextualKeyword()) {
		return parseTypeAliasDecl(p)
	}

	if (p.At(Ident) || p.Current().IsContextualKeyword()) && p.Nth(1) == Colon {
		return parseLabelledStmt(p)
	}

	return parseExprStmt(p)
}

func parseBlockStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)
	ParseStatementList(p, KindSetOf(RBrace))
	p.Expect(RBrace)
	return m.Complete(p, BlockStmt)
}

// ParseFunctionBody parses a function/method/arrow `{ ... }` body.
func ParseFunctionBody(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)
	p.WithState(func(s *state) {
		s.inFunction = true
		s.inLoop = false
		s.inSwitch = false
	}, func() {
		parseDirectivePrologue(p, KindSetOf(RBrace))
		ParseStatementList(p, KindSetOf(RBrace))
	})
	p.Expect(RBrace)
	return m.Complete(p, BlockStmt)
}

// parseDirectivePrologue scans the leading run of bare string-literal
// expression statements — the shape ECMAScript recognizes as a directive —
// and switches on strict mode for the remainder of the current scope when
// one of them is exactly "use strict" (spec §4.3: strict, "once set true by
// a 'use strict' directive prologue or by being inside a class body"). Each
// matched statement still goes through parseExprStmt so the tree keeps its
// ordinary ExprStmt/Literal shape; this only inspects the raw token text
// before consuming it, and only recognizes the unambiguous case where the
// string literal is immediately followed by a statement terminator.
func parseDirectivePrologue(p *Parser, stop KindSet) {
	for !p.AtEnd() && !p.AtSet(stop) && p.At(Str) &&
		(p.Nth(1) == Semicolon || p.Nth(1) == RBrace || p.Nth(1) == EOF) {
		text := p.CurrentText()
		parseExprStmt(p)
		if text == `"use strict"` || text == `'use strict'` {
			p.state.strict = true
		}
	}
}

func parseVarDeclStmt(p *Parser) CompletedMarker {
	m := p.Start()
	parseVarDeclHead(p)
	eatSemicolon(p)
	return m.Complete(p, VarDecl)
}

// parseVarDeclHead parses `var|let|const decl, decl, ...` without the
// trailing semicolon, shared by VariableStatement and the for-loop init
// clause.
func parseVarDeclHead(p *Parser) {
	p.BumpAny() // var | let | const
	for {
		dm := p.Start()
		ParsePattern(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		if p.Eat(Eq) {
			ParseAssignExpr(p)
		}
		dm.Complete(p, Declarator)
		if !p.Eat(Comma) {
			break
		}
	}
}

func parseIfStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(If)
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	ParseStatement(p)
	if p.Eat(Else) {
		ParseStatement(p)
	}
	return m.Complete(p, IfStmt)
}

func parseDoWhileStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Do)
	p.WithState(func(s *state) { s.inLoop = true }, func() {
		ParseStatement(p)
	})
	p.Expect(While)
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	eatSemicolon(p)
	return m.Complete(p, DoWhileStmt)
}

func parseWhileStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(While)
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	p.WithState(func(s *state) { s.inLoop = true }, func() {
		ParseStatement(p)
	})
	return m.Complete(p, WhileStmt)
}

func parseForStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(For)
	p.Eat(Await) // for-await-of
	p.Expect(LParen)

	var initKind Kind
	switch {
	case p.At(Semicolon):
		initKind = Tombstone
	case p.At(Var) || p.At(Const) || (p.At(Let) && (p.Nth(1) == LBrack || p.Nth(1) == LBrace || p.Nth(1) == Ident || p.Nth(1).IsContextualKeyword())):
		im := p.Start()
		p.WithState(func(s *state) { s.noIn = true }, func() {
			parseVarDeclHead(p)
		})
		im.Complete(p, VarDecl)
	default:
		im := p.Start()
		p.WithState(func(s *state) { s.noIn = true; s.allowObjectExpr = false }, func() {
			ParseExpr(p)
		})
		im.Complete(p, ForStmtInit)
	}

	if p.At(In) || p.At(Of) {
		isOf := p.At(Of)
		p.BumpAny()
		rm := p.Start()
		p.WithState(func(s *state) { s.noIn = false }, func() {
			ParseAssignExpr(p)
		})
		rm.Complete(p, ForStmtTest)
		p.Expect(RParen)
		p.WithState(func(s *state) { s.inLoop = true }, func() {
			ParseStatement(p)
		})
		if isOf {
			return m.Complete(p, ForOfStmt)
		}
		return m.Complete(p, ForInStmt)
	}

	_ = initKind
	p.Expect(Semicolon)
	if !p.At(Semicolon) {
		tm := p.Start()
		ParseExpr(p)
		tm.Complete(p, ForStmtTest)
	}
	p.Expect(Semicolon)
	if !p.At(RParen) {
		um := p.Start()
		ParseExpr(p)
		um.Complete(p, ForStmtUpdate)
	}
	p.Expect(RParen)
	p.WithState(func(s *state) { s.inLoop = true }, func() {
		ParseStatement(p)
	})
	return m.Complete(p, ForStmt)
}

func parseContinueStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Continue)
	if !p.HadNewlineBefore() && (p.At(Ident) || p.Current().IsContextualKeyword()) {
		lm := p.Start()
		p.BumpAny()
		lm.Complete(p, Name)
	}
	eatSemicolon(p)
	return m.Complete(p, ContinueStmt)
}

func parseBreakStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Break)
	if !p.HadNewlineBefore() && (p.At(Ident) || p.Current().IsContextualKeyword()) {
		lm := p.Start()
		p.BumpAny()
		lm.Complete(p, Name)
	}
	eatSemicolon(p)
	return m.Complete(p, BreakStmt)
}

func parseReturnStmt(p *Parser) CompletedMarker {
	m := p.Start()
	span := p.CurrentSpan()
	p.Expect(Return)
	if !p.state.inFunction {
		p.Error(IllegalContext(span, "`return` outside of a function"))
	}
	if !p.HadNewlineBefore() && !p.At(Semicolon) && !p.At(RBrace) && !p.AtEnd() {
		ParseExpr(p)
	}
	eatSemicolon(p)
	return m.Complete(p, ReturnStmt)
}

func parseWithStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(With)
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	ParseStatement(p)
	return m.Complete(p, WithStmt)
}

func parseSwitchStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Switch)
	p.Expect(LParen)
	ParseExpr(p)
	p.Expect(RParen)
	p.Expect(LBrace)
	p.WithState(func(s *state) { s.inSwitch = true }, func() {
		sawDefault := false
		for !p.At(RBrace) && !p.AtEnd() {
			switch {
			case p.At(Case):
				cm := p.Start()
				p.Expect(Case)
				ParseExpr(p)
				p.Expect(Colon)
				ParseStatementList(p, KindSetOf(Case, Default, RBrace))
				cm.Complete(p, CaseClause)
			case p.At(Default):
				if sawDefault {
					p.Error(NewDiagnostic(p.CurrentSpan(), "multiple `default` clauses in one `switch`"))
				}
				sawDefault = true
				dm := p.Start()
				p.Expect(Default)
				p.Expect(Colon)
				ParseStatementList(p, KindSetOf(Case, Default, RBrace))
				dm.Complete(p, DefaultClause)
			default:
				p.ErrRecover(Expected(p.CurrentSpan(), "`case` or `default`", p.Current()), KindSetOf(Case, Default, RBrace))
			}
		}
	})
	p.Expect(RBrace)
	return m.Complete(p, SwitchStmt)
}

func parseThrowStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Throw)
	if p.HadNewlineBefore() {
		p.Error(NewDiagnostic(p.CurrentSpan(), "no line break is allowed between `throw` and its expression"))
	}
	ParseExpr(p)
	eatSemicolon(p)
	return m.Complete(p, ThrowStmt)
}

func parseTryStmt(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Try)
	parseBlockStmt(p)
	if p.At(Catch) {
		cm := p.Start()
		p.Expect(Catch)
		if p.Eat(LParen) {
			ParseBindingElement(p)
			p.Expect(RParen)
		}
		parseBlockStmt(p)
		cm.Complete(p, CatchClause)
	}
	if p.At(Finally) {
		fm := p.Start()
		p.Expect(Finally)
		parseBlockStmt(p)
		fm.Complete(p, Finalizer)
	}
	return m.Complete(p, TryStmt)
}

func parseLabelledStmt(p *Parser) CompletedMarker {
	m := p.Start()
	lm := p.Start()
	p.BumpAny()
	lm.Complete(p, Name)
	p.Expect(Colon)
	ParseStatement(p)
	return m.Complete(p, LabelledStmt)
}

func parseExprStmt(p *Parser) CompletedMarker {
	m := p.Start()
	ParseExpr(p)
	eatSemicolon(p)
	return m.Complete(p, ExprStmt)
}

// eatSemicolon implements automatic semicolon insertion (spec §4.4, ASI):
// an explicit `;` is always consumed; otherwise the statement end is
// accepted without one if the next token is `}`, EOF, or was preceded by a
// line terminator, and flagged with a diagnostic otherwise (while still
// not consuming anything, preserving forward progress for the caller).
func eatSemicolon(p *Parser) {
	if p.Eat(Semicolon) {
		return
	}
	if p.At(RBrace) || p.AtEnd() || p.HadNewlineBefore() {
		return
	}
	p.Error(Expected(p.CurrentSpan(), "`;`", p.Current()))
}

func parseFnDecl(p *Parser, isAsync bool) CompletedMarker {
	m := p.Start()
	if isAsync {
		p.Expect(Async)
	}
	p.Expect(Function)
	isGen := p.Eat(Star)
	nm := p.Start()
	if p.At(Ident) || p.Current().IsContextualKeyword() {
		p.BumpAny()
	} else {
		p.Unexpected()
	}
	nm.Complete(p, Name)
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
	return m.Complete(p, FnDecl)
}
