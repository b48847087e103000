package syntax

// This file implements the class grammar: class declarations and
// expressions, the class body, and methods/fields (regular, static,
// getter/setter, generator, async, and private-named). The declaration-
// parsing shape generalizes a marker-per-production dispatch to this
// grammar's member list, and RSLint's class-member dispatch grounds the
// modifier-combination rules (static/async/generator/get/set prefixes).

// ParseClassDecl parses a class declaration.
func ParseClassDecl(p *Parser) CompletedMarker {
	return parseClass(p, ClassDecl)
}

// ParseClassExpr parses a class expression.
func ParseClassExpr(p *Parser) CompletedMarker {
	return parseClass(p, ClassExpr)
}

func parseClass(p *Parser, kind Kind) CompletedMarker {
	m := p.Start()
	p.Expect(Class)
	if p.At(Ident) || p.Current().IsContextualKeyword() {
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
	}
	if p.Eat(Extends) {
		parseCallOrMemberExpr(p)
	}
	if p.At(Implements) {
		p.Expect(Implements)
		parseTypeRef(p)
		for p.Eat(Comma) {
			parseTypeRef(p)
		}
	}
	p.WithState(func(s *state) { s.strict = true }, func() {
		parseClassBody(p)
	})
	return m.Complete(p, kind)
}

func parseClassBody(p *Parser) {
	m := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		if p.At(Semicolon) {
			p.BumpAny()
			continue
		}
		parseClassMember(p)
	}
	p.Expect(RBrace)
	m.Complete(p, ClassBody)
}

func parseClassMember(p *Parser) {
	m := p.Start()

	isStatic := false
	if p.At(Static) && !memberNameFollows(p, 1) {
		isStatic = true
		p.BumpAny()
	}
	if isStatic && p.At(LBrace) {
		// static initialization block
		parseBlockStmt(p)
		m.Complete(p, StaticMethod)
		return
	}

	isAsync := false
	if p.At(Async) && !memberNameFollows(p, 1) {
		isAsync = true
		p.BumpAny()
	}
	isGen := p.Eat(Star)

	kind := Method
	if (p.At(Get) || p.At(Set)) && !memberNameFollows(p, 1) {
		if p.At(Get) {
			kind = Getter
		} else {
			kind = Setter
		}
		p.BumpAny()
	}

	if p.At(Private) {
		p.Expect(Private)
	}
	parseClassMemberName(p)

	switch {
	case p.At(LParen):
		p.WithState(func(s *state) {
			s.inFunction = true
			s.inAsync = isAsync
			s.inGenerator = isGen
			s.inClassCtor = false
		}, func() {
			ParseParameterList(p)
			if p.At(Colon) {
				ParseTypeAnnotation(p)
			}
			ParseFunctionBody(p)
		})
		if isStatic {
			m.Complete(p, StaticMethod)
		} else {
			m.Complete(p, kind)
		}
	default:
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		if p.Eat(Eq) {
			ParseAssignExpr(p)
		}
		eatSemicolon(p)
		m.Complete(p, Field)
	}
}

// memberNameFollows reports whether the token n positions ahead looks like
// the start of a member name rather than a continuation of a modifier
// prefix — used to tell `static foo() {}` (modifier) from `static() {}` (a
// method literally named `static`).
func memberNameFollows(p *Parser, n int) bool {
	switch p.Nth(n) {
	case LParen, Eq, Colon, Semicolon, RBrace:
		return true
	}
	return false
}

func parseClassMemberName(p *Parser) {
	m := p.Start()
	switch {
	case p.At(LBrack):
		p.Expect(LBrack)
		ParseAssignExpr(p)
		p.Expect(RBrack)
	case p.At(Str), p.At(Number):
		p.BumpAny()
	default:
		if p.Current() == Ident || p.Current().IsKeyword() || p.Current().IsContextualKeyword() {
			p.BumpAny()
		} else {
			p.Unexpected()
		}
	}
	m.Complete(p, Name)
}
