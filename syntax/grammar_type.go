package syntax

// This file implements the optional gradual-type extension's grammar
// surface: primitive types, type references with generic arguments,
// unions/intersections, tuples, array and parenthesized types,
// function/constructor types, typeof queries, mapped types, conditional
// types, type annotations, the `as`/`satisfies` expression forms, and
// interface/type-alias declarations. The language extension never changes
// how ordinary ECMAScript parses; every production here is entered only
// from an annotation position (after `:`, `as`, `satisfies`, in `<...>`
// type argument lists, or inside a TsInterfaceDecl/TsTypeAliasDecl),
// keeping an optional grammar mode behind explicit entry points rather
// than folding it into the base expression grammar.

// parseAsSatisfiesChain wraps lhs in TsAsExpression/TsSatisfiesExpression
// nodes for each trailing `as`/`satisfies` clause. These bind like a
// left-associative relational operator: `a as T as U` reads as
// `(a as T) as U`.
func parseAsSatisfiesChain(p *Parser, lhs CompletedMarker) CompletedMarker {
	for {
		switch {
		case p.At(As):
			m := lhs.Precede(p)
			p.Expect(As)
			if p.At(Const) {
				p.BumpAny()
			} else {
				parseType(p)
			}
			lhs = m.Complete(p, TsAsExpression)
		case p.At(Satisfies):
			m := lhs.Precede(p)
			p.Expect(Satisfies)
			parseType(p)
			lhs = m.Complete(p, TsSatisfiesExpression)
		default:
			return lhs
		}
	}
}

// ParseTypeAnnotation parses a `: Type` clause, used after binding
// patterns, parameters, and function return positions.
func ParseTypeAnnotation(p *Parser) CompletedMarker {
	m := p.Start()
	colon := p.CurrentSpan()
	p.Expect(Colon)
	if !p.state.gradualTypes {
		p.Error(NewDiagnostic(colon, "gradual type annotations are disabled by project config"))
	}
	parseType(p)
	return m.Complete(p, TsTypeAnnotation)
}

// parseType parses a full type, including `|`/`&` composition.
func parseType(p *Parser) CompletedMarker {
	return parseUnionType(p)
}

func parseUnionType(p *Parser) CompletedMarker {
	p.Eat(Pipe) // leading `|` before the first arm is permitted
	lhs := parseIntersectionType(p)
	for p.At(Pipe) {
		m := lhs.Precede(p)
		p.Expect(Pipe)
		parseIntersectionType(p)
		lhs = m.Complete(p, TsUnion)
	}
	return lhs
}

func parseIntersectionType(p *Parser) CompletedMarker {
	p.Eat(Amp)
	lhs := parseTypeOperatorType(p)
	for p.At(Amp) {
		m := lhs.Precede(p)
		p.Expect(Amp)
		parseTypeOperatorType(p)
		lhs = m.Complete(p, TsIntersection)
	}
	return lhs
}

func parseTypeOperatorType(p *Parser) CompletedMarker {
	if p.At(Typeof) {
		m := p.Start()
		p.Expect(Typeof)
		em := p.Start()
		parseEntityName(p)
		em.Complete(p, TsTypeQueryExpr)
		return m.Complete(p, TsTypeQuery)
	}
	return parseConditionalType(p)
}

func parseConditionalType(p *Parser) CompletedMarker {
	check := parseArrayType(p)
	if !p.At(Extends) {
		return check
	}
	m := check.Precede(p)
	p.Expect(Extends)
	em := p.Start()
	parseArrayType(p)
	em.Complete(p, TsExtends)
	if p.Eat(Question) {
		parseType(p)
		p.Expect(Colon)
		parseType(p)
	}
	return m.Complete(p, TsConditionalType)
}

func parseArrayType(p *Parser) CompletedMarker {
	lhs := parsePrimaryType(p)
	for p.At(LBrack) {
		m := lhs.Precede(p)
		p.Expect(LBrack)
		if p.At(RBrack) {
			p.Expect(RBrack)
			lhs = m.Complete(p, TsArray)
		} else {
			parseType(p)
			p.Expect(RBrack)
			lhs = m.Complete(p, TsIndexedArray)
		}
	}
	return lhs
}

func parsePrimaryType(p *Parser) CompletedMarker {
	switch p.Current() {
	case LParen:
		return parseParenOrFnType(p)
	case New:
		return parseConstructorType(p)
	case LAngle:
		return parseParenOrFnType(p)
	case LBrack:
		return parseTupleType(p)
	case LBrace:
		return parseMappedOrObjectType(p)
	case Str, Number, True, False:
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, TsLiteral)
	case This:
		m := p.Start()
		p.Expect(This)
		return m.Complete(p, TsThis)
	case Import:
		m := p.Start()
		p.Expect(Import)
		p.Expect(LParen)
		p.Expect(Str)
		p.Expect(RParen)
		return m.Complete(p, TsImport)
	default:
		return parseIdentType(p)
	}
}

// primitiveTypeNames maps the spelling of a builtin type name (lexed as a
// plain Ident everywhere outside a type position) to its node kind.
var primitiveTypeNames = map[string]Kind{
	"any": TsAny, "unknown": TsUnknown, "number": TsNumber, "object": TsObject,
	"boolean": TsBoolean, "bigint": TsBigint, "string": TsString,
	"symbol": TsSymbol, "undefined": TsUndefined, "never": TsNever,
}

func parseIdentType(p *Parser) CompletedMarker {
	if p.At(Void) {
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, TsVoid)
	}
	if p.At(Null) {
		m := p.Start()
		p.BumpAny()
		return m.Complete(p, TsNull)
	}
	if !(p.At(Ident) || p.Current().IsContextualKeyword() || p.Current().IsKeyword()) {
		m := p.Start()
		p.ErrRecover(Expected(p.CurrentSpan(), "type", p.Current()), TsTypeStartSet.Union(StmtStartSet))
		return m.Complete(p, Error)
	}

	if p.At(Ident) {
		if kind, ok := primitiveTypeNames[p.CurrentText()]; ok && p.Nth(1) != Dot && p.Nth(1) != LAngle {
			m := p.Start()
			p.BumpAny()
			return m.Complete(p, kind)
		}
	}

	m := p.Start()
	parseTypeRef(p)
	return m.Complete(p, TsTypeRef)
}

// parseTypeRef parses a (possibly qualified) type name followed by an
// optional `<...>` type-argument list. Used both for plain type
// references and for `extends`/`implements` clause targets.
func parseTypeRef(p *Parser) {
	m := p.Start()
	parseEntityName(p)
	m.Complete(p, TsTypeName)
	if p.At(LAngle) {
		parseTypeArgs(p)
	}
}

func parseEntityName(p *Parser) {
	nm := p.Start()
	p.BumpAny()
	nm.Complete(p, Name)
	for p.At(Dot) {
		p.Expect(Dot)
		qm := p.Start()
		nm2 := p.Start()
		p.BumpAny()
		nm2.Complete(p, Name)
		qm.Complete(p, TsQualifiedPath)
	}
}

func parseTypeArgs(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LAngle)
	for !p.At(RAngle) && !p.AtEnd() {
		parseType(p)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RAngle)
	return m.Complete(p, TsTypeArgs)
}

func parseTupleType(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrack)
	for !p.At(RBrack) && !p.AtEnd() {
		em := p.Start()
		p.Eat(Dot3)
		parseType(p)
		em.Complete(p, TsTupleElement)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RBrack)
	return m.Complete(p, TsTuple)
}

// parseParenOrFnType disambiguates `(T)` (a parenthesized type) from
// `(x: T) => R` (a function type) and `<T>(x: T) => R` (a generic function
// type) the same way grammar_expr.go disambiguates arrows: by committing
// once `=>` is confirmed immediately after the closing `)`.
func parseParenOrFnType(p *Parser) CompletedMarker {
	m := p.Start()
	if p.At(LAngle) {
		parseTypeParams(p)
	}
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		pm := p.Start()
		p.Eat(Dot3)
		parseSinglePattern(p)
		p.Eat(Question)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		pm.Complete(p, SinglePattern)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RParen)

	if p.At(FatArrow) {
		p.Expect(FatArrow)
		parseType(p)
		return m.Complete(p, TsFnType)
	}
	return m.Complete(p, TsParen)
}

func parseConstructorType(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(New)
	if p.At(LAngle) {
		parseTypeParams(p)
	}
	p.Expect(LParen)
	for !p.At(RParen) && !p.AtEnd() {
		parseSinglePattern(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RParen)
	p.Expect(FatArrow)
	parseType(p)
	return m.Complete(p, TsConstructorType)
}

func parseTypeParams(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LAngle)
	for !p.At(RAngle) && !p.AtEnd() {
		pm := p.Start()
		nm := p.Start()
		if p.At(Ident) || p.Current().IsContextualKeyword() {
			p.BumpAny()
		} else {
			p.Unexpected()
		}
		nm.Complete(p, Name)
		if p.Eat(Extends) {
			parseType(p)
		}
		if p.Eat(Eq) {
			parseType(p)
		}
		pm.Complete(p, TsTypeParam)
		if !p.Eat(Comma) {
			break
		}
	}
	p.Expect(RAngle)
	return m.Complete(p, TsTypeParams)
}

// parseMappedOrObjectType covers `{ [K in T]: U }` mapped types and plain
// interface-shaped object types (`{ a: T; b(): U }`).
func parseMappedOrObjectType(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)

	if isMappedTypeStart(p) {
		readonly := p.Eat(Plus) || p.Eat(Minus)
		wasReadonly := p.At(Ident) && p.CurrentText() == "readonly"
		if wasReadonly {
			rm := p.Start()
			p.BumpAny()
			rm.Complete(p, TsMappedTypeReadonly)
		}
		_ = readonly
		p.Expect(LBrack)
		pm := p.Start()
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		p.Expect(In)
		parseType(p)
		pm.Complete(p, TsMappedTypeParam)
		p.Expect(RBrack)
		p.Eat(Question)
		p.Expect(Colon)
		parseType(p)
		p.Eat(Semicolon)
		p.Expect(RBrace)
		return m.Complete(p, TsMappedType)
	}

	for !p.At(RBrace) && !p.AtEnd() {
		parseObjectTypeMember(p)
		if !p.Eat(Semicolon) {
			p.Eat(Comma)
		}
	}
	p.Expect(RBrace)
	return m.Complete(p, TsInterfaceBody)
}

func isMappedTypeStart(p *Parser) bool {
	if p.At(LBrack) {
		return true
	}
	if (p.At(Plus) || p.At(Minus)) && p.Nth(1) == LBrack {
		return true
	}
	if p.At(Ident) && p.CurrentText() == "readonly" && p.Nth(1) == LBrack {
		return true
	}
	return false
}

func parseObjectTypeMember(p *Parser) {
	m := p.Start()
	parseClassMemberName(p)
	p.Eat(Question)
	switch {
	case p.At(LParen):
		ParseParameterList(p)
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		m.Complete(p, TsMethodSignature)
	default:
		if p.At(Colon) {
			ParseTypeAnnotation(p)
		}
		m.Complete(p, TsPropertySignature)
	}
}

func parseInterfaceDecl(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Interface)
	nm := p.Start()
	p.BumpAny()
	nm.Complete(p, Name)
	if p.At(LAngle) {
		parseTypeParams(p)
	}
	if p.Eat(Extends) {
		parseTypeRef(p)
		for p.Eat(Comma) {
			parseTypeRef(p)
		}
	}
	parseMappedOrObjectType(p)
	return m.Complete(p, TsInterfaceDecl)
}

// parseTypeAliasDecl parses `type Name<...> = Type;`.
func parseTypeAliasDecl(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Ident) // `type`
	nm := p.Start()
	p.BumpAny()
	nm.Complete(p, Name)
	if p.At(LAngle) {
		parseTypeParams(p)
	}
	p.Expect(Eq)
	parseType(p)
	eatSemicolon(p)
	return m.Complete(p, TsTypeAliasDecl)
}
