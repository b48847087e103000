package syntax

// This file implements spec §4.4's destructuring-pattern grammar: binding
// identifiers, array patterns, object patterns, rest elements (which must
// be final in their pattern list), and default-value (assignment) wrappers.
// Grounded directly on RSLint's pat.rs: `pattern`, `opt_binding_identifier`,
// `binding_identifier`, `binding_element`, `array_binding_pattern`, and
// `object_binding_pattern`/`object_binding_prop`, translated into this
// grammar's marker/event API in place of pat.rs's direct node-builder calls.

// ParsePattern parses a single binding target: an identifier, an array
// pattern, or an object pattern. It does not consume a trailing default
// value — parameters and array pattern elements use ParseBindingElement
// for that, and a variable declarator parses its own `= init` after it.
func ParsePattern(p *Parser) CompletedMarker {
	switch {
	case p.At(LBrack):
		return parseArrayPattern(p)
	case p.At(LBrace):
		return parseObjectPattern(p)
	default:
		return parseSinglePattern(p)
	}
}

func parseSinglePattern(p *Parser) CompletedMarker {
	m := p.Start()
	if p.At(Ident) || p.Current().IsContextualKeyword() {
		span := p.CurrentSpan()
		text := p.CurrentText()
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		checkBindingName(p, span, text)
	} else {
		p.ErrRecover(Expected(p.CurrentSpan(), "binding identifier", p.Current()), PatternStartSet.Union(StmtStartSet))
	}
	return m.Complete(p, SinglePattern)
}

// checkBindingName reports the illegal-context diagnostics spec §4.4
// requires of an otherwise-valid binding name, without affecting what got
// parsed: `yield` is reserved as a binding name inside a generator, and
// `eval`/`arguments` are reserved in strict-mode code.
func checkBindingName(p *Parser, span Span, text string) {
	if text == "yield" && p.state.inGenerator {
		p.Error(IllegalContext(span, "`yield` cannot be used as a binding name inside a generator"))
	}
	if p.state.strict && (text == "eval" || text == "arguments") {
		p.Error(IllegalContext(span, "`"+text+"` cannot be used as a binding name in strict mode"))
	}
}

// ParseBindingElement parses a pattern optionally followed by `= default`,
// used for parameter-list and array-pattern elements; with a default, the
// result is an AssignPattern wrapping the pattern and the default value.
func ParseBindingElement(p *Parser) CompletedMarker {
	pat := ParsePattern(p)
	p.Eat(Question) // optional-parameter marker in the gradual-type extension
	if p.At(Colon) {
		ParseTypeAnnotation(p)
	}
	if !p.At(Eq) {
		return pat
	}
	m := pat.Precede(p)
	p.Expect(Eq)
	ParseAssignExpr(p)
	return m.Complete(p, AssignPattern)
}

func parseArrayPattern(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrack)
	for !p.At(RBrack) && !p.AtEnd() {
		if p.At(Comma) {
			p.BumpAny() // elision
			continue
		}
		if p.At(Dot3) {
			rm := p.Start()
			p.Expect(Dot3)
			ParsePattern(p)
			rm.Complete(p, RestPattern)
			break // rest element must be last
		}
		ParseBindingElement(p)
		if !p.At(RBrack) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrack)
	return m.Complete(p, ArrayPattern)
}

func parseObjectPattern(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		if p.At(Dot3) {
			rm := p.Start()
			p.Expect(Dot3)
			parseSinglePattern(p)
			rm.Complete(p, RestPattern)
			break // rest element must be last
		}
		parseObjectPatternProp(p)
		if !p.At(RBrace) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrace)
	return m.Complete(p, ObjectPattern)
}

func parseObjectPatternProp(p *Parser) {
	m := p.Start()
	if p.At(LBrack) {
		span := p.CurrentSpan()
		p.Expect(LBrack)
		ParseAssignExpr(p)
		p.Expect(RBrack)
		p.Error(IllegalContext(span, "a computed key cannot appear in an object binding pattern"))
	} else {
		parsePropertyName(p)
	}

	switch {
	case p.Eat(Colon):
		pat := ParsePattern(p)
		if p.At(Eq) {
			dm := pat.Precede(p)
			p.Expect(Eq)
			ParseAssignExpr(p)
			dm.Complete(p, AssignPattern)
		}
		m.Complete(p, KeyValuePattern)
	case p.At(Eq):
		p.Expect(Eq)
		ParseAssignExpr(p)
		m.Complete(p, AssignPattern)
	default:
		m.Complete(p, KeyValuePattern)
	}
}
