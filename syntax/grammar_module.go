package syntax

// This file implements spec §4.4's module grammar: import declarations
// (default, named, namespace, and side-effect-only forms) and export
// declarations (named, default, and wildcard re-export). Grounded on
// RSLint's module-item productions, adapted to this grammar's marker API.

// ParseImportDecl parses an import declaration.
func ParseImportDecl(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Import)

	if p.At(Str) {
		p.BumpAny()
		eatSemicolon(p)
		return m.Complete(p, ImportDecl)
	}

	if p.At(Ident) || p.Current().IsContextualKeyword() {
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		if p.At(Comma) {
			p.Expect(Comma)
		} else {
			p.Expect(From)
			p.Expect(Str)
			eatSemicolon(p)
			return m.Complete(p, ImportDecl)
		}
	}

	switch {
	case p.At(Star):
		wm := p.Start()
		p.Expect(Star)
		p.Expect(As)
		nm := p.Start()
		p.BumpAny()
		nm.Complete(p, Name)
		wm.Complete(p, WildcardImport)
	case p.At(LBrace):
		parseNamedImports(p)
	default:
		p.Unexpected()
	}

	p.Expect(From)
	p.Expect(Str)
	eatSemicolon(p)
	return m.Complete(p, ImportDecl)
}

func parseNamedImports(p *Parser) {
	m := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		parseSpecifier(p, true)
		if !p.At(RBrace) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrace)
	m.Complete(p, NamedImports)
}

func parseSpecifier(p *Parser, isImport bool) {
	m := p.Start()
	nm := p.Start()
	if p.Current() == Ident || p.Current().IsKeyword() || p.Current().IsContextualKeyword() {
		p.BumpAny()
	} else {
		p.Unexpected()
	}
	nm.Complete(p, Name)
	if p.Eat(As) {
		am := p.Start()
		p.BumpAny()
		am.Complete(p, Name)
	}
	m.Complete(p, Specifier)
	_ = isImport
}

// ParseExportDecl parses an export declaration.
func ParseExportDecl(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(Export)

	if p.Eat(Default) {
		switch {
		case p.At(Function) || (p.At(Async) && p.Nth(1) == Function):
			isAsync := p.At(Async)
			k := 1
			if isAsync {
				k = 2
			}
			if p.Nth(k) == Star {
				k++
			}
			if p.Nth(k) == LParen {
				parseFunctionExpr(p) // anonymous: `export default function () {}`
			} else {
				parseFnDecl(p, isAsync)
			}
		case p.At(Class):
			ParseClassDecl(p)
		default:
			ParseAssignExpr(p)
			eatSemicolon(p)
		}
		return m.Complete(p, ExportDefaultDecl)
	}

	switch {
	case p.At(Star):
		p.Expect(Star)
		if p.Eat(As) {
			nm := p.Start()
			p.BumpAny()
			nm.Complete(p, Name)
		}
		p.Expect(From)
		p.Expect(Str)
		eatSemicolon(p)
		return m.Complete(p, ExportWildcard)
	case p.At(LBrace):
		parseNamedExports(p)
		if p.Eat(From) {
			p.Expect(Str)
		}
		eatSemicolon(p)
		return m.Complete(p, ExportNamed)
	case p.At(Var) || p.At(Const) || p.At(Let):
		parseVarDeclStmt(p)
		return m.Complete(p, ExportDecl)
	case p.At(Function) || (p.At(Async) && p.Nth(1) == Function):
		isAsync := p.Eat(Async)
		parseFnDecl(p, isAsync)
		return m.Complete(p, ExportDecl)
	case p.At(Class):
		ParseClassDecl(p)
		return m.Complete(p, ExportDecl)
	case p.At(Interface):
		parseInterfaceDecl(p)
		return m.Complete(p, ExportDecl)
	case p.At(Ident) && p.CurrentText() == "type" && (p.Nth(1) == Ident || p.Nth(1).IsContextualKeyword()):
		parseTypeAliasDecl(p)
		return m.Complete(p, ExportDecl)
	default:
		p.ErrRecover(Expected(p.CurrentSpan(), "declaration or `{`", p.Current()), StmtStartSet)
		return m.Complete(p, ExportDecl)
	}
}

func parseNamedExports(p *Parser) {
	m := p.Start()
	p.Expect(LBrace)
	for !p.At(RBrace) && !p.AtEnd() {
		parseSpecifier(p, false)
		if !p.At(RBrace) {
			p.Expect(Comma)
		}
	}
	p.Expect(RBrace)
	m.Complete(p, NamedImports)
}
