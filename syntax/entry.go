package syntax

// This file implements the package's entry points. Each is total: it never
// panics and always returns a tree (possibly containing Error nodes) plus
// whatever diagnostics were collected, so callers never need a recovery
// path of their own. Shaped after a top-level Parse/ParseCode pair
// generalized from a two-mode (markup, code) grammar down to this
// grammar's script/module/expression entry points.

// ParseScript parses source as a non-module Script: statements, including
// function and class declarations, but no import/export declarations.
func ParseScript(source string) (*Node, []*Diagnostic) {
	return ParseScriptWithOptions(source, DefaultOptions())
}

// ParseModule parses source as a Module: statements plus import/export
// declarations, always treated as strict-mode code.
func ParseModule(source string) (*Node, []*Diagnostic) {
	return ParseModuleWithOptions(source, DefaultOptions())
}

// ParseExpression parses source as a single Expression, trailing
// whitespace and comments permitted, any trailing non-trivia content
// reported as an error without aborting the parse.
func ParseExpression(source string) (*Node, []*Diagnostic) {
	return ParseExpressionWithOptions(source, DefaultOptions())
}

// Options configures a parse beyond the three fixed entry-point
// signatures, for project-level settings loaded from outside the package
// (cmd/esparse's .esparse.toml).
type Options struct {
	// GradualTypes enables the optional TS_*-style type grammar. True by
	// default.
	GradualTypes bool
}

// DefaultOptions returns the options every ParseScript/ParseModule/
// ParseExpression call uses.
func DefaultOptions() Options {
	return Options{GradualTypes: true}
}

// ParseScriptWithOptions is ParseScript with explicit Options.
func ParseScriptWithOptions(source string, opts Options) (*Node, []*Diagnostic) {
	p := NewParser(source)
	p.state.gradualTypes = opts.GradualTypes
	m := p.Start()
	parseDirectivePrologue(p, NewKindSet())
	ParseStatementList(p, NewKindSet())
	m.Complete(p, Script)
	return p.Finish()
}

// ParseModuleWithOptions is ParseModule with explicit Options.
func ParseModuleWithOptions(source string, opts Options) (*Node, []*Diagnostic) {
	p := NewParser(source)
	p.state.strict = true
	p.state.gradualTypes = opts.GradualTypes
	m := p.Start()
	ParseStatementList(p, NewKindSet())
	m.Complete(p, Module)
	return p.Finish()
}

// ParseExpressionWithOptions is ParseExpression with explicit Options.
func ParseExpressionWithOptions(source string, opts Options) (*Node, []*Diagnostic) {
	p := NewParser(source)
	p.state.gradualTypes = opts.GradualTypes
	m := p.Start()
	ParseExpr(p)
	if !p.AtEnd() {
		p.ErrRecover(Unexpected(p.CurrentSpan(), p.Current()), NewKindSet())
	}
	m.Complete(p, Script)
	return p.Finish()
}
