package syntax

// state is the parser's context-flag bag (spec §4.3, "Parser state").
// Productions that enter a new context (function body, loop, switch,
// strict-mode code) save the old state, mutate a copy, and restore it on
// the way out — never flipping a flag without returning it. Modeled on
// the original's p.state.* fields (pat.rs: in_generator, in_async, strict,
// allow_object_expr).
type state struct {
	inFunction bool
	inAsync    bool
	inGenerator bool
	inLoop     bool
	inSwitch   bool
	inClassCtor bool

	// strict, once set true by a "use strict" directive prologue or by
	// being inside a class body (always strict), never reverts to false
	// within the same function — but a nested function starts from
	// whatever its enclosing context set.
	strict bool

	// allowObjectExpr is false while speculatively parsing something that
	// could be an arrow-function parameter list or a statement starting
	// with `{` that must be a block, not an object literal.
	allowObjectExpr bool

	// noIn suppresses `in` as a binary operator while parsing the
	// init-clause of a C-style for loop, so `for (a in b)` can be
	// recognized as a for-in statement instead of an expression.
	noIn bool

	// gradualTypes gates the optional TS_*-style type grammar (spec §4.4:
	// "entered only in contexts where the language extension allows it").
	// The grammar still parses a type annotation structurally when this is
	// false, so token consumption never desyncs from the shape of enabled
	// parsing; it adds a diagnostic instead, the project-config analogue
	// of a feature flag rather than a grammar fork.
	gradualTypes bool
}

// defaultState is the state a fresh Script/Module/expression parse starts
// from.
func defaultState() state {
	return state{allowObjectExpr: true, gradualTypes: true}
}

// with returns a copy of s with f applied, used at call sites that enter a
// new context: `p.withState(func(s *state) { s.inLoop = true }, body)`.
func (s state) with(f func(*state)) state {
	f(&s)
	return s
}
