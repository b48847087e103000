package syntax

import "testing"

func TestRestElementMustBeLastInArrayPattern(t *testing.T) {
	_, diags := ParseScript("let [...rest, x] = arr;")
	if len(diags) == 0 {
		t.Error("expected a diagnostic: a rest element followed by more elements is malformed")
	}
}

func TestRestElementMustBeLastInObjectPattern(t *testing.T) {
	_, diags := ParseScript("let { ...rest, x } = obj;")
	if len(diags) == 0 {
		t.Error("expected a diagnostic: a rest element followed by more properties is malformed")
	}
}

func TestArrayPatternWithDefaultsAndRest(t *testing.T) {
	root, diags := ParseScript("let [a = 1, b, ...rest] = arr;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if root.FindFirst(RestPattern) == nil {
		t.Error("expected a RestPattern")
	}
	if root.FindFirst(AssignPattern) == nil {
		t.Error("expected an AssignPattern for the default value")
	}
}

func TestFunctionParameterDestructuring(t *testing.T) {
	_, diags := ParseScript("function f({ a, b: [c] }, [d, e]) {}")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestOptionalParameterMarker(t *testing.T) {
	root, diags := ParseScript("function f(a?: number) {}")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if root.FindFirst(TsTypeAnnotation) == nil {
		t.Error("expected a TsTypeAnnotation on the optional parameter")
	}
}

func TestYieldIsAnOrdinaryBindingNameOutsideAGenerator(t *testing.T) {
	root, diags := ParseScript("let yield = 5;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics outside a generator: %v", diags)
	}
	pat := root.FindFirst(SinglePattern)
	if pat == nil {
		t.Fatal("expected a SinglePattern")
	}
	if name := pat.FindFirst(Name); name == nil || firstSignificantLeaf(name).Text() != "yield" {
		t.Errorf("pattern name = %v, want \"yield\"", name)
	}
}

func TestYieldAsBindingNameInsideGeneratorIsFlagged(t *testing.T) {
	root, diags := ParseScript("function*foo(){ let yield = 5; }")
	pat := root.FindFirst(SinglePattern)
	if pat == nil {
		t.Fatal("expected a SinglePattern")
	}
	if name := pat.FindFirst(Name); name == nil || firstSignificantLeaf(name).Text() != "yield" {
		t.Errorf("pattern name = %v, want \"yield\"", name)
	}
	if len(diags) != 1 {
		t.Errorf("diags = %v, want exactly 1 illegal-context diagnostic", diags)
	}
}

func TestAwaitIsAnOrdinaryBindingNameInAnOrdinaryFunction(t *testing.T) {
	_, diags := ParseScript("function f(){ let await = 1; }")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestUseStrictDirectivePrologueEnablesStrictMode(t *testing.T) {
	_, diags := ParseScript(`"use strict"; let eval = 1;`)
	if len(diags) == 0 {
		t.Error("expected an illegal-context diagnostic for `eval` as a binding name after a \"use strict\" directive")
	}
}

func TestUseStrictOnlyRecognizedAsLeadingDirective(t *testing.T) {
	// Once a non-directive statement appears, a later bare string literal is
	// just an expression statement, not a directive.
	_, diags := ParseScript(`foo(); "use strict"; let eval = 1;`)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestEvalAsBindingNameInStrictModeIsFlagged(t *testing.T) {
	// A module is always strict-mode code (spec §4.4), so this is valid
	// ground for the check without relying on a directive prologue.
	_, diags := ParseModule("let eval = 1;")
	if len(diags) == 0 {
		t.Error("expected an illegal-context diagnostic for `eval` as a binding name in strict mode")
	}
}

func TestEvalAsBindingNameInsideClassBodyIsFlagged(t *testing.T) {
	// Class bodies are always strict-mode code (spec §4.4).
	_, diags := ParseScript("class C { m() { let arguments = 1; } }")
	if len(diags) == 0 {
		t.Error("expected an illegal-context diagnostic for `arguments` as a binding name inside a class body")
	}
}

func TestComputedKeyInObjectBindingPatternIsFlagged(t *testing.T) {
	root, diags := ParseScript("let { [k]: v } = obj;")
	if root.FindFirst(ObjectPattern) == nil {
		t.Fatal("expected an ObjectPattern to still be built")
	}
	if len(diags) == 0 {
		t.Error("expected an illegal-context diagnostic for a computed key in a binding pattern")
	}
}
