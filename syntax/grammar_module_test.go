package syntax

import "testing"

func TestImportForms(t *testing.T) {
	tests := []string{
		`import "side-effect-only";`,
		`import def from "mod";`,
		`import { a, b as c } from "mod";`,
		`import * as ns from "mod";`,
		`import def, { a } from "mod";`,
		`import def, * as ns from "mod";`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			root, diags := ParseModule(input)
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
			if root.FindFirst(ImportDecl) == nil {
				t.Error("expected an ImportDecl")
			}
		})
	}
}

func TestExportForms(t *testing.T) {
	tests := []string{
		`export default function () {}`,
		`export default class {}`,
		`export default 1 + 2;`,
		`export { a, b as c };`,
		`export * from "mod";`,
		`export * as ns from "mod";`,
		`export const x = 1;`,
		`export function f() {}`,
		`export class C {}`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, diags := ParseModule(input)
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestModuleItemStartSetRecoversFromGarbage(t *testing.T) {
	_, diags := ParseModule("@@@ import x from \"mod\";")
	if len(diags) == 0 {
		t.Error("expected a diagnostic for the malformed leading tokens")
	}
	// The parser should still find the well-formed import after recovery.
	root, _ := ParseModule("@@@ import x from \"mod\";")
	if root.FindFirst(ImportDecl) == nil {
		t.Error("expected recovery to still find the trailing ImportDecl")
	}
}

func TestExportTypeAlias(t *testing.T) {
	root, diags := ParseModule("export type Id = string;")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if root.FindFirst(TsTypeAliasDecl) == nil {
		t.Error("expected a TsTypeAliasDecl under the export")
	}
}
