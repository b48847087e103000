package astgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchema(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesNodesAndEnums(t *testing.T) {
	path := writeSchema(t, `
nodes:
  - kind: BinExpr
    name: BinExpr
    fields:
      - name: Left
        cardinality: one
      - name: Right
        cardinality: one
      - name: Operator
        token: true
enums:
  - name: Expr
    variants: [BinExpr, Literal, NameRef]
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if len(s.Nodes) != 1 {
		t.Fatalf("Nodes has %d entries, want 1", len(s.Nodes))
	}
	node := s.Nodes[0]
	if node.Kind != "BinExpr" || node.Name != "BinExpr" {
		t.Errorf("node = %+v, want Kind/Name = BinExpr", node)
	}
	if len(node.Fields) != 3 {
		t.Fatalf("Fields has %d entries, want 3", len(node.Fields))
	}
	if !node.Fields[2].Token {
		t.Error("Operator field should have Token = true")
	}
	if len(s.Enums) != 1 || s.Enums[0].Name != "Expr" {
		t.Fatalf("Enums = %+v, want one entry named Expr", s.Enums)
	}
	if len(s.Enums[0].Variants) != 3 {
		t.Errorf("Variants has %d entries, want 3", len(s.Enums[0].Variants))
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a nonexistent path")
	}
}

func TestLoadMalformedYAMLIsError(t *testing.T) {
	path := writeSchema(t, "nodes: [not, valid: yaml")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestRenderEmitsPackageHeaderAndHelpers(t *testing.T) {
	s := &Schema{}
	out := s.Render()
	if !strings.Contains(out, "package syntax") {
		t.Error("Render() output should declare package syntax")
	}
	if !strings.Contains(out, "func isSignificantLeaf(") {
		t.Error("Render() output should include the isSignificantLeaf helper")
	}
	if !strings.Contains(out, "func nonLeafChildren(") {
		t.Error("Render() output should include the nonLeafChildren helper")
	}
}

func TestRenderTokenField(t *testing.T) {
	s := &Schema{Nodes: []NodeDef{{
		Kind: "UnaryExpr", Name: "UnaryExpr",
		Fields: []FieldDef{{Name: "Operator", Token: true}},
	}}}
	out := s.Render()
	want := "func (n *UnaryExprNode) Operator() *Node { return firstSignificantLeaf(n.node) }"
	if !strings.Contains(out, want) {
		t.Errorf("Render() output missing token accessor:\n%s", out)
	}
}

func TestRenderChildKindFieldSingular(t *testing.T) {
	s := &Schema{Nodes: []NodeDef{{
		Kind: "ArrowExpr", Name: "ArrowExpr",
		Fields: []FieldDef{{Name: "Params", ChildKind: "ParameterList"}},
	}}}
	out := s.Render()
	want := "func (n *ArrowExprNode) Params() *Node { return n.node.FirstChildOfKind(ParameterList) }"
	if !strings.Contains(out, want) {
		t.Errorf("Render() output missing FirstChildOfKind accessor:\n%s", out)
	}
}

func TestRenderChildKindFieldMany(t *testing.T) {
	s := &Schema{Nodes: []NodeDef{{
		Kind: "ObjectExpr", Name: "ObjectExpr",
		Fields: []FieldDef{{Name: "Members", ChildKind: "Method", Cardinality: "many"}},
	}}}
	out := s.Render()
	want := "func (n *ObjectExprNode) Members() []*Node { return n.node.ChildrenOfKind(Method) }"
	if !strings.Contains(out, want) {
		t.Errorf("Render() output missing ChildrenOfKind accessor:\n%s", out)
	}
}

func TestRenderPositionalFieldSingular(t *testing.T) {
	s := &Schema{Nodes: []NodeDef{{
		Kind: "BinExpr", Name: "BinExpr",
		Fields: []FieldDef{{Name: "Left"}, {Name: "Right"}},
	}}}
	out := s.Render()
	if !strings.Contains(out, "func (n *BinExprNode) Left() *Node {") {
		t.Errorf("Render() output missing positional Left accessor:\n%s", out)
	}
	if !strings.Contains(out, "kids[1]") {
		t.Errorf("Render() output should index the second positional field at kids[1]:\n%s", out)
	}
}

func TestRenderPositionalFieldMany(t *testing.T) {
	s := &Schema{Nodes: []NodeDef{{
		Kind: "ArrayExpr", Name: "ArrayExpr",
		Fields: []FieldDef{{Name: "Elements", Cardinality: "many"}},
	}}}
	out := s.Render()
	want := "func (n *ArrayExprNode) Elements() []*Node { return nonLeafChildren(n.node) }"
	if !strings.Contains(out, want) {
		t.Errorf("Render() output missing positional many accessor:\n%s", out)
	}
}
