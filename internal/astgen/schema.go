// Package astgen loads the typed-AST schema (schema.yaml) and renders the
// generated accessor layer in syntax/ast_gen.go. It is not part of the
// parser's build or test path — ast_gen.go is checked in as a generated
// artifact — but is kept here so the schema's shape stays traceable to the
// code it produces.
package astgen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema mirrors schema.yaml's top-level shape.
type Schema struct {
	Nodes []NodeDef `yaml:"nodes"`
	Enums []EnumDef `yaml:"enums"`
}

// NodeDef describes one CST node kind and the typed wrapper generated for
// it.
type NodeDef struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes a single accessor on a generated wrapper. ChildKind
// empty with Token false means "any node-shaped child, found positionally"
// — the shape a field takes when its declared type is itself a sum type
// (Stmt, Expr, Pattern) that schema.yaml can't name as a single Kind.
type FieldDef struct {
	Name        string `yaml:"name"`
	ChildKind   string `yaml:"childKind"`
	Token       bool   `yaml:"token"`
	Cardinality string `yaml:"cardinality"`
}

// EnumDef describes one sum-type family (Stmt, Expr, Pattern) and the node
// kinds that belong to it.
type EnumDef struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

// Load reads and parses the schema at path.
func Load(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return &s, nil
}

// Render emits the full contents of syntax/ast_gen.go for s.
//
// This is a sketch of the real template-driven emission: the checked-in
// ast_gen.go adds richer Expr/Stmt/Pattern-typed accessors by hand for
// fields whose element kind is itself a sum type, where this renderer
// falls back to returning the bare *Node and leaving the cast to the
// caller. Re-running astgen over schema.yaml would not byte-for-byte
// reproduce the checked-in file for that reason.
func (s *Schema) Render() string {
	var b strings.Builder
	fmt.Fprintln(&b, "// Code generated from schema.yaml by internal/astgen. DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package syntax")
	fmt.Fprintln(&b)
	writeHelpers(&b)
	for _, n := range s.Nodes {
		writeNodeWrapper(&b, n)
	}
	return b.String()
}

func writeHelpers(b *strings.Builder) {
	fmt.Fprintln(b, `// isSignificantLeaf reports whether n is a token leaf that isn't trivia.
func isSignificantLeaf(n *Node) bool {
	return n.IsLeaf() && !n.Kind().IsTrivia()
}

// firstSignificantLeaf returns the first non-trivia leaf child of n, or
// nil if it has none.
func firstSignificantLeaf(n *Node) *Node {
	for _, c := range n.Children() {
		if isSignificantLeaf(c) {
			return c
		}
	}
	return nil
}

// nonLeafChildren returns n's children that are themselves nodes.
func nonLeafChildren(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if !c.IsLeaf() {
			out = append(out, c)
		}
	}
	return out
}
`)
}

func writeNodeWrapper(b *strings.Builder, n NodeDef) {
	fmt.Fprintf(b, "type %sNode struct{ node *Node }\n\n", n.Name)
	fmt.Fprintf(b, "func (n *%sNode) ToUntyped() *Node { return n.node }\n\n", n.Name)

	positional := 0
	for _, f := range n.Fields {
		switch {
		case f.Token:
			fmt.Fprintf(b, "func (n *%sNode) %s() *Node { return firstSignificantLeaf(n.node) }\n\n", n.Name, f.Name)
		case f.ChildKind == "":
			writePositionalAccessor(b, n.Name, f, positional)
			positional++
		case f.Cardinality == "many":
			fmt.Fprintf(b, "func (n *%sNode) %s() []*Node { return n.node.ChildrenOfKind(%s) }\n\n", n.Name, f.Name, f.ChildKind)
		default:
			fmt.Fprintf(b, "func (n *%sNode) %s() *Node { return n.node.FirstChildOfKind(%s) }\n\n", n.Name, f.Name, f.ChildKind)
		}
	}
}

func writePositionalAccessor(b *strings.Builder, structName string, f FieldDef, index int) {
	if f.Cardinality == "many" {
		fmt.Fprintf(b, "func (n *%sNode) %s() []*Node { return nonLeafChildren(n.node) }\n\n", structName, f.Name)
		return
	}
	fmt.Fprintf(b, `func (n *%sNode) %s() *Node {
	kids := nonLeafChildren(n.node)
	if len(kids) <= %d {
		return nil
	}
	return kids[%d]
}

`, structName, f.Name, index, index)
}
