// Command astgen renders syntax/ast_gen.go from schema.yaml.
//
// Usage:
//
//	astgen -schema schema.yaml -out syntax/ast_gen.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edgewright/esparse/internal/astgen"
)

func main() {
	schemaPath := flag.String("schema", "schema.yaml", "path to the AST schema")
	outPath := flag.String("out", "syntax/ast_gen.go", "output path for the generated accessors")
	flag.Parse()

	if err := run(*schemaPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "astgen: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, outPath string) error {
	s, err := astgen.Load(schemaPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(s.Render()), 0o644)
}
