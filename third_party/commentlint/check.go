package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

type finding struct {
	pos token.Position
	msg string
}

// checkOptions selects which declarations need doc comments.
type checkOptions struct {
	ExportedTypes bool
}

// checkFile returns a finding for every function body without a doc comment,
// plus undocumented exported types when requested.
func checkFile(fset *token.FileSet, f *ast.File, opts checkOptions) []finding {
	var out []finding
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Body == nil || hasDoc(d.Doc) {
				continue
			}
			out = append(out, finding{
				pos: fset.Position(d.Pos()),
				msg: fmt.Sprintf("missing doc comment for function %q", d.Name.Name),
			})
		case *ast.GenDecl:
			if !opts.ExportedTypes || d.Tok != token.TYPE {
				continue
			}
			for _, s := range d.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				// A lone type may carry its comment on the declaration.
				if hasDoc(ts.Doc) || (len(d.Specs) == 1 && hasDoc(d.Doc)) {
					continue
				}
				out = append(out, finding{
					pos: fset.Position(ts.Pos()),
					msg: fmt.Sprintf("missing doc comment for type %q", ts.Name.Name),
				})
			}
		}
	}
	return out
}

// hasDoc reports whether a comment group has non-blank text.
func hasDoc(cg *ast.CommentGroup) bool {
	return cg != nil && strings.TrimSpace(cg.Text()) != ""
}

// truncate caps findings at limit; zero means no limit.
func truncate(findings []finding, limit int) ([]finding, bool) {
	if limit <= 0 || len(findings) <= limit {
		return findings, false
	}
	return findings[:limit], true
}
