// Package main runs the commentlint CLI.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type pkgInfo struct {
	Dir         string   `json:"Dir"`
	GoFiles     []string `json:"GoFiles"`
	TestGoFiles []string `json:"TestGoFiles"`
}

// main is the entrypoint for the comment linter CLI.
func main() {
	configPath := flag.String("config", ".golangci.yml", "golangci-lint config holding exclusions")
	types := flag.Bool("types", false, "Also require doc comments on exported types")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [packages]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Ensures every function has a doc comment. Defaults to ./...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	if err := lint(*configPath, patterns, *types); err != nil {
		fmt.Fprintf(os.Stderr, "commentlint: %v\n", err)
		os.Exit(1)
	}
}

// lint checks every file of the listed packages and prints the findings.
func lint(configPath string, patterns []string, types bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	rules, err := newExclusions(cfg)
	if err != nil {
		return err
	}
	pkgs, err := listPackages(patterns)
	if err != nil {
		return err
	}

	limit := cfg.Issues.MaxIssuesPerLinter
	opts := checkOptions{ExportedTypes: types || cfg.Commentlint.ExportedTypes}
	fset := token.NewFileSet()
	var findings []finding
	for _, file := range packageFiles(pkgs) {
		rel := filepath.ToSlash(relativePath(file))
		if rules.excluded(rel) || isGeneratedFile(file) {
			continue
		}
		f, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}
		findings = append(findings, checkFile(fset, f, opts)...)
	}

	if len(findings) == 0 {
		return nil
	}
	shown, truncated := truncate(findings, limit)
	for _, f := range shown {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", relativePath(f.pos.Filename), f.pos.Line, f.pos.Column, f.msg)
	}
	if truncated {
		fmt.Fprintf(os.Stderr, "commentlint: output truncated after %d issues (see %s)\n", limit, configPath)
	}
	return fmt.Errorf("%d issue(s)", len(findings))
}

// packageFiles returns the absolute source and test file paths of every package.
func packageFiles(pkgs []pkgInfo) []string {
	var out []string
	for _, pkg := range pkgs {
		for _, name := range pkg.GoFiles {
			out = append(out, filepath.Join(pkg.Dir, name))
		}
		for _, name := range pkg.TestGoFiles {
			out = append(out, filepath.Join(pkg.Dir, name))
		}
	}
	return out
}

// listPackages invokes `go list -json` for the provided patterns and returns the package metadata.
func listPackages(patterns []string) ([]pkgInfo, error) {
	args := append([]string{"list", "-json"}, patterns...)
	cmd := exec.Command("go", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	pkgs, decodeErr := decodePackages(stdout)
	waitErr := cmd.Wait()
	if decodeErr != nil {
		return nil, decodeErr
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return pkgs, nil
}

// decodePackages reads the concatenated JSON objects printed by `go list -json`.
func decodePackages(r io.Reader) ([]pkgInfo, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	var pkgs []pkgInfo
	for dec.More() {
		var info pkgInfo
		if err := dec.Decode(&info); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, info)
	}
	return pkgs, nil
}

// isGeneratedFile checks if the file starts with the standard "Code generated" header.
func isGeneratedFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for i := 0; i < 10 && scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.Contains(line, "Code generated") || strings.Contains(line, "DO NOT EDIT") {
			return true
		}
	}
	return false
}

// relativePath converts an absolute path to one relative to the repo root when possible.
func relativePath(path string) string {
	if rel, err := filepath.Rel(".", path); err == nil {
		return rel
	}
	return path
}
