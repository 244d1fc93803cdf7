package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// golangciConfig is the subset of .golangci.yml the linter honors.
type golangciConfig struct {
	Issues struct {
		MaxIssuesPerLinter int      `yaml:"max-issues-per-linter"`
		ExcludeDirs        []string `yaml:"exclude-dirs"`
		ExcludeFiles       []string `yaml:"exclude-files"`
	} `yaml:"issues"`
	Commentlint struct {
		ExportedTypes bool `yaml:"exported-types"`
	} `yaml:"commentlint"`
}

// exclusions decides which repo-relative paths are skipped.
type exclusions struct {
	dirs  []string
	files []*regexp.Regexp
}

// loadConfig reads the linter configuration; a missing file yields the zero config.
func loadConfig(path string) (golangciConfig, error) {
	var cfg golangciConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	return parseConfig(data, path)
}

// parseConfig decodes YAML config data.
func parseConfig(data []byte, path string) (golangciConfig, error) {
	var cfg golangciConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// newExclusions normalizes excluded dirs and compiles excluded file patterns.
func newExclusions(cfg golangciConfig) (exclusions, error) {
	var ex exclusions
	for _, d := range cfg.Issues.ExcludeDirs {
		d = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(d, "./")), "/")
		if d == "" {
			continue
		}
		ex.dirs = append(ex.dirs, filepath.ToSlash(d))
	}
	for _, p := range cfg.Issues.ExcludeFiles {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		rx, err := regexp.Compile(p)
		if err != nil {
			return exclusions{}, fmt.Errorf("invalid exclude regex %q: %w", p, err)
		}
		ex.files = append(ex.files, rx)
	}
	return ex, nil
}

// excluded reports whether a repo-relative slash path is skipped.
func (e exclusions) excluded(rel string) bool {
	for _, d := range e.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	for _, rx := range e.files {
		if rx.MatchString(rel) {
			return true
		}
	}
	return false
}
