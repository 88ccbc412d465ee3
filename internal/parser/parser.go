package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quincysky/nameChecker/internal/decl"
)

type Diagnostics struct {
	Warnings []string
}

// document is the on-disk shape a host front-end dumps: one file per
// compilation unit, holding the root declarations it resolved.
type document struct {
	Source       string       `json:"source" yaml:"source"`
	Declarations []*decl.Node `json:"declarations" yaml:"declarations"`
}

// Parse walks path for declaration dumps (.json, .yaml, .yml),
// decodes each into root nodes, and merges them into a single run
// with enclosing pointers linked. Files that fail to decode become
// warnings, never errors; checking what did load beats aborting.
func Parse(path string) (decl.Run, Diagnostics) {
	var run decl.Run
	run.IRVersion = decl.Version
	run.Source = filepath.Clean(path)
	diags := Diagnostics{}

	_ = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}
		roots, perr := parseFile(p, ext)
		if perr != nil {
			diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: %v", d.Name(), perr))
			return nil
		}
		run.Roots = append(run.Roots, roots...)
		return nil
	})

	if len(run.Roots) == 0 {
		diags.Warnings = append(diags.Warnings, "no declaration dumps found or no declarations decoded")
	}
	decl.Link(run.Roots)
	return run, diags
}

func parseFile(p, ext string) ([]*decl.Node, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	var doc document
	if ext == ".json" {
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	return doc.Declarations, nil
}
