package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quincysky/nameChecker/internal/decl"
)

const sampleJSON = `{
  "source": "Calculator.java",
  "declarations": [
    {
      "name": "Calculator",
      "kind": "CLASS",
      "children": [
        {"name": "MAX_VALUE", "kind": "FIELD", "modifiers": ["public", "static", "final"], "constant_value_known": true},
        {"name": "add", "kind": "METHOD"}
      ]
    }
  ]
}`

const sampleYAML = `source: Config.java
declarations:
  - name: Config
    kind: INTERFACE
    children:
      - name: x
        kind: FIELD
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestParse_MergesJSONAndYAMLDumps(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": sampleJSON,
		"b.yaml": sampleYAML,
	})

	run, diags := Parse(dir)
	if len(diags.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", diags.Warnings)
	}
	if run.IRVersion != decl.Version {
		t.Errorf("ir version = %q, want %q", run.IRVersion, decl.Version)
	}
	if len(run.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(run.Roots))
	}
	// WalkDir visits lexically: a.json before b.yaml.
	if run.Roots[0].Name != "Calculator" || run.Roots[1].Name != "Config" {
		t.Errorf("root order = [%s, %s]", run.Roots[0].Name, run.Roots[1].Name)
	}
}

func TestParse_LinksEnclosingPointers(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.json": sampleJSON})
	run, _ := Parse(dir)
	if len(run.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(run.Roots))
	}
	root := run.Roots[0]
	if root.EnclosingKind() != "" {
		t.Errorf("root enclosing kind = %q, want empty", root.EnclosingKind())
	}
	field := root.Children[0]
	if field.EnclosingKind() != decl.KindClass {
		t.Errorf("field enclosing kind = %q, want CLASS", field.EnclosingKind())
	}
	if !field.ConstantValueKnown {
		t.Error("constant_value_known flag lost in decoding")
	}
	if got := field.Path(); got != "Calculator.MAX_VALUE" {
		t.Errorf("field path = %q", got)
	}
}

func TestParse_BadFileBecomesWarning(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.json": sampleJSON,
		"bad.json":  "{not json at all",
	})
	run, diags := Parse(dir)
	if len(run.Roots) != 1 {
		t.Fatalf("expected the good file to load, got %d roots", len(run.Roots))
	}
	if len(diags.Warnings) != 1 {
		t.Fatalf("expected 1 warning for the bad file, got %v", diags.Warnings)
	}
}

func TestParse_EmptyDirWarns(t *testing.T) {
	run, diags := Parse(t.TempDir())
	if len(run.Roots) != 0 {
		t.Fatalf("expected no roots, got %d", len(run.Roots))
	}
	if len(diags.Warnings) == 0 {
		t.Fatal("expected a warning for an empty input directory")
	}
}

func TestParse_IgnoresOtherExtensions(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json":     sampleJSON,
		"notes.txt":  "irrelevant",
		"Makefile":   "all:",
		"legacy.xml": "<declarations/>",
	})
	run, diags := Parse(dir)
	if len(run.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d (warnings: %v)", len(run.Roots), diags.Warnings)
	}
}
