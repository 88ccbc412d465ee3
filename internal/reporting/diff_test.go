package reporting

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/quincysky/nameChecker/internal/decl"
)

func adv(path, msg string) decl.Advisory {
	return decl.Advisory{
		Severity:   decl.SeverityWarning,
		Convention: "lowerCamelCase",
		Kind:       decl.KindField,
		Name:       path,
		Path:       path,
		Message:    msg,
	}
}

func TestWriteDiffJSON_AddedAndRemoved(t *testing.T) {
	base := decl.Run{ID: "base", Advisories: []decl.Advisory{
		adv("A.fixed", "name \"fixed\" should follow camelCase naming"),
		adv("A.kept", "name \"kept\" should follow camelCase naming"),
	}}
	head := decl.Run{ID: "head", Advisories: []decl.Advisory{
		adv("A.kept", "name \"kept\" should follow camelCase naming"),
		adv("B.fresh", "name \"fresh\" should follow camelCase naming"),
	}}

	outDir := t.TempDir()
	path, err := WriteDiffJSON("base", "head", outDir, &base, &head)
	if err != nil {
		t.Fatalf("WriteDiffJSON: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read diff: %v", err)
	}
	var payload struct {
		Summary struct {
			New     int `json:"new"`
			Removed int `json:"removed"`
		} `json:"summary"`
		New     []struct{ Path string } `json:"new"`
		Removed []struct{ Path string } `json:"removed"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		t.Fatalf("decode diff: %v", err)
	}
	if payload.Summary.New != 1 || payload.Summary.Removed != 1 {
		t.Fatalf("summary = %+v, want 1 new / 1 removed", payload.Summary)
	}
	if payload.New[0].Path != "B.fresh" {
		t.Errorf("new[0] = %q, want B.fresh", payload.New[0].Path)
	}
	if payload.Removed[0].Path != "A.fixed" {
		t.Errorf("removed[0] = %q, want A.fixed", payload.Removed[0].Path)
	}
}

func TestWriteJSON_ReadJSON_RoundTrip(t *testing.T) {
	run := decl.Run{
		ID: "run-rt",
		Roots: []*decl.Node{
			{Name: "Config", Kind: decl.KindInterface, Children: []*decl.Node{
				{Name: "x", Kind: decl.KindField},
			}},
		},
		Advisories: []decl.Advisory{adv("Config.x", "constant \"x\" should be all uppercase letters, digits, or underscores, starting with a letter")},
	}

	outDir := t.TempDir()
	path, err := WriteJSON(run.ID, outDir, &run)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.ID != run.ID || len(got.Advisories) != 1 || len(got.Roots) != 1 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	// ReadJSON must relink the tree so diffing loaded reports can
	// resolve enclosing context.
	if got.Roots[0].Children[0].EnclosingKind() != decl.KindInterface {
		t.Error("enclosing pointers not linked after ReadJSON")
	}
}
