package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/quincysky/nameChecker/internal/decl"
)

func WriteJSON(runID, outDir string, run *decl.Run) (string, error) {
	path := filepath.Join(outDir, runID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return "", err
	}
	return path, nil
}

// ReadJSON loads a previously written report so it can be diffed
// without any stored state.
func ReadJSON(path string) (decl.Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return decl.Run{}, err
	}
	var run decl.Run
	if err := json.Unmarshal(b, &run); err != nil {
		return decl.Run{}, err
	}
	decl.Link(run.Roots)
	return run, nil
}
