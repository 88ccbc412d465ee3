package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quincysky/nameChecker/internal/decl"
)

type diffPayload struct {
	BaseID  string         `json:"base_id"`
	HeadID  string         `json:"head_id"`
	Summary diffSummary    `json:"summary"`
	New     []diffAdvisory `json:"new"`
	Removed []diffAdvisory `json:"removed"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
}

type diffAdvisory struct {
	Severity   string `json:"severity"`
	Convention string `json:"convention,omitempty"`
	Kind       string `json:"kind"`
	Path       string `json:"path"`
	Message    string `json:"message"`
}

// WriteDiffJSON compares the advisories of two report files and
// writes the added/removed sets. Identity of an advisory is its
// node path plus message; the checker itself stores nothing between
// runs, so both sides come from report files the caller kept.
func WriteDiffJSON(baseID, headID, outDir string, base, head *decl.Run) (string, error) {
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	bm := map[string]decl.Advisory{}
	hm := map[string]decl.Advisory{}
	for _, a := range base.Advisories {
		bm[keyOf(a)] = a
	}
	for _, a := range head.Advisories {
		hm[keyOf(a)] = a
	}

	var added []diffAdvisory
	var removed []diffAdvisory
	for k, ha := range hm {
		if _, ok := bm[k]; !ok {
			added = append(added, asDiff(ha))
		}
	}
	for k, ba := range bm {
		if _, ok := hm[k]; !ok {
			removed = append(removed, asDiff(ba))
		}
	}

	// stable sort
	sort.Slice(added, func(i, j int) bool { return added[i].Path+added[i].Message < added[j].Path+added[j].Message })
	sort.Slice(removed, func(i, j int) bool { return removed[i].Path+removed[i].Message < removed[j].Path+removed[j].Message })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
		},
		New:     added,
		Removed: removed,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

func keyOf(a decl.Advisory) string {
	sb := strings.Builder{}
	sb.WriteString(a.Path)
	sb.WriteByte('|')
	sb.WriteString(a.Message)
	return sb.String()
}

func asDiff(a decl.Advisory) diffAdvisory {
	return diffAdvisory{
		Severity:   string(a.Severity),
		Convention: a.Convention,
		Kind:       string(a.Kind),
		Path:       a.Path,
		Message:    a.Message,
	}
}
