package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/quincysky/nameChecker/internal/decl"
)

func WriteHTML(runID, outDir string, run *decl.Run) (string, error) {
	path := filepath.Join(outDir, runID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Per-convention totals
	byConvention := map[string]int{}
	for _, a := range run.Advisories {
		key := a.Convention
		if key == "" {
			key = "constructor confusion"
		}
		byConvention[key]++
	}

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(runID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	fmt.Fprintf(f, "<h1>nameChecker report – <span class='mono'>%s</span></h1>", html.EscapeString(runID))
	fmt.Fprintf(f, "<p>Source: <span class='mono'>%s</span> &nbsp; Roots: %d &nbsp; Advisories: %d</p>",
		html.EscapeString(run.Source), len(run.Roots), len(run.Advisories))

	if len(byConvention) > 0 {
		fmt.Fprint(f, "<h2>By Convention</h2><table><tr><th>Convention</th><th>Advisories</th></tr>")
		for _, key := range []string{"UpperCamelCase", "lowerCamelCase", "ALL_CAPS_WITH_UNDERSCORES", "constructor confusion"} {
			if n := byConvention[key]; n > 0 {
				fmt.Fprintf(f, "<tr><td>%s</td><td>%d</td></tr>", html.EscapeString(key), n)
			}
		}
		fmt.Fprint(f, "</table>")
	}

	// All advisories, in emission (traversal) order
	if len(run.Advisories) > 0 {
		fmt.Fprint(f, "<h2>All Advisories</h2><table><tr><th>Severity</th><th>Kind</th><th>Path</th><th>Message</th></tr>")
		for _, a := range run.Advisories {
			fmt.Fprintf(f, "<tr><td>%s</td><td>%s</td><td class='mono'>%s</td><td>%s</td></tr>",
				html.EscapeString(string(a.Severity)),
				html.EscapeString(string(a.Kind)),
				html.EscapeString(a.Path),
				html.EscapeString(a.Message),
			)
		}
		fmt.Fprint(f, "</table>")
	} else {
		fmt.Fprint(f, "<h2>All Advisories</h2><p class='dim'>Every checked name follows its convention.</p>")
	}

	fmt.Fprint(f, "</body></html>")
	return path, nil
}
