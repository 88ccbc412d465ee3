package perf

import (
	"fmt"
	"testing"

	"github.com/quincysky/nameChecker/internal/check"
	"github.com/quincysky/nameChecker/internal/decl"
)

// buildForest makes n classes with a handful of members each, about
// half of them violating a convention.
func buildForest(n int) []*decl.Node {
	var roots []*decl.Node
	for i := 0; i < n; i++ {
		roots = append(roots, &decl.Node{
			Name: fmt.Sprintf("Service%d", i),
			Kind: decl.KindClass,
			Children: []*decl.Node{
				{Name: "MAX_RETRIES", Kind: decl.KindField, Modifiers: decl.Modifiers{decl.ModPublic, decl.ModStatic, decl.ModFinal}},
				{Name: "RetryCount", Kind: decl.KindField},
				{Name: "getHTTPCode", Kind: decl.KindMethod},
				{Name: "handle", Kind: decl.KindMethod, Children: []*decl.Node{
					{Name: "request", Kind: decl.KindParameter},
				}},
			},
		})
	}
	decl.Link(roots)
	return roots
}

func BenchmarkCheck_Small(b *testing.B) {
	run := decl.Run{Roots: buildForest(100)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		advisories := check.Evaluate(&run)
		if len(advisories) == 0 {
			b.Fatal("expected advisories")
		}
	}
}
