package fuzz

import (
	"testing"

	"github.com/quincysky/nameChecker/internal/check"
	"github.com/quincysky/nameChecker/internal/decl"
)

// Fuzz the scanner with arbitrary names across every rule path to
// ensure it never panics, including on empty names and invalid
// UTF-8.
func FuzzCheckNoPanic(f *testing.F) {
	seeds := []string{
		"Parser",
		"doWork",
		"MAX_SIZE",
		"HTTPServer",
		"",
		"_",
		"__",
		"2fast",
		"żółty",
		"\xff\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, name string) {
		roots := []*decl.Node{
			{Name: name, Kind: decl.KindClass, Children: []*decl.Node{
				{Name: name, Kind: decl.KindField},
				{Name: name, Kind: decl.KindField, Modifiers: decl.Modifiers{decl.ModPublic, decl.ModStatic, decl.ModFinal}},
				{Name: name, Kind: decl.KindMethod},
			}},
			{Name: name, Kind: decl.KindInterface, Children: []*decl.Node{
				{Name: name, Kind: decl.KindField},
			}},
			{Name: name, Kind: decl.KindEnum, Children: []*decl.Node{
				{Name: name, Kind: decl.KindEnumConstant},
			}},
		}
		decl.Link(roots)
		run := decl.Run{Roots: roots}
		_ = check.Evaluate(&run) // we only assert "no panic"
	})
}
