package check

import "github.com/quincysky/nameChecker/internal/decl"

// Convention is the naming pattern expected for a declaration's role.
type Convention string

const (
	UpperCamelCase    Convention = "UpperCamelCase"
	LowerCamelCase    Convention = "lowerCamelCase"
	AllCapsUnderscore Convention = "ALL_CAPS_WITH_UNDERSCORES"
	NoConvention      Convention = ""
)

// ConventionFor derives the convention a node's name is held to.
// It is computed per node and never stored on the tree.
func ConventionFor(n *decl.Node) Convention {
	switch {
	case n.Kind.IsType():
		return UpperCamelCase
	case n.Kind == decl.KindMethod:
		return LowerCamelCase
	case n.Kind.IsVariable():
		if n.Kind == decl.KindEnumConstant || IsHeuristicallyConstant(n) {
			return AllCapsUnderscore
		}
		return LowerCamelCase
	}
	return NoConvention
}

// ConventionInfo describes one convention for metadata surfaces.
type ConventionInfo struct {
	ID        Convention
	Summary   string
	AppliesTo []decl.Kind
}

// Conventions lists every convention together with the declaration
// kinds it applies to. The applies-to sets are derived by asking
// ConventionFor, so the inventory cannot drift from the dispatch.
func Conventions() []ConventionInfo {
	infos := []ConventionInfo{
		{ID: UpperCamelCase, Summary: "Camel case starting with an uppercase letter; no consecutive capitals."},
		{ID: LowerCamelCase, Summary: "Camel case starting with a lowercase letter; no consecutive capitals."},
		{ID: AllCapsUnderscore, Summary: "Uppercase letters, digits, and single underscores, starting with a letter."},
	}
	byID := map[Convention]*ConventionInfo{}
	for i := range infos {
		byID[infos[i].ID] = &infos[i]
	}

	kinds := []decl.Kind{
		decl.KindClass, decl.KindInterface, decl.KindEnum,
		decl.KindMethod, decl.KindConstructor,
		decl.KindField, decl.KindEnumConstant, decl.KindParameter, decl.KindLocalVariable,
	}
	for _, k := range kinds {
		if c := ConventionFor(&decl.Node{Kind: k}); c != NoConvention {
			byID[c].AppliesTo = append(byID[c].AppliesTo, k)
		}
	}

	// A field can also be held to the constant convention when its
	// context makes it one (interface member, public static final,
	// known constant value).
	iface := &decl.Node{Kind: decl.KindInterface, Children: []*decl.Node{{Kind: decl.KindField}}}
	decl.Link([]*decl.Node{iface})
	if c := ConventionFor(iface.Children[0]); c != NoConvention {
		byID[c].AppliesTo = append(byID[c].AppliesTo, decl.KindField)
	}
	return infos
}

// Sink receives advisories as the scanner produces them. Emission is
// append-style and immediate; the checker keeps no history.
type Sink interface {
	Report(decl.Advisory)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(decl.Advisory)

func (f SinkFunc) Report(a decl.Advisory) { f(a) }

// Collector is a Sink that accumulates advisories in emission order.
type Collector struct {
	Advisories []decl.Advisory
}

func (c *Collector) Report(a decl.Advisory) {
	c.Advisories = append(c.Advisories, a)
}

// Evaluate runs a full traversal over the run's roots and returns
// the advisories in the order they were emitted.
func Evaluate(run *decl.Run) []decl.Advisory {
	var c Collector
	s := &Scanner{Sink: &c}
	s.CheckAll(run.Roots)
	return c.Advisories
}
