package check

import (
	"fmt"

	"github.com/quincysky/nameChecker/internal/decl"
)

// Scanner performs one depth-first pass over a declaration forest,
// applying the convention rule matching each node's role and
// forwarding every advisory to the Sink as it is found. Violations
// never stop the walk.
type Scanner struct {
	Sink Sink
}

// CheckAll visits every node of every root exactly once, parent
// before children, siblings in declaration order.
func (s *Scanner) CheckAll(roots []*decl.Node) {
	for _, r := range roots {
		s.visit(r)
	}
}

func (s *Scanner) visit(n *decl.Node) {
	if n == nil {
		return
	}
	switch {
	case n.Kind.IsType():
		s.applyCamelCase(n, true)

	case n.Kind == decl.KindMethod:
		// An ordinary method carrying its type's name reads like a
		// constructor; warn independently of the camelCase check.
		if enc := n.Enclosing; enc != nil && n.Name == enc.Name {
			s.report(n, NoConvention, fmt.Sprintf(
				"ordinary method %q shares the name of its enclosing type; it can be confused with a constructor", n.Name))
		}
		s.applyCamelCase(n, false)

	case n.Kind == decl.KindConstructor:
		// Constructors take the type's name; nothing to check here.

	case n.Kind.IsVariable():
		if n.Kind == decl.KindEnumConstant || IsHeuristicallyConstant(n) {
			s.applyAllCaps(n)
		} else {
			s.applyCamelCase(n, false)
		}
	}

	for _, c := range n.Children {
		s.visit(c)
	}
}

func (s *Scanner) applyCamelCase(n *decl.Node, initialUpper bool) {
	if ok, msg := checkCamelCase(n.Name, initialUpper); !ok {
		conv := LowerCamelCase
		if initialUpper {
			conv = UpperCamelCase
		}
		s.report(n, conv, msg)
	}
}

func (s *Scanner) applyAllCaps(n *decl.Node) {
	if ok, msg := checkAllCaps(n.Name); !ok {
		s.report(n, AllCapsUnderscore, msg)
	}
}

func (s *Scanner) report(n *decl.Node, conv Convention, msg string) {
	if s.Sink == nil {
		return
	}
	s.Sink.Report(decl.Advisory{
		Severity:   decl.SeverityWarning,
		Convention: string(conv),
		Kind:       n.Kind,
		Name:       n.Name,
		Path:       n.Path(),
		Message:    msg,
		Node:       n,
	})
}
