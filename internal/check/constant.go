package check

import "github.com/quincysky/nameChecker/internal/decl"

// IsHeuristicallyConstant decides whether a variable node is to be
// held to the constant convention. Rules apply in order, first match
// wins:
//
//  1. a member of an interface is implicitly constant;
//  2. a field declared public static final is constant;
//  3. a node with a known compile-time constant value is constant.
//
// Enum constants are constants by kind and never reach this check.
func IsHeuristicallyConstant(n *decl.Node) bool {
	if n.EnclosingKind() == decl.KindInterface {
		return true
	}
	if n.Kind == decl.KindField && n.Modifiers.ContainsAll(decl.ModPublic, decl.ModStatic, decl.ModFinal) {
		return true
	}
	return n.ConstantValueKnown
}
