package decl

import (
	"strings"
	"time"
)

const Version = "1.0"

// Kind identifies what sort of program construct a node declares.
// The set is closed; the scanner dispatches over it exhaustively.
type Kind string

const (
	KindClass         Kind = "CLASS"
	KindInterface     Kind = "INTERFACE"
	KindEnum          Kind = "ENUM"
	KindMethod        Kind = "METHOD"
	KindConstructor   Kind = "CONSTRUCTOR"
	KindField         Kind = "FIELD"
	KindEnumConstant  Kind = "ENUM_CONSTANT"
	KindParameter     Kind = "PARAMETER"
	KindLocalVariable Kind = "LOCAL_VARIABLE"
)

// IsType reports whether the kind declares a named type.
func (k Kind) IsType() bool {
	return k == KindClass || k == KindInterface || k == KindEnum
}

// IsExecutable reports whether the kind declares executable code.
func (k Kind) IsExecutable() bool {
	return k == KindMethod || k == KindConstructor
}

// IsVariable reports whether the kind declares a value slot.
func (k Kind) IsVariable() bool {
	switch k {
	case KindField, KindEnumConstant, KindParameter, KindLocalVariable:
		return true
	}
	return false
}

type Modifier string

const (
	ModPublic    Modifier = "public"
	ModProtected Modifier = "protected"
	ModPrivate   Modifier = "private"
	ModStatic    Modifier = "static"
	ModFinal     Modifier = "final"
	ModAbstract  Modifier = "abstract"
)

type Modifiers []Modifier

func (ms Modifiers) Has(m Modifier) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

func (ms Modifiers) ContainsAll(want ...Modifier) bool {
	for _, m := range want {
		if !ms.Has(m) {
			return false
		}
	}
	return true
}

// Node is one declaration in the tree handed over by the front-end.
// The tree owns its nodes; the checker only reads them.
type Node struct {
	Name               string    `json:"name" yaml:"name"`
	Kind               Kind      `json:"kind" yaml:"kind"`
	Modifiers          Modifiers `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	ConstantValueKnown bool      `json:"constant_value_known,omitempty" yaml:"constant_value_known,omitempty"`
	Children           []*Node   `json:"children,omitempty" yaml:"children,omitempty"`

	// Enclosing points at the parent declaration. It is derived by
	// Link after decoding, never serialized.
	Enclosing *Node `json:"-" yaml:"-"`
}

// EnclosingKind returns the kind of the containing declaration, or
// "" for a root node.
func (n *Node) EnclosingKind() Kind {
	if n.Enclosing == nil {
		return ""
	}
	return n.Enclosing.Kind
}

// Path renders the dotted chain of enclosing names down to n, e.g.
// "Outer.Inner.field". Reports use it to locate a node.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Enclosing {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Link fills the Enclosing back-pointers of a decoded forest.
func Link(roots []*Node) {
	for _, r := range roots {
		link(r, nil)
	}
}

func link(n *Node, parent *Node) {
	if n == nil {
		return
	}
	n.Enclosing = parent
	for _, c := range n.Children {
		link(c, n)
	}
}

type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
)

// Advisory is a single non-fatal naming finding attributed to one
// node. Convention is empty for the constructor-confusion advisory.
type Advisory struct {
	Severity   Severity `json:"severity"`
	Convention string   `json:"convention,omitempty"`
	Kind       Kind     `json:"kind"`
	Name       string   `json:"name"`
	Path       string   `json:"path"`
	Message    string   `json:"message"`

	Node *Node `json:"-"`
}

// Run is the report envelope for one traversal of a declaration
// forest.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	IRVersion string    `json:"ir_version,omitempty"`

	Roots      []*Node    `json:"roots"`
	Advisories []Advisory `json:"advisories,omitempty"`
}
