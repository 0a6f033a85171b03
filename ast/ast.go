// Package ast models the AST the upstream parser produces: a tagged
// variant over fifteen node kinds, each carrying a source line and the
// handful of cross-pass attributes the later stages attach.
//
// Grounded on BelkacemYerfa-blk/parser/ast.go and
// BelkacemYerfa-blk/ast/ast.go: a Node interface with unexported marker
// methods (expressionNode/statementNode) restricting implementers to
// this package, and per-kind concrete structs embedding a shared base
// instead of a single fat struct with a Params []any bag — the
// teacher's own lang/parser/ast.go tries that shape and it is exactly
// the "brittle ordinal/any" style the spec's design notes warn against.
package ast

import "decaf/dtype"

// NodeKind tags each of the fifteen AST variants.
type NodeKind string

const (
	KindProgram     NodeKind = "Program"
	KindVarDecl     NodeKind = "VarDecl"
	KindFuncDecl    NodeKind = "FuncDecl"
	KindBlock       NodeKind = "Block"
	KindAssignment  NodeKind = "Assignment"
	KindConditional NodeKind = "Conditional"
	KindWhileLoop   NodeKind = "WhileLoop"
	KindReturn      NodeKind = "Return"
	KindBreak       NodeKind = "Break"
	KindContinue    NodeKind = "Continue"
	KindBinaryOp    NodeKind = "BinaryOp"
	KindUnaryOp     NodeKind = "UnaryOp"
	KindLocation    NodeKind = "Location"
	KindFuncCall    NodeKind = "FuncCall"
	KindLiteral     NodeKind = "Literal"
)

// BinaryOperator is the closed set of binary operators. Named variants,
// not ordinals — see spec design notes on the source's brittle use of
// integer ordinals for operator comparison.
type BinaryOperator string

const (
	Or  BinaryOperator = "||"
	And BinaryOperator = "&&"
	Eq  BinaryOperator = "=="
	Neq BinaryOperator = "!="
	Lt  BinaryOperator = "<"
	Le  BinaryOperator = "<="
	Ge  BinaryOperator = ">="
	Gt  BinaryOperator = ">"
	Add BinaryOperator = "+"
	Sub BinaryOperator = "-"
	Mul BinaryOperator = "*"
	Div BinaryOperator = "/"
	Mod BinaryOperator = "%"
)

// UnaryOperator is the closed set of unary operators.
type UnaryOperator string

const (
	Negate UnaryOperator = "-"
	Not    UnaryOperator = "!"
)

// Node is implemented by every AST variant. The unexported node()
// method keeps it closed to this package, same as the teacher's
// statementNode()/expressionNode() markers.
type Node interface {
	Kind() NodeKind
	Line() int

	// Parent returns the enclosing node, or nil for the root. It is a
	// non-owning back-reference: the owning tree still only points
	// downward, but Go's collector does not care about the resulting
	// cycle the way the spec's design notes (written for manual memory
	// management) assume a systems implementation would.
	Parent() Node
	SetParent(Node)

	// Depth is the node's lexical nesting depth; the root is 0.
	Depth() int
	SetDepth(int)
	HasDepth() bool

	node()
	next() Node
	setNext(Node)
}

// Statement is implemented by nodes that may appear in a Block's
// statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by nodes that carry an inferred type.
type Expression interface {
	Node
	expressionNode()

	// Type is the inferred DecafType, set during analysis. Reading it
	// before analysis (HasType() == false) is a programmer error.
	Type() dtype.DecafType
	SetType(dtype.DecafType)
	HasType() bool
}

// base is embedded by every concrete node and supplies the universal
// attributes (parent, depth) plus the NodeList intrusion point. This is
// the "fixed struct with optional fields" the spec's design notes
// prefer over an erased string-keyed map: the known attribute set is
// small and closed, so typed accessors replace Get/Set/Has-by-string.
type base struct {
	line     int
	parent   Node
	depth    int
	hasDepth bool
	nextNode Node
}

func (b *base) Line() int        { return b.line }
func (b *base) Parent() Node     { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }
func (b *base) Depth() int       { return b.depth }
func (b *base) SetDepth(d int)   { b.depth = d; b.hasDepth = true }
func (b *base) HasDepth() bool   { return b.hasDepth }
func (b *base) node()            {}
func (b *base) next() Node       { return b.nextNode }
func (b *base) setNext(n Node)   { b.nextNode = n }

// typedExpr is embedded by the five expression variants; it backs the
// `type` attribute (§3: attached to every expression node after
// analysis).
type typedExpr struct {
	typ     dtype.DecafType
	hasType bool
}

func (t *typedExpr) Type() dtype.DecafType {
	return t.typ
}

func (t *typedExpr) SetType(dt dtype.DecafType) {
	t.typ = dt
	t.hasType = true
}

func (t *typedExpr) HasType() bool { return t.hasType }
