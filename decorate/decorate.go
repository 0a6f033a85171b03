// Package decorate implements the two structural passes every later
// pass depends on: SetParent and CalcDepth (§4.4). Both are pre-order
// visitor passes with no post-order work.
package decorate

import (
	"decaf/ast"
	"decaf/visitor"
)

// setParent writes the `parent` back-reference on every direct child
// of a composite node. The root receives no parent — its base.parent
// stays nil, which Node.Parent() already reports correctly as the zero
// value, so there is nothing to set for it explicitly.
type setParent struct {
	visitor.Base
}

// SetParent walks root and attaches a parent back-reference to every
// non-root node. Must run before CalcDepth and before the symbol-table
// builder (§6 prerequisite contract).
func SetParent(root *ast.Program) {
	sp := &setParent{}
	visitor.Walk(root, sp)
}

func (sp *setParent) PreProgram(n *ast.Program) {
	n.Globals.Each(func(c ast.Node) { c.SetParent(n) })
	n.Functions.Each(func(c ast.Node) { c.SetParent(n) })
}

func (sp *setParent) PreFuncDecl(n *ast.FuncDecl) {
	if n.Body != nil {
		n.Body.SetParent(n)
	}
}

func (sp *setParent) PreBlock(n *ast.Block) {
	n.Locals.Each(func(c ast.Node) { c.SetParent(n) })
	n.Stmts.Each(func(c ast.Node) { c.SetParent(n) })
}

func (sp *setParent) PreAssignment(n *ast.Assignment) {
	n.Location.SetParent(n)
	n.Value.SetParent(n)
}

func (sp *setParent) PreConditional(n *ast.Conditional) {
	n.Condition.SetParent(n)
	n.IfBlock.SetParent(n)
	if n.ElseBlock != nil {
		n.ElseBlock.SetParent(n)
	}
}

func (sp *setParent) PreWhileLoop(n *ast.WhileLoop) {
	n.Condition.SetParent(n)
	n.Body.SetParent(n)
}

func (sp *setParent) PreReturn(n *ast.Return) {
	if n.Value != nil {
		n.Value.SetParent(n)
	}
}

func (sp *setParent) PreBinaryOp(n *ast.BinaryOp) {
	n.Left.SetParent(n)
	n.Right.SetParent(n)
}

func (sp *setParent) PreUnaryOp(n *ast.UnaryOp) {
	n.Operand.SetParent(n)
}

func (sp *setParent) PreLocation(n *ast.Location) {
	if n.Index != nil {
		n.Index.SetParent(n)
	}
}

func (sp *setParent) PreFuncCall(n *ast.FuncCall) {
	n.Args.Each(func(c ast.Node) { c.SetParent(n) })
}

// calcDepth writes `depth = 0` on the root and `depth = parent.depth +
// 1` on every other node. Requires SetParent to have already run.
type calcDepth struct {
	visitor.Base
}

// CalcDepth walks root, assigning depths. Must run after SetParent.
func CalcDepth(root *ast.Program) {
	cd := &calcDepth{}
	root.SetDepth(0)
	visitor.Walk(root, cd)
}

func (cd *calcDepth) depthOf(n ast.Node) int {
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	return parent.Depth() + 1
}

func (cd *calcDepth) PreVarDecl(n *ast.VarDecl)       { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreFuncDecl(n *ast.FuncDecl)     { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreBlock(n *ast.Block)           { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreAssignment(n *ast.Assignment) { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreConditional(n *ast.Conditional) {
	n.SetDepth(cd.depthOf(n))
}
func (cd *calcDepth) PreWhileLoop(n *ast.WhileLoop) { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreReturn(n *ast.Return)       { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreBreak(n *ast.Break)         { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreContinue(n *ast.Continue)   { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreBinaryOp(n *ast.BinaryOp)   { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreUnaryOp(n *ast.UnaryOp)     { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreLocation(n *ast.Location)   { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreFuncCall(n *ast.FuncCall)   { n.SetDepth(cd.depthOf(n)) }
func (cd *calcDepth) PreLiteral(n *ast.Literal)     { n.SetDepth(cd.depthOf(n)) }
