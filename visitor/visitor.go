// Package visitor implements the single canonical pre/in/post walk of
// the AST (§4.3) that every later pass (decorate, scope, sema) drives.
//
// Grounded on the teacher's own switch-dispatch traversals
// (compiler/symbol_table.go's symbolReader/symbolReaderExpression,
// semantics/type_checker.go's symbolReader) generalized into a single
// reusable driver, per the spec's design notes: "a capability set of
// per-variant pre/post callbacks maps naturally to a trait/interface
// with default empty methods."
package visitor

import (
	"fmt"

	"decaf/ast"
)

// Visitor is the full capability set: one pre/post pair per node kind,
// plus BinaryOp's extra "in" callback fired between its operands.
type Visitor interface {
	PreProgram(*ast.Program)
	PostProgram(*ast.Program)

	PreVarDecl(*ast.VarDecl)
	PostVarDecl(*ast.VarDecl)

	PreFuncDecl(*ast.FuncDecl)
	PostFuncDecl(*ast.FuncDecl)

	PreBlock(*ast.Block)
	PostBlock(*ast.Block)

	PreAssignment(*ast.Assignment)
	PostAssignment(*ast.Assignment)

	PreConditional(*ast.Conditional)
	PostConditional(*ast.Conditional)

	PreWhileLoop(*ast.WhileLoop)
	PostWhileLoop(*ast.WhileLoop)

	PreReturn(*ast.Return)
	PostReturn(*ast.Return)

	PreBreak(*ast.Break)
	PostBreak(*ast.Break)

	PreContinue(*ast.Continue)
	PostContinue(*ast.Continue)

	PreBinaryOp(*ast.BinaryOp)
	InBinaryOp(*ast.BinaryOp)
	PostBinaryOp(*ast.BinaryOp)

	PreUnaryOp(*ast.UnaryOp)
	PostUnaryOp(*ast.UnaryOp)

	PreLocation(*ast.Location)
	PostLocation(*ast.Location)

	PreFuncCall(*ast.FuncCall)
	PostFuncCall(*ast.FuncCall)

	PreLiteral(*ast.Literal)
	PostLiteral(*ast.Literal)
}

// Base supplies a no-op default for every callback. Passes embed it and
// override only the kinds they care about — the "when a callback slot
// is null, a default callback is used instead" behavior from §4.3,
// realized in Go as embedding rather than nullable function pointers.
type Base struct{}

func (Base) PreProgram(*ast.Program)   {}
func (Base) PostProgram(*ast.Program)  {}
func (Base) PreVarDecl(*ast.VarDecl)   {}
func (Base) PostVarDecl(*ast.VarDecl)  {}
func (Base) PreFuncDecl(*ast.FuncDecl) {}
func (Base) PostFuncDecl(*ast.FuncDecl) {}
func (Base) PreBlock(*ast.Block)       {}
func (Base) PostBlock(*ast.Block)      {}
func (Base) PreAssignment(*ast.Assignment)   {}
func (Base) PostAssignment(*ast.Assignment)  {}
func (Base) PreConditional(*ast.Conditional)  {}
func (Base) PostConditional(*ast.Conditional) {}
func (Base) PreWhileLoop(*ast.WhileLoop)  {}
func (Base) PostWhileLoop(*ast.WhileLoop) {}
func (Base) PreReturn(*ast.Return)  {}
func (Base) PostReturn(*ast.Return) {}
func (Base) PreBreak(*ast.Break)   {}
func (Base) PostBreak(*ast.Break)  {}
func (Base) PreContinue(*ast.Continue)  {}
func (Base) PostContinue(*ast.Continue) {}
func (Base) PreBinaryOp(*ast.BinaryOp)  {}
func (Base) InBinaryOp(*ast.BinaryOp)   {}
func (Base) PostBinaryOp(*ast.BinaryOp) {}
func (Base) PreUnaryOp(*ast.UnaryOp)  {}
func (Base) PostUnaryOp(*ast.UnaryOp) {}
func (Base) PreLocation(*ast.Location)  {}
func (Base) PostLocation(*ast.Location) {}
func (Base) PreFuncCall(*ast.FuncCall)  {}
func (Base) PostFuncCall(*ast.FuncCall) {}
func (Base) PreLiteral(*ast.Literal)  {}
func (Base) PostLiteral(*ast.Literal) {}

// Walk performs exactly one pre/(in)/post traversal of n, dispatching
// to v. It is the single canonical driver described by §4.3's table;
// every pass (SetParent, CalcDepth, the symbol-table builder, the
// analyzer) calls Walk instead of re-implementing tree descent.
func Walk(n ast.Node, v Visitor) {
	switch node := n.(type) {
	case *ast.Program:
		v.PreProgram(node)
		node.Globals.Each(func(g ast.Node) { Walk(g, v) })
		node.Functions.Each(func(f ast.Node) { Walk(f, v) })
		v.PostProgram(node)

	case *ast.VarDecl:
		v.PreVarDecl(node)
		v.PostVarDecl(node)

	case *ast.FuncDecl:
		v.PreFuncDecl(node)
		if node.Body != nil {
			Walk(node.Body, v)
		}
		v.PostFuncDecl(node)

	case *ast.Block:
		v.PreBlock(node)
		node.Locals.Each(func(d ast.Node) { Walk(d, v) })
		node.Stmts.Each(func(s ast.Node) { Walk(s, v) })
		v.PostBlock(node)

	case *ast.Assignment:
		v.PreAssignment(node)
		Walk(node.Location, v)
		Walk(node.Value, v)
		v.PostAssignment(node)

	case *ast.Conditional:
		v.PreConditional(node)
		Walk(node.Condition, v)
		Walk(node.IfBlock, v)
		if node.ElseBlock != nil {
			Walk(node.ElseBlock, v)
		}
		v.PostConditional(node)

	case *ast.WhileLoop:
		v.PreWhileLoop(node)
		Walk(node.Condition, v)
		Walk(node.Body, v)
		v.PostWhileLoop(node)

	case *ast.Return:
		v.PreReturn(node)
		if node.Value != nil {
			Walk(node.Value, v)
		}
		v.PostReturn(node)

	case *ast.Break:
		v.PreBreak(node)
		v.PostBreak(node)

	case *ast.Continue:
		v.PreContinue(node)
		v.PostContinue(node)

	case *ast.BinaryOp:
		v.PreBinaryOp(node)
		Walk(node.Left, v)
		v.InBinaryOp(node)
		Walk(node.Right, v)
		v.PostBinaryOp(node)

	case *ast.UnaryOp:
		v.PreUnaryOp(node)
		Walk(node.Operand, v)
		v.PostUnaryOp(node)

	case *ast.Location:
		v.PreLocation(node)
		if node.Index != nil {
			Walk(node.Index, v)
		}
		v.PostLocation(node)

	case *ast.FuncCall:
		v.PreFuncCall(node)
		node.Args.Each(func(a ast.Node) { Walk(a, v) })
		v.PostFuncCall(node)

	case *ast.Literal:
		v.PreLiteral(node)
		v.PostLiteral(node)

	default:
		panic(fmt.Sprintf("visitor: unhandled node type %T", n))
	}
}
