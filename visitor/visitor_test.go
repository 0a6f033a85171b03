package visitor

import (
	"testing"

	"decaf/ast"
	"decaf/dtype"

	"github.com/go-test/deep"
)

type recorder struct {
	Base
	events []string
}

func (r *recorder) PreBinaryOp(n *ast.BinaryOp)  { r.events = append(r.events, "pre") }
func (r *recorder) InBinaryOp(n *ast.BinaryOp)   { r.events = append(r.events, "in") }
func (r *recorder) PostBinaryOp(n *ast.BinaryOp) { r.events = append(r.events, "post") }
func (r *recorder) PreLiteral(n *ast.Literal) {
	r.events = append(r.events, "lit:"+n.LitKind.String())
}

func TestBinaryOpOrder(t *testing.T) {
	left := ast.NewIntLiteral(1, 1)
	right := ast.NewIntLiteral(1, 2)
	op := ast.NewBinaryOp(1, ast.Add, left, right)

	r := &recorder{}
	Walk(op, r)

	want := []string{"pre", "lit:int", "in", "lit:int", "post"}
	if diff := deep.Equal(r.events, want); diff != nil {
		t.Errorf("traversal order diff: %v", diff)
	}
}

func TestProgramOrderVisitsGlobalsBeforeFunctions(t *testing.T) {
	prog := ast.NewProgram(1)
	prog.Globals.Append(ast.NewVarDecl(1, "g", dtype.Int, false, 1))
	fn := ast.NewFuncDecl(2, "main", dtype.Int)
	fn.Body = ast.NewBlock(2)
	prog.Functions.Append(fn)

	var order []string
	v := &funcVisitor{
		preVarDecl:  func(n *ast.VarDecl) { order = append(order, "var:"+n.Name) },
		preFuncDecl: func(n *ast.FuncDecl) { order = append(order, "func:"+n.Name) },
	}
	Walk(prog, v)

	want := []string{"var:g", "func:main"}
	if diff := deep.Equal(order, want); diff != nil {
		t.Errorf("order diff: %v", diff)
	}
}

// funcVisitor adapts plain callbacks into the Visitor interface for
// tests that only care about one or two hooks.
type funcVisitor struct {
	Base
	preVarDecl  func(*ast.VarDecl)
	preFuncDecl func(*ast.FuncDecl)
}

func (v *funcVisitor) PreVarDecl(n *ast.VarDecl) {
	if v.preVarDecl != nil {
		v.preVarDecl(n)
	}
}

func (v *funcVisitor) PreFuncDecl(n *ast.FuncDecl) {
	if v.preFuncDecl != nil {
		v.preFuncDecl(n)
	}
}
