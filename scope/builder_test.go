package scope

import (
	"testing"

	"decaf/ast"
	"decaf/decorate"
	"decaf/dtype"
	"decaf/symtab"
)

func buildProgram() *ast.Program {
	prog := ast.NewProgram(1)
	prog.Globals.Append(ast.NewVarDecl(1, "g", dtype.Int, false, 1))

	fn := ast.NewFuncDecl(2, "add", dtype.Int)
	fn.Params.Append(&ast.Parameter{Name: "a", Type: dtype.Int})
	fn.Params.Append(&ast.Parameter{Name: "b", Type: dtype.Int})

	body := ast.NewBlock(2)
	body.Locals.Append(ast.NewVarDecl(3, "sum", dtype.Int, false, 1))
	fn.Body = body

	prog.Functions.Append(fn)

	decorate.SetParent(prog)
	decorate.CalcDepth(prog)
	return prog
}

func TestBuildInsertsBuiltins(t *testing.T) {
	prog := buildProgram()
	Build(prog)

	for _, name := range []string{"print_int", "print_bool", "print_str"} {
		if _, ok := prog.Scope().LookupLocal(name); !ok {
			t.Errorf("expected builtin %q in root scope", name)
		}
	}
}

func TestBuildForwardDeclaresFunctions(t *testing.T) {
	prog := buildProgram()
	Build(prog)

	sym, ok := prog.Scope().LookupLocal("add")
	if !ok {
		t.Fatal("expected add to be forward-declared at root scope")
	}
	if sym.Kind != symtab.Function || sym.Type != dtype.Int {
		t.Errorf("unexpected symbol for add: %+v", sym)
	}
	if len(sym.Params) != 2 {
		t.Errorf("expected 2 params recorded for add, got %d", len(sym.Params))
	}
}

func TestBuildInsertsParamsAtFunctionScope(t *testing.T) {
	prog := buildProgram()
	Build(prog)

	fn := prog.Functions.Slice()[0].(*ast.FuncDecl)
	if _, ok := fn.Scope().LookupLocal("a"); !ok {
		t.Error("expected parameter a at function scope")
	}
	if _, ok := fn.Scope().LookupLocal("b"); !ok {
		t.Error("expected parameter b at function scope")
	}
	if fn.Scope().Parent != prog.Scope() {
		t.Error("function scope's parent should be the root scope")
	}
}

func TestBuildInsertsLocalsAtBlockScope(t *testing.T) {
	prog := buildProgram()
	Build(prog)

	fn := prog.Functions.Slice()[0].(*ast.FuncDecl)
	blockScope := fn.Body.Scope()

	if _, ok := blockScope.LookupLocal("sum"); !ok {
		t.Error("expected local sum at block scope")
	}
	if blockScope.Parent != fn.Scope() {
		t.Error("block scope's parent should be the function scope")
	}
	if _, ok := blockScope.Lookup("a"); !ok {
		t.Error("block scope should still resolve parameter a through its parent chain")
	}
}

func TestBuildGlobalVisibleFromBlockScope(t *testing.T) {
	prog := buildProgram()
	Build(prog)

	fn := prog.Functions.Slice()[0].(*ast.FuncDecl)
	if _, ok := fn.Body.Scope().Lookup("g"); !ok {
		t.Error("expected global g to resolve from nested block scope")
	}
}
