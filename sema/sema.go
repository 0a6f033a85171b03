// Package sema implements the semantic analyzer pass (§4.6): it
// attaches an inferred type to every expression node and emits a
// diagnostic for every language-rule violation, continuing traversal
// after each one (§4.7 — the analyzer is recovering).
//
// Grounded on BelkacemYerfa-blk/compiler/symbol_table.go and
// BelkacemYerfa-blk/semantics/type_checker.go: both thread a small
// collector and a resolver through a switch-based walk; here the walk
// is the shared visitor.Walk driver and the collector is diag.Diagnostics.
package sema

import (
	"decaf/ast"
	"decaf/diag"
	"decaf/dtype"
	"decaf/symtab"
	"decaf/visitor"
)

// Analyze runs the semantic analyzer over root and returns the ordered
// diagnostic list (§6). root must already have been through SetParent,
// CalcDepth, and the symbol-table builder (§6 prerequisite contract);
// violating that is a programmer error, not a diagnostic.
func Analyze(root *ast.Program) []diag.Diagnostic {
	a := &analyzer{}
	visitor.Walk(root, a)
	return a.diags.List()
}

type analyzer struct {
	visitor.Base
	diags diag.Diagnostics

	currentReturnType dtype.DecafType
	inFunction        bool
	loopDepth         int
	mainOK            bool
}

// resolve walks up from n until it finds an ancestor with a scope
// (§4.6: "walks up from an AST node until it finds an ancestor with a
// symbolTable attribute, then walks scope parents searching for the
// name"). SetParent must already have run.
func resolve(n ast.Node, name string) (symtab.Symbol, bool) {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if sh, ok := cur.(ast.ScopeHolder); ok && sh.HasScope() {
			return sh.Scope().Lookup(name)
		}
	}
	return symtab.Symbol{}, false
}

func reportDuplicates(d *diag.Diagnostics, scope *symtab.Table, line int) {
	for _, name := range scope.Duplicates() {
		d.Add(diag.CategoryDeclaration, line, "duplicate declaration of %q in this scope", name)
	}
}

// --- Program -----------------------------------------------------------

func (a *analyzer) PreProgram(n *ast.Program) {
	main, ok := n.Scope().Lookup("main")
	switch {
	case !ok:
		a.diags.Add(diag.CategoryEntryPoint, n.Line(), "missing entry point function %q", "main")
	case main.Kind != symtab.Function:
		a.diags.Add(diag.CategoryEntryPoint, n.Line(), "%q is not a function", "main")
	case len(main.Params) != 0:
		a.diags.Add(diag.CategoryEntryPoint, n.Line(), "entry point %q must take no parameters", "main")
	default:
		a.mainOK = true
	}

	reportDuplicates(&a.diags, n.Scope(), n.Line())
}

func (a *analyzer) PostProgram(n *ast.Program) {
	if !a.mainOK {
		return
	}
	main, _ := n.Scope().Lookup("main")
	if main.Type != dtype.Int {
		a.diags.Add(diag.CategoryEntryPoint, n.Line(), "entry point %q must return int", "main")
	}
}

// --- VarDecl -------------------------------------------------------------

func (a *analyzer) PostVarDecl(n *ast.VarDecl) {
	if n.Type == dtype.Void {
		a.diags.Add(diag.CategoryDeclaration, n.Line(), "variable %q cannot be declared void", n.Name)
	}
	if n.IsArray {
		if n.ArrayLength < 1 {
			a.diags.Add(diag.CategoryDeclaration, n.Line(), "array %q must have length at least 1", n.Name)
		}
		if a.inFunction {
			a.diags.Add(diag.CategoryDeclaration, n.Line(), "array %q must be declared at global scope", n.Name)
		}
	}
}

// --- FuncDecl ------------------------------------------------------------

func (a *analyzer) PreFuncDecl(n *ast.FuncDecl) {
	a.currentReturnType = n.ReturnType
	a.inFunction = true
}

func (a *analyzer) PostFuncDecl(n *ast.FuncDecl) {
	a.inFunction = false
	reportDuplicates(&a.diags, n.Scope(), n.Line())
}

// --- Block ---------------------------------------------------------------

func (a *analyzer) PostBlock(n *ast.Block) {
	reportDuplicates(&a.diags, n.Scope(), n.Line())
}

// --- Literal ---------------------------------------------------------------

func (a *analyzer) PreLiteral(n *ast.Literal) {
	n.SetType(n.LitKind)
}

// --- Location --------------------------------------------------------------

func (a *analyzer) PreLocation(n *ast.Location) {
	sym, ok := resolve(n, n.Name)
	if !ok {
		a.diags.Add(diag.CategoryResolution, n.Line(), "undefined identifier %q", n.Name)
		return
	}
	n.SetType(sym.Type)
}

func (a *analyzer) PostLocation(n *ast.Location) {
	sym, ok := resolve(n, n.Name)
	if !ok {
		return
	}
	switch sym.Kind {
	case symtab.Array:
		if n.Index == nil {
			a.diags.Add(diag.CategoryIndexing, n.Line(), "array %q used without an index", n.Name)
			return
		}
		if n.Index.HasType() && n.Index.Type() != dtype.Int {
			a.diags.Add(diag.CategoryIndexing, n.Line(), "array index for %q must be int", n.Name)
		}
	default:
		if n.Index != nil {
			a.diags.Add(diag.CategoryIndexing, n.Line(), "%q is not an array and cannot be indexed", n.Name)
		}
	}
}

// --- FuncCall ------------------------------------------------------------

func (a *analyzer) PreFuncCall(n *ast.FuncCall) {
	sym, ok := resolve(n, n.Name)
	if !ok {
		a.diags.Add(diag.CategoryResolution, n.Line(), "undefined function %q", n.Name)
		return
	}
	n.SetType(sym.Type)
}

func (a *analyzer) PostFuncCall(n *ast.FuncCall) {
	sym, ok := resolve(n, n.Name)
	if !ok {
		return
	}

	args := n.Args.Slice()
	if len(args) != len(sym.Params) {
		a.diags.Add(diag.CategoryCallSite, n.Line(),
			"function %q expects %d argument(s) but got %d", n.Name, len(sym.Params), len(args))
		return
	}

	for i, param := range sym.Params {
		arg, ok := args[i].(ast.Expression)
		if !ok || !arg.HasType() {
			continue
		}
		if arg.Type() != param.Type {
			a.diags.Add(diag.CategoryCallSite, n.Line(),
				"argument %d of %q has type %s, expected %s", i+1, n.Name, arg.Type(), param.Type)
		}
	}
}

// --- UnaryOp ---------------------------------------------------------------

func (a *analyzer) PostUnaryOp(n *ast.UnaryOp) {
	switch n.Op {
	case ast.Negate:
		n.SetType(dtype.Int)
		if n.Operand.HasType() && n.Operand.Type() != dtype.Int {
			a.diags.Add(diag.CategoryType, n.Line(), "operand of unary - must be int, got %s", n.Operand.Type())
		}
	case ast.Not:
		n.SetType(dtype.Bool)
		if n.Operand.HasType() && n.Operand.Type() != dtype.Bool {
			a.diags.Add(diag.CategoryType, n.Line(), "operand of ! must be bool, got %s", n.Operand.Type())
		}
	}
}

// --- BinaryOp --------------------------------------------------------------

func isLogical(op ast.BinaryOperator) bool {
	return op == ast.Or || op == ast.And
}

func isEquality(op ast.BinaryOperator) bool {
	return op == ast.Eq || op == ast.Neq
}

func isRelational(op ast.BinaryOperator) bool {
	switch op {
	case ast.Lt, ast.Le, ast.Ge, ast.Gt:
		return true
	}
	return false
}

func isArithmetic(op ast.BinaryOperator) bool {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		return true
	}
	return false
}

// PreBinaryOp sets the operator-driven result type before either
// operand has been visited, so an enclosing node always sees a
// non-absent type even when the operands turn out ill-typed (§4.6).
func (a *analyzer) PreBinaryOp(n *ast.BinaryOp) {
	switch {
	case isLogical(n.Op), isEquality(n.Op), isRelational(n.Op):
		n.SetType(dtype.Bool)
	case isArithmetic(n.Op):
		n.SetType(dtype.Int)
	}
}

func (a *analyzer) PostBinaryOp(n *ast.BinaryOp) {
	if !n.Left.HasType() || !n.Right.HasType() {
		return
	}
	lt, rt := n.Left.Type(), n.Right.Type()

	switch {
	case isLogical(n.Op):
		if lt != dtype.Bool || rt != dtype.Bool {
			a.diags.Add(diag.CategoryType, n.Line(), "operands of %s must be bool, got %s and %s", n.Op, lt, rt)
		}
	case isEquality(n.Op):
		if lt != rt {
			a.diags.Add(diag.CategoryType, n.Line(), "operands of %s must have the same type, got %s and %s", n.Op, lt, rt)
		}
	case isRelational(n.Op):
		if lt != dtype.Int || rt != dtype.Int {
			a.diags.Add(diag.CategoryType, n.Line(), "operands of %s must be int, got %s and %s", n.Op, lt, rt)
		}
	case isArithmetic(n.Op):
		if lt != dtype.Int || rt != dtype.Int {
			a.diags.Add(diag.CategoryType, n.Line(), "operands of %s must be int, got %s and %s", n.Op, lt, rt)
		}
	}
}

// --- Statements ------------------------------------------------------------

func (a *analyzer) PostAssignment(n *ast.Assignment) {
	if !n.Location.HasType() || !n.Value.HasType() {
		return
	}
	if n.Location.Type() != n.Value.Type() {
		a.diags.Add(diag.CategoryType, n.Line(), "cannot assign %s to %s-typed location", n.Value.Type(), n.Location.Type())
	}
}

func (a *analyzer) PostConditional(n *ast.Conditional) {
	if n.Condition.HasType() && n.Condition.Type() != dtype.Bool {
		a.diags.Add(diag.CategoryType, n.Line(), "if condition must be bool, got %s", n.Condition.Type())
	}
}

func (a *analyzer) PreWhileLoop(n *ast.WhileLoop) {
	a.loopDepth++
}

func (a *analyzer) PostWhileLoop(n *ast.WhileLoop) {
	a.loopDepth--
	if n.Condition.HasType() && n.Condition.Type() != dtype.Bool {
		a.diags.Add(diag.CategoryType, n.Line(), "while condition must be bool, got %s", n.Condition.Type())
	}
}

func (a *analyzer) PostReturn(n *ast.Return) {
	if n.Value == nil {
		if a.currentReturnType != dtype.Void {
			a.diags.Add(diag.CategoryType, n.Line(), "missing return value for non-void function")
		}
		return
	}
	if !n.Value.HasType() {
		return
	}
	if n.Value.Type() != a.currentReturnType {
		a.diags.Add(diag.CategoryType, n.Line(), "return type %s does not match function return type %s", n.Value.Type(), a.currentReturnType)
	}
}

func (a *analyzer) PreBreak(n *ast.Break) {
	if a.loopDepth == 0 {
		a.diags.Add(diag.CategoryControlFlow, n.Line(), "break outside of any enclosing loop")
	}
}

func (a *analyzer) PreContinue(n *ast.Continue) {
	if a.loopDepth == 0 {
		a.diags.Add(diag.CategoryControlFlow, n.Line(), "continue outside of any enclosing loop")
	}
}
