// Package scope implements the symbol-table builder pass (§4.5): it
// creates the scope tree at the program, each function, and each
// block, inserts the three built-in I/O functions and every
// user-declared function at the root (a forward-declaration pass so
// calls may refer to functions declared later in the file), inserts
// parameters at function scope, and inserts variable declarations as
// they are encountered.
//
// Grounded on BelkacemYerfa-blk/compiler/symbol_table.go's
// SymbolTable/Resolve/Define pattern, but the scope stack is kept as an
// explicit slice on the builder (per the spec's design notes: "an
// explicit stack of scope handles rather than a reassignable pointer
// field, so pop is unambiguous and reentry is not a global mutation"),
// instead of the teacher's single reassignable *SymbolTable field.
package scope

import (
	"decaf/ast"
	"decaf/dtype"
	"decaf/symtab"
	"decaf/visitor"
)

// builtins are the three I/O functions every program scope carries
// (§3).
var builtins = []symtab.Symbol{
	{Name: "print_int", Kind: symtab.Function, Type: dtype.Void, ArrayLength: 1,
		Params: []symtab.Param{{Name: "n", Type: dtype.Int}}},
	{Name: "print_bool", Kind: symtab.Function, Type: dtype.Void, ArrayLength: 1,
		Params: []symtab.Param{{Name: "b", Type: dtype.Bool}}},
	{Name: "print_str", Kind: symtab.Function, Type: dtype.Void, ArrayLength: 1,
		Params: []symtab.Param{{Name: "s", Type: dtype.Str}}},
}

type builder struct {
	visitor.Base
	stack []*symtab.Table
}

// Build runs the symbol-table builder over root, attaching a
// *symtab.Table to Program, every FuncDecl, and every Block. Must run
// after SetParent/CalcDepth and before the analyzer (§6).
func Build(root *ast.Program) {
	b := &builder{}
	visitor.Walk(root, b)
}

func (b *builder) top() *symtab.Table {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(t *symtab.Table) {
	b.stack = append(b.stack, t)
}

func (b *builder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *builder) PreProgram(n *ast.Program) {
	root := symtab.New(nil)
	n.SetScope(root)
	b.push(root)

	for _, sym := range builtins {
		root.Insert(sym)
	}

	n.Functions.Each(func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		root.Insert(funcSymbol(fn))
	})
}

func (b *builder) PostProgram(n *ast.Program) {
	b.pop()
}

func (b *builder) PreFuncDecl(n *ast.FuncDecl) {
	fnScope := symtab.New(b.top())
	n.SetScope(fnScope)
	b.push(fnScope)

	n.Params.Each(func(p *ast.Parameter) {
		fnScope.Insert(symtab.Symbol{
			Name:        p.Name,
			Kind:        symtab.Scalar,
			Type:        p.Type,
			ArrayLength: 1,
		})
	})
}

func (b *builder) PostFuncDecl(n *ast.FuncDecl) {
	b.pop()
}

func (b *builder) PreBlock(n *ast.Block) {
	blockScope := symtab.New(b.top())
	n.SetScope(blockScope)
	b.push(blockScope)
}

func (b *builder) PostBlock(n *ast.Block) {
	b.pop()
}

func (b *builder) PreVarDecl(n *ast.VarDecl) {
	kind := symtab.Scalar
	length := 1
	if n.IsArray {
		kind = symtab.Array
		length = n.ArrayLength
	}
	b.top().Insert(symtab.Symbol{
		Name:        n.Name,
		Kind:        kind,
		Type:        n.Type,
		ArrayLength: length,
	})
}

func funcSymbol(fn *ast.FuncDecl) symtab.Symbol {
	var params []symtab.Param
	fn.Params.Each(func(p *ast.Parameter) {
		params = append(params, symtab.Param{Name: p.Name, Type: p.Type})
	})
	return symtab.Symbol{
		Name:        fn.Name,
		Kind:        symtab.Function,
		Type:        fn.ReturnType,
		ArrayLength: 1,
		Params:      params,
	}
}
