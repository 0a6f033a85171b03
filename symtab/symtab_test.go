package symtab

import (
	"testing"

	"decaf/dtype"

	"github.com/go-test/deep"
)

func TestLookupShadowing(t *testing.T) {
	root := New(nil)
	root.Insert(Symbol{Name: "x", Kind: Scalar, Type: dtype.Int, ArrayLength: 1})

	inner := New(root)
	inner.Insert(Symbol{Name: "x", Kind: Scalar, Type: dtype.Bool, ArrayLength: 1})

	sym, ok := inner.Lookup("x")
	if !ok {
		t.Fatal("expected x to resolve")
	}
	if sym.Type != dtype.Bool {
		t.Errorf("expected shadowed inner x (bool), got %s", sym.Type)
	}

	outer, ok := root.Lookup("x")
	if !ok || outer.Type != dtype.Int {
		t.Errorf("expected outer x (int) unaffected by shadowing, got %+v", outer)
	}
}

func TestLookupMissing(t *testing.T) {
	root := New(nil)
	if _, ok := root.Lookup("nope"); ok {
		t.Error("expected lookup of undeclared name to fail")
	}
}

func TestDuplicates(t *testing.T) {
	root := New(nil)
	root.Insert(Symbol{Name: "a", Kind: Scalar, Type: dtype.Int, ArrayLength: 1})
	root.Insert(Symbol{Name: "b", Kind: Scalar, Type: dtype.Bool, ArrayLength: 1})
	root.Insert(Symbol{Name: "a", Kind: Scalar, Type: dtype.Int, ArrayLength: 1})

	got := root.Duplicates()
	want := []string{"a"}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("Duplicates() diff: %v", diff)
	}
}

func TestDuplicatesNoneFound(t *testing.T) {
	root := New(nil)
	root.Insert(Symbol{Name: "a", Kind: Scalar, Type: dtype.Int, ArrayLength: 1})
	root.Insert(Symbol{Name: "b", Kind: Scalar, Type: dtype.Bool, ArrayLength: 1})

	if dups := root.Duplicates(); dups != nil {
		t.Errorf("expected no duplicates, got %v", dups)
	}
}

func TestLookupLocalIgnoresParent(t *testing.T) {
	root := New(nil)
	root.Insert(Symbol{Name: "x", Kind: Scalar, Type: dtype.Int, ArrayLength: 1})
	inner := New(root)

	if _, ok := inner.LookupLocal("x"); ok {
		t.Error("LookupLocal should not see parent scope's symbols")
	}
	if _, ok := inner.Lookup("x"); !ok {
		t.Error("Lookup should see parent scope's symbols")
	}
}
