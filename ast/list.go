package ast

import "decaf/dtype"

// NodeList is a singly linked, intrusive, append-only ordered sequence
// of nodes: the link pointer lives on the node itself (base.nextNode),
// not in a separate wrapper, matching §3's "every node carries ... a
// next link used by NodeList" and §4.2's "no insertion, no removal".
//
// Grounded on the teacher's own append-only slices in
// semantics/symbol_table.go's declaration-order store; the intrusive
// linking is the spec's own design, not the teacher's (the teacher uses
// plain Go slices throughout), so here the idiom is built from the
// spec's description directly.
type NodeList struct {
	head, tail Node
	size       int
}

// Append adds n to the end of the list in O(1).
func (l *NodeList) Append(n Node) {
	n.setNext(nil)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.setNext(n)
	}
	l.tail = n
	l.size++
}

// Len returns the number of elements.
func (l *NodeList) Len() int { return l.size }

// Each calls fn for every element, front-to-back, preserving
// declaration order.
func (l *NodeList) Each(fn func(Node)) {
	for n := l.head; n != nil; n = n.next() {
		fn(n)
	}
}

// Slice materializes the list into a plain slice, front-to-back. Used
// where callers want random access or len() without walking twice.
func (l *NodeList) Slice() []Node {
	out := make([]Node, 0, l.size)
	l.Each(func(n Node) { out = append(out, n) })
	return out
}

// Parameter is one formal-parameter entry. Parameters are not AST
// nodes (§4.3: "Parameters are not traversed as nodes"), so ParameterList
// links them through their own intrusive next pointer instead of
// reusing Node.
type Parameter struct {
	Name string
	Type dtype.DecafType
	next *Parameter
}

// ParameterList is an intrusive, append-only, ordered sequence of
// Parameters.
type ParameterList struct {
	head, tail *Parameter
	size       int
}

// Append adds p to the end of the list in O(1).
func (l *ParameterList) Append(p *Parameter) {
	p.next = nil
	if l.tail == nil {
		l.head = p
	} else {
		l.tail.next = p
	}
	l.tail = p
	l.size++
}

// Len returns the number of parameters.
func (l *ParameterList) Len() int { return l.size }

// Each calls fn for every parameter, front-to-back.
func (l *ParameterList) Each(fn func(*Parameter)) {
	for p := l.head; p != nil; p = p.next {
		fn(p)
	}
}

// Slice materializes the list into a plain slice, front-to-back.
func (l *ParameterList) Slice() []*Parameter {
	out := make([]*Parameter, 0, l.size)
	l.Each(func(p *Parameter) { out = append(out, p) })
	return out
}
