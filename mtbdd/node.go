// Copyright 2024 The Vata-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mtbdd implements a hash-consed, reference-counted Multi-Terminal
// Binary Decision Diagram (MTBDD) layer over a parametrized leaf type, plus
// the Apply family of generic catamorphisms over one or more MTBDDs.
//
// Unlike the historical C++ implementation this is ported from, the
// hash-cons tables live on a *Package value rather than as process-wide
// globals: a Package is the unit of sharing (two nodes only compare equal
// if built from the same Package), which keeps the single-threaded-only
// assumption of spec §5 local and testable instead of relying on package
// init order.
package mtbdd

import log "github.com/golang/glog"

// Node is a node of an MTBDD: either an internal node carrying a variable
// index and two children, or a leaf carrying a value of type D.
type Node[D comparable] struct {
	leaf     bool
	value    D
	variable int
	low      *Node[D]
	high     *Node[D]
	refs     int
}

// IsLeaf reports whether n is a leaf node.
func (n *Node[D]) IsLeaf() bool {
	return n.leaf
}

// Value returns the value carried by a leaf node. Calling it on an internal
// node returns the zero value of D; callers should check IsLeaf first.
func (n *Node[D]) Value() D {
	return n.value
}

// Variable returns the decision variable of an internal node. Calling it on
// a leaf returns 0; callers should check IsLeaf first.
func (n *Node[D]) Variable() int {
	return n.variable
}

// Low returns the low (variable=0) child of an internal node, or nil for a
// leaf.
func (n *Node[D]) Low() *Node[D] {
	return n.low
}

// High returns the high (variable=1) child of an internal node, or nil for
// a leaf.
func (n *Node[D]) High() *Node[D] {
	return n.high
}

// Refs returns the current structural reference count of n. Exposed mainly
// for tests asserting the invariants of spec.md §8.
func (n *Node[D]) Refs() int {
	return n.refs
}

type internalKey[D comparable] struct {
	low, high *Node[D]
	variable  int
}

// VarOrder maps a decision variable to its position in an MTBDD's
// top-to-bottom ordering: a node for v1 must never appear below a node for
// v2 along the same path when Position(v1) < Position(v2), per the
// "ordered" invariant of spec.md §3. Variables keep the same int identity
// callers already pass to Internal/ValueAt/ExtendWith; VarOrder only
// changes how two variables compare against each other.
type VarOrder interface {
	Position(variable int) int
}

// NaturalOrder is the identity VarOrder — variable v sits at position v —
// matching the hard-coded ordering every caller relied on before Package
// took an explicit order.
type NaturalOrder struct{}

// Position implements VarOrder.
func (NaturalOrder) Position(variable int) int { return variable }

// ExplicitOrder is a VarOrder built from a caller-supplied permutation:
// order[i] names the variable that belongs at position i. This lets a
// caller keep related variables (e.g. one symbol's argument positions)
// adjacent in the BDD without renumbering the variables themselves.
// Variables absent from order fall back to their own value as position,
// so callers only need to list the variables whose relative order matters.
type ExplicitOrder struct {
	pos map[int]int
}

// NewExplicitOrder builds an ExplicitOrder from order, a permutation of
// variable ids listed from topmost to bottommost position.
func NewExplicitOrder(order []int) ExplicitOrder {
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	return ExplicitOrder{pos: pos}
}

// Position implements VarOrder.
func (o ExplicitOrder) Position(variable int) int {
	if p, ok := o.pos[variable]; ok {
		return p
	}
	return variable
}

// Package is a hash-consing table pair (internal nodes, leaves) plus the
// reference-counting bookkeeping described in spec.md §4.1. All nodes
// built from the same Package are canonical with respect to each other;
// nodes from different Packages must never be mixed in a single Apply
// call.
type Package[D comparable] struct {
	internals map[internalKey[D]]*Node[D]
	leaves    map[D]*Node[D]
	order     VarOrder
}

// NewPackage returns an empty hash-consing table using NaturalOrder.
func NewPackage[D comparable]() *Package[D] {
	return NewPackageWithOrder[D](NaturalOrder{})
}

// NewPackageWithOrder returns an empty hash-consing table whose Internal
// validates the "ordered" invariant, and whose Apply family chooses which
// variable to branch on next, according to order rather than assuming
// variables are already numbered top-to-bottom.
func NewPackageWithOrder[D comparable](order VarOrder) *Package[D] {
	return &Package[D]{
		internals: make(map[internalKey[D]]*Node[D]),
		leaves:    make(map[D]*Node[D]),
		order:     order,
	}
}

// Order returns p's VarOrder.
func (p *Package[D]) Order() VarOrder {
	return p.order
}

// Leaf returns the unique leaf node carrying v, creating it if necessary.
//
// Per spec.md §4.1 this does NOT bump v's structural reference count, even
// on a cache hit: leaves only accrue references through Internal's edge
// bookkeeping, or explicitly through Ref for a leaf held directly as a
// root. Calling Leaf repeatedly without ever wiring the result into an
// Internal node or Ref-ing it directly will make Delete free the node on
// its very first call — that mirrors the source library's contract, not a
// bug here.
func (p *Package[D]) Leaf(v D) *Node[D] {
	if n, ok := p.leaves[v]; ok {
		return n
	}
	n := &Node[D]{leaf: true, value: v}
	p.leaves[v] = n
	return n
}

// Internal returns the unique internal node for (low, high, variable),
// applying the BDD reduction rule (low == high collapses to low) and
// bumping the structural reference count of whichever node(s) become
// children of a newly-returned edge.
//
// Internal requires variable's position under p.Order() to be strictly
// less than the position of any non-leaf child's variable, maintaining the
// "ordered" invariant of spec.md §3. Unlike a bare int comparison, this
// check goes through p.order, so a Package built with an ExplicitOrder
// rejects an edge that is ordered correctly by raw variable number but not
// by the order the Package was actually built with.
func (p *Package[D]) Internal(low, high *Node[D], variable int) (*Node[D], error) {
	if low == nil || high == nil {
		return nil, errPreconditionNilChild
	}
	if low == high {
		return low, nil
	}
	pos := p.order.Position(variable)
	if !low.leaf && pos >= p.order.Position(low.variable) {
		return nil, errUnorderedChild
	}
	if !high.leaf && pos >= p.order.Position(high.variable) {
		return nil, errUnorderedChild
	}
	key := internalKey[D]{low, high, variable}
	if n, ok := p.internals[key]; ok {
		p.Ref(low)
		p.Ref(high)
		return n, nil
	}
	n := &Node[D]{low: low, high: high, variable: variable}
	p.internals[key] = n
	p.Ref(low)
	p.Ref(high)
	return n, nil
}

// Ref bumps n's structural reference count by one. External callers use it
// to register ownership of a root they intend to keep past the call that
// produced it.
func (p *Package[D]) Ref(n *Node[D]) {
	n.refs++
}

// Delete decrements n's structural reference count; once it reaches zero,
// n is removed from its hash-cons table and, if n is internal, its
// children are recursively Delete-d (releasing the edges n held). Delete
// is idempotent against re-entrant table lookups: the table entry is
// removed before children are released, so a child that happens to equal
// an ancestor by pointer can never be "found" mid-teardown.
func (p *Package[D]) Delete(n *Node[D]) {
	if n == nil {
		return
	}
	n.refs--
	if n.refs > 0 {
		return
	}
	if n.leaf {
		delete(p.leaves, n.value)
		return
	}
	delete(p.internals, internalKey[D]{n.low, n.high, n.variable})
	low, high := n.low, n.high
	n.low, n.high = nil, nil
	p.Delete(low)
	p.Delete(high)
}

// Size returns the number of live internal nodes plus leaves, for tests and
// diagnostics.
func (p *Package[D]) Size() int {
	return len(p.internals) + len(p.leaves)
}

var errPreconditionNilChild = nilChildError{}
var errUnorderedChild = unorderedChildError{}

type nilChildError struct{}

func (nilChildError) Error() string { return "precondition violated: nil child passed to Internal" }

type unorderedChildError struct{}

func (unorderedChildError) Error() string {
	return "precondition violated: variable does not precede a non-leaf child under the Package's VarOrder"
}

// ValueAt descends root according to assignment, taking the high child
// where assignment[v] is true and the low child otherwise; a variable
// beyond len(assignment) or simply absent from the path (a "don't care")
// behaves as 0, i.e. the low branch, per spec.md §4.1.
func ValueAt[D comparable](root *Node[D], assignment []bool) D {
	n := root
	for !n.leaf {
		bit := false
		if n.variable < len(assignment) {
			bit = assignment[n.variable]
		}
		if bit {
			n = n.high
		} else {
			n = n.low
		}
	}
	log.V(3).Infof("mtbdd.ValueAt: resolved to leaf %v", n.value)
	return n.value
}

// ExtendWith prepends offset fresh variables (0..offset-1, all of root's
// own variables must already be >= offset) above root: the all-low path
// through the new variables reaches root unchanged, and any other
// assignment of the new variables reaches dflt. This is how a per-symbol
// transition MTBDD is tagged with its arity/symbol prefix before being
// combined with its siblings (spec.md §4.1).
func (p *Package[D]) ExtendWith(root *Node[D], offset int, dflt D) *Node[D] {
	if offset <= 0 {
		return root
	}
	dfltLeaf := p.Leaf(dflt)
	p.Ref(dfltLeaf)
	cur := root
	for v := offset - 1; v >= 0; v-- {
		n, err := p.Internal(cur, dfltLeaf, v)
		if err != nil {
			// Internal fails only on a nil child or an out-of-order child;
			// neither happens while root's own variables are all >= offset.
			panic(err)
		}
		cur = n
	}
	return cur
}
