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

package mtbdd

// Apply1 lifts a pointwise unary operation on leaf values to a whole-MTBDD
// operation. The result is owned by the caller (refs == 0 on the returned
// root unless it happens to coincide with an already-referenced node);
// callers that keep the result should Ref it.
func Apply1[D comparable](p *Package[D], a *Node[D], op func(D) D) *Node[D] {
	memo := make(map[*Node[D]]*Node[D])
	var rec func(n *Node[D]) *Node[D]
	rec = func(n *Node[D]) *Node[D] {
		if r, ok := memo[n]; ok {
			return r
		}
		var r *Node[D]
		if n.leaf {
			r = p.Leaf(op(n.value))
		} else {
			low := rec(n.low)
			high := rec(n.high)
			var err error
			r, err = p.Internal(low, high, n.variable)
			if err != nil {
				panic(err)
			}
		}
		memo[n] = r
		return r
	}
	return rec(a)
}

// Apply2 lifts a pointwise binary operation to a whole-MTBDD operation over
// two MTBDDs sharing a variable order, per spec.md §4.2: at each step it
// classifies which of the two roots is internal with the smaller variable
// and recurses into the matching low/high combination, passing through any
// operand whose variable is strictly larger to both branches unchanged.
func Apply2[D comparable](p *Package[D], a, b *Node[D], op func(x, y D) D) *Node[D] {
	type key struct{ a, b *Node[D] }
	memo := make(map[key]*Node[D])
	var rec func(a, b *Node[D]) *Node[D]
	rec = func(a, b *Node[D]) *Node[D] {
		k := key{a, b}
		if r, ok := memo[k]; ok {
			return r
		}
		var r *Node[D]
		if a.leaf && b.leaf {
			r = p.Leaf(op(a.value, b.value))
		} else {
			v := minVar2(p.Order(), a, b)
			aLow, aHigh := branch(a, v)
			bLow, bHigh := branch(b, v)
			low := rec(aLow, bLow)
			high := rec(aHigh, bHigh)
			var err error
			r, err = p.Internal(low, high, v)
			if err != nil {
				panic(err)
			}
		}
		memo[k] = r
		return r
	}
	return rec(a, b)
}

// Apply3 lifts a pointwise ternary operation to a whole-MTBDD operation
// over three MTBDDs sharing a variable order. Used by, e.g., combining a
// transition relation MTBDD, a source-state-set MTBDD and a default mask in
// a single descent rather than two chained Apply2 calls.
func Apply3[D comparable](p *Package[D], a, b, c *Node[D], op func(x, y, z D) D) *Node[D] {
	type key struct{ a, b, c *Node[D] }
	memo := make(map[key]*Node[D])
	var rec func(a, b, c *Node[D]) *Node[D]
	rec = func(a, b, c *Node[D]) *Node[D] {
		k := key{a, b, c}
		if r, ok := memo[k]; ok {
			return r
		}
		var r *Node[D]
		if a.leaf && b.leaf && c.leaf {
			r = p.Leaf(op(a.value, b.value, c.value))
		} else {
			v := minVar3(p.Order(), a, b, c)
			aLow, aHigh := branch(a, v)
			bLow, bHigh := branch(b, v)
			cLow, cHigh := branch(c, v)
			low := rec(aLow, bLow, cLow)
			high := rec(aHigh, bHigh, cHigh)
			var err error
			r, err = p.Internal(low, high, v)
			if err != nil {
				panic(err)
			}
		}
		memo[k] = r
		return r
	}
	return rec(a, b, c)
}

// branch returns the (low, high) pair n would contribute to a recursive
// Apply step at variable v: if n is internal at exactly v, its real
// children; otherwise (n is a leaf, or an internal node whose variable is
// strictly greater than v) n passed through unchanged to both branches.
func branch[D comparable](n *Node[D], v int) (low, high *Node[D]) {
	if !n.leaf && n.variable == v {
		return n.low, n.high
	}
	return n, n
}

// minVar2 picks the variable to branch on next when combining a and b:
// whichever operand is internal at the position order ranks topmost, per
// the "sharing a variable order" precondition Apply2 documents. A bare
// `<` on the raw variable numbers would implicitly assume NaturalOrder;
// routing through order makes an ExplicitOrder-built Package's Apply calls
// agree with its Internal calls about which variable comes first.
func minVar2[D comparable](order VarOrder, a, b *Node[D]) int {
	v := -1
	if !a.leaf {
		v = a.variable
	}
	if !b.leaf {
		if v == -1 || order.Position(b.variable) < order.Position(v) {
			v = b.variable
		}
	}
	return v
}

func minVar3[D comparable](order VarOrder, a, b, c *Node[D]) int {
	v := -1
	for _, n := range []*Node[D]{a, b, c} {
		if n.leaf {
			continue
		}
		if v == -1 || order.Position(n.variable) < order.Position(v) {
			v = n.variable
		}
	}
	return v
}
