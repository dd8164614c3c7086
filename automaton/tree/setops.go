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

package tree

import "github.com/vata-go/vata/alphabet"

type symbolArityKey struct {
	Symbol alphabet.Symbol
	Arity  int
}

// maxState returns 1 + the largest state id mentioned by a, or 0 if a is
// empty — used to find a disjoint offset for Union.
func maxState(a *Automaton) int {
	max := -1
	bump := func(s int) {
		if s > max {
			max = s
		}
	}
	for s := range a.finals {
		bump(s)
	}
	for _, tr := range a.AllTransitions() {
		bump(tr.Parent)
		for _, c := range tr.Children {
			bump(c)
		}
	}
	return max + 1
}

// Union returns a fresh automaton accepting L(a) ∪ L(b), built on a new
// tuple cache: b's states are renumbered by a disjoint offset so that the
// two operands' state spaces never collide (spec.md §9 "supplemented
// features": union via disjoint-sum construction, matching
// explicit_tree_isect.cc's sibling operation for intersection).
func Union(a, b *Automaton) *Automaton {
	out := New(NewTupleCache(), a.Alphabet)
	offset := maxState(a)

	for _, tr := range a.AllTransitions() {
		out.AddTransition(tr.Children, tr.Symbol, tr.Parent)
	}
	for s := range a.finals {
		out.SetFinal(s)
	}

	for _, tr := range b.AllTransitions() {
		shifted := make([]int, len(tr.Children))
		for i, c := range tr.Children {
			shifted[i] = c + offset
		}
		out.AddTransition(shifted, tr.Symbol, tr.Parent+offset)
	}
	for s := range b.finals {
		out.SetFinal(s + offset)
	}
	return out
}

// pairState encodes a product state (p, q) as a single int, q bounded by
// qSpan (1 + the largest state id in b).
func pairState(p, q, qSpan int) int {
	return p*qSpan + q
}

// Intersect returns the (unreachability-unpruned) product automaton
// accepting L(a) ∩ L(b): for every pair of same-symbol, same-arity
// transitions a(p1..pk)->p in a and a(q1..qk)->q in b, the product has
// a((p1,q1)..(pk,qk)) -> (p,q). Final states are pairs where both
// components are final. Callers that want the product's unreachable
// states stripped should follow up with prune.RemoveUnreachable (spec.md
// §8 scenario 3: an intersection of automata with no common accepted tree
// has no reachable final state in the product).
func Intersect(a, b *Automaton) *Automaton {
	out := New(NewTupleCache(), a.Alphabet)
	qSpan := maxState(b)
	if qSpan == 0 {
		qSpan = 1
	}

	bBySymbolArity := make(map[symbolArityKey][]Transition)
	for _, tr := range b.AllTransitions() {
		k := symbolArityKey{Symbol: tr.Symbol, Arity: len(tr.Children)}
		bBySymbolArity[k] = append(bBySymbolArity[k], tr)
	}

	for _, ta := range a.AllTransitions() {
		k := symbolArityKey{Symbol: ta.Symbol, Arity: len(ta.Children)}
		for _, tb := range bBySymbolArity[k] {
			children := make([]int, len(ta.Children))
			for i := range ta.Children {
				children[i] = pairState(ta.Children[i], tb.Children[i], qSpan)
			}
			parent := pairState(ta.Parent, tb.Parent, qSpan)
			out.AddTransition(children, ta.Symbol, parent)
		}
	}
	for p := range a.finals {
		for q := range b.finals {
			out.SetFinal(pairState(p, q, qSpan))
		}
	}
	return out
}
