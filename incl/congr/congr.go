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

// Package congr checks language inclusion and equivalence of finite
// (word) automata over macro-states (spec.md §8): rather than
// determinizing each operand up front, it explores pairs
// (P, Q) of state sets — P drawn from automaton a, Q from automaton b —
// meaning "does every string reaching some state of P end in an a-accept
// state only if some string reaching a state of Q ends in a b-accept
// state". A pair failing that implication is a counterexample; a pair
// whose acceptance matches is expanded one symbol at a time, memoized by
// a MacroStateCache (package stateset) so no (P, Q) pair is explored
// twice. A pair is skipped only when the identical pair was already
// visited; no congruence closure over earlier pairs is computed, so a pair
// implied by earlier pairs is still expanded.
package congr

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/stateset"
)

// Order selects the macro-state exploration order.
type Order int

const (
	// BreadthFirst explores pairs level by level — shallow counterexamples
	// surface first.
	BreadthFirst Order = iota
	// DepthFirst explores each branch to exhaustion before backtracking —
	// lower peak memory on wide, shallow automata.
	DepthFirst
)

// Checker holds the per-call state of one congruence-based inclusion
// query.
type Checker struct {
	a, b    *finite.Automaton
	sets    *stateset.Cache
	symbols []alphabet.Symbol
	order   Order
	visited map[string]bool
}

// NewChecker builds a Checker for L(a) ⊆ L(b).
func NewChecker(a, b *finite.Automaton, order Order) *Checker {
	return &Checker{
		a: a, b: b,
		sets:    stateset.NewCache(),
		symbols: unionAlphabet(a, b),
		order:   order,
		visited: make(map[string]bool),
	}
}

// Holds reports whether L(a) ⊆ L(b).
func (c *Checker) Holds() bool {
	type pair struct{ p, q *stateset.Set }
	var pending []pair
	for _, sym := range c.symbols {
		p := c.sets.Intern(c.a.StartsOn(sym)...)
		q := c.sets.Intern(c.b.StartsOn(sym)...)
		pending = append(pending, pair{p, q})
	}

	for len(pending) > 0 {
		var cur pair
		if c.order == DepthFirst {
			cur = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		} else {
			cur = pending[0]
			pending = pending[1:]
		}

		key := cur.p.Key() + "|" + cur.q.Key()
		if c.visited[key] {
			continue
		}
		c.visited[key] = true

		if hasFinal(c.a, cur.p) && !hasFinal(c.b, cur.q) {
			return false
		}

		for _, sym := range c.symbols {
			np := c.sets.Intern(moveAll(c.a, cur.p, sym)...)
			nq := c.sets.Intern(moveAll(c.b, cur.q, sym)...)
			pending = append(pending, pair{np, nq})
		}
	}
	return true
}

// Equivalent reports whether L(a) == L(b).
func Equivalent(a, b *finite.Automaton, order Order) bool {
	return NewChecker(a, b, order).Holds() && NewChecker(b, a, order).Holds()
}

func hasFinal(a *finite.Automaton, s *stateset.Set) bool {
	for _, q := range s.States() {
		if a.IsFinal(q) {
			return true
		}
	}
	return false
}

func moveAll(a *finite.Automaton, s *stateset.Set, sym alphabet.Symbol) []int {
	var out []int
	for _, q := range s.States() {
		out = append(out, a.Next(q, sym)...)
	}
	return out
}

func unionAlphabet(a, b *finite.Automaton) []alphabet.Symbol {
	seen := make(map[alphabet.Symbol]bool)
	collect := func(a *finite.Automaton) {
		for _, q := range a.States() {
			for _, sym := range a.OutSymbols(q) {
				seen[sym] = true
			}
		}
		for _, q := range a.StartStates() {
			for _, sym := range a.StartSymbols(q) {
				seen[sym] = true
			}
		}
	}
	collect(a)
	collect(b)
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}
