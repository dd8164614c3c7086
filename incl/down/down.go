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

// Package down implements downward tree-automaton language inclusion:
// L(A) ⊆ L(B), checked top-down from A's final states by recursively
// decomposing each of A's transitions into a per-child-position obligation
// against the set of B-states reachable at that position (spec.md §6).
//
// Membership in a candidate state set is relaxed by the simulation
// preorder (package simulation/preorder): a state q covers a candidate set
// S as soon as some member of S simulates q, which is what lets the
// antichain-style checker terminate without enumerating every B subset
// explicitly reachable from the product construction.
package down

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/preorder"
	"github.com/vata-go/vata/stateset"
)

type obligation struct {
	state int
	setID string
}

// Checker holds the per-call memoization state for one inclusion query.
type Checker struct {
	a, b *tree.Automaton
	sim  *preorder.Relation
	sets *stateset.Cache

	// memo maps an obligation to its verdict (spec.md §4.6's lte_cache).
	// Obligations currently being verified are recorded with verdict true
	// before recursing (a coinductive assumption): a cycle back to an
	// in-progress obligation is treated as satisfied, which is sound for
	// the typical acyclic and "eventually productive" automata this
	// checker targets. A plain map is used rather than
	// antichain.CachedBinaryOp because that cache's Call computes and
	// caches atomically, which cannot express "pre-seed true, then
	// recurse, then overwrite" — the coinductive assumption this
	// algorithm relies on to terminate on cyclic automata.
	memo map[obligation]bool
}

// NewChecker builds a Checker for L(a) ⊆ L(b) using sim (e.g. the identity
// preorder for an exact check, or a computed downward-simulation preorder
// to relax it).
func NewChecker(a, b *tree.Automaton, sim *preorder.Relation) *Checker {
	return &Checker{a: a, b: b, sim: sim, sets: stateset.NewCache(), memo: make(map[obligation]bool)}
}

// Holds reports whether L(a) ⊆ L(b).
func (c *Checker) Holds() bool {
	finalB := c.sets.Intern(c.b.FinalStates()...)
	for _, p := range c.a.FinalStates() {
		if !c.included(p, finalB) {
			return false
		}
	}
	return true
}

// Witness returns a state of a whose language is not included in b, or
// (-1, false) if Holds() would return true. It re-derives the verdict by
// scanning a's final states in order, so callers should call this instead
// of re-running Holds() when they need the counterexample root.
func (c *Checker) Witness() (int, bool) {
	finalB := c.sets.Intern(c.b.FinalStates()...)
	for _, p := range c.a.FinalStates() {
		if !c.included(p, finalB) {
			return p, true
		}
	}
	return -1, false
}

// taskPhase distinguishes the two visits a frame makes in
// expandNonRecursive's worklist: enter discovers an obligation's child
// obligations and schedules them ahead of itself, finalize computes the
// obligation's verdict once every child it scheduled has already resolved.
type taskPhase int

const (
	phaseEnter taskPhase = iota
	phaseFinalize
)

type task struct {
	p     int
	s     *stateset.Set
	phase taskPhase
}

// included reports whether the tree rooted at A-state p is accepted by the
// B-automaton restricted to candidate parent set s, via expandNonRecursive.
func (c *Checker) included(p int, s *stateset.Set) bool {
	return c.expandNonRecursive(p, s)
}

// expandNonRecursive is the explicit-worklist replacement for recursive
// descent: an obligation's child obligations
// (one per child position of every matching A/B transition pair) are pushed
// as their own worklist frames instead of resolved via a Go function call,
// so the call stack no longer grows with the depth of the tree being
// checked — the dimension spec.md §1 sizes at hundreds of thousands of
// transitions. Each obligation is visited twice: phaseEnter schedules its
// dependencies (and pre-seeds the coinductive memo entry before any of
// them is examined), phaseFinalize combines the now-
// memoized dependency verdicts into its own.
func (c *Checker) expandNonRecursive(rootP int, rootS *stateset.Set) bool {
	rootOb := obligation{state: rootP, setID: rootS.Key()}
	stack := []task{{p: rootP, s: rootS, phase: phaseEnter}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.phase == phaseFinalize {
			c.finalizeObligation(t.p, t.s)
			continue
		}

		ob := obligation{state: t.p, setID: t.s.Key()}
		if stateset.ContainsGTE(c.sim, t.s, t.p) {
			c.memo[ob] = true
			continue
		}
		if _, ok := c.memo[ob]; ok {
			continue
		}
		c.memo[ob] = true // optimistic coinductive assumption, see Checker doc

		cluster := c.a.TransitionsFrom(t.p)
		if cluster == nil {
			// p is a ground-arity state with no outgoing transitions recorded;
			// it trivially has no tree to witness, so inclusion holds.
			c.memo[ob] = true
			continue
		}

		stack = append(stack, task{p: t.p, s: t.s, phase: phaseFinalize})
		for _, sym := range cluster.Symbols() {
			for _, tup := range cluster.Tuples(sym) {
				perPosition := c.perPositionSets(sym, tup.Children(), t.s)
				if perPosition == nil {
					continue
				}
				for i, pi := range tup.Children() {
					si := perPosition[i]
					childOb := obligation{state: pi, setID: si.Key()}
					if _, ok := c.memo[childOb]; ok {
						continue
					}
					stack = append(stack, task{p: pi, s: si, phase: phaseEnter})
				}
			}
		}
	}
	return c.memo[rootOb]
}

// finalizeObligation combines the per-tuple verdicts of an obligation
// already expanded by expandNonRecursive: every child-position obligation
// it scheduled has resolved by the time this runs, so it only needs memo
// lookups, never a recursive call.
func (c *Checker) finalizeObligation(p int, s *stateset.Set) {
	ob := obligation{state: p, setID: s.Key()}
	cluster := c.a.TransitionsFrom(p)
	ok := true
	for _, sym := range cluster.Symbols() {
		for _, tup := range cluster.Tuples(sym) {
			if !c.matchesSomeBTransitionMemo(sym, tup.Children(), s) {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
	}
	c.memo[ob] = ok
}

// matchesSomeBTransitionMemo checks whether every child position of an A
// transition f(p1..pk)->p is covered by the corresponding per-position set
// of B states reachable via some f-transition whose parent lies in s,
// reading each child position's verdict from memo rather than recursing —
// expandNonRecursive guarantees every such obligation was already pushed
// and resolved ahead of this one.
func (c *Checker) matchesSomeBTransitionMemo(sym alphabet.Symbol, children []int, s *stateset.Set) bool {
	perPosition := c.perPositionSets(sym, children, s)
	if perPosition == nil {
		return false
	}
	for i, pi := range children {
		si := perPosition[i]
		if !c.memo[obligation{state: pi, setID: si.Key()}] {
			return false
		}
	}
	return true
}

// perPositionSets gathers, for each child position of an arity-k A
// transition on sym, the set of B states reachable at that position via
// some f-transition whose parent lies in s; nil means no B transition on
// sym with matching arity exists at all, so the A transition cannot be
// matched regardless of child obligations.
func (c *Checker) perPositionSets(sym alphabet.Symbol, children []int, s *stateset.Set) []*stateset.Set {
	k := len(children)
	perPosition := make([][]int, k)
	found := false
	for _, q := range s.States() {
		cluster := c.b.TransitionsFrom(q)
		if cluster == nil {
			continue
		}
		for _, tup := range cluster.Tuples(sym) {
			tc := tup.Children()
			if len(tc) != k {
				continue
			}
			found = true
			for i, qi := range tc {
				perPosition[i] = append(perPosition[i], qi)
			}
		}
	}
	if !found {
		return nil
	}
	result := make([]*stateset.Set, k)
	for i, states := range perPosition {
		result[i] = c.sets.Intern(states...)
	}
	return result
}
