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

// Package up implements upward tree-automaton language inclusion: instead
// of decomposing obligations top-down from A's final states (package
// incl/down), it computes, bottom-up, a per-A-state "coverage" set —
// every B-state that simulates the full set of trees reaching that A-state
// — via a greatest-fixpoint shrink starting from "every B-state covers
// everything" and removing a candidate q from state p's coverage set the
// moment some transition into p has no matching transition into q whose
// children are themselves still covered (spec.md §7).
package up

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/preorder"
	"github.com/vata-go/vata/stateset"
)

// Checker holds the per-call state of one upward inclusion query.
type Checker struct {
	a, b *tree.Automaton
	sim  *preorder.Relation
	sets *stateset.Cache

	// bByParentSymbol[q][sym] is every children-tuple of a B-transition
	// sym(...) -> q, precomputed once since it depends only on b.
	bByParentSymbol map[int]map[alphabet.Symbol][][]int

	coveredBy map[int]*stateset.Set
}

// NewChecker builds a Checker for L(a) ⊆ L(b).
func NewChecker(a, b *tree.Automaton, sim *preorder.Relation) *Checker {
	c := &Checker{
		a: a, b: b, sim: sim,
		sets:            stateset.NewCache(),
		bByParentSymbol: make(map[int]map[alphabet.Symbol][][]int),
		coveredBy:       make(map[int]*stateset.Set),
	}
	for _, q := range b.States() {
		cluster := b.TransitionsFrom(q)
		if cluster == nil {
			continue
		}
		bySym := make(map[alphabet.Symbol][][]int)
		for _, sym := range cluster.Symbols() {
			for _, tup := range cluster.Tuples(sym) {
				bySym[sym] = append(bySym[sym], tup.Children())
			}
		}
		c.bByParentSymbol[q] = bySym
	}
	return c
}

// Holds reports whether L(a) ⊆ L(b).
func (c *Checker) Holds() bool {
	c.saturate()
	finalB := c.sets.Intern(c.b.FinalStates()...)
	for _, p := range c.a.FinalStates() {
		cov := c.coveredBy[p]
		if cov == nil {
			return false
		}
		if !anyMemberIn(cov, finalB, c.sim) {
			return false
		}
	}
	return true
}

func anyMemberIn(s, finalB *stateset.Set, sim *preorder.Relation) bool {
	for _, q := range s.States() {
		if finalB.Contains(q) || stateset.ContainsGTE(sim, finalB, q) {
			return true
		}
	}
	return false
}

// saturate initializes every A-state's coverage to "all of B's states" and
// repeatedly shrinks it until stable.
func (c *Checker) saturate() {
	var bStates []int
	for _, tr := range c.b.AllTransitions() {
		bStates = append(bStates, tr.Parent)
		bStates = append(bStates, tr.Children...)
	}
	bStates = append(bStates, c.b.FinalStates()...)
	universe := c.sets.Intern(bStates...)
	byParent := make(map[int][]tree.Transition)
	for _, tr := range c.a.AllTransitions() {
		byParent[tr.Parent] = append(byParent[tr.Parent], tr)
	}
	for p := range byParent {
		c.coveredBy[p] = universe
	}

	for {
		changed := false
		for p, transitions := range byParent {
			kept := make([]int, 0, c.coveredBy[p].Len())
			for _, q := range c.coveredBy[p].States() {
				if c.allTransitionsMatch(q, transitions) {
					kept = append(kept, q)
				}
			}
			next := c.sets.Intern(kept...)
			if next.Key() != c.coveredBy[p].Key() {
				c.coveredBy[p] = next
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// allTransitionsMatch reports whether, for every A-transition into p, some
// B-transition into q matches the symbol/arity with every child still
// covered by the corresponding A-child's current coverage set.
func (c *Checker) allTransitionsMatch(q int, transitions []tree.Transition) bool {
	for _, tr := range transitions {
		if !c.oneTransitionMatches(q, tr) {
			return false
		}
	}
	return true
}

func (c *Checker) oneTransitionMatches(q int, tr tree.Transition) bool {
	candidates := c.bByParentSymbol[q][tr.Symbol]
	for _, children := range candidates {
		if len(children) != len(tr.Children) {
			continue
		}
		ok := true
		for i, ci := range tr.Children {
			cov := c.coveredBy[ci]
			if cov == nil || !cov.Contains(children[i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
