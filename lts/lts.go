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

// Package lts builds the intermediate labeled-transition-system view of a
// tree automaton that the simulation engine (package simulation) refines.
// A tree automaton's bottom-up transitions f(p1,...,pn) -> p are flattened
// into LTS edges labeled by (symbol, position): p --(f,i)--> pi, one edge
// per child position, so that a partition-relation refinement algorithm
// written for ordinary labeled transition systems can be reused unchanged
// for both the downward and the upward simulation preorder (spec.md §5,
// "supplemented features" item 5: upward simulation additionally needs a
// per-state "environment" — the set of (f, i, sibling-states) contexts a
// state occurs in — which BuildEnvironment below derives from the same
// flattened edge set).
package lts

import "github.com/vata-go/vata/alphabet"

// Label is one (symbol, child-position) edge label.
type Label struct {
	Symbol   alphabet.Symbol
	Position int
}

// Edge is one label-indexed step of the LTS: From --Label--> To.
type Edge struct {
	From  int
	Label Label
	To    int
}

// System is the flattened LTS derived from a tree automaton's transitions.
type System struct {
	States  []int
	Edges   []Edge
	byFrom  map[int][]Edge
	byLabel map[Label][]Edge
}

// Build flattens transitions into an LTS: one edge per (parent, symbol,
// position, child).
func Build(states []int, symbols []alphabet.Symbol, children [][]int, parents []int) *System {
	s := &System{
		byFrom:  make(map[int][]Edge),
		byLabel: make(map[Label][]Edge),
	}
	seen := make(map[int]bool)
	for _, q := range states {
		if !seen[q] {
			seen[q] = true
			s.States = append(s.States, q)
		}
	}
	for i, sym := range symbols {
		p := parents[i]
		if !seen[p] {
			seen[p] = true
			s.States = append(s.States, p)
		}
		for pos, c := range children[i] {
			if !seen[c] {
				seen[c] = true
				s.States = append(s.States, c)
			}
			e := Edge{From: p, Label: Label{Symbol: sym, Position: pos}, To: c}
			s.Edges = append(s.Edges, e)
			s.byFrom[p] = append(s.byFrom[p], e)
			s.byLabel[e.Label] = append(s.byLabel[e.Label], e)
		}
	}
	return s
}

// From returns every edge leaving q.
func (s *System) From(q int) []Edge { return s.byFrom[q] }

// ByLabel returns every edge carrying the given label.
func (s *System) ByLabel(l Label) []Edge { return s.byLabel[l] }

// Context is one occurrence of a state as the i-th child under symbol:
// Siblings holds the children at every position, the state itself
// included, in order.
type Context struct {
	Symbol   alphabet.Symbol
	Position int
	Parent   int
	Siblings []int // all children including the state itself, position preserved
}

// Environment maps a state to every context it occurs in — the data the
// upward simulation refinement needs to compare two states' "pasts"
// rather than their futures.
type Environment map[int][]Context

// BuildEnvironment derives, for every child position of every transition,
// the context its occupant sits in.
func BuildEnvironment(symbols []alphabet.Symbol, children [][]int, parents []int) Environment {
	env := make(Environment)
	for i, sym := range symbols {
		p := parents[i]
		kids := children[i]
		for pos, c := range kids {
			env[c] = append(env[c], Context{Symbol: sym, Position: pos, Parent: p, Siblings: kids})
		}
	}
	return env
}
