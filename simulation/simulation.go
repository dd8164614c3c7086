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

// Package simulation computes the downward and upward simulation preorders
// spec.md §5 describes: the inclusion checkers (packages incl/down,
// incl/up) use these to relax state-set membership so that a state need
// not subsume another exactly, only up to simulation.
//
// The reference implementation's OLRT partition-relation refinement
// maintains the preorder incrementally with per-pair "shared counters" so
// a single removed (p,q) pair only re-examines the edges it could have
// invalidated. This package computes the same greatest fixpoint directly
// by repeated full refinement passes instead: asymptotically worse, but a
// much smaller surface to get right, and every pass is independently
// checkable against the relation's definition. See DESIGN.md for why the
// incremental counters were not ported.
package simulation

import (
	"github.com/vata-go/vata/lts"
	"github.com/vata-go/vata/preorder"
)

// Downward computes the downward simulation preorder over an LTS whose
// edges are a tree automaton's flattened (parent --(symbol,position)-->
// child) transitions: p ⊑ q iff for every edge p --l--> p', q has some
// edge q --l--> q' with p' ⊑ q'.
func Downward(sys *lts.System) *preorder.Relation {
	n := len(sys.States)
	index := stateIndex(sys.States)
	r := preorder.New(n, func(_, _ int) bool { return true })

	for {
		changed := false
		for _, p := range sys.States {
			pi := index[p]
			for _, q := range sys.States {
				qi := index[q]
				if pi == qi || !r.LessEq(pi, qi) {
					continue
				}
				if !simulatesFrom(sys, r, index, p, q) {
					r.Set(pi, qi, false)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return r
}

// simulatesFrom reports whether every outgoing edge of p is matched by
// some outgoing edge of q with the same label and an r-related target,
// under the current (possibly not yet fully refined) approximation r.
func simulatesFrom(sys *lts.System, r *preorder.Relation, index map[int]int, p, q int) bool {
	for _, pe := range sys.From(p) {
		matched := false
		for _, qe := range sys.From(q) {
			if qe.Label != pe.Label {
				continue
			}
			if r.LessEq(index[pe.To], index[qe.To]) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Upward computes the upward simulation preorder: p ⊑ᵤ q iff for every
// context (symbol, position, siblings, parent) in which p occurs, q has a
// context with the same symbol and position, siblings related pairwise
// by down (the downward simulation over the same automaton, passed in
// since upward simulation is only meaningful relative to it), and whose
// parent is, coinductively, upward-related too.
func Upward(env lts.Environment, down *preorder.Relation, states []int) *preorder.Relation {
	n := len(states)
	index := stateIndex(states)
	r := preorder.New(n, func(_, _ int) bool { return true })

	for {
		changed := false
		for _, p := range states {
			pi := index[p]
			for _, q := range states {
				qi := index[q]
				if pi == qi || !r.LessEq(pi, qi) {
					continue
				}
				if !upwardMatches(env, down, r, index, p, q) {
					r.Set(pi, qi, false)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return r
}

func upwardMatches(env lts.Environment, down, r *preorder.Relation, index map[int]int, p, q int) bool {
	for _, ctxP := range env[p] {
		matched := false
		for _, ctxQ := range env[q] {
			if ctxQ.Symbol != ctxP.Symbol || ctxQ.Position != ctxP.Position {
				continue
			}
			if len(ctxQ.Siblings) != len(ctxP.Siblings) {
				continue
			}
			ok := true
			for j := range ctxP.Siblings {
				if j == ctxP.Position {
					continue
				}
				si, sok1 := index[ctxP.Siblings[j]]
				ti, sok2 := index[ctxQ.Siblings[j]]
				if !sok1 || !sok2 || !down.LessEq(si, ti) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			pPar, parOK1 := index[ctxP.Parent]
			qPar, parOK2 := index[ctxQ.Parent]
			if !parOK1 || !parOK2 || !r.LessEq(pPar, qPar) {
				continue
			}
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

func stateIndex(states []int) map[int]int {
	idx := make(map[int]int, len(states))
	for i, s := range states {
		idx[s] = i
	}
	return idx
}
