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

// Package antichain implements the antichain and cached-operator utilities
// of spec.md §4.4: a one-column antichain of states, a two-column
// antichain of (state, state-set) obligations with a pluggable set
// comparer, an ordered variant giving deterministic pop order, and a
// memoizing binary operator cache with targeted invalidation.
package antichain

import "github.com/vata-go/vata/preorder"

// Antichain1C is a set of states that is downward-closed under a preorder:
// inserting x removes every already-present y with x <= y.
type Antichain1C struct {
	r      *preorder.Relation
	states map[int]bool
}

// New1C returns an empty Antichain1C over the given preorder.
func New1C(r *preorder.Relation) *Antichain1C {
	return &Antichain1C{r: r, states: make(map[int]bool)}
}

// Contains reports whether some stored y has y <= x.
func (a *Antichain1C) Contains(x int) bool {
	for y := range a.states {
		if a.r.LessEq(y, x) {
			return true
		}
	}
	return false
}

// Refine removes every stored z with x <= z; it is the half of Insert that
// keeps the antichain minimal and is exposed separately since some callers
// need to refine without also inserting (e.g. speculative probes).
func (a *Antichain1C) Refine(x int) {
	for z := range a.states {
		if a.r.LessEq(x, z) {
			delete(a.states, z)
		}
	}
}

// Insert adds x, first refining away any state it dominates. It does not
// check Contains first: callers that want to skip redundant inserts should
// call Contains themselves, since Insert's job is only to keep the
// antichain minimal once a new element is known to be needed.
func (a *Antichain1C) Insert(x int) {
	a.Refine(x)
	a.states[x] = true
}

// Data exposes the current set of states. Callers must not mutate it.
func (a *Antichain1C) Data() map[int]bool {
	return a.states
}

// Len returns the number of states currently stored.
func (a *Antichain1C) Len() int {
	return len(a.states)
}
