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

package prune

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
)

// RemoveUnreachableFinite returns the sub-automaton of states reachable
// forward from a's start states — the finite-automaton analogue of
// RemoveUnreachable, walking edges the natural (start-to-final)
// direction since a finite automaton has no separate "ground" transition
// concept to walk backward from.
func RemoveUnreachableFinite(a *finite.Automaton) *finite.Automaton {
	reached := make(map[int]bool)
	var queue []int
	for _, q := range a.StartStates() {
		if !reached[q] {
			reached[q] = true
			queue = append(queue, q)
		}
	}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, sym := range a.OutSymbols(q) {
			for _, next := range a.Next(q, sym) {
				if !reached[next] {
					reached[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	out := finite.New(a.Alphabet)
	for _, q := range a.StartStates() {
		if !reached[q] {
			continue
		}
		for _, sym := range a.StartSymbols(q) {
			out.AddStart(sym, q)
		}
	}
	for _, q := range a.FinalStates() {
		if reached[q] {
			out.SetFinal(q)
		}
	}
	for _, q := range a.States() {
		if !reached[q] {
			continue
		}
		for _, sym := range a.OutSymbols(q) {
			for _, next := range a.Next(q, sym) {
				if reached[next] {
					out.AddTransition(q, sym, next)
				}
			}
		}
	}
	return out
}

// RemoveUselessFinite returns the sub-automaton of states that can still
// reach a final state, followed by RemoveUnreachableFinite to drop
// anything no longer reachable from a start state.
func RemoveUselessFinite(a *finite.Automaton) *finite.Automaton {
	useful := make(map[int]bool)
	for _, q := range a.FinalStates() {
		useful[q] = true
	}

	states := a.AllStates()
	for {
		changed := false
		for _, q := range states {
			if useful[q] {
				continue
			}
			for _, sym := range a.OutSymbols(q) {
				for _, next := range a.Next(q, sym) {
					if useful[next] {
						useful[q] = true
						changed = true
						break
					}
				}
				if useful[q] {
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	out := finite.New(a.Alphabet)
	for _, q := range a.StartStates() {
		if !useful[q] {
			continue
		}
		for _, sym := range a.StartSymbols(q) {
			out.AddStart(sym, q)
		}
	}
	for _, q := range a.FinalStates() {
		if useful[q] {
			out.SetFinal(q)
		}
	}
	for _, q := range states {
		if !useful[q] {
			continue
		}
		for _, sym := range a.OutSymbols(q) {
			for _, next := range a.Next(q, sym) {
				if useful[next] {
					out.AddTransition(q, sym, next)
				}
			}
		}
	}
	return RemoveUnreachableFinite(out)
}

type candStep struct {
	state int
	via   alphabet.Symbol
	prev  *candStep
}

// CandidateString returns the shortest accepted string, as a sequence of
// symbols, found by a breadth-first search from the start states; it
// resolves spec.md §9's finite candidate_tree ambiguity by always
// returning the witness for the first final state BFS reaches (see
// DESIGN.md). The second return value is false if a accepts nothing.
func CandidateString(a *finite.Automaton) ([]alphabet.Symbol, bool) {
	visited := make(map[int]bool)
	var queue []*candStep
	for _, q := range a.StartStates() {
		for _, sym := range a.StartSymbols(q) {
			if a.IsFinal(q) {
				return []alphabet.Symbol{sym}, true
			}
			if !visited[q] {
				visited[q] = true
				queue = append(queue, &candStep{state: q, via: sym})
			}
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range a.OutSymbols(cur.state) {
			for _, next := range a.Next(cur.state, sym) {
				if visited[next] {
					continue
				}
				visited[next] = true
				n := &candStep{state: next, via: sym, prev: cur}
				if a.IsFinal(next) {
					return reconstructCandidate(n), true
				}
				queue = append(queue, n)
			}
		}
	}
	return nil, false
}

func reconstructCandidate(s *candStep) []alphabet.Symbol {
	var out []alphabet.Symbol
	for cur := s; cur != nil; cur = cur.prev {
		out = append([]alphabet.Symbol{cur.via}, out...)
	}
	return out
}
