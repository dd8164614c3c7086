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

// Package prune implements C10: unreachable/useless state removal and
// candidate-tree (minimal witness) extraction for both automaton
// representations (spec.md §4.10).
package prune

import "github.com/vata-go/vata/automaton/tree"

// RemoveUnreachable returns the sub-automaton reached from a's final
// states by walking child tuples backward from parent to children: a
// state is kept once some kept transition's parent reaches it, starting
// the walk at the final states themselves.
func RemoveUnreachable(a *tree.Automaton) *tree.Automaton {
	byParent := make(map[int][]tree.Transition)
	for _, tr := range a.AllTransitions() {
		byParent[tr.Parent] = append(byParent[tr.Parent], tr)
	}

	reached := make(map[int]bool)
	var queue []int
	for _, q := range a.FinalStates() {
		if !reached[q] {
			reached[q] = true
			queue = append(queue, q)
		}
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, tr := range byParent[p] {
			for _, c := range tr.Children {
				if !reached[c] {
					reached[c] = true
					queue = append(queue, c)
				}
			}
		}
	}

	out := tree.New(tree.NewTupleCache(), a.Alphabet)
	for _, q := range a.FinalStates() {
		if reached[q] {
			out.SetFinal(q)
		}
	}
	for p, transitions := range byParent {
		if !reached[p] {
			continue
		}
		for _, tr := range transitions {
			out.AddTransition(tr.Children, tr.Symbol, p)
		}
	}
	return out
}

// RemoveUseless returns the sub-automaton of states that can produce at
// least one ground tree: a state is useful once it has a transition
// whose children are all useful already (ground transitions, with no
// children, are useful immediately). The fixpoint is followed by
// RemoveUnreachable, since usefulness alone can leave dangling
// transitions into states no final state reaches.
func RemoveUseless(a *tree.Automaton) *tree.Automaton {
	transitions := a.AllTransitions()
	useful := make(map[int]bool)

	for {
		changed := false
		for _, tr := range transitions {
			if useful[tr.Parent] {
				continue
			}
			if allUseful(useful, tr.Children) {
				useful[tr.Parent] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := tree.New(tree.NewTupleCache(), a.Alphabet)
	for _, q := range a.FinalStates() {
		if useful[q] {
			out.SetFinal(q)
		}
	}
	for _, tr := range transitions {
		if useful[tr.Parent] && allUseful(useful, tr.Children) {
			out.AddTransition(tr.Children, tr.Symbol, tr.Parent)
		}
	}
	return RemoveUnreachable(out)
}

func allUseful(useful map[int]bool, children []int) bool {
	for _, c := range children {
		if !useful[c] {
			return false
		}
	}
	return true
}

// CandidateTree returns the minimal sub-automaton witnessing L(a) != ∅:
// the same usefulness fixpoint as RemoveUseless, but stopping the
// instant a final state becomes useful and reconstructing only the
// transitions along that one witness tree. The second return value is
// false, with an empty automaton, if no final state is ever reached
// (L(a) == ∅).
func CandidateTree(a *tree.Automaton) (*tree.Automaton, bool) {
	transitions := a.AllTransitions()
	useful := make(map[int]bool)
	witnessOf := make(map[int]tree.Transition)
	finals := make(map[int]bool)
	for _, q := range a.FinalStates() {
		finals[q] = true
	}

	for {
		changed := false
		for _, tr := range transitions {
			if useful[tr.Parent] {
				continue
			}
			if allUseful(useful, tr.Children) {
				useful[tr.Parent] = true
				witnessOf[tr.Parent] = tr
				changed = true
				if finals[tr.Parent] {
					return buildWitness(a, witnessOf, tr.Parent), true
				}
			}
		}
		if !changed {
			break
		}
	}
	return tree.New(tree.NewTupleCache(), a.Alphabet), false
}

// buildWitness walks witnessOf from root down through its recorded
// children, collecting every transition on the witness path into a
// fresh automaton with root as its only final state.
func buildWitness(a *tree.Automaton, witnessOf map[int]tree.Transition, root int) *tree.Automaton {
	out := tree.New(tree.NewTupleCache(), a.Alphabet)
	out.SetFinal(root)

	visited := make(map[int]bool)
	var visit func(q int)
	visit = func(q int) {
		if visited[q] {
			return
		}
		visited[q] = true
		tr, ok := witnessOf[q]
		if !ok {
			return
		}
		out.AddTransition(tr.Children, tr.Symbol, q)
		for _, c := range tr.Children {
			visit(c)
		}
	}
	visit(root)
	return out
}
