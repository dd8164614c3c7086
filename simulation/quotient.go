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

package simulation

import (
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/preorder"
)

// Quotient merges every pair of states related both ways under rel (p ⊑
// q and q ⊑ p — simulation equivalence) into one representative, the
// smallest state id in the class, and returns the automaton with every
// transition rewritten accordingly. This is the CLI's "red" verb: size
// reduction under the downward simulation preorder a prior call to
// Downward produced.
func Quotient(a *tree.Automaton, rel *preorder.Relation, states []int) *tree.Automaton {
	index := stateIndex(states)
	rep := make(map[int]int, len(states))
	for _, p := range states {
		pi, ok := index[p]
		if !ok {
			rep[p] = p
			continue
		}
		best := p
		for _, q := range states {
			qi, ok := index[q]
			if !ok || q >= best {
				continue
			}
			if rel.LessEq(pi, qi) && rel.LessEq(qi, pi) {
				best = q
			}
		}
		rep[p] = best
	}

	out := tree.New(tree.NewTupleCache(), a.Alphabet)
	for _, q := range a.FinalStates() {
		out.SetFinal(repOf(rep, q))
	}
	for _, tr := range a.AllTransitions() {
		children := make([]int, len(tr.Children))
		for i, c := range tr.Children {
			children[i] = repOf(rep, c)
		}
		out.AddTransition(children, tr.Symbol, repOf(rep, tr.Parent))
	}
	return out
}

func repOf(rep map[int]int, q int) int {
	if r, ok := rep[q]; ok {
		return r
	}
	return q
}
