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

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/lts"
)

// ToLTS flattens a's transitions into the (symbol, position)-labeled LTS
// that package simulation refines.
func (a *Automaton) ToLTS() *lts.System {
	syms, kids, parents := a.rawTransitions()
	return lts.Build(a.States(), syms, kids, parents)
}

// ToEnvironment derives, for every state, the set of contexts (symbol,
// position, siblings) it occurs in — the data upward simulation compares.
func (a *Automaton) ToEnvironment() lts.Environment {
	syms, kids, parents := a.rawTransitions()
	return lts.BuildEnvironment(syms, kids, parents)
}

func (a *Automaton) rawTransitions() ([]alphabet.Symbol, [][]int, []int) {
	trs := a.AllTransitions()
	syms := make([]alphabet.Symbol, len(trs))
	kids := make([][]int, len(trs))
	parents := make([]int, len(trs))
	for i, tr := range trs {
		syms[i] = tr.Symbol
		kids[i] = tr.Children
		parents[i] = tr.Parent
	}
	return syms, kids, parents
}
