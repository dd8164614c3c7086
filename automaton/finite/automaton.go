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

// Package finite implements the explicit finite (word) automaton data
// model of spec.md §3: a start-state set with, per start state, the
// symbols permitted to enter it, a final-state set, and a copy-on-write
// state -> symbol -> {next state} transition map. It is the representation
// the congruence checker (C8) operates on.
package finite

import "github.com/vata-go/vata/alphabet"

// nextSet is the copy-on-write set of next-states reachable from one
// (state, symbol) pair.
type nextSet struct {
	states map[int]bool
	refs   int
}

func newNextSet() *nextSet { return &nextSet{states: make(map[int]bool), refs: 1} }

func (s *nextSet) clone() *nextSet {
	out := &nextSet{states: make(map[int]bool, len(s.states)), refs: 1}
	for q := range s.states {
		out.states[q] = true
	}
	return out
}

// transMap is the copy-on-write symbol -> nextSet map for one state.
type transMap struct {
	bySymbol map[alphabet.Symbol]*nextSet
	refs     int
}

func newTransMap() *transMap { return &transMap{bySymbol: make(map[alphabet.Symbol]*nextSet), refs: 1} }

func (m *transMap) clone() *transMap {
	out := &transMap{bySymbol: make(map[alphabet.Symbol]*nextSet, len(m.bySymbol)), refs: 1}
	for sym, ns := range m.bySymbol {
		ns.refs++
		out.bySymbol[sym] = ns
	}
	return out
}

// stateMap is the copy-on-write state -> transMap map.
type stateMap struct {
	states map[int]*transMap
	refs   int
}

func newStateMap() *stateMap { return &stateMap{states: make(map[int]*transMap), refs: 1} }

func (m *stateMap) clone() *stateMap {
	out := &stateMap{states: make(map[int]*transMap, len(m.states)), refs: 1}
	for s, t := range m.states {
		t.refs++
		out.states[s] = t
	}
	return out
}

// Automaton is an explicit finite (word) automaton.
type Automaton struct {
	Alphabet *alphabet.Alphabet
	starts   map[int]map[alphabet.Symbol]bool
	finals   map[int]bool
	trans    *stateMap
}

// New returns an empty finite automaton.
func New(a *alphabet.Alphabet) *Automaton {
	return &Automaton{
		Alphabet: a,
		starts:   make(map[int]map[alphabet.Symbol]bool),
		finals:   make(map[int]bool),
		trans:    newStateMap(),
	}
}

// Clone returns an automaton sharing this one's transition map until
// mutated (copy-on-write, same discipline as package tree).
func (a *Automaton) Clone() *Automaton {
	a.trans.refs++
	starts := make(map[int]map[alphabet.Symbol]bool, len(a.starts))
	for s, syms := range a.starts {
		cp := make(map[alphabet.Symbol]bool, len(syms))
		for sym := range syms {
			cp[sym] = true
		}
		starts[s] = cp
	}
	finals := make(map[int]bool, len(a.finals))
	for s := range a.finals {
		finals[s] = true
	}
	return &Automaton{Alphabet: a.Alphabet, starts: starts, finals: finals, trans: a.trans}
}

// AddStart marks q as a start state reachable by initial symbol sym.
func (a *Automaton) AddStart(sym alphabet.Symbol, q int) {
	if a.starts[q] == nil {
		a.starts[q] = make(map[alphabet.Symbol]bool)
	}
	a.starts[q][sym] = true
}

// StartStates returns every start state.
func (a *Automaton) StartStates() []int {
	out := make([]int, 0, len(a.starts))
	for s := range a.starts {
		out = append(out, s)
	}
	return out
}

// StartSymbols returns the symbols permitted to enter start state q.
func (a *Automaton) StartSymbols(q int) []alphabet.Symbol {
	out := make([]alphabet.Symbol, 0, len(a.starts[q]))
	for sym := range a.starts[q] {
		out = append(out, sym)
	}
	return out
}

// StartsOn returns every start state reachable by reading sym as the
// first input symbol.
func (a *Automaton) StartsOn(sym alphabet.Symbol) []int {
	var out []int
	for q, syms := range a.starts {
		if syms[sym] {
			out = append(out, q)
		}
	}
	return out
}

// SetFinal marks q as a final state.
func (a *Automaton) SetFinal(q int) { a.finals[q] = true }

// IsFinal reports whether q is final.
func (a *Automaton) IsFinal(q int) bool { return a.finals[q] }

// FinalStates returns every final state.
func (a *Automaton) FinalStates() []int {
	out := make([]int, 0, len(a.finals))
	for s := range a.finals {
		out = append(out, s)
	}
	return out
}

// AddTransition inserts from -sym-> to, cloning whichever of {state map,
// transition map, next-state set} is currently shared. Idempotent.
func (a *Automaton) AddTransition(from int, sym alphabet.Symbol, to int) {
	if a.trans.refs > 1 {
		a.trans.refs--
		a.trans = a.trans.clone()
	}
	tm, ok := a.trans.states[from]
	if !ok {
		tm = newTransMap()
		a.trans.states[from] = tm
	} else if tm.refs > 1 {
		tm.refs--
		tm = tm.clone()
		a.trans.states[from] = tm
	}
	ns, ok := tm.bySymbol[sym]
	if !ok {
		ns = newNextSet()
		tm.bySymbol[sym] = ns
	} else if ns.refs > 1 {
		ns.refs--
		ns = ns.clone()
		tm.bySymbol[sym] = ns
	}
	ns.states[to] = true
}

// Next returns every state reachable from q on sym.
func (a *Automaton) Next(q int, sym alphabet.Symbol) []int {
	tm, ok := a.trans.states[q]
	if !ok {
		return nil
	}
	ns, ok := tm.bySymbol[sym]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(ns.states))
	for s := range ns.states {
		out = append(out, s)
	}
	return out
}

// OutSymbols returns every symbol with at least one outgoing transition
// from q.
func (a *Automaton) OutSymbols(q int) []alphabet.Symbol {
	tm, ok := a.trans.states[q]
	if !ok {
		return nil
	}
	out := make([]alphabet.Symbol, 0, len(tm.bySymbol))
	for sym := range tm.bySymbol {
		out = append(out, sym)
	}
	return out
}

// States returns every state with at least one outgoing transition. It
// does not include states that are only ever a target, a start, or a
// final state with no out-edges; callers that need the full state space
// should union this with StartStates/FinalStates and transition targets.
func (a *Automaton) States() []int {
	out := make([]int, 0, len(a.trans.states))
	for s := range a.trans.states {
		out = append(out, s)
	}
	return out
}

// AllStates returns the union of start states, final states, transition
// sources and transition targets.
func (a *Automaton) AllStates() []int {
	seen := make(map[int]bool)
	for s := range a.starts {
		seen[s] = true
	}
	for s := range a.finals {
		seen[s] = true
	}
	for s, tm := range a.trans.states {
		seen[s] = true
		for _, ns := range tm.bySymbol {
			for t := range ns.states {
				seen[t] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}
