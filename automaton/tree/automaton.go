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
	"fmt"

	log "github.com/golang/glog"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/vataerr"
)

// stateMap is the copy-on-write parent-state -> Cluster map.
type stateMap struct {
	clusters map[int]*Cluster
	refs     int
}

func newStateMap() *stateMap {
	return &stateMap{clusters: make(map[int]*Cluster), refs: 1}
}

func (m *stateMap) clone() *stateMap {
	out := &stateMap{clusters: make(map[int]*Cluster, len(m.clusters)), refs: 1}
	for s, c := range m.clusters {
		c.refs++
		out.clusters[s] = c
	}
	return out
}

func (m *stateMap) release(cache *TupleCache) {
	m.refs--
	if m.refs > 0 {
		return
	}
	for _, c := range m.clusters {
		c.release(cache)
	}
}

// Automaton is an explicit bottom-up tree automaton: a final-state set plus
// a copy-on-write state-to-cluster map sharing a tuple cache and an
// alphabet (spec.md §3).
type Automaton struct {
	Alphabet *alphabet.Alphabet
	tuples   *TupleCache
	states   *stateMap
	finals   map[int]bool
}

// New returns an empty automaton using the given (possibly shared) tuple
// cache and alphabet. Automata that should structurally share tuples on
// copy must be built from the same *TupleCache.
func New(cache *TupleCache, a *alphabet.Alphabet) *Automaton {
	return &Automaton{
		Alphabet: a,
		tuples:   cache,
		states:   newStateMap(),
		finals:   make(map[int]bool),
	}
}

// TupleCache returns the automaton's tuple cache handle, e.g. for building
// a sibling automaton that should share storage.
func (a *Automaton) TupleCache() *TupleCache { return a.tuples }

// Clone returns a new Automaton sharing a.tuples, a.Alphabet and a.states
// (bumping its reference count) until one of the two automata mutates its
// transitions, at which point that one clones privately.
func (a *Automaton) Clone() *Automaton {
	a.states.refs++
	finals := make(map[int]bool, len(a.finals))
	for s := range a.finals {
		finals[s] = true
	}
	return &Automaton{
		Alphabet: a.Alphabet,
		tuples:   a.tuples,
		states:   a.states,
		finals:   finals,
	}
}

// SetFinal marks q as a final state.
func (a *Automaton) SetFinal(q int) { a.finals[q] = true }

// IsFinal reports whether q is a final state.
func (a *Automaton) IsFinal(q int) bool { return a.finals[q] }

// FinalStates returns the set of final states.
func (a *Automaton) FinalStates() []int {
	out := make([]int, 0, len(a.finals))
	for s := range a.finals {
		out = append(out, s)
	}
	return out
}

// Release drops this automaton's ownership of its state map, cascading
// into cluster and tuple-set release once no other automaton (e.g. one
// produced via Clone) still holds a reference. Callers that are done with
// an automaton and care about tuple-cache shrinkage (tests asserting
// spec.md §8's ref-count invariants, primarily) should call this.
func (a *Automaton) Release() {
	a.states.release(a.tuples)
}

// States returns every state that owns at least one transition.
func (a *Automaton) States() []int {
	out := make([]int, 0, len(a.states.clusters))
	for s := range a.states.clusters {
		out = append(out, s)
	}
	return out
}

// AddTransition interns children, clones whichever of {state map, cluster,
// tuple set} is currently shared, and inserts the tuple. It is idempotent:
// adding the same transition twice is a no-op the second time.
//
// Per spec.md §4.3, malformed tuples (wrong arity for symbol) are a caller
// error; AddTransition validates this against a.Alphabet when the symbol
// is known to it.
func (a *Automaton) AddTransition(children []int, symbol alphabet.Symbol, parent int) error {
	if a.Alphabet != nil {
		if ar, ok := a.Alphabet.Arity(symbol); ok && ar != len(children) {
			return vataerr.MalformedInputf("symbol %v has arity %d, got %d children", symbol, ar, len(children))
		}
	}
	tuple := a.tuples.Intern(children)

	if a.states.refs > 1 {
		a.states.refs--
		a.states = a.states.clone()
	}

	cluster, ok := a.states.clusters[parent]
	if !ok {
		cluster = newCluster()
		a.states.clusters[parent] = cluster
	} else if cluster.refs > 1 {
		cluster.refs--
		cluster = cluster.clone(a.tuples)
		a.states.clusters[parent] = cluster
	}

	ts, ok := cluster.symbols[symbol]
	if !ok {
		ts = newTupleSet()
		cluster.symbols[symbol] = ts
	} else if ts.refs > 1 {
		ts.refs--
		ts = ts.clone(a.tuples)
		cluster.symbols[symbol] = ts
	}

	if ts.tuples[tuple] {
		return nil
	}
	ts.tuples[tuple] = true
	a.tuples.Ref(tuple)
	log.V(3).Infof("tree: added transition %v(%s) -> %d", symbol, tuple, parent)
	return nil
}

// TransitionsFrom returns the cluster view for parent, or nil if parent has
// no outgoing transitions.
func (a *Automaton) TransitionsFrom(parent int) *Cluster {
	return a.states.clusters[parent]
}

// Transition is one (symbol, children) -> parent edge, surfaced for
// iteration.
type Transition struct {
	Symbol   alphabet.Symbol
	Children []int
	Parent   int
}

// DownIter calls yield for every (symbol, child-tuple) transition
// emanating from parent.
func (a *Automaton) DownIter(parent int, yield func(symbol alphabet.Symbol, children []int)) {
	c, ok := a.states.clusters[parent]
	if !ok {
		return
	}
	for sym, ts := range c.symbols {
		for t := range ts.tuples {
			yield(sym, t.children)
		}
	}
}

// AllTransitions returns every transition in the automaton. Intended for
// tests, pretty-printing and serialization, not hot paths.
func (a *Automaton) AllTransitions() []Transition {
	var out []Transition
	for parent, c := range a.states.clusters {
		for sym, ts := range c.symbols {
			for t := range ts.tuples {
				out = append(out, Transition{Symbol: sym, Children: t.children, Parent: parent})
			}
		}
	}
	return out
}

func (a *Automaton) String() string {
	return fmt.Sprintf("tree.Automaton{states=%d, finals=%v}", len(a.states.clusters), a.FinalStates())
}
