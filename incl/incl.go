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

// Package incl is the inclusion-checking dispatcher spec.md §9 describes:
// it picks a concrete algorithm (packages incl/down, incl/up, incl/congr)
// from an InclParam, enforcing the prerequisites each one needs (a
// precomputed simulation preorder, or a prior conversion to the finite
// automaton representation) before calling it.
package incl

import (
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/incl/congr"
	"github.com/vata-go/vata/incl/down"
	"github.com/vata-go/vata/incl/up"
	"github.com/vata-go/vata/internal/vatadbg"
	"github.com/vata-go/vata/lts"
	"github.com/vata-go/vata/preorder"
	"github.com/vata-go/vata/simulation"
	"github.com/vata-go/vata/vataerr"
)

// Representation selects which automaton model the check runs against.
type Representation int

const (
	// Tree runs the check directly on the explicit tree automata.
	Tree Representation = iota
	// Congruence converts both operands to finite automata first and runs
	// the congruence checker (package incl/congr).
	Congruence
)

// Direction selects the tree-automaton algorithm when Representation ==
// Tree.
type Direction int

const (
	// Downward decomposes obligations top-down from final states.
	Downward Direction = iota
	// Upward computes per-state coverage bottom-up.
	Upward
)

// SimulationKind selects what preorder relaxes the state-set comparer.
type SimulationKind int

const (
	// NoSimulation uses the identity preorder (exact state equality).
	NoSimulation SimulationKind = iota
	// DownwardSimulation computes and uses the downward simulation
	// preorder over the union of both operands' transitions.
	DownwardSimulation
)

// InclParam configures one inclusion query.
type InclParam struct {
	Representation Representation
	Direction      Direction
	Simulation     SimulationKind
	CongruenceOrder congr.Order
	Equivalence    bool // check L(a) == L(b) instead of L(a) ⊆ L(b)
}

// DefaultParam is the antichain-with-downward-simulation configuration
// the CLI's "incl" verb uses absent explicit flags.
func DefaultParam() InclParam {
	return InclParam{
		Representation: Tree,
		Direction:      Downward,
		Simulation:     DownwardSimulation,
	}
}

// Check runs the inclusion (or, if p.Equivalence, equivalence) query
// p describes over the tree automata a and b.
func Check(a, b *tree.Automaton, p InclParam) (bool, error) {
	vatadbg.Print("incl.Check: representation=%v direction=%v simulation=%v equivalence=%v", p.Representation, p.Direction, p.Simulation, p.Equivalence)
	switch p.Representation {
	case Tree:
		return checkTree(a, b, p)
	case Congruence:
		fa, fb, err := toFinite(a, b)
		if err != nil {
			return false, err
		}
		if p.Equivalence {
			return congr.Equivalent(fa, fb, p.CongruenceOrder), nil
		}
		return congr.NewChecker(fa, fb, p.CongruenceOrder).Holds(), nil
	default:
		return false, vataerr.Preconditionf("unknown representation %v", p.Representation)
	}
}

func checkTree(a, b *tree.Automaton, p InclParam) (bool, error) {
	if p.Equivalence {
		fwd, err := checkTree(a, b, withoutEquivalence(p))
		if err != nil {
			return false, err
		}
		if !fwd {
			return false, nil
		}
		bwd, err := checkTree(b, a, withoutEquivalence(p))
		return fwd && bwd, err
	}

	sim := simulationFor(a, b, p.Simulation)
	switch p.Direction {
	case Downward:
		return down.NewChecker(a, b, sim).Holds(), nil
	case Upward:
		return up.NewChecker(a, b, sim).Holds(), nil
	default:
		return false, vataerr.Preconditionf("unknown direction %v", p.Direction)
	}
}

func withoutEquivalence(p InclParam) InclParam {
	p.Equivalence = false
	return p
}

// simulationFor returns the preorder a direction should use, sized to the
// larger of the two operands' state spaces. The down/up checkers compare
// an A-state directly against a B-state through this single relation, so
// a and b must already share one numbering — callers combining two
// automata built independently need to renumber one of them onto a
// disjoint, agreed range before calling Check (see DESIGN.md's "shared
// index space" note; this dispatcher does not perform that renumbering
// itself). With that precondition met, the simulation is computed
// directly over the concatenation of both operands' raw transitions,
// without going through tree.Union (which deliberately renumbers its
// second operand and would defeat the shared-numbering precondition).
func simulationFor(a, b *tree.Automaton, kind SimulationKind) *preorder.Relation {
	n := stateSpan(a, b)
	if kind == NoSimulation {
		return preorder.Identity(n)
	}
	states := append(append([]int{}, a.States()...), b.States()...)
	aTr := a.AllTransitions()
	bTr := b.AllTransitions()
	syms := make([]alphabet.Symbol, 0, len(aTr)+len(bTr))
	kids := make([][]int, 0, len(aTr)+len(bTr))
	parents := make([]int, 0, len(aTr)+len(bTr))
	for _, tr := range aTr {
		syms = append(syms, tr.Symbol)
		kids = append(kids, tr.Children)
		parents = append(parents, tr.Parent)
	}
	for _, tr := range bTr {
		syms = append(syms, tr.Symbol)
		kids = append(kids, tr.Children)
		parents = append(parents, tr.Parent)
	}
	sys := lts.Build(states, syms, kids, parents)
	r := simulation.Downward(sys)

	index := make(map[int]int, len(sys.States))
	for i, s := range sys.States {
		index[s] = i
	}
	return preorder.New(n, func(p, q int) bool {
		ip, ok1 := index[p]
		iq, ok2 := index[q]
		if !ok1 || !ok2 {
			return false
		}
		return r.LessEq(ip, iq)
	})
}

func stateSpan(a, b *tree.Automaton) int {
	max := -1
	for _, s := range a.States() {
		if s > max {
			max = s
		}
	}
	for _, s := range b.States() {
		if s > max {
			max = s
		}
	}
	return max + 1
}

// toFinite converts both operands to the finite (word) automaton
// representation Congruence needs: a tree automaton whose every symbol
// has arity 0 or 1 is exactly a finite automaton, with arity-0
// transitions read as spec.md's start-state encoding ("sym -> q") and
// arity-1 transitions as ordinary steps.
func toFinite(a, b *tree.Automaton) (*finite.Automaton, *finite.Automaton, error) {
	fa, err := oneToFinite(a)
	if err != nil {
		return nil, nil, err
	}
	fb, err := oneToFinite(b)
	if err != nil {
		return nil, nil, err
	}
	return fa, fb, nil
}

func oneToFinite(a *tree.Automaton) (*finite.Automaton, error) {
	out := finite.New(a.Alphabet)
	for _, tr := range a.AllTransitions() {
		switch len(tr.Children) {
		case 0:
			out.AddStart(tr.Symbol, tr.Parent)
		case 1:
			out.AddTransition(tr.Children[0], tr.Symbol, tr.Parent)
		default:
			return nil, vataerr.Preconditionf("congruence checking requires a finite (rank <= 1) automaton, got symbol %v with arity %d", tr.Symbol, len(tr.Children))
		}
	}
	for _, q := range a.FinalStates() {
		out.SetFinal(q)
	}
	return out, nil
}
