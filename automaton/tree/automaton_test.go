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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vata-go/vata/alphabet"
)

func newTestAutomaton(t *testing.T) (*Automaton, alphabet.Symbol, alphabet.Symbol, alphabet.Symbol) {
	t.Helper()
	al := alphabet.New()
	a, err := al.Intern("a", 0)
	if err != nil {
		t.Fatal(err)
	}
	bSym, err := al.Intern("b", 1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := al.Intern("c", 2)
	if err != nil {
		t.Fatal(err)
	}
	return New(NewTupleCache(), al), a, bSym, c
}

func TestAddTransitionIdempotent(t *testing.T) {
	aut, a, _, _ := newTestAutomaton(t)
	if err := aut.AddTransition(nil, a, 0); err != nil {
		t.Fatal(err)
	}
	if err := aut.AddTransition(nil, a, 0); err != nil {
		t.Fatal(err)
	}
	got := aut.TransitionsFrom(0).Tuples(a)
	if len(got) != 1 {
		t.Fatalf("expected a single interned tuple after duplicate AddTransition, got %d", len(got))
	}
}

func TestAddTransitionArityCheck(t *testing.T) {
	aut, _, b, _ := newTestAutomaton(t)
	if err := aut.AddTransition([]int{0, 1}, b, 2); err == nil {
		t.Fatal("expected arity error: b has arity 1, got 2 children")
	}
}

func TestCloneCopyOnWrite(t *testing.T) {
	aut, a, bSym, _ := newTestAutomaton(t)
	if err := aut.AddTransition(nil, a, 0); err != nil {
		t.Fatal(err)
	}
	if err := aut.AddTransition([]int{0}, bSym, 1); err != nil {
		t.Fatal(err)
	}

	clone := aut.Clone()
	// The clone must see the same transitions without us having inserted
	// them into it directly.
	if got := clone.TransitionsFrom(0).Tuples(a); len(got) != 1 {
		t.Fatalf("clone missing shared transition from state 0")
	}

	// Mutating the clone must not affect the original.
	if err := clone.AddTransition([]int{1}, bSym, 2); err != nil {
		t.Fatal(err)
	}
	if aut.TransitionsFrom(2) != nil {
		t.Fatalf("mutating clone leaked into original automaton")
	}
	if clone.TransitionsFrom(2) == nil {
		t.Fatalf("clone should have the new transition")
	}

	// The untouched state (0) must still be shared (same Cluster pointer)
	// since only state 2's cluster should have triggered a COW clone.
	if aut.states.clusters[0] != clone.states.clusters[0] {
		t.Error("unrelated state's cluster should still be structurally shared after an unrelated mutation")
	}
}

func TestMutatingOriginalDoesNotAffectClone(t *testing.T) {
	aut, a, bSym, _ := newTestAutomaton(t)
	if err := aut.AddTransition(nil, a, 0); err != nil {
		t.Fatal(err)
	}
	clone := aut.Clone()

	if err := aut.AddTransition([]int{0}, bSym, 1); err != nil {
		t.Fatal(err)
	}
	if clone.TransitionsFrom(1) != nil {
		t.Fatalf("mutating original leaked into clone")
	}
}

func TestBUIndex(t *testing.T) {
	aut, a, bSym, c := newTestAutomaton(t)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(aut.AddTransition(nil, a, 0))
	must(aut.AddTransition([]int{0}, bSym, 1))
	must(aut.AddTransition([]int{1, 1}, c, 2))
	aut.SetFinal(2)

	idx := BuildBUIndex(aut)
	if len(idx.Leaves[a]) != 1 {
		t.Fatalf("expected 1 ground transition for symbol a, got %d", len(idx.Leaves[a]))
	}
	entries := idx.AtPosition(1, c, 0)
	wantEntries := []PositionIndexEntry{{Symbol: c, Position: 0, Children: []int{1, 1}, Parent: 2}}
	if diff := cmp.Diff(wantEntries, entries); diff != "" {
		t.Errorf("AtPosition(1, c, 0) mismatch (-want +got):\n%s", diff)
	}
	entries1 := idx.AtPosition(1, c, 1)
	wantEntries1 := []PositionIndexEntry{{Symbol: c, Position: 1, Children: []int{1, 1}, Parent: 2}}
	if diff := cmp.Diff(wantEntries1, entries1); diff != "" {
		t.Errorf("AtPosition(1, c, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion(t *testing.T) {
	al := alphabet.New()
	a0, _ := al.Intern("a", 0)

	autA := New(NewTupleCache(), al)
	autA.AddTransition(nil, a0, 0)
	autA.SetFinal(0)

	autB := New(NewTupleCache(), al)
	autB.AddTransition(nil, a0, 0)
	autB.SetFinal(0)

	u := Union(autA, autB)
	if len(u.FinalStates()) != 2 {
		t.Fatalf("Union should keep both (disjointly-renumbered) final states, got %v", u.FinalStates())
	}
}

func TestIntersectEmpty(t *testing.T) {
	al := alphabet.New()
	a0, _ := al.Intern("a", 0)
	b0, _ := al.Intern("b", 0)

	autA := New(NewTupleCache(), al)
	autA.AddTransition(nil, a0, 0)
	autA.SetFinal(0)

	autB := New(NewTupleCache(), al)
	autB.AddTransition(nil, b0, 0)
	autB.SetFinal(0)

	prod := Intersect(autA, autB)
	for _, tr := range prod.AllTransitions() {
		if prod.IsFinal(tr.Parent) {
			t.Fatalf("product of automata over disjoint ground symbols must have no reachable final transition, found %+v", tr)
		}
	}
}
