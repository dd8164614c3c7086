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
	"testing"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
)

func mustAdd(t *testing.T, a *tree.Automaton, children []int, sym alphabet.Symbol, parent int) {
	t.Helper()
	if err := a.AddTransition(children, sym, parent); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
}

// TestRemoveUnreachableDropsDeadState reproduces spec.md §8 scenario 2:
// ground transition a -> q, transition b(q) -> dead where dead is not
// final, final set {q}; remove_unreachable should yield exactly
// {a -> q, final q}.
func TestRemoveUnreachableDropsDeadState(t *testing.T) {
	al := alphabet.New()
	a, _ := al.Intern("a", 0)
	b, _ := al.Intern("b", 1)

	const q, dead = 0, 1
	aut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aut, nil, a, q)
	mustAdd(t, aut, []int{q}, b, dead)
	aut.SetFinal(q)

	out := RemoveUnreachable(aut)

	transitions := out.AllTransitions()
	if len(transitions) != 1 {
		t.Fatalf("expected exactly 1 surviving transition, got %d: %v", len(transitions), transitions)
	}
	tr := transitions[0]
	if tr.Symbol != a || tr.Parent != q || len(tr.Children) != 0 {
		t.Fatalf("expected a -> %d, got %+v", q, tr)
	}
	if !out.IsFinal(q) {
		t.Fatal("q should remain final")
	}
	if out.IsFinal(dead) {
		t.Fatal("dead should not be final")
	}
}

// TestRemoveUselessKeepsGroundedLanguage checks spec.md §8's invariant
// that remove_useless(remove_unreachable(A)) is language-equivalent to A
// when every state already produces a ground tree.
func TestRemoveUselessKeepsGroundedLanguage(t *testing.T) {
	al := alphabet.New()
	a, _ := al.Intern("a", 0)
	f, _ := al.Intern("f", 1)

	const q, qf = 0, 1
	aut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aut, nil, a, q)
	mustAdd(t, aut, []int{q}, f, qf)
	aut.SetFinal(qf)

	out := RemoveUseless(aut)
	if !out.IsFinal(qf) {
		t.Fatal("qf should remain final")
	}
	if len(out.AllTransitions()) != 2 {
		t.Fatalf("expected both transitions kept, got %v", out.AllTransitions())
	}
}

// TestRemoveUselessDropsUnproductiveState models a transition whose
// child never bottoms out in a ground transition: it can never be
// useful, so it and anything depending solely on it must be pruned.
func TestRemoveUselessDropsUnproductiveState(t *testing.T) {
	al := alphabet.New()
	a, _ := al.Intern("a", 0)
	f, _ := al.Intern("f", 1)
	g, _ := al.Intern("g", 1)

	const q, qf, loopy, deadParent = 0, 1, 2, 3
	aut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aut, nil, a, q)
	mustAdd(t, aut, []int{q}, f, qf)
	aut.SetFinal(qf)
	// loopy only ever appears as its own child: never grounded, never useful.
	mustAdd(t, aut, []int{loopy}, g, loopy)
	mustAdd(t, aut, []int{loopy}, g, deadParent)

	out := RemoveUseless(aut)
	for _, tr := range out.AllTransitions() {
		if tr.Parent == loopy || tr.Parent == deadParent {
			t.Fatalf("loopy/deadParent should have been pruned, found %+v", tr)
		}
	}
	if !out.IsFinal(qf) {
		t.Fatal("qf should remain final and reachable")
	}
}

// TestCandidateTreeFindsShortestWitness checks that candidate_tree
// returns a minimal accepting sub-automaton when the language is
// non-empty.
func TestCandidateTreeFindsShortestWitness(t *testing.T) {
	al := alphabet.New()
	a, _ := al.Intern("a", 0)
	f, _ := al.Intern("f", 1)

	const q, qf = 0, 1
	aut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aut, nil, a, q)
	mustAdd(t, aut, []int{q}, f, qf)
	aut.SetFinal(qf)

	out, ok := CandidateTree(aut)
	if !ok {
		t.Fatal("expected a witness, language is non-empty")
	}
	if !out.IsFinal(qf) {
		t.Fatal("witness automaton should accept at qf")
	}
	if len(out.AllTransitions()) != 2 {
		t.Fatalf("expected the 2-transition witness path, got %v", out.AllTransitions())
	}
}

// TestCandidateTreeEmptyLanguage checks the documented empty-language
// behavior: no final state ever becomes useful, so CandidateTree reports
// false with an empty automaton.
func TestCandidateTreeEmptyLanguage(t *testing.T) {
	al := alphabet.New()
	f, _ := al.Intern("f", 1)

	const loopy, qf = 0, 1
	aut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aut, []int{loopy}, f, loopy)
	aut.SetFinal(qf)

	out, ok := CandidateTree(aut)
	if ok {
		t.Fatal("expected no witness: qf is never reachable by a ground-grounded tree")
	}
	if len(out.AllTransitions()) != 0 {
		t.Fatalf("expected an empty automaton, got %v", out.AllTransitions())
	}
}
