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

	"github.com/google/go-cmp/cmp"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
)

func TestRemoveUnreachableFiniteDropsDeadBranch(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 1)
	y, _ := al.Intern("y", 1)

	a := finite.New(al)
	a.AddStart(x, 0)
	a.AddTransition(0, y, 1)
	a.SetFinal(1)
	// state 2 is never a start and never targeted: unreachable.
	a.AddTransition(2, y, 3)

	out := RemoveUnreachableFinite(a)
	for _, q := range out.AllStates() {
		if q == 2 || q == 3 {
			t.Fatalf("state %d should have been pruned as unreachable", q)
		}
	}
	if !out.IsFinal(1) {
		t.Fatal("final state 1 should survive")
	}
}

func TestRemoveUselessFiniteDropsDeadEnd(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 1)
	y, _ := al.Intern("y", 1)

	a := finite.New(al)
	a.AddStart(x, 0)
	a.AddTransition(0, y, 1)
	a.SetFinal(1)
	// state 2 is reachable from 0 but has no path to a final state.
	a.AddTransition(0, y, 2)
	a.AddTransition(2, y, 2)

	out := RemoveUselessFinite(a)
	for _, q := range out.AllStates() {
		if q == 2 {
			t.Fatal("state 2 never reaches a final state and should be pruned")
		}
	}
	if !out.IsFinal(1) {
		t.Fatal("final state 1 should survive")
	}
}

func TestCandidateStringFindsShortestWitness(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 1)
	y, _ := al.Intern("y", 1)

	a := finite.New(al)
	a.AddStart(x, 0)
	a.AddTransition(0, y, 1)
	a.SetFinal(1)

	witness, ok := CandidateString(a)
	if !ok {
		t.Fatal("expected a witness, language is non-empty")
	}
	if diff := cmp.Diff([]alphabet.Symbol{x, y}, witness); diff != "" {
		t.Errorf("CandidateString() witness mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidateStringEmptyLanguage(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 1)

	a := finite.New(al)
	a.AddStart(x, 0)
	// no final state reachable at all.

	_, ok := CandidateString(a)
	if ok {
		t.Fatal("expected no witness for an automaton with no final states")
	}
}

func TestCandidateStringAcceptsStartItself(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 1)

	a := finite.New(al)
	a.AddStart(x, 0)
	a.SetFinal(0)

	witness, ok := CandidateString(a)
	if !ok {
		t.Fatal("expected a witness")
	}
	if diff := cmp.Diff([]alphabet.Symbol{x}, witness); diff != "" {
		t.Errorf("CandidateString() witness mismatch (-want +got):\n%s", diff)
	}
}
