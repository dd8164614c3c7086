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

package finite

import (
	"testing"

	"github.com/vata-go/vata/alphabet"
)

func newTestAutomaton(t *testing.T) (*Automaton, alphabet.Symbol, alphabet.Symbol) {
	t.Helper()
	al := alphabet.New()
	x, err := al.Intern("x", 1)
	if err != nil {
		t.Fatal(err)
	}
	y, err := al.Intern("y", 1)
	if err != nil {
		t.Fatal(err)
	}
	return New(al), x, y
}

func TestAddTransitionIdempotent(t *testing.T) {
	aut, x, _ := newTestAutomaton(t)
	aut.AddStart(x, 0)
	aut.AddTransition(0, x, 1)
	aut.AddTransition(0, x, 1)
	next := aut.Next(0, x)
	if len(next) != 1 || next[0] != 1 {
		t.Fatalf("expected a single next state 1, got %v", next)
	}
}

func TestCloneCopyOnWrite(t *testing.T) {
	aut, x, y := newTestAutomaton(t)
	aut.AddStart(x, 0)
	aut.AddTransition(0, x, 1)

	clone := aut.Clone()
	if got := clone.Next(0, x); len(got) != 1 {
		t.Fatalf("clone missing shared transition")
	}

	clone.AddTransition(1, y, 2)
	if got := aut.Next(1, y); got != nil {
		t.Fatalf("mutating clone leaked into original: %v", got)
	}
	if got := clone.Next(1, y); len(got) != 1 {
		t.Fatalf("clone should see its own new transition")
	}
}

func TestUnionKeepsBothFinals(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 0)

	a := New(al)
	a.AddStart(x, 0)
	a.SetFinal(0)

	b := New(al)
	b.AddStart(x, 0)
	b.SetFinal(0)

	u := Union(a, b)
	if len(u.FinalStates()) != 2 {
		t.Fatalf("union should keep both disjointly-renumbered finals, got %v", u.FinalStates())
	}
}

func TestIntersectEmptyOnDisjointSymbols(t *testing.T) {
	al := alphabet.New()
	x, _ := al.Intern("x", 0)
	y, _ := al.Intern("y", 0)

	a := New(al)
	a.AddStart(x, 0)
	a.SetFinal(0)

	b := New(al)
	b.AddStart(y, 0)
	b.SetFinal(0)

	p := Intersect(a, b)
	if len(p.StartStates()) != 0 {
		t.Fatalf("product over disjoint start symbols should have no start state, hence no reachable state, got starts %v", p.StartStates())
	}
}

func TestReverseSwapsStartAndFinal(t *testing.T) {
	aut, x, y := newTestAutomaton(t)
	aut.AddStart(x, 0)
	aut.AddTransition(0, y, 1)
	aut.SetFinal(1)

	rev := Reverse(aut)
	if !rev.IsFinal(0) {
		t.Fatalf("old start state should become final")
	}
	if _, ok := rev.starts[1]; !ok {
		t.Fatalf("old final state should become a start state")
	}
	next := rev.Next(1, y)
	if len(next) != 1 || next[0] != 0 {
		t.Fatalf("reversed transition should go 1 -y-> 0, got %v", next)
	}
}

func TestComplementRejectsNonTotal(t *testing.T) {
	aut, x, _ := newTestAutomaton(t)
	aut.AddStart(x, 0)
	// No transition on x from 0: not total.
	if _, err := Complement(aut); err == nil {
		t.Fatal("expected precondition error for incomplete automaton")
	}
}

func TestComplementFlipsFinals(t *testing.T) {
	aut, x, _ := newTestAutomaton(t)
	aut.AddStart(x, 0)
	aut.AddTransition(0, x, 0)
	aut.SetFinal(0)

	comp, err := Complement(aut)
	if err != nil {
		t.Fatal(err)
	}
	if comp.IsFinal(0) {
		t.Fatalf("complement should flip final status of state 0")
	}
}

func TestTotalizeAddsSink(t *testing.T) {
	aut, x, y := newTestAutomaton(t)
	aut.AddStart(x, 0)
	aut.AddTransition(0, x, 1)
	// No transition on y from state 0 or 1: not total over {x, y}.
	total := Totalize(aut, []alphabet.Symbol{x, y})
	for _, q := range []int{0, 1} {
		for _, sym := range []alphabet.Symbol{x, y} {
			if len(total.Next(q, sym)) != 1 {
				t.Fatalf("state %d symbol %v should have exactly one transition after totalize", q, sym)
			}
		}
	}
}
