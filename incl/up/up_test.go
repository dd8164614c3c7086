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

package up

import (
	"testing"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/preorder"
)

func mustAdd(t *testing.T, a *tree.Automaton, children []int, sym alphabet.Symbol, parent int) {
	t.Helper()
	if err := a.AddTransition(children, sym, parent); err != nil {
		t.Fatal(err)
	}
}

func TestIdenticalAutomataIncluded(t *testing.T) {
	al := alphabet.New()
	a0, _ := al.Intern("a", 0)
	f1, _ := al.Intern("f", 1)

	a := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, a, nil, a0, 0)
	mustAdd(t, a, []int{0}, f1, 1)
	a.SetFinal(1)

	b := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, b, nil, a0, 0)
	mustAdd(t, b, []int{0}, f1, 1)
	b.SetFinal(1)

	c := NewChecker(a, b, preorder.Identity(2))
	if !c.Holds() {
		t.Fatal("identical automata should be mutually included")
	}
}

func TestSupersetLanguageNotIncluded(t *testing.T) {
	al := alphabet.New()
	a0, _ := al.Intern("a", 0)
	b0, _ := al.Intern("b", 0)
	f1, _ := al.Intern("f", 1)

	a := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, a, nil, a0, 0)
	mustAdd(t, a, nil, b0, 1)
	mustAdd(t, a, []int{0}, f1, 2)
	mustAdd(t, a, []int{1}, f1, 2)
	a.SetFinal(2)

	bAut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, bAut, nil, a0, 0)
	mustAdd(t, bAut, []int{0}, f1, 1)
	bAut.SetFinal(1)

	c := NewChecker(a, bAut, preorder.Identity(3))
	if c.Holds() {
		t.Fatal("a accepts f(b) which bAut does not: inclusion should not hold")
	}
}

func TestSubsetLanguageIncluded(t *testing.T) {
	al := alphabet.New()
	a0, _ := al.Intern("a", 0)
	b0, _ := al.Intern("b", 0)
	f1, _ := al.Intern("f", 1)

	aAut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, aAut, nil, a0, 0)
	mustAdd(t, aAut, []int{0}, f1, 1)
	aAut.SetFinal(1)

	bAut := tree.New(tree.NewTupleCache(), al)
	mustAdd(t, bAut, nil, a0, 0)
	mustAdd(t, bAut, nil, b0, 1)
	mustAdd(t, bAut, []int{0}, f1, 2)
	mustAdd(t, bAut, []int{1}, f1, 2)
	bAut.SetFinal(2)

	c := NewChecker(aAut, bAut, preorder.Identity(3))
	if !c.Holds() {
		t.Fatal("aAut's language f(a) is a subset of bAut's f(a)|f(b): inclusion should hold")
	}
}
