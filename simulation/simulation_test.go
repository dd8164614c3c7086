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
	"testing"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
)

// buildFork returns an automaton with two ground states 0 and 1 both
// reachable by symbol "a", and a single unary symbol "f" with f(0)->2,
// f(1)->3. States 0 and 1 should be downward-equivalent (same ground
// symbol, no outgoing edges — vacuously simulate each other), and since
// f's transitions mirror them exactly, 2 and 3 should be downward
// equivalent too.
func buildFork(t *testing.T) (*tree.Automaton, alphabet.Symbol, alphabet.Symbol) {
	t.Helper()
	al := alphabet.New()
	a, err := al.Intern("a", 0)
	if err != nil {
		t.Fatal(err)
	}
	f, err := al.Intern("f", 1)
	if err != nil {
		t.Fatal(err)
	}
	aut := tree.New(tree.NewTupleCache(), al)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(aut.AddTransition(nil, a, 0))
	must(aut.AddTransition(nil, a, 1))
	must(aut.AddTransition([]int{0}, f, 2))
	must(aut.AddTransition([]int{1}, f, 3))
	return aut, a, f
}

func TestDownwardIsPreorder(t *testing.T) {
	aut, _, _ := buildFork(t)
	r := Downward(aut.ToLTS())
	if !r.IsPreorder() {
		t.Fatal("downward simulation must be reflexive and transitive")
	}
}

func TestDownwardRelatesSymmetricGroundStates(t *testing.T) {
	aut, _, _ := buildFork(t)
	sys := aut.ToLTS()
	r := Downward(sys)
	index := make(map[int]int)
	for i, s := range sys.States {
		index[s] = i
	}
	if !r.LessEq(index[0], index[1]) || !r.LessEq(index[1], index[0]) {
		t.Fatal("states 0 and 1 have no outgoing edges and should simulate each other")
	}
	if !r.LessEq(index[2], index[3]) || !r.LessEq(index[3], index[2]) {
		t.Fatal("states 2 and 3 both reach only the 0/1 equivalence class under f and should simulate each other")
	}
}

func TestUpwardIsPreorder(t *testing.T) {
	aut, _, _ := buildFork(t)
	down := Downward(aut.ToLTS())
	env := aut.ToEnvironment()
	states := aut.States()
	r := Upward(env, down, states)
	if !r.IsPreorder() {
		t.Fatal("upward simulation must be reflexive and transitive")
	}
}

func TestUpwardRelatesStatesInEquivalentContexts(t *testing.T) {
	aut, _, _ := buildFork(t)
	down := Downward(aut.ToLTS())
	env := aut.ToEnvironment()
	states := aut.States()
	r := Upward(env, down, states)
	index := make(map[int]int)
	for i, s := range states {
		index[s] = i
	}
	if !r.LessEq(index[0], index[1]) || !r.LessEq(index[1], index[0]) {
		t.Fatal("0 and 1 occur in the same (f, position 0) context and should be upward-equivalent")
	}
}
