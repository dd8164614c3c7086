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

package timbuk

import (
	"fmt"
	"io"
	"sort"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/vataerr"
)

// TreeResult is a parsed Timbuk tree automaton plus the bookkeeping
// (alphabet, state names) needed to serialize it back out unchanged.
type TreeResult struct {
	Name      string
	Automaton *tree.Automaton
	Alphabet  *alphabet.Alphabet
	States    *StateDict
}

// ParseTree reads a Timbuk tree-automaton description from r, validating
// every transition's arity against its Ops declaration (spec.md's
// load-time validation feature; mirrors the original LoadableAut checks).
func ParseTree(r io.Reader, al *alphabet.Alphabet) (*TreeResult, error) {
	doc, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	symbols, err := internSymbols(al, doc.opsArity)
	if err != nil {
		return nil, err
	}

	states := NewStateDict()
	aut := tree.New(tree.NewTupleCache(), al)

	for _, tr := range doc.transitions {
		sym, ok := symbols[tr.symbol]
		if !ok {
			return nil, undeclaredSymbolError(al, tr.symbol)
		}
		if arity, ok := al.Arity(sym); ok && arity != len(tr.children) {
			return nil, vataerr.MalformedInputf("symbol %q has declared arity %d, transition gives %d children", tr.symbol, arity, len(tr.children))
		}
		children := make([]int, len(tr.children))
		for i, c := range tr.children {
			children[i] = states.ID(c)
		}
		parent := states.ID(tr.parent)
		if err := aut.AddTransition(children, sym, parent); err != nil {
			return nil, err
		}
	}
	for _, f := range doc.finals {
		aut.SetFinal(states.ID(f))
	}

	return &TreeResult{Name: doc.name, Automaton: aut, Alphabet: al, States: states}, nil
}

// WriteTree serializes res in canonical Timbuk form: Ops sorted by name,
// Final States sorted by name, Transitions sorted by (symbol, children,
// parent) so that two serializations of an equal automaton compare
// textually equal (spec.md §8's round-trip scenario).
func WriteTree(w io.Writer, res *TreeResult) error {
	symbolNames := make([]string, 0, res.Alphabet.Len())
	seen := map[string]bool{}
	for _, tr := range res.Automaton.AllTransitions() {
		name, ok := res.Alphabet.Name(tr.Symbol)
		if ok && !seen[name] {
			seen[name] = true
			symbolNames = append(symbolNames, name)
		}
	}
	sort.Strings(symbolNames)

	if _, err := fmt.Fprint(w, "Ops "); err != nil {
		return err
	}
	for i, name := range symbolNames {
		sym, _ := res.Alphabet.Lookup(name)
		arity, _ := res.Alphabet.Arity(sym)
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:%d", name, arity); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n\nAutomaton %s\n\n", res.Name); err != nil {
		return err
	}

	finals := res.Automaton.FinalStates()
	finalNames := make([]string, len(finals))
	for i, q := range finals {
		finalNames[i] = res.States.Name(q)
	}
	sort.Strings(finalNames)
	if _, err := fmt.Fprintf(w, "Final States %s\n\n", join(finalNames)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "Transitions\n"); err != nil {
		return err
	}
	lines := make([]string, 0, len(res.Automaton.AllTransitions()))
	for _, tr := range res.Automaton.AllTransitions() {
		name, _ := res.Alphabet.Name(tr.Symbol)
		parent := res.States.Name(tr.Parent)
		if len(tr.Children) == 0 {
			lines = append(lines, fmt.Sprintf("%s -> %s", name, parent))
			continue
		}
		childNames := make([]string, len(tr.Children))
		for i, c := range tr.Children {
			childNames[i] = res.States.Name(c)
		}
		lines = append(lines, fmt.Sprintf("%s(%s) -> %s", name, joinSep(childNames, ","), parent))
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func join(ss []string) string { return joinSep(ss, " ") }

func joinSep(ss []string, sep string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}
