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
	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/vataerr"
)

// FiniteResult is a parsed Timbuk finite-automaton description plus the
// bookkeeping needed to serialize it back out unchanged.
type FiniteResult struct {
	Name      string
	Automaton *finite.Automaton
	Alphabet  *alphabet.Alphabet
	States    *StateDict
}

// ParseFinite reads a Timbuk finite-automaton description from r. Per
// spec.md §6, a zero-child Transitions line ("sym -> q") is the start-
// state encoding: q is a start state reachable by reading sym first, not
// a ground transition — the one syntactic difference from ParseTree.
func ParseFinite(r io.Reader, al *alphabet.Alphabet) (*FiniteResult, error) {
	doc, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	symbols, err := internSymbols(al, doc.opsArity)
	if err != nil {
		return nil, err
	}

	states := NewStateDict()
	aut := finite.New(al)

	for _, tr := range doc.transitions {
		sym, ok := symbols[tr.symbol]
		if !ok {
			return nil, undeclaredSymbolError(al, tr.symbol)
		}
		if len(tr.children) == 0 {
			aut.AddStart(sym, states.ID(tr.parent))
			continue
		}
		if len(tr.children) != 1 {
			return nil, vataerr.MalformedInputf("finite automaton symbol %q must have exactly one child, got %d", tr.symbol, len(tr.children))
		}
		aut.AddTransition(states.ID(tr.children[0]), sym, states.ID(tr.parent))
	}
	for _, f := range doc.finals {
		aut.SetFinal(states.ID(f))
	}

	return &FiniteResult{Name: doc.name, Automaton: aut, Alphabet: al, States: states}, nil
}

// WriteFinite serializes res in canonical Timbuk form, mirroring
// WriteTree's sort-then-print discipline.
func WriteFinite(w io.Writer, res *FiniteResult) error {
	symbolNames := make([]string, 0, res.Alphabet.Len())
	seen := map[string]bool{}
	note := func(sym alphabet.Symbol) {
		name, ok := res.Alphabet.Name(sym)
		if ok && !seen[name] {
			seen[name] = true
			symbolNames = append(symbolNames, name)
		}
	}
	for _, q := range res.Automaton.States() {
		for _, sym := range res.Automaton.OutSymbols(q) {
			note(sym)
		}
	}
	for _, q := range res.Automaton.StartStates() {
		for _, sym := range res.Automaton.StartSymbols(q) {
			note(sym)
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
	var lines []string
	for _, q := range res.Automaton.StartStates() {
		for _, sym := range res.Automaton.StartSymbols(q) {
			name, _ := res.Alphabet.Name(sym)
			lines = append(lines, fmt.Sprintf("%s -> %s", name, res.States.Name(q)))
		}
	}
	for _, q := range res.Automaton.States() {
		for _, sym := range res.Automaton.OutSymbols(q) {
			name, _ := res.Alphabet.Name(sym)
			for _, next := range res.Automaton.Next(q, sym) {
				lines = append(lines, fmt.Sprintf("%s(%s) -> %s", name, res.States.Name(q), res.States.Name(next)))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
