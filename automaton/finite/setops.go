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
	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/vataerr"
)

// maxState returns 1 + the largest state id mentioned by a.
func maxState(a *Automaton) int {
	max := -1
	bump := func(s int) {
		if s > max {
			max = s
		}
	}
	for _, s := range a.AllStates() {
		bump(s)
	}
	return max + 1
}

// Union returns a fresh automaton accepting L(a) ∪ L(b): b's states are
// renumbered by a disjoint offset, mirroring tree.Union.
func Union(a, b *Automaton) *Automaton {
	out := New(a.Alphabet)
	offset := maxState(a)

	for q, syms := range a.starts {
		for sym := range syms {
			out.AddStart(sym, q)
		}
	}
	for _, q := range a.FinalStates() {
		out.SetFinal(q)
	}
	for _, q := range a.States() {
		for _, sym := range a.OutSymbols(q) {
			for _, to := range a.Next(q, sym) {
				out.AddTransition(q, sym, to)
			}
		}
	}

	for q, syms := range b.starts {
		for sym := range syms {
			out.AddStart(sym, q+offset)
		}
	}
	for _, q := range b.FinalStates() {
		out.SetFinal(q + offset)
	}
	for _, q := range b.States() {
		for _, sym := range b.OutSymbols(q) {
			for _, to := range b.Next(q, sym) {
				out.AddTransition(q+offset, sym, to+offset)
			}
		}
	}
	return out
}

func pairState(p, q, qSpan int) int { return p*qSpan + q }

// Intersect returns the product automaton accepting L(a) ∩ L(b).
func Intersect(a, b *Automaton) *Automaton {
	out := New(a.Alphabet)
	qSpan := maxState(b)
	if qSpan == 0 {
		qSpan = 1
	}

	for pa, symsA := range a.starts {
		for pb, symsB := range b.starts {
			for sym := range symsA {
				if symsB[sym] {
					out.AddStart(sym, pairState(pa, pb, qSpan))
				}
			}
		}
	}
	for _, p := range a.FinalStates() {
		for _, q := range b.FinalStates() {
			out.SetFinal(pairState(p, q, qSpan))
		}
	}
	for _, p := range a.States() {
		for _, q := range b.States() {
			for _, sym := range a.OutSymbols(p) {
				toAs := a.Next(p, sym)
				toBs := b.Next(q, sym)
				if len(toBs) == 0 {
					continue
				}
				for _, ta := range toAs {
					for _, tb := range toBs {
						out.AddTransition(pairState(p, q, qSpan), sym, pairState(ta, tb, qSpan))
					}
				}
			}
		}
	}
	return out
}

// Reverse returns the automaton accepting the reverse of L(a): every
// transition is flipped, the old final states become the new start
// states, and the old start states become final.
func Reverse(a *Automaton) *Automaton {
	out := New(a.Alphabet)
	for _, p := range a.States() {
		for _, sym := range a.OutSymbols(p) {
			for _, q := range a.Next(p, sym) {
				out.AddTransition(q, sym, p)
			}
		}
	}
	for _, q := range a.StartStates() {
		out.SetFinal(q)
	}
	for _, q := range a.FinalStates() {
		for _, sym := range a.OutSymbols(q) {
			out.AddStart(sym, q)
		}
		// A final state with no out-edges is still a valid new start; record
		// it against every symbol the old automaton knows, so Complement's
		// totality check still has something to reason about.
		if len(a.OutSymbols(q)) == 0 {
			for _, sym := range allSymbols(a) {
				out.AddStart(sym, q)
			}
		}
	}
	return out
}

func allSymbols(a *Automaton) []alphabet.Symbol {
	seen := make(map[alphabet.Symbol]bool)
	for _, q := range a.States() {
		for _, sym := range a.OutSymbols(q) {
			seen[sym] = true
		}
	}
	for _, syms := range a.starts {
		for sym := range syms {
			seen[sym] = true
		}
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}

// Complement returns an automaton accepting the complement of L(a) with
// respect to the symbols a itself uses (on its transitions and start
// entries; other symbols of a.Alphabet are not considered). Per spec.md's
// supplemented-features list,
// complement requires a completely specified deterministic automaton: a
// single start state, and exactly one transition per (state, symbol).
// Callers should run determinization/totality completion (adding an
// explicit sink state for missing transitions) before calling Complement;
// this function validates totality and returns a KindPrecondition error
// rather than silently producing a wrong answer.
func Complement(a *Automaton) (*Automaton, error) {
	starts := a.StartStates()
	if len(starts) != 1 {
		return nil, vataerr.Preconditionf("complement requires exactly one start state, got %d", len(starts))
	}
	syms := allSymbols(a)
	for _, q := range a.AllStates() {
		for _, sym := range syms {
			next := a.Next(q, sym)
			if len(next) != 1 {
				return nil, vataerr.Preconditionf("complement requires a complete deterministic automaton: state %d has %d transitions on symbol %v, want exactly 1", q, len(next), sym)
			}
		}
	}

	out := a.Clone()
	finals := make(map[int]bool)
	for _, q := range out.AllStates() {
		finals[q] = true
	}
	for _, q := range out.FinalStates() {
		delete(finals, q)
	}
	out.finals = make(map[int]bool)
	for q := range finals {
		out.finals[q] = true
	}
	return out, nil
}

// Totalize adds an explicit sink state (the first integer strictly
// greater than every existing state) and routes every missing
// (state, symbol) transition to it, making a deterministic automaton
// complete. It is a no-op if a is already total.
func Totalize(a *Automaton, syms []alphabet.Symbol) *Automaton {
	out := a.Clone()
	sink := maxState(a)
	needsSink := false
	states := out.AllStates()
	for _, q := range states {
		for _, sym := range syms {
			if len(out.Next(q, sym)) == 0 {
				out.AddTransition(q, sym, sink)
				needsSink = true
			}
		}
	}
	if needsSink {
		for _, sym := range syms {
			out.AddTransition(sink, sym, sink)
		}
	}
	return out
}
