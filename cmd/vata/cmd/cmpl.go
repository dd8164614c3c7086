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

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/format/timbuk"
	"github.com/vata-go/vata/vataerr"
)

func newCmplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmpl <file>",
		Short: "Complement an automaton (DFA assumption for finite automata)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error {
				l, err := loadFile(args[0])
				if err != nil {
					return err
				}
				if l.kind != repFinite {
					return vataerr.Preconditionf("cmpl requires -r expl_fa: tree automata are not complemented (see SPEC_FULL.md)")
				}
				symbols := allFiniteSymbols(l.finite.Automaton)
				total := finite.Totalize(l.finite.Automaton, symbols)
				out, err := finite.Complement(total)
				if err != nil {
					return err
				}
				l.finite.Automaton = out
				if viper.GetBool("no-output") {
					return nil
				}
				return timbuk.WriteFinite(os.Stdout, l.finite)
			})
		},
	}
}

// allFiniteSymbols collects every symbol appearing anywhere in a, the
// alphabet Totalize needs to know which (state, symbol) pairs to route
// to the sink.
func allFiniteSymbols(a *finite.Automaton) []alphabet.Symbol {
	seen := make(map[alphabet.Symbol]bool)
	for _, q := range a.States() {
		for _, sym := range a.OutSymbols(q) {
			seen[sym] = true
		}
	}
	for _, q := range a.StartStates() {
		for _, sym := range a.StartSymbols(q) {
			seen[sym] = true
		}
	}
	out := make([]alphabet.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}
