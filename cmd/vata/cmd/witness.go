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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vata-go/vata/format/timbuk"
	"github.com/vata-go/vata/prune"
)

func newWitnessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "witness <file>",
		Short: "Print a candidate tree (or string) witnessing a non-empty language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error {
				l, err := loadFile(args[0])
				if err != nil {
					return err
				}
				if viper.GetBool("no-output") {
					return nil
				}
				return printWitness(l)
			})
		},
	}
}

func printWitness(l *loaded) error {
	switch l.kind {
	case repTree:
		out, ok := prune.CandidateTree(l.tree.Automaton)
		if !ok {
			fmt.Println("language is empty")
			return nil
		}
		return timbuk.WriteTree(os.Stdout, &timbuk.TreeResult{
			Name:      l.tree.Name,
			Automaton: out,
			Alphabet:  l.tree.Alphabet,
			States:    l.tree.States,
		})
	case repFinite:
		syms, ok := prune.CandidateString(l.finite.Automaton)
		if !ok {
			fmt.Println("language is empty")
			return nil
		}
		for i, sym := range syms {
			if i > 0 {
				fmt.Print(" ")
			}
			name, _ := l.finite.Alphabet.Name(sym)
			fmt.Print(name)
		}
		fmt.Println()
		return nil
	default:
		return unimplementedRep(representation())
	}
}
