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

	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/preorder"
	"github.com/vata-go/vata/simulation"
	"github.com/vata-go/vata/vataerr"
)

func newSimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim <file>",
		Short: "Print the downward simulation preorder pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error {
				l, err := loadFile(args[0])
				if err != nil {
					return err
				}
				if l.kind != repTree {
					return vataerr.Preconditionf("sim requires -r expl: simulation is only computed over tree automata")
				}
				if viper.GetBool("no-output") {
					return nil
				}
				return printSimulation(l.tree.Automaton)
			})
		},
	}
}

func printSimulation(a *tree.Automaton) error {
	rel, states, index := downwardOf(a)
	for _, p := range states {
		for _, q := range states {
			if p == q {
				continue
			}
			if rel.LessEq(index[p], index[q]) {
				fmt.Fprintf(os.Stdout, "%d <= %d\n", p, q)
			}
		}
	}
	return nil
}

// downwardOf computes the downward simulation preorder over a's own
// transitions and returns it alongside a's state list and a dense index
// into it. Unlike incl.simulationFor this never mixes two operands
// together.
func downwardOf(a *tree.Automaton) (rel *preorder.Relation, states []int, index map[int]int) {
	sys := a.ToLTS()
	rel = simulation.Downward(sys)

	index = make(map[int]int, len(sys.States))
	for i, s := range sys.States {
		index[s] = i
	}
	return rel, sys.States, index
}
