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

	"github.com/vata-go/vata/format/timbuk"
	"github.com/vata-go/vata/simulation"
	"github.com/vata-go/vata/vataerr"
)

func newRedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "red <file>",
		Short: "Reduce an automaton by quotienting simulation-equivalent states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error {
				l, err := loadFile(args[0])
				if err != nil {
					return err
				}
				if l.kind != repTree {
					return vataerr.Preconditionf("red requires -r expl: quotienting is only implemented for tree automata")
				}
				rel, states, _ := downwardOf(l.tree.Automaton)
				l.tree.Automaton = simulation.Quotient(l.tree.Automaton, rel, states)
				if viper.GetBool("no-output") {
					return nil
				}
				return timbuk.WriteTree(os.Stdout, l.tree)
			})
		},
	}
}
