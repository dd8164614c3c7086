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

// Package cmd wires one cobra.Command per spec.md §6 CLI verb, binding
// their flags through viper the way gnmidiff/cmd/root.go does.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vata-go/vata/internal/vatadbg"
)

// Execute runs the vata root command, reporting any error to stderr in
// spec.md §7's exact wire format and exiting non-zero.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "vata",
		Short: "vata is a command-line driver for the tree/finite automata library",
	}

	rootCmd.PersistentFlags().StringP("rep", "r", "expl", "Representation: bdd-td, bdd-bu, expl, expl_fa")
	rootCmd.PersistentFlags().String("informat", "timbuk", "Input format (-I)")
	rootCmd.PersistentFlags().String("outformat", "timbuk", "Output format (-O)")
	rootCmd.PersistentFlags().String("format", "", "Input and output format (-F); checked alongside -I/-O, each must be timbuk")
	rootCmd.PersistentFlags().BoolP("time", "t", false, "Print elapsed wall-clock time (not CPU time) on stderr")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolP("no-output", "n", false, "Suppress result-automaton output")
	rootCmd.PersistentFlags().BoolP("prune-unreachable", "p", false, "Prune unreachable states beforehand")
	rootCmd.PersistentFlags().BoolP("prune-useless", "s", false, "Prune useless states beforehand (implies -p)")
	rootCmd.PersistentFlags().StringP("options", "o", "", "Algorithm options, k=v,k=v")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		viper.AutomaticEnv()
		vatadbg.SetVerbose(viper.GetBool("verbose"))
		return nil
	}

	rootCmd.AddCommand(
		newLoadCmd(),
		newWitnessCmd(),
		newCmplCmd(),
		newUnionCmd(),
		newIsectCmd(),
		newSimCmd(),
		newRedCmd(),
		newInclCmd(),
		newEquivCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occured: %s\n", err)
		os.Exit(1)
	}
}

// withTiming runs fn and, if the -t flag is set, prints the elapsed wall
// time to stderr afterward (spec.md §6's "-t" flag; the core has no
// cancellation or timeout support, so this is purely observational).
func withTiming(fn func() error) error {
	start := time.Now()
	err := fn()
	if viper.GetBool("time") {
		fmt.Fprintf(os.Stderr, "elapsed: %s\n", time.Since(start))
	}
	return err
}

// representation returns the -r flag's value.
func representation() string {
	return viper.GetString("rep")
}

// pruneFlags reports the effective (unreachable, useless) pruning
// request: -s implies -p per spec.md §6.
func pruneFlags() (unreachable, useless bool) {
	useless = viper.GetBool("prune-useless")
	unreachable = viper.GetBool("prune-unreachable") || useless
	return
}
