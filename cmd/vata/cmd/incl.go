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

	"github.com/spf13/cobra"

	"github.com/vata-go/vata/incl"
	"github.com/vata-go/vata/incl/congr"
	"github.com/vata-go/vata/vataerr"
)

func newInclCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incl <f1> <f2>",
		Short: "Check L(f1) subseteq L(f2)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error { return runInclusion(args, false) })
		},
	}
}

func newEquivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <f1> <f2>",
		Short: "Check L(f1) == L(f2)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error { return runInclusion(args, true) })
		},
	}
}

func runInclusion(args []string, equivalence bool) error {
	a, err := loadFile(args[0])
	if err != nil {
		return err
	}
	b, err := loadFile(args[1])
	if err != nil {
		return err
	}
	if a.kind != b.kind {
		return vataerr.Preconditionf("incl/equiv requires both operands to use the same representation")
	}

	opts := parseAlgOptions()
	holds, err := checkInclusion(a, b, opts, equivalence)
	if err != nil {
		return err
	}
	fmt.Println(holds)
	return nil
}

func checkInclusion(a, b *loaded, opts algOptions, equivalence bool) (bool, error) {
	switch a.kind {
	case repTree:
		p := inclParam(opts, equivalence)
		return incl.Check(a.tree.Automaton, b.tree.Automaton, p)
	case repFinite:
		order := congr.BreadthFirst
		if opts.get("order", "breadth") == "depth" {
			order = congr.DepthFirst
		}
		if equivalence {
			return congr.Equivalent(a.finite.Automaton, b.finite.Automaton, order), nil
		}
		return congr.NewChecker(a.finite.Automaton, b.finite.Automaton, order).Holds(), nil
	default:
		return false, unimplementedRep(representation())
	}
}

// inclParam maps the "-o k=v,k=v" algorithm options (spec.md §6) onto an
// incl.InclParam: alg selects Tree vs Congruence representation, dir
// selects the checker direction, sim toggles the downward-simulation
// preorder the antichain comparer uses.
func inclParam(opts algOptions, equivalence bool) incl.InclParam {
	p := incl.DefaultParam()
	p.Equivalence = equivalence

	if opts.get("alg", "antichains") == "congr" {
		p.Representation = incl.Congruence
		if opts.get("order", "breadth") == "depth" {
			p.CongruenceOrder = congr.DepthFirst
		} else {
			p.CongruenceOrder = congr.BreadthFirst
		}
		return p
	}

	if opts.get("dir", "down") == "up" {
		p.Direction = incl.Upward
	} else {
		p.Direction = incl.Downward
	}
	if opts.get("sim", "yes") == "no" {
		p.Simulation = incl.NoSimulation
	} else {
		p.Simulation = incl.DownwardSimulation
	}
	return p
}
