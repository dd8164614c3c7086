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

	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/format/timbuk"
	"github.com/vata-go/vata/vataerr"
)

func newUnionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union <f1> <f2>",
		Short: "Print the union automaton",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error { return setOp(args, "union") })
		},
	}
}

func newIsectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isect <f1> <f2>",
		Short: "Print the intersection automaton",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTiming(func() error { return setOp(args, "isect") })
		},
	}
}

func setOp(args []string, op string) error {
	a, err := loadFile(args[0])
	if err != nil {
		return err
	}
	b, err := loadFile(args[1])
	if err != nil {
		return err
	}
	if a.kind != b.kind {
		return vataerr.Preconditionf("%s requires both operands to use the same representation", op)
	}

	var out *loaded
	switch a.kind {
	case repTree:
		var res *tree.Automaton
		if op == "union" {
			res = tree.Union(a.tree.Automaton, b.tree.Automaton)
		} else {
			res = tree.Intersect(a.tree.Automaton, b.tree.Automaton)
		}
		out = &loaded{kind: repTree, tree: &timbuk.TreeResult{
			Name:      a.tree.Name,
			Automaton: res,
			Alphabet:  a.tree.Alphabet,
			States:    a.tree.States,
		}}
	case repFinite:
		var res *finite.Automaton
		if op == "union" {
			res = finite.Union(a.finite.Automaton, b.finite.Automaton)
		} else {
			res = finite.Intersect(a.finite.Automaton, b.finite.Automaton)
		}
		out = &loaded{kind: repFinite, finite: &timbuk.FiniteResult{
			Name:      a.finite.Name,
			Automaton: res,
			Alphabet:  a.finite.Alphabet,
			States:    a.finite.States,
		}}
	default:
		return unimplementedRep(representation())
	}

	if viper.GetBool("no-output") {
		return nil
	}
	return writeLoaded(os.Stdout, out)
}
