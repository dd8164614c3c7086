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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/automaton/finite"
	"github.com/vata-go/vata/automaton/tree"
	"github.com/vata-go/vata/format/timbuk"
	"github.com/vata-go/vata/prune"
)

// repKind is which concrete automaton representation a -r value selects.
type repKind int

const (
	repTree repKind = iota
	repFinite
)

// loaded is the union of the two concrete automaton representations the
// CLI actually implements, tagged by kind, plus enough of the Timbuk
// load result to serialize back out.
type loaded struct {
	kind   repKind
	tree   *timbuk.TreeResult
	finite *timbuk.FiniteResult
}

func kindOf(rep string) (repKind, error) {
	switch rep {
	case "expl":
		return repTree, nil
	case "expl_fa":
		return repFinite, nil
	case "bdd-td", "bdd-bu":
		return 0, unimplementedRep(rep)
	default:
		return 0, malformedRep(rep)
	}
}

func loadFile(path string) (*loaded, error) {
	if err := checkTimbukOnly(); err != nil {
		return nil, err
	}
	kind, err := kindOf(representation())
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	al := alphabet.New()
	switch kind {
	case repTree:
		res, err := timbuk.ParseTree(f, al)
		if err != nil {
			return nil, err
		}
		res.Automaton = applyPruning(res.Automaton)
		return &loaded{kind: repTree, tree: res}, nil
	case repFinite:
		res, err := timbuk.ParseFinite(f, al)
		if err != nil {
			return nil, err
		}
		res.Automaton = applyPruningFinite(res.Automaton)
		return &loaded{kind: repFinite, finite: res}, nil
	default:
		return nil, unimplementedRep(representation())
	}
}

func applyPruning(a *tree.Automaton) *tree.Automaton {
	unreachable, useless := pruneFlags()
	switch {
	case useless:
		return prune.RemoveUseless(a)
	case unreachable:
		return prune.RemoveUnreachable(a)
	default:
		return a
	}
}

func applyPruningFinite(a *finite.Automaton) *finite.Automaton {
	unreachable, useless := pruneFlags()
	switch {
	case useless:
		return prune.RemoveUselessFinite(a)
	case unreachable:
		return prune.RemoveUnreachableFinite(a)
	default:
		return a
	}
}

func writeLoaded(w io.Writer, l *loaded) error {
	switch l.kind {
	case repTree:
		return timbuk.WriteTree(w, l.tree)
	case repFinite:
		return timbuk.WriteFinite(w, l.finite)
	default:
		return fmt.Errorf("unknown loaded kind %v", l.kind)
	}
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Parse and echo an automaton",
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
				return writeLoaded(os.Stdout, l)
			})
		},
	}
}
