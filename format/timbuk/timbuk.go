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

// Package timbuk is the text format external collaborator spec.md §6
// names: a reader and writer for the Timbuk automaton format. It owns the
// state name <-> integer-id bookkeeping spec.md §1 says is deliberately
// out of the core's scope, and validates, at load time, that every tree
// transition's arity agrees with its symbol's Ops declaration (spec.md's
// supplemented load-time validation feature) before handing the result
// to automaton/tree. Finite-automaton input is only checked for zero
// (start-state line) or one child per transition; its Ops arities are not
// compared against the transitions.
package timbuk

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vata-go/vata/alphabet"
	"github.com/vata-go/vata/vataerr"
)

// StateDict interns Timbuk state names to the dense integer ids the core
// packages use, and translates back for serialization.
type StateDict struct {
	byName map[string]int
	byID   []string
}

// NewStateDict returns an empty dictionary.
func NewStateDict() *StateDict {
	return &StateDict{byName: make(map[string]int)}
}

// ID interns name, assigning it the next dense id on first sight.
func (d *StateDict) ID(name string) int {
	if id, ok := d.byName[name]; ok {
		return id
	}
	id := len(d.byID)
	d.byName[name] = id
	d.byID = append(d.byID, name)
	return id
}

// Name returns the textual name previously interned for id, or a
// synthetic "qN" placeholder if id was never named (e.g. a state
// introduced by Union/Totalize after parsing).
func (d *StateDict) Name(id int) string {
	if id >= 0 && id < len(d.byID) {
		return d.byID[id]
	}
	return fmt.Sprintf("q%d", id)
}

var (
	opsHeader      = regexp.MustCompile(`^Ops\b`)
	automatonHdr   = regexp.MustCompile(`^Automaton\s+(\S+)\s*$`)
	statesHeader   = regexp.MustCompile(`^States\b`)
	finalHeader    = regexp.MustCompile(`^Final\s+States\b`)
	transHeader    = regexp.MustCompile(`^Transitions\s*$`)
	transitionLine = regexp.MustCompile(`^(\S+)\s*(?:\(([^)]*)\))?\s*->\s*(\S+)\s*$`)
)

// rawTransition is one parsed Timbuk transition line, symbols and states
// still as text.
type rawTransition struct {
	symbol   string
	children []string
	parent   string
}

// document is the shared intermediate form both automaton kinds parse
// into before being built into a concrete automaton, since Ops, the
// Automaton name, and Final States all follow identical grammar in
// either representation — only the interpretation of a zero-child
// Transitions line differs (spec.md §6).
type document struct {
	name        string
	opsArity    map[string]int
	finals      []string
	transitions []rawTransition
}

// parseDocument scans r line by line; section headers are line-sensitive
// per spec.md §6, so a header is recognized only at the start of a line
// and switches which section following lines belong to until the next
// header.
func parseDocument(r io.Reader) (*document, error) {
	doc := &document{opsArity: make(map[string]int)}
	section := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case opsHeader.MatchString(line):
			section = "ops"
			rest := strings.TrimSpace(strings.TrimPrefix(line, "Ops"))
			if err := parseNameArityTokens(rest, doc.opsArity); err != nil {
				return nil, wrapLine(lineNo, err)
			}
			continue
		case automatonHdr.MatchString(line):
			section = "automaton"
			doc.name = automatonHdr.FindStringSubmatch(line)[1]
			continue
		case finalHeader.MatchString(line):
			section = "final"
			rest := strings.TrimSpace(finalHeader.ReplaceAllString(line, ""))
			doc.finals = append(doc.finals, fields(rest)...)
			continue
		case statesHeader.MatchString(line):
			section = "states"
			continue
		case transHeader.MatchString(line):
			section = "transitions"
			continue
		}

		switch section {
		case "ops":
			if err := parseNameArityTokens(line, doc.opsArity); err != nil {
				return nil, wrapLine(lineNo, err)
			}
		case "final":
			doc.finals = append(doc.finals, fields(line)...)
		case "states":
			// State declarations are informational only: every state
			// actually used is discovered from the Transitions section.
		case "transitions":
			m := transitionLine.FindStringSubmatch(line)
			if m == nil {
				return nil, vataerr.MalformedInputf("line %d: malformed transition %q", lineNo, line)
			}
			tr := rawTransition{symbol: m[1], parent: m[3]}
			if m[2] != "" {
				tr.children = fields(strings.ReplaceAll(m[2], ",", " "))
			}
			doc.transitions = append(doc.transitions, tr)
		default:
			return nil, vataerr.MalformedInputf("line %d: %q precedes any section header", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func wrapLine(lineNo int, err error) error {
	return vataerr.MalformedInputf("line %d: %v", lineNo, err)
}

func fields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

// parseNameArityTokens parses a run of "name:arity" tokens (the Ops
// grammar, spec.md §6) into dst.
func parseNameArityTokens(s string, dst map[string]int) error {
	for _, tok := range fields(s) {
		parts := strings.SplitN(tok, ":", 2)
		if len(parts) != 2 {
			return vataerr.MalformedInputf("expected name:arity, got %q", tok)
		}
		arity, err := strconv.Atoi(parts[1])
		if err != nil {
			return vataerr.MalformedInputf("bad arity in %q: %v", tok, err)
		}
		dst[parts[0]] = arity
	}
	return nil
}

// internSymbols registers every Ops declaration with al, and reports a
// mismatch if a name was already interned with a different arity.
func internSymbols(al *alphabet.Alphabet, opsArity map[string]int) (map[string]alphabet.Symbol, error) {
	out := make(map[string]alphabet.Symbol, len(opsArity))
	for name, arity := range opsArity {
		sym, err := al.Intern(name, arity)
		if err != nil {
			return nil, vataerr.MalformedInputf("%v", err)
		}
		out[name] = sym
	}
	return out, nil
}

// undeclaredSymbolError reports a Transitions-section reference to a
// symbol absent from the Ops declarations, appending a "did you mean"
// suggestion drawn from al's prefix trie (the same
// derekparker/trie-backed lookup gnmidiff/setrequest.go uses for
// path-conflict prefix search) when some declared symbol shares a
// leading substring with the typo.
func undeclaredSymbolError(al *alphabet.Alphabet, name string) error {
	if suggestion, ok := suggestSymbol(al, name); ok {
		return vataerr.MalformedInputf("transition uses undeclared symbol %q (did you mean %q?)", name, suggestion)
	}
	return vataerr.MalformedInputf("transition uses undeclared symbol %q", name)
}

// suggestSymbol finds the longest prefix of name shared by some already
// declared symbol, returning the shortest such match.
func suggestSymbol(al *alphabet.Alphabet, name string) (string, bool) {
	for n := len(name); n > 0; n-- {
		matches := al.WithPrefix(name[:n])
		if len(matches) == 0 {
			continue
		}
		best := matches[0]
		for _, m := range matches[1:] {
			if len(m) < len(best) {
				best = m
			}
		}
		return best, true
	}
	return "", false
}
