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

// Package alphabet implements the external symbol dictionary that the core
// (spec.md §1, §3) treats as an opaque collaborator: a name <-> integer-id
// mapping plus, per symbol, its fixed arity. The core packages only ever
// see integer symbol ids; this package is what the Timbuk parser/serializer
// and the CLI driver use to translate to and from the names a user types.
package alphabet

import (
	"fmt"

	"github.com/derekparker/trie"
)

// Symbol is an opaque, interned symbol identifier.
type Symbol int

// Alphabet is a per-run (not process-wide, per the REDESIGN FLAG in
// spec.md §9) name <-> Symbol dictionary with a fixed arity per symbol. A
// names trie backs prefix queries (e.g. the Timbuk parser's "did you mean"
// suggestion for an undeclared symbol) the same way
// gnmidiff/setrequest.go uses derekparker/trie for path-conflict prefix
// search.
type Alphabet struct {
	names    *trie.Trie
	byName   map[string]Symbol
	byID     map[Symbol]string
	arity    map[Symbol]int
	nextID   Symbol
}

// New returns an empty Alphabet.
func New() *Alphabet {
	return &Alphabet{
		names:  trie.New(),
		byName: make(map[string]Symbol),
		byID:   make(map[Symbol]string),
		arity:  make(map[Symbol]int),
	}
}

// Intern registers name with the given arity and returns its Symbol,
// reusing the existing id if name is already known (requiring the arity to
// match — Timbuk input declaring the same operator twice with different
// arities is malformed input).
func (a *Alphabet) Intern(name string, arity int) (Symbol, error) {
	if id, ok := a.byName[name]; ok {
		if a.arity[id] != arity {
			return 0, fmt.Errorf("symbol %q redeclared with arity %d, previously %d", name, arity, a.arity[id])
		}
		return id, nil
	}
	id := a.nextID
	a.nextID++
	a.byName[name] = id
	a.byID[id] = name
	a.arity[id] = arity
	a.names.Add(name, id)
	return id, nil
}

// Lookup returns the Symbol for name, if known.
func (a *Alphabet) Lookup(name string) (Symbol, bool) {
	id, ok := a.byName[name]
	return id, ok
}

// Name returns the textual name of id, if known.
func (a *Alphabet) Name(id Symbol) (string, bool) {
	name, ok := a.byID[id]
	return name, ok
}

// Arity returns the arity of id, if known.
func (a *Alphabet) Arity(id Symbol) (int, bool) {
	ar, ok := a.arity[id]
	return ar, ok
}

// WithPrefix returns every registered symbol name sharing the given
// prefix, using the backing trie's prefix search.
func (a *Alphabet) WithPrefix(prefix string) []string {
	return a.names.PrefixSearch(prefix)
}

// Len returns the number of distinct symbols registered.
func (a *Alphabet) Len() int {
	return len(a.byName)
}
