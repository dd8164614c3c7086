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

// Package tree implements the explicit tree-automaton transition store of
// spec.md §4.3: a copy-on-write state -> symbol -> {child-tuple} map backed
// by a hash-consed, reference-counted tuple cache, so that automata
// produced from one another by cheap structural operations (e.g. the
// per-obligation sub-automata the inclusion checkers build) share storage
// until one of them is actually mutated.
package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Tuple is a hash-consed, reference-counted ordered sequence of states —
// the children of a tree-automaton transition.
type Tuple struct {
	children []int
	refs     int
}

// Children returns the tuple's states in order. Callers must not mutate
// the result.
func (t *Tuple) Children() []int { return t.children }

// Arity returns len(Children()).
func (t *Tuple) Arity() int { return len(t.children) }

func tupleKey(children []int) string {
	var b strings.Builder
	for i, c := range children {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// TupleCache hash-conses child tuples. A TupleCache handle is shared by
// every automaton that should participate in copy-on-write together; two
// automata built from different TupleCaches never share tuple storage even
// if their tuples happen to be equal.
type TupleCache struct {
	table map[string]*Tuple
}

// NewTupleCache returns an empty TupleCache.
func NewTupleCache() *TupleCache {
	return &TupleCache{table: make(map[string]*Tuple)}
}

// Intern returns the canonical Tuple for the given children, creating it on
// a cache miss. Like mtbdd.Package.Leaf, Intern itself never bumps the
// returned tuple's reference count — callers that keep a handle (by
// inserting it into a TupleSet) must call Ref explicitly.
func (c *TupleCache) Intern(children []int) *Tuple {
	cs := append([]int(nil), children...)
	key := tupleKey(cs)
	if t, ok := c.table[key]; ok {
		return t
	}
	t := &Tuple{children: cs}
	c.table[key] = t
	return t
}

// Ref bumps t's reference count.
func (c *TupleCache) Ref(t *Tuple) {
	t.refs++
}

// Release decrements t's reference count, removing it from the cache once
// it reaches zero.
func (c *TupleCache) Release(t *Tuple) {
	t.refs--
	if t.refs <= 0 {
		delete(c.table, tupleKey(t.children))
	}
}

// Size returns the number of distinct tuples currently interned.
func (c *TupleCache) Size() int { return len(c.table) }

func (t *Tuple) String() string {
	parts := make([]string, len(t.children))
	for i, c := range t.children {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
