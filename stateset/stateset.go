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

// Package stateset implements the state-set value type shared by the
// upward/downward inclusion checkers and the congruence checker's
// macro-states, plus a hash-consing cache ("biggerTypeCache" /
// "MacroStateCache" in spec.md §4.7/§4.8) so that sets can be compared and
// used as map keys by identity.
package stateset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vata-go/vata/preorder"
)

// Set is an immutable, canonically-sorted set of state ids.
type Set struct {
	states []int
	key    string
}

func makeKey(sorted []int) string {
	var b strings.Builder
	for i, s := range sorted {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	return b.String()
}

// Of builds a Set from states, deduplicating and sorting them.
func Of(states ...int) *Set {
	m := make(map[int]struct{}, len(states))
	for _, s := range states {
		m[s] = struct{}{}
	}
	sorted := make([]int, 0, len(m))
	for s := range m {
		sorted = append(sorted, s)
	}
	sort.Ints(sorted)
	return &Set{states: sorted, key: makeKey(sorted)}
}

// Empty returns the empty set.
func Empty() *Set { return Of() }

// Union returns the union of a and b.
func Union(a, b *Set) *Set {
	return Of(append(append([]int{}, a.states...), b.states...)...)
}

// States returns the sorted slice of member states. Callers must not
// mutate the result.
func (s *Set) States() []int { return s.states }

// Len returns the number of member states.
func (s *Set) Len() int { return len(s.states) }

// Contains reports whether q is a member.
func (s *Set) Contains(q int) bool {
	i := sort.SearchInts(s.states, q)
	return i < len(s.states) && s.states[i] == q
}

// Key returns a canonical string key, suitable for use as a map key where
// pointer identity isn't available (e.g. before interning through a
// Cache).
func (s *Set) Key() string { return s.key }

func (s *Set) String() string {
	return "{" + strings.Join(strings.Split(s.key, ","), ", ") + "}"
}

// Cache hash-conses Sets so that two Of(...) calls with the same members
// return the identical *Set pointer — the "biggerTypeCache" /
// "MacroStateCache" of spec.md §4.7/§4.8, letting callers use *Set
// pointers directly as comparable map keys.
type Cache struct {
	byKey map[string]*Set
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{byKey: make(map[string]*Set)}
}

// Intern returns the canonical *Set for the given members.
func (c *Cache) Intern(states ...int) *Set {
	s := Of(states...)
	if existing, ok := c.byKey[s.key]; ok {
		return existing
	}
	c.byKey[s.key] = s
	return s
}

// InternSet interns an already-built Set (e.g. the result of Union).
func (c *Cache) InternSet(s *Set) *Set {
	if existing, ok := c.byKey[s.key]; ok {
		return existing
	}
	c.byKey[s.key] = s
	return s
}

// Size returns the number of distinct sets currently interned.
func (c *Cache) Size() int { return len(c.byKey) }

// SubsumesUnderPreorder reports whether every state of sub is <= some state
// of super under r (the "S ⊑ S'" of spec.md §3). The inclusion checkers
// in this module do not call it; they test membership with ContainsGTE.
func SubsumesUnderPreorder(r *preorder.Relation, sub, super *Set) bool {
	for _, p := range sub.states {
		ok := false
		for _, q := range super.states {
			if r.LessEq(p, q) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// ContainsGTE reports whether s contains some state q with p <= q under r —
// the preorder-subsumption check "S contains some q' >= q" of spec.md §4.6.
func ContainsGTE(r *preorder.Relation, s *Set, p int) bool {
	for _, q := range s.states {
		if r.LessEq(p, q) {
			return true
		}
	}
	return false
}
