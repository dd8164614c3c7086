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

package antichain

import "github.com/vata-go/vata/preorder"

// Pair2C is one (smaller-state, bigger-set) obligation of a 2-column
// antichain.
type Pair2C[V any] struct {
	Smaller int
	Bigger  V
}

// CompareV reports whether sub's bigger-set is subsumed by super's, i.e.
// the "S ⊑ S'" half of the 2-column subsumption order of spec.md §3.
type CompareV[V any] func(sub, super V) bool

// Antichain2Cv2 is keyed by the smaller-state (the "K" of spec.md §4.4) with
// buckets of (state, V) pairs, subsumption-checked via cmp and the
// preorder r: (s, S) ⊑ (s', S') iff s <= s' and cmp(S, S').
type Antichain2Cv2[V any] struct {
	r       *preorder.Relation
	cmp     CompareV[V]
	buckets map[int][]Pair2C[V]
}

// New2C returns an empty Antichain2Cv2.
func New2C[V any](r *preorder.Relation, cmp CompareV[V]) *Antichain2Cv2[V] {
	return &Antichain2Cv2[V]{r: r, cmp: cmp, buckets: make(map[int][]Pair2C[V])}
}

// Contains reports whether some stored (s', S') has s <= s' and cmp(S, S').
func (a *Antichain2Cv2[V]) Contains(s int, bigger V) bool {
	for sp, pairs := range a.buckets {
		if !a.r.LessEq(s, sp) {
			continue
		}
		for _, p := range pairs {
			if a.cmp(bigger, p.Bigger) {
				return true
			}
		}
	}
	return false
}

// Refine removes every stored (s', S') dominated by (s, bigger), i.e. with
// s' <= s and cmp(S', S).
func (a *Antichain2Cv2[V]) Refine(s int, bigger V) {
	for sp, pairs := range a.buckets {
		if !a.r.LessEq(sp, s) {
			continue
		}
		kept := pairs[:0:0]
		for _, p := range pairs {
			if a.cmp(p.Bigger, bigger) {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == 0 {
			delete(a.buckets, sp)
		} else {
			a.buckets[sp] = kept
		}
	}
}

// Insert appends (s, bigger), without refinement (callers that want a
// minimal antichain call Refine first, as the downward/upward checkers
// do before inserting a newly-discharged obligation).
func (a *Antichain2Cv2[V]) Insert(s int, bigger V) {
	a.buckets[s] = append(a.buckets[s], Pair2C[V]{Smaller: s, Bigger: bigger})
}

// All returns every stored pair, for iteration and tests.
func (a *Antichain2Cv2[V]) All() []Pair2C[V] {
	var out []Pair2C[V]
	for _, pairs := range a.buckets {
		out = append(out, pairs...)
	}
	return out
}

// Len returns the total number of stored pairs.
func (a *Antichain2Cv2[V]) Len() int {
	n := 0
	for _, pairs := range a.buckets {
		n += len(pairs)
	}
	return n
}
