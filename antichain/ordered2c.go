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

// OrderedAntichain2C wraps Antichain2Cv2 with a deterministic pop order:
// by bigger-set size ascending, then by smaller state ascending, then by
// insertion order — matching spec.md §3's "ordered by bigger-set size,
// then smaller state, then bigger-set identity".
type OrderedAntichain2C[V any] struct {
	inner   *Antichain2Cv2[V]
	sizeOf  func(V) int
	pending []orderedEntry[V]
	seq     int
}

type orderedEntry[V any] struct {
	pair Pair2C[V]
	size int
	seq  int
}

// NewOrdered2C returns an empty OrderedAntichain2C. sizeOf measures the
// bigger-set's size for ordering purposes.
func NewOrdered2C[V any](r *preorder.Relation, cmp CompareV[V], sizeOf func(V) int) *OrderedAntichain2C[V] {
	return &OrderedAntichain2C[V]{
		inner:  New2C(r, cmp),
		sizeOf: sizeOf,
	}
}

// Contains delegates to the wrapped Antichain2Cv2.
func (o *OrderedAntichain2C[V]) Contains(s int, bigger V) bool {
	return o.inner.Contains(s, bigger)
}

// Refine delegates to the wrapped Antichain2Cv2 and drops any pending
// entries it dominates.
func (o *OrderedAntichain2C[V]) Refine(s int, bigger V) {
	o.inner.Refine(s, bigger)
	kept := o.pending[:0:0]
	for _, e := range o.pending {
		if o.inner.r.LessEq(e.pair.Smaller, s) && o.inner.cmp(e.pair.Bigger, bigger) {
			continue
		}
		kept = append(kept, e)
	}
	o.pending = kept
}

// Insert adds (s, bigger) to both the backing antichain and the pending
// pop-order queue.
func (o *OrderedAntichain2C[V]) Insert(s int, bigger V) {
	o.inner.Insert(s, bigger)
	o.pending = append(o.pending, orderedEntry[V]{
		pair: Pair2C[V]{Smaller: s, Bigger: bigger},
		size: o.sizeOf(bigger),
		seq:  o.seq,
	})
	o.seq++
}

// Get pops and returns the minimum pending obligation under the order
// documented on OrderedAntichain2C, or ok=false if empty.
func (o *OrderedAntichain2C[V]) Get() (pair Pair2C[V], ok bool) {
	if len(o.pending) == 0 {
		return Pair2C[V]{}, false
	}
	minIdx := 0
	for i := 1; i < len(o.pending); i++ {
		if less(o.pending[i], o.pending[minIdx]) {
			minIdx = i
		}
	}
	e := o.pending[minIdx]
	o.pending = append(o.pending[:minIdx], o.pending[minIdx+1:]...)
	return e.pair, true
}

func less[V any](a, b orderedEntry[V]) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	if a.pair.Smaller != b.pair.Smaller {
		return a.pair.Smaller < b.pair.Smaller
	}
	return a.seq < b.seq
}

// Len returns the number of pending (not yet Get) obligations.
func (o *OrderedAntichain2C[V]) Len() int {
	return len(o.pending)
}
