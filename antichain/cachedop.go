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

// CachedBinaryOp memoizes a binary function f(a, b) keyed by (a, b), and
// supports purging all entries that mention a given first or second
// argument — the "lte_cache" / cached f(q, S) shape of spec.md §4.4, §5,
// for avoiding repeated set-subsumption computation and invalidating when
// the backing set identity is dropped. The inclusion checkers in this
// module do not use it; incl/down memoizes with its own map.
type CachedBinaryOp[A, B comparable, R any] struct {
	f      func(a A, b B) R
	memo   map[pairKey[A, B]]R
	byA    map[A][]pairKey[A, B]
	byB    map[B][]pairKey[A, B]
}

type pairKey[A, B comparable] struct {
	a A
	b B
}

// NewCachedBinaryOp wraps f with memoization.
func NewCachedBinaryOp[A, B comparable, R any](f func(a A, b B) R) *CachedBinaryOp[A, B, R] {
	return &CachedBinaryOp[A, B, R]{
		f:    f,
		memo: make(map[pairKey[A, B]]R),
		byA:  make(map[A][]pairKey[A, B]),
		byB:  make(map[B][]pairKey[A, B]),
	}
}

// Call returns f(a, b), computing and caching it on first use.
func (c *CachedBinaryOp[A, B, R]) Call(a A, b B) R {
	k := pairKey[A, B]{a, b}
	if r, ok := c.memo[k]; ok {
		return r
	}
	r := c.f(a, b)
	c.memo[k] = r
	c.byA[a] = append(c.byA[a], k)
	c.byB[b] = append(c.byB[b], k)
	return r
}

// InvalidateFirst purges every cached entry whose first argument is a.
func (c *CachedBinaryOp[A, B, R]) InvalidateFirst(a A) {
	for _, k := range c.byA[a] {
		delete(c.memo, k)
		c.removeFromB(k)
	}
	delete(c.byA, a)
}

// InvalidateSecond purges every cached entry whose second argument is b.
func (c *CachedBinaryOp[A, B, R]) InvalidateSecond(b B) {
	for _, k := range c.byB[b] {
		delete(c.memo, k)
		c.removeFromA(k)
	}
	delete(c.byB, b)
}

func (c *CachedBinaryOp[A, B, R]) removeFromB(k pairKey[A, B]) {
	lst := c.byB[k.b]
	for i, kk := range lst {
		if kk == k {
			c.byB[k.b] = append(lst[:i], lst[i+1:]...)
			break
		}
	}
}

func (c *CachedBinaryOp[A, B, R]) removeFromA(k pairKey[A, B]) {
	lst := c.byA[k.a]
	for i, kk := range lst {
		if kk == k {
			c.byA[k.a] = append(lst[:i], lst[i+1:]...)
			break
		}
	}
}

// Len returns the number of currently memoized entries.
func (c *CachedBinaryOp[A, B, R]) Len() int {
	return len(c.memo)
}
