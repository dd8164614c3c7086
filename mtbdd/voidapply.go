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

package mtbdd

// VoidOp1 is a unary void Apply functor: it accumulates a side effect per
// leaf and may request early termination of the whole traversal.
type VoidOp1[D comparable] interface {
	Visit(a D)
	StopProcessing() bool
}

// VoidOp2 is the binary counterpart of VoidOp1.
type VoidOp2[D comparable] interface {
	Visit(a, b D)
	StopProcessing() bool
}

// Apply1Void traverses a, invoking op at every reached leaf, stopping as
// soon as op reports StopProcessing. Unlike Apply1 it builds no result
// MTBDD; it exists for functors that only accumulate side effects (e.g.
// collecting the set of reachable states).
func Apply1Void[D comparable](a *Node[D], op VoidOp1[D]) {
	visited := make(map[*Node[D]]bool)
	var rec func(n *Node[D])
	rec = func(n *Node[D]) {
		if op.StopProcessing() || visited[n] {
			return
		}
		visited[n] = true
		if n.leaf {
			op.Visit(n.value)
			return
		}
		rec(n.low)
		rec(n.high)
	}
	rec(a)
}

// Apply2Void is the binary counterpart of Apply1Void, descending a and b in
// lockstep exactly as Apply2 does, picking the next branch variable by
// order rather than assuming a and b were built under NaturalOrder.
func Apply2Void[D comparable](order VarOrder, a, b *Node[D], op VoidOp2[D]) {
	type key struct{ a, b *Node[D] }
	visited := make(map[key]bool)
	var rec func(a, b *Node[D])
	rec = func(a, b *Node[D]) {
		if op.StopProcessing() {
			return
		}
		k := key{a, b}
		if visited[k] {
			return
		}
		visited[k] = true
		if a.leaf && b.leaf {
			op.Visit(a.value, b.value)
			return
		}
		v := minVar2(order, a, b)
		aLow, aHigh := branch(a, v)
		bLow, bHigh := branch(b, v)
		rec(aLow, bLow)
		if op.StopProcessing() {
			return
		}
		rec(aHigh, bHigh)
	}
	rec(a, b)
}
