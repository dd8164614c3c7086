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

import "testing"

// buildFromAssignments builds the (unreduced-input) MTBDD over nVars
// Boolean variables mapping each full assignment to f(assignment), used by
// tests to exercise Apply2 the way the "square of BDD" scenario from
// spec.md §8 exercises it.
func buildFromAssignments(t *testing.T, p *Package[int], nVars int, f func(assign []bool) int) *Node[int] {
	t.Helper()
	var build func(assign []bool, v int) *Node[int]
	build = func(assign []bool, v int) *Node[int] {
		if v == nVars {
			return p.Leaf(f(append([]bool(nil), assign...)))
		}
		low := build(append(assign, false), v+1)
		high := build(append(assign, true), v+1)
		n, err := p.Internal(low, high, v)
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	return build(nil, 0)
}

func allAssignments(n int) [][]bool {
	if n == 0 {
		return [][]bool{{}}
	}
	var out [][]bool
	for _, a := range allAssignments(n - 1) {
		out = append(out, append(append([]bool(nil), a...), false))
		out = append(out, append(append([]bool(nil), a...), true))
	}
	return out
}

func TestApply2Square(t *testing.T) {
	// Leaves 0,3,4,9,14,15 at assignments over 4 variables; squaring each
	// leaf must give 0,9,16,81,196,225 at the same assignments, per
	// spec.md §8 scenario 6.
	leafOf := map[string]int{
		"0000": 0, "0001": 3, "0010": 4, "0011": 9,
		"0100": 14, "0101": 15, "0110": 0, "0111": 3,
		"1000": 4, "1001": 9, "1010": 14, "1011": 15,
		"1100": 0, "1101": 3, "1110": 4, "1111": 9,
	}
	key := func(assign []bool) string {
		s := ""
		for _, b := range assign {
			if b {
				s += "1"
			} else {
				s += "0"
			}
		}
		return s
	}

	p := NewPackage[int]()
	root := buildFromAssignments(t, p, 4, func(a []bool) int { return leafOf[key(a)] })

	squared := Apply2(p, root, root, func(x, y int) int { return x * y })

	for _, a := range allAssignments(4) {
		want := leafOf[key(a)] * leafOf[key(a)]
		if got := ValueAt(squared, a); got != want {
			t.Errorf("ValueAt(squared, %v) = %d, want %d", a, got, want)
		}
	}
}

func TestApply2Memoizes(t *testing.T) {
	p := NewPackage[int]()
	root := buildFromAssignments(t, p, 3, func(a []bool) int {
		n := 0
		for _, b := range a {
			if b {
				n++
			}
		}
		return n
	})

	calls := 0
	countOp := func(x, y int) int {
		calls++
		return x + y
	}
	sum := Apply2(p, root, root, countOp)

	for _, a := range allAssignments(3) {
		want := 2 * ValueAt(root, a)
		if got := ValueAt(sum, a); got != want {
			t.Errorf("ValueAt(sum, %v) = %d, want %d", a, got, want)
		}
	}
	// Structural sharing in root (e.g. leaves with equal counts) means
	// there are fewer distinct node pairs than raw leaves.
	if calls > 8 {
		t.Errorf("Apply2 invoked op %d times over 3 boolean vars; memoization should keep this well under 2^3", calls)
	}
}

func TestApply1Negate(t *testing.T) {
	p := NewPackage[int]()
	root := buildFromAssignments(t, p, 2, func(a []bool) int {
		n := 0
		for _, b := range a {
			if b {
				n++
			}
		}
		return n
	})
	neg := Apply1(p, root, func(x int) int { return -x })
	for _, a := range allAssignments(2) {
		if got, want := ValueAt(neg, a), -ValueAt(root, a); got != want {
			t.Errorf("ValueAt(neg, %v) = %d, want %d", a, got, want)
		}
	}
}

func TestApply3(t *testing.T) {
	p := NewPackage[int]()
	a := buildFromAssignments(t, p, 2, func(a []bool) int {
		if a[0] {
			return 1
		}
		return 0
	})
	b := buildFromAssignments(t, p, 2, func(a []bool) int {
		if a[1] {
			return 10
		}
		return 0
	})
	c := p.Leaf(100)

	out := Apply3(p, a, b, c, func(x, y, z int) int { return x + y + z })
	for _, assign := range allAssignments(2) {
		want := ValueAt(a, assign) + ValueAt(b, assign) + 100
		if got := ValueAt(out, assign); got != want {
			t.Errorf("ValueAt(out, %v) = %d, want %d", assign, got, want)
		}
	}
}

func TestApply2RespectsExplicitOrder(t *testing.T) {
	// Variables 5 and 1 are ordered topmost-first as [5, 1] — the reverse
	// of their raw numeric order. If Apply2 picked the branch variable by
	// bare int comparison (assuming NaturalOrder) it would choose variable
	// 1 first even though neither operand has variable 1 at the top,
	// corrupting every subsequent branch() pairing.
	order := NewExplicitOrder([]int{5, 1})
	p := NewPackageWithOrder[int](order)

	build := func(leaves [4]int) *Node[int] {
		mk := func(v5 bool, lo, hi int) *Node[int] {
			n, err := p.Internal(p.Leaf(lo), p.Leaf(hi), 1)
			if err != nil {
				t.Fatalf("building variable-1 node: %v", err)
			}
			return n
		}
		low := mk(false, leaves[0], leaves[1])
		high := mk(true, leaves[2], leaves[3])
		root, err := p.Internal(low, high, 5)
		if err != nil {
			t.Fatalf("building variable-5 root: %v", err)
		}
		return root
	}

	a := build([4]int{0, 1, 2, 3})
	b := build([4]int{10, 20, 30, 40})
	sum := Apply2(p, a, b, func(x, y int) int { return x + y })

	assignment := make([]bool, 6)
	for _, v5 := range []bool{false, true} {
		for _, v1 := range []bool{false, true} {
			assignment[5], assignment[1] = v5, v1
			wantA, wantB := ValueAt(a, assignment), ValueAt(b, assignment)
			if got, want := ValueAt(sum, assignment), wantA+wantB; got != want {
				t.Errorf("ValueAt(sum, v5=%v v1=%v) = %d, want %d (a=%d, b=%d)", v5, v1, got, want, wantA, wantB)
			}
		}
	}
}

type collectVoidOp struct {
	seen  []int
	limit int
}

func (c *collectVoidOp) Visit(a int) { c.seen = append(c.seen, a) }
func (c *collectVoidOp) StopProcessing() bool {
	return c.limit > 0 && len(c.seen) >= c.limit
}

func TestApply1VoidEarlyTermination(t *testing.T) {
	p := NewPackage[int]()
	root := buildFromAssignments(t, p, 3, func(a []bool) int {
		n := 0
		for _, b := range a {
			if b {
				n++
			}
		}
		return n
	})
	op := &collectVoidOp{limit: 1}
	Apply1Void(root, op)
	if len(op.seen) != 1 {
		t.Fatalf("expected traversal to stop after 1 leaf, visited %d", len(op.seen))
	}
}
