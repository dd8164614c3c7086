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

import (
	"testing"

	"github.com/vata-go/vata/preorder"
)

func TestAntichain1CRefinement(t *testing.T) {
	// 0 <= 1 <= 2
	r := preorder.New(3, func(p, q int) bool {
		return (p == 0 && q == 1) || (p == 1 && q == 2) || (p == 0 && q == 2)
	})
	a := New1C(r)
	a.Insert(1)
	if !a.Contains(2) {
		t.Error("Contains(2) should hold: 1 <= 2 and 1 is stored")
	}
	a.Insert(2) // dominates nothing new, but should not duplicate
	if got, want := a.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	a.Insert(0) // 0 <= 1 and 0 <= 2, so inserting 0 refines both away
	if got, want := a.Len(), 1; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestAntichain2Cv2Subsumption(t *testing.T) {
	r := preorder.Identity(3)
	cmp := func(sub, super []int) bool {
		subM := map[int]bool{}
		for _, s := range sub {
			subM[s] = true
		}
		for _, s := range super {
			delete(subM, s)
		}
		return len(subM) == 0
	}
	a := New2C(r, cmp)
	a.Insert(0, []int{1, 2})

	if !a.Contains(0, []int{1}) {
		t.Error("Contains(0, {1}) should hold: {1} subset of {1,2}")
	}
	if a.Contains(0, []int{1, 2, 3}) {
		t.Error("Contains(0, {1,2,3}) should not hold: not subsumed by {1,2}")
	}
}

func TestOrderedAntichain2CPopOrder(t *testing.T) {
	r := preorder.Identity(5)
	cmp := func(sub, super []int) bool { return false } // never subsumed, keep it simple
	sizeOf := func(v []int) int { return len(v) }

	oa := NewOrdered2C(r, cmp, sizeOf)
	oa.Insert(3, []int{1, 2, 3})
	oa.Insert(1, []int{1})
	oa.Insert(2, []int{1, 2})

	p, ok := oa.Get()
	if !ok || p.Smaller != 1 {
		t.Fatalf("first pop should be the smallest bigger-set (state 1), got %+v", p)
	}
	p, ok = oa.Get()
	if !ok || p.Smaller != 2 {
		t.Fatalf("second pop should be state 2, got %+v", p)
	}
	p, ok = oa.Get()
	if !ok || p.Smaller != 3 {
		t.Fatalf("third pop should be state 3, got %+v", p)
	}
	if _, ok := oa.Get(); ok {
		t.Fatal("queue should be empty")
	}
}

func TestCachedBinaryOpInvalidation(t *testing.T) {
	calls := 0
	op := NewCachedBinaryOp(func(a, b int) int {
		calls++
		return a + b
	})
	if got := op.Call(1, 2); got != 3 {
		t.Fatalf("Call(1,2) = %d, want 3", got)
	}
	op.Call(1, 2)
	if calls != 1 {
		t.Fatalf("expected memoized second call, got %d underlying calls", calls)
	}
	op.InvalidateFirst(1)
	op.Call(1, 2)
	if calls != 2 {
		t.Fatalf("expected recompute after InvalidateFirst, got %d calls", calls)
	}
}
