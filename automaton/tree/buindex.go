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

package tree

import "github.com/vata-go/vata/alphabet"

// PositionIndexEntry is one (symbol, position, full tuple, parent) record
// of the per-state x per-position bottom-up index.
type PositionIndexEntry struct {
	Symbol   alphabet.Symbol
	Position int
	Children []int
	Parent   int
}

// BUIndex is the derived bottom-up index of spec.md §4.3: the set of
// ground ("leaf") transitions, plus a state -> symbol -> position -> [
// transitions containing that state at that child position ] index used by
// the upward inclusion checker (C7) to enumerate, for a candidate state,
// every transition it could participate in as the i-th child.
type BUIndex struct {
	Leaves map[alphabet.Symbol][]Transition
	// byStatePosition[state][symbol][position] is every transition whose
	// i-th child (i == position) is state.
	byStatePosition map[int]map[alphabet.Symbol]map[int][]PositionIndexEntry
}

// BuildBUIndex walks every transition in a once and builds its BUIndex.
func BuildBUIndex(a *Automaton) *BUIndex {
	idx := &BUIndex{
		Leaves:          make(map[alphabet.Symbol][]Transition),
		byStatePosition: make(map[int]map[alphabet.Symbol]map[int][]PositionIndexEntry),
	}
	for _, tr := range a.AllTransitions() {
		if len(tr.Children) == 0 {
			idx.Leaves[tr.Symbol] = append(idx.Leaves[tr.Symbol], tr)
			continue
		}
		for pos, child := range tr.Children {
			bySym, ok := idx.byStatePosition[child]
			if !ok {
				bySym = make(map[alphabet.Symbol]map[int][]PositionIndexEntry)
				idx.byStatePosition[child] = bySym
			}
			byPos, ok := bySym[tr.Symbol]
			if !ok {
				byPos = make(map[int][]PositionIndexEntry)
				bySym[tr.Symbol] = byPos
			}
			byPos[pos] = append(byPos[pos], PositionIndexEntry{
				Symbol:   tr.Symbol,
				Position: pos,
				Children: tr.Children,
				Parent:   tr.Parent,
			})
		}
	}
	return idx
}

// AtPosition returns every transition in which state occupies position
// under symbol.
func (idx *BUIndex) AtPosition(state int, symbol alphabet.Symbol, position int) []PositionIndexEntry {
	bySym, ok := idx.byStatePosition[state]
	if !ok {
		return nil
	}
	byPos, ok := bySym[symbol]
	if !ok {
		return nil
	}
	return byPos[position]
}
