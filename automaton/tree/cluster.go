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

// tupleSet is the copy-on-write set of tuple handles a cluster keeps for
// one symbol.
type tupleSet struct {
	tuples map[*Tuple]bool
	refs   int
}

func newTupleSet() *tupleSet {
	return &tupleSet{tuples: make(map[*Tuple]bool), refs: 1}
}

// clone returns a copy of ts with its own map, bumping the reference count
// of every tuple it still points to (the clone is a new owner of each
// edge), and refs reset to 1 (the caller is its sole owner so far).
func (ts *tupleSet) clone(cache *TupleCache) *tupleSet {
	out := &tupleSet{tuples: make(map[*Tuple]bool, len(ts.tuples)), refs: 1}
	for t := range ts.tuples {
		out.tuples[t] = true
		cache.Ref(t)
	}
	return out
}

// release drops one reference to ts; at zero, every tuple it held is
// released in turn.
func (ts *tupleSet) release(cache *TupleCache) {
	ts.refs--
	if ts.refs > 0 {
		return
	}
	for t := range ts.tuples {
		cache.Release(t)
	}
}

// Cluster is the copy-on-write symbol -> {tuple} map of one state's
// outgoing transitions.
type Cluster struct {
	symbols map[alphabet.Symbol]*tupleSet
	refs    int
}

func newCluster() *Cluster {
	return &Cluster{symbols: make(map[alphabet.Symbol]*tupleSet), refs: 1}
}

// clone returns a copy of c, bumping the reference count of every tuple set
// it still points to and resetting refs to 1.
func (c *Cluster) clone(cache *TupleCache) *Cluster {
	out := &Cluster{symbols: make(map[alphabet.Symbol]*tupleSet, len(c.symbols)), refs: 1}
	for sym, ts := range c.symbols {
		ts.refs++
		out.symbols[sym] = ts
	}
	return out
}

// release drops one reference to c; at zero, every tuple set it held is
// released in turn.
func (c *Cluster) release(cache *TupleCache) {
	c.refs--
	if c.refs > 0 {
		return
	}
	for _, ts := range c.symbols {
		ts.release(cache)
	}
}

// Tuples returns the child tuples c holds for symbol sym.
func (c *Cluster) Tuples(sym alphabet.Symbol) []*Tuple {
	ts, ok := c.symbols[sym]
	if !ok {
		return nil
	}
	out := make([]*Tuple, 0, len(ts.tuples))
	for t := range ts.tuples {
		out = append(out, t)
	}
	return out
}

// Symbols returns every symbol with at least one transition in c.
func (c *Cluster) Symbols() []alphabet.Symbol {
	out := make([]alphabet.Symbol, 0, len(c.symbols))
	for sym := range c.symbols {
		out = append(out, sym)
	}
	return out
}
