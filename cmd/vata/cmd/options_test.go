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

package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestParseAlgOptions(t *testing.T) {
	tests := []struct {
		desc string
		raw  string
		want algOptions
	}{{
		desc: "empty",
		raw:  "",
		want: algOptions{},
	}, {
		desc: "single pair",
		raw:  "alg=congr",
		want: algOptions{"alg": "congr"},
	}, {
		desc: "multiple pairs with spacing",
		raw:  "dir=up, sim=no , order=depth",
		want: algOptions{"dir": "up", "sim": "no", "order": "depth"},
	}, {
		desc: "malformed pair is skipped",
		raw:  "alg=congr,justakey,dir=down",
		want: algOptions{"alg": "congr", "dir": "down"},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			viper.Reset()
			viper.Set("options", tt.raw)
			got := parseAlgOptions()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseAlgOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlgOptionsGetAndYes(t *testing.T) {
	o := algOptions{"sim": "yes", "dir": "up"}
	if got := o.get("dir", "down"); got != "up" {
		t.Errorf("get(dir) = %q, want up", got)
	}
	if got := o.get("order", "breadth"); got != "breadth" {
		t.Errorf("get(order) = %q, want default breadth", got)
	}
	if !o.yes("sim") {
		t.Errorf("yes(sim) = false, want true")
	}
	if o.yes("dir") {
		t.Errorf("yes(dir) = true, want false (value is \"up\", not \"yes\")")
	}
}

func TestPruneFlagsUselessImpliesUnreachable(t *testing.T) {
	viper.Reset()
	viper.Set("prune-useless", true)
	unreachable, useless := pruneFlags()
	if !unreachable || !useless {
		t.Errorf("pruneFlags() = (%v, %v), want (true, true)", unreachable, useless)
	}
}

func TestPruneFlagsUnreachableOnly(t *testing.T) {
	viper.Reset()
	viper.Set("prune-unreachable", true)
	unreachable, useless := pruneFlags()
	if !unreachable || useless {
		t.Errorf("pruneFlags() = (%v, %v), want (true, false)", unreachable, useless)
	}
}
