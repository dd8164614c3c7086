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

package vatadbg

import "testing"

func TestVerboseToggle(t *testing.T) {
	SetVerbose(false)
	if Verbose() {
		t.Fatalf("Verbose() = true after SetVerbose(false)")
	}
	SetVerbose(true)
	if !Verbose() {
		t.Fatalf("Verbose() = false after SetVerbose(true)")
	}
	SetVerbose(false)
}

func TestIndentDedentRoundTrip(t *testing.T) {
	SetVerbose(true)
	defer SetVerbose(false)

	ResetIndent()
	if globalIndent != "" {
		t.Fatalf("globalIndent = %q after ResetIndent, want empty", globalIndent)
	}
	Indent()
	Indent()
	if globalIndent != ". . " {
		t.Fatalf("globalIndent = %q after two Indent calls, want \". . \"", globalIndent)
	}
	Dedent()
	if globalIndent != ". " {
		t.Fatalf("globalIndent = %q after Dedent, want \". \"", globalIndent)
	}
	ResetIndent()
}

func TestSprintRendersValue(t *testing.T) {
	out := Sprint(map[string]int{"a": 1})
	if out == "" {
		t.Fatalf("Sprint returned empty string")
	}
}
