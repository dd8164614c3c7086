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

// Package vatadbg implements the package-global verbose/trace toggle that
// the CLI's -v flag sets and incl.Check's trace line reads, an
// indentation-aware Print, and a pretty-dump helper (Sprint).
package vatadbg

import (
	"fmt"
	"strings"

	"github.com/kylelemons/godebug/pretty"
)

var (
	// verbose controls Print output. Since this flips a package-global
	// variable it MUST NOT be relied upon in a setting requiring
	// thread-safety; the core is single-threaded (spec.md §5).
	verbose = false

	// maxCharsPerLine truncates Print output; Sprint is not truncated.
	maxCharsPerLine = 2000

	globalIndent = ""
)

// SetVerbose flips the package-global verbosity toggle. The CLI's -v flag
// calls this once at startup.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports the current verbosity toggle.
func Verbose() bool {
	return verbose
}

// Print prints v, formatted as with fmt.Sprintf, if verbose tracing is on.
func Print(format string, args ...interface{}) {
	if !verbose {
		return
	}
	out := fmt.Sprintf(format, args...)
	if len(out) > maxCharsPerLine {
		out = out[:maxCharsPerLine]
	}
	fmt.Println(globalIndent + out)
}

// Indent increases the Print indentation level.
func Indent() {
	if !verbose {
		return
	}
	globalIndent += ". "
}

// Dedent decreases the Print indentation level.
func Dedent() {
	if !verbose {
		return
	}
	globalIndent = strings.TrimPrefix(globalIndent, ". ")
}

// ResetIndent zeroes the Print indentation level.
func ResetIndent() {
	globalIndent = ""
}

// Sprint renders v using godebug/pretty, the way util.DbgPrint callers in
// the teacher render schema/data trees for diagnostics.
func Sprint(v interface{}) string {
	return pretty.Sprint(v)
}
