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

// Command vata is the CLI driver spec.md §6 describes: a verb dispatcher
// over the tree/finite automaton core, kept out of the core packages
// themselves per spec.md §1's external-collaborator scoping.
package main

import "github.com/vata-go/vata/cmd/vata/cmd"

func main() {
	cmd.Execute()
}
