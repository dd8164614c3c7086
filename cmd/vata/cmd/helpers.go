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
	"github.com/spf13/viper"

	"github.com/vata-go/vata/vataerr"
)

func unimplementedRep(rep string) error {
	return vataerr.Unimplementedf("representation %q is not implemented; only expl and expl_fa are", rep)
}

func malformedRep(rep string) error {
	return vataerr.MalformedInputf("unknown representation %q", rep)
}

// checkTimbukOnly enforces spec.md §6's "-I/-O/-F ... timbuk only": any
// explicitly chosen format other than "timbuk" is a precondition
// violation, since no other parser/serializer is wired in.
func checkTimbukOnly() error {
	for _, flag := range []string{"informat", "outformat", "format"} {
		v := viper.GetString(flag)
		if v != "" && v != "timbuk" {
			return vataerr.Preconditionf("format %q is not supported, only timbuk is", v)
		}
	}
	return nil
}
