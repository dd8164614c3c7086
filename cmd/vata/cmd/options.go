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
	"strings"

	"github.com/spf13/viper"
)

// algOptions parses the "-o k=v,k=v" flag (spec.md §6) into a lookup
// map; unset keys read back as the caller-supplied default through get.
type algOptions map[string]string

func parseAlgOptions() algOptions {
	out := make(algOptions)
	raw := viper.GetString("options")
	if raw == "" {
		return out
	}
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		out[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return out
}

func (o algOptions) get(key, dflt string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return dflt
}

func (o algOptions) yes(key string) bool {
	return o.get(key, "no") == "yes"
}
