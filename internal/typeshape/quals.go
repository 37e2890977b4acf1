// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package typeshape

import "strings"

// Qualifier is a single type qualifier keyword.
type Qualifier uint8

const (
	// Const is the `const` qualifier.
	Const Qualifier = 1 << iota

	// Volatile is the `volatile` qualifier.
	Volatile

	// Restrict is the `restrict` qualifier.
	Restrict
)

// Spelling returns the qualifier keyword as written in source.
func (q Qualifier) Spelling() string {
	switch q {
	case Const:
		return "const"
	case Volatile:
		return "volatile"
	case Restrict:
		return "restrict"
	default:
		return ""
	}
}

// ParseQualifier maps a keyword spelling to its [Qualifier].
func ParseQualifier(s string) (Qualifier, bool) {
	switch s {
	case "const":
		return Const, true
	case "volatile":
		return Volatile, true
	case "restrict":
		return Restrict, true
	default:
		return 0, false
	}
}

// Quals is a set of qualifiers attached to a type.
type Quals uint8

// Has reports whether the set contains the qualifier.
func (s Quals) Has(q Qualifier) bool { return s&Quals(q) != 0 }

// Add returns the set extended by the qualifier.
func (s Quals) Add(q Qualifier) Quals { return s | Quals(q) }

// canonicalQuals re-derives the qualifier set from a canonical type spelling.
// Canonical spellings print qualifiers first, in the fixed order
// const, volatile, restrict, so only the leading words need inspection.
func canonicalQuals(canonical string) Quals {
	var quals Quals

	words := strings.Fields(canonical)

	i := 0
	for _, q := range [...]Qualifier{Const, Volatile, Restrict} {
		if i < len(words) && words[i] == q.Spelling() {
			quals = quals.Add(q)
			i++
		}
	}

	return quals
}
