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

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Alignment selects the canonical qualifier position relative to the type.
type Alignment uint8

//go:generate go tool stringer -type Alignment -linecomment
const (
	// AlignNone disables the check; no findings are ever produced.
	AlignNone Alignment = iota // none

	// AlignLeft canonicalizes the qualifier before the type.
	AlignLeft // left

	// AlignRight canonicalizes the qualifier after the type.
	AlignRight // right
)

// ErrUnknownAlignment is returned when parsing an unrecognized alignment name.
var ErrUnknownAlignment = errors.New("unknown alignment")

// ParseAlignment maps a case-insensitive policy name to its [Alignment].
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignNone, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (i Alignment) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Alignment) UnmarshalText(text []byte) error {
	a, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}

	*i = a

	return nil
}

// Set implements [flag.Value].
func (i *Alignment) Set(s string) error { return i.UnmarshalText([]byte(s)) }
