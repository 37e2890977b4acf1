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

// Package config holds the configuration surface of the qualorder check: the
// alignment policy, the tracked qualifier and behavioral flags.
package config

// Flags represents behavioral options of a qualorder run.
type Flags uint8

const (
	// ApplyFixes rewrites checked files in place instead of only reporting
	// findings.
	ApplyFixes Flags = 1 << iota

	// ShowSource prints the offending source line under each finding.
	ShowSource

	// Quiet suppresses the per-run summary line.
	Quiet
)

// Behavior is the set of enabled behavioral [Flags].
type Behavior = BitMask[Flags]

// DefaultBehavior returns the behavior of a plain reporting run.
func DefaultBehavior() Behavior {
	return NewBitMask(ShowSource)
}
