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

// Package plan decides whether a located qualifier violates the alignment
// policy and, if so, produces the minimal edit plan moving it to the
// canonical position.
//
// All edit offsets address the pre-edit source snapshot; a plan is applied
// as a single atomic rewrite. Insertions are ordered before removals so the
// removal never invalidates the insertion anchor.
package plan

import (
	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/srctext"
)

// Message is the diagnostic text attached to every finding of this check.
const Message = "wrong order of qualifiers"

// Edit is one primitive rewrite. Implementations are [InsertText] and
// [RemoveRange].
type Edit interface {
	editOp()
}

// InsertText inserts text at an offset of the pre-edit snapshot.
type InsertText struct {
	At   int
	Text string
}

func (InsertText) editOp() {}

// RemoveRange removes a half-open byte range of the pre-edit snapshot.
type RemoveRange struct {
	Span srctext.Span
}

func (RemoveRange) editOp() {}

// Plan is the ordered edit list for one finding, together with the
// human-readable message and its anchor offset.
type Plan struct {
	Anchor  int
	Message string
	Edits   []Edit
}

// Build compares the located qualifier span against the canonical position
// for the alignment policy. It returns the move plan and true when the
// placement violates the policy, and a zero [Plan] and false otherwise.
//
// The qualifier span is the located token extended past trailing whitespace
// and comments; its text is copied verbatim to the insertion point, so a
// trailing comment moves with the qualifier instead of being duplicated.
func Build(b *srctext.Buffer, align config.Alignment, declStart int, after srctext.Span, qual srctext.Span) (Plan, bool) {
	if !qual.Valid() || qual.Empty() || qual.End > b.Len() {
		return Plan{}, false
	}

	var target int

	switch align {
	case config.AlignLeft:
		target = declStart
		if qual.Start <= target {
			return Plan{}, false // already canonical
		}

	case config.AlignRight:
		target = b.SkipSpaces(after.Start)
		if qual.Start >= target {
			return Plan{}, false
		}

	default:
		return Plan{}, false
	}

	if target < 0 || target > b.Len() || qual.Contains(target) {
		return Plan{}, false
	}

	text := b.Text(qual)
	if text == "" {
		return Plan{}, false
	}

	var edits []Edit

	if align == config.AlignRight && target > 0 && !b.SpaceAt(target-1) {
		edits = append(edits, InsertText{At: target, Text: " "})
	}

	edits = append(edits, InsertText{At: target, Text: text})

	if align == config.AlignLeft && !b.SpaceAt(qual.End-1) {
		edits = append(edits, InsertText{At: target, Text: " "})
	}

	edits = append(edits, RemoveRange{Span: qual})

	return Plan{Anchor: declStart, Message: Message, Edits: edits}, true
}
