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

package plan

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

// ErrEditBounds is returned when an edit addresses bytes outside the snapshot.
var ErrEditBounds = errors.New("edit out of bounds")

// ErrEditOverlap is returned when edits of an applied set overlap.
var ErrEditOverlap = errors.New("overlapping edits")

// Apply rewrites the snapshot with the given edits as one atomic rewrite.
// All offsets address the pre-edit snapshot. Insertions at the same offset
// keep their relative order; an insertion strictly inside a removed range or
// two overlapping removals fail with [ErrEditOverlap].
func Apply(src string, edits []Edit) (string, error) {
	var (
		inserts  []InsertText
		removals []RemoveRange
	)

	for _, e := range edits {
		switch e := e.(type) {
		case InsertText:
			if e.At < 0 || e.At > len(src) {
				return "", ErrEditBounds
			}

			inserts = append(inserts, e)

		case RemoveRange:
			if !e.Span.Valid() || e.Span.End > len(src) {
				return "", ErrEditBounds
			}

			removals = append(removals, e)
		}
	}

	slices.SortStableFunc(inserts, func(a, b InsertText) int { return cmp.Compare(a.At, b.At) })
	slices.SortFunc(removals, func(a, b RemoveRange) int { return cmp.Compare(a.Span.Start, b.Span.Start) })

	for i := 1; i < len(removals); i++ {
		if removals[i].Span.Start < removals[i-1].Span.End {
			return "", ErrEditOverlap
		}
	}

	for _, in := range inserts {
		for _, r := range removals {
			if in.At > r.Span.Start && in.At < r.Span.End {
				return "", ErrEditOverlap
			}
		}
	}

	var sb strings.Builder

	off, next := 0, 0

	emit := func(upto int) {
		for next < len(inserts) && inserts[next].At <= upto {
			sb.WriteString(src[off:inserts[next].At]) // ignore error
			off = inserts[next].At
			sb.WriteString(inserts[next].Text) // ignore error
			next++
		}

		sb.WriteString(src[off:upto]) // ignore error
		off = upto
	}

	for _, r := range removals {
		emit(r.Span.Start)
		off = r.Span.End
	}

	emit(len(src))

	return sb.String(), nil
}

// ApplyAll rewrites the snapshot with every given plan at once, skipping
// plans whose edits conflict with an earlier plan in the list.
// It returns the rewritten text and the number of plans applied.
func ApplyAll(src string, plans []Plan) (string, int) {
	var (
		edits   []Edit
		applied int
	)

	for _, p := range plans {
		candidate := append(slices.Clip(edits), p.Edits...)
		if _, err := Apply(src, candidate); err != nil {
			continue // conflicting fix, keep the earlier one
		}

		edits = candidate
		applied++
	}

	out, err := Apply(src, edits)
	if err != nil {
		return src, 0
	}

	return out, applied
}
