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

// Package locate finds the textual range of a qualifier keyword that may
// lexically appear on either side of the type it qualifies.
package locate

import "fillmore-labs.com/qualorder/internal/srctext"

// Qualifier searches the left-of-type region first and the right-of-type
// region second for a token spelled like text, then extends the located span
// past any trailing whitespace and comments so a later removal does not leave
// a comment orphaned next to the type.
//
// Callers have already established that the qualifier is present, so a miss
// means the structural and textual views of the declaration disagree; the
// false result suppresses the finding for this declaration.
func Qualifier(b *srctext.Buffer, before, after srctext.Span, text string, mode srctext.MatchMode) (srctext.Span, bool) {
	sp, ok := b.FindForward(before, text, mode)
	if !ok {
		sp, ok = b.FindForward(after, text, mode)
	}

	if !ok {
		return srctext.Span{}, false
	}

	sp.End = b.SkipForward(sp.End)
	if !sp.Valid() || sp.End > b.Len() {
		return srctext.Span{}, false
	}

	return sp, true
}
