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

// Package checker implements the qualorder check.
//
// # Overview
//
// Qualorder analyzes declarations in C-family source files and canonicalizes
// where a type qualifier is written relative to the type it qualifies,
// preserving everything else byte for byte.
//
// # Example
//
// Before:
//
//	int const x = 0;
//	vector<int const, char> v;
//
// After applying qualorder's suggested fixes with left alignment:
//
//	const int x = 0;
//	vector<const int , char> v;
//
// # Supported Declarations
//
// The check visits:
//
//   - Variable declarations at file, block and member scope
//   - Function declarations (the return type only)
//   - Typedefs
//   - Type arguments of template specializations, recursively
//
// Only the qualifier of the innermost type is canonicalized. Qualifiers on
// pointer or reference levels, as in `T * const p`, are left alone.
package checker
