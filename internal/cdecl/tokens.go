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

package cdecl

import "fillmore-labs.com/qualorder/internal/srctext"

// token is one lexical token of the scanned source.
type token struct {
	kind srctext.TokenKind
	span srctext.Span
	text string
}

func (t token) isPunct(c byte) bool {
	return t.kind == srctext.TokenPunct && len(t.text) == 1 && t.text[0] == c
}

func (t token) isIdent(s string) bool {
	return t.kind == srctext.TokenIdent && t.text == s
}

// storageWords are specifiers that may precede a type without being part of it.
var storageWords = map[string]bool{
	"static":       true,
	"extern":       true,
	"register":     true,
	"inline":       true,
	"mutable":      true,
	"thread_local": true,
	"constexpr":    true,
}

// elaborationWords introduce an elaborated type specifier.
var elaborationWords = map[string]bool{
	"struct": true,
	"class":  true,
	"union":  true,
	"enum":   true,
}

// statementWords can never start a declaration.
var statementWords = map[string]bool{
	"return":    true,
	"if":        true,
	"else":      true,
	"while":     true,
	"for":       true,
	"do":        true,
	"switch":    true,
	"case":      true,
	"default":   true,
	"break":     true,
	"continue":  true,
	"goto":      true,
	"sizeof":    true,
	"new":       true,
	"delete":    true,
	"using":     true,
	"namespace": true,
	"template":  true,
	"operator":  true,
	"public":    true,
	"private":   true,
	"protected": true,
}

// builtinLead may start a multi-word builtin type.
var builtinLead = map[string]bool{
	"unsigned": true,
	"signed":   true,
	"long":     true,
	"short":    true,
}

// builtinTail may continue a multi-word builtin type.
var builtinTail = map[string]bool{
	"unsigned": true,
	"signed":   true,
	"long":     true,
	"short":    true,
	"int":      true,
	"char":     true,
	"float":    true,
	"double":   true,
}
