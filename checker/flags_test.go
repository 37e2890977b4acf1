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

package checker_test

import (
	"flag"
	"io"
	"testing"

	. "fillmore-labs.com/qualorder/checker"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	c := New()

	flags := flag.NewFlagSet("qualorder", flag.ContinueOnError)
	c.RegisterFlags(flags)

	if err := flags.Parse([]string{"-align", "right", "-qualifier", "volatile", "-jobs", "2"}); err != nil {
		t.Fatalf("Expected flags to parse, got %v", err)
	}

	src := []byte("volatile int v;\n")

	fixed, findings := c.FixSource("v.cc", src)
	if got, want := fixed, "int volatile v;\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if len(findings) != 1 {
		t.Errorf("Expected one finding, got %d", len(findings))
	}
}

func TestRegisterFlagsRejectsUnknownValues(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		args []string
	}{
		{"alignment", []string{"-align", "center"}},
		{"qualifier", []string{"-qualifier", "mutable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New()

			flags := flag.NewFlagSet("qualorder", flag.ContinueOnError)
			flags.SetOutput(io.Discard)
			c.RegisterFlags(flags)

			if err := flags.Parse(tt.args); err == nil {
				t.Error("Expected a parse error")
			}
		})
	}
}
