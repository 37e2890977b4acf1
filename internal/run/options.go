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

package run

import (
	"log/slog"

	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

// Options represent configuration options for a qualorder run.
type Options struct {
	// Alignment is the canonical qualifier position.
	Alignment config.Alignment

	// Qualifier is the tracked qualifier.
	Qualifier typeshape.Qualifier

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Extensions are the file name extensions checked when walking
	// directories.
	Extensions []string

	// Jobs limits concurrent file checks; 0 means one per CPU.
	Jobs int

	// Logger receives debug records; nil means [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	f := config.DefaultFile()

	return &Options{
		Alignment:  f.Alignment,
		Qualifier:  typeshape.Const,
		Behavior:   config.DefaultBehavior(),
		Extensions: f.Extensions,
		Jobs:       f.Jobs,
	}
}

// FromFile layers a configuration file over the defaults.
func FromFile(f config.File) (*Options, error) {
	o := DefaultOptions()

	o.Alignment = f.Alignment
	o.Jobs = f.Jobs

	if len(f.Extensions) > 0 {
		o.Extensions = f.Extensions
	}

	if f.Qualifier != "" {
		q, ok := typeshape.ParseQualifier(f.Qualifier)
		if !ok {
			return nil, ErrUnknownQualifier
		}

		o.Qualifier = q
	}

	return o, nil
}
