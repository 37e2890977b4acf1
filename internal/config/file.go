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
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the configuration file searched in the working directory.
const DefaultFileName = ".qualorder.toml"

// File is the TOML configuration file shape.
//
//	alignment = "left"
//	qualifier = "const"
//	extensions = [".c", ".h", ".cc", ".hh", ".cpp", ".hpp", ".cxx"]
//	jobs = 0
type File struct {
	Alignment  Alignment `toml:"alignment"`
	Qualifier  string    `toml:"qualifier"`
	Extensions []string  `toml:"extensions"`
	Jobs       int       `toml:"jobs"`
}

// DefaultFile returns the configuration used when no file is present.
func DefaultFile() File {
	return File{
		Alignment:  AlignLeft,
		Qualifier:  "const",
		Extensions: []string{".c", ".h", ".cc", ".hh", ".cpp", ".hpp", ".cxx"},
		Jobs:       0, // 0 means one worker per CPU
	}
}

// Load reads a TOML configuration file, layering it over [DefaultFile].
// A missing file is not an error and yields the defaults.
func Load(path string) (File, error) {
	f := DefaultFile()

	meta, err := toml.DecodeFile(path, &f)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return f, nil

	case err != nil:
		return f, fmt.Errorf("reading %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return f, fmt.Errorf("reading %s: unknown key %q", path, undecoded[0].String())
	}

	return f, nil
}
