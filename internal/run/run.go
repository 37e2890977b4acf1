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

// Package run orchestrates a qualorder run over a file set: discovery,
// per-file checking and optional fix application.
//
// Files are checked concurrently. Each file is an independent unit of work
// with no shared mutable state, so results only need a deterministic order
// by path afterwards.
package run

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/qualorder/internal/cdecl"
	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/dispatch"
	"fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/report"
	"fillmore-labs.com/qualorder/internal/srctext"
)

// maxFileSize bounds the size of a single checked file.
const maxFileSize = 16 << 20

// ErrUnknownQualifier is returned for an unrecognized tracked qualifier name.
var ErrUnknownQualifier = errors.New("unknown qualifier")

// ErrFileTooLarge is returned when a checked file exceeds [maxFileSize].
var ErrFileTooLarge = errors.New("file too large")

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path     string
	Buffer   *srctext.Buffer
	Findings []report.Finding

	// Fixed is the number of plans applied when fixes were requested.
	Fixed int
}

// Run checks every discovered file and returns the per-file results ordered
// by path. When [config.ApplyFixes] is enabled, files with findings are
// rewritten in place.
func (o *Options) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := o.discover(paths)
	if err != nil {
		return nil, err
	}

	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]FileResult, len(files))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := o.checkFile(path)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// checkFile loads one file, parses its declarations and runs the check over
// each. Findings are ordered by anchor offset.
func (o *Options) checkFile(path string) (FileResult, error) {
	src, err := o.load(path)
	if err != nil {
		return FileResult{}, err
	}

	b := srctext.NewBuffer(path, src)

	opts := dispatch.Options{
		Alignment: o.Alignment,
		Qualifier: o.Qualifier,
		Logger:    o.Logger,
	}

	var plans []plan.Plan
	for _, d := range cdecl.Parse(b) {
		plans = append(plans, dispatch.CheckDecl(b, opts, d)...)
	}

	slices.SortStableFunc(plans, func(a, b plan.Plan) int { return a.Anchor - b.Anchor })

	result := FileResult{
		Path:     path,
		Buffer:   b,
		Findings: report.Findings(b, plans),
	}

	if o.Behavior.Enabled(config.ApplyFixes) && len(plans) > 0 {
		fixed, n := report.Fix(b, plans)
		if n > 0 {
			if err := writeBack(path, fixed); err != nil {
				return FileResult{}, err
			}
		}

		result.Fixed = n
	}

	return result, nil
}

// load reads the file after checking its size against [maxFileSize].
func (o *Options) load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	size, err := safecast.Conv[int](info.Size())
	if err != nil || size > maxFileSize {
		return nil, fmt.Errorf("checking %s: %w", path, ErrFileTooLarge)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	return src, nil
}

// writeBack rewrites a fixed file, preserving its permission bits.
func writeBack(path, contents string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("fixing %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(contents), info.Mode().Perm()); err != nil {
		return fmt.Errorf("fixing %s: %w", path, err)
	}

	return nil
}

// discover expands the argument paths: files are taken as given, directories
// are walked for files matching the configured extensions. The result is
// sorted and deduplicated for reproducible output.
func (o *Options) discover(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("discovering %s: %w", p, err)
		}

		if !info.IsDir() {
			files = append(files, p)

			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && o.wantFile(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discovering %s: %w", p, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func (o *Options) wantFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return slices.Contains(o.Extensions, ext)
}
