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

package checker

import (
	"log/slog"

	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/run"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

// Alignment selects the canonical qualifier position relative to the type.
type Alignment = config.Alignment

// Alignment values. [None] disables the check entirely.
const (
	None  = config.AlignNone
	Left  = config.AlignLeft
	Right = config.AlignRight
)

// Qualifier is a tracked type qualifier keyword.
type Qualifier = typeshape.Qualifier

// Qualifier values.
const (
	Const    = typeshape.Const
	Volatile = typeshape.Volatile
	Restrict = typeshape.Restrict
)

// Option configures specific behavior of a [New] checker.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAlignment is an [Option] to configure the canonical qualifier position.
func WithAlignment(alignment Alignment) Option { return alignmentOption{alignment: alignment} }

type alignmentOption struct{ alignment Alignment }

func (o alignmentOption) apply(r *run.Options) {
	r.Alignment = o.alignment
}

func (o alignmentOption) LogAttr() slog.Attr {
	return slog.String("alignment", o.alignment.String())
}

// WithQualifier is an [Option] to configure the tracked qualifier.
func WithQualifier(qualifier Qualifier) Option { return qualifierOption{qualifier: qualifier} }

type qualifierOption struct{ qualifier Qualifier }

func (o qualifierOption) apply(r *run.Options) {
	r.Qualifier = o.qualifier
}

func (o qualifierOption) LogAttr() slog.Attr {
	return slog.String("qualifier", o.qualifier.Spelling())
}

// WithFix is an [Option] to configure rewriting checked files in place.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.ApplyFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithShowSource is an [Option] to configure echoing the offending source
// line under each finding.
func WithShowSource(show bool) Option { return showSourceOption{show: show} }

type showSourceOption struct{ show bool }

func (o showSourceOption) apply(r *run.Options) {
	r.Behavior.Set(config.ShowSource, o.show)
}

func (o showSourceOption) LogAttr() slog.Attr {
	return slog.Bool("show-source", o.show)
}

// WithQuiet is an [Option] to suppress the per-run summary.
func WithQuiet(quiet bool) Option { return quietOption{quiet: quiet} }

type quietOption struct{ quiet bool }

func (o quietOption) apply(r *run.Options) {
	r.Behavior.Set(config.Quiet, o.quiet)
}

func (o quietOption) LogAttr() slog.Attr {
	return slog.Bool("quiet", o.quiet)
}

// WithExtensions is an [Option] to configure the file extensions checked
// when walking directories.
func WithExtensions(extensions []string) Option { return extensionsOption{extensions: extensions} }

type extensionsOption struct{ extensions []string }

func (o extensionsOption) apply(r *run.Options) {
	if len(o.extensions) > 0 {
		r.Extensions = o.extensions
	}
}

func (o extensionsOption) LogAttr() slog.Attr {
	return slog.Any("extensions", o.extensions)
}

// WithJobs is an [Option] to limit concurrent file checks.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (o jobsOption) apply(r *run.Options) {
	r.Jobs = o.jobs
}

func (o jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", o.jobs)
}

// WithLogger is an [Option] to receive debug records for suppressed findings.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
