// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - validateNaNInf controls whether constructors and Set reject NaN/±Inf.
//   - allowNegInf is a narrow exception for −Inf as the "no valid
//     predecessor yet" sentinel of DP tables. NaN and +Inf stay rejected.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowNegInf permits −Inf cells (DP sentinel). Off by default.
	DefaultAllowNegInf = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowNegInf    bool // DefaultAllowNegInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation.
//
// Notes:
//   - Intended for scratch tables whose contents are produced by trusted code.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowNegInf permits −Inf cells while keeping NaN and +Inf rejected.
//
// Behavior highlights:
//   - Used by cumulative DP tables, where −Inf marks an impossible placement
//     (for example a zero-variance connector at any gap but its mean).
func WithAllowNegInf() Option {
	return func(o *Options) { o.allowNegInf = true }
}

// gatherOptions resolves opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowNegInf:    DefaultAllowNegInf,
	}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
