// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for presentation and for the
// determinant size bound. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options never affect stored values; display rounding happens in Format only.
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRound is the number of decimal places Format renders.
	DefaultRound = 2

	// DefaultDelimiter separates columns in Format output.
	DefaultDelimiter = "\t"

	// DefaultMaxCofactorOrder bounds Determinant's O(n!) cofactor expansion.
	// 10! ≈ 3.6M leaf products; beyond that use DeterminantByElimination.
	DefaultMaxCofactorOrder = 10

	// UnboundedCofactorOrder disables the Determinant size bound.
	UnboundedCofactorOrder = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRoundInvalid     = "matrix: WithRound: round must be >= 0"
	panicDelimiterEmpty   = "matrix: WithDelimiter: delimiter must be non-empty"
	panicMaxOrderNegative = "matrix: WithMaxCofactorOrder: order must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	round            int    // display precision for Format
	delimiter        string // column delimiter for Format
	maxCofactorOrder int    // Determinant bound; 0 = unbounded
}

// defaultOptions returns Options filled from the Default* constants.
func defaultOptions() Options {
	return Options{
		round:            DefaultRound,
		delimiter:        DefaultDelimiter,
		maxCofactorOrder: DefaultMaxCofactorOrder,
	}
}

// gatherOptions applies opts over the defaults in the given order; later
// options win. nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithRound sets the number of decimal places rendered by Format.
// Panics if round < 0.
func WithRound(round int) Option {
	if round < 0 {
		panic(panicRoundInvalid)
	}

	return func(o *Options) { o.round = round }
}

// WithDelimiter sets the column delimiter rendered by Format.
// Panics on an empty delimiter.
func WithDelimiter(delim string) Option {
	if delim == "" {
		panic(panicDelimiterEmpty)
	}

	return func(o *Options) { o.delimiter = delim }
}

// WithMaxCofactorOrder bounds the order accepted by Determinant.
// 0 (UnboundedCofactorOrder) removes the bound. Panics on negative values.
func WithMaxCofactorOrder(n int) Option {
	if n < 0 {
		panic(panicMaxOrderNegative)
	}

	return func(o *Options) { o.maxCofactorOrder = n }
}

// String renders the resolved options for diagnostics.
func (o Options) String() string {
	return fmt.Sprintf("Options{round:%d delimiter:%q maxCofactorOrder:%d}",
		o.round, o.delimiter, o.maxCofactorOrder)
}
