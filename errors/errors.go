// Package errors re-exports github.com/cockroachdb/errors and declares the
// sentinel errors of the lookup pipeline.
//
// Callers test for a failure kind with Is:
//
//	if errors.Is(err, errors.ErrNoMatch) {
//	    // sentence yields no model
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors. All of them are per-sentence and non-fatal for a
// paragraph.
var (
	// ErrNoMatch is returned when no stored template is reachable for a
	// tag sequence within the given budget.
	ErrNoMatch = crdb.New("no match")

	// ErrMalformedTemplate is returned when a template span lies outside the
	// sentence it is bound to. The bound model is still usable.
	ErrMalformedTemplate = crdb.New("malformed template")

	// ErrEmptySentence is returned for a sentence with zero tokens.
	ErrEmptySentence = crdb.New("empty sentence")

	ErrNotFound     = crdb.New("not found")
	ErrInvalidInput = crdb.New("invalid input")
)
