// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "fmt"

// Kind identifies which core rule produced a parse failure.
type Kind int

const (
	// KindTag means a literal byte/text pattern did not match.
	KindTag Kind = iota
	// KindSlice means a fixed- or minimum-length read ran past the
	// available input.
	KindSlice
	// KindToken means a single byte/rune did not match what was expected.
	KindToken
	// KindVerify means a predicate or fallible conversion rejected an
	// otherwise successful parse (Verify, VerifyMap, TryMap, ParseTo).
	KindVerify
	// KindAlt means every branch of an Alt combinator backtracked.
	KindAlt
	// KindPermutation means every not-yet-matched branch of a Permutation
	// combinator backtracked in the same round.
	KindPermutation
	// KindComplete means an Incomplete outcome reached CompleteErr, i.e. a
	// caller asserted a stream was complete and it was not.
	KindComplete
)

var kindNames = [...]string{
	KindTag:         "tag",
	KindSlice:       "slice",
	KindToken:       "token",
	KindVerify:      "verify",
	KindAlt:         "alt",
	KindPermutation: "permutation",
	KindComplete:    "complete",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Frame is a single (position, label) context annotation attached to an
// Error by the Context adapter, innermost first.
type Frame struct {
	Pos   int
	Label string
}

// Error is the concrete failure value produced throughout this package. It
// pairs a position and a Kind with an optional chain of user-supplied
// context labels (see the Context adapter) and an optional wrapped cause,
// used both for external errors surfaced by TryMap/ParseTo and for the
// synthetic errors Alt and Permutation build from their last inner failure.
type Error struct {
	Pos     int
	Kind    Kind
	Context []Frame
	cause   error
}

// NewError constructs an Error with no context and no wrapped cause.
func NewError(pos int, kind Kind) *Error {
	return &Error{Pos: pos, Kind: kind}
}

// NewExternalError constructs an Error wrapping an external error, as
// produced by a fallible conversion function passed to TryMap or ParseTo
// (ErrInto and Unpeek also use it).
func NewExternalError(pos int, kind Kind, cause error) *Error {
	return &Error{Pos: pos, Kind: kind, cause: cause}
}

// Wrap constructs a new Error at (pos, kind) whose cause is inner. Alt and
// Permutation use this to synthesize a top-level failure from the last
// inner branch's Error, rather than merely annotating it the way Context
// does.
func Wrap(pos int, kind Kind, inner *Error) *Error {
	return &Error{Pos: pos, Kind: kind, cause: inner}
}

// AppendContext returns a copy of e with a (pos, label) frame pushed onto
// its context chain.
func (e *Error) AppendContext(pos int, label string) *Error {
	frames := make([]Frame, len(e.Context), len(e.Context)+1)
	copy(frames, e.Context)
	frames = append(frames, Frame{Pos: pos, Label: label})
	return &Error{Pos: e.Pos, Kind: e.Kind, Context: frames, cause: e.cause}
}

// Error renders a single-line diagnostic message: the innermost (pos, kind),
// any context frames from outermost to innermost, and the wrapped cause's
// own message, if any.
func (e *Error) Error() string {
	msg := fmt.Sprintf("at %d: %s", e.Pos, e.Kind)
	for i := len(e.Context) - 1; i >= 0; i-- {
		f := e.Context[i]
		msg = fmt.Sprintf("%s (in %s at %d)", msg, f.Label, f.Pos)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes e's wrapped cause, if any, so callers can use errors.Is
// and errors.As against an external error surfaced through TryMap or
// ParseTo.
func (e *Error) Unwrap() error { return e.cause }

// Debug renders the same diagnostic as Error. It exists as a separate,
// explicitly-named method because callers sometimes want a debug rendering
// distinct from the error interface's Error() by convention, even when (as
// here) the text is identical.
func (e *Error) Debug() string { return e.Error() }

var _ error = (*Error)(nil)
