// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "errors"

// ErrPartialInput is returned by ParseAll when given a stream whose
// IsPartial reports true. The source this library's design is distilled
// from permits this case only via a debug-time assertion; Go has no
// separate debug/release assertion mode, so this implementation reports it
// unconditionally as an ordinary error instead (see DESIGN.md, "ParseAll
// on a partial stream").
var ErrPartialInput = errors.New("comb: ParseAll requires a complete stream")

// ErrTrailingInput is returned by ParseAll when p succeeds but input
// remains afterward.
var ErrTrailingInput = errors.New("comb: trailing input after a successful parse")

// remainingReporter is satisfied by any ByteStream or TextStream, letting
// ParseAll check for trailing input without caring which kind of stream it
// was given.
type remainingReporter interface {
	Remaining() int
}

// ParseAll runs p against in and requires that no input remain afterward.
// It rejects partial streams outright: Incomplete would mean p is still
// waiting for data that ParseAll, by construction, will never supply.
func ParseAll[I Input, O any](p Parser[I, O], in I) (O, error) {
	var zero O
	if in.IsPartial() {
		return zero, ErrPartialInput
	}
	o := p(in)
	if !o.IsSuccess() {
		return zero, o.IntoInner()
	}
	if r, ok := any(in).(remainingReporter); ok && r.Remaining() > 0 {
		return zero, ErrTrailingInput
	}
	return o.Value(), nil
}

// ParsePeek runs p against in and returns the stream alongside the output
// on success. On failure, in is restored to the checkpoint it held before
// the call and the three-valued Outcome is returned verbatim, so callers
// can inspect it or try another parser from the same position. This is
// the "peek" calling convention, adapted to this package's mutable-cursor
// streams: in is always the same value handed back, advanced on success
// and restored on failure.
func ParsePeek[I Input, O any](p Parser[I, O], in I) (I, O, Outcome[O]) {
	cp := in.Checkpoint()
	o := p(in)
	var zero O
	if o.IsSuccess() {
		return in, o.Value(), o
	}
	in.Reset(cp)
	return in, zero, o
}
