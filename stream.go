// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "go4.org/mem"

// Input is the minimal capability the generic combinator algebra (Map,
// Verify, AndThen, Alt, Permutation, tuple sequencing, ...) needs from any
// stream: a way to snapshot and restore the cursor for backtracking, and a
// static flag distinguishing partial (streaming) inputs from complete
// ones. Token-level access lives in the richer ByteStream/TextStream
// capability sets below, so the generic layer never needs to know what a
// token even is — the same separation the teacher draws between its
// Scanner (token-aware) and the JSON grammar built on top of it.
type Input interface {
	// Checkpoint returns an opaque cursor position usable with Reset.
	Checkpoint() int

	// Reset restores the stream to a previously obtained checkpoint.
	Reset(checkpoint int)

	// IsPartial reports whether this stream reports Incomplete, rather
	// than an ordinary failure, when a read runs past the buffered data.
	IsPartial() bool
}

// Location is implemented by streams that can report a monotonic byte
// offset, used by the SpanOf/WithSpan adapters.
type Location interface {
	Location() int
}

// Recognizable is implemented by streams that can return a zero-copy view
// of the bytes spanning two checkpoints, powering the Recognize and
// WithRecognized adapters. It returns mem.RO, the same zero-copy
// representation the teacher uses for ast.Quoted and ast.Number.
type Recognizable interface {
	RawSpan(from, to int) mem.RO
}

// Span describes a contiguous range [Pos, End) of a source input.
type Span struct {
	Pos int
	End int
}

// Len reports the length of the span in the units of its offsets (bytes,
// for every stream in this package, including Text).
func (s Span) Len() int { return s.End - s.Pos }

// CompareResult is the three-valued result of comparing a stream's cursor
// against a literal pattern.
type CompareResult int

const (
	// CompareOK means the pattern matches a prefix of the stream.
	CompareOK CompareResult = iota
	// CompareMismatch means the stream's content differs from the
	// pattern, or (on a complete stream) there is not enough of it left.
	CompareMismatch
	// CompareIncomplete means the buffered portion of a partial stream
	// matches the pattern so far, but not enough has been buffered yet to
	// decide either way.
	CompareIncomplete
)

// Comparison is the result of Comparable.Compare. On CompareOK, Len is the
// number of tokens matched (equal to the pattern's length). On
// CompareIncomplete, Len is the number of further tokens required.
type Comparison struct {
	Result CompareResult
	Len    int
}

// Comparable is implemented by streams that can test a literal pattern of
// type P against their cursor without consuming it.
type Comparable[P any] interface {
	Compare(pattern P) Comparison
}

// ByteStream is the capability set required by byte-oriented ergonomic
// parsers (Byte, Literal) and by the internal/leaves test fixtures.
type ByteStream interface {
	Input
	Location
	Recognizable
	Comparable[[]byte]

	// PeekByte inspects the next byte without consuming it. ok is false
	// if the stream is exhausted.
	PeekByte() (b byte, ok bool)

	// PeekBytes inspects the next n bytes without consuming them. ok is
	// false if fewer than n bytes are currently buffered.
	PeekBytes(n int) (bs []byte, ok bool)

	// Advance moves the cursor forward by n bytes. Callers are expected
	// to have confirmed via PeekByte/PeekBytes/Compare that n bytes are
	// actually available.
	Advance(n int)

	// Remaining reports the number of bytes currently buffered ahead of
	// the cursor.
	Remaining() int
}

// TextStream is the rune-oriented analogue of ByteStream.
type TextStream interface {
	Input
	Location
	Recognizable
	Comparable[string]

	PeekRune() (r rune, ok bool)
	PeekString(n int) (s string, ok bool) // next n runes
	Advance(n int)                        // advance by n runes
	Remaining() int                       // runes currently buffered
}
