// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"bytes"

	"go4.org/mem"
)

// Bytes is a complete (non-streaming) byte-slice input: a mutable cursor
// over a fixed underlying buffer, in the style of the teacher's Scanner,
// but without the bufio.Reader refill loop — a complete stream is never
// extended after construction.
type Bytes struct {
	buf []byte
	pos int
}

// NewBytes constructs a complete Bytes stream over buf. buf is not copied;
// callers must not mutate it while the stream is in use.
func NewBytes(buf []byte) *Bytes { return &Bytes{buf: buf} }

func (b *Bytes) Checkpoint() int { return b.pos }
func (b *Bytes) Reset(c int)     { b.pos = c }
func (b *Bytes) IsPartial() bool { return false }
func (b *Bytes) Location() int   { return b.pos }
func (b *Bytes) Remaining() int  { return len(b.buf) - b.pos }

func (b *Bytes) RawSpan(from, to int) mem.RO { return mem.B(b.buf[from:to]) }

func (b *Bytes) PeekByte() (byte, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	return b.buf[b.pos], true
}

func (b *Bytes) PeekBytes(n int) ([]byte, bool) {
	if n < 0 || b.pos+n > len(b.buf) {
		return nil, false
	}
	return b.buf[b.pos : b.pos+n], true
}

func (b *Bytes) Advance(n int) { b.pos += n }

// Compare never reports CompareIncomplete: a complete stream's content is
// fixed, so running out of bytes while matching a pattern is an ordinary
// mismatch, not a request for more data.
func (b *Bytes) Compare(pattern []byte) Comparison {
	avail, ok := b.PeekBytes(len(pattern))
	if !ok {
		return Comparison{Result: CompareMismatch}
	}
	if bytes.Equal(avail, pattern) {
		return Comparison{Result: CompareOK, Len: len(pattern)}
	}
	return Comparison{Result: CompareMismatch}
}

var _ ByteStream = (*Bytes)(nil)

// PartialBytes wraps any ByteStream S, turning reads that would otherwise
// fail purely for lack of buffered data into Incomplete outcomes, as if a
// caller might later append more bytes and retry. It embeds S, so every
// ByteStream method except IsPartial and Compare is simply promoted
// unchanged; see DESIGN.md, "Partial wrapper genericity".
type PartialBytes[S ByteStream] struct {
	S
}

// NewPartialBytes wraps s as a partial byte stream.
func NewPartialBytes[S ByteStream](s S) *PartialBytes[S] { return &PartialBytes[S]{S: s} }

func (p *PartialBytes[S]) IsPartial() bool { return true }

func (p *PartialBytes[S]) Compare(pattern []byte) Comparison {
	avail, ok := p.S.PeekBytes(len(pattern))
	if ok {
		if bytes.Equal(avail, pattern) {
			return Comparison{Result: CompareOK, Len: len(pattern)}
		}
		return Comparison{Result: CompareMismatch}
	}
	got, _ := p.S.PeekBytes(p.S.Remaining())
	if !bytes.HasPrefix(pattern, got) {
		return Comparison{Result: CompareMismatch}
	}
	return Comparison{Result: CompareIncomplete, Len: len(pattern) - len(got)}
}

var _ ByteStream = (*PartialBytes[*Bytes])(nil)
