// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package leaves implements a handful of minimal leaf parsers — tag, take,
// one_of, a big-endian uint16 decoder, and a run of one-or-more decimal
// digits — used by this module's own tests to exercise the combinator
// core end to end. Concrete leaf parsers are explicitly out of scope for
// the core's public API; this package exists solely to give the testable
// properties and scenarios in SPEC_FULL.md something concrete to run
// against, which is also why it lives under internal rather than at the
// module root.
//
// The digit-run and fixed-width integer scanning here follow the same
// shape as the teacher's Scanner.scanNumber and Scanner.readWhile, rebuilt
// atop this module's Parser/Outcome contract instead of a scanner-local
// mutable buffer.
package leaves

import (
	"strconv"

	"github.com/creachadair/comb"
	"go4.org/mem"
)

// Tag matches the exact byte sequence pattern on any comb.ByteStream,
// yielding the matched bytes.
func Tag[I comb.ByteStream](pattern []byte) comb.Parser[I, []byte] {
	return comb.Literal[I](pattern)
}

// TagStr is a convenience wrapper for Tag over a string pattern.
func TagStr[I comb.ByteStream](pattern string) comb.Parser[I, []byte] {
	return Tag[I]([]byte(pattern))
}

// Take returns a parser that consumes exactly n bytes, regardless of their
// content, yielding a copy of them.
func Take[I comb.ByteStream](n int) comb.Parser[I, []byte] {
	return func(in I) comb.Outcome[[]byte] {
		cp := in.Checkpoint()
		bs, ok := in.PeekBytes(n)
		if !ok {
			if in.IsPartial() {
				return comb.IncompleteWith[[]byte](n - in.Remaining())
			}
			return comb.BacktrackWith[[]byte](comb.NewError(cp, comb.KindSlice))
		}
		in.Advance(n)
		out := make([]byte, n)
		copy(out, bs)
		return comb.Success(out)
	}
}

// OneOf matches a single byte if it appears in set, yielding it.
func OneOf[I comb.ByteStream](set string) comb.Parser[I, byte] {
	return func(in I) comb.Outcome[byte] {
		cp := in.Checkpoint()
		b, ok := in.PeekByte()
		if !ok {
			if in.IsPartial() {
				return comb.IncompleteWith[byte](1)
			}
			return comb.BacktrackWith[byte](comb.NewError(cp, comb.KindToken))
		}
		for i := 0; i < len(set); i++ {
			if set[i] == b {
				in.Advance(1)
				return comb.Success(b)
			}
		}
		return comb.BacktrackWith[byte](comb.NewError(cp, comb.KindToken))
	}
}

// BEUint16 reads a big-endian uint16 from the next two bytes.
func BEUint16[I comb.ByteStream](in I) comb.Outcome[uint16] {
	cp := in.Checkpoint()
	bs, ok := in.PeekBytes(2)
	if !ok {
		if in.IsPartial() {
			return comb.IncompleteWith[uint16](2 - in.Remaining())
		}
		return comb.BacktrackWith[uint16](comb.NewError(cp, comb.KindSlice))
	}
	in.Advance(2)
	return comb.Success(uint16(bs[0])<<8 | uint16(bs[1]))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Digit1 consumes one or more decimal digits, yielding the matched text as
// a zero-copy mem.RO slice of the input — the same representation the
// teacher keeps ast.Number and ast.Quoted in, rather than a copied string.
func Digit1[I comb.ByteStream](in I) comb.Outcome[mem.RO] {
	cp := in.Checkpoint()
	n := 0
	ranOut := false
	for {
		b, ok := in.PeekByte()
		if !ok {
			ranOut = true
			break
		}
		if !isDigit(b) {
			break
		}
		in.Advance(1)
		n++
	}
	if n == 0 {
		if in.IsPartial() && ranOut {
			return comb.IncompleteWith[mem.RO](1)
		}
		return comb.BacktrackWith[mem.RO](comb.NewError(cp, comb.KindSlice))
	}
	if in.IsPartial() && ranOut {
		// A non-digit terminator was never seen; more digits might still
		// follow once the stream is extended.
		return comb.IncompleteWith[mem.RO](1)
	}
	return comb.Success(in.RawSpan(cp, in.Checkpoint()))
}

// ParseU8 converts the decimal text recognized by Digit1 into a uint8,
// reporting an error (via strconv) if it does not fit — usable directly
// with comb.TryMap(digit1, leaves.ParseU8), mirroring the teacher's own
// Scanner numeric conversions.
func ParseU8(raw mem.RO) (uint8, error) {
	v, err := strconv.ParseUint(raw.StringCopy(), 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
