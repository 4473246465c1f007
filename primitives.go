// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "reflect"

// Byte returns a parser that succeeds only when the next byte of a
// ByteStream equals b, yielding b itself.
func Byte[I ByteStream](b byte) Parser[I, byte] {
	return func(in I) Outcome[byte] {
		cp := in.Checkpoint()
		got, ok := in.PeekByte()
		if !ok {
			if in.IsPartial() {
				return IncompleteWith[byte](1)
			}
			return BacktrackWith[byte](NewError(cp, KindToken))
		}
		if got != b {
			return BacktrackWith[byte](NewError(cp, KindToken))
		}
		in.Advance(1)
		return Success(b)
	}
}

// Rune returns a parser that succeeds only when the next rune of a
// TextStream equals r, yielding r itself.
func Rune[I TextStream](r rune) Parser[I, rune] {
	return func(in I) Outcome[rune] {
		cp := in.Checkpoint()
		got, ok := in.PeekRune()
		if !ok {
			if in.IsPartial() {
				return IncompleteWith[rune](1)
			}
			return BacktrackWith[rune](NewError(cp, KindToken))
		}
		if got != r {
			return BacktrackWith[rune](NewError(cp, KindToken))
		}
		in.Advance(1)
		return Success(r)
	}
}

// LiteralN returns a parser that matches the exact byte sequence held in a
// fixed-size array, yielding the matched bytes. The original implementation
// this package is distilled from parses `&[u8; N]` directly, with N fixed
// at the type level; Go's type parameters range over types, not over
// integer constants, so there is no way to write `[N]byte` with N itself a
// type parameter. LiteralN instead takes A as an ordinary (unconstrained)
// type parameter — any concrete array type such as [4]byte satisfies `any`
// — and uses reflect to copy its elements into a slice at call time,
// without knowing N until instantiation.
func LiteralN[I ByteStream, A any](a A) Parser[I, []byte] {
	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Array || v.Type().Elem().Kind() != reflect.Uint8 {
		panic("comb: LiteralN requires a fixed-size byte array")
	}
	pattern := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(pattern), v)
	return Literal[I](pattern)
}

// Literal returns a parser that matches the exact byte sequence pattern,
// yielding the matched bytes. See LiteralN for the fixed-size-array form.
func Literal[I ByteStream](pattern []byte) Parser[I, []byte] {
	return func(in I) Outcome[[]byte] {
		cp := in.Checkpoint()
		switch cmp := in.Compare(pattern); cmp.Result {
		case CompareOK:
			in.Advance(cmp.Len)
			return Success(pattern)
		case CompareIncomplete:
			return IncompleteWith[[]byte](cmp.Len)
		default:
			return BacktrackWith[[]byte](NewError(cp, KindTag))
		}
	}
}

// Str returns a parser that matches the exact text literal pattern on a
// TextStream, yielding the matched text.
func Str[I TextStream](pattern string) Parser[I, string] {
	return func(in I) Outcome[string] {
		cp := in.Checkpoint()
		switch cmp := in.Compare(pattern); cmp.Result {
		case CompareOK:
			in.Advance(cmp.Len)
			return Success(pattern)
		case CompareIncomplete:
			return IncompleteWith[string](cmp.Len)
		default:
			return BacktrackWith[string](NewError(cp, KindTag))
		}
	}
}
