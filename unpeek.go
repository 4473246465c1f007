// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

// Unpeek adapts a function written in the "take input, return (rest,
// output, error)" calling convention into this package's canonical
// mutate-the-cursor-in-place Parser contract. It exists so code written
// against that older convention — the shape the teacher's own
// ast.Parser.Parse uses, returning a fresh value rather than mutating a
// caller-owned cursor — can plug into this library's combinators without
// being rewritten by hand.
//
// Because every stream in this package is a mutable cursor rather than an
// immutable value, rest is expected to be the same stream as the one
// f received (just advanced); it is accepted and discarded rather than
// substituted back in, purely for signature parity with that convention.
func Unpeek[I Input, O any](f func(I) (I, O, error)) Parser[I, O] {
	return func(in I) Outcome[O] {
		cp := in.Checkpoint()
		_, v, err := f(in)
		if err != nil {
			in.Reset(cp)
			if pe, ok := err.(*Error); ok {
				return BacktrackWith[O](pe)
			}
			return BacktrackWith[O](NewExternalError(cp, KindVerify, err))
		}
		return Success(v)
	}
}
