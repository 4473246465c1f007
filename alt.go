// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

// runAlt implements the shared alternation rule: reset to start, try the
// next not-yet-tried branch; a Success or Cut or Incomplete returns
// immediately, an ordinary Backtrack tries the next branch, and if every
// branch backtracks the whole combinator backtracks with KindAlt wrapping
// the last branch's error. The small-arity AltN wrappers below exist only
// to give callers a typed, fixed-arity signature; they all bottom out
// here.
func runAlt[I Input, O any](in I, start int, alts []Parser[I, O]) Outcome[O] {
	var last *Error
	for _, p := range alts {
		in.Reset(start)
		o := p(in)
		switch {
		case o.IsSuccess(), o.IsCut(), o.IsIncomplete():
			return o
		default:
			last = o.Err()
		}
	}
	in.Reset(start)
	return BacktrackWith[O](Wrap(start, KindAlt, last))
}

// Alt2 tries p1, then p2, at the stream's current position.
func Alt2[I Input, O any](p1, p2 Parser[I, O]) Parser[I, O] {
	return func(in I) Outcome[O] {
		start := in.Checkpoint()
		return runAlt(in, start, []Parser[I, O]{p1, p2})
	}
}

// Alt3 tries p1, p2, then p3, at the stream's current position.
func Alt3[I Input, O any](p1, p2, p3 Parser[I, O]) Parser[I, O] {
	return func(in I) Outcome[O] {
		start := in.Checkpoint()
		return runAlt(in, start, []Parser[I, O]{p1, p2, p3})
	}
}

// Alt4 tries p1 through p4, in order, at the stream's current position.
func Alt4[I Input, O any](p1, p2, p3, p4 Parser[I, O]) Parser[I, O] {
	return func(in I) Outcome[O] {
		start := in.Checkpoint()
		return runAlt(in, start, []Parser[I, O]{p1, p2, p3, p4})
	}
}

// Alt5 tries p1 through p5, in order, at the stream's current position.
func Alt5[I Input, O any](p1, p2, p3, p4, p5 Parser[I, O]) Parser[I, O] {
	return func(in I) Outcome[O] {
		start := in.Checkpoint()
		return runAlt(in, start, []Parser[I, O]{p1, p2, p3, p4, p5})
	}
}

// Alt6 tries p1 through p6, in order, at the stream's current position.
func Alt6[I Input, O any](p1, p2, p3, p4, p5, p6 Parser[I, O]) Parser[I, O] {
	return func(in I) Outcome[O] {
		start := in.Checkpoint()
		return runAlt(in, start, []Parser[I, O]{p1, p2, p3, p4, p5, p6})
	}
}
