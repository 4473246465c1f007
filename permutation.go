// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "github.com/creachadair/mds/mapset"

// slotResult is a type-erased summary of one permutation slot's attempt in
// a given round, letting runPermutation orchestrate slots whose output
// types (A, B, C, ...) all differ without itself being generic over them.
type slotResult struct {
	kind   outcomeKind
	err    *Error
	needed int
}

// makeSlot adapts a concrete Parser[I,O] and a destination pointer into a
// closure runPermutation can drive without knowing O: on success it writes
// the value through dst itself, and reports back only the kind/err/needed
// triple.
func makeSlot[I Input, O any](p Parser[I, O], dst *O) func(I) slotResult {
	return func(in I) slotResult {
		o := p(in)
		switch {
		case o.IsSuccess():
			*dst = o.Value()
			return slotResult{kind: kindSuccess}
		case o.IsCut():
			return slotResult{kind: kindCut, err: o.Err()}
		case o.IsIncomplete():
			return slotResult{kind: kindIncomplete, needed: o.Needed()}
		default:
			return slotResult{kind: kindBacktrack, err: o.Err()}
		}
	}
}

// runPermutation implements §4.5's round-robin matching: each round, try
// every not-yet-matched slot in declaration order at the round's starting
// position; a Success removes that slot from the pending set and starts a
// fresh round; a Cut aborts immediately; an Incomplete is remembered but
// does not stop the round; if every remaining slot backtracks in a round
// with no Incomplete seen, the whole combinator backtracks with
// KindPermutation wrapping the last slot's error; if every remaining slot
// backtracks but at least one was Incomplete, the combinator reports that
// Incomplete instead (more input might resolve the ambiguity).
func runPermutation[I Input](in I, slots []func(I) slotResult) Outcome[struct{}] {
	remaining := mapset.New[int]()
	for i := range slots {
		remaining.Add(i)
	}
	for remaining.Len() > 0 {
		roundStart := in.Checkpoint()
		var lastBacktrack *Error
		sawIncomplete := false
		neededMax := 0
		progressed := false
		for i, slot := range slots {
			if !remaining.Has(i) {
				continue
			}
			in.Reset(roundStart)
			r := slot(in)
			switch r.kind {
			case kindSuccess:
				remaining.Remove(i)
				progressed = true
			case kindCut:
				return CutWith[struct{}](r.err)
			case kindIncomplete:
				sawIncomplete = true
				if r.needed > neededMax {
					neededMax = r.needed
				}
				continue
			default:
				lastBacktrack = r.err
				continue
			}
			break
		}
		if progressed {
			continue
		}
		if sawIncomplete {
			return IncompleteWith[struct{}](neededMax)
		}
		return BacktrackWith[struct{}](Wrap(roundStart, KindPermutation, lastBacktrack))
	}
	return Success(struct{}{})
}

// Permutation2 accepts p1 and p2 in either order, each matching exactly
// once, and returns their outputs in declaration order regardless of which
// actually matched first.
func Permutation2[I Input, A, B any](p1 Parser[I, A], p2 Parser[I, B]) Parser[I, Tuple2[A, B]] {
	return func(in I) Outcome[Tuple2[A, B]] {
		var a A
		var b B
		slots := []func(I) slotResult{makeSlot(p1, &a), makeSlot(p2, &b)}
		fail := runPermutation(in, slots)
		if !fail.IsSuccess() {
			return outcomeCast[struct{}, Tuple2[A, B]](fail)
		}
		return Success(Tuple2[A, B]{A: a, B: b})
	}
}

// Permutation3 accepts any interleaving of p1, p2, p3, each matching
// exactly once, and returns their outputs in declaration order.
func Permutation3[I Input, A, B, C any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C]) Parser[I, Tuple3[A, B, C]] {
	return func(in I) Outcome[Tuple3[A, B, C]] {
		var a A
		var b B
		var c C
		slots := []func(I) slotResult{makeSlot(p1, &a), makeSlot(p2, &b), makeSlot(p3, &c)}
		fail := runPermutation(in, slots)
		if !fail.IsSuccess() {
			return outcomeCast[struct{}, Tuple3[A, B, C]](fail)
		}
		return Success(Tuple3[A, B, C]{A: a, B: b, C: c})
	}
}

// Permutation4 is the four-way analogue of Permutation3.
func Permutation4[I Input, A, B, C, D any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C], p4 Parser[I, D]) Parser[I, Tuple4[A, B, C, D]] {
	return func(in I) Outcome[Tuple4[A, B, C, D]] {
		var a A
		var b B
		var c C
		var d D
		slots := []func(I) slotResult{makeSlot(p1, &a), makeSlot(p2, &b), makeSlot(p3, &c), makeSlot(p4, &d)}
		fail := runPermutation(in, slots)
		if !fail.IsSuccess() {
			return outcomeCast[struct{}, Tuple4[A, B, C, D]](fail)
		}
		return Success(Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d})
	}
}

// Permutation5 is the five-way analogue of Permutation3.
func Permutation5[I Input, A, B, C, D, E any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C], p4 Parser[I, D], p5 Parser[I, E]) Parser[I, Tuple5[A, B, C, D, E]] {
	return func(in I) Outcome[Tuple5[A, B, C, D, E]] {
		var a A
		var b B
		var c C
		var d D
		var e E
		slots := []func(I) slotResult{makeSlot(p1, &a), makeSlot(p2, &b), makeSlot(p3, &c), makeSlot(p4, &d), makeSlot(p5, &e)}
		fail := runPermutation(in, slots)
		if !fail.IsSuccess() {
			return outcomeCast[struct{}, Tuple5[A, B, C, D, E]](fail)
		}
		return Success(Tuple5[A, B, C, D, E]{A: a, B: b, C: c, D: d, E: e})
	}
}
