// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

// Tuple2 through Tuple6 are the outputs of Seq2 through Seq6: the results
// of running that many parsers in strict sequence over the same stream.
// Go has no variadic generics, so — in the same spirit as the teacher's
// ast.go, which enumerates Object/Array/Number/Float/Int/Bool/Quoted/String
// as separate concrete types rather than reaching for reflection — these
// arities are spelled out individually rather than derived from one
// generic "list of N" construction.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Unit is a parser that consumes nothing and always succeeds with
// struct{}{}. It is mainly useful as a neutral element when building up a
// Seq chain programmatically.
func Unit[I Input](in I) Outcome[struct{}] { return Success(struct{}{}) }

// Seq2 runs p1 then p2 in strict sequence, aborting at the first failure
// and returning it unchanged (reinterpreted to the tuple output type).
func Seq2[I Input, A, B any](p1 Parser[I, A], p2 Parser[I, B]) Parser[I, Tuple2[A, B]] {
	return func(in I) Outcome[Tuple2[A, B]] {
		o1 := p1(in)
		if !o1.IsSuccess() {
			return outcomeCast[A, Tuple2[A, B]](o1)
		}
		o2 := p2(in)
		if !o2.IsSuccess() {
			return outcomeCast[B, Tuple2[A, B]](o2)
		}
		return Success(Tuple2[A, B]{A: o1.Value(), B: o2.Value()})
	}
}

func Seq3[I Input, A, B, C any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C]) Parser[I, Tuple3[A, B, C]] {
	return func(in I) Outcome[Tuple3[A, B, C]] {
		o1 := p1(in)
		if !o1.IsSuccess() {
			return outcomeCast[A, Tuple3[A, B, C]](o1)
		}
		o2 := p2(in)
		if !o2.IsSuccess() {
			return outcomeCast[B, Tuple3[A, B, C]](o2)
		}
		o3 := p3(in)
		if !o3.IsSuccess() {
			return outcomeCast[C, Tuple3[A, B, C]](o3)
		}
		return Success(Tuple3[A, B, C]{A: o1.Value(), B: o2.Value(), C: o3.Value()})
	}
}

func Seq4[I Input, A, B, C, D any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C], p4 Parser[I, D]) Parser[I, Tuple4[A, B, C, D]] {
	return func(in I) Outcome[Tuple4[A, B, C, D]] {
		o1 := p1(in)
		if !o1.IsSuccess() {
			return outcomeCast[A, Tuple4[A, B, C, D]](o1)
		}
		o2 := p2(in)
		if !o2.IsSuccess() {
			return outcomeCast[B, Tuple4[A, B, C, D]](o2)
		}
		o3 := p3(in)
		if !o3.IsSuccess() {
			return outcomeCast[C, Tuple4[A, B, C, D]](o3)
		}
		o4 := p4(in)
		if !o4.IsSuccess() {
			return outcomeCast[D, Tuple4[A, B, C, D]](o4)
		}
		return Success(Tuple4[A, B, C, D]{A: o1.Value(), B: o2.Value(), C: o3.Value(), D: o4.Value()})
	}
}

func Seq5[I Input, A, B, C, D, E any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C], p4 Parser[I, D], p5 Parser[I, E]) Parser[I, Tuple5[A, B, C, D, E]] {
	return func(in I) Outcome[Tuple5[A, B, C, D, E]] {
		o1 := p1(in)
		if !o1.IsSuccess() {
			return outcomeCast[A, Tuple5[A, B, C, D, E]](o1)
		}
		o2 := p2(in)
		if !o2.IsSuccess() {
			return outcomeCast[B, Tuple5[A, B, C, D, E]](o2)
		}
		o3 := p3(in)
		if !o3.IsSuccess() {
			return outcomeCast[C, Tuple5[A, B, C, D, E]](o3)
		}
		o4 := p4(in)
		if !o4.IsSuccess() {
			return outcomeCast[D, Tuple5[A, B, C, D, E]](o4)
		}
		o5 := p5(in)
		if !o5.IsSuccess() {
			return outcomeCast[E, Tuple5[A, B, C, D, E]](o5)
		}
		return Success(Tuple5[A, B, C, D, E]{A: o1.Value(), B: o2.Value(), C: o3.Value(), D: o4.Value(), E: o5.Value()})
	}
}

func Seq6[I Input, A, B, C, D, E, F any](p1 Parser[I, A], p2 Parser[I, B], p3 Parser[I, C], p4 Parser[I, D], p5 Parser[I, E], p6 Parser[I, F]) Parser[I, Tuple6[A, B, C, D, E, F]] {
	return func(in I) Outcome[Tuple6[A, B, C, D, E, F]] {
		o1 := p1(in)
		if !o1.IsSuccess() {
			return outcomeCast[A, Tuple6[A, B, C, D, E, F]](o1)
		}
		o2 := p2(in)
		if !o2.IsSuccess() {
			return outcomeCast[B, Tuple6[A, B, C, D, E, F]](o2)
		}
		o3 := p3(in)
		if !o3.IsSuccess() {
			return outcomeCast[C, Tuple6[A, B, C, D, E, F]](o3)
		}
		o4 := p4(in)
		if !o4.IsSuccess() {
			return outcomeCast[D, Tuple6[A, B, C, D, E, F]](o4)
		}
		o5 := p5(in)
		if !o5.IsSuccess() {
			return outcomeCast[E, Tuple6[A, B, C, D, E, F]](o5)
		}
		o6 := p6(in)
		if !o6.IsSuccess() {
			return outcomeCast[F, Tuple6[A, B, C, D, E, F]](o6)
		}
		return Success(Tuple6[A, B, C, D, E, F]{A: o1.Value(), B: o2.Value(), C: o3.Value(), D: o4.Value(), E: o5.Value(), F: o6.Value()})
	}
}
