// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import "go4.org/mem"

// Parser is the fundamental contract: given a stream, it either advances
// the stream and produces an output, or reports a three-valued failure.
// I is the stream type (typically *Bytes, *Text, *PartialBytes[...], or
// *PartialText[...]); O is the output type.
//
// Parser is a defined function type, not an interface with generic
// methods: Go does not allow a method to introduce type parameters beyond
// its receiver's, so every adapter that needs a new type parameter or a
// narrower stream constraint (Map, TryMap, VerifyMap, Value, Recognize,
// WithRecognized, SpanOf, WithSpan, AndThen, FlatMap, ParseTo, OutputInto)
// is a free function rather than a method; Verify and ErrInto are free
// functions as well. The handful that need nothing beyond the receiver's
// own type parameters (Void, Context, CompleteErr, ByRef) are kept as
// methods on Parser[I,O] for convenience.
type Parser[I Input, O any] func(in I) Outcome[O]

// Parse runs p against in. It is identical to calling p(in) directly.
func (p Parser[I, O]) Parse(in I) Outcome[O] { return p(in) }

// Void discards p's output, yielding struct{}{} on success.
func (p Parser[I, O]) Void() Parser[I, struct{}] {
	return func(in I) Outcome[struct{}] {
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, struct{}](o)
		}
		return Success(struct{}{})
	}
}

// Context attaches a (position, label) frame to the error of a failing
// outcome, leaving success and Incomplete outcomes untouched. The position
// recorded is where p itself started, not where the inner failure
// occurred, so nested Context labels read outside-in from outermost call
// to innermost.
func (p Parser[I, O]) Context(label string) Parser[I, O] {
	return func(in I) Outcome[O] {
		cp := in.Checkpoint()
		o := p(in)
		switch {
		case o.IsBacktrack():
			return BacktrackWith[O](o.Err().AppendContext(cp, label))
		case o.IsCut():
			return CutWith[O](o.Err().AppendContext(cp, label))
		default:
			return o
		}
	}
}

// CompleteErr converts an Incomplete outcome into a Backtrack with
// Kind=KindComplete, at the position p itself started from. Use it to
// assert that a stream, though typed as partial, will not actually be
// extended further.
func (p Parser[I, O]) CompleteErr() Parser[I, O] {
	return func(in I) Outcome[O] {
		cp := in.Checkpoint()
		o := p(in)
		if o.IsIncomplete() {
			return BacktrackWith[O](NewError(cp, KindComplete))
		}
		return o
	}
}

// ByRef returns a pointer to p, for call sites that want to pass a parser
// to a combinator without appearing to "consume" the original value. Go's
// garbage collector makes this a no-op in practice; it exists purely for
// call-site parity with ports from affine-typed sources.
func (p Parser[I, O]) ByRef() *Parser[I, O] { return &p }

// Map post-processes p's output with a total function f.
func Map[I Input, O, O2 any](p Parser[I, O], f func(O) O2) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, O2](o)
		}
		return Success(f(o.Value()))
	}
}

// TryMap post-processes p's output with a fallible function f. If f
// returns a non-nil error, TryMap backtracks, wrapping the external error
// at the position p itself started from.
func TryMap[I Input, O, O2 any](p Parser[I, O], f func(O) (O2, error)) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, O2](o)
		}
		v2, err := f(o.Value())
		if err != nil {
			return BacktrackWith[O2](NewExternalError(cp, KindVerify, err))
		}
		return Success(v2)
	}
}

// VerifyMap post-processes p's output with f; if f reports false,
// VerifyMap backtracks with KindVerify at the position p itself started
// from.
func VerifyMap[I Input, O, O2 any](p Parser[I, O], f func(O) (O2, bool)) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, O2](o)
		}
		v2, ok := f(o.Value())
		if !ok {
			return BacktrackWith[O2](NewError(cp, KindVerify))
		}
		return Success(v2)
	}
}

// Verify keeps p's output only if pred accepts it; otherwise it
// backtracks with KindVerify at the position p itself started from.
func Verify[I Input, O any](p Parser[I, O], pred func(O) bool) Parser[I, O] {
	return func(in I) Outcome[O] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return o
		}
		if !pred(o.Value()) {
			return BacktrackWith[O](NewError(cp, KindVerify))
		}
		return o
	}
}

// Value discards p's output and yields v on success.
func Value[I Input, O, V any](p Parser[I, O], v V) Parser[I, V] {
	return func(in I) Outcome[V] {
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, V](o)
		}
		return Success(v)
	}
}

// Recognized pairs a parser's output with the raw input it consumed.
type Recognized[O any] struct {
	Output O
	Raw    mem.RO
}

// recognizable is the constraint shared by Recognize and WithRecognized.
type recognizable interface {
	Input
	Recognizable
}

// Recognize discards p's output and yields the zero-copy slice of input it
// consumed.
func Recognize[I recognizable, O any](p Parser[I, O]) Parser[I, mem.RO] {
	return func(in I) Outcome[mem.RO] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, mem.RO](o)
		}
		return Success(in.RawSpan(cp, in.Checkpoint()))
	}
}

// WithRecognized runs p and yields both its output and the zero-copy
// slice of input it consumed.
func WithRecognized[I recognizable, O any](p Parser[I, O]) Parser[I, Recognized[O]] {
	return func(in I) Outcome[Recognized[O]] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, Recognized[O]](o)
		}
		return Success(Recognized[O]{Output: o.Value(), Raw: in.RawSpan(cp, in.Checkpoint())})
	}
}

// locatable is the constraint shared by SpanOf and WithSpan.
type locatable interface {
	Input
	Location
}

// SpanOf discards p's output and yields the [start, end) range of input it
// consumed.
func SpanOf[I locatable, O any](p Parser[I, O]) Parser[I, Span] {
	return func(in I) Outcome[Span] {
		start := in.Location()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, Span](o)
		}
		return Success(Span{Pos: start, End: in.Location()})
	}
}

// Spanned pairs a parser's output with the span of input it consumed.
type Spanned[O any] struct {
	Output O
	Span   Span
}

// WithSpan runs p and yields both its output and the span of input it
// consumed.
func WithSpan[I locatable, O any](p Parser[I, O]) Parser[I, Spanned[O]] {
	return func(in I) Outcome[Spanned[O]] {
		start := in.Location()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, Spanned[O]](o)
		}
		return Success(Spanned[O]{Output: o.Value(), Span: Span{Pos: start, End: in.Location()}})
	}
}

// AndThen feeds the value produced by p into mkInner to build a fresh,
// complete sub-stream, then runs inner on that sub-stream and returns its
// outcome; input that inner leaves unconsumed in the sub-stream is not
// reported. An Incomplete outcome from inner would mean inner expected more
// input than the (complete, self-contained) sub-stream could ever supply;
// that is a contradiction, so AndThen reports it as a Cut rather than
// propagating a semantically meaningless Incomplete.
func AndThen[I Input, O1 any, J Input, O2 any](p Parser[I, O1], mkInner func(O1) J, inner Parser[J, O2]) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O1, O2](o)
		}
		sub := mkInner(o.Value())
		io := inner(sub)
		if io.IsIncomplete() {
			return CutWith[O2](NewError(cp, KindSlice))
		}
		return io
	}
}

// FlatMap uses p's output to build another parser over the same stream
// type, then runs it against the remaining input.
func FlatMap[I Input, O, O2 any](p Parser[I, O], f func(O) Parser[I, O2]) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, O2](o)
		}
		return f(o.Value())(in)
	}
}

// ParseTo runs p, then attempts to interpret the raw input it consumed as
// O2 via conv (typically a strconv.Parse* wrapper, mirroring the teacher's
// own ast.Number.Float and its use of mem.ParseFloat). Failure to convert
// backtracks with KindVerify at the position p itself started from.
func ParseTo[I recognizable, O, O2 any](p Parser[I, O], conv func(mem.RO) (O2, error)) Parser[I, O2] {
	return func(in I) Outcome[O2] {
		cp := in.Checkpoint()
		o := p(in)
		if !o.IsSuccess() {
			return outcomeCast[O, O2](o)
		}
		raw := in.RawSpan(cp, in.Checkpoint())
		v, err := conv(raw)
		if err != nil {
			return BacktrackWith[O2](NewExternalError(cp, KindVerify, err))
		}
		return Success(v)
	}
}

// ErrInto attaches an external error (built by f from the failing Error)
// as the wrapped cause of a Backtrack/Cut outcome, keeping the original
// position and Kind. Because this package uses one concrete Error type
// rather than a type-parameterized one, ErrInto specializes the general
// notion of "convert the error type" to wrapping rather than replacing it
// — see DESIGN.md, "Error value genericity".
func ErrInto[I Input, O any](p Parser[I, O], f func(*Error) error) Parser[I, O] {
	return func(in I) Outcome[O] {
		o := p(in)
		switch {
		case o.IsBacktrack():
			return BacktrackWith[O](NewExternalError(o.Err().Pos, o.Err().Kind, f(o.Err())))
		case o.IsCut():
			return CutWith[O](NewExternalError(o.Err().Pos, o.Err().Kind, f(o.Err())))
		default:
			return o
		}
	}
}

// OutputInto converts p's output via a total conversion function. It is
// the common special case of Map where the conversion is a straightforward
// coercion rather than a computed transformation.
func OutputInto[I Input, O, O2 any](p Parser[I, O], f func(O) O2) Parser[I, O2] {
	return Map(p, f)
}
