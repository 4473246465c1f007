// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package comb implements the core of a parser-combinator library: parsers
// compose over byte and text streams, complete or partial, through a
// three-valued outcome protocol (success, backtrack, cut, incomplete).
//
// # Streams
//
// A stream is a mutable cursor into an underlying byte or text buffer.
// Bytes and Text are complete streams; PartialBytes and PartialText wrap a
// complete stream of the matching token kind so that reads which would
// otherwise fail purely for lack of buffered data report Incomplete
// instead, as a streaming/chunked caller expects.
//
// # Parsers
//
// A Parser[I,O] is a plain function from a stream I to an Outcome[O]. Since
// Go methods cannot introduce type parameters beyond their receiver's, most
// adapters (Map, TryMap, Verify, Recognize, SpanOf, AndThen, FlatMap, ...)
// are free functions rather than methods; a handful that need no type
// parameters beyond the receiver's own (Void, Context, CompleteErr, ByRef)
// are methods on Parser[I,O] itself.
//
// # Choice
//
// Alt2..Alt6 try each alternative in turn at the same starting position,
// short-circuiting on Cut or Incomplete and backtracking through the rest
// on an ordinary failure. Permutation2..Permutation5 accept any order of a
// fixed set of parsers, each matching exactly once, and always return their
// outputs in declaration order.
//
// # Drivers
//
// ParseAll runs a parser and requires it to consume the entire (complete)
// input. ParsePeek runs a parser and returns the advanced stream alongside
// its output on success, restoring the stream on failure.
//
// Concrete leaf parsers (tag, take, numeric decoders, character classes)
// and higher-level combinators (repetition, delimited sequences) are
// deliberately out of scope for this package; see internal/leaves for the
// minimal fixtures this package's own tests run against.
package comb
