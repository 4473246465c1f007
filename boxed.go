// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

// AnyParser names the pattern of storing heterogeneous parsers sharing the
// same stream and output type in a slice or map. Since Parser[I,O] is
// already a plain function value rather than an interface, any Parser
// value already satisfies this directly — there is no separate boxing
// step the way a trait object would require. AnyParser exists only to
// give callers a documented name to reach for, mirroring the role the
// teacher's query.Query interface plays for heterogeneous traversal steps
// held in a []Query slice.
type AnyParser[I Input, O any] = Parser[I, O]
