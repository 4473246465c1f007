// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb_test

import (
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/leaves"
)

// TestAlt3IncompleteScenario mirrors SPEC_FULL.md's alt/incomplete scenario:
// alt((tag("a"), tag("bc"), tag("def"))) over a partial byte stream.
func TestAlt3IncompleteScenario(t *testing.T) {
	type PB = *comb.PartialBytes[*comb.Bytes]
	p := comb.Alt3(
		leaves.TagStr[PB]("a"),
		leaves.TagStr[PB]("bc"),
		leaves.TagStr[PB]("def"),
	)
	mk := func(s string) PB { return comb.NewPartialBytes(comb.NewBytes([]byte(s))) }

	cases := []struct {
		in   string
		want string // "ok:<rest>:<out>", "incomplete:<needed>", or "backtrack"
	}{
		{"", "incomplete:1"},
		{"b", "incomplete:1"},
		{"bcd", "ok:d:bc"},
		{"cde", "backtrack"},
		{"de", "incomplete:1"},
		{"defg", "ok:g:def"},
	}

	for _, c := range cases {
		in := mk(c.in)
		o := p(in)
		switch {
		case c.want == "backtrack":
			// The top-level failure is tagged KindAlt (rule: alt synthesizes
			// an Alt-kind error wrapping the last branch's failure); the
			// wrapped cause is the last branch's own KindTag error.
			if !o.IsBacktrack() || o.Err().Kind != comb.KindAlt {
				t.Errorf("alt3 on %q = %v, want Backtrack/KindAlt", c.in, o.Debug())
			}
			inner, ok := o.Err().Unwrap().(*comb.Error)
			if !ok || inner.Kind != comb.KindTag {
				t.Errorf("alt3 on %q: wrapped cause = %+v, want KindTag", c.in, inner)
			}
		case len(c.want) > 11 && c.want[:11] == "incomplete:":
			if !o.IsIncomplete() {
				t.Errorf("alt3 on %q = %v, want Incomplete", c.in, o.Debug())
			}
		default:
			if !o.IsSuccess() {
				t.Errorf("alt3 on %q = %v, want success", c.in, o.Debug())
				continue
			}
			rest, ok := in.PeekBytes(in.Remaining())
			if !ok {
				t.Fatalf("PeekBytes(Remaining()) failed unexpectedly")
			}
			wantRest := c.want[3:4]
			wantOut := c.want[5:]
			if string(rest) != wantRest || string(o.Value()) != wantOut {
				t.Errorf("alt3 on %q = rest %q out %q, want rest %q out %q", c.in, rest, o.Value(), wantRest, wantOut)
			}
		}
	}
}

// TestPermutation3Scenario mirrors SPEC_FULL.md's permutation scenario (in
// turn grounded on _examples/original_source/src/branch/tests.rs's
// permutation_test): Permutation3(tag("abcd"), tag("efg"), tag("hi")) over
// a partial byte stream, in any order, plus its Backtrack and Incomplete
// edge cases.
func TestPermutation3Scenario(t *testing.T) {
	type PB = *comb.PartialBytes[*comb.Bytes]
	p := comb.Permutation3(
		leaves.TagStr[PB]("abcd"),
		leaves.TagStr[PB]("efg"),
		leaves.TagStr[PB]("hi"),
	)
	mk := func(s string) PB { return comb.NewPartialBytes(comb.NewBytes([]byte(s))) }

	// Every reordering of the three tags yields the same tuple, in
	// declaration order, with "jk" left unconsumed.
	for _, in := range []string{"abcdefghijk", "efgabcdhijk", "hiefgabcdjk"} {
		stream := mk(in)
		o := p(stream)
		if !o.IsSuccess() {
			t.Fatalf("permutation3 on %q = %v, want success", in, o.Debug())
		}
		got := o.Value()
		if string(got.A) != "abcd" || string(got.B) != "efg" || string(got.C) != "hi" {
			t.Errorf("permutation3 on %q = %+v, want {abcd,efg,hi} regardless of input order", in, got)
		}
		if rest, ok := stream.PeekBytes(stream.Remaining()); !ok || string(rest) != "jk" {
			t.Errorf("permutation3 on %q left rest %q, want \"jk\"", in, rest)
		}
	}

	// A later slot's mismatch, after an earlier one has already matched,
	// backtracks with the outer error tagged KindPermutation and the inner
	// (wrapped) cause tagged KindTag.
	bad := mk("efgxyzabcdefghi")
	o := p(bad)
	if !o.IsBacktrack() || o.Err().Kind != comb.KindPermutation {
		t.Fatalf("permutation3 on mismatched input = %v, want Backtrack/KindPermutation", o.Debug())
	}
	inner, ok := o.Err().Unwrap().(*comb.Error)
	if !ok || inner.Kind != comb.KindTag {
		t.Errorf("permutation3 on mismatched input: wrapped cause = %+v, want KindTag", inner)
	}

	// A short buffer that is still a viable prefix of a remaining slot
	// reports Incomplete rather than Backtrack, remembering the largest
	// Needed() seen across the round.
	short := p(mk("efgabc"))
	if !short.IsIncomplete() || short.Needed() != 1 {
		t.Fatalf("permutation3 on \"efgabc\" = %v, want Incomplete(1)", short.Debug())
	}
}

// TestUnitParserScenario mirrors SPEC_FULL.md's unit-parser scenario: unit
// succeeds on any input without consuming it.
func TestUnitParserScenario(t *testing.T) {
	for _, in := range []string{"", "abc", "123456"} {
		b := comb.NewBytes([]byte(in))
		cp := b.Checkpoint()
		o := comb.Unit[*comb.Bytes](b)
		if !o.IsSuccess() || o.Value() != (struct{}{}) {
			t.Errorf("Unit on %q = %v, want success", in, o.Debug())
		}
		if b.Checkpoint() != cp {
			t.Errorf("Unit on %q consumed input", in)
		}
	}
}
