// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb_test

import (
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/leaves"
	"github.com/google/go-cmp/cmp"
)

// TestSeq3TupleSequence mirrors SPEC_FULL.md's tuple-sequence scenario:
// (be_u16, take(3), tag("fg")) driven over a partial byte stream.
func TestSeq3TupleSequence(t *testing.T) {
	type PB = *comb.PartialBytes[*comb.Bytes]
	p := comb.Seq3[PB](
		comb.Parser[PB, uint16](leaves.BEUint16[PB]),
		leaves.Take[PB](3),
		leaves.TagStr[PB]("fg"),
	)

	mk := func(s string) PB { return comb.NewPartialBytes(comb.NewBytes([]byte(s))) }

	if o := p(mk("abcdefgh")); !o.IsSuccess() {
		t.Fatalf("Seq3 on \"abcdefgh\" = %v, want success", o.Debug())
	} else {
		got := o.Value()
		want := comb.Tuple3[uint16, []byte, []byte]{A: 0x6162, B: []byte("cde"), C: []byte("fg")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Seq3 on \"abcdefgh\" (-want, +got)\n%s", diff)
		}
	}

	if o := p(mk("abcd")); !o.IsIncomplete() || o.Needed() != 1 {
		t.Fatalf("Seq3 on \"abcd\" = %v, want Incomplete(1)", o.Debug())
	}

	if o := p(mk("abcde")); !o.IsIncomplete() || o.Needed() != 2 {
		t.Fatalf("Seq3 on \"abcde\" = %v, want Incomplete(2)", o.Debug())
	}

	if o := p(mk("abcdejk")); !o.IsBacktrack() || o.Err().Kind != comb.KindTag {
		t.Fatalf("Seq3 on \"abcdejk\" = %v, want Backtrack/KindTag", o.Debug())
	}
}

func TestUnitAlwaysSucceedsWithoutConsuming(t *testing.T) {
	in := comb.NewBytes([]byte("anything"))
	cp := in.Checkpoint()
	o := comb.Unit[*comb.Bytes](in)
	if !o.IsSuccess() {
		t.Fatalf("Unit(in) = %v, want success", o.Debug())
	}
	if in.Checkpoint() != cp {
		t.Errorf("Unit consumed input: checkpoint moved from %d to %d", cp, in.Checkpoint())
	}
}
