// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb_test

import (
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/leaves"
)

func TestParseAllSuccess(t *testing.T) {
	v, err := comb.ParseAll[*comb.Bytes](leaves.TagStr[*comb.Bytes]("abcd"), comb.NewBytes([]byte("abcd")))
	if err != nil || string(v) != "abcd" {
		t.Fatalf("ParseAll(\"abcd\") = %q, %v; want \"abcd\", nil", v, err)
	}
}

func TestParseAllRejectsTrailingInput(t *testing.T) {
	_, err := comb.ParseAll[*comb.Bytes](leaves.TagStr[*comb.Bytes]("abcd"), comb.NewBytes([]byte("abcdxyz")))
	if err != comb.ErrTrailingInput {
		t.Fatalf("ParseAll with trailing input: err = %v, want ErrTrailingInput", err)
	}
}

func TestParseAllRejectsPartialStream(t *testing.T) {
	in := comb.NewPartialBytes(comb.NewBytes([]byte("abcd")))
	_, err := comb.ParseAll[*comb.PartialBytes[*comb.Bytes]](leaves.TagStr[*comb.PartialBytes[*comb.Bytes]]("abcd"), in)
	if err != comb.ErrPartialInput {
		t.Fatalf("ParseAll on a partial stream: err = %v, want ErrPartialInput", err)
	}
}

func TestParseAllSurfacesInnerError(t *testing.T) {
	_, err := comb.ParseAll[*comb.Bytes](leaves.TagStr[*comb.Bytes]("abcd"), comb.NewBytes([]byte("zzzz")))
	if err == nil {
		t.Fatal("ParseAll on a non-matching input returned a nil error")
	}
	ce, ok := err.(*comb.Error)
	if !ok || ce.Kind != comb.KindTag {
		t.Fatalf("ParseAll error = %v, want *comb.Error with KindTag", err)
	}
}

func TestParsePeekRestoresOnFailure(t *testing.T) {
	in := comb.NewBytes([]byte("zzzz"))
	cp := in.Checkpoint()

	rest, _, o := comb.ParsePeek[*comb.Bytes](leaves.TagStr[*comb.Bytes]("abcd"), in)
	if o.IsSuccess() {
		t.Fatal("ParsePeek unexpectedly succeeded")
	}
	if rest.Checkpoint() != cp {
		t.Errorf("ParsePeek did not restore the checkpoint on failure: got %d, want %d", rest.Checkpoint(), cp)
	}
}

func TestParsePeekAdvancesOnSuccess(t *testing.T) {
	in := comb.NewBytes([]byte("abcdxyz"))
	rest, v, o := comb.ParsePeek[*comb.Bytes](leaves.TagStr[*comb.Bytes]("abcd"), in)
	if !o.IsSuccess() || string(v) != "abcd" {
		t.Fatalf("ParsePeek(\"abcd\") = %q, %v; want success \"abcd\"", v, o.Debug())
	}
	if rest.Remaining() != 3 {
		t.Errorf("after ParsePeek success, Remaining() = %d, want 3", rest.Remaining())
	}
}
