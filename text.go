// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Text is a complete (non-streaming) text input: a mutable cursor over a
// fixed underlying string, addressed in bytes internally but peeked and
// advanced in units of runes.
type Text struct {
	buf string
	pos int // byte offset
}

// NewText constructs a complete Text stream over s.
func NewText(s string) *Text { return &Text{buf: s} }

func (t *Text) Checkpoint() int { return t.pos }
func (t *Text) Reset(c int)     { t.pos = c }
func (t *Text) IsPartial() bool { return false }
func (t *Text) Location() int { return t.pos }

func (t *Text) RawSpan(from, to int) mem.RO { return mem.S(t.buf[from:to]) }

func (t *Text) Remaining() int { return utf8.RuneCountInString(t.buf[t.pos:]) }

func (t *Text) PeekRune() (rune, bool) {
	if t.pos >= len(t.buf) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.buf[t.pos:])
	return r, true
}

// PeekString returns the next n runes (as a string) without consuming
// them. ok is false if fewer than n runes remain.
func (t *Text) PeekString(n int) (string, bool) {
	rest := t.buf[t.pos:]
	i := 0
	for count := 0; count < n; count++ {
		if i >= len(rest) {
			return "", false
		}
		_, sz := utf8.DecodeRuneInString(rest[i:])
		i += sz
	}
	return rest[:i], true
}

// Advance moves the cursor forward by n runes. If fewer than n runes
// remain, it advances to the end of the buffer.
func (t *Text) Advance(n int) {
	rest := t.buf[t.pos:]
	i := 0
	for count := 0; count < n; count++ {
		if i >= len(rest) {
			break
		}
		_, sz := utf8.DecodeRuneInString(rest[i:])
		i += sz
	}
	t.pos += i
}

// Compare never reports CompareIncomplete; see Bytes.Compare.
func (t *Text) Compare(pattern string) Comparison {
	n := utf8.RuneCountInString(pattern)
	s, ok := t.PeekString(n)
	if !ok {
		return Comparison{Result: CompareMismatch}
	}
	if s == pattern {
		return Comparison{Result: CompareOK, Len: n}
	}
	return Comparison{Result: CompareMismatch}
}

var _ TextStream = (*Text)(nil)

// PartialText is the rune-oriented analogue of PartialBytes.
type PartialText[S TextStream] struct {
	S
}

// NewPartialText wraps s as a partial text stream.
func NewPartialText[S TextStream](s S) *PartialText[S] { return &PartialText[S]{S: s} }

func (p *PartialText[S]) IsPartial() bool { return true }

func (p *PartialText[S]) Compare(pattern string) Comparison {
	n := utf8.RuneCountInString(pattern)
	s, ok := p.S.PeekString(n)
	if ok {
		if s == pattern {
			return Comparison{Result: CompareOK, Len: n}
		}
		return Comparison{Result: CompareMismatch}
	}
	got, _ := p.S.PeekString(p.S.Remaining())
	if !strings.HasPrefix(pattern, got) {
		return Comparison{Result: CompareMismatch}
	}
	return Comparison{Result: CompareIncomplete, Len: n - utf8.RuneCountInString(got)}
}

var _ TextStream = (*PartialText[*Text])(nil)
