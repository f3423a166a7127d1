// SPDX-License-Identifier: MIT
package lexer

import (
	"bytes"
	"math"
)

type (
	// Recognizer inspects the unconsumed remainder of a source buffer &
	// either reports no match, or a Token (position unset, filled in by
	// the driver) plus the byte length it consumes.
	Recognizer func(rest []byte) (tok Token, n int, ok bool)

	doubleEntry struct {
		lit  string
		kind Kind
	}
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var (
	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	// Two-byte operators; disjoint, so the order is free, but they must be
	// probed before the single-byte table or `==` splits into two `=`.
	doubles = []doubleEntry{
		{"==", KindDoubleEqual},
		{"!=", KindNotEqual},
		{"&&", KindLogicalAnd},
		{"||", KindLogicalOr},
	}

	singles = [256]Kind{
		'=': KindEqual,
		'+': KindCross,
		'-': KindDash,
		'*': KindStar,
		'/': KindSlash,
		'(': KindOpenParen,
		')': KindCloseParen,
		'{': KindOpenBrace,
		'}': KindCloseBrace,
		'!': KindNot,
	}

	// legacySingles reproduces the upstream wiring that emitted a closing
	// brace for '!'; retained for bit-for-bit compatibility behind
	// `WithLegacyNot`.
	legacySingles = func() (table [256]Kind) {
		table = singles
		table['!'] = KindCloseBrace
		return
	}()
)

const (
	boolTrue  = "True"
	boolFalse = "False"
)

// DefaultRecognizers obtains the recognizer chain in its priority order.
//
// The order is the only conflict resolution: maximal-munch families first,
// then two-byte operators, single-byte tokens & finally the boolean
// keywords. Reordering changes the language.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		MatchNumber,
		MatchWhitespace,
		MatchDouble,
		MatchSingle(singles),
		MatchBoolean,
	}
}

// LegacyRecognizers obtains the DefaultRecognizers chain with the upstream
// '!' -> KindCloseBrace wiring.
func LegacyRecognizers() []Recognizer {
	return []Recognizer{
		MatchNumber,
		MatchWhitespace,
		MatchDouble,
		MatchSingle(legacySingles),
		MatchBoolean,
	}
}

// MatchNumber recognizes the longest run of ASCII digits as a KindNumber
// Token.
//
// The value accumulates left-to-right in base 10, saturating at
// math.MaxInt32 rather than wrapping.
func MatchNumber(rest []byte) (tok Token, n int, ok bool) {
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return
	}

	value := int64(0)
	for _, b := range rest[:n] {
		value = value*10 + int64(b-'0')
		if value > math.MaxInt32 {
			value = math.MaxInt32
			break
		}
	}

	tok, ok = Token{Kind: KindNumber, Number: int32(value)}, true

	return
}

// MatchWhitespace recognizes the longest run of whitespace bytes as a
// KindWhitespace Token; the lexeme's text is not retained.
func MatchWhitespace(rest []byte) (tok Token, n int, ok bool) {
	for n < len(rest) && whitespace[rest[n]] {
		n++
	}
	if n == 0 {
		return
	}

	tok, ok = Token{Kind: KindWhitespace}, true

	return
}

// MatchDouble recognizes the two-byte operators `==`, `!=`, `&&` & `||`.
func MatchDouble(rest []byte) (tok Token, n int, ok bool) {
	if len(rest) < 2 {
		return
	}

	for _, entry := range doubles {
		if string(rest[:2]) != entry.lit {
			continue
		}

		tok, n, ok = Token{Kind: entry.kind}, 2, true
		return
	}

	return
}

// MatchSingle obtains a Recognizer for the single-byte tokens described by
// a lookup table.
func MatchSingle(table [256]Kind) Recognizer {
	return func(rest []byte) (tok Token, n int, ok bool) {
		if len(rest) < 1 {
			return
		}

		kind := table[rest[0]]
		if kind == 0 {
			return
		}

		tok, n, ok = Token{Kind: kind}, 1, true

		return
	}
}

// MatchBoolean recognizes the literal keywords `True` & `False`.
//
// The probe is not word-boundary aware; an eventual identifier family
// must be inserted before this Recognizer with a maximal-munch keyword
// table instead.
func MatchBoolean(rest []byte) (tok Token, n int, ok bool) {
	switch {
	case bytes.HasPrefix(rest, []byte(boolTrue)):
		tok, n, ok = Token{Kind: KindBoolean, Boolean: true}, len(boolTrue), true
	case bytes.HasPrefix(rest, []byte(boolFalse)):
		tok, n, ok = Token{Kind: KindBoolean, Boolean: false}, len(boolFalse), true
	}

	return
}
