// SPDX-License-Identifier: MIT
package lexer

import (
	"math"
	"reflect"
	"testing"
)

func TestMatchNumber(t *testing.T) {
	tests := []struct {
		name    string
		rest    string
		wantTok Token
		wantN   int
		wantOk  bool
	}{
		{
			name:    "single digit",
			rest:    "5",
			wantTok: Token{Kind: KindNumber, Number: 5},
			wantN:   1,
			wantOk:  true,
		},
		{
			name:    "maximal munch stops at non-digit",
			rest:    "123+4",
			wantTok: Token{Kind: KindNumber, Number: 123},
			wantN:   3,
			wantOk:  true,
		},
		{
			name:    "saturates past int32",
			rest:    "99999999999999999999",
			wantTok: Token{Kind: KindNumber, Number: math.MaxInt32},
			wantN:   20,
			wantOk:  true,
		},
		{name: "no digits", rest: "x1"},
		{name: "empty", rest: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTok, gotN, gotOk := MatchNumber([]byte(tt.rest))
			if gotOk != tt.wantOk || gotN != tt.wantN || !reflect.DeepEqual(gotTok, tt.wantTok) {
				t.Errorf("MatchNumber() = (%v, %v, %v), want (%v, %v, %v)",
					gotTok, gotN, gotOk, tt.wantTok, tt.wantN, tt.wantOk)
			}
		})
	}
}

func TestMatchWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		rest    string
		wantTok Token
		wantN   int
		wantOk  bool
	}{
		{
			name:    "mixed run",
			rest:    " \t\r\n1",
			wantTok: Token{Kind: KindWhitespace},
			wantN:   4,
			wantOk:  true,
		},
		{name: "no whitespace", rest: "1 "},
		{name: "empty", rest: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTok, gotN, gotOk := MatchWhitespace([]byte(tt.rest))
			if gotOk != tt.wantOk || gotN != tt.wantN || !reflect.DeepEqual(gotTok, tt.wantTok) {
				t.Errorf("MatchWhitespace() = (%v, %v, %v), want (%v, %v, %v)",
					gotTok, gotN, gotOk, tt.wantTok, tt.wantN, tt.wantOk)
			}
		})
	}
}

func TestMatchDouble(t *testing.T) {
	tests := []struct {
		name     string
		rest     string
		wantKind Kind
		wantOk   bool
	}{
		{name: "double equal", rest: "==", wantKind: KindDoubleEqual, wantOk: true},
		{name: "not equal", rest: "!=", wantKind: KindNotEqual, wantOk: true},
		{name: "logical and", rest: "&&1", wantKind: KindLogicalAnd, wantOk: true},
		{name: "logical or", rest: "||", wantKind: KindLogicalOr, wantOk: true},
		{name: "lone equal", rest: "=1"},
		{name: "too short", rest: "="},
		{name: "empty", rest: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTok, gotN, gotOk := MatchDouble([]byte(tt.rest))
			if gotOk != tt.wantOk {
				t.Fatalf("MatchDouble() ok = %v, want %v", gotOk, tt.wantOk)
			}
			if !gotOk {
				return
			}
			if gotTok.Kind != tt.wantKind || gotN != 2 {
				t.Errorf("MatchDouble() = (%v, %v), want (%v, 2)", gotTok.Kind, gotN, tt.wantKind)
			}
		})
	}
}

func TestMatchSingle(t *testing.T) {
	recognize := MatchSingle(singles)

	wantKinds := map[string]Kind{
		"=": KindEqual,
		"+": KindCross,
		"-": KindDash,
		"*": KindStar,
		"/": KindSlash,
		"(": KindOpenParen,
		")": KindCloseParen,
		"{": KindOpenBrace,
		"}": KindCloseBrace,
		"!": KindNot,
	}
	for rest, wantKind := range wantKinds {
		gotTok, gotN, gotOk := recognize([]byte(rest))
		if !gotOk || gotN != 1 || gotTok.Kind != wantKind {
			t.Errorf("MatchSingle()(%q) = (%v, %v, %v), want (%v, 1, true)",
				rest, gotTok.Kind, gotN, gotOk, wantKind)
		}
	}

	if _, _, gotOk := recognize([]byte("@")); gotOk {
		t.Error("MatchSingle()(\"@\") matched")
	}
	if _, _, gotOk := recognize(nil); gotOk {
		t.Error("MatchSingle()(nil) matched")
	}

	legacy := MatchSingle(legacySingles)
	if gotTok, _, _ := legacy([]byte("!")); gotTok.Kind != KindCloseBrace {
		t.Errorf("MatchSingle(legacySingles)(\"!\") = %v, want %v", gotTok.Kind, KindCloseBrace)
	}
}

func TestMatchBoolean(t *testing.T) {
	tests := []struct {
		name    string
		rest    string
		wantTok Token
		wantN   int
		wantOk  bool
	}{
		{
			name:    "true",
			rest:    "True",
			wantTok: Token{Kind: KindBoolean, Boolean: true},
			wantN:   4,
			wantOk:  true,
		},
		{
			name:    "false",
			rest:    "False",
			wantTok: Token{Kind: KindBoolean, Boolean: false},
			wantN:   5,
			wantOk:  true,
		},
		{
			// The probe is a literal prefix match, not word-boundary aware.
			name:    "shared prefix still matches",
			rest:    "Truest",
			wantTok: Token{Kind: KindBoolean, Boolean: true},
			wantN:   4,
			wantOk:  true,
		},
		{name: "lowercase", rest: "true"},
		{name: "empty", rest: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTok, gotN, gotOk := MatchBoolean([]byte(tt.rest))
			if gotOk != tt.wantOk || gotN != tt.wantN || !reflect.DeepEqual(gotTok, tt.wantTok) {
				t.Errorf("MatchBoolean() = (%v, %v, %v), want (%v, %v, %v)",
					gotTok, gotN, gotOk, tt.wantTok, tt.wantN, tt.wantOk)
			}
		})
	}
}
