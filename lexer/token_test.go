// SPDX-License-Identifier: NONE
package lexer

import "testing"

func TestToken_String(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{
			name: "number with payload",
			tok:  Token{Kind: KindNumber, Number: 12, Line: 1, Column: 2},
			want: "Number(12)@1:2",
		},
		{
			name: "boolean with payload",
			tok:  Token{Kind: KindBoolean, Boolean: true, Line: 2, Column: 1},
			want: "Boolean(true)@2:1",
		},
		{
			name: "operator",
			tok:  Token{Kind: KindDoubleEqual, Line: 1, Column: 3},
			want: "DoubleEqual@1:3",
		},
		{
			name: "unknown kind",
			tok:  Token{Kind: Kind(99), Line: 1, Column: 1},
			want: "Kind(99)@1:1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
