// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Kind int holding an identifier for the Token classes.
	Kind int

	// Token is a classified, positioned unit of lexical input.
	//
	// Tokens are immutable once emitted; Line & Column are 1-based, with
	// Column counted from the most recent line start.
	Token struct {
		Kind Kind

		// Number holds the value of a KindNumber Token.
		Number int32
		// Boolean holds the value of a KindBoolean Token.
		Boolean bool
		// Char holds the value of a KindCharacter Token.
		Char byte

		Line   int
		Column int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               = iota // Consume 0 to start actual numbering at 1.
	KindNumber Kind = iota // Run of ASCII digits.
	KindBoolean            // `True` / `False`.
	KindCharacter          // Reserved; no recognizer produces this yet.
	KindCross              // '+'.
	KindDash               // '-'.
	KindStar               // '*'.
	KindSlash              // '/'.
	KindWhitespace         // Run of ' ', '\t', '\r', '\n'.
	KindOpenParen          // '('.
	KindCloseParen         // ')'.
	KindOpenBrace          // '{'.
	KindCloseBrace         // '}'.
	KindEqual              // '='.
	KindNotEqual           // "!=".
	KindDoubleEqual        // "==".
	KindLogicalAnd         // "&&".
	KindLogicalOr          // "||".
	KindNot                // '!'.
)

var kindNames = map[Kind]string{
	KindNumber:      "Number",
	KindBoolean:     "Boolean",
	KindCharacter:   "Character",
	KindCross:       "Cross",
	KindDash:        "Dash",
	KindStar:        "Star",
	KindSlash:       "Slash",
	KindWhitespace:  "Whitespace",
	KindOpenParen:   "OpenParen",
	KindCloseParen:  "CloseParen",
	KindOpenBrace:   "OpenBrace",
	KindCloseBrace:  "CloseBrace",
	KindEqual:       "Equal",
	KindNotEqual:    "NotEqual",
	KindDoubleEqual: "DoubleEqual",
	KindLogicalAnd:  "LogicalAnd",
	KindLogicalOr:   "LogicalOr",
	KindNot:         "Not",
}

// String obtains the Kind's name.
func (k Kind) String() (name string) {
	name, ok := kindNames[k]
	if !ok {
		name = fmt.Sprintf("Kind(%d)", int(k))
	}

	return
}

// String renders a Token as `Kind@line:column`, with the payload for
// KindNumber & KindBoolean Tokens.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("%s(%d)@%d:%d", t.Kind, t.Number, t.Line, t.Column)
	case KindBoolean:
		return fmt.Sprintf("%s(%t)@%d:%d", t.Kind, t.Boolean, t.Line, t.Column)
	default:
		return fmt.Sprintf("%s@%d:%d", t.Kind, t.Line, t.Column)
	}
}
