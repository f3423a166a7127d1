// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts a source byte buffer into a stream of positioned
	// Tokens.
	//
	// The source is borrowed for the scan's duration & never mutated; the
	// cursor only moves forward. A Lexer is not safe for concurrent use,
	// it expects exactly one driver at a time.
	Lexer struct {
		logger logrus.FieldLogger
		debug  bool

		// recognizers are attempted in slice order each step; the first
		// match is accepted unconditionally.
		recognizers []Recognizer

		// source is the input buffer.
		source []byte
		cur    cursor

		// c is a channel for communicating lexed Items.
		c chan Item
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)

	// ItemID int holding an identifier for the streamed Items.
	ItemID int

	// Item is the streaming transport for a lexed Token or a terminal
	// condition.
	Item struct {
		Err error
		Tok Token
		ID  ItemID
	}

	// LexError reports the position of the first byte no Recognizer could
	// consume. It is terminal; no partial token stream accompanies it.
	LexError struct {
		Line   int
		Column int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                = iota // Consume 0 to start actual numbering at 1.
	ItemError ItemID = iota // Notify occurrence of an `error`.
	ItemEOF                 // End of the source buffer.
	ItemToken               // A lexed Token.
)

const defBufferSize = 10

// Lexing errors.
var ErrUnrecognizedToken = errors.New("unrecognized token")

// Error renders the LexError with its 1-based position.
func (e *LexError) Error() string {
	return fmt.Sprintf("%v at %d:%d", ErrUnrecognizedToken, e.Line, e.Column)
}

// Unwrap exposes ErrUnrecognizedToken to errors.Is.
func (e *LexError) Unwrap() error { return ErrUnrecognizedToken }

// New creates a new Lexer for the source buffer.
func New(source []byte, opts ...Option) *Lexer {
	l := &Lexer{
		logger:      logrus.New(),
		recognizers: DefaultRecognizers(),

		source: source,
		cur:    newCursor(),

		c: make(chan Item, defBufferSize),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithRecognizers configures the recognizer chain, replacing the default
// priority order.
func WithRecognizers(recognizers []Recognizer) Option {
	return func(l *Lexer) { l.recognizers = recognizers }
}

// WithLegacyNot configures the upstream '!' -> KindCloseBrace wiring.
func WithLegacyNot(legacy bool) Option {
	return func(l *Lexer) {
		if legacy {
			l.recognizers = LegacyRecognizers()
		}
	}
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Scan drives the recognizer chain over the whole source buffer.
//
// On success it obtains the complete Token stream, whitespace included; an
// empty buffer yields an empty stream. The first unmatched byte aborts the
// scan with a positioned *LexError & no partial stream. Scan resets the
// cursor first; re-scanning yields an identical stream.
func (l *Lexer) Scan() (stream []Token, err error) {
	l.cur = newCursor()
	stream = make([]Token, 0, len(l.source)/2)

	for l.cur.offset < len(l.source) {
		tok, ok := l.step()
		if !ok {
			stream = nil
			err = &LexError{Line: l.cur.line, Column: l.cur.column}

			return
		}

		stream = append(stream, tok)
	}

	return
}

// step attempts the recognizer chain at the cursor, consuming one lexeme.
func (l *Lexer) step() (tok Token, ok bool) {
	rest := l.source[l.cur.offset:]

	for _, recognize := range l.recognizers {
		var n int
		if tok, n, ok = recognize(rest); !ok {
			continue
		}

		// Tokens carry the position of their first byte.
		tok.Line, tok.Column = l.cur.line, l.cur.column
		l.cur.advance(l.source, n)

		if l.debug {
			l.logger.Debug("lexer emit: ", spew.Sprint(tok))
		}

		return
	}

	return
}

// Lex lexes the source onto the Lexer's Item channel, closing it when the
// scan terminates.
//
// The scan itself is sequential; the channel only transports results to
// the driver, mirroring Scan's Token stream with a trailing ItemEOF, or an
// ItemError in place of the failure.
func (l *Lexer) Lex(ctx context.Context) {
	l.cur = newCursor()

	for l.cur.offset < len(l.source) {
		select {
		case <-ctx.Done():
			l.EmitError(ctx.Err())
			close(l.c)

			return
		default:
		}

		tok, ok := l.step()
		if !ok {
			l.EmitError(&LexError{Line: l.cur.line, Column: l.cur.column})
			close(l.c)

			return
		}

		l.c <- Item{ID: ItemToken, Tok: tok}
	}

	l.c <- Item{ID: ItemEOF}
	close(l.c)
}

// EmitError sends an error over the `Lexer`'s channel.
//
// This terminates the scan process.
func (l *Lexer) EmitError(err error) {
	l.c <- Item{ID: ItemError, Err: err}
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}
