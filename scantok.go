// SPDX-License-Identifier: MIT

// Package scantok converts raw source text buffers into ordered streams
// of classified, positioned lexical tokens.
//
// The recognition rules live in the lexer subpackage; this package wires
// them with the shared logger & a pooled batch entry point.
package scantok

import (
	"context"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/scantok/lexer"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Scan tokenizes a single source buffer.
//
// Scanning is a pure function of the source bytes; repeat calls obtain
// identical streams.
func Scan(ctx context.Context, source []byte, opts ...lexer.Option) (stream []lexer.Token, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		opts = append([]lexer.Option{lexer.WithLogger(fLogger)}, opts...)
		return lexer.New(source, opts...).Scan()
	}
}
