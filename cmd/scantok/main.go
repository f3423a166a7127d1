// SPDX-License-Identifier: MIT

// Demonstration scaffolding: lexes a hardcoded sample buffer & prints the
// token stream, or the failure, verbatim.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/scantok"
)

func main() {
	input := []byte("(11 + 12) \n* False - 123 {} || && ===")

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	scantok.SetLogger(logger)

	stream, err := scantok.Scan(context.Background(), input)
	if err != nil {
		fmt.Println(spew.Sdump(err))
		os.Exit(1)
	}

	spew.Dump(stream)
}
