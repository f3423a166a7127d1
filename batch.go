// SPDX-License-Identifier: MIT
package scantok

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/scantok/lexer"
)

// Batch scanning errors.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrScanBatch          = errors.New("failed to scan batch")
)

// ScanBatch tokenizes independent source buffers concurrently on a shared
// goroutine pool.
//
// Each buffer gets its own Lexer; an individual scan stays sequential.
// Streams are returned in source order. On failure the first error in
// source order is returned & the streams are invalidated.
func ScanBatch(ctx context.Context, sources [][]byte, workers int, opts ...lexer.Option) (streams [][]lexer.Token, err error) {
	if workers < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
		return
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrScanBatch, err)
		return
	}
	defer pool.Release()

	streams = make([][]lexer.Token, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for index := range sources {
		index := index

		wg.Add(1)
		if sErr := pool.Submit(func() {
			defer wg.Done()
			streams[index], errs[index] = Scan(ctx, sources[index], opts...)
		}); sErr != nil {
			wg.Done()
			errs[index] = fmt.Errorf("%w: %v", ErrScanBatch, sErr)
		}
	}
	wg.Wait()

	if index := slices.IndexFunc(errs, func(e error) bool { return e != nil }); index >= 0 {
		fLogger.Debugf("batch scan failed for source %d: %v", index, errs[index])
		streams, err = nil, errs[index]
	}

	return
}
