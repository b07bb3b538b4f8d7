// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Operands is a single input to an adder.
//
type Operands struct {
	A, B Bits
	Cin  bool
}

// EvaluateBatch evaluates n on every element of ops and returns the results in
// the same order.
//
// workers is the number of goroutines used. If less or equal to 0, the value
// of GOMAXPROCS will be used.
//
// All operands are checked before evaluation starts: on error, no result is
// returned.
//
func EvaluateBatch(n Network, ops []Operands, workers int) ([]Result, error) {
	if isNil(n) {
		return nil, errors.WithStack(ErrNilNetwork)
	}
	for i := range ops {
		if err := checkOperands(n, ops[i].A, ops[i].B); err != nil {
			return nil, errors.Wrapf(err, "operands #%d", i)
		}
	}
	if len(ops) == 0 {
		return nil, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers == 0 {
		workers = 1
	}
	size := len(ops) / workers
	if size*workers < len(ops) {
		size++
	}
	T().Debugf("hwadd: batch of %d on %s: %d workers, %d per worker", len(ops), n, workers, size)

	res := make([]Result, len(ops))
	// one backing array for all sums
	w := n.Width()
	sums := make(Bits, len(ops)*w)

	var wg sync.WaitGroup
	for start := 0; start < len(ops); start += size {
		end := start + size
		if end > len(ops) {
			end = len(ops)
		}
		wg.Add(1)
		go func(start, end int) {
			for i := start; i < end; i++ {
				o := &ops[i]
				sum := sums[i*w : (i+1)*w : (i+1)*w]
				res[i] = Result{Sum: sum, Cout: eval(n, o.A, o.B, o.Cin, sum)}
			}
			wg.Done()
		}(start, end)
	}
	wg.Wait()
	return res, nil
}
