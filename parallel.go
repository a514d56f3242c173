package pedigree

import (
	"runtime"
	"sync"

	"github.com/carbocation/pfx"
)

// InferParallel computes the same marginals as Infer by sharding the
// hypothesis stream across worker goroutines. Every hypothesis's
// contribution is independent of every other, so each worker keeps a private
// accumulator and the partials are merged element-wise before a single
// normalization. Passing workers < 1 uses one worker per CPU.
func InferParallel(ped *Pedigree, tables ProbabilityTables, workers int) (Marginals, error) {
	if err := tables.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	hypotheses := make(chan *Hypothesis, workers)
	partials := make(chan Marginals, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			private := NewMarginals(ped)
			for h := range hypotheses {
				p, err := JointProbability(ped, tables, h)
				if err == nil {
					err = private.Accumulate(h, p)
				}
				if err != nil {
					errs <- pfx.Err(err)

					// Keep draining so the producer never blocks on a
					// channel nobody reads.
					for range hypotheses {
					}
					return
				}
			}

			partials <- private
		}()
	}

	hr := ped.NewHypothesisReader()
	for {
		h := hr.Read()
		if h == nil {
			break
		}
		hypotheses <- h
	}
	close(hypotheses)

	wg.Wait()
	close(partials)
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	if hr.Error() != nil {
		return nil, pfx.Err(hr.Error())
	}

	m := NewMarginals(ped)
	for partial := range partials {
		if err := m.Merge(partial); err != nil {
			return nil, pfx.Err(err)
		}
	}

	if err := m.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return m, nil
}
