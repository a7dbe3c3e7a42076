package runner

import (
	"context"
	"sync"

	"digital.vasic.fluent/pkg/bank"
)

// runParallel runs at most limit suites at a time. Each worker
// writes into its own slot, so results keep the input order.
// A suite still waiting for a slot when ctx ends runs anyway and
// reports itself cancelled without evaluating anything.
func runParallel(ctx context.Context, r *DefaultRunner, suites []*bank.Suite, limit int) []*SuiteResult {
	if limit <= 0 {
		limit = 1
	}
	if limit > len(suites) {
		limit = len(suites)
	}

	results := make([]*SuiteResult, len(suites))
	slots := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := range suites {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
			}
			results[i] = r.executeSuite(ctx, suites[i])
		}()
	}

	wg.Wait()
	return results
}
