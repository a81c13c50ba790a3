package rt

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentProducersDoNotCorruptGenerations fans out allocation across
// multiple goroutines the way internal/packagemanager/manager.go fans
// dependency resolution out across an errgroup, then verifies every
// produced handle is still independently releasable without a double-free
// or a panic from the collector's internal bookkeeping.
func TestConcurrentProducersDoNotCorruptGenerations(t *testing.T) {
	const (
		producers   = 8
		perProducer = 500
	)

	results := make([][]Ref[*node], producers)

	var g errgroup.Group

	for p := 0; p < producers; p++ {
		p := p

		results[p] = make([]Ref[*node], perProducer)

		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				results[p][i] = newTestNode("stress")
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error from producer group: %v", err)
	}

	for _, batch := range results {
		for _, r := range batch {
			r2 := r
			r2.Release()
		}
	}

	GlobalCollector().ForceCollect(false)
}
