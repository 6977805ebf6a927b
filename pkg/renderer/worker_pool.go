package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScanlinePool renders scanlines on a fixed number of workers
type ScanlinePool struct {
	numWorkers int
}

// NewScanlinePool creates a pool with the specified number of workers
func NewScanlinePool(numWorkers int) *ScanlinePool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &ScanlinePool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (p *ScanlinePool) GetNumWorkers() int {
	return p.numWorkers
}

// Run calls renderRow once for every row in [0, rows). Rows are handed out
// in order but may finish in any order, so renderRow must only write state
// owned by its row. Cancelling ctx stops handing out rows.
func (p *ScanlinePool) Run(ctx context.Context, rows int, renderRow func(row int)) error {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan int)

	g.Go(func() error {
		defer close(tasks)
		for row := 0; row < rows; row++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tasks <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < p.numWorkers; i++ {
		g.Go(func() error {
			for row := range tasks {
				renderRow(row)
			}
			return nil
		})
	}

	return g.Wait()
}
