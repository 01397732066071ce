// Package batch sorts many independent slices with one sorter on a bounded
// worker pool. Each slice is handed to exactly one worker.
package batch

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kabu1204/go-sorter/sorter"
)

var ErrNilSorter = errors.New("batch: nil sorter")

type config struct {
	workers int
	logger  log.FieldLogger
}

type Option func(*config)

// WithWorkers bounds the number of slices sorted at once. Values below one
// are raised to one.
func WithWorkers(n int) Option { return func(c *config) { c.workers = max(n, 1) } }

func WithLogger(l log.FieldLogger) Option { return func(c *config) { c.logger = l } }

func newConfig(opts ...Option) *config {
	c := &config{
		workers: runtime.GOMAXPROCS(0),
		logger:  log.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Sort sorts every slice of seqs in place with s and waits for all of them.
// The slices must not overlap. If a slice cannot be scheduled the error is
// returned once the slices already scheduled are done; the remaining slices
// are left untouched. A panic while sorting a slice, such as one raised by the
// sorter's comparator, is recovered and the first one is returned as an error
// after every scheduled slice is done.
func Sort[T any](s sorter.Sorter[T], seqs [][]T, opts ...Option) error {
	if s == nil {
		return ErrNilSorter
	}
	c := newConfig(opts...)
	logger := c.logger.WithFields(log.Fields{
		"workers":   c.workers,
		"sequences": len(seqs),
	})
	if len(seqs) == 0 {
		return nil
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		logger.WithError(err).Error("failed to create worker pool")
		return errors.Wrap(err, "batch: create worker pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, seq := range seqs {
		i, seq := i, seq
		wg.Add(1)
		f := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.WithField("index", i).WithField("panic", r).Error("failed to sort sequence")
					mu.Lock()
					if firstErr == nil {
						firstErr = errors.Errorf("batch: sort sequence %d: %v", i, r)
					}
					mu.Unlock()
				}
			}()
			s.Sort(seq)
		}
		if err := pool.Submit(f); err != nil {
			wg.Done()
			wg.Wait()
			logger.WithField("index", i).WithError(err).Error("failed to submit sequence")
			return errors.Wrapf(err, "batch: submit sequence %d", i)
		}
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	logger.Debug("sorted sequences")
	return nil
}
