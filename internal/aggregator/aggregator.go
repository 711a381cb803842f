package aggregator

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/dwarvesf/satscope-backend/internal/upstream"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type Policy int

const (
	// Required sources are all-or-nothing: any failure aborts the whole join.
	Required Policy = iota
	// Optional sources isolate upstream failures: the source's OnSkip hook
	// installs a default and the join proceeds. Only *upstream.Error is
	// swallowed; a normalization failure on an optional source still aborts,
	// since a malformed response is a harder failure than an absent one.
	Optional
)

// Source is one named fetch-and-normalize operation. Run writes its result
// into caller-owned variables, which keeps results typed and in declaration
// order without any reflection.
type Source struct {
	Name   string
	Policy Policy
	Run    func() error
	OnSkip func()
}

type Aggregator struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Join launches every source concurrently and waits for all of them to
// settle. Errors are examined in declaration order, independent of settle
// order, so the surfaced failure is deterministic. A Required failure is
// returned verbatim; no partial state is rolled back — the caller discards
// its variables on error.
func (a *Aggregator) Join(sources ...Source) error {
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = sources[i].Run()
		}(i)
	}
	wg.Wait()

	for i, src := range sources {
		err := errs[i]
		if err == nil {
			continue
		}

		var upErr *upstream.Error
		if src.Policy == Optional && errors.As(err, &upErr) {
			a.logger.Info("[Join] optional source failed, using default", map[string]string{
				"source": src.Name,
				"error":  err.Error(),
			})
			if src.OnSkip != nil {
				src.OnSkip()
			}
			continue
		}

		return err
	}

	return nil
}
