package reconcile

import (
	"context"
	"errors"

	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

// Source identifies which backend produced a read result.
type Source string

const (
	SourceStore  Source = "store"
	SourceLedger Source = "ledger"
	SourceMock   Source = "mock"
	SourceNone   Source = "none"
)

// ErrNoData is returned when every source in the chain failed or came back
// empty.
var ErrNoData = errors.New("reconcile: no source yielded data")

// Result carries a read outcome together with the source that produced it.
type Result[T any] struct {
	Data   T
	Source Source
	Err    error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// step is one entry of the fallback chain. run reports (data, nonEmpty, err);
// an error or an empty result moves evaluation to the next step.
type step[T any] struct {
	source Source
	run    func(ctx context.Context) (T, bool, error)
}

// resolve evaluates steps strictly in order and short-circuits on the first
// non-empty success. Sources are never merged.
func resolve[T any](ctx context.Context, what string, steps []step[T]) Result[T] {
	var lastErr error
	for _, s := range steps {
		data, nonEmpty, err := s.run(ctx)
		if err != nil {
			logger.Debug("Source %s failed for %s: %v", s.source, what, err)
			lastErr = err
			continue
		}
		if !nonEmpty {
			continue
		}
		return Result[T]{Data: data, Source: s.source}
	}
	if lastErr == nil {
		lastErr = ErrNoData
	}
	var zero T
	return Result[T]{Data: zero, Source: SourceNone, Err: lastErr}
}
