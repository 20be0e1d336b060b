package main

import (
	"context"
	"sync"
	"time"

	"github.com/markdingo/dnsdiff/compare"
	"github.com/markdingo/dnsdiff/report"
	"github.com/markdingo/dnsdiff/resolver"
)

// Run makes the single sequential pass over the record keys: resolve each key against
// both servers, classify, emit, pace, move on. A key is fully dealt with - retries and
// all - before the next key begins, so report ordering exactly mirrors enumeration
// order. The only concurrency is the pair of per-key queries, which are independent of
// each other and joined before comparison.
func (t *dnsDiff) Run(ctx context.Context, keys []recordKey, stream *report.Stream) {
	for _, key := range keys {
		from, to := t.resolvePair(ctx, key)

		if from.Kind == resolver.ServerFailure {
			stream.Servfail(t.cfg.fromNS, key.name, key.qType)
			t.stats.servfails++
		}
		if to.Kind == resolver.ServerFailure {
			stream.Servfail(t.cfg.toNS, key.name, key.qType)
			t.stats.servfails++
		}

		res := compare.Outcomes(from, to)
		stream.Emit(key.name, key.qType, res)
		t.stats.note(res.Kind)

		t.pace()
	}
}

// resolvePair issues the two per-server queries for one key concurrently and waits
// for both definitive outcomes.
func (t *dnsDiff) resolvePair(ctx context.Context, key recordKey) (from, to resolver.Outcome) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		from = t.querier.Resolve(ctx, t.cfg.fromAddr, key.name, key.qType)
	}()
	go func() {
		defer wg.Done()
		to = t.querier.Resolve(ctx, t.cfg.toAddr, key.name, key.qType)
	}()

	wg.Wait()

	return
}

// pace sleeps a whole number of seconds drawn uniformly from [0, delayMax] between
// record checks. It affects wall-clock pacing only, never ordering or results.
func (t *dnsDiff) pace() {
	if t.rcfg.DelayMax <= 0 {
		return
	}

	time.Sleep(time.Duration(t.rnd.Intn(t.rcfg.DelayMax+1)) * time.Second)
}
