package main

import (
	"math/rand"
	"time"

	"github.com/markdingo/dnsdiff/report"
	"github.com/markdingo/dnsdiff/resolver"
)

// dnsDiff is the carrier of the application state for one comparison run. Tests
// construct it with their own Querier; main passes nil to get the real thing.
type dnsDiff struct {
	cfg     *config
	rcfg    report.Config
	querier *resolver.Querier
	rnd     *rand.Rand

	startTime time.Time
	stats     runStats
}

func newDnsDiff(querier *resolver.Querier) *dnsDiff {
	if querier == nil {
		querier = resolver.NewQuerier(resolver.NewExchanger())
	}

	return &dnsDiff{
		cfg:       newConfig(),
		querier:   querier,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		startTime: time.Now(),
	}
}
