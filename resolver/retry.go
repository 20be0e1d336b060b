package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsdiff/dnsutil"
	"github.com/markdingo/dnsdiff/log"
)

const (
	defaultInitialTimeout = 2 * time.Second

	// Total attempts, not additional retries. The timeout doubles on each timed-out
	// attempt so a server which never answers costs 2+4+8 seconds before the
	// Querier gives up.
	defaultAttempts = 3
)

// Querier wraps an Exchanger with the bounded backoff policy. One call to Resolve
// produces exactly one definitive Outcome; intermediate timeouts never escape.
type Querier struct {
	exch           Exchanger
	initialTimeout time.Duration
	attempts       int
}

// NewQuerier creates a Querier with the standard timeout schedule of 2s, 4s, 8s.
func NewQuerier(exch Exchanger) *Querier {
	return &Querier{
		exch:           exch,
		initialTimeout: defaultInitialTimeout,
		attempts:       defaultAttempts,
	}
}

// SetInitialTimeout overrides the first attempt's timeout. Subsequent attempts still
// double it and the attempt count is unchanged. Exists so tests don't have to sit
// through the full 14 seconds of a dead server.
func (t *Querier) SetInitialTimeout(d time.Duration) {
	t.initialTimeout = d
}

// Resolve issues the query for qName/qType to server, retrying on timeout per the
// backoff schedule. The returned Outcome is definitive: Answered, NoAnswer or
// ServerFailure. A reply with a failure rcode is ServerFailure immediately, without
// burning the remaining attempts - the server spoke, it just refused.
func (t *Querier) Resolve(ctx context.Context, server, qName string, qType uint16) Outcome {
	q := new(dns.Msg)
	q.SetQuestion(dns.Fqdn(qName), qType)

	timeout := t.initialTimeout
	for attempt := 1; attempt <= t.attempts; attempt++ {
		if log.IfDebug() {
			log.Debugf("query %s %s to %s (attempt %d, timeout %s)",
				qName, dnsutil.TypeToString(qType), server, attempt, timeout)
		}

		r, err := t.exch.Exchange(ctx, q, server, timeout)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				timeout *= 2
				continue
			}
			if log.IfDebug() {
				log.Debugf("exchange with %s failed: %s", server, err.Error())
			}
			return Outcome{Kind: ServerFailure}
		}

		if log.IfDebug() {
			log.Debugf("reply from %s: %s Ans=%d",
				server, dnsutil.RcodeToString(r.Rcode), len(r.Answer))
		}

		switch {
		case r.Rcode == dns.RcodeSuccess && len(r.Answer) > 0:
			return Outcome{Kind: Answered, Answer: r.Answer}

		case r.Rcode == dns.RcodeSuccess, r.Rcode == dns.RcodeNameError:
			return Outcome{Kind: NoAnswer}
		}

		return Outcome{Kind: ServerFailure}
	}

	return Outcome{Kind: ServerFailure} // Every attempt timed out
}
