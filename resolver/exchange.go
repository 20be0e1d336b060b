package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsdiff/dnsutil"
)

// Exchanger issues exactly one DNS query to one server and returns the reply or an
// error. No retries, no TCP fallback, no truncation handling; all of that policy lives
// above this interface, in Querier. Implementations must be concurrency safe as the
// two per-record queries are issued in parallel.
type Exchanger interface {
	Exchange(ctx context.Context, q *dns.Msg, server string, timeout time.Duration) (*dns.Msg, error)
}

type udpExchanger struct {
	udpSize uint16
}

// NewExchanger returns the standard UDP Exchanger backed by the miekg/dns client.
func NewExchanger() *udpExchanger {
	return &udpExchanger{udpSize: dnsutil.MaxUDPSize}
}

func (t *udpExchanger) Exchange(ctx context.Context, q *dns.Msg, server string,
	timeout time.Duration) (*dns.Msg, error) {
	client := &dns.Client{Net: dnsutil.UDPNetwork, Timeout: timeout, UDPSize: t.udpSize}
	_, _, e := net.SplitHostPort(server) // Coerce a service onto the name if
	if e != nil {                        // it hasn't got one
		server = net.JoinHostPort(server, "domain")
	}

	r, _, err := client.ExchangeContext(ctx, q, server)

	return r, err
}
