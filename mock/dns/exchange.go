package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse describes what the mock server replies with for each query it
// receives. Ignore means drop the query on the floor so the client times out.
type ExchangeResponse struct {
	Ignore bool
	Rcode  int
	Answer []dns.RR

	QueryCount int // Times ExchangeServer served this ExchangeResponse
}

// Designed for single DNS exchanges, a dumb server which copies response values into
// the reply message. It never checks the input or anything like that.
type ExchangeServer struct {
	mu   sync.Mutex
	resp *ExchangeResponse
}

// Set a new response for the next query
func (t *ExchangeServer) SetResponse(r *ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = r
}

// Return the current response as set
func (t *ExchangeServer) GetResponse() *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resp
}

// Meets the interface definition for dns.Handler
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	resp := t.resp
	if resp == nil {
		t.mu.Unlock()
		panic("resp == nil in mock exchange server")
	}
	resp.QueryCount++
	t.mu.Unlock()

	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
