// Package dns provides a trivial mock DNS server for exercising the resolver package
// and the end-to-end comparison loop against real sockets. The server replies with
// whatever ExchangeResponse the test has loaded, or deliberately stays silent to
// induce client timeouts.
package dns
