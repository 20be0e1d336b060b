/*
Package resolver provides the DNS query side of dnsdiff: a minimal Exchanger interface
over the miekg/dns UDP client plus the Querier retry policy which turns individual
query attempts into a single definitive Outcome per (server, name, type).

The sole reason Exchanger exists as an interface is so the network can be mocked for
testing purposes. Everything else in this package is plain code.
*/
package resolver
