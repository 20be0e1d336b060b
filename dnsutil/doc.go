// Package dnsutil contains small helper functions layered on top of the miekg/dns
// package which are of use to multiple dnsdiff packages.
package dnsutil
