package dnsutil

import (
	"fmt"

	"github.com/miekg/dns"
)

// TypeToString converts an miekg type to a string, but if the resulting string is empty
// it's replaced with the numeric value.
func TypeToString(t uint16) (s string) {
	s = dns.TypeToString[t]
	if len(s) == 0 {
		s = fmt.Sprintf("T-%d", t)
	}

	return
}

// RcodeToString converts an miekg rcode to a string, but if the resulting string is
// empty it's replaced with the numeric value.
func RcodeToString(r int) (s string) {
	s = dns.RcodeToString[r]
	if len(s) == 0 {
		s = fmt.Sprintf("r-%d", r)
	}

	return
}
