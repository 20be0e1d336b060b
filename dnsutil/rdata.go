package dnsutil

import (
	"strings"

	"github.com/miekg/dns"
)

// RdataString returns just the rdata portion of the RR's presentation form, that is,
// the String() output with the "name TTL class type" header stripped off. Miekg does
// not offer a public function which renders the non-header part of an RR so we lean on
// the Stringer output and slice off the header's rendering. A bit of a hack, but it
// works.
//
// The header-free form is what the report prints and what comparisons run over: two
// servers legitimately differ in TTLs mid-transfer and a TTL delta is not a record
// change.
func RdataString(rr dns.RR) string {
	if rr == nil {
		return ""
	}
	hl := len(rr.Header().String())
	return rr.String()[hl:]
}

// RdataIsEqual returns true if the two RRs carry effectively identical rdata. Class,
// type and name must match exactly (names compared canonically) and the rdata portions
// must match case-insensitively. TTLs are ignored.
func RdataIsEqual(a, b dns.RR) bool {
	ah := a.Header()
	bh := b.Header()

	// Do the easy stuff first
	if ah.Class != bh.Class ||
		ah.Rrtype != bh.Rrtype ||
		dns.CanonicalName(ah.Name) != dns.CanonicalName(bh.Name) {
		return false
	}

	// Looking equal so far, how about the payload part?

	return strings.EqualFold(RdataString(a), RdataString(b))
}
