package main

import (
	"os"

	"github.com/miekg/dns"
)

// recordKey identifies one rdataset to check: owner name plus record type. Keys are
// immutable and compared as values.
type recordKey struct {
	name  string
	qType uint16
}

// loadZoneKeys parses the zone master file and returns the ordered sequence of record
// keys to compare. Multiple RRs sharing a name and type form one rdataset and
// therefore one key; first occurrence fixes its position in the sequence. $ORIGIN is
// honored by the parser, $INCLUDE is rejected.
//
// Any parse error is returned as-is from the zone parser, which embeds the file name
// and line number, and the caller treats it as fatal.
func loadZoneKeys(path string) ([]recordKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser := dns.NewZoneParser(f, "", path)
	parser.SetIncludeAllowed(false)
	parser.SetDefaultTTL(defaultZoneTTL) // ZoneParser needs this in case $TTL is absent

	var keys []recordKey
	seen := make(map[recordKey]bool)

	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		k := recordKey{name: dns.CanonicalName(rr.Header().Name), qType: rr.Header().Rrtype}
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}

	return keys, parser.Err() // Check for parser errors
}
