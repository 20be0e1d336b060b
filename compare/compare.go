package compare

import (
	"strings"

	"github.com/markdingo/dnsdiff/dnsutil"
	"github.com/markdingo/dnsdiff/resolver"
)

// Kind classifies what happened to one record between the two servers.
type Kind int

const (
	Match      Kind = iota
	Changed         // Both answered with different values
	Added           // Only the to-server answered
	Removed         // Only the from-server answered
	BothFailed      // Neither server produced an answer
)

func (t Kind) String() string {
	switch t {
	case Match:
		return "Match"
	case Changed:
		return "Changed"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	}

	return "BothFailed"
}

// Result carries the classification plus the rdata presentation forms the report
// prints. Old is the from-server's value, New the to-server's; each is only populated
// when the Kind says so.
type Result struct {
	Kind Kind
	Old  string
	New  string
}

// Outcomes classifies the pair of definitive outcomes for one record key. Both
// outcomes must be post-retry; this function never sees an in-flight timeout.
//
// Only the first element of each answer set participates. A server returning multiple
// RRs under one key has everything past the first ignored, which mirrors the
// comparison the tool has always performed and is a documented limitation rather than
// an oversight.
func Outcomes(from, to resolver.Outcome) Result {
	fromOK := from.HasAnswer()
	toOK := to.HasAnswer()

	switch {
	case fromOK && toOK:
		oldText := dnsutil.RdataString(from.First())
		newText := dnsutil.RdataString(to.First())
		if strings.EqualFold(oldText, newText) {
			return Result{Kind: Match}
		}
		return Result{Kind: Changed, Old: oldText, New: newText}

	case fromOK:
		return Result{Kind: Removed, Old: dnsutil.RdataString(from.First())}

	case toOK:
		return Result{Kind: Added, New: dnsutil.RdataString(to.First())}
	}

	return Result{Kind: BothFailed}
}
