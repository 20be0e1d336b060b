package compare

import (
	"testing"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsdiff/resolver"
)

func answered(t *testing.T, rrText ...string) resolver.Outcome {
	t.Helper()
	var ans []dns.RR
	for _, s := range rrText {
		rr, err := dns.NewRR(s)
		if err != nil {
			t.Fatal("Setup RR failed", s, err)
		}
		ans = append(ans, rr)
	}
	return resolver.Outcome{Kind: resolver.Answered, Answer: ans}
}

func TestOutcomes(t *testing.T) {
	a1 := answered(t, "example.com. 3600 IN A 1.2.3.4")
	a1TTL := answered(t, "example.com. 60 IN A 1.2.3.4") // Same rdata, different TTL
	a2 := answered(t, "example.com. 3600 IN A 5.6.7.8")
	failed := resolver.Outcome{Kind: resolver.ServerFailure}
	nothing := resolver.Outcome{Kind: resolver.NoAnswer}

	testCases := []struct {
		name     string
		from, to resolver.Outcome
		expect   Kind
		old, new string
	}{
		{"equal", a1, a1, Match, "", ""},
		{"equal modulo TTL", a1, a1TTL, Match, "", ""},
		{"changed", a1, a2, Changed, "1.2.3.4", "5.6.7.8"},
		{"removed on timeout", a1, failed, Removed, "1.2.3.4", ""},
		{"removed on nxdomain", a1, nothing, Removed, "1.2.3.4", ""},
		{"added", failed, a2, Added, "", "5.6.7.8"},
		{"both failed", failed, failed, BothFailed, "", ""},
		{"both empty", nothing, failed, BothFailed, "", ""},
	}

	for _, tc := range testCases {
		r := Outcomes(tc.from, tc.to)
		if r.Kind != tc.expect {
			t.Error(tc.name, "Kind got", r.Kind, "expect", tc.expect)
			continue
		}
		if r.Old != tc.old {
			t.Error(tc.name, "Old got", r.Old, "expect", tc.old)
		}
		if r.New != tc.new {
			t.Error(tc.name, "New got", r.New, "expect", tc.new)
		}
	}
}

// Only the first element of each answer set participates. Additional records under the
// same key are ignored by the comparison.
func TestOutcomesFirstElementOnly(t *testing.T) {
	from := answered(t, "example.com. IN A 1.2.3.4", "example.com. IN A 9.9.9.9")
	to := answered(t, "example.com. IN A 1.2.3.4", "example.com. IN A 8.8.8.8")

	r := Outcomes(from, to)
	if r.Kind != Match {
		t.Error("Trailing answer elements must not affect the result, got", r.Kind)
	}

	from = answered(t, "example.com. IN A 2.2.2.2", "example.com. IN A 1.1.1.1")
	to = answered(t, "example.com. IN A 3.3.3.3", "example.com. IN A 1.1.1.1")
	r = Outcomes(from, to)
	if r.Kind != Changed || r.Old != "2.2.2.2" || r.New != "3.3.3.3" {
		t.Error("First elements should drive the comparison, got", r.Kind, r.Old, r.New)
	}
}

func TestKindString(t *testing.T) {
	for k, exp := range map[Kind]string{
		Match: "Match", Changed: "Changed", Added: "Added",
		Removed: "Removed", BothFailed: "BothFailed",
	} {
		if k.String() != exp {
			t.Error("Kind string got", k.String(), "expect", exp)
		}
	}
}
