package report

import (
	"strings"
	"testing"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsdiff/compare"
	"github.com/markdingo/dnsdiff/mock"
)

func newTestStream(cfg Config) (*Stream, *mock.IOWriter, *mock.IOWriter) {
	out := &mock.IOWriter{}
	diag := &mock.IOWriter{}
	return NewStream(out, diag, cfg, "ns1", "ns2"), out, diag
}

func TestHeaderOnce(t *testing.T) {
	s, out, diag := newTestStream(Config{})

	// Match and BothFailed must not trigger the header

	s.Emit("example.com.", dns.TypeA, compare.Result{Kind: compare.Match})
	if out.Len() != 0 {
		t.Error("Match produced report output", out.String())
	}

	s.Emit("example.com.", dns.TypeA, compare.Result{Kind: compare.BothFailed})
	if out.Len() != 0 {
		t.Error("BothFailed produced report output", out.String())
	}

	s.Emit("example.com.", dns.TypeA,
		compare.Result{Kind: compare.Changed, Old: "1.2.3.4", New: "5.6.7.8"})
	s.Emit("mail.example.com.", dns.TypeA,
		compare.Result{Kind: compare.Removed, Old: "9.9.9.9"})

	exp := "--- ns1\n+++ ns2\n-1.2.3.4\n+5.6.7.8\n-9.9.9.9\n"
	if out.String() != exp {
		t.Errorf("Report got %q expect %q", out.String(), exp)
	}
	if strings.Count(out.String(), "--- ns1") != 1 {
		t.Error("Header emitted more than once", out.String())
	}

	// BothFailed writes one "no answer" line per server, to the diag side only
	exp = "ns1: no answer for example.com. A\nns2: no answer for example.com. A\n"
	if diag.String() != exp {
		t.Errorf("Diagnostics got %q expect %q", diag.String(), exp)
	}
}

func TestNoDivergenceNoHeader(t *testing.T) {
	s, out, diag := newTestStream(Config{})
	for i := 0; i < 5; i++ {
		s.Emit("example.com.", dns.TypeA, compare.Result{Kind: compare.Match})
	}
	if out.Len() != 0 || diag.Len() != 0 {
		t.Error("A run of matches must print nothing", out.String(), diag.String())
	}
}

func TestAddedBlock(t *testing.T) {
	s, out, _ := newTestStream(Config{})
	s.Emit("example.com.", dns.TypeA, compare.Result{Kind: compare.Added, New: "5.6.7.8"})
	exp := "--- ns1\n+++ ns2\n+5.6.7.8\n"
	if out.String() != exp {
		t.Errorf("Added got %q expect %q", out.String(), exp)
	}
	if strings.Contains(out.String(), "-5") {
		t.Error("Added must not produce a minus block")
	}
}

// A record value whose text spans multiple lines gets the prefix on every line.
func TestMultiLinePrefix(t *testing.T) {
	s, out, _ := newTestStream(Config{})
	s.Emit("example.com.", dns.TypeTXT, compare.Result{Kind: compare.Removed, Old: "a\nb"})
	exp := "--- ns1\n+++ ns2\n-a\n-b\n"
	if out.String() != exp {
		t.Errorf("Multi-line got %q expect %q", out.String(), exp)
	}
}

func TestColor(t *testing.T) {
	s, out, diag := newTestStream(Config{Color: true})
	s.Emit("example.com.", dns.TypeA,
		compare.Result{Kind: compare.Changed, Old: "1.2.3.4", New: "5.6.7.8"})
	s.Servfail("ns1", "example.com.", dns.TypeA)

	got := out.String()
	if !strings.Contains(got, ansiRed+"-1.2.3.4"+ansiReset) {
		t.Errorf("Missing red minus block in %q", got)
	}
	if !strings.Contains(got, ansiGreen+"+5.6.7.8"+ansiReset) {
		t.Errorf("Missing green plus block in %q", got)
	}
	if strings.Contains(got, ansiRed+"---") {
		t.Error("Header lines should not be colorized")
	}

	got = diag.String()
	if !strings.Contains(got, ansiCyan) || !strings.Contains(got, ansiReset) {
		t.Errorf("Diagnostics should be cyan when colorized, got %q", got)
	}
}

func TestServfail(t *testing.T) {
	s, out, diag := newTestStream(Config{})
	s.Servfail("ns1", "example.com.", dns.TypeMX)
	if out.Len() != 0 {
		t.Error("Servfail wrote to the report stream", out.String())
	}
	exp := "ns1: SERVFAIL for example.com. MX after retries\n"
	if diag.String() != exp {
		t.Errorf("Servfail got %q expect %q", diag.String(), exp)
	}
}
