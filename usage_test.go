package main

import (
	"strings"
	"testing"

	"github.com/markdingo/dnsdiff/log"
	"github.com/markdingo/dnsdiff/mock"
)

func TestParseVersionFlag(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	for _, args := range [][]string{
		{programName, "-V"},
		{programName, "--version"},
	} {
		out.Reset()
		dd := newDnsDiff(nil)
		if pr := dd.parseOptions(args); pr != parseStop {
			t.Error(args[1], "expected parseStop, got", pr)
		}
		if !strings.Contains(out.String(), programName) ||
			!strings.Contains(out.String(), Version) {
			t.Error("Version output missing program or version", out.String())
		}
	}
}

func TestParseHelpFlag(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	dd := newDnsDiff(nil)
	if pr := dd.parseOptions([]string{programName, "-h"}); pr != parseStop {
		t.Error("Expected parseStop for -h, got", pr)
	}
	for _, section := range []string{"NAME", "SYNOPSIS", "OPTIONS", "EXIT STATUS"} {
		if !strings.Contains(out.String(), section) {
			t.Error("Usage output missing section", section)
		}
	}
}

func TestParseGoodOptions(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	dd := newDnsDiff(nil)
	pr := dd.parseOptions([]string{programName,
		"-c", "-d", "3", "-f", "example.com.zone",
		"--from-ns", "ns1.example.com", "--to-ns", "ns2.example.com"})
	if pr != parseContinue {
		t.Fatal("Expected parseContinue, got", pr, out.String())
	}
	if !dd.rcfg.Color {
		t.Error("-c not transferred to config")
	}
	if dd.rcfg.DelayMax != 3 {
		t.Error("-d not transferred to config, got", dd.rcfg.DelayMax)
	}
	if dd.cfg.zoneFile != "example.com.zone" {
		t.Error("-f not transferred to config, got", dd.cfg.zoneFile)
	}
	if dd.cfg.fromNS != "ns1.example.com" || dd.cfg.toNS != "ns2.example.com" {
		t.Error("Nameservers not transferred", dd.cfg.fromNS, dd.cfg.toNS)
	}
}

func TestParseErrors(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	testCases := []struct {
		name string
		args []string
	}{
		{"unknown option", []string{programName, "--bogus"}},
		{"duplicate option", []string{programName, "-f", "a.zone", "-f", "b.zone"}},
		{"goop", []string{programName, "-c", "leftovers"}},
		{"bad int", []string{programName, "-d", "lots"}},
	}

	for _, tc := range testCases {
		out.Reset()
		dd := newDnsDiff(nil)
		if pr := dd.parseOptions(tc.args); pr != parseFailed {
			t.Error(tc.name, "expected parseFailed, got", pr)
		}
		if out.Len() == 0 {
			t.Error(tc.name, "expected an error message")
		}
	}
}
