package dnsutil

import (
	"testing"

	"github.com/miekg/dns"
)

func TestToString(t *testing.T) {
	if TypeToString(dns.TypeMX) != "MX" {
		t.Error("Expected MX, got", TypeToString(dns.TypeMX))
	}
	if TypeToString(65280) != "T-65280" { // Private use range is unnamed
		t.Error("Expected T-65280, got", TypeToString(65280))
	}
	if RcodeToString(dns.RcodeNameError) != "NXDOMAIN" {
		t.Error("Expected NXDOMAIN, got", RcodeToString(dns.RcodeNameError))
	}
	if RcodeToString(4095) != "r-4095" {
		t.Error("Expected r-4095, got", RcodeToString(4095))
	}
}
