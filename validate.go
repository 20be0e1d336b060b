package main

import (
	"context"
	"fmt"
	"net"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsdiff/resolver"
)

// Check everything that could likely be a typo or usage error. Mostly check in order
// presented by the flag package.
func (t *dnsDiff) ValidateCommandLineOptions() error {
	if t.rcfg.DelayMax < 0 {
		return fmt.Errorf("--delay-max %d must not be less than zero", t.rcfg.DelayMax)
	}

	if len(t.cfg.zoneFile) == 0 {
		return fmt.Errorf("Must supply --zonefile")
	}

	if len(t.cfg.fromNS) == 0 {
		return fmt.Errorf("Must supply --from-ns")
	}
	if len(t.cfg.toNS) == 0 {
		return fmt.Errorf("Must supply --to-ns")
	}

	for _, ns := range []string{t.cfg.fromNS, t.cfg.toNS} {
		if net.ParseIP(ns) != nil { // A naked address is always acceptable
			continue
		}
		if _, is := dns.IsDomainName(ns); !is {
			return fmt.Errorf("Invalid nameserver name: %s", ns)
		}
	}

	return nil
}

// resolveNameServers turns the two nameserver names into dialable addresses, exactly
// once per run. Failure here is fatal before any record query is issued.
func (t *dnsDiff) resolveNameServers(ctx context.Context) error {
	var err error
	t.cfg.fromAddr, err = resolver.ServerAddress(ctx, t.cfg.fromNS)
	if err != nil {
		return fmt.Errorf("--from-ns: %w", err)
	}

	t.cfg.toAddr, err = resolver.ServerAddress(ctx, t.cfg.toNS)
	if err != nil {
		return fmt.Errorf("--to-ns: %w", err)
	}

	return nil
}
