package resolver

import (
	"context"
	"fmt"
	"net"

	"github.com/markdingo/dnsdiff/log"
)

// ServerAddress resolves a nameserver hostname to a dialable "address:port" string,
// exactly once per run. The first IPv4 address returned by the system resolver wins;
// IPv6 addresses are skipped as dnsdiff only queries over v4 (a stated limitation). A
// naked IP address is accepted as-is.
func ServerAddress(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", fmt.Errorf("nameserver %s: IPv6 addresses are not supported", host)
		}
		return net.JoinHostPort(host, "domain"), nil
	}

	res := &net.Resolver{}
	addrs, err := res.LookupIPAddr(ctx, host)
	if err != nil {
		return "", fmt.Errorf("nameserver %s did not resolve: %w", host, err)
	}

	for _, a := range addrs {
		if ip4 := a.IP.To4(); ip4 != nil {
			if log.IfDebug() {
				log.Debugf("nameserver %s resolved to %s", host, ip4.String())
			}
			return net.JoinHostPort(ip4.String(), "domain"), nil
		}
	}

	return "", fmt.Errorf("nameserver %s has no IPv4 address", host)
}
