package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/markdingo/dnsdiff/log"
	"github.com/markdingo/dnsdiff/report"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	dd := newDnsDiff(nil)
	switch dd.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Validate everything that is likely a typo or usage error
	err := dd.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	log.Majorf("%s %s starting: %s vs %s", programName, Version,
		dd.cfg.fromNS, dd.cfg.toNS)

	// Enumeration phase. A zone which doesn't parse stops the run before a single
	// query goes out.
	keys, err := loadZoneKeys(dd.cfg.zoneFile)
	if err != nil {
		fatal(err, "Zone file", dd.cfg.zoneFile, "failed to parse")
	}
	log.Minorf("Zone %s enumerated: %d record keys", dd.cfg.zoneFile, len(keys))

	// Each nameserver name resolves to exactly one address for the whole run
	err = dd.resolveNameServers(context.Background())
	if err != nil {
		fatal(err)
	}

	stream := report.NewStream(os.Stdout, log.Out(), dd.rcfg, dd.cfg.fromNS, dd.cfg.toNS)

	dd.Run(context.Background(), keys, stream)

	log.Majorf("%s %s exiting after %s: %s", programName, Version,
		time.Now().Sub(dd.startTime).Round(time.Second), dd.stats.String())
}
