package main

import (
	"fmt"
	"runtime/debug"

	"github.com/markdingo/dnsdiff/log"
)

const (
	programName = "dnsdiff"

	defaultProjectURL = "https://github.com/markdingo/dnsdiff"

	defaultZoneTTL = uint32(3600) // ZoneParser needs a default in case $TTL is absent
)

// config defines the settings used by dnsdiff for one comparison run. It is populated
// by parseOptions, checked by ValidateCommandLineOptions and never modified after
// that, so it can be shared without lock protections. Presentation and pacing
// settings ("-c" and "-d") live in report.Config, held by dnsDiff, so they can be
// handed to the report stream and the pacer as one immutable value.
type config struct {
	projectURL string

	zoneFile string
	fromNS   string // Display names as given on the command line
	toNS     string

	fromAddr string // Resolved once at startup, never per record
	toAddr   string
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program: %s %s (%s)\n", programName, Version, ReleaseDate)
	fmt.Fprintf(log.Out(), "Project: %s\n", t.projectURL)
}
