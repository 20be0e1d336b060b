package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/dnsdiff/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// Parsing command line options is an, er, interesting process as there is very little
// control over the formatting and output that the various "flags" packages offer. The
// usage output has been formatted to fit within a 100 column terminal and pflag is
// asked to reject duplicate options itself since it otherwise silently accepts the
// ambiguity.
func (t *dnsDiff) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "V", false, "Print program name and version")

	// config flags

	fs.BoolVarP(&t.rcfg.Color, "color", "c", false,
		"ANSI colorize the report and diagnostics")
	fs.IntVarP(&t.rcfg.DelayMax, "delay-max", "d", 0,
		`Upper bound in seconds for a randomized delay between record
checks - avoids tripping rate limits on the target servers. The
default of zero disables pacing.`)
	fs.StringVarP(&t.cfg.zoneFile, "zonefile", "f", "",
		"Zone master file enumerating the records to compare (required)")
	fs.StringVar(&t.cfg.fromNS, "from-ns", "",
		"Nameserver whose answers are treated as current (required)")
	fs.StringVar(&t.cfg.toNS, "to-ns", "",
		"Nameserver whose answers are treated as candidate (required)")

	// Both the standard "flag" package and "spf13/pflag" allow duplicate options
	// without any warning to the user or the program, so manage duplicates
	// ourselves via ParseAll.

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options can be duplicated because
	dupes["version"] = true // the user may be fumbling around trying to work it out

	fs.SetInterspersed(false) // This GNU-ism breaks execute chaining, so turn it off!
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(log.Out(), "Error:Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args(), " "))
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- compare live answers from two authoritative nameservers")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     dnsdiff -h | --help | -V | --version")
	fmt.Fprintln(o, "     dnsdiff -f zonefile --from-ns nameserver1 --to-ns nameserver2")
	fmt.Fprintln(o, "             [-c] [-d delay-max]")
	fmt.Fprint(o, `
DESCRIPTION
     dnsdiff queries every record declared in the zone master file against both
     nameservers and prints discrepancies in a unified-diff style: answers which
     differ, answers present on only one server, and records neither server could
     answer. An empty report means the two servers agree on every record.

     Stdout carries only the diff report. All operational diagnostics - retry
     exhaustion and no-answer notices - are written to Stderr, so the report can
     be piped or captured cleanly.

     Nameserver hostnames are resolved once to an IPv4 address at startup. IPv6
     transport is not supported.
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output() // Save and restore - not sure this is a good idea
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
EXIT STATUS
     dnsdiff exits 0 on normal completion, even when the report contains
     differences. It exits 1 if the zone file fails to parse, if a nameserver
     hostname cannot be resolved, or on a command line error.
`)
}
