package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/markdingo/dnsdiff/compare"
	"github.com/markdingo/dnsdiff/dnsutil"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiReset = "\033[0m"
)

// Config is the immutable presentation and pacing configuration handed into the
// Stream and the pacing controller. There is deliberately no other process-wide
// formatting state.
type Config struct {
	Color    bool // ANSI colorize the report and diagnostics
	DelayMax int  // Upper bound in whole seconds for inter-record pacing; 0 disables
}

// Stream accumulates per-record comparison results into the diff report. The report
// proper (header plus +/- lines) goes to out, operational diagnostics go to diag.
// Stream owns the header-emitted flag: the two-line "--- from / +++ to" header is
// printed exactly once, lazily, before the first body line, and a run with no
// divergence prints nothing at all.
//
// All methods are safe for concurrent use although the comparison loop is sequential
// per record key, so in practice the mutex only earns its keep if callers parallelize.
type Stream struct {
	mu            sync.Mutex
	out           io.Writer
	diag          io.Writer
	cfg           Config
	from, to      string
	headerEmitted bool
}

// NewStream creates a Stream reporting differences between the two named servers.
// from and to are display names and are printed as given on the command line, not as
// resolved addresses.
func NewStream(out, diag io.Writer, cfg Config, from, to string) *Stream {
	return &Stream{out: out, diag: diag, cfg: cfg, from: from, to: to}
}

// Emit renders one comparison result. Match produces nothing. BothFailed produces
// diagnostics only. Everything else produces report body lines, preceded by the
// header if this is the first divergence of the run.
func (t *Stream) Emit(qName string, qType uint16, r compare.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch r.Kind {
	case compare.Changed:
		t.header()
		t.block("-", ansiRed, r.Old)
		t.block("+", ansiGreen, r.New)

	case compare.Removed:
		t.header()
		t.block("-", ansiRed, r.Old)

	case compare.Added:
		t.header()
		t.block("+", ansiGreen, r.New)

	case compare.BothFailed:
		t.diagLine(fmt.Sprintf("%s: no answer for %s %s",
			t.from, qName, dnsutil.TypeToString(qType)))
		t.diagLine(fmt.Sprintf("%s: no answer for %s %s",
			t.to, qName, dnsutil.TypeToString(qType)))
	}
}

// Servfail emits the retry-exhausted diagnostic naming the server, the queried name
// and the record type. Per-record failures are never fatal so this is the only trace
// a dead server leaves.
func (t *Stream) Servfail(server, qName string, qType uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.diagLine(fmt.Sprintf("%s: SERVFAIL for %s %s after retries",
		server, qName, dnsutil.TypeToString(qType)))
}

// header writes the one-time two-line report header. Caller holds the mutex.
func (t *Stream) header() {
	if t.headerEmitted {
		return
	}
	t.headerEmitted = true
	fmt.Fprintf(t.out, "--- %s\n", t.from)
	fmt.Fprintf(t.out, "+++ %s\n", t.to)
}

// block writes the textual form of one record value with every line carrying the
// prefix, not just the first. Trailing empty lines are chomped. Caller holds the
// mutex.
func (t *Stream) block(prefix, color, text string) {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		if t.cfg.Color {
			fmt.Fprint(t.out, color, prefix, line, ansiReset, "\n")
		} else {
			fmt.Fprint(t.out, prefix, line, "\n")
		}
	}
}

func (t *Stream) diagLine(s string) {
	if t.cfg.Color {
		fmt.Fprint(t.diag, ansiCyan, s, ansiReset, "\n")
	} else {
		fmt.Fprint(t.diag, s, "\n")
	}
}
