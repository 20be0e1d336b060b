package main

import (
	"fmt"

	"github.com/markdingo/dnsdiff/compare"
)

// runStats accumulates the per-run comparison counters reported at exit. servfails
// counts retry-exhausted or refused servers, which can exceed the record count since
// both servers can fail the same key.
type runStats struct {
	checked    int
	matched    int
	changed    int
	added      int
	removed    int
	bothFailed int
	servfails  int
}

func (t *runStats) note(k compare.Kind) {
	t.checked++
	switch k {
	case compare.Match:
		t.matched++
	case compare.Changed:
		t.changed++
	case compare.Added:
		t.added++
	case compare.Removed:
		t.removed++
	case compare.BothFailed:
		t.bothFailed++
	}
}

// differences returns the number of records which produced report output.
func (t *runStats) differences() int {
	return t.changed + t.added + t.removed
}

func (t *runStats) String() string {
	return fmt.Sprintf("checked=%d match=%d changed=%d added=%d removed=%d noanswer=%d servfail=%d",
		t.checked, t.matched, t.changed, t.added, t.removed, t.bothFailed, t.servfails)
}
