package resolver

import (
	"github.com/miekg/dns"
)

// OutcomeKind classifies the definitive result of resolving one record against one
// server, after all retry attempts have run their course.
type OutcomeKind int

const (
	// Answered means the server replied NOERROR with at least one answer RR.
	Answered OutcomeKind = iota

	// NoAnswer means the server replied but had nothing useful to say: NXDOMAIN, or
	// NOERROR with an empty answer section.
	NoAnswer

	// ServerFailure means no usable reply was obtained: every attempt timed out,
	// the transport failed outright, or the server returned a failure rcode.
	ServerFailure
)

func (t OutcomeKind) String() string {
	switch t {
	case Answered:
		return "Answered"
	case NoAnswer:
		return "NoAnswer"
	}

	return "ServerFailure"
}

// Outcome is the definitive post-retry result for one (server, name, type) query.
type Outcome struct {
	Kind   OutcomeKind
	Answer []dns.RR // Only populated when Kind == Answered
}

// HasAnswer returns true if the outcome carries at least one answer RR.
func (t Outcome) HasAnswer() bool {
	return t.Kind == Answered && len(t.Answer) > 0
}

// First returns the first answer RR or nil. Only the first element of an answer set
// participates in comparison so most callers never look past it.
func (t Outcome) First() dns.RR {
	if len(t.Answer) == 0 {
		return nil
	}
	return t.Answer[0]
}
