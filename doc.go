/*
dnsdiff compares the live DNS answers returned by two authoritative nameservers for
every record declared in a zone master file and reports discrepancies in a
unified-diff style. Its intended audience is operators validating that a secondary or
freshly migrated nameserver answers identically to the primary before cutover.

Each record in the zone is queried against both servers in turn, with bounded
exponential backoff on timeout, and any divergence is printed as -/+ blocks under a
one-time "--- from / +++ to" header. Stdout carries only the diff report; all
operational diagnostics go to Stderr. Every invocation is a fresh, stateless
comparison pass.

Typical invocation:

	# dnsdiff -f example.com.zone --from-ns ns1.example.com --to-ns ns2.example.com
*/
package main
