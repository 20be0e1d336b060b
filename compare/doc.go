// Package compare implements the comparison policy at the heart of dnsdiff: given
// the two definitive query outcomes for one record key, classify them as a match, a
// change, an addition, a removal or a dual failure. The package is pure - it performs
// no I/O and owns no state - which keeps the policy trivially testable.
package compare
