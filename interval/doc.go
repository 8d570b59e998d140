// Package interval implements the half-open read coordinate intervals used to
// describe subreads, adapters and high-quality regions within a single
// sequencing read.  All positions are 0-based offsets into the read's base
// array; an interval [Start, End) with Start >= End is empty.
package interval
