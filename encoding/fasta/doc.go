// Package fasta reads and writes FASTA files.  A FASTA file consists of a
// number of named sequences that may be interrupted by newlines.  For example:
//
// >m54006_160504_020705/4194374/0_7
// ACGTAC
// G
// >m54006_160504_020705/4194375/12_15
// ACG
//
// The sequence name is the stretch of characters after '>' up to the first
// space.  The rest of the header line is the description.  Writer can also
// produce a samtools faidx index of its output.
package fasta
