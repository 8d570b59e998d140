// Package regiontable holds per-read region annotations: the high-quality
// (HQ) region of each read and the adapter intervals that delimit its
// subreads.  Tables are keyed by hole number and are read-only once loaded.
//
// On disk a region table is a TSV file whose columns mirror the PacBio
// Regions dataset:
//
//	HoleNumber	RegionType	Start	End	Score
//	12	Adapter	30	30	0
//	12	HQRegion	10	90	800
//
// RegionType is one of Adapter, Insert or HQRegion.  Insert rows are accepted
// but not stored; subread boundaries are derived from the adapters.
package regiontable
