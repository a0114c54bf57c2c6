// Package records parses the three line-oriented inputs of the road-trip
// dataset into raw tables:
//
//   - borders:          "COUNTRY = NEIGHBOR LEN km; ..."      → BorderTable
//   - capital distance: CSV with header (ida, idb, kmdist)    → CapitalTable
//   - country names:    TSV id/name/validity rows             → StateTable
//
// Parsers never check cross-source consistency. A line or field that does
// not parse is dropped at the granularity documented on each parser and
// listed in the table's Report (each entry matches ErrMalformedRecord); a
// source that cannot be opened or read fails with a *FileError matching
// ErrFatalIO.
package records
