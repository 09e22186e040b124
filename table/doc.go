// Package table reshapes a stream of packed reals into reactor rows.
//
// A DID file is a flat run of 6 byte records with no header. Every Vars
// consecutive records form one row. Each row is labeled with the reactor it
// belongs to and the elapsed time in hours since that reactor's first row:
//
//	| REACTOR | Time  | Var 1    | Var 2   | ... | Var N |
//	|---------|-------|----------|---------|-----|-------|
//	| 1       | 0.000 | 4339.736 | 194.568 | ... |       |
//	| 1       | 0.167 | 2545.844 | 634.497 | ... |       |
//	| ...     |       |          |         |     |       |
//	| 2       | 0.000 | ...      |         |     |       |
//	|---------|-------|----------|---------|-----|-------|
//
// Time advances by Interval/60 hours per row. Once more than DataPerDay rows
// (24*60/Interval) have been completed for a reactor, the next row starts the
// following reactor at time zero.
package table
