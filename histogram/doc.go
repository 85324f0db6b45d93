// Package histogram derives the coverage histogram (C5) from an
// abundance.Table: how many nodes (and how many bp) occur in exactly k of
// the G groups, for k = 0..G, and the same for edges. Edges always
// contribute zero bp weight; a node's bp weight is its segment length.
package histogram
