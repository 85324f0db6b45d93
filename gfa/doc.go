// Package gfa reads GFA1 pangenome graphs: S (segment), L (link), P (path)
// and W (walk) records.
//
// Parsing is the one genuinely out-of-corpus concern this module has: no
// repository in the retrieval pack touches bioinformatics formats, so this
// reader is a plain bufio.Scanner line parser rather than something ported
// from a third-party library — see DESIGN.md for why stdlib is the right
// call here.
//
// The reader is a thin front end over core.LinkGraph: it interns segments
// and paths, canonicalizes L-record edges, and stores each P/W record's
// step list as an unparsed string (Graph.PathRecords) so that pathset.Source
// can walk it lazily without allocating a []core.Step up front.
package gfa
