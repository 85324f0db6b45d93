// Package pathset delivers, for each selected path or walk, a lazy ordered
// sequence of (segment, orientation) steps and the canonical edge between
// each consecutive pair (C2).
//
// Source.Walk pushes one callback per step rather than returning a slice or
// a pull-style iterator — mirroring the teacher's BFS/DFS OnVisit hook
// convention — so a path with millions of steps costs O(1) extra memory to
// traverse. P-line (comma list) and W-line (">"/"<" run) encodings decode
// to byte-identical callback sequences.
package pathset
