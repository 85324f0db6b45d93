package abundance

// Table is the presence matrix of C4: for each of NumGroups resolved
// groups, which nodes and edges occur at least once among that group's
// paths.
type Table struct {
	NumGroups int32
	NumNodes  int32
	NumEdges  int32

	// GroupNames are the group keys in dense-id order, as produced by
	// group.Resolver.GroupNames.
	GroupNames []string

	// NodeBP is the length in base pairs of node id, indexed by id.
	NodeBP []int32

	// NodeCoverage[id] / EdgeCoverage[id] are the number of groups (0..G)
	// that contain node/edge id. This is the input to histogram.Build.
	NodeCoverage []int32
	EdgeCoverage []int32

	nodeSets []featureSet // len NumGroups
	edgeSets []featureSet
}

// GroupHasNode reports whether group g's paths ever visited node.
func (t *Table) GroupHasNode(g, node int32) bool { return t.nodeSets[g].has(node) }

// GroupHasEdge reports whether group g's paths ever crossed edge.
func (t *Table) GroupHasEdge(g, edge int32) bool { return t.edgeSets[g].has(edge) }

// ForEachNodeInGroup visits, ascending, every node group g contains.
func (t *Table) ForEachNodeInGroup(g int32, visit func(node int32)) {
	t.nodeSets[g].forEach(visit)
}

// ForEachEdgeInGroup visits, ascending, every edge group g contains.
func (t *Table) ForEachEdgeInGroup(g int32, visit func(edge int32)) {
	t.edgeSets[g].forEach(visit)
}

// GroupNodeCount returns how many distinct nodes group g contains.
func (t *Table) GroupNodeCount(g int32) int { return t.nodeSets[g].count() }

// GroupEdgeCount returns how many distinct edges group g contains.
func (t *Table) GroupEdgeCount(g int32) int { return t.edgeSets[g].count() }
