// File: resolver.go
// Role: path -> group-key -> dense group id resolution (C3).
// Determinism: absent an explicit order list, groups are numbered in the
//   order their key is first seen while scanning pathNames left to right.
//   With an order list, names in it are numbered first, in listed order;
//   any remaining eligible keys are appended in first-seen order.

package group

import "github.com/katalvlaran/pangrowth/core"

// Mode selects how a path name maps to a group key.
type Mode int

const (
	// ByPath groups each path on its own (key = full path name).
	ByPath Mode = iota
	// ByHaplotype groups paths sharing sample#haplotype.
	ByHaplotype
	// BySample groups paths sharing the sample token.
	BySample
)

// Warning is a recoverable, user-visible condition raised during group
// resolution: an order-list name absent from the graph is logged and
// skipped, not treated as fatal.
type Warning struct {
	Reason string
}

// Resolver maps path names to dense group ids 0..G-1.
type Resolver struct {
	mode       Mode
	pathToGrp  map[string]int32
	groupNames []string
}

func keyFor(mode Mode, name string) string {
	p := core.ParsePanSN(name)
	switch mode {
	case ByHaplotype:
		return p.Haplotype
	case BySample:
		return p.Sample
	default:
		return name
	}
}

// NewResolver resolves pathNames into groups under mode.
//
//   - include: if non-empty, only paths present in include are eligible.
//   - exclude: paths present in exclude are never eligible, even if also
//     in include.
//   - order: optional explicit group-key ordering; keys named here that
//     never occur among eligible paths produce a Warning and are skipped.
//
// Paths excluded from every group are simply absent from the returned
// Resolver's lookup table (GroupOf reports found=false for them); they
// never reach the abundance builder.
func NewResolver(mode Mode, pathNames []string, include, exclude map[string]bool, order []string) (*Resolver, []Warning, error) {
	r := &Resolver{mode: mode, pathToGrp: make(map[string]int32)}
	keyToID := make(map[string]int32)
	var warnings []Warning

	eligibleKeys := make(map[string]bool)
	pathKey := make(map[string]string, len(pathNames))
	for _, name := range pathNames {
		if len(include) > 0 && !include[name] {
			continue
		}
		if exclude[name] {
			continue
		}
		k := keyFor(mode, name)
		pathKey[name] = k
		eligibleKeys[k] = true
	}

	assign := func(k string) {
		if _, ok := keyToID[k]; ok {
			return
		}
		keyToID[k] = int32(len(r.groupNames))
		r.groupNames = append(r.groupNames, k)
	}

	for _, k := range order {
		if !eligibleKeys[k] {
			warnings = append(warnings, Warning{Reason: "order list names group " + k + " not present among selected paths"})
			continue
		}
		assign(k)
	}
	for _, name := range pathNames {
		k, ok := pathKey[name]
		if !ok {
			continue
		}
		assign(k)
	}

	for name, k := range pathKey {
		r.pathToGrp[name] = keyToID[k]
	}
	return r, warnings, nil
}

// GroupOf returns the dense group id for pathName and whether the path is
// eligible (present in the Resolver at all).
func (r *Resolver) GroupOf(pathName string) (int32, bool) {
	id, ok := r.pathToGrp[pathName]
	return id, ok
}

// NumGroups returns G, the number of distinct groups.
func (r *Resolver) NumGroups() int32 { return int32(len(r.groupNames)) }

// GroupNames returns group keys in assigned-id order. The returned slice
// is owned by the caller.
func (r *Resolver) GroupNames() []string {
	out := make([]string, len(r.groupNames))
	copy(out, r.groupNames)
	return out
}
