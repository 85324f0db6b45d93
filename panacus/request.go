// File: request.go
// Role: functional-option request configuration, resolved once into an
//   immutable config before Run does any work — the same
//   options-then-resolve shape the teacher's builder package uses for
//   its BuilderOption/newBuilderConfig pair.

package panacus

import "github.com/katalvlaran/pangrowth/group"

// FeatureKind selects which feature classes a Request computes over.
type FeatureKind uint8

const (
	Nodes FeatureKind = 1 << iota
	Edges
	// BP selects the bp-length-weighted node growth curve: the same
	// coverage classes as Nodes, but weighted by hist.NodeBP instead of
	// hist.NodeCount, so a large node contributes its segment length
	// rather than a unit count.
	BP
)

// Has reports whether kind includes f.
func (kind FeatureKind) Has(f FeatureKind) bool { return kind&f != 0 }

// ThresholdPair is one (coverage floor, quorum) pair a request can ask
// for threshold-filtered growth under (spec's "-l, -q equal-length
// lists" — one pair per list position).
type ThresholdPair struct {
	CoverageFloor int
	Quorum        float64
}

// Request configures one Run call. Build it with NewRequest and Option
// values; the zero Request is not valid on its own.
type Request struct {
	mode         group.Mode
	include      map[string]bool
	exclude      map[string]bool
	order        []string
	features     FeatureKind
	workers      int
	memoryBudget int64
	thresholds   []ThresholdPair
	permutation  []int32
}

// Option configures a Request.
type Option func(*Request)

// WithGroupMode sets the grouping mode (default group.ByPath).
func WithGroupMode(mode group.Mode) Option { return func(r *Request) { r.mode = mode } }

// WithInclude restricts the resolved paths to this set; nil/empty means
// "all paths not excluded."
func WithInclude(names map[string]bool) Option { return func(r *Request) { r.include = names } }

// WithExclude removes these paths regardless of WithInclude.
func WithExclude(names map[string]bool) Option { return func(r *Request) { r.exclude = names } }

// WithOrder gives an explicit group-numbering prefix.
func WithOrder(order []string) Option { return func(r *Request) { r.order = order } }

// WithFeatures selects which feature classes to compute (default Nodes|Edges).
func WithFeatures(kind FeatureKind) Option { return func(r *Request) { r.features = kind } }

// WithWorkers bounds abundance.Build's concurrency (default 1).
func WithWorkers(n int) Option { return func(r *Request) { r.workers = n } }

// WithMemoryBudgetBytes caps the dense-representation estimate passed to
// abundance.Build (default unlimited).
func WithMemoryBudgetBytes(n int64) Option { return func(r *Request) { r.memoryBudget = n } }

// WithThresholds sets the list of (coverage floor, quorum) pairs to
// compute threshold-filtered growth curves for (default: none computed).
func WithThresholds(pairs []ThresholdPair) Option {
	return func(r *Request) { r.thresholds = pairs }
}

// WithThreshold is a convenience WithThresholds for a single pair.
func WithThreshold(coverageFloor int, quorum float64) Option {
	return WithThresholds([]ThresholdPair{{CoverageFloor: coverageFloor, Quorum: quorum}})
}

// WithPermutation requests the observed ordered-growth curve along perm,
// a permutation of group ids 0..G-1 (default: not computed).
func WithPermutation(perm []int32) Option { return func(r *Request) { r.permutation = perm } }

// NewRequest applies opts over the defaults (Nodes|Edges, one worker).
// It does not validate them; Run rejects out-of-range threshold pairs.
func NewRequest(opts ...Option) Request {
	r := Request{
		features: Nodes | Edges,
		workers:  1,
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}
