// File: binomial.go
// Role: log-space generalized binomial coefficients for the hypergeometric
//   growth identity, via gonum's Gamma-function implementation so large
//   (N choose k) terms never overflow float64 and never require
//   enumerating a choose(N,n)-sized sample space.

package growth

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// logChoose returns log(C(n,k)), or -Inf for a combinatorially impossible
// (n,k) pair (k<0, n<0, or k>n).
func logChoose(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.Inf(-1)
	}
	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}

// threshold returns max(l, ceil(q*n)), clamped to at least 1, the minimum
// per-feature coverage count within a sample of size n required for a
// feature to count as present under quorum q and floor l.
func threshold(l int, q float64, n int) int {
	t := l
	if qt := int(math.Ceil(q * float64(n))); qt > t {
		t = qt
	}
	if t < 1 {
		t = 1
	}
	return t
}
