// File: expected.go
// Role: closed-form expected growth curve (C6) over the hypergeometric
//   sampling-without-replacement distribution.
// Determinism: a pure function of weights; evaluating it twice with the
//   same input always returns bit-identical output.

package growth

import "math"

// Expected returns, for n = 0..N (N = len(weights)-1), the expected total
// weight of features observed when sampling n of N groups uniformly at
// random without replacement. weights[k] is the total weight (count or
// bp) of features present in exactly k of the N groups; weights[0] is
// ignored (a feature in zero groups is never observed).
//
// Expected[n] = sum_{k=1}^{N} weights[k] * (1 - P[feature in k groups is
// absent from an n-group sample]), where the absence probability is the
// hypergeometric term C(N-k,n)/C(N,n), evaluated in log-space.
//
// Complexity: O(N^2).
func Expected(weights []float64) []float64 {
	n := len(weights) - 1
	out := make([]float64, n+1)
	for sampleSize := 0; sampleSize <= n; sampleSize++ {
		logTotal := logChoose(n, sampleSize)
		var sum float64
		for k := 1; k <= n; k++ {
			if weights[k] == 0 {
				continue
			}
			logAbsent := logChoose(n-k, sampleSize) - logTotal
			pAbsent := 0.0
			if !math.IsInf(logAbsent, -1) {
				pAbsent = math.Exp(logAbsent)
			}
			sum += weights[k] * (1 - pAbsent)
		}
		out[sampleSize] = sum
	}
	return out
}

// ThresholdExpected is Expected restricted to "core"-style counting: a
// feature counts toward sample size n only once its within-sample
// coverage reaches threshold(l, q, n) = max(l, ceil(q*n)). l=1, q=0
// degenerates to ordinary Expected (P4).
//
// Complexity: O(N^3) in the worst case (an inner sum over the
// hypergeometric tail at every (n,k) pair); N is the group count, not
// the feature count, so this stays cheap for realistic cohort sizes.
func ThresholdExpected(weights []float64, l int, q float64) []float64 {
	n := len(weights) - 1
	out := make([]float64, n+1)
	for sampleSize := 0; sampleSize <= n; sampleSize++ {
		logTotal := logChoose(n, sampleSize)
		thresh := threshold(l, q, sampleSize)
		var sum float64
		for k := 1; k <= n; k++ {
			if weights[k] == 0 {
				continue
			}
			var pBelow float64
			limit := thresh
			if limit > sampleSize+1 {
				limit = sampleSize + 1
			}
			for j := 0; j < limit; j++ {
				lp := logChoose(k, j) + logChoose(n-k, sampleSize-j) - logTotal
				if !math.IsInf(lp, -1) {
					pBelow += math.Exp(lp)
				}
			}
			sum += weights[k] * (1 - pBelow)
		}
		out[sampleSize] = sum
	}
	return out
}

// ToWeights converts an int64 coverage-class histogram bucket array into
// the []float64 weights Expected/ThresholdExpected consume.
func ToWeights(counts []int64) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}
