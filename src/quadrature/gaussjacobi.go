package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussJacobiNodesWeights computes the n-point Gauss–Jacobi rule on
// [-1,1] for the weight (1-x)^alpha (1+x)^beta using the Golub–Welsch
// algorithm: the recurrence coefficients of the Jacobi polynomials form
// a symmetric tridiagonal matrix whose eigenvalues are the quadrature
// nodes and whose eigenvectors' first components give the weights.
//
// Nodes are returned in whatever order the eigensolver yields; callers
// must not assume they are sorted. alpha and beta must exceed -1 for
// the Gamma-function normalization to be meaningful; this is not
// validated and out-of-domain parameters propagate NaNs.
func GaussJacobiNodesWeights(n int, alpha, beta float64) (nodes, weights []float64, err error) {
	// Bandwidth must stay below the matrix order; n=1 has no
	// off-diagonal.
	bandwidth := 1
	if n < 2 {
		bandwidth = 0
	}
	J := mat.NewSymBandDense(n, bandwidth, nil)

	// Diagonal a_k. The denominator vanishes at k=0 when alpha+beta
	// is 0 or -1; the coefficient is 0 there.
	for k := 0; k < n; k++ {
		fk := float64(k)
		den := (2*fk + alpha + beta) * (2*fk + alpha + beta + 2)
		if den != 0 {
			J.SetSymBand(k, k, (beta*beta-alpha*alpha)/den)
		}
	}

	// Off-diagonal b_k for k = 1..n-1.
	for k := 1; k < n; k++ {
		fk := float64(k)
		num := 4 * fk * (fk + alpha) * (fk + beta) * (fk + alpha + beta)
		den := (2*fk + alpha + beta) * (2*fk + alpha + beta) *
			(2*fk + alpha + beta + 1) * (2*fk + alpha + beta - 1)
		J.SetSymBand(k-1, k, math.Sqrt(num/den))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(J, true); !ok {
		return nil, nil, fmt.Errorf("gauss-jacobi: eigen-decomposition failed for n=%d, alpha=%g, beta=%g", n, alpha, beta)
	}

	nodes = eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Weight normalization: the total weight-function mass
	// ∫_{-1}^1 (1-x)^α (1+x)^β dx = 2^(α+β+1) Γ(α+1) Γ(β+1) / Γ(α+β+2).
	c := math.Pow(2, alpha+beta+1) * math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(alpha+beta+2)

	weights = make([]float64, n)
	for j := 0; j < n; j++ {
		v0 := vecs.At(0, j)
		weights[j] = c * v0 * v0
	}
	return nodes, weights, nil
}

// GaussJacobiIntegrate approximates ∫_0^1 r^beta (1-r)^alpha f(r) dr —
// for this problem ∫_0^1 r^2 f(r) dr with alpha=0, beta=2 — by mapping
// the Gauss–Jacobi nodes from [-1,1] to [0,1] via r = (x+1)/2 and
// scaling for the change of variables:
//
//	∫_0^1 r^β (1-r)^α f(r) dr = 1/2^(α+β+1) ∫_{-1}^1 (1-x)^α (1+x)^β f((x+1)/2) dx
//
// The r^2 weight is absorbed analytically into the node/weight
// generation, so the rule is exact (up to eigensolver precision)
// whenever f is a polynomial of degree at most 2n−1. The evaluation
// count equals the node count n.
func GaussJacobiIntegrate(n int, alpha, beta float64) (value float64, evals int, err error) {
	nodes, weights, err := GaussJacobiNodesWeights(n, alpha, beta)
	if err != nil {
		return 0, 0, err
	}

	scale := 1.0 / math.Pow(2, alpha+beta+1)

	total := 0.0
	for i := range nodes {
		r := 0.5 * (nodes[i] + 1.0)
		total += weights[i] * Shape(r)
	}
	return total * scale, n, nil
}
