package quadrature

// MidpointUniform approximates ∫_0^1 g(r) dr with the plain midpoint
// (Newton–Cotes) rule on n uniform cells. It returns the approximation
// and the number of integrand evaluations, which equals n exactly.
// n must be positive; the result is undefined otherwise.
func MidpointUniform(n int) (value float64, evals int) {
	h := 1.0 / float64(n)
	total := 0.0
	for i := 0; i < n; i++ {
		rMid := (float64(i) + 0.5) * h
		total += Integrand(rMid)
	}
	return total * h, n
}

// FVMMidpointWeighted approximates ∫_0^1 r^2 f(r) dr in finite-volume
// style: f is sampled at each cell midpoint and weighted by the exact
// per-cell integral of r^2, i.e. (r_right^3 − r_left^3)/3. The r^2
// factor therefore contributes no discretization error; only the
// midpoint sampling of f does. Evaluation count equals n, matching
// MidpointUniform for a fair cost comparison.
func FVMMidpointWeighted(n int) (value float64, evals int) {
	total := 0.0
	for i := 0; i < n; i++ {
		rLeft := float64(i) / float64(n)
		rRight := float64(i+1) / float64(n)
		rMid := 0.5 * (rLeft + rRight)

		// Exact integral of r^2 over the cell.
		cellWeight := (rRight*rRight*rRight - rLeft*rLeft*rLeft) / 3.0

		total += Shape(rMid) * cellWeight
	}
	return total, n
}
