package quadrature

import "math"

// simpsonEstimate is the three-point Simpson estimate on [a,b] given
// the endpoint and midpoint samples.
func simpsonEstimate(fa, fm, fb, a, b float64) float64 {
	return (b - a) * (fa + 4*fm + fb) / 6.0
}

// AdaptiveSimpson approximates ∫_a^b fh(x) dx with the classical
// recursive adaptive Simpson rule. Each interval is split in two; the
// refinement is accepted when the refined estimate agrees with the
// coarse one to within 15·tol (the standard Richardson error
// estimator), in which case the extrapolated value is returned.
// Otherwise both halves recurse with the tolerance unchanged.
//
// maxDepth bounds the recursion: a subinterval that exhausts its depth
// budget keeps its current refined estimate without further error
// checking, silently capping the achievable accuracy. maxDepth <= 0
// returns the bare three-point Simpson estimate with no refinement.
//
// The returned evaluation count is 3 for the base samples plus 2 per
// refinement actually performed, including those cut off by the depth
// ceiling.
func AdaptiveSimpson(fh func(float64) float64, a, b, tol float64, maxDepth int) (value float64, evals int) {
	fa := fh(a)
	fb := fh(b)
	m := 0.5 * (a + b)
	fm := fh(m)
	evals = 3

	s0 := simpsonEstimate(fa, fm, fb, a, b)
	if maxDepth <= 0 {
		return s0, evals
	}

	value = adaptiveStep(fh, a, b, fa, fm, fb, s0, tol, maxDepth, &evals)
	return value, evals
}

// adaptiveStep refines the interval [a,b] whose coarse Simpson
// estimate is s. depth is the remaining recursion budget.
func adaptiveStep(fh func(float64) float64, a, b, fa, fm, fb, s, tol float64, depth int, evals *int) float64 {
	m := 0.5 * (a + b)
	lm := 0.5 * (a + m)
	rm := 0.5 * (m + b)
	flm := fh(lm)
	frm := fh(rm)
	*evals += 2

	sLeft := simpsonEstimate(fa, flm, fm, a, m)
	sRight := simpsonEstimate(fm, frm, fb, m, b)

	if depth <= 0 {
		// Depth budget exhausted: keep the refined estimate as-is.
		return sLeft + sRight
	}
	if math.Abs(sLeft+sRight-s) < 15*tol {
		return sLeft + sRight + (sLeft+sRight-s)/15.0
	}
	return adaptiveStep(fh, a, m, fa, flm, fm, sLeft, tol, depth-1, evals) +
		adaptiveStep(fh, m, b, fm, frm, fb, sRight, tol, depth-1, evals)
}
