package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptiveSimpsonReachesTolerance(t *testing.T) {
	val, _ := AdaptiveSimpson(Integrand, 0, 1, 1e-8, 30)
	assert.InDelta(t, ExactIntegral(), val, 1e-7)
}

func TestAdaptiveSimpsonEvalsGrowWithTolerance(t *testing.T) {
	// Tightening the tolerance must strictly increase the work done.
	var prevEvals int
	for _, tol := range []float64{1e-4, 1e-6, 1e-8} {
		_, evals := AdaptiveSimpson(Integrand, 0, 1, tol, 30)
		assert.Greater(t, evals, prevEvals, "tol=%g", tol)
		prevEvals = evals
	}
}

func TestAdaptiveSimpsonDepthZero(t *testing.T) {
	// No depth budget: the bare three-point Simpson estimate, no
	// refinement at all.
	val, evals := AdaptiveSimpson(Integrand, 0, 1, 1e-12, 0)
	assert.Equal(t, 3, evals)

	want := (Integrand(0.0) + 4*Integrand(0.5) + Integrand(1.0)) / 6.0
	assert.InDelta(t, want, val, 1e-15)
}

func TestAdaptiveSimpsonLooseToleranceAcceptsFirstRefinement(t *testing.T) {
	// A huge tolerance accepts the very first refinement: 3 base
	// evaluations plus one 2-evaluation split.
	_, evals := AdaptiveSimpson(Integrand, 0, 1, 1.0, 30)
	assert.Equal(t, 5, evals)
}

func TestAdaptiveSimpsonDepthCeilingTerminates(t *testing.T) {
	// An unreachable tolerance with a small depth budget must still
	// terminate after fully expanding the refinement tree: the tree
	// has 2^(maxDepth+1)-1 refinement calls of 2 evaluations each.
	const maxDepth = 6
	val, evals := AdaptiveSimpson(Integrand, 0, 1, 0, maxDepth)

	assert.False(t, math.IsNaN(val))
	assert.Equal(t, 3+2*((1<<(maxDepth+1))-1), evals)
	// The truncated estimate is still a decent Simpson composite.
	assert.InDelta(t, ExactIntegral(), val, 1e-6)
}

func TestAdaptiveSimpsonDeterministic(t *testing.T) {
	v1, e1 := AdaptiveSimpson(Integrand, 0, 1, 1e-6, 30)
	v2, e2 := AdaptiveSimpson(Integrand, 0, 1, 1e-6, 30)
	assert.Equal(t, v1, v2)
	assert.Equal(t, e1, e2)
}
