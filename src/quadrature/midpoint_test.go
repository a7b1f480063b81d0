package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidpointUniformEvalCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			_, evals := MidpointUniform(n)
			assert.Equal(t, n, evals)
		})
	}
}

func TestMidpointUniformTwoCells(t *testing.T) {
	// With two cells the rule samples g at exactly r=0.25 and r=0.75.
	val, evals := MidpointUniform(2)
	require.Equal(t, 2, evals)

	want := 0.5 * (Integrand(0.25) + Integrand(0.75))
	assert.InDelta(t, want, val, 1e-15)
}

func TestMidpointUniformConverges(t *testing.T) {
	exact := ExactIntegral()

	prevErr := math.Inf(1)
	for _, n := range []int{4, 16, 64, 256} {
		val, _ := MidpointUniform(n)
		err := math.Abs(val - exact)
		assert.Less(t, err, prevErr, "error should shrink as n grows (n=%d)", n)
		prevErr = err
	}
	// Second-order rule: 256 cells are plenty for ~1e-5.
	assert.Less(t, prevErr, 1e-5)
}

func TestFVMMidpointWeightedEvalCount(t *testing.T) {
	for _, n := range []int{1, 2, 8, 33, 256} {
		_, evals := FVMMidpointWeighted(n)
		assert.Equal(t, n, evals)
	}
}

func TestFVMWeightedSecondOrderAtComparableCost(t *testing.T) {
	// The weighted rule removes the r^2 discretization error but
	// samples f at the geometric cell midpoint rather than the
	// r^2-centroid, so on this integrand it stays second order with an
	// error constant within a small factor of the plain rule's.
	exact := ExactIntegral()
	for _, n := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			plain, _ := MidpointUniform(n)
			weighted, _ := FVMMidpointWeighted(n)
			errPlain := math.Abs(plain - exact)
			errWeighted := math.Abs(weighted - exact)
			assert.LessOrEqual(t, errWeighted, 2*errPlain)
		})
	}

	weighted16, _ := FVMMidpointWeighted(16)
	weighted64, _ := FVMMidpointWeighted(64)
	ratio := math.Abs(weighted16-exact) / math.Abs(weighted64-exact)
	// Quadrupling the grid should cut a second-order error ~16x.
	assert.InDelta(t, 16.0, ratio, 2.0)
}

func TestMidpointRulesDeterministic(t *testing.T) {
	v1, _ := MidpointUniform(37)
	v2, _ := MidpointUniform(37)
	assert.Equal(t, v1, v2)

	w1, _ := FVMMidpointWeighted(37)
	w2, _ := FVMMidpointWeighted(37)
	assert.Equal(t, w1, w2)
}
