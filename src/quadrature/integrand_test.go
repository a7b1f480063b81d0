package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrandShapeRelation(t *testing.T) {
	for _, r := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, r*r*Shape(r), Integrand(r), 1e-15)
	}
}

func TestExactIntegral(t *testing.T) {
	// 1/π − 4/π^3 = (π^2 − 4)/π^3.
	pi := math.Pi
	want := (pi*pi - 4) / (pi * pi * pi)
	assert.InDelta(t, want, ExactIntegral(), 1e-15)
	assert.InDelta(t, 0.18931, ExactIntegral(), 1e-5)
}
