// ------------------------------------------------------------
// Quadrature comparison for ∫_0^1 r^2 sin(π r) dr
// ------------------------------------------------------------
// Package quadrature implements four independent integration
// strategies for the model integral above:
//   - plain midpoint (Newton–Cotes) on a uniform grid
//   - finite-volume-style weighted midpoint (exact r^2 cell weights)
//   - Gauss–Jacobi quadrature via Golub–Welsch (gonum eigensolver)
//   - recursive adaptive Simpson with a hard depth ceiling
//
// Every rule reports its function-evaluation count alongside the
// value, so the methods can be compared at equal cost.
// ------------------------------------------------------------

package quadrature

import "math"

// Shape is the smooth factor f(r) = sin(π r) of the integrand.
// The FVM-weighted and Gauss–Jacobi rules sample only this factor;
// the r^2 geometry weight is handled analytically.
func Shape(r float64) float64 {
	return math.Sin(math.Pi * r)
}

// Integrand is the full integrand g(r) = r^2 sin(π r).
func Integrand(r float64) float64 {
	return r * r * math.Sin(math.Pi*r)
}

// ExactIntegral returns the closed-form value of ∫_0^1 r^2 sin(π r) dr,
// which is 1/π − 4/π^3.
func ExactIntegral() float64 {
	return 1.0/math.Pi - 4.0/(math.Pi*math.Pi*math.Pi)
}
