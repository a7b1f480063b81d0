package quadrature

import (
	"errors"
	"fmt"
	"math"
)

// Method labels used in result rows, reports, and plot legends.
const (
	MethodMidpoint    = "Midpoint (Newton-Cotes)"
	MethodFVMWeighted = "FVM-style weighted midpoint"
	MethodGaussJacobi = "Gauss-Jacobi (alpha=0, beta=2)"
	MethodAdaptive    = "Adaptive Simpson"
)

// Result is one (method, parameter) run of the comparison.
type Result struct {
	Method string

	// N is the grid size or node count for resolution-driven methods,
	// and NaN for tolerance-driven (adaptive Simpson) rows.
	N float64

	// Tol is the requested tolerance for adaptive Simpson rows, 0 otherwise.
	Tol float64

	Evals    int
	Value    float64
	AbsError float64
}

// ExperimentConfig holds the parameter matrix of a comparison run.
// It is passed explicitly so the driver stays pure and testable.
type ExperimentConfig struct {
	// GridSizes are the uniform cell counts for the midpoint and
	// FVM-weighted rules.
	GridSizes []int

	// NodeCounts are the Gauss–Jacobi rule sizes.
	NodeCounts []int

	// Alpha and Beta are the Jacobi weight exponents; (0, 2) matches
	// the r^2 geometry factor of the model integrand.
	Alpha, Beta float64

	// Tolerances and MaxDepth drive the adaptive Simpson runs.
	Tolerances []float64
	MaxDepth   int
}

// DefaultConfig returns the reference comparison matrix: grid sizes
// doubling from 2 to 256, Gauss–Jacobi from 2 to 16 nodes, and three
// adaptive tolerances with a generous shared depth ceiling.
func DefaultConfig() ExperimentConfig {
	return ExperimentConfig{
		GridSizes:  []int{2, 4, 8, 16, 32, 64, 128, 256},
		NodeCounts: []int{2, 3, 4, 5, 6, 8, 10, 12, 16},
		Alpha:      0.0,
		Beta:       2.0,
		Tolerances: []float64{1e-4, 1e-6, 1e-8},
		MaxDepth:   30,
	}
}

// RunExperiment evaluates every method over the configured parameter
// matrix and returns one result row per run, grouped by method, with
// absolute errors measured against the closed-form exact integral.
//
// A run whose engine fails (e.g. eigensolver non-convergence for a
// pathological node count) is skipped rather than aborting the
// comparison; the skipped runs' errors are joined into the returned
// error while the remaining rows stay valid.
func RunExperiment(cfg ExperimentConfig) ([]Result, error) {
	exact := ExactIntegral()
	rows := make([]Result, 0, 2*len(cfg.GridSizes)+len(cfg.NodeCounts)+len(cfg.Tolerances))

	for _, n := range cfg.GridSizes {
		val, evals := MidpointUniform(n)
		rows = append(rows, Result{
			Method:   MethodMidpoint,
			N:        float64(n),
			Evals:    evals,
			Value:    val,
			AbsError: math.Abs(val - exact),
		})
	}

	for _, n := range cfg.GridSizes {
		val, evals := FVMMidpointWeighted(n)
		rows = append(rows, Result{
			Method:   MethodFVMWeighted,
			N:        float64(n),
			Evals:    evals,
			Value:    val,
			AbsError: math.Abs(val - exact),
		})
	}

	var failures []error
	for _, n := range cfg.NodeCounts {
		val, evals, err := GaussJacobiIntegrate(n, cfg.Alpha, cfg.Beta)
		if err != nil {
			failures = append(failures, fmt.Errorf("n=%d: %w", n, err))
			continue
		}
		rows = append(rows, Result{
			Method:   MethodGaussJacobi,
			N:        float64(n),
			Evals:    evals,
			Value:    val,
			AbsError: math.Abs(val - exact),
		})
	}

	for _, tol := range cfg.Tolerances {
		val, evals := AdaptiveSimpson(Integrand, 0.0, 1.0, tol, cfg.MaxDepth)
		rows = append(rows, Result{
			Method:   MethodAdaptive,
			N:        math.NaN(),
			Tol:      tol,
			Evals:    evals,
			Value:    val,
			AbsError: math.Abs(val - exact),
		})
	}

	return rows, errors.Join(failures...)
}
