package quadrature

import "math"

// ObservedOrders estimates the empirical convergence order of a
// resolution-driven method from successive result rows: for each
// consecutive pair the order is log(e_i/e_{i+1}) / log(N_{i+1}/N_i).
// The rows must share a method and be sorted by ascending N.
//
// The returned slice has one entry per consecutive pair. Pairs with a
// zero or non-finite error on either side yield NaN, since the ratio
// is meaningless once an error reaches floating-point noise.
func ObservedOrders(rows []Result) []float64 {
	if len(rows) < 2 {
		return nil
	}
	orders := make([]float64, len(rows)-1)
	for i := 0; i < len(rows)-1; i++ {
		e0, e1 := rows[i].AbsError, rows[i+1].AbsError
		n0, n1 := rows[i].N, rows[i+1].N
		if e0 <= 0 || e1 <= 0 || math.IsNaN(e0) || math.IsNaN(e1) || n1 <= n0 {
			orders[i] = math.NaN()
			continue
		}
		orders[i] = math.Log(e0/e1) / math.Log(n1/n0)
	}
	return orders
}

// FilterByMethod returns the rows belonging to one method, preserving
// their order.
func FilterByMethod(rows []Result, method string) []Result {
	var out []Result
	for _, r := range rows {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}
