// ------------------------------------------------------------
// Quadrature method comparison for ∫_0^1 r^2 sin(π r) dr
// ------------------------------------------------------------
// Methods compared:
//   - Plain midpoint (Newton–Cotes) on uniform grids
//   - FVM-style weighted midpoint (exact per-cell r^2 weights)
//   - Gauss–Jacobi quadrature (alpha=0, beta=2, Golub–Welsch)
//   - Adaptive Simpson at several tolerances
//
// Each run records its value, function-evaluation count, and absolute
// error against the closed-form exact integral 1/π − 4/π^3.
//
// Outputs (relative to where you run the program):
//   output/quadcompare/quadcompare_results.csv
//   output/quadcompare/error_vs_evals.png   (log-log convergence plot)
//
// Notes:
//   - Plots are generated with Gonum Plot (pure Go).
//   - PNG images are rendered using a 300 DPI canvas.
// ------------------------------------------------------------

package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/quadlab/quadcompare/src/quadrature"
)

// ------------------------------------------------------------
// CSV writer
// ------------------------------------------------------------

func writeCSV(filename string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return errors.New("CSV: no rows")
	}
	for _, r := range rows {
		if len(r) != len(header) {
			return errors.New("CSV: row size mismatch")
		}
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("CSV: cannot create directory: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("CSV: cannot open %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return fmt.Errorf("CSV: cannot write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("CSV: cannot write row: %w", err)
		}
	}
	return nil
}

// ------------------------------------------------------------
// Plotting helpers (high-resolution PNG with 300 DPI)
// ------------------------------------------------------------

// styleLogPlot applies consistent styling for log-log axes:
// large fonts, thick axes, and logarithmic scales with log ticks.
func styleLogPlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(22)
	p.Title.Padding = vg.Points(12)

	p.X.Label.TextStyle.Font.Size = vg.Points(18)
	p.Y.Label.TextStyle.Font.Size = vg.Points(18)
	p.X.Label.Padding = vg.Points(10)
	p.Y.Label.Padding = vg.Points(10)

	p.X.LineStyle.Width = vg.Points(2.2)
	p.Y.LineStyle.Width = vg.Points(2.2)
	p.X.Padding = vg.Points(20)
	p.Y.Padding = vg.Points(20)

	p.X.Tick.LineStyle.Width = vg.Points(2.0)
	p.Y.Tick.LineStyle.Width = vg.Points(2.0)
	p.X.Tick.Length = vg.Points(8)
	p.Y.Tick.Length = vg.Points(8)

	p.X.Tick.Label.Font.Size = vg.Points(14)
	p.Y.Tick.Label.Font.Size = vg.Points(14)

	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	p.Legend.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Top = true
}

func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	w := vg.Length(widthIn) * vg.Inch
	h := vg.Length(heightIn) * vg.Inch

	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(300),
	)
	dc := draw.New(c)
	p.Draw(dc)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}

// errorPoints converts result rows to (evals, abs error) plot points,
// sorted by evaluation count. A log axis cannot represent a zero, so
// errors are floored at 1e-17 for plotting only.
func errorPoints(rows []quadrature.Result) plotter.XYs {
	sorted := make([]quadrature.Result, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Evals < sorted[j].Evals })

	pts := make(plotter.XYs, len(sorted))
	for i, r := range sorted {
		pts[i].X = float64(r.Evals)
		pts[i].Y = math.Max(r.AbsError, 1e-17)
	}
	return pts
}

// saveConvergencePlot renders the log-log error-vs-evaluations plot:
// one line+marker series per fixed-parameter method, and a scatter of
// points for the tolerance-driven adaptive Simpson runs.
func saveConvergencePlot(rows []quadrature.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Error vs. function evaluations"
	p.X.Label.Text = "Function evaluations"
	p.Y.Label.Text = "Absolute error"
	styleLogPlot(p)

	series := []struct {
		method string
		color  color.RGBA
	}{
		{quadrature.MethodMidpoint, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}},
		{quadrature.MethodFVMWeighted, color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255}},
		{quadrature.MethodGaussJacobi, color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}},
	}

	for _, s := range series {
		pts := errorPoints(quadrature.FilterByMethod(rows, s.method))
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("cannot create series %q: %w", s.method, err)
		}
		line.LineStyle.Width = vg.Points(2.5)
		line.LineStyle.Color = s.color
		points.Shape = draw.CircleGlyph{}
		points.Color = s.color
		points.Radius = vg.Points(4)
		p.Add(line, points)
		p.Legend.Add(s.method, line, points)
	}

	adaptive := errorPoints(quadrature.FilterByMethod(rows, quadrature.MethodAdaptive))
	if len(adaptive) > 0 {
		scatter, err := plotter.NewScatter(adaptive)
		if err != nil {
			return fmt.Errorf("cannot create adaptive scatter: %w", err)
		}
		scatter.Shape = draw.CrossGlyph{}
		scatter.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}
		scatter.Radius = vg.Points(5)
		p.Add(scatter)
		p.Legend.Add("Adaptive Simpson (var. tol)", scatter)
	}

	return savePlotPNG(p, 8.0, 6.0, filename)
}

// ------------------------------------------------------------
// Report
// ------------------------------------------------------------

// methodLabel renders the method column; adaptive rows carry their
// tolerance the way the reference report does.
func methodLabel(r quadrature.Result) string {
	if r.Method == quadrature.MethodAdaptive {
		return fmt.Sprintf("%s tol=%.0e", r.Method, r.Tol)
	}
	return r.Method
}

func printTable(rows []quadrature.Result) {
	fmt.Printf("%-42s %8s %8s %20s %14s\n", "Method", "N", "Evals", "Value", "AbsError")
	for _, r := range rows {
		nCol := "NaN"
		if !math.IsNaN(r.N) {
			nCol = fmt.Sprintf("%d", int(r.N))
		}
		fmt.Printf("%-42s %8s %8d %20.15f %14.6e\n",
			methodLabel(r), nCol, r.Evals, r.Value, r.AbsError)
	}
}

func csvRows(rows []quadrature.Result) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			methodLabel(r),
			fmt.Sprintf("%.15g", r.N),
			fmt.Sprintf("%d", r.Evals),
			fmt.Sprintf("%.15g", r.Value),
			fmt.Sprintf("%.15g", r.AbsError),
		})
	}
	return out
}

func main() {
	outDirFlag := flag.String("outdir", filepath.Join("output", "quadcompare"), "output directory for CSV and plot")
	flag.Parse()

	outDir := *outDirFlag
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("cannot create output dir: %v", err)
	}

	cfg := quadrature.DefaultConfig()

	rows, err := quadrature.RunExperiment(cfg)
	if err != nil {
		// Failed runs are skipped, not fatal: the comparison of the
		// remaining methods is still meaningful.
		log.Printf("warning: some runs were skipped: %v", err)
	}

	printTable(rows)
	fmt.Printf("\nExact integral I = 1/pi - 4/pi^3 = %.15f\n", quadrature.ExactIntegral())

	// Empirical convergence orders for the resolution-driven methods.
	for _, method := range []string{quadrature.MethodMidpoint, quadrature.MethodFVMWeighted} {
		orders := quadrature.ObservedOrders(quadrature.FilterByMethod(rows, method))
		if len(orders) == 0 {
			continue
		}
		fmt.Printf("Observed order, %s (finest pair): %.3f\n", method, orders[len(orders)-1])
	}

	csvName := filepath.Join(outDir, "quadcompare_results.csv")
	header := []string{"Method", "N", "Evals", "Value", "AbsError"}
	if err := writeCSV(csvName, header, csvRows(rows)); err != nil {
		log.Printf("warning: %v", err)
	}

	plotName := filepath.Join(outDir, "error_vs_evals.png")
	if err := saveConvergencePlot(rows, plotName); err != nil {
		log.Fatalf("cannot save convergence plot: %v", err)
	}

	log.Printf("Quadrature comparison finished. Results are in: %s", outDir)
}
