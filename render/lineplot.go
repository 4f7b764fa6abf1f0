/*
Package render draws profiles and grids. Line plots are written as matplotlib
scripts through pyplot and only turn into images once Execute is called, while
heat maps are drawn directly with gonum/plot.
*/
package render

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gridslice/profile"
)

// Labels holds the axis labels used by every plot.
type Labels struct {
	X, Y, Z, Value string
}

// DefaultLabels returns the labels used when nothing else has been configured.
func DefaultLabels() Labels {
	return Labels{ X: "x", Y: "y", Z: "z", Value: "Value" }
}

// ProfilePlot adds a line plot of layer k of p against distance along the line
// to the pending matplotlib script. The figure is saved to fname once Execute
// is called.
func ProfilePlot(p *profile.Profile, k int, fname string, labels Labels) error {
	if k < 0 || k >= p.Layers() {
		return fmt.Errorf(
			"Profile layer %d is not in the range [0, %d).", k, p.Layers(),
		)
	} else if p.Samples() == 0 {
		return fmt.Errorf("Profile has no samples.")
	}

	plt.Figure()
	rSets, vSets := nanSplit(p.Rs, p.Layer(k))
	for i := range rSets {
		plt.Plot(rSets[i], vSets[i], "b", plt.LW(2))
	}

	if p.Zs == nil {
		plt.Title(fmt.Sprintf(
			"(%.4g, %.4g) to (%.4g, %.4g)",
			p.Xs[0], p.Ys[0], p.Xs[p.Samples() - 1], p.Ys[p.Samples() - 1],
		))
	} else {
		plt.Title(fmt.Sprintf("%s = %.4g", labels.Z, p.Zs[k]))
	}
	plt.XLabel("Distance", plt.FontSize(16))
	plt.YLabel(labels.Value, plt.FontSize(16))

	if p.Samples() > 1 { plt.XLim(p.Rs[0], p.Rs[p.Samples() - 1]) }
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	return nil
}

// DepthPlot adds a line plot of a depth profile to the pending matplotlib
// script. The depth axis runs vertically, as it would in a section. Profiles
// from 2D grids have nothing to plot and return an error.
func DepthPlot(dp *profile.DepthProfile, fname string, labels Labels) error {
	if dp.Zs == nil {
		return fmt.Errorf("Depth profile %s has no depth axis.", dp)
	}

	plt.Figure(plt.FigSize(6, 8))
	zSets, vSets := nanSplit(dp.Zs, dp.Vals)
	for i := range zSets {
		plt.Plot(vSets[i], zSets[i], "r", plt.LW(2))
	}

	plt.Title(dp.String())
	plt.XLabel(labels.Value, plt.FontSize(16))
	plt.YLabel(labels.Z, plt.FontSize(16))
	if len(dp.Zs) > 1 { plt.YLim(dp.Zs[0], dp.Zs[len(dp.Zs) - 1]) }
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)

	return nil
}

// Execute runs every pending plotting command.
func Execute() { plt.Execute() }

// nanSplit splits xs and ys into the runs where ys isn't NaN.
func nanSplit(xs, ys []float64) (xSets, ySets [][]float64) {
	start := -1
	for i := 0; i <= len(ys); i++ {
		if i < len(ys) && !math.IsNaN(ys[i]) {
			if start == -1 { start = i }
			continue
		}
		if start != -1 {
			xSets = append(xSets, xs[start:i])
			ySets = append(ySets, ys[start:i])
			start = -1
		}
	}
	return xSets, ySets
}
