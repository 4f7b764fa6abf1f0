package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/phil-mansfield/gridslice/grid"
	"github.com/phil-mansfield/gridslice/profile"
)

const (
	// ColorRangeDelta is the smallest width the color scale of a heat map is
	// allowed to have.
	ColorRangeDelta = 0.01
	colors = 256
)

var (
	plotWidth, plotHeight = 6*vg.Inch, 5*vg.Inch
	lineColor = color.RGBA{ A: 255 }
)

// sectionXYZ presents a 3D profile as a plotter.GridXYZ with distance along
// the columns and depth along the rows. Rows are ordered so that depth is
// increasing.
type sectionXYZ struct {
	p *profile.Profile
	flipZ bool
}

func newSectionXYZ(p *profile.Profile) (*sectionXYZ, error) {
	if p.Zs == nil {
		return nil, fmt.Errorf("Profile has no depth axis.")
	} else if p.Samples() < 2 || p.Layers() < 2 {
		return nil, fmt.Errorf(
			"Section with %d samples and %d layers is too small to draw.",
			p.Samples(), p.Layers(),
		)
	}
	return &sectionXYZ{ p, p.Zs[0] > p.Zs[len(p.Zs) - 1] }, nil
}

func (s *sectionXYZ) layer(r int) int {
	if s.flipZ { return len(s.p.Zs) - 1 - r }
	return r
}

func (s *sectionXYZ) Dims() (c, r int) { return s.p.Samples(), s.p.Layers() }
func (s *sectionXYZ) X(c int) float64 { return s.p.Rs[c] }
func (s *sectionXYZ) Y(r int) float64 { return s.p.Zs[s.layer(r)] }
func (s *sectionXYZ) Z(c, r int) float64 {
	return s.p.Vals[s.layer(r)*s.p.Samples() + c]
}

// layerXYZ presents one layer of a grid as a plotter.GridXYZ. Both axes are
// ordered so that they're increasing.
type layerXYZ struct {
	g *grid.Grid
	vals []float64
	flipX, flipY bool
}

func newLayerXYZ(g *grid.Grid, k int) (*layerXYZ, error) {
	if err := g.Check(); err != nil { return nil, err }
	vals, err := g.Layer(k)
	if err != nil { return nil, err }
	if g.Nx() < 2 || g.Ny() < 2 {
		return nil, fmt.Errorf(
			"%d x %d grid is too small to draw.", g.Nx(), g.Ny(),
		)
	}

	return &layerXYZ{
		g: g, vals: vals,
		flipX: g.Xs[0] > g.Xs[g.Nx() - 1],
		flipY: g.Ys[0] > g.Ys[g.Ny() - 1],
	}, nil
}

func (l *layerXYZ) index(c, r int) (i, j int) {
	i, j = c, r
	if l.flipX { i = l.g.Nx() - 1 - c }
	if l.flipY { j = l.g.Ny() - 1 - r }
	return i, j
}

func (l *layerXYZ) Dims() (c, r int) { return l.g.Nx(), l.g.Ny() }
func (l *layerXYZ) X(c int) float64 {
	i, _ := l.index(c, 0)
	return l.g.Xs[i]
}
func (l *layerXYZ) Y(r int) float64 {
	_, j := l.index(0, r)
	return l.g.Ys[j]
}
func (l *layerXYZ) Z(c, r int) float64 {
	i, j := l.index(c, r)
	return l.vals[j*l.g.Nx() + i]
}

// newHeatMap creates a heat map whose color scale covers the non-NaN range of
// vals.
func newHeatMap(g plotter.GridXYZ, vals []float64) *plotter.HeatMap {
	hm := plotter.NewHeatMap(g, palette.Heat(colors, 1))
	hm.Min, hm.Max = grid.Range(vals, ColorRangeDelta)
	hm.NaN = color.Transparent
	return hm
}

// HeatMap writes an image of the distance-depth section of a 3D profile to
// fname. The format is taken from the file extension.
func HeatMap(p *profile.Profile, fname string, labels Labels) error {
	xyz, err := newSectionXYZ(p)
	if err != nil { return err }

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf(
		"(%.4g, %.4g) to (%.4g, %.4g)",
		p.Xs[0], p.Ys[0], p.Xs[p.Samples() - 1], p.Ys[p.Samples() - 1],
	)
	pl.X.Label.Text = "Distance"
	pl.Y.Label.Text = labels.Z
	pl.Add(newHeatMap(xyz, p.Vals))

	return pl.Save(plotWidth, plotHeight, fname)
}

// GridMap writes an image of layer k of g to fname with l drawn over it. The
// format is taken from the file extension.
func GridMap(
	g *grid.Grid, k int, l profile.Line, fname string, labels Labels,
) error {
	xyz, err := newLayerXYZ(g, k)
	if err != nil { return err }

	pl := plot.New()
	if g.Is3D() {
		pl.Title.Text = fmt.Sprintf("%s = %.4g", labels.Z, g.Zs[k])
	}
	pl.X.Label.Text = labels.X
	pl.Y.Label.Text = labels.Y
	pl.Add(newHeatMap(xyz, xyz.vals))

	line, err := plotter.NewLine(plotter.XYs{{ X: l.X0, Y: l.Y0 }, { X: l.X1, Y: l.Y1 }})
	if err != nil { return err }
	line.Color = lineColor
	line.Width = vg.Points(2)
	pl.Add(line)

	return pl.Save(plotWidth, plotHeight, fname)
}
