package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"
)

const (
	// DefaultTolerance is the percentage spread in axis spacing below which
	// an axis is treated as uniform.
	DefaultTolerance = 1.0

	ExampleSliceFile = `[Slice]

#######################
# Required Parameters #
#######################

# Files containing the x and y axes, one value per line. Each axis must be
# strictly increasing or strictly decreasing.
XFile = path/to/x.txt
YFile = path/to/y.txt

# File containing the gridded values. Every line holds one row of constant y
# with one column per x value. Rows are ordered by y, and if ZFile is set, all
# the rows of the first z layer come before all the rows of the second, etc.
DataFile = path/to/data.txt

# File that the resampled profile will be written to.
Output = path/to/profile.txt

#######################
# Optional Parameters #
#######################

# File containing the depth axis, one value per line. The depth axis may be
# non-uniform and is never interpolated. If it isn't set, the grid is 2D.
# ZFile = path/to/z.txt

# Percentage spread in axis spacing that is still considered uniform. If
# either the x or the y axis exceeds this, it will be resampled onto a uniform
# axis before slicing. Both axes exceeding it is an error. Default is 1.
# Tolerance = 1

# Spacing of the resampled axis. By default the smallest spacing on the
# non-uniform axis is used.
# Interval = 0.1

# End points of the slicing line. If none of these are set, the line runs
# horizontally across the middle of the grid.
# X0 = 1.0
# Y0 = 2.0
# X1 = 2.0
# Y1 = 4.0

# Reverse the depth axis of the output.
# RevZ = false

# Plots of the output. PlotFile is a line plot of the profile (or of the first
# layer of a 3D profile), HeatMapFile is an image of the whole distance-depth
# section of a 3D profile and MapFile is an image of the first layer of the
# grid with the slicing line drawn over it.
# PlotFile = path/to/profile.png
# HeatMapFile = path/to/section.png
# MapFile = path/to/map.png

# Axis labels used in plots.
# XLabel = x
# YLabel = y
# ZLabel = z
# ValueLabel = Value

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleProbeFile = `[Probe "centre"]
# Probes can be appended to a Slice config file. Each one writes the values
# along the depth axis at the grid point closest to (X, Y).

X = 1.5
Y = 3.0

#######################
# Optional Parameters #
#######################

# Defaults to the Output of the [Slice] section with the probe's name
# appended.
# Output = path/to/centre.txt

# Line plot of the depth profile. Only used for grids with a depth axis.
# PlotFile = path/to/centre.png`
)

type SliceConfig struct {
	// Required
	XFile, YFile, DataFile string
	Output string

	// Optional
	ZFile string
	Tolerance, Interval float64
	X0, Y0, X1, Y1 float64
	RevZ bool

	PlotFile, HeatMapFile, MapFile string
	XLabel, YLabel, ZLabel, ValueLabel string
	ProfileFile, LogFile string

	// lineSet is true if the end points were given explicitly.
	lineSet bool
}

type ProbeConfig struct {
	// Required
	X, Y float64

	// Optional
	Output, PlotFile string

	// Optional, "undocumented"
	Name string
}

// SliceWrapper is the top-level structure of a Slice config file.
type SliceWrapper struct {
	Slice SliceConfig
	Probe map[string]*ProbeConfig
}

// DefaultSliceWrapper returns a wrapper whose optional values are set to
// their defaults. End points are set to NaN so that it's possible to tell
// whether they were given.
func DefaultSliceWrapper() *SliceWrapper {
	nan := math.NaN()
	cfg := SliceConfig{
		Tolerance: DefaultTolerance,
		X0: nan, Y0: nan, X1: nan, Y1: nan,
		XLabel: "x", YLabel: "y", ZLabel: "z", ValueLabel: "Value",
	}
	// gcfg uses the "" entry as the default for every [Probe] section.
	probes := map[string]*ProbeConfig{ "": &ProbeConfig{ X: nan, Y: nan } }
	return &SliceWrapper{ Slice: cfg, Probe: probes }
}

// ReadSliceConfig reads a Slice config file and checks that it is valid.
func ReadSliceConfig(fname string) (*SliceWrapper, error) {
	wrap := DefaultSliceWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil { return nil, err }
	return wrap, nil
}

// ReadSliceConfigString is identical to ReadSliceConfig, but reads the config
// from a string.
func ReadSliceConfigString(str string) (*SliceWrapper, error) {
	wrap := DefaultSliceWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil { return nil, err }
	return wrap, nil
}

// CheckInit validates the config and fills in values which depend on other
// values.
func (wrap *SliceWrapper) CheckInit() error {
	con := &wrap.Slice

	if !con.ValidXFile() {
		return fmt.Errorf("Invalid/non-existent 'XFile' value.")
	} else if !con.ValidYFile() {
		return fmt.Errorf("Invalid/non-existent 'YFile' value.")
	} else if !con.ValidDataFile() {
		return fmt.Errorf("Invalid/non-existent 'DataFile' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidTolerance() {
		return fmt.Errorf(
			"'Tolerance' must be non-negative, but is %g.", con.Tolerance,
		)
	} else if !con.ValidInterval() {
		return fmt.Errorf(
			"'Interval' must be non-negative, but is %g.", con.Interval,
		)
	}

	set := 0
	for _, v := range []float64{con.X0, con.Y0, con.X1, con.Y1} {
		if !math.IsNaN(v) { set++ }
	}
	switch set {
	case 0:
		con.lineSet = false
	case 4:
		con.lineSet = true
	default:
		return fmt.Errorf(
			"Either all of 'X0', 'Y0', 'X1', and 'Y1' must be set or none " +
				"of them may be set.",
		)
	}

	delete(wrap.Probe, "")
	for name, probe := range wrap.Probe {
		if err := probe.CheckInit(name, con.Output); err != nil {
			return err
		}
	}

	return nil
}

func (con *SliceConfig) ValidXFile() bool { return con.XFile != "" }
func (con *SliceConfig) ValidYFile() bool { return con.YFile != "" }
func (con *SliceConfig) ValidDataFile() bool { return con.DataFile != "" }
func (con *SliceConfig) ValidOutput() bool { return con.Output != "" }

func (con *SliceConfig) ValidTolerance() bool {
	return con.Tolerance >= 0 && !math.IsInf(con.Tolerance, 0)
}

func (con *SliceConfig) ValidInterval() bool {
	return con.Interval >= 0 && !math.IsInf(con.Interval, 0)
}

func (con *SliceConfig) ValidLogFile() bool { return con.LogFile != "" }
func (con *SliceConfig) ValidProfileFile() bool { return con.ProfileFile != "" }

// Is3D returns true if a depth axis was given.
func (con *SliceConfig) Is3D() bool { return con.ZFile != "" }

// LineSet returns true if the end points of the slicing line were given
// explicitly. Only meaningful after CheckInit.
func (con *SliceConfig) LineSet() bool { return con.lineSet }

func (probe *ProbeConfig) CheckInit(name, output string) error {
	if math.IsNaN(probe.X) || math.IsInf(probe.X, 0) {
		return fmt.Errorf("X of Probe '%s' must be finite.", name)
	} else if math.IsNaN(probe.Y) || math.IsInf(probe.Y, 0) {
		return fmt.Errorf("Y of Probe '%s' must be finite.", name)
	}

	probe.Name = name
	if probe.Output == "" {
		probe.Output = fmt.Sprintf("%s.%s", output, name)
	}

	return nil
}
