package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/gridslice/grid"
	"github.com/phil-mansfield/gridslice/io"
	"github.com/phil-mansfield/gridslice/profile"
	"github.com/phil-mansfield/gridslice/render"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var sliceStr, exampleConfig string
	vars := map[string]*string{
		"Slice": &sliceStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sliceStr, "Slice", "", "Configuration file for [Slice] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Slice' and " +
			"'Probe'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Slice":
		wrap, err := io.ReadSliceConfig(sliceStr)
		if err != nil { log.Fatal(err.Error()) }
		sliceMain(wrap)
	case "ExampleConfig":
		switch exampleConfig {
		case "Slice":
			fmt.Println(io.ExampleSliceFile)
		case "Probe":
			fmt.Println(io.ExampleProbeFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Slice' and 'Probe'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	} else if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The following flags were set: %s, but gridslice only accepts " +
				"one flag at a time.", strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func sliceMain(wrap *io.SliceWrapper) {
	con := &wrap.Slice
	fg := setupIO(con)
	defer fg.Close()

	g, err := io.ReadGrid(con)
	if err != nil { log.Fatal(err.Error()) }
	log.WithFields(log.Fields{
		"nx": g.Nx(), "ny": g.Ny(), "layers": g.Layers(),
	}).Info("Read grid.")

	u, err := grid.Uniformize(g, con.Tolerance, con.Interval)
	if err != nil {
		if u != nil && u.Status == grid.Rejected {
			log.WithField("tolerance", con.Tolerance).Fatal(u.Status.String())
		}
		log.Fatal(err.Error())
	}
	log.WithFields(log.Fields{
		"axis": u.Axis, "interval": u.Interval,
	}).Info(u.Status.String())
	g = u.Grid

	line := profile.DefaultLine(g)
	if con.LineSet() {
		line = profile.Line{ X0: con.X0, Y0: con.Y0, X1: con.X1, Y1: con.Y1 }
	}

	p, err := profile.Slice(g, line, con.RevZ)
	if err != nil { log.Fatal(err.Error()) }
	log.WithFields(log.Fields{
		"start": fmt.Sprintf("(%g, %g)", line.X0, line.Y0),
		"end": fmt.Sprintf("(%g, %g)", line.X1, line.Y1),
		"samples": p.Samples(),
	}).Info("Sliced grid.")

	if err = io.WriteProfileFile(con.Output, p); err != nil {
		log.Fatal(err.Error())
	}

	labels := render.Labels{
		X: con.XLabel, Y: con.YLabel, Z: con.ZLabel, Value: con.ValueLabel,
	}
	pending := false

	if con.PlotFile != "" {
		if err = render.ProfilePlot(p, 0, con.PlotFile, labels); err != nil {
			log.Fatal(err.Error())
		}
		pending = true
	}

	if con.HeatMapFile != "" {
		if !g.Is3D() {
			log.Warnf("Skipping 'HeatMapFile' %s: grid has no depth axis.",
				con.HeatMapFile)
		} else if err = render.HeatMap(p, con.HeatMapFile, labels); err != nil {
			log.Warn(err.Error())
		}
	}

	if con.MapFile != "" {
		err = render.GridMap(g, 0, line, con.MapFile, labels)
		if err != nil { log.Warn(err.Error()) }
	}

	if probeMain(g, wrap, labels) { pending = true }

	if pending { render.Execute() }
}

// probeMain writes a depth profile for every [Probe] section. It returns true
// if any plots are waiting on render.Execute.
func probeMain(g *grid.Grid, wrap *io.SliceWrapper, labels render.Labels) bool {
	names := []string{}
	for name := range wrap.Probe { names = append(names, name) }
	sort.Strings(names)

	pending := false
	for _, name := range names {
		probe := wrap.Probe[name]
		dp, err := profile.Depth(g, probe.X, probe.Y, wrap.Slice.RevZ)
		if err != nil { log.Fatal(err.Error()) }

		if !dp.OnGrid {
			log.WithField("probe", name).Warnf("%s, writing NaN values.", dp)
		}
		if err = io.WriteDepthFile(probe.Output, dp); err != nil {
			log.Fatal(err.Error())
		}

		if probe.PlotFile == "" { continue }
		if err = render.DepthPlot(dp, probe.PlotFile, labels); err != nil {
			log.WithField("probe", name).Warn(err.Error())
			continue
		}
		pending = true
	}

	return pending
}

// setupIO sets up the log file and the profile file.
func setupIO(con *io.SliceConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}
