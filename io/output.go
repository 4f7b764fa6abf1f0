package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/gridslice/profile"
)

// WriteProfile writes p as a whitespace-separated text table with a commented
// header. 2D profiles have the columns
//     r x y value
// and 3D profiles have one line per sample per layer, with the columns
//     r x y z value
func WriteProfile(w io.Writer, p *profile.Profile) error {
	bw := bufio.NewWriter(w)
	n := p.Samples()

	if p.Zs == nil {
		fmt.Fprintf(bw, "# %d samples\n", n)
		fmt.Fprintln(bw, "# r x y value")
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "%.10g %.10g %.10g %.10g\n",
				p.Rs[i], p.Xs[i], p.Ys[i], p.Vals[i])
		}
		return bw.Flush()
	}

	fmt.Fprintf(bw, "# %d samples, %d layers\n", n, p.Layers())
	fmt.Fprintln(bw, "# r x y z value")
	for k := 0; k < p.Layers(); k++ {
		layer := p.Layer(k)
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "%.10g %.10g %.10g %.10g %.10g\n",
				p.Rs[i], p.Xs[i], p.Ys[i], p.Zs[k], layer[i])
		}
	}
	return bw.Flush()
}

// WriteDepth writes dp as a whitespace-separated text table with the columns
//     z value
// 2D depth profiles have a single line with a z of 0.
func WriteDepth(w io.Writer, dp *profile.DepthProfile) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n", dp.String())
	fmt.Fprintln(bw, "# z value")
	for k, v := range dp.Vals {
		z := 0.0
		if dp.Zs != nil { z = dp.Zs[k] }
		fmt.Fprintf(bw, "%.10g %.10g\n", z, v)
	}
	return bw.Flush()
}

// WriteProfileFile writes p to the file fname. See WriteProfile.
func WriteProfileFile(fname string, p *profile.Profile) error {
	return writeFile(fname, func(w io.Writer) error {
		return WriteProfile(w, p)
	})
}

// WriteDepthFile writes dp to the file fname. See WriteDepth.
func WriteDepthFile(fname string, dp *profile.DepthProfile) error {
	return writeFile(fname, func(w io.Writer) error {
		return WriteDepth(w, dp)
	})
}

func writeFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil { return err }

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
