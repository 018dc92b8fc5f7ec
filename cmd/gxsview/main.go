// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gxsview reads a PHITS/MCNP-family geometry deck and renders a
// cross-sectional raster image of its CSG world.
package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/ohnishi-lab/gxsview/card"
	"github.com/ohnishi-lab/gxsview/geometry"
	"github.com/ohnishi-lab/gxsview/gmath"
	"github.com/ohnishi-lab/gxsview/palette"
	"github.com/ohnishi-lab/gxsview/render"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// message
	if mpi.Rank() == 0 {
		io.PfWhite("\ngxsview -- Go CSG deck sectional viewer\n\n")
	}

	// flags
	out := flag.String("out", "section.xpm", "output XPM file")
	origin := flag.String("origin", "0,0,0", "view plane origin, \"x,y,z\" in cm")
	hdir := flag.String("hdir", "1,0,0", "view plane horizontal axis, \"x,y,z\" cm span")
	vdir := flag.String("vdir", "0,1,0", "view plane vertical axis, \"x,y,z\" cm span")
	hreso := flag.Int("hreso", 256, "horizontal pixel resolution")
	vreso := flag.Int("vreso", 256, "vertical pixel resolution")
	nt := flag.Int("nt", 0, "number of worker threads (0: guess from CPU count/MPI)")
	colors := flag.String("colors", "", "optional JSON material-color override file")
	dump := flag.String("dump", "", "verbose macro-expansion dump directory (empty: no dump)")
	quiet := flag.Bool("quiet", false, "suppress progress messages")
	debugRay := flag.String("debug-ray", "", "trace a single ray \"x,y,z,dx,dy,dz,length\" and plot its cell-boundary staircase to /tmp/gxsview/debug_ray.png instead of rendering")
	flag.Parse()

	verbose := !*quiet && mpi.Rank() == 0
	if len(flag.Args()) == 0 {
		chk.Panic("Please, provide a deck filename. Ex.: model.deck")
	}
	fnamepath := flag.Arg(0)

	surfRecs, cellRecs, trRecs, err := readDeck(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("> read %d surface cards, %d cell cards, %d TR cards from %q\n", len(surfRecs), len(cellRecs), len(trRecs), fnamepath)
	}

	var overrides map[string]palette.MaterialColorData
	if *colors != "" {
		f, err := os.Open(*colors)
		if err != nil {
			chk.Panic("cannot open color config %q: %v", *colors, err)
		}
		overrides, err = palette.LoadConfig(f)
		f.Close()
		if err != nil {
			chk.Panic("cannot parse color config %q: %v", *colors, err)
		}
	}

	g, err := geometry.Build(geometry.Input{
		SurfaceRecords: surfRecs,
		CellRecords:    cellRecs,
		TrRecords:      trRecs,
		ColorOverrides: overrides,
		Verbose:        verbose,
		Quiet:          *quiet,
		DumpDir:        *dump,
	})
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("> built geometry: %d cells, %d surfaces\n", len(g.Cells), len(g.Surfaces))
	}

	if *debugRay != "" {
		rayOrigin, dirUnit, length, err := parseDebugRay(*debugRay)
		if err != nil {
			chk.Panic("-debug-ray: %v", err)
		}
		ray, err := g.DebugTraceRay(rayOrigin, dirUnit, length)
		if err != nil {
			chk.Panic("%v", err)
		}
		if err := render.DebugPlotRay(ray); err != nil {
			chk.Panic("%v", err)
		}
		if mpi.Rank() == 0 {
			io.PfGreen("> wrote /tmp/gxsview/debug_ray.png\n")
		}
		return
	}

	o, err := parseVector3(*origin)
	if err != nil {
		chk.Panic("-origin: %v", err)
	}
	h, err := parseVector3(*hdir)
	if err != nil {
		chk.Panic("-hdir: %v", err)
	}
	v, err := parseVector3(*vdir)
	if err != nil {
		chk.Panic("-vdir: %v", err)
	}

	numThread := render.GuessNumThreads(*nt)
	if verbose {
		io.Pf("> tracing %dx%d pixels with %d worker threads\n", *hreso, *vreso, numThread)
	}

	bmp, err := g.SectionalImage(o, h, v, *hreso, *vreso, numThread, verbose, *quiet, nil)
	if err != nil {
		chk.Panic("%v", err)
	}
	if bmp.Empty() {
		chk.Panic("sectional image came back empty")
	}

	if err := bmp.ExportXPMFile(*out); err != nil {
		chk.Panic("%v", err)
	}
	if mpi.Rank() == 0 {
		io.PfGreen("> wrote %q\n", *out)
	}
}

// readDeck splits a PHITS/MCNP-family deck into its three blank-line
// delimited blocks (cells, surfaces, data) and returns the cell and
// surface block lines plus the tr-prefixed lines of the data block as
// card.Records, unparsed. The meta-expansion
// stage (comments, continuations, i/j/m/r fill, {set:}/{N-M} ranges) is
// assumed already applied upstream; every non-blank line here is a
// cleaned card line.
func readDeck(path string) (surfRecs, cellRecs []card.Record, trRecs []card.Record, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, chk.Err("cannot open deck %q: %v", path, err)
	}
	defer f.Close()

	var blocks [3][]card.Record
	block := 0
	lineno := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineno++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			if block < 2 {
				block++
			}
			continue
		}
		blocks[block] = append(blocks[block], card.Record{File: path, Line: lineno, Text: text, Echo: true})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, chk.Err("error reading deck %q: %v", path, err)
	}

	cellRecs = blocks[0]
	surfRecs = blocks[1]
	for _, r := range blocks[2] {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(r.Text)), "tr") {
			trRecs = append(trRecs, r)
		}
	}
	return surfRecs, cellRecs, trRecs, nil
}

// parseDebugRay parses "x,y,z,dx,dy,dz,length" into an origin, a
// normalized direction and a trace length.
func parseDebugRay(s string) (origin, dirUnit gmath.Vector3, length float64, err error) {
	fields := strings.Split(s, ",")
	if len(fields) != 7 {
		return origin, dirUnit, 0, chk.Err("expected \"x,y,z,dx,dy,dz,length\", got %q", s)
	}
	nums := make([]float64, 7)
	for i, f := range fields {
		nums[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return origin, dirUnit, 0, chk.Err("malformed component %q in %q: %v", f, s, err)
		}
	}
	origin = gmath.NewVector3(nums[0], nums[1], nums[2])
	dirUnit = gmath.NewVector3(nums[3], nums[4], nums[5]).Normalize()
	return origin, dirUnit, nums[6], nil
}

func parseVector3(s string) (gmath.Vector3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return gmath.Vector3{}, chk.Err("expected \"x,y,z\", got %q", s)
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return gmath.Vector3{}, chk.Err("malformed component %q in %q: %v", f, s, err)
		}
		v[i] = n
	}
	return gmath.NewVector3(v[0], v[1], v[2]), nil
}
