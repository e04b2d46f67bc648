// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command traceplot draws a chart of series data.
//
// traceplot reads data in any of the formats of package dataset (JSON,
// the text format, or an Excel workbook, chosen by file extension) and
// writes a chart of it. For example,
//
//	traceplot -chart bar -o bars.svg,bars.png data.json
//
// writes the same stacked bar chart as SVG and PNG. Force-directed
// charts take their data from -graph and choropleths take their shapes
// from -regions.
//
// With -watch, traceplot keeps running and redraws the outputs every
// time the input is written, moving the chart to the new data.
//
// Default flags may be given in the TRACEPLOT_FLAGS environment
// variable, quoted like shell words.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-trace/dataset"
	"github.com/aclements/go-trace/series"
	"github.com/aclements/go-trace/trace"
)

var variants = map[string]func() trace.Variant{
	"line":       func() trace.Variant { return &trace.Line{} },
	"bar":        func() trace.Variant { return &trace.Bar{} },
	"pie":        func() trace.Variant { return &trace.Pie{} },
	"likert":     func() trace.Variant { return &trace.Likert{} },
	"force":      func() trace.Variant { return &trace.Force{} },
	"choropleth": func() trace.Variant { return &trace.Choropleth{} },
}

func main() {
	log.SetPrefix("traceplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile  = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile  = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut         = flag.String("o", "", "write output to comma-separated `files`; the format is chosen by extension (default: SVG to stdout)")
		flagChart       = flag.String("chart", "line", "chart `kind`: line, bar, pie, likert, force or choropleth")
		flagWidth       = flag.Int("width", 500, "chart width in pixels")
		flagHeight      = flag.Int("height", 500, "chart height in pixels")
		flagInterpolate = flag.String("interpolate", "", "line interpolation `mode`: linear, step, step-before or step-after")
		flagLegend      = flag.Bool("legend", true, "draw a legend")
		flagLevels      = flag.Int("levels", 0, "number of choropleth color levels")
		flagGraph       = flag.String("graph", "", "read force-directed graph from JSON `file`")
		flagRegions     = flag.String("regions", "", "read choropleth regions from JSON `file`")
		flagRandom      = flag.Int("random", 0, "chart three random series of `n` points instead of reading input")
		flagSeed        = flag.Int64("seed", 1, "random `seed` for -random")
		flagTable       = flag.Bool("table", false, "print the stacked data as a table instead of a chart")
		flagGG          = flag.Bool("gg", false, "write a quick-look SVG plot of the raw data instead of a chart")
		flagDot         = flag.Bool("dot", false, "write the -graph as Graphviz dot instead of a chart")
		flagWatch       = flag.Bool("watch", false, "redraw the outputs whenever the input changes")
		flagChrome      = flag.Bool("chrome", false, "rasterize with headless Chrome instead of the built-in rasterizer")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	args, err := envArgs(os.Getenv("TRACEPLOT_FLAGS"), os.Args[1:])
	if err != nil {
		log.Fatalf("TRACEPLOT_FLAGS: %v", err)
	}
	flag.CommandLine.Parse(args)

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	newVariant, ok := variants[*flagChart]
	if !ok {
		log.Fatalf("unknown chart kind %q", *flagChart)
	}
	v := newVariant()

	// Read inputs.
	paths := flag.Args()
	cfg := trace.DefaultConfig(v)
	cfg.Width, cfg.Height = *flagWidth, *flagHeight
	cfg.Legend = *flagLegend
	cfg.Levels = *flagLevels
	if *flagInterpolate != "" {
		cfg.Interpolate = *flagInterpolate
	}
	if *flagGraph != "" {
		cfg.Graph, err = readWith(*flagGraph, dataset.ReadGraph)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *flagRegions != "" {
		cfg.Regions, err = readWith(*flagRegions, dataset.ReadRegions)
		if err != nil {
			log.Fatal(err)
		}
	}
	switch {
	case *flagRandom > 0:
		cfg.Data = dataset.RandomSet(rand.New(rand.NewSource(*flagSeed)), 3, *flagRandom)
	case *flagChart == "force":
		// Force-directed charts have no series data.
	default:
		if len(paths) == 0 {
			paths = []string{"-"}
		}
		cfg.Data, err = readInputs(paths)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Prepare for output.
	outputs := strings.Split(*flagOut, ",")
	if *flagOut == "" {
		outputs = []string{"-"}
	}

	// Alternate outputs.
	if *flagTable || *flagGG || *flagDot {
		w, close := openOut(outputs[0])
		defer close()
		switch {
		case *flagTable:
			err = printTable(w, cfg.Data, *flagChart == "likert")
		case *flagGG:
			if cfg.Data == nil {
				log.Fatal("-gg requires series data")
			}
			err = quickLook(cfg.Data, cfg.Interpolate).WriteSVG(w, cfg.Width, cfg.Height)
		case *flagDot:
			if cfg.Graph == nil {
				log.Fatal("-dot requires -graph")
			}
			err = writeDot(w, cfg.Graph)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	// Chart.
	c, err := trace.New(v, cfg)
	if err != nil {
		log.Fatal(err)
	}
	r := &renderer{outputs: outputs, chrome: *flagChrome}
	if err := r.write(c); err != nil {
		log.Fatal(err)
	}
	if *flagWatch {
		if len(paths) == 0 || paths[0] == "-" {
			log.Fatal("-watch requires input files")
		}
		if err := watch(c, r, paths); err != nil {
			log.Fatal(err)
		}
	}
}

// envArgs returns the flags in env followed by args.
func envArgs(env string, args []string) ([]string, error) {
	if env == "" {
		return args, nil
	}
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, err
	}
	return append(words, args...), nil
}

// readInputs reads and concatenates the series of each of paths.
func readInputs(paths []string) (*series.Set, error) {
	if len(paths) == 1 {
		return dataset.ReadFile(paths[0])
	}
	all := series.NewSet()
	for _, path := range paths {
		set, err := dataset.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for i := 0; i < set.Len(); i++ {
			s := set.Series(i)
			all.Add(s.Name, s.Obs...)
		}
	}
	return all, nil
}

func readWith[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	x, err := read(f)
	if err != nil {
		return x, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

// openOut opens path for writing, or stdout for "-".
func openOut(path string) (io.Writer, func()) {
	if path == "-" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
