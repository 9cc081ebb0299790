package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/landy/geom"
	"github.com/phil-mansfield/landy/io"
	"github.com/phil-mansfield/landy/pga"
)

type FileGroup struct {
	log *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		midpoint, torus string
		exampleConfig   string
	)
	vars := map[string]*string{
		"Midpoint":      &midpoint,
		"Torus":         &torus,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&midpoint, "Midpoint", "",
		"Configuration file for [Midpoint] mode.",
	)
	flag.StringVar(
		&torus, "Torus", "",
		"Configuration file for [Torus] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Midpoint' "+
			"and 'Torus'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Midpoint":
		con, err := io.ReadMidpointConfig(midpoint)
		if err != nil {
			log.Fatal(err.Error())
		}
		fg := setupLog(&con.SharedConfig)
		defer fg.Close()
		midpointMain(con)

	case "Torus":
		con, err := io.ReadTorusConfig(torus)
		if err != nil {
			log.Fatal(err.Error())
		}
		fg := setupLog(&con.SharedConfig)
		defer fg.Close()
		torusMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Midpoint":
			fmt.Println(io.ExampleMidpointFile)
		case "Torus":
			fmt.Println(io.ExampleTorusFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Midpoint' and 'Torus'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but landy "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupLog(con *io.SharedConfig) *FileGroup {
	fg := &FileGroup{}
	if con.ValidLogFile() {
		var err error
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}
	return fg
}

func midpointMain(con *io.MidpointConfig) {
	geom.Eps = con.Tolerance

	as, bs, err := io.ReadLinePairs(con.Input, con.LineFormat())
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d line pairs from %s.", len(as), con.Input)

	mids := make([]geom.Point, len(as))
	parallel, disagreements := 0, 0
	for i := range as {
		mid, ok := geom.Midpoint(as[i], bs[i])
		luMid, luOk := geom.MidpointLU(as[i], bs[i])
		pgaMid, pgaOk := pga.Midpoint(
			pga.LineFromGeom(as[i]), pga.LineFromGeom(bs[i]),
		)

		if !ok {
			parallel++
			mids[i] = io.NaNPoint()
			if luOk || pgaOk {
				disagreements++
				log.Printf("Pair %d is parallel classically, but not "+
					"according to the other methods.", i)
			}
			continue
		}

		eps := con.Tolerance * math.Max(1, geom.Norm(mid))
		if !luOk || !pgaOk || !geom.IsNearEps(mid, luMid, eps) ||
			!geom.IsNearEps(mid, pgaMid, eps) {
			disagreements++
			log.Printf("Midpoints of pair %d disagree: classical %v, "+
				"LU %v, PGA %v.", i, mid, luMid, pgaMid)
		}

		if pgaOk {
			mids[i] = pgaMid
		} else {
			mids[i] = mid
		}
	}

	log.Printf("%d/%d pairs were parallel and %d/%d pairs disagreed.",
		parallel, len(as), disagreements, len(as))

	log.Printf("Writing to %s", con.Output)
	if err := io.WritePoints(con.Output, mids); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		plotProjection(
			mids, 0, 1, "Line pair midpoints", con.PlotFile,
		)
		plt.Execute()
	}
}

func torusMain(con *io.TorusConfig) {
	ps := make([]geom.Point, 0, con.S*con.T)
	for i := 0; i < con.S; i++ {
		for j := 0; j < con.T; j++ {
			s, t := float64(i)/float64(con.S), float64(j)/float64(con.T)
			p, err := pga.PointOnTorus(s, t)
			if err != nil {
				log.Fatal(err.Error())
			}
			c, ok := pga.Coords(p)
			if !ok {
				log.Fatalf("Torus point (%g, %g) is at infinity.", s, t)
			}
			ps = append(ps, c)
		}
	}
	log.Printf("Sampled %d torus points.", len(ps))

	log.Printf("Writing to %s", con.Output)
	if err := io.WritePoints(con.Output, ps); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		plotProjection(ps, 0, 2, "Torus", con.PlotFile)
		plt.Execute()
	}
}

var axisNames = []string{"$X$", "$Y$", "$Z$"}

// plotProjection plots the points projected onto the plane spanned by the
// axes dim0 and dim1. Points with NaN coordinates are skipped.
func plotProjection(ps []geom.Point, dim0, dim1 int, title, fname string) {
	xs, ys := make([]float64, 0, len(ps)), make([]float64, 0, len(ps))
	for _, p := range ps {
		v := [3]float64{p.X, p.Y, p.Z}
		if math.IsNaN(v[dim0]) || math.IsNaN(v[dim1]) {
			continue
		}
		xs = append(xs, v[dim0])
		ys = append(ys, v[dim1])
	}

	plt.Figure()
	plt.Plot(xs, ys, "ok")
	plt.Title(title)
	plt.XLabel(axisNames[dim0], plt.FontSize(16))
	plt.YLabel(axisNames[dim1], plt.FontSize(16))
	plt.SaveFig(fname)
}
