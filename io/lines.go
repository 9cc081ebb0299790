package io

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/landy/geom"
)

// LinePairColumns is the number of columns in a line pair table.
const LinePairColumns = 12

// ReadLinePairs reads a whitespace-separated table of line pairs. Columns
// 0-5 describe the first line and 6-11 the second, either as two points
// (Points) or as a point and a direction (Directions).
func ReadLinePairs(fname string, format LineFormat) (as, bs []geom.Line, err error) {
	colIdxs := make([]int, LinePairColumns)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, nil, err
	}

	return LinePairsFromColumns(cols, format)
}

// LinePairsFromColumns converts the columns of a line pair table into
// lines.
func LinePairsFromColumns(
	cols [][]float64, format LineFormat,
) (as, bs []geom.Line, err error) {
	if len(cols) != LinePairColumns {
		return nil, nil, fmt.Errorf(
			"Line pair tables need %d columns, but %d were given.",
			LinePairColumns, len(cols),
		)
	}

	n := len(cols[0])
	for i := range cols {
		if len(cols[i]) != n {
			return nil, nil, fmt.Errorf(
				"Column %d has %d rows, but column 0 has %d.",
				i, len(cols[i]), n,
			)
		}
	}

	point := func(col, row int) geom.Point {
		return geom.Point{X: cols[col][row], Y: cols[col+1][row], Z: cols[col+2][row]}
	}
	line := func(col, row int) (geom.Line, error) {
		p, q := point(col, row), point(col+3, row)
		switch format {
		case Points:
			return geom.LineThrough(p, q), nil
		case Directions:
			return geom.LineAlong(p, q), nil
		}
		return geom.Line{}, fmt.Errorf("Unrecognized line format %v.", format)
	}

	as, bs = make([]geom.Line, n), make([]geom.Line, n)
	for i := 0; i < n; i++ {
		if as[i], err = line(0, i); err != nil {
			return nil, nil, err
		}
		if bs[i], err = line(6, i); err != nil {
			return nil, nil, err
		}
	}

	return as, bs, nil
}

// WritePoints writes one "x y z" row per point to fname. Points with a
// NaN coordinate, like the midpoint of two parallel lines, are written as
// "nan nan nan".
func WritePoints(fname string, ps []geom.Point) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range ps {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			fmt.Fprintln(w, "nan nan nan")
		} else {
			fmt.Fprintf(w, "%.10g %.10g %.10g\n", p.X, p.Y, p.Z)
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// NaNPoint is the placeholder written for pairs without a midpoint.
func NaNPoint() geom.Point {
	nan := math.NaN()
	return geom.Point{X: nan, Y: nan, Z: nan}
}
