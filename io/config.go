package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleMidpointFile = `[Midpoint]

#######################
# Required Parameters #
#######################

# Whitespace-separated table with one pair of lines per row. Each row has
# twelve columns, read according to Format below.
Input = path/to/lines.txt
# File which the midpoints will be written to, one "x y z" row per input
# row. Parallel pairs are written as "nan nan nan".
Output = path/to/midpoints.txt

#######################
# Optional Parameters #
#######################

# How the twelve columns of each row describe the two lines:
#   Points:     p1 q1 p2 q2, two points on each line.
#   Directions: p1 d1 p2 d2, a point on each line and its direction.
# Default is Points.
# Format = Points

# Lines whose directions have a cross product shorter than Tolerance are
# treated as parallel, and midpoints found by the different methods are
# only reported as disagreeing if they are further apart than Tolerance.
# Default is 1e-6.
# Tolerance = 1e-6

# If set, the x-y projection of the midpoints is plotted to this file.
# PlotFile = midpoints.png

# LogFile = log.out`

	ExampleTorusFile = `[Torus]

#######################
# Required Parameters #
#######################

# File which the torus points will be written to, one "x y z" row per
# sample.
Output = path/to/torus.txt

# Number of samples around the tube (S) and around the central axis (T).
S = 32
T = 64

#######################
# Optional Parameters #
#######################

# If set, the x-z projection of the samples is plotted to this file.
# PlotFile = torus.png

# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, PlotFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// LineFormat describes how the columns of a line pair table are read.
type LineFormat int

const (
	Points LineFormat = iota
	Directions
	EndLineFormat
)

var lineFormatNames = []string{"Points", "Directions"}

func (f LineFormat) String() string {
	if f < 0 || f >= EndLineFormat {
		return fmt.Sprintf("LineFormat(%d)", int(f))
	}
	return lineFormatNames[f]
}

// ParseLineFormat is case insensitive.
func ParseLineFormat(s string) (LineFormat, error) {
	var f LineFormat
	for f = 0; f < EndLineFormat; f++ {
		if strings.ToLower(f.String()) == strings.ToLower(s) {
			return f, nil
		}
	}
	return 0, fmt.Errorf(
		"Unrecognized line format '%s'. Accepted formats are: %s.",
		s, strings.Join(lineFormatNames, ", "),
	)
}

type MidpointConfig struct {
	SharedConfig

	// Required
	Input, Output string

	// Optional
	Format    string
	Tolerance float64
}

func DefaultMidpointWrapper() *MidpointWrapper {
	con := MidpointConfig{}
	con.Format = Points.String()
	con.Tolerance = 1e-6
	return &MidpointWrapper{con}
}

func (con *MidpointConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *MidpointConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *MidpointConfig) ValidFormat() bool {
	_, err := ParseLineFormat(con.Format)
	return err == nil
}
func (con *MidpointConfig) ValidTolerance() bool {
	return con.Tolerance > 0
}

// LineFormat returns the parsed Format. Call ValidFormat first.
func (con *MidpointConfig) LineFormat() LineFormat {
	f, _ := ParseLineFormat(con.Format)
	return f
}

// Check returns an error describing the first invalid field of con.
func (con *MidpointConfig) Check() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidFormat() {
		_, err := ParseLineFormat(con.Format)
		return err
	} else if !con.ValidTolerance() {
		return fmt.Errorf(
			"'Tolerance' must be positive, but is %g.", con.Tolerance,
		)
	}
	return nil
}

type TorusConfig struct {
	SharedConfig

	// Required
	Output string
	S, T   int
}

func DefaultTorusWrapper() *TorusWrapper {
	return &TorusWrapper{TorusConfig{}}
}

func (con *TorusConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *TorusConfig) ValidS() bool {
	return con.S > 0
}
func (con *TorusConfig) ValidT() bool {
	return con.T > 0
}

func (con *TorusConfig) Check() error {
	if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidS() {
		return fmt.Errorf("'S' must be positive, but is %d.", con.S)
	} else if !con.ValidT() {
		return fmt.Errorf("'T' must be positive, but is %d.", con.T)
	}
	return nil
}

type MidpointWrapper struct {
	Midpoint MidpointConfig
}

type TorusWrapper struct {
	Torus TorusConfig
}

// ReadMidpointConfig reads and checks a [Midpoint] config file.
func ReadMidpointConfig(fname string) (*MidpointConfig, error) {
	wrap := DefaultMidpointWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Midpoint.Check(); err != nil {
		return nil, fmt.Errorf("%s: %s", fname, err.Error())
	}
	return &wrap.Midpoint, nil
}

// ReadTorusConfig reads and checks a [Torus] config file.
func ReadTorusConfig(fname string) (*TorusConfig, error) {
	wrap := DefaultTorusWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Torus.Check(); err != nil {
		return nil, fmt.Errorf("%s: %s", fname, err.Error())
	}
	return &wrap.Torus, nil
}
