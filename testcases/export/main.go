// seehuhn.de/go/outline - glyph outline geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the sample contours to JSON, both as decoded nodes
// and as path segments.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*outFile); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outFile string) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Closed bool          `json:"closed"`
	Nodes  []jsonNode    `json:"nodes"`
	Bounds [4]float64    `json:"bounds"`
	Path   []jsonSegment `json:"path"`
}

type jsonNode struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Type   string  `json:"type"`
	Smooth bool    `json:"smooth,omitempty"`
	G2     bool    `json:"g2,omitempty"`
	VFJ    string  `json:"vfj"`

	// Fixed holds the coordinates in 26.6 fixed point units.
	Fixed [2]int32 `json:"fixed"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	c, err := outline.ParseContour(tc.Closed, tc.Nodes...)
	if err != nil {
		return jsonTestCase{}, err
	}
	p, err := c.Path()
	if err != nil {
		return jsonTestCase{}, err
	}

	b := c.Bounds()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Closed: tc.Closed,
		Bounds: [4]float64{b.LLx, b.LLy, b.URx, b.URy},
		Path:   pathToJSON(p),
	}
	fx := c.Fixed()
	for i, n := range c.All() {
		jtc.Nodes = append(jtc.Nodes, jsonNode{
			X:      n.X,
			Y:      n.Y,
			Type:   n.Type.String(),
			Smooth: n.Smooth,
			G2:     n.G2,
			VFJ:    n.VFJ(),
			Fixed:  [2]int32{int32(fx[i].X), int32(fx[i].Y)},
		})
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
