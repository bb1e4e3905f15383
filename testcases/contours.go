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

package testcases

var lineCases = []TestCase{
	{
		Name:   "square_ccw",
		Nodes:  []string{"0 0", "100 0", "100 100", "0 100"},
		Closed: true,
	},
	{
		Name:   "square_cw",
		Nodes:  []string{"0 0", "0 100", "100 100", "100 0"},
		Closed: true,
	},
	{
		Name:   "triangle",
		Nodes:  []string{"10 50", "32 10", "54 50"},
		Closed: true,
	},
	{
		Name:   "fractional",
		Nodes:  []string{"35 55.65", "-12.5 7", "0.125 -3"},
		Closed: true,
	},
}

var curveCases = []TestCase{
	{
		// circle of radius 100, built from four cubic arcs
		Name: "circle",
		Nodes: []string{
			"100 0 s",
			"100 55.228 o", "55.228 100 o",
			"0 100 s",
			"-55.228 100 o", "-100 55.228 o",
			"-100 0 s",
			"-100 -55.228 o", "-55.228 -100 o",
			"0 -100 s",
			"55.228 -100 o", "100 -55.228 o",
		},
		Closed: true,
	},
	{
		Name: "quadratic_bump",
		Nodes: []string{
			"0 0",
			"50 80 o",
			"100 0",
		},
		Closed: true,
	},
	{
		// starts with a control point; the outline begins at the first
		// on-curve node
		Name: "rotated_start",
		Nodes: []string{
			"0 55 o",
			"0 100 s g2",
			"100 100",
			"100 0",
			"0 0",
			"0 45 o",
		},
		Closed: true,
	},
}

var openCases = []TestCase{
	{
		Name:  "stroke",
		Nodes: []string{"0 0", "20 30 o", "40 30 o", "60 0", "80 -10"},
	},
	{
		Name:  "single",
		Nodes: []string{"5 5"},
	},
}
