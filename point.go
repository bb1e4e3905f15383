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

package outline

import (
	"math"
	"math/cmplx"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in glyph space.
//
// Angle is an orientation hint in degrees.  Transform is applied when the
// point is read through [Point.Applied].  If Complex is set, arithmetic is
// carried out on complex numbers; the results are the same as for plain
// vector arithmetic.
type Point struct {
	X, Y      float64
	Angle     float64
	Transform Transform
	Complex   bool
}

// Pt returns the point (x, y) with the identity transform.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromVec converts a geom vector to a point.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns the coordinates of p as a geom vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Fixed rounds the coordinates of p to 26.6 fixed point numbers.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// Add returns p shifted by the coordinates of q.
// Angle, Transform and Complex are taken from p.
func (p Point) Add(q Point) Point {
	if p.Complex {
		z := complex(p.X, p.Y) + complex(q.X, q.Y)
		p.X, p.Y = real(z), imag(z)
		return p
	}
	p.X += q.X
	p.Y += q.Y
	return p
}

// Sub returns p shifted by the negated coordinates of q.
// Angle, Transform and Complex are taken from p.
func (p Point) Sub(q Point) Point {
	if p.Complex {
		z := complex(p.X, p.Y) - complex(q.X, q.Y)
		p.X, p.Y = real(z), imag(z)
		return p
	}
	p.X -= q.X
	p.Y -= q.Y
	return p
}

// AddScalar adds s to both coordinates.
func (p Point) AddScalar(s float64) Point {
	return p.Add(Point{X: s, Y: s})
}

// SubScalar subtracts s from both coordinates.
func (p Point) SubScalar(s float64) Point {
	return p.Sub(Point{X: s, Y: s})
}

// DiffTo returns the vector from p to q.
func (p Point) DiffTo(q Point) (dx, dy float64) {
	d := q.Sub(p)
	return d.X, d.Y
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	if p.Complex {
		return cmplx.Abs(complex(q.X, q.Y) - complex(p.X, p.Y))
	}
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// AngleTo returns the direction from p to q in degrees.
// The result is in the range (-180, 180], with 0 pointing along the
// positive x-axis and positive angles turning counter-clockwise.
func (p Point) AngleTo(q Point) float64 {
	dx, dy := p.DiffTo(q)
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// Equal reports whether the coordinates of p and q differ by at most tol.
func (p Point) Equal(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Applied returns p with its transform applied to the coordinates.
// The result carries the identity transform.
func (p Point) Applied() Point {
	q := p.Transform.Apply(p)
	q.Transform = Transform{}
	return q
}
