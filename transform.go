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
	"errors"

	"seehuhn.de/go/geom/matrix"
)

// ErrSingular is returned when inverting a transform which collapses the
// plane onto a line or a point.
var ErrSingular = errors.New("singular transform")

// Transform is an affine map of the plane.
//
// The coefficients [a b c d e f] of the underlying matrix map (x, y) to
// (a*x + c*y + e, b*x + d*y + f).  The zero value means "no transform" and
// acts as the identity.  Use [NewTransform] to wrap an arbitrary matrix,
// including the zero matrix.
type Transform struct {
	m   matrix.Matrix
	set bool
}

// Identity is the transform which leaves all points unchanged.
var Identity = NewTransform(matrix.Identity)

// NewTransform returns the transform given by m.
func NewTransform(m matrix.Matrix) Transform {
	return Transform{m: m, set: true}
}

// Matrix returns the coefficients of t.
func (t Transform) Matrix() matrix.Matrix {
	if !t.set {
		return matrix.Identity
	}
	return t.m
}

// IsIdentity reports whether t leaves all points unchanged.
func (t Transform) IsIdentity() bool {
	return t.Matrix() == matrix.Identity
}

// Compose returns the transform which first applies t and then other.
func (t Transform) Compose(other Transform) Transform {
	return NewTransform(t.Matrix().Mul(other.Matrix()))
}

// Translate returns t followed by a translation.
func (t Transform) Translate(dx, dy float64) Transform {
	return NewTransform(t.Matrix().Translate(dx, dy))
}

// Scale returns t followed by scaling about the origin.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Compose(NewTransform(matrix.Scale(sx, sy)))
}

// Rotate returns t followed by a counter-clockwise rotation about the
// origin.  The angle is given in degrees.
func (t Transform) Rotate(deg float64) Transform {
	return t.Compose(NewTransform(matrix.RotateDeg(deg)))
}

// Shear returns t followed by a shear: x' = x + shx*y, y' = y + shy*x.
func (t Transform) Shear(shx, shy float64) Transform {
	return t.Compose(NewTransform(matrix.Matrix{1, shy, shx, 1, 0, 0}))
}

// Invert returns the inverse transform.
func (t Transform) Invert() (Transform, error) {
	m := t.Matrix()
	if m[0]*m[3]-m[1]*m[2] == 0 {
		return Transform{}, ErrSingular
	}
	return NewTransform(m.Inv()), nil
}

// ApplyXY maps the coordinates (x, y).
func (t Transform) ApplyXY(x, y float64) (float64, float64) {
	if !t.set {
		return x, y
	}
	m := t.m
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Apply maps the coordinates of p.
// All other fields of p are copied unchanged.
func (t Transform) Apply(p Point) Point {
	p.X, p.Y = t.ApplyXY(p.X, p.Y)
	return p
}
