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
	"fmt"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrMalformed is returned when a VFJ node fragment cannot be decoded, or
// when a node with non-finite coordinates is marshaled.
var ErrMalformed = errors.New("malformed VFJ node")

// VFJ flags, emitted in this order.
const (
	vfjSmooth = "s"
	vfjOff    = "o"
	vfjG2     = "g2"
)

// VFJ returns the VFJ encoding of n: the coordinates, followed by "s" for
// smooth nodes, "o" for nodes which are not on-curve and "g2" for curvature
// continuous nodes.  Example: "12.5 7 o g2".
//
// Name, identifier and the other attributes of n are not part of the
// encoding.  Only finite coordinates can be decoded again: NaN and
// infinities are written as "NaN", "+Inf" and "-Inf", which [ParseVFJ]
// rejects.
func (n *Node) VFJ() string {
	var b strings.Builder
	b.WriteString(formatCoord(n.X))
	b.WriteByte(' ')
	b.WriteString(formatCoord(n.Y))
	if n.Smooth {
		b.WriteString(" " + vfjSmooth)
	}
	if !n.IsOn() {
		b.WriteString(" " + vfjOff)
	}
	if n.G2 {
		b.WriteString(" " + vfjG2)
	}
	return b.String()
}

// formatCoord writes whole numbers without a fractional part and all other
// values as the shortest decimal which reads back to the same float.
func formatCoord(x float64) string {
	if x == 0 {
		return "0" // also for negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ParseVFJ decodes a VFJ node fragment.
//
// The fragment consists of two numbers, optionally followed by the flags
// "s", "o" and "g2" in any order.  Unknown flags are ignored.  The decoded
// node is an orphan with empty name and identifier.
func ParseVFJ(s string) (*Node, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%q: %w", s, ErrMalformed)
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return nil, err
	}

	n := &Node{X: x, Y: y}
	for _, f := range fields[2:] {
		switch f {
		case vfjSmooth:
			n.Smooth = true
		case vfjOff:
			n.Type = NodeOff
		case vfjG2:
			n.G2 = true
		}
	}
	return n, nil
}

// parseCoord accepts decimal numbers with optional sign, fraction and
// exponent.  The scanner only checks the syntax; the value is converted
// by strconv, which rounds correctly also for long mantissas.
func parseCoord(tok string) (float64, error) {
	if _, k := pstrconv.ParseFloat([]byte(tok)); k != len(tok) {
		return 0, fmt.Errorf("coordinate %q: %w", tok, ErrMalformed)
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(x, 0) {
		return 0, fmt.Errorf("coordinate %q: %w", tok, ErrMalformed)
	}
	return x, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// using the VFJ encoding.  Nodes with non-finite coordinates cannot be
// marshaled.
func (n *Node) MarshalText() ([]byte, error) {
	if !isFinite(n.X) || !isFinite(n.Y) {
		return nil, fmt.Errorf("coordinates (%g, %g): %w", n.X, n.Y, ErrMalformed)
	}
	return []byte(n.VFJ()), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Only the fields carried by the VFJ encoding are changed; the node keeps
// its place in its contour.
func (n *Node) UnmarshalText(text []byte) error {
	m, err := ParseVFJ(string(text))
	if err != nil {
		return err
	}
	n.X, n.Y = m.X, m.Y
	n.Type = m.Type
	n.Smooth = m.Smooth
	n.G2 = m.G2
	return nil
}
