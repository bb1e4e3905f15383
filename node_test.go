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
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/testcases"
	"seehuhn.de/go/outline/tree"
)

func mustContour(t *testing.T, closed bool, fragments ...string) (*Contour, []*Node) {
	t.Helper()
	c, err := ParseContour(closed, fragments...)
	if err != nil {
		t.Fatal(err)
	}
	return c, c.Members()
}

func TestNodeFrom(t *testing.T) {
	src := NewNode(3, 4, WithType(NodeOff), WithName("a"))
	cases := []struct {
		name string
		v    any
		x, y float64
	}{
		{"nil", nil, 0, 0},
		{"node", src, 3, 4},
		{"point", Pt(1, 2), 1, 2},
		{"vec", vec.Vec2{X: -1, Y: 5}, -1, 5},
		{"array", [2]float64{7, 8}, 7, 8},
		{"slice", []float64{9, 10}, 9, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := NodeFrom(tc.v)
			if err != nil {
				t.Fatal(err)
			}
			if n.X != tc.x || n.Y != tc.y {
				t.Errorf("expected (%g, %g), got (%g, %g)", tc.x, tc.y, n.X, n.Y)
			}
			if n == src || !n.Orphan() {
				t.Errorf("NodeFrom did not return a fresh orphan")
			}
		})
	}

	for _, v := range []any{"1 2", []float64{1}, 5} {
		if _, err := NodeFrom(v); !errors.Is(err, tree.ErrUnsupportedValue) {
			t.Errorf("%v: expected ErrUnsupportedValue, got %v", v, err)
		}
	}
}

func TestNodeClone(t *testing.T) {
	c, nodes := mustContour(t, false, "0 0", "10 20 s g2")
	n := nodes[1]
	n.Name = "top"
	n.Identifier = "id1"
	n.Selected = true
	n.Angle = 30

	m := n.Clone()
	if !m.Orphan() {
		t.Errorf("clone is attached to a contour")
	}
	if m.X != 10 || m.Y != 20 || !m.Smooth || !m.G2 || m.Name != "top" || m.Angle != 30 {
		t.Errorf("clone lost data: %+v", m)
	}
	if m.Identifier != "" || m.Selected {
		t.Errorf("clone kept identifier or selection")
	}
	if c.Len() != 2 {
		t.Errorf("cloning changed the contour")
	}
}

func TestContourInsertRaw(t *testing.T) {
	c, nodes := mustContour(t, false, "0 0", "10 0", "20 0")

	n, err := c.Insert(1, [2]float64{5, 5})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", c.Len())
	}
	if i, _ := n.Index(); i != 1 {
		t.Errorf("new node: expected index 1, got %d", i)
	}
	if i, _ := nodes[1].Index(); i != 2 {
		t.Errorf("old node: expected index 2, got %d", i)
	}
	if n.Contour() != c {
		t.Errorf("new node does not report its contour")
	}
}

func TestNextPrev(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "10 0", "20 0")

	next, err := nodes[0].Next()
	if err != nil || next != nodes[1] {
		t.Errorf("Next: got %v, %v", next, err)
	}
	prev, err := nodes[2].Prev()
	if err != nil || prev != nodes[1] {
		t.Errorf("Prev: got %v, %v", prev, err)
	}
	if next, err := nodes[2].Next(); next != nil || err != nil {
		t.Errorf("Next at end: got %v, %v", next, err)
	}
	if prev, err := nodes[0].Prev(); prev != nil || err != nil {
		t.Errorf("Prev at start: got %v, %v", prev, err)
	}

	orphan := NewNode(1, 1)
	if _, err := orphan.Next(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan Next: expected ErrOrphan, got %v", err)
	}
	if _, err := orphan.Index(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan Index: expected ErrOrphan, got %v", err)
	}
}

func TestNextOnPrevOn(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "10 0 o", "20 0 o", "30 0", "40 0")

	cases := []struct {
		from       int
		next, prev *Node
	}{
		{0, nodes[3], nil},
		{1, nodes[3], nodes[0]},
		{3, nodes[4], nodes[0]},
		{4, nil, nodes[3]},
	}
	for _, tc := range cases {
		next, err := nodes[tc.from].NextOn()
		if err != nil || next != tc.next {
			t.Errorf("node %d: NextOn gave %v, %v", tc.from, next, err)
		}
		prev, err := nodes[tc.from].PrevOn()
		if err != nil || prev != tc.prev {
			t.Errorf("node %d: PrevOn gave %v, %v", tc.from, prev, err)
		}
	}

	orphan := NewNode(0, 0)
	if _, err := orphan.NextOn(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("NextOn: expected ErrOrphan, got %v", err)
	}
	if _, err := orphan.PrevOn(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("PrevOn: expected ErrOrphan, got %v", err)
	}
}

func TestNextOnSkipsOffCurve(t *testing.T) {
	for _, tc := range testcases.All["curve"] {
		t.Run(tc.Name, func(t *testing.T) {
			_, nodes := mustContour(t, tc.Closed, tc.Nodes...)
			for i, n := range nodes {
				for _, get := range []func() (*Node, error){n.NextOn, n.PrevOn} {
					m, err := get()
					if err != nil {
						t.Fatal(err)
					}
					if m == nil {
						continue
					}
					if !m.IsOn() || m == n {
						t.Errorf("node %d: got off-curve node or the node itself", i)
					}
				}
				// everything strictly between n and NextOn is off-curve
				next, _ := n.NextOn()
				if next == nil {
					continue
				}
				j, _ := next.Index()
				for k := i + 1; k < j; k++ {
					if nodes[k].IsOn() {
						t.Errorf("node %d: NextOn skipped on-curve node %d", i, k)
					}
				}
			}
		})
	}
}

func TestTurn(t *testing.T) {
	cases := []struct {
		name      string
		fragments []string
		want      Orientation
	}{
		{"ccw", testcases.All["line"][0].Nodes[:3], CounterClockwise},
		{"cw", testcases.All["line"][1].Nodes[:3], Clockwise},
		{"collinear", []string{"0 0", "5 5", "10 10"}, Collinear},
		{"reversal", []string{"0 0", "10 0", "5 0"}, Collinear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, nodes := mustContour(t, false, tc.fragments...)
			n := nodes[1]
			o, err := n.Turn()
			if err != nil {
				t.Fatal(err)
			}
			if o != tc.want {
				t.Errorf("expected %s, got %s", tc.want, o)
			}

			// Clockwise agrees with the sign of the cross product
			prev, next := nodes[0].Point(), nodes[2].Point()
			self := n.Point()
			cross := (self.X-prev.X)*(next.Y-self.Y) - (self.Y-prev.Y)*(next.X-self.X)
			cw, _ := n.Clockwise()
			if cw != (cross < 0) {
				t.Errorf("Clockwise=%v for cross product %g", cw, cross)
			}
		})
	}

	_, nodes := mustContour(t, false, "0 0", "10 0")
	if _, err := nodes[0].Turn(); !errors.Is(err, ErrBoundary) {
		t.Errorf("boundary: expected ErrBoundary, got %v", err)
	}
	if _, err := NewNode(0, 0).Clockwise(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan: expected ErrOrphan, got %v", err)
	}
}

func TestTriads(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "5 9 o", "10 5", "15 9 o", "20 10")
	n := nodes[2]

	prev, self, next, err := n.Triad()
	if err != nil || prev != nodes[1] || self != n || next != nodes[3] {
		t.Errorf("Triad: got %v %v %v %v", prev, self, next, err)
	}
	prev, self, next, err = n.TriadOn()
	if err != nil || prev != nodes[0] || self != n || next != nodes[4] {
		t.Errorf("TriadOn: got %v %v %v %v", prev, self, next, err)
	}

	if m, err := n.TriadOnMaxY(); err != nil || m != nodes[4] {
		t.Errorf("TriadOnMaxY: got %v, %v", m, err)
	}
	if m, err := n.TriadOnMinY(); err != nil || m != nodes[0] {
		t.Errorf("TriadOnMinY: got %v, %v", m, err)
	}

	// ties resolve to the previous on-curve node
	_, nodes = mustContour(t, false, "0 5", "10 0", "20 5")
	if m, _ := nodes[1].TriadOnMaxY(); m != nodes[0] {
		t.Errorf("TriadOnMaxY tie: got %v", m)
	}
	if m, _ := nodes[1].TriadOnMinY(); m != nodes[0] {
		t.Errorf("TriadOnMinY tie: got %v", m)
	}
	if _, err := nodes[0].TriadOnMaxY(); !errors.Is(err, ErrBoundary) {
		t.Errorf("boundary: expected ErrBoundary, got %v", err)
	}
}

func TestDistanceAndAngle(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "3 4 o", "0 10", "-10 10")
	n := nodes[2]

	check := func(name string, got float64, err error, want float64) {
		t.Helper()
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: expected %g, got %g", name, want, got)
		}
	}
	d, err := n.DistanceToPrev()
	check("DistanceToPrev", d, err, math.Hypot(3, 6))
	d, err = n.DistanceToPrevOn()
	check("DistanceToPrevOn", d, err, 10)
	d, err = n.DistanceToNext()
	check("DistanceToNext", d, err, 10)
	d, err = n.DistanceToNextOn()
	check("DistanceToNextOn", d, err, 10)
	a, err := n.AngleToPrevOn()
	check("AngleToPrevOn", a, err, -90)
	a, err = n.AngleToNextOn()
	check("AngleToNextOn", a, err, 180)
	a, err = nodes[0].AngleToNext()
	check("AngleToNext", a, err, math.Atan2(4, 3)*180/math.Pi)
	a, err = nodes[1].AngleToPrev()
	check("AngleToPrev", a, err, math.Atan2(-4, -3)*180/math.Pi)

	if _, err := nodes[3].DistanceToNext(); !errors.Is(err, ErrBoundary) {
		t.Errorf("expected ErrBoundary, got %v", err)
	}
	if _, err := NewNode(0, 0).AngleToPrevOn(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("expected ErrOrphan, got %v", err)
	}
}

func TestRelocShift(t *testing.T) {
	tr := Identity.Scale(2, 2)
	n := NewNode(1, 2, WithAngle(15), WithTransform(tr))

	n.Shift(3, -1)
	if n.X != 4 || n.Y != 1 || n.Angle != 15 || n.Transform != tr {
		t.Errorf("Shift: got %+v", n.Point())
	}

	n.Reloc(10, 20)
	if n.X != 10 || n.Y != 20 || n.Angle != 0 || !n.Transform.IsIdentity() {
		t.Errorf("Reloc: got %+v", n.Point())
	}

	n.SetPoint(Point{X: 1, Y: 1, Angle: 5, Complex: true})
	if got := n.Point(); got != (Point{X: 1, Y: 1, Angle: 5, Complex: true}) {
		t.Errorf("SetPoint/Point: got %+v", got)
	}
}

func positions(nodes []*Node) []vec.Vec2 {
	res := make([]vec.Vec2, len(nodes))
	for i, n := range nodes {
		res[i] = n.Point().Vec()
	}
	return res
}

func countMoved(before, after []vec.Vec2, dx, dy float64) int {
	moved := 0
	for i := range before {
		switch after[i] {
		case before[i]:
		case vec.Vec2{X: before[i].X + dx, Y: before[i].Y + dy}:
			moved++
		default:
			return -1
		}
	}
	return moved
}

func TestSmartShift(t *testing.T) {
	cases := []struct {
		name      string
		fragments []string
		node      int
		moved     int
	}{
		{"on_between_off", []string{"0 0", "10 10 o", "20 20", "30 10 o", "40 0"}, 2, 3},
		{"on_between_on", []string{"0 0", "10 10", "20 20", "30 10", "40 0"}, 2, 1},
		{"on_one_off", []string{"0 0", "10 10", "20 20", "30 10 o", "40 0"}, 2, 2},
		{"off_node", []string{"0 0", "10 10 o", "20 20 o", "30 10"}, 1, 1},
		{"first_node", []string{"0 0", "10 10 o", "20 20 o", "30 10"}, 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, nodes := mustContour(t, false, tc.fragments...)
			before := positions(nodes)
			if err := nodes[tc.node].SmartShift(3, -7); err != nil {
				t.Fatal(err)
			}
			moved := countMoved(before, positions(nodes), 3, -7)
			if moved != tc.moved {
				t.Errorf("expected %d moved nodes, got %d", tc.moved, moved)
			}
		})
	}

	if err := NewNode(0, 0).SmartShift(1, 1); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan on-curve: expected ErrOrphan, got %v", err)
	}
	off := NewNode(0, 0, WithType(NodeOff))
	if err := off.SmartShift(1, 2); err != nil || off.X != 1 || off.Y != 2 {
		t.Errorf("orphan off-curve: got (%g, %g), %v", off.X, off.Y, err)
	}
}

func TestSmartReloc(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "10 10 o", "20 20", "30 10 o", "40 0")
	if err := nodes[2].SmartReloc(25, 18); err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 15, Y: 8}, {X: 25, Y: 18}, {X: 35, Y: 8}, {X: 40, Y: 0}}
	for i, p := range positions(nodes) {
		if p != want[i] {
			t.Errorf("node %d: expected %v, got %v", i, want[i], p)
		}
	}
}

func TestRandomize(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("any", func(t *testing.T) {
		_, nodes := mustContour(t, false, "0 0", "10 10 o", "50 50", "90 10 o", "100 0")
		for range 20 {
			before := positions(nodes)
			if err := nodes[2].Randomize(rng, 4, 2, BleedAny); err != nil {
				t.Fatal(err)
			}
			after := positions(nodes)
			dx, dy := after[2].X-before[2].X, after[2].Y-before[2].Y
			if math.Abs(dx) > 4 || math.Abs(dy) > 2 {
				t.Errorf("shift (%g, %g) out of range", dx, dy)
			}
			for _, i := range []int{1, 3} {
				if after[i].Sub(before[i]).Sub(vec.Vec2{X: dx, Y: dy}).Length() > 1e-9 {
					t.Errorf("handle %d did not follow its node", i)
				}
			}
		}
	})

	// At a right-angled corner of size 100 a shift of at most 1 cannot
	// change the orientation.
	square := testcases.All["line"][1].Nodes[:3]

	t.Run("keep", func(t *testing.T) {
		_, nodes := mustContour(t, false, square...)
		before := nodes[1].Point()
		if err := nodes[1].Randomize(rng, 1, 1, BleedClockwise); err != nil {
			t.Fatal(err)
		}
		if nodes[1].Point().Equal(before, 0) {
			t.Errorf("node did not move")
		}
		if cw, _ := nodes[1].Clockwise(); !cw {
			t.Errorf("orientation changed")
		}
	})

	t.Run("revert", func(t *testing.T) {
		_, nodes := mustContour(t, false, square...)
		before := nodes[1].Point()
		if err := nodes[1].Randomize(rng, 1, 1, BleedCounterClockwise); err != nil {
			t.Fatal(err)
		}
		if !nodes[1].Point().Equal(before, 1e-9) {
			t.Errorf("shift was not undone: %v -> %v", before, nodes[1].Point())
		}
	})

	t.Run("boundary", func(t *testing.T) {
		_, nodes := mustContour(t, false, square...)
		before := positions(nodes)
		if err := nodes[0].Randomize(rng, 1, 1, BleedClockwise); !errors.Is(err, ErrBoundary) {
			t.Errorf("expected ErrBoundary, got %v", err)
		}
		if countMoved(before, positions(nodes), 0, 0) != 0 {
			t.Errorf("failed call moved nodes")
		}
	})
}

// lineEvaluator interpolates linearly between the segment end points.
type lineEvaluator struct {
	calls int
}

func (e *lineEvaluator) PointAtTime(seg []Point, t float64) (Point, error) {
	e.calls++
	a, b := seg[0], seg[len(seg)-1]
	return Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t), nil
}

func TestInsertEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		insert func(n *Node) (*Node, error)
		pos    int // position of the new node
		copyOf int // index of the copied node, before insertion
	}{
		{"after_0", func(n *Node) (*Node, error) { return n.InsertAfter(0) }, 2, 1},
		{"after_1", func(n *Node) (*Node, error) { return n.InsertAfter(1) }, 2, 3},
		{"before_1", func(n *Node) (*Node, error) { return n.InsertBefore(1) }, 1, 1},
		{"before_0", func(n *Node) (*Node, error) { return n.InsertBefore(0) }, 1, 0},
		{"after_distance_0", func(n *Node) (*Node, error) { return n.InsertAfterDistance(0) }, 2, 1},
		{"after_distance_full", func(n *Node) (*Node, error) { return n.InsertAfterDistance(20) }, 2, 3},
		{"before_distance_0", func(n *Node) (*Node, error) { return n.InsertBeforeDistance(0) }, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, nodes := mustContour(t, false, "0 0", "10 0 s", "20 0 o", "30 0")
			n := nodes[1]
			src := nodes[tc.copyOf]

			m, err := tc.insert(n)
			if err != nil {
				t.Fatal(err)
			}
			if c.Len() != 5 {
				t.Fatalf("expected 5 nodes, got %d", c.Len())
			}
			if i, _ := m.Index(); i != tc.pos {
				t.Errorf("expected new node at %d, got %d", tc.pos, i)
			}
			if m == src || m.VFJ() != src.VFJ() {
				t.Errorf("new node %q is not a copy of %q", m.VFJ(), src.VFJ())
			}

			// the new node is a direct neighbour of n
			var adj *Node
			if tc.pos > 1 {
				adj, _ = n.Next()
			} else {
				adj, _ = n.Prev()
			}
			if adj != m {
				t.Errorf("new node is not adjacent to the receiver")
			}
		})
	}
}

func TestInsertInterior(t *testing.T) {
	c, nodes := mustContour(t, false, "0 0", "10 0", "10 10")

	if _, err := nodes[0].InsertAfter(0.5); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := nodes[1].InsertBeforeDistance(2.5); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("failed inserts changed the contour")
	}

	e := &lineEvaluator{}
	c.Evaluator = e

	m, err := nodes[0].InsertAfter(0.25)
	if err != nil {
		t.Fatal(err)
	}
	if m.X != 2.5 || m.Y != 0 || !m.IsOn() {
		t.Errorf("InsertAfter: got %v", m)
	}
	if i, _ := m.Index(); i != 1 {
		t.Errorf("InsertAfter: expected index 1, got %d", i)
	}

	m, err = nodes[2].InsertBeforeDistance(4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.X-10) > 1e-12 || math.Abs(m.Y-6) > 1e-12 {
		t.Errorf("InsertBeforeDistance: got %v", m)
	}
	if i, _ := nodes[2].Index(); i != 4 {
		t.Errorf("node after insertion: expected index 4, got %d", i)
	}
	if e.calls != 2 {
		t.Errorf("expected 2 evaluator calls, got %d", e.calls)
	}
}

func TestInsertErrors(t *testing.T) {
	_, nodes := mustContour(t, false, "0 0", "0 0", "10 0")

	for _, tm := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := nodes[0].InsertAfter(tm); !errors.Is(err, ErrTimeRange) {
			t.Errorf("InsertAfter(%g): expected ErrTimeRange, got %v", tm, err)
		}
		if _, err := nodes[1].InsertBefore(tm); !errors.Is(err, ErrTimeRange) {
			t.Errorf("InsertBefore(%g): expected ErrTimeRange, got %v", tm, err)
		}
	}
	if _, err := nodes[0].InsertAfterDistance(1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero length: expected ErrDegenerate, got %v", err)
	}
	if _, err := nodes[2].InsertAfter(1); !errors.Is(err, ErrBoundary) {
		t.Errorf("last node: expected ErrBoundary, got %v", err)
	}
	if _, err := nodes[0].InsertBefore(0); !errors.Is(err, ErrBoundary) {
		t.Errorf("first node: expected ErrBoundary, got %v", err)
	}
	if _, err := NewNode(0, 0).InsertAfter(0); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan: expected ErrOrphan, got %v", err)
	}
}

func TestNodeRemove(t *testing.T) {
	c, nodes := mustContour(t, false, "0 0", "10 0", "20 0")

	if err := nodes[1].Remove(); err != nil {
		t.Fatal(err)
	}
	if !nodes[1].Orphan() || nodes[1].Contour() != nil {
		t.Errorf("removed node still has a parent")
	}
	if _, err := c.IndexOf(nodes[1]); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("removed node still in contour")
	}
	if next, _ := nodes[0].Next(); next != nodes[2] {
		t.Errorf("neighbours not linked after removal")
	}
	if err := nodes[1].Remove(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("second Remove: expected ErrOrphan, got %v", err)
	}
}

type recordingSyncer struct {
	synced []*Node
}

func (s *recordingSyncer) SyncNode(n *Node) error {
	s.synced = append(s.synced, n)
	return nil
}

func TestUpdate(t *testing.T) {
	c, nodes := mustContour(t, false, "0 0")
	if err := nodes[0].Update(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
	s := &recordingSyncer{}
	c.Syncer = s
	if err := nodes[0].Update(); err != nil {
		t.Fatal(err)
	}
	if len(s.synced) != 1 || s.synced[0] != nodes[0] {
		t.Errorf("syncer not called for the node")
	}
	if err := NewNode(0, 0).Update(); !errors.Is(err, tree.ErrOrphan) {
		t.Errorf("orphan: expected ErrOrphan, got %v", err)
	}
}

func TestNodeType(t *testing.T) {
	for _, nt := range []NodeType{NodeOn, NodeOff, NodeCurve, NodeMove} {
		got, err := ParseNodeType(nt.String())
		if err != nil || got != nt {
			t.Errorf("%s: got %v, %v", nt, got, err)
		}
	}
	if _, err := ParseNodeType("smooth"); err == nil {
		t.Errorf("unknown type accepted")
	}
	if s := NewNode(44, 67.5, WithType(NodeCurve)).String(); s != "<Node: x=44, y=67.5, type=curve>" {
		t.Errorf("String: got %q", s)
	}
}
