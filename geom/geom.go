// Package geom provides integer points, extents and rectangles used by the plane.
package geom

import "fmt"

// Pt is a point on the integer grid.
type Pt struct {
	X int
	Y int
}

func (p Pt) Add(q Pt) Pt { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) Sub(q Pt) Pt { return Pt{p.X - q.X, p.Y - q.Y} }

func (p Pt) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Extent is the (width, height) of a rectangle.
type Extent struct {
	W int
	H int
}

func (e Extent) Valid() bool {
	return e.W > 0 && e.H > 0
}

func (e Extent) Area() int {
	return e.W * e.H
}

// Rect is an axis-aligned rectangle given by its lower-left corner and size.
// It covers the half-open cell range [X, X+W) x [Y, Y+H).
type Rect struct {
	Origin Pt
	Size   Extent
}

// R is shorthand for Rect{Pt{x, y}, Extent{w, h}}.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Pt{x, y}, Size: Extent{w, h}}
}

func (r Rect) X() int     { return r.Origin.X }
func (r Rect) Y() int     { return r.Origin.Y }
func (r Rect) W() int     { return r.Size.W }
func (r Rect) H() int     { return r.Size.H }
func (r Rect) Right() int { return r.Origin.X + r.Size.W }
func (r Rect) Top() int   { return r.Origin.Y + r.Size.H }
func (r Rect) Area() int  { return r.Size.Area() }
func (r Rect) Valid() bool {
	return r.Size.Valid()
}

// LowerLeft returns the lowest, leftmost cell of r.
func (r Rect) LowerLeft() Pt { return r.Origin }

// UpperLeft returns the highest, leftmost cell of r.
func (r Rect) UpperLeft() Pt { return Pt{r.X(), r.Top() - 1} }

func (r Rect) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Origin, r.Size.W, r.Size.H)
}

// Cmp is the position of a coordinate relative to a rectangle along one axis.
type Cmp int

const (
	Below  Cmp = -1
	Inside Cmp = 0
	Above  Cmp = 1
)

// CmpX reports where x lies relative to [X, Right).
func (r Rect) CmpX(x int) Cmp {
	switch {
	case x < r.X():
		return Below
	case x >= r.Right():
		return Above
	}
	return Inside
}

// CmpY reports where y lies relative to [Y, Top).
func (r Rect) CmpY(y int) Cmp {
	switch {
	case y < r.Y():
		return Below
	case y >= r.Top():
		return Above
	}
	return Inside
}

// Contains reports whether the cell at p lies inside r.
func (r Rect) Contains(p Pt) bool {
	return r.CmpX(p.X) == Inside && r.CmpY(p.Y) == Inside
}

// ContainsRect reports whether s lies entirely inside r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.X() >= r.X() && s.Y() >= r.Y() && s.Right() <= r.Right() && s.Top() <= r.Top()
}

// OverlapsX reports whether the x-ranges of r and s intersect.
func (r Rect) OverlapsX(s Rect) bool {
	return r.X() < s.Right() && s.X() < r.Right()
}

// OverlapsY reports whether the y-ranges of r and s intersect.
func (r Rect) OverlapsY(s Rect) bool {
	return r.Y() < s.Top() && s.Y() < r.Top()
}

// Overlaps reports whether the interiors of r and s intersect.
func (r Rect) Overlaps(s Rect) bool {
	return r.OverlapsX(s) && r.OverlapsY(s)
}

// AdjacentOn reports whether s borders r along the given side of r
// with a shared segment of positive length.
func (r Rect) AdjacentOn(side Side, s Rect) bool {
	switch side {
	case Left:
		return s.Right() == r.X() && r.OverlapsY(s)
	case Bottom:
		return s.Top() == r.Y() && r.OverlapsX(s)
	case Right:
		return s.X() == r.Right() && r.OverlapsY(s)
	case Top:
		return s.Y() == r.Top() && r.OverlapsX(s)
	}
	return false
}

// Intersect returns the common part of r and s, and false if they do not overlap.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	if !r.Overlaps(s) {
		return Rect{}, false
	}
	x0, y0 := max(r.X(), s.X()), max(r.Y(), s.Y())
	x1, y1 := min(r.Right(), s.Right()), min(r.Top(), s.Top())
	return R(x0, y0, x1-x0, y1-y0), true
}
