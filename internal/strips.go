package internal

import (
	"cmp"
	"slices"

	"github.com/eak1mov/go-stitch/geom"
)

// Strips computes the maximal horizontal strip decomposition of the free
// area of bounds by scanning it row by row. It is quadratic in the plane
// size and meant for cross-checking small planes.
func Strips(bounds geom.Rect, solids []geom.Rect) []geom.Rect {
	type span struct{ x0, x1 int }
	var done []geom.Rect
	open := make(map[span]int) // span -> first row

	for y := bounds.Y(); y <= bounds.Top(); y++ {
		row := make(map[span]bool)
		if y < bounds.Top() {
			for x := bounds.X(); x < bounds.Right(); {
				if covered(solids, geom.Pt{X: x, Y: y}) {
					x++
					continue
				}
				x0 := x
				for x < bounds.Right() && !covered(solids, geom.Pt{X: x, Y: y}) {
					x++
				}
				row[span{x0, x}] = true
			}
		}
		for s, y0 := range open {
			if !row[s] {
				done = append(done, geom.R(s.x0, y0, s.x1-s.x0, y-y0))
				delete(open, s)
			}
		}
		for s := range row {
			if _, ok := open[s]; !ok {
				open[s] = y
			}
		}
	}
	SortRects(done)
	return done
}

func covered(solids []geom.Rect, p geom.Pt) bool {
	for _, r := range solids {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// SortRects orders rectangles bottom to top, then left to right.
func SortRects(rects []geom.Rect) {
	slices.SortFunc(rects, func(a, b geom.Rect) int {
		if c := cmp.Compare(a.Y(), b.Y()); c != 0 {
			return c
		}
		return cmp.Compare(a.X(), b.X())
	})
}
