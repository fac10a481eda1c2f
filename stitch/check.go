package stitch

import (
	"cmp"
	"slices"

	"github.com/eak1mov/go-stitch/geom"
)

// edgeIndex groups live tiles by the coordinates of their edges, so that the
// true neighbors of a tile can be found without following any stitch.
// Buckets along Left and Right edges are sorted by Y, along Bottom and Top
// edges by X.
type edgeIndex struct {
	p     *Plane
	edges [4]map[int][]id
}

// edgeAt returns the coordinate of the given side of r.
func edgeAt(r geom.Rect, side geom.Side) int {
	switch side {
	case geom.Left:
		return r.X()
	case geom.Bottom:
		return r.Y()
	case geom.Right:
		return r.Right()
	}
	return r.Top()
}

// span returns the extent of the given side of r along that side.
func span(side geom.Side) (lo, hi func(geom.Rect) int) {
	if side == geom.Left || side == geom.Right {
		return geom.Rect.Y, geom.Rect.Top
	}
	return geom.Rect.X, geom.Rect.Right
}

func newEdgeIndex(p *Plane) *edgeIndex {
	x := &edgeIndex{p: p}
	for _, side := range geom.Sides {
		x.edges[side] = make(map[int][]id)
	}
	for n := range p.tiles {
		if !p.tiles[n].live {
			continue
		}
		r := p.tiles[n].rect
		for _, side := range geom.Sides {
			x.edges[side][edgeAt(r, side)] = append(x.edges[side][edgeAt(r, side)], id(n))
		}
	}
	for _, side := range geom.Sides {
		lo, _ := span(side)
		for _, ids := range x.edges[side] {
			slices.SortFunc(ids, func(a, b id) int { return cmp.Compare(lo(p.rect(a)), lo(p.rect(b))) })
		}
	}
	return x
}

// run returns the tiles of a sorted bucket whose interval [lo(i), hi(i))
// intersects [from, to). Intervals inside a bucket do not overlap in a
// healthy plane, so hi is sorted as well.
func (x *edgeIndex) run(bucket []id, from, to int, lo, hi func(geom.Rect) int) []id {
	k, _ := slices.BinarySearchFunc(bucket, from, func(i id, v int) int {
		if hi(x.p.rect(i)) <= v {
			return -1
		}
		return 1
	})
	var ids []id
	for ; k < len(bucket) && lo(x.p.rect(bucket[k])) < to; k++ {
		if hi(x.p.rect(bucket[k])) > from {
			ids = append(ids, bucket[k])
		}
	}
	return ids
}

// golden returns the neighbors of n on one side in enumeration order: the
// tiles whose opposite edge lies on that side of n.
func (x *edgeIndex) golden(n id, side geom.Side) []id {
	r := x.p.rect(n)
	lo, hi := span(side)
	bucket := x.edges[side.Opposite()][edgeAt(r, side)]
	ids := x.run(bucket, lo(r), hi(r), lo, hi)
	if side == geom.Right || side == geom.Top {
		slices.Reverse(ids)
	}
	return ids
}

// walkChecked enumerates neighbors but gives up on dangling stitches and
// on runs longer than the tile count.
func (p *Plane) walkChecked(n id, side geom.Side) ([]id, bool) {
	var ids []id
	ok := true
	w := walk[side]
	edge := p.rect(n)
	for i := p.tiles[n].stitch[side]; i != noTile; i = p.tiles[i].stitch[w.next] {
		if !p.exists(i) || len(ids) > p.Len() {
			ok = false
			break
		}
		if !w.more(edge, p.rect(i)) {
			break
		}
		ids = append(ids, i)
	}
	return ids, ok
}

func (p *Plane) violation(check string, n id, msg string, args ...any) {
	args = append([]any{"check", check, "tile", n, "rect", p.rect(n)}, args...)
	p.logger.Warn("stitch: "+msg, args...)
}

// CheckNeighbors compares, for every tile and side, the stitch and the
// neighbor enumeration against the neighbors found from tile edges alone.
// It returns the number of violations.
func (p *Plane) CheckNeighbors() int {
	x := newEdgeIndex(p)
	count := 0
	for n := range p.tiles {
		if !p.tiles[n].live {
			continue
		}
		for _, side := range geom.Sides {
			want := x.golden(id(n), side)
			got, ok := p.walkChecked(id(n), side)
			if !ok {
				count++
				p.violation("neighbors", id(n), "dangling stitch", "side", side)
				continue
			}
			if !slices.Equal(got, want) {
				count++
				p.violation("neighbors", id(n), "neighbor mismatch", "side", side, "got", got, "want", want)
			}
			first := noTile
			if len(want) > 0 {
				first = want[0]
			}
			if s := p.tiles[n].stitch[side]; s != first {
				count++
				p.violation("neighbors", id(n), "stitch mismatch", "side", side, "got", s, "want", first)
			}
		}
	}
	return count
}

// CheckTiles verifies that the tiles partition the plane bounds and that no
// two vertically adjacent space tiles could be merged. It returns the number
// of violations.
func (p *Plane) CheckTiles() int {
	count := 0
	area := 0
	for n := range p.tiles {
		if !p.tiles[n].live {
			continue
		}
		r := p.tiles[n].rect
		if !r.Valid() || !p.bounds.ContainsRect(r) {
			count++
			p.violation("tiles", id(n), "tile outside bounds")
		}
		area += r.Area()
	}
	if area != p.bounds.Area() {
		count++
		p.logger.Warn("stitch: area mismatch", "check", "tiles", "got", area, "want", p.bounds.Area())
	}
	count += p.checkOverlaps()

	x := newEdgeIndex(p)
	for n := range p.tiles {
		if !p.tiles[n].live || p.tiles[n].solid {
			continue
		}
		if up := x.golden(id(n), geom.Top); len(up) == 1 && p.mergeableH(id(n), up[0]) {
			count++
			p.violation("tiles", id(n), "mergeable space above", "other", up[0])
		}
	}
	return count
}

// checkOverlaps sweeps a vertical line over the tiles, keeping the y-ranges
// of tiles crossing the line sorted, and counts intersecting pairs found.
func (p *Plane) checkOverlaps() int {
	type event struct {
		x   int
		add bool
		n   id
	}
	var events []event
	for n := range p.tiles {
		if p.tiles[n].live {
			r := p.tiles[n].rect
			events = append(events, event{r.X(), true, id(n)}, event{r.Right(), false, id(n)})
		}
	}
	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		// removals first: tiles touching at x do not overlap
		if a.add != b.add {
			if a.add {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.n, b.n)
	})

	count := 0
	var active []id // sorted by Y
	byY := func(i id, y int) int { return cmp.Compare(p.rect(i).Y(), y) }
	for _, e := range events {
		r := p.rect(e.n)
		k, _ := slices.BinarySearchFunc(active, r.Y(), byY)
		if !e.add {
			for j := k; j < len(active); j++ {
				if active[j] == e.n {
					active = slices.Delete(active, j, j+1)
					break
				}
			}
			continue
		}
		for _, j := range []int{k - 1, k} {
			if j < 0 || j >= len(active) {
				continue
			}
			if common, ok := r.Intersect(p.rect(active[j])); ok {
				count++
				p.violation("tiles", e.n, "overlapping tiles", "other", active[j], "common", common)
			}
		}
		active = slices.Insert(active, k, e.n)
	}
	return count
}

// CheckStrip verifies that the neighbors enumerated along every side form a
// contiguous run covering exactly that side, and that no space tile has a
// space tile to its left or right. It returns the number of violations.
func (p *Plane) CheckStrip() int {
	count := 0
	for n := range p.tiles {
		if !p.tiles[n].live {
			continue
		}
		t := &p.tiles[n]
		for _, side := range geom.Sides {
			ids, ok := p.walkChecked(id(n), side)
			if !ok {
				count++
				p.violation("strip", id(n), "dangling stitch", "side", side)
				continue
			}
			if !p.contiguous(t.rect, side, ids) {
				count++
				p.violation("strip", id(n), "broken neighbor run", "side", side, "run", ids)
			}
		}
		if !t.solid {
			for _, side := range []geom.Side{geom.Left, geom.Right} {
				if s := t.stitch[side]; p.exists(s) && p.space(s) {
					count++
					p.violation("strip", id(n), "space next to space", "side", side, "other", s)
				}
			}
		}
	}
	return count
}

// contiguous reports whether ids, in enumeration order for side, tile the
// whole side of r without gaps. A side on the plane boundary has no run.
func (p *Plane) contiguous(r geom.Rect, side geom.Side, ids []id) bool {
	lo, hi := span(side)
	at, edge := edgeAt(r, side), edgeAt(p.bounds, side)
	if at == edge {
		return len(ids) == 0
	}
	if len(ids) == 0 {
		return false
	}
	for _, i := range ids {
		if !r.AdjacentOn(side, p.rect(i)) {
			return false
		}
	}
	// Left and Bottom runs ascend, Right and Top runs descend.
	ascending := side == geom.Left || side == geom.Bottom
	if !ascending {
		ids = slices.Clone(ids)
		slices.Reverse(ids)
	}
	first, last := p.rect(ids[0]), p.rect(ids[len(ids)-1])
	if lo(first) > lo(r) || hi(last) < hi(r) {
		return false
	}
	for k := 1; k < len(ids); k++ {
		if lo(p.rect(ids[k])) != hi(p.rect(ids[k-1])) {
			return false
		}
	}
	return true
}

func (p *Plane) afterMutation(op string) {
	if !p.selfCheck {
		return
	}
	if v := p.CheckNeighbors() + p.CheckTiles() + p.CheckStrip(); v > 0 {
		p.logger.Error("stitch: invariants violated", "op", op, "violations", v)
	}
}
