package stitch

import (
	"iter"

	"github.com/eak1mov/go-stitch/geom"
)

func (p *Plane) checkArea(r geom.Rect) error {
	if !r.Valid() {
		return ErrInvalidRect
	}
	if !p.bounds.ContainsRect(r) {
		return ErrOutOfBounds
	}
	return nil
}

// firstInArea returns the tile containing the upper-left cell of r.
func (p *Plane) firstInArea(r geom.Rect, start id) id {
	return p.locate(r.UpperLeft(), start)
}

// nextDown returns the tile below n that crosses the column x, or noTile if
// n already reaches the bottom row y.
func (p *Plane) nextDown(n id, x, y int) id {
	if p.rect(n).Y() <= y {
		return noTile
	}
	i := p.tiles[n].stitch[geom.Bottom]
	for p.rect(i).Right() <= x {
		i = p.tiles[i].stitch[geom.Right]
	}
	return i
}

// areaSearch returns a solid tile overlapping r, or noTile.
// It relies on space tiles being maximal horizontal strips: the right
// neighbors of a space tile are solid.
func (p *Plane) areaSearch(r geom.Rect, start id) id {
	for n := p.firstInArea(r, start); n != noTile; n = p.nextDown(n, r.X(), r.Y()) {
		t := &p.tiles[n]
		if t.solid {
			return n
		}
		if t.rect.Right() < r.Right() {
			// some right neighbor within the rows of r is solid
			found := noTile
			p.neighbors(n, geom.Right, func(i id) bool {
				if p.rect(i).OverlapsY(r) {
					found = i
					return false
				}
				return true
			})
			if found != noTile {
				return found
			}
		}
	}
	return noTile
}

// AreaSearch returns some solid tile overlapping r, if there is one.
func (p *Plane) AreaSearch(r geom.Rect) (Tile, bool, error) {
	if err := p.checkArea(r); err != nil {
		return Tile{}, false, err
	}
	n := p.areaSearch(r, p.start())
	if n == noTile {
		return Tile{}, false, nil
	}
	return p.handle(n), true, nil
}

// AreaEnum returns every tile overlapping r exactly once. Tiles crossing the
// left edge of r come top to bottom, each followed by the tiles reached
// through its right side.
func (p *Plane) AreaEnum(r geom.Rect) (iter.Seq[Tile], error) {
	if err := p.checkArea(r); err != nil {
		return nil, err
	}
	return func(yield func(Tile) bool) {
		for n := p.firstInArea(r, p.start()); n != noTile; n = p.nextDown(n, r.X(), r.Y()) {
			if !p.enumRight(r, n, yield) {
				return
			}
		}
	}, nil
}

// enumRight reports n and then, recursively, every right neighbor of n inside
// r whose lowest cell inside r is approached from n.
func (p *Plane) enumRight(r geom.Rect, n id, yield func(Tile) bool) bool {
	if !yield(p.handle(n)) {
		return false
	}
	t := p.rect(n)
	if t.Right() >= r.Right() {
		return true
	}
	var owned []id
	p.neighbors(n, geom.Right, func(i id) bool {
		ri := p.rect(i)
		if ri.OverlapsY(r) && t.CmpY(max(ri.Y(), r.Y())) == geom.Inside {
			owned = append(owned, i)
		}
		return true
	})
	for _, i := range owned {
		if !p.enumRight(r, i, yield) {
			return false
		}
	}
	return true
}
