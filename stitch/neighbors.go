package stitch

import (
	"iter"

	"github.com/eak1mov/go-stitch/geom"
)

// walk describes how to trace the tiles along one side of a tile:
// start at the stitch on that side, then follow `next` while the tile
// still borders the edge.
var walk = [4]struct {
	next geom.Side
	more func(edge, n geom.Rect) bool
}{
	// bottom to top through rt
	geom.Left: {geom.Top, func(e, n geom.Rect) bool { return n.Y() < e.Top() }},
	// left to right through tr
	geom.Bottom: {geom.Right, func(e, n geom.Rect) bool { return n.X() < e.Right() }},
	// top to bottom through lb
	geom.Right: {geom.Bottom, func(e, n geom.Rect) bool { return n.Top() > e.Y() }},
	// right to left through bl
	geom.Top: {geom.Left, func(e, n geom.Rect) bool { return n.Right() > e.X() }},
}

// neighbors calls yield for each tile bordering the given side of n, in walk
// order, until yield returns false. The tile set must not change meanwhile.
func (p *Plane) neighbors(n id, side geom.Side, yield func(id) bool) {
	edge := p.rect(n)
	w := walk[side]
	for i := p.tiles[n].stitch[side]; i != noTile; i = p.tiles[i].stitch[w.next] {
		if !w.more(edge, p.rect(i)) {
			return
		}
		if !yield(i) {
			return
		}
	}
}

// neighborList collects the neighbors of n on one side. Used by mutations,
// which must snapshot neighbors before editing stitches.
func (p *Plane) neighborList(n id, side geom.Side) []id {
	var ids []id
	p.neighbors(n, side, func(i id) bool {
		ids = append(ids, i)
		return true
	})
	return ids
}

// Neighbors returns all tiles bordering the given side of t:
// left side bottom to top, bottom side left to right,
// right side top to bottom, top side right to left.
//
// The sequence is evaluated lazily and may be restarted; it must not be used
// after the plane is modified.
func (p *Plane) Neighbors(t Tile, side geom.Side) (iter.Seq[Tile], error) {
	n, err := p.resolve(t)
	if err != nil {
		return nil, err
	}
	if !side.Valid() {
		return nil, ErrInvalidSide
	}
	return func(yield func(Tile) bool) {
		p.neighbors(n, side, func(i id) bool {
			return yield(p.handle(i))
		})
	}, nil
}

// Tiles returns an iterator over all live tiles in arena order.
func (p *Plane) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for n := range p.tiles {
			if p.tiles[n].live && !yield(p.handle(id(n))) {
				return
			}
		}
	}
}

// VisitTiles calls visitor for every live tile and stops at the first error.
func (p *Plane) VisitTiles(visitor func(Tile) error) error {
	for t := range p.Tiles() {
		if err := visitor(t); err != nil {
			return err
		}
	}
	return nil
}

// Solids returns the rectangles of all solid tiles in arena order.
func (p *Plane) Solids() []geom.Rect {
	var rects []geom.Rect
	for n := range p.tiles {
		if p.tiles[n].live && p.tiles[n].solid {
			rects = append(rects, p.tiles[n].rect)
		}
	}
	return rects
}
