package stitch

import (
	"github.com/eak1mov/go-stitch/geom"
)

// Insert adds a solid tile covering exactly r and returns it.
//
// If r overlaps an existing solid tile, Insert returns ErrConflict and leaves
// the plane unchanged. Space around r is split into maximal horizontal strips.
func (p *Plane) Insert(r geom.Rect) (Tile, error) {
	if err := p.checkArea(r); err != nil {
		return Tile{}, err
	}
	if solid := p.areaSearch(r, p.start()); solid != noTile {
		p.logger.Debug("stitch: insert conflict", "rect", r, "solid", p.rect(solid))
		return Tile{}, ErrConflict
	}

	// Within r everything is space, and since space tiles are maximal strips
	// each row of r lies in a single space tile. Only the tiles holding the
	// top and bottom rows can stick out vertically.
	top := p.locate(r.UpperLeft(), p.start())
	if p.rect(top).Top() > r.Top() {
		p.splitH(top, r.Top())
	}
	bottom := p.locate(r.LowerLeft(), top)
	if p.rect(bottom).Y() < r.Y() {
		bottom = p.splitH(bottom, r.Y())
	}

	// walk the rows top to bottom, cutting off the left and right remainders
	solid := noTile
	left, right := noTile, noTile
	row := p.locate(r.UpperLeft(), bottom)
	for {
		if p.rect(row).X() < r.X() {
			mid := p.splitV(row, r.X())
			left = p.mergeUp(row)
			row = mid
		} else {
			left = noTile
		}
		if p.rect(row).Right() > r.Right() {
			right = p.mergeUp(p.splitV(row, r.Right()))
		} else {
			right = noTile
		}
		if solid != noTile {
			row = p.mergeH(row, solid)
		}
		solid = row
		if p.rect(row).Y() == r.Y() {
			break
		}
		// the tile below the lower-left cell of the row
		row = p.tiles[row].stitch[geom.Bottom]
	}
	if left != noTile {
		p.mergeDown(left)
	}
	if right != noTile {
		p.mergeDown(right)
	}

	p.tiles[solid].solid = true
	p.touch(solid)
	p.hint = solid
	p.logger.Debug("stitch: insert", "rect", r, "tile", solid, "tiles", p.Len())
	p.afterMutation("insert")
	return p.handle(solid), nil
}
