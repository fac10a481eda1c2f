package stitch

import (
	"slices"

	"github.com/eak1mov/go-stitch/geom"
)

// westward offsets a cell to its left neighbor cell.
var westward = geom.Pt{X: -1}

// Delete turns the solid tile t into space and merges the freed area with
// the surrounding space, restoring maximal horizontal strips.
// Deleting a tile that is stale, space, or owned by another plane is a usage error.
func (p *Plane) Delete(t Tile) error {
	dead, err := p.resolve(t)
	if err != nil {
		return err
	}
	if !p.tiles[dead].solid {
		return ErrNotSolid
	}

	d := p.rect(dead)
	p.tiles[dead].solid = false
	p.touch(dead)

	var touched []id

	// 1. cut the space side neighbors sticking out above or below the tile
	if d.X() > p.bounds.X() {
		touched = p.trimSide(dead, d.UpperLeft().Add(westward), d, touched)
		touched = p.trimSide(dead, d.LowerLeft().Add(westward), d, touched)
	}
	if d.Right() < p.bounds.Right() {
		touched = p.trimSide(dead, d.UpperLeft().Add(geom.Pt{X: d.W()}), d, touched)
		touched = p.trimSide(dead, d.LowerLeft().Add(geom.Pt{X: d.W()}), d, touched)
	}

	// 2. cut the dead tile and its space side neighbors at every horizontal
	// boundary of those neighbors, so that rows line up
	var cuts []int
	for _, side := range []geom.Side{geom.Left, geom.Right} {
		p.neighbors(dead, side, func(i id) bool {
			if p.space(i) {
				ri := p.rect(i)
				cuts = append(cuts, ri.Y(), ri.Top())
			}
			return true
		})
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	rows := []id{dead}
	for _, y := range cuts {
		if y <= d.Y() || y >= d.Top() {
			continue
		}
		if d.X() > p.bounds.X() {
			p.cutAt(geom.Pt{X: d.X() - 1, Y: y}, dead)
		}
		if d.Right() < p.bounds.Right() {
			p.cutAt(geom.Pt{X: d.Right(), Y: y}, dead)
		}
		rows = append(rows, p.splitH(rows[len(rows)-1], y))
	}

	// 3. merge every row with its space neighbors, left first
	for _, row := range rows {
		if l := p.tiles[row].stitch[geom.Left]; p.mergeableV(l, row) {
			row = p.mergeV(l, row)
		}
		if r := p.tiles[row].stitch[geom.Right]; p.mergeableV(row, r) {
			row = p.mergeV(row, r)
		}
		touched = append(touched, row)
	}

	// 4. merge vertically stacked strips among everything touched
	survivor := p.mergeStacks(touched)

	p.hint = survivor
	p.logger.Debug("stitch: delete", "rect", d, "tiles", p.Len())
	p.afterMutation("delete")
	return nil
}

// trimSide splits the space tile containing pt where it crosses the top or
// bottom edge of d. The parts outside d are appended to touched.
func (p *Plane) trimSide(start id, pt geom.Pt, d geom.Rect, touched []id) []id {
	n := p.locate(pt, start)
	if !p.space(n) {
		return touched
	}
	if p.rect(n).Top() > d.Top() {
		touched = append(touched, p.splitH(n, d.Top()))
	}
	if p.rect(n).Y() < d.Y() {
		touched = append(touched, n)
		p.splitH(n, d.Y())
	}
	return touched
}

// cutAt splits the space tile containing pt along the row pt.Y if it
// crosses that line.
func (p *Plane) cutAt(pt geom.Pt, start id) {
	n := p.locate(pt, start)
	if p.space(n) && p.rect(n).Y() < pt.Y {
		p.splitH(n, pt.Y)
	}
}

// mergeStacks merges space tiles in the worklist with equal-span space tiles
// above and below until no merge applies. It returns a live survivor.
func (p *Plane) mergeStacks(work []id) id {
	last := noTile
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if !p.exists(n) {
			continue
		}
		last = n
		if !p.space(n) {
			continue
		}
		if up := p.tiles[n].stitch[geom.Top]; p.mergeableH(n, up) {
			work = append(work, p.mergeH(n, up))
			continue
		}
		if down := p.tiles[n].stitch[geom.Bottom]; p.mergeableH(down, n) {
			work = append(work, p.mergeH(down, n))
			continue
		}
	}
	return last
}
