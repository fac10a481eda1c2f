package stitch

import (
	"github.com/eak1mov/go-stitch/geom"
)

// splitH cuts n along the line y and returns the new upper tile.
// n keeps the lower part. Requires rect(n).Y < y < rect(n).Top.
func (p *Plane) splitH(n id, y int) id {
	orig := p.rect(n)
	tops := p.neighborList(n, geom.Top)
	lefts := p.neighborList(n, geom.Left)
	rights := p.neighborList(n, geom.Right)

	upper := p.alloc(geom.R(orig.X(), y, orig.W(), orig.Top()-y), p.tiles[n].solid)
	lower := n
	p.tiles[lower].rect.Size.H = y - orig.Y()
	p.touch(lower)

	u, l := &p.tiles[upper], &p.tiles[lower]
	u.stitch[geom.Bottom] = lower
	u.stitch[geom.Right] = l.stitch[geom.Right]
	u.stitch[geom.Top] = l.stitch[geom.Top]
	u.stitch[geom.Left] = noTile
	l.stitch[geom.Top] = upper
	l.stitch[geom.Right] = noTile

	for _, i := range tops {
		if p.tiles[i].stitch[geom.Bottom] == lower {
			p.tiles[i].stitch[geom.Bottom] = upper
		}
	}
	// lefts run bottom to top
	for _, i := range lefts {
		ri := p.rect(i)
		if ri.Top() > y {
			if p.tiles[i].stitch[geom.Right] == lower {
				p.tiles[i].stitch[geom.Right] = upper
			}
			if u.stitch[geom.Left] == noTile {
				u.stitch[geom.Left] = i
			}
		}
	}
	// rights run top to bottom
	for _, i := range rights {
		ri := p.rect(i)
		if ri.Y() >= y {
			if p.tiles[i].stitch[geom.Left] == lower {
				p.tiles[i].stitch[geom.Left] = upper
			}
		} else if l.stitch[geom.Right] == noTile {
			l.stitch[geom.Right] = i
		}
	}
	return upper
}

// splitV cuts n along the line x and returns the new right tile.
// n keeps the left part. Requires rect(n).X < x < rect(n).Right.
func (p *Plane) splitV(n id, x int) id {
	orig := p.rect(n)
	rights := p.neighborList(n, geom.Right)
	bottoms := p.neighborList(n, geom.Bottom)
	tops := p.neighborList(n, geom.Top)

	right := p.alloc(geom.R(x, orig.Y(), orig.Right()-x, orig.H()), p.tiles[n].solid)
	left := n
	p.tiles[left].rect.Size.W = x - orig.X()
	p.touch(left)

	r, l := &p.tiles[right], &p.tiles[left]
	r.stitch[geom.Left] = left
	r.stitch[geom.Right] = l.stitch[geom.Right]
	r.stitch[geom.Top] = l.stitch[geom.Top]
	r.stitch[geom.Bottom] = noTile
	l.stitch[geom.Right] = right
	l.stitch[geom.Top] = noTile

	for _, i := range rights {
		if p.tiles[i].stitch[geom.Left] == left {
			p.tiles[i].stitch[geom.Left] = right
		}
	}
	// bottoms run left to right
	for _, i := range bottoms {
		ri := p.rect(i)
		if ri.Right() > x {
			if p.tiles[i].stitch[geom.Top] == left {
				p.tiles[i].stitch[geom.Top] = right
			}
			if r.stitch[geom.Bottom] == noTile {
				r.stitch[geom.Bottom] = i
			}
		}
	}
	// tops run right to left
	for _, i := range tops {
		ri := p.rect(i)
		if ri.X() >= x {
			if p.tiles[i].stitch[geom.Bottom] == left {
				p.tiles[i].stitch[geom.Bottom] = right
			}
		} else if l.stitch[geom.Top] == noTile {
			l.stitch[geom.Top] = i
		}
	}
	return right
}

// mergeH joins upper into lower, which must have the same x-span and touch
// vertically. The upper tile is freed; lower survives.
func (p *Plane) mergeH(lower, upper id) id {
	for _, i := range p.neighborList(upper, geom.Top) {
		if p.tiles[i].stitch[geom.Bottom] == upper {
			p.tiles[i].stitch[geom.Bottom] = lower
		}
	}
	for _, i := range p.neighborList(upper, geom.Left) {
		if p.tiles[i].stitch[geom.Right] == upper {
			p.tiles[i].stitch[geom.Right] = lower
		}
	}
	for _, i := range p.neighborList(upper, geom.Right) {
		if p.tiles[i].stitch[geom.Left] == upper {
			p.tiles[i].stitch[geom.Left] = lower
		}
	}
	l, u := &p.tiles[lower], &p.tiles[upper]
	l.stitch[geom.Right] = u.stitch[geom.Right]
	l.stitch[geom.Top] = u.stitch[geom.Top]
	l.rect.Size.H += u.rect.Size.H
	p.touch(lower)
	p.release(upper)
	if p.hint == upper {
		p.hint = lower
	}
	return lower
}

// mergeV joins right into left, which must have the same y-span and touch
// horizontally. The right tile is freed; left survives.
func (p *Plane) mergeV(left, right id) id {
	for _, i := range p.neighborList(right, geom.Right) {
		if p.tiles[i].stitch[geom.Left] == right {
			p.tiles[i].stitch[geom.Left] = left
		}
	}
	for _, i := range p.neighborList(right, geom.Bottom) {
		if p.tiles[i].stitch[geom.Top] == right {
			p.tiles[i].stitch[geom.Top] = left
		}
	}
	for _, i := range p.neighborList(right, geom.Top) {
		if p.tiles[i].stitch[geom.Bottom] == right {
			p.tiles[i].stitch[geom.Bottom] = left
		}
	}
	l, r := &p.tiles[left], &p.tiles[right]
	l.stitch[geom.Right] = r.stitch[geom.Right]
	l.stitch[geom.Top] = r.stitch[geom.Top]
	l.rect.Size.W += r.rect.Size.W
	p.touch(left)
	p.release(right)
	if p.hint == right {
		p.hint = left
	}
	return left
}

// mergeableH reports whether a and b are space tiles with the same x-span.
func (p *Plane) mergeableH(a, b id) bool {
	if !p.space(a) || !p.space(b) {
		return false
	}
	ra, rb := p.rect(a), p.rect(b)
	return ra.X() == rb.X() && ra.W() == rb.W()
}

// mergeableV reports whether a and b are space tiles with the same y-span.
func (p *Plane) mergeableV(a, b id) bool {
	if !p.space(a) || !p.space(b) {
		return false
	}
	ra, rb := p.rect(a), p.rect(b)
	return ra.Y() == rb.Y() && ra.H() == rb.H()
}

// mergeUp joins n with the space tile above it if both span the same columns.
func (p *Plane) mergeUp(n id) id {
	if up := p.tiles[n].stitch[geom.Top]; p.mergeableH(n, up) {
		return p.mergeH(n, up)
	}
	return n
}

// mergeDown joins n with the space tile below it if both span the same columns.
func (p *Plane) mergeDown(n id) id {
	if down := p.tiles[n].stitch[geom.Bottom]; p.mergeableH(down, n) {
		return p.mergeH(down, n)
	}
	return n
}
