// Package stitch implements a corner-stitched plane: a bounded rectangle
// partitioned into solid and space tiles, where every tile keeps one
// canonical pointer per side to a neighboring tile.
//
// Space tiles are kept as maximal horizontal strips, so for a given set of
// solid tiles the space decomposition is unique.
//
// A Plane is not safe for concurrent use.
package stitch

import (
	"log/slog"

	"github.com/eak1mov/go-stitch/geom"
)

// Plane owns all tiles covering a fixed bounding rectangle.
type Plane struct {
	bounds geom.Rect
	tiles  []tile
	free   []id
	hint   id // last tile touched by a mutation

	logger    *slog.Logger
	selfCheck bool
}

type config struct {
	Logger    *slog.Logger
	SelfCheck bool
}

type Option func(*config)

// WithLogger sets the logger for mutation and diagnostic messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// WithSelfCheck runs all diagnostics after every Insert and Delete and
// logs violations at error level. It makes mutations linear in tile count.
func WithSelfCheck(enabled bool) Option {
	return func(c *config) { c.SelfCheck = enabled }
}

// New creates a plane covering bounds with a single space tile.
func New(bounds geom.Rect, opts ...Option) (*Plane, error) {
	config := config{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	if !bounds.Valid() {
		return nil, ErrInvalidRect
	}

	p := &Plane{
		bounds:    bounds,
		logger:    config.Logger,
		selfCheck: config.SelfCheck,
	}
	p.hint = p.alloc(bounds, false)
	for _, side := range geom.Sides {
		p.tiles[p.hint].stitch[side] = noTile
	}
	return p, nil
}

func (p *Plane) Bounds() geom.Rect {
	return p.bounds
}

// Len returns the number of live tiles.
func (p *Plane) Len() int {
	return len(p.tiles) - len(p.free)
}

func (p *Plane) alloc(r geom.Rect, solid bool) id {
	var n id
	if len(p.free) > 0 {
		n = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	} else {
		n = id(len(p.tiles))
		p.tiles = append(p.tiles, tile{})
	}
	t := &p.tiles[n]
	t.rect = r
	t.solid = solid
	t.live = true
	t.gen++
	t.stitch = [4]id{noTile, noTile, noTile, noTile}
	return n
}

func (p *Plane) release(n id) {
	t := &p.tiles[n]
	t.live = false
	t.gen++
	p.free = append(p.free, n)
}

// touch invalidates outstanding handles to n.
func (p *Plane) touch(n id) {
	p.tiles[n].gen++
}

func (p *Plane) owns(n id, gen uint32) bool {
	return n >= 0 && int(n) < len(p.tiles) && p.tiles[n].live && p.tiles[n].gen == gen
}

func (p *Plane) exists(n id) bool {
	return n >= 0 && int(n) < len(p.tiles) && p.tiles[n].live
}

func (p *Plane) handle(n id) Tile {
	return Tile{plane: p, id: n, gen: p.tiles[n].gen}
}

func (p *Plane) resolve(t Tile) (id, error) {
	if t.plane != p {
		if t.plane == nil {
			return noTile, ErrStaleTile
		}
		return noTile, ErrForeignTile
	}
	if !p.owns(t.id, t.gen) {
		return noTile, ErrStaleTile
	}
	return t.id, nil
}

func (p *Plane) rect(n id) geom.Rect {
	return p.tiles[n].rect
}

func (p *Plane) space(n id) bool {
	return n != noTile && !p.tiles[n].solid
}

func (p *Plane) start() id {
	if p.exists(p.hint) {
		return p.hint
	}
	for n := len(p.tiles) - 1; n >= 0; n-- {
		if p.tiles[n].live {
			return id(n)
		}
	}
	panic("stitch: plane has no tiles")
}

// Locate returns the tile containing the cell at pt, starting the walk from
// the last tile touched by a mutation.
func (p *Plane) Locate(pt geom.Pt) (Tile, error) {
	if !p.bounds.Contains(pt) {
		return Tile{}, ErrOutOfBounds
	}
	return p.handle(p.locate(pt, p.start())), nil
}

// LocateFrom is like Locate but starts the walk from the given tile.
func (p *Plane) LocateFrom(start Tile, pt geom.Pt) (Tile, error) {
	n, err := p.resolve(start)
	if err != nil {
		return Tile{}, err
	}
	if !p.bounds.Contains(pt) {
		return Tile{}, ErrOutOfBounds
	}
	return p.handle(p.locate(pt, n)), nil
}

// locate walks the stitches from n to the tile containing pt.
// pt must lie inside the plane.
func (p *Plane) locate(pt geom.Pt, n id) id {
	for {
		t := &p.tiles[n]
		// move up/down until the tile's row contains pt.Y
		for cmp := t.rect.CmpY(pt.Y); cmp != geom.Inside; cmp = t.rect.CmpY(pt.Y) {
			if cmp == geom.Below {
				n = t.stitch[geom.Bottom]
			} else {
				n = t.stitch[geom.Top]
			}
			t = &p.tiles[n]
		}
		// move left/right until the tile's column contains pt.X
		for cmp := t.rect.CmpX(pt.X); cmp != geom.Inside; cmp = t.rect.CmpX(pt.X) {
			if cmp == geom.Below {
				n = t.stitch[geom.Left]
			} else {
				n = t.stitch[geom.Right]
			}
			t = &p.tiles[n]
		}
		// horizontal moves may leave the row, repeat
		if t.rect.Contains(pt) {
			return n
		}
	}
}
