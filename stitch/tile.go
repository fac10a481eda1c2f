package stitch

import (
	"fmt"

	"github.com/eak1mov/go-stitch/geom"
)

type id = int32

const noTile id = -1

// tile is an arena slot. Stitches are indexed by geom.Side:
//
//	Left   (bl): tile containing cell (X-1, Y)
//	Bottom (lb): tile containing cell (X, Y-1)
//	Right  (tr): tile containing cell (X+W, Y+H-1)
//	Top    (rt): tile containing cell (X+W-1, Y+H)
//
// noTile marks the edge of the plane.
type tile struct {
	rect   geom.Rect
	solid  bool
	live   bool
	gen    uint32
	stitch [4]id
}

// Tile is a borrowed handle to a tile of a Plane.
// It stays valid until the tile is deleted, merged or resized.
type Tile struct {
	plane *Plane
	id    id
	gen   uint32
}

// Valid reports whether t still refers to the same, unmodified tile.
func (t Tile) Valid() bool {
	return t.plane != nil && t.plane.owns(t.id, t.gen)
}

func (t Tile) ref() *tile {
	if !t.Valid() {
		panic(ErrStaleTile)
	}
	return &t.plane.tiles[t.id]
}

// ID returns the arena slot of the tile. Slots are reused after tiles are freed.
func (t Tile) ID() int {
	t.ref()
	return int(t.id)
}

// Rect returns the rectangle covered by the tile. It panics if t is not valid.
func (t Tile) Rect() geom.Rect {
	return t.ref().rect
}

// Solid reports whether the tile is solid. It panics if t is not valid.
func (t Tile) Solid() bool {
	return t.ref().solid
}

// Stitch returns the canonical neighbor on the given side, or a zero Tile at
// the edge of the plane. It panics if t is not valid.
func (t Tile) Stitch(side geom.Side) (Tile, bool) {
	if !side.Valid() {
		panic(ErrInvalidSide)
	}
	n := t.ref().stitch[side]
	if n == noTile {
		return Tile{}, false
	}
	return t.plane.handle(n), true
}

func (t Tile) String() string {
	if !t.Valid() {
		return "tile(stale)"
	}
	r := t.ref()
	kind := "space"
	if r.solid {
		kind = "solid"
	}
	return fmt.Sprintf("tile#%d(%v %s)", t.id, r.rect, kind)
}
