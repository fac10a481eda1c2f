// Package internal holds scenarios shared by tests and tools.
package internal

import (
	"math/rand/v2"

	"github.com/eak1mov/go-stitch/geom"
)

// ExampleBounds and ExampleRects describe the reference layout: inserting the
// rectangles in order into an empty plane of ExampleBounds succeeds for all
// of them and yields ExampleTiles.
var (
	ExampleBounds = geom.R(0, 0, 30, 24)
	ExampleRects  = []geom.Rect{
		geom.R(15, 2, 5, 5),
		geom.R(20, 2, 8, 2),
		geom.R(4, 5, 5, 8),
		geom.R(11, 11, 8, 4),
		geom.R(19, 14, 6, 4),
		geom.R(7, 18, 6, 4),
	}
)

// ExampleTiles is the full tiling after inserting ExampleRects.
var ExampleTiles = []ExampleTile{
	{geom.R(0, 0, 30, 2), false},
	{geom.R(0, 2, 15, 3), false},
	{geom.R(15, 2, 5, 5), true},
	{geom.R(20, 2, 8, 2), true},
	{geom.R(28, 2, 2, 2), false},
	{geom.R(0, 5, 4, 8), false},
	{geom.R(4, 5, 5, 8), true},
	{geom.R(9, 5, 6, 2), false},
	{geom.R(20, 4, 10, 3), false},
	{geom.R(9, 7, 21, 4), false},
	{geom.R(9, 11, 2, 2), false},
	{geom.R(11, 11, 8, 4), true},
	{geom.R(19, 11, 11, 3), false},
	{geom.R(0, 13, 11, 2), false},
	{geom.R(19, 14, 6, 4), true},
	{geom.R(25, 14, 5, 4), false},
	{geom.R(0, 15, 19, 3), false},
	{geom.R(0, 18, 7, 4), false},
	{geom.R(7, 18, 6, 4), true},
	{geom.R(13, 18, 17, 4), false},
	{geom.R(0, 22, 30, 2), false},
}

type ExampleTile struct {
	Rect  geom.Rect
	Solid bool
}

// RandomRect returns a rectangle inside bounds with sides up to maxSize.
func RandomRect(rng *rand.Rand, bounds geom.Rect, maxSize int) geom.Rect {
	w := 1 + rng.IntN(min(maxSize, bounds.W()))
	h := 1 + rng.IntN(min(maxSize, bounds.H()))
	x := bounds.X() + rng.IntN(bounds.W()-w+1)
	y := bounds.Y() + rng.IntN(bounds.H()-h+1)
	return geom.R(x, y, w, h)
}

// RandomRects returns count rectangles from a generator seeded with seed.
// The rectangles may overlap each other.
func RandomRects(seed uint64, count int, bounds geom.Rect, maxSize int) []geom.Rect {
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	rects := make([]geom.Rect, count)
	for i := range rects {
		rects[i] = RandomRect(rng, bounds, maxSize)
	}
	return rects
}
