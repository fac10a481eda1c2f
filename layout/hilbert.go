package layout

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/google/hilbert"
)

// SortHilbert orders items by the position of their lower-left corner along
// a Hilbert curve covering bounds. Consecutive items then tend to be close,
// which keeps point location walks short when the items are replayed.
// Items with corners outside bounds go last, in input order.
func SortHilbert(items []Item, bounds geom.Rect) error {
	n := 1 << bits.Len(uint(max(bounds.W(), bounds.H())-1))
	h, err := hilbert.NewHilbert(n)
	if err != nil {
		return err
	}

	keys := make(map[Item]int, len(items))
	for _, item := range items {
		p := item.Rect().Origin.Sub(bounds.Origin)
		key, err := h.MapInverse(p.X, p.Y)
		if err != nil {
			key = n * n
		}
		keys[item] = key
	}
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(keys[a], keys[b])
	})
	return nil
}
