// Package layout provides a compact binary file format for lists of
// rectangles placed on a plane.
//
// A layout file is a fixed-size little-endian Header followed by
// Header.Count Item records.
package layout

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/eak1mov/go-stitch/geom"
)

const (
	Magic   uint32 = 0x48435453 // "STCH"
	Version uint32 = 1

	HeaderLength = 28
	ItemLength   = 16
)

var (
	ErrInvalidHeader  = errors.New("layout: invalid file header")
	ErrInvalidVersion = errors.New("layout: invalid version")
	ErrTruncated      = errors.New("layout: truncated item data")
	ErrOutOfRange     = errors.New("layout: coordinates do not fit in int32")
)

// Item is a single rectangle record. It is designed to be easily portable
// to other languages and utilities.
type Item struct {
	X int32
	Y int32
	W int32
	H int32
}

// CheckRange reports ErrOutOfRange unless every edge of r fits in an Item.
func CheckRange(r geom.Rect) error {
	for _, v := range []int{r.X(), r.Y(), r.Right(), r.Top(), r.W(), r.H()} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("%w: %v", ErrOutOfRange, r)
		}
	}
	return nil
}

// FromRect converts r to an Item. Coordinates are truncated unless
// CheckRange(r) succeeds.
func FromRect(r geom.Rect) Item {
	return Item{X: int32(r.X()), Y: int32(r.Y()), W: int32(r.W()), H: int32(r.H())}
}

func (i Item) Rect() geom.Rect {
	return geom.R(int(i.X), int(i.Y), int(i.W), int(i.H))
}

type Header struct {
	Magic   uint32
	Version uint32
	Bounds  Item
	Count   uint32
}

// Write stores bounds and items in the layout format.
func Write(writer io.Writer, bounds geom.Rect, items []Item) error {
	if err := CheckRange(bounds); err != nil {
		return err
	}
	w := bufio.NewWriter(writer)
	header := Header{
		Magic:   Magic,
		Version: Version,
		Bounds:  FromRect(bounds),
		Count:   uint32(len(items)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, items); err != nil {
		return err
	}
	return w.Flush()
}

// Read parses a layout file held in memory.
func Read(data []byte) (geom.Rect, []Item, error) {
	reader := bytes.NewReader(data)
	header := Header{}
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return geom.Rect{}, nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if header.Magic != Magic {
		return geom.Rect{}, nil, ErrInvalidHeader
	}
	if header.Version != Version {
		return geom.Rect{}, nil, ErrInvalidVersion
	}
	bounds := header.Bounds.Rect()
	if !bounds.Valid() {
		return geom.Rect{}, nil, fmt.Errorf("%w: bounds %v", ErrInvalidHeader, bounds)
	}

	if want := int(header.Count) * ItemLength; reader.Len() < want {
		return geom.Rect{}, nil, fmt.Errorf("%w: have %d bytes, want %d", ErrTruncated, reader.Len(), want)
	}
	items := make([]Item, header.Count)
	if err := binary.Read(reader, binary.LittleEndian, items); err != nil {
		return geom.Rect{}, nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return bounds, items, nil
}
