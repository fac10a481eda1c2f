package stitch

import (
	"errors"
	"fmt"
)

// ErrConflict is returned by Insert when the requested rectangle overlaps a
// solid tile. The plane is left untouched and the caller may retry.
var ErrConflict = errors.New("stitch: area overlaps a solid tile")

// ErrUsage is wrapped by every error caused by a caller mistake.
// Such calls are rejected before the plane is modified.
var ErrUsage = errors.New("stitch: usage error")

// Usage errors
var (
	ErrInvalidRect = fmt.Errorf("%w: rectangle must have positive size", ErrUsage)
	ErrOutOfBounds = fmt.Errorf("%w: outside plane bounds", ErrUsage)
	ErrInvalidSide = fmt.Errorf("%w: invalid side", ErrUsage)

	// ErrStaleTile indicates a handle whose tile was deleted, merged or resized
	// after the handle was obtained.
	ErrStaleTile = fmt.Errorf("%w: stale tile handle", ErrUsage)

	// ErrForeignTile indicates a handle that belongs to another plane.
	ErrForeignTile = fmt.Errorf("%w: tile belongs to another plane", ErrUsage)

	ErrNotSolid = fmt.Errorf("%w: tile is not solid", ErrUsage)
)
