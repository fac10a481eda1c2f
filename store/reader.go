// Package store provides API for keeping layouts in an SQLite database.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-stitch/geom"
)

// MetadataBounds is the metadata key holding the plane bounds as "x,y,w,h".
const MetadataBounds = "bounds"

var ErrNoBounds = errors.New("store: bounds metadata not found")

// Reader reads rectangles and metadata from a layout database.
type Reader struct {
	db *sql.DB
}

// NewReader opens the layout database at the given path read-only.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Reader{db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// ReadBounds parses the bounds stored in metadata.
func (r *Reader) ReadBounds() (geom.Rect, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM metadata WHERE name = ?", MetadataBounds).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return geom.Rect{}, ErrNoBounds
	}
	if err != nil {
		return geom.Rect{}, err
	}
	return parseBounds(value)
}

// VisitRects calls visitor for every stored rectangle in insertion order.
func (r *Reader) VisitRects(visitor func(geom.Rect) error) error {
	rows, err := r.db.Query("SELECT x, y, w, h FROM rects ORDER BY rowid")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var x, y, w, h int
		if err := rows.Scan(&x, &y, &w, &h); err != nil {
			return err
		}
		if err := visitor(geom.R(x, y, w, h)); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}

func formatBounds(r geom.Rect) string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X(), r.Y(), r.W(), r.H())
}

func parseBounds(value string) (geom.Rect, error) {
	var x, y, w, h int
	if _, err := fmt.Sscanf(value, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
		return geom.Rect{}, fmt.Errorf("store: invalid bounds %q: %w", value, err)
	}
	return geom.R(x, y, w, h), nil
}
