package store_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/internal"
	"github.com/eak1mov/go-stitch/store"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")

	writer, err := store.NewWriter(path, internal.ExampleBounds,
		store.WithMetadata(map[string]string{"name": "example"}))
	require.NoError(t, err)
	for _, r := range internal.ExampleRects {
		require.NoError(t, writer.WriteRect(r))
	}
	require.NoError(t, writer.Finalize())
	require.NoError(t, writer.Close())

	reader, err := store.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	metadata, err := reader.ReadMetadata()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"name": "example", "bounds": "0,0,30,24"}, metadata)

	bounds, err := reader.ReadBounds()
	require.NoError(t, err)
	require.Equal(t, internal.ExampleBounds, bounds)

	var rects []geom.Rect
	require.NoError(t, reader.VisitRects(func(r geom.Rect) error {
		rects = append(rects, r)
		return nil
	}))
	require.Equal(t, internal.ExampleRects, rects)
}

func TestVisitorError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")

	writer, err := store.NewWriter(path, geom.R(0, 0, 10, 10))
	require.NoError(t, err)
	require.NoError(t, writer.WriteRect(geom.R(1, 1, 2, 2)))
	require.NoError(t, writer.WriteRect(geom.R(5, 5, 2, 2)))
	require.NoError(t, writer.Finalize())
	require.NoError(t, writer.Close())

	reader, err := store.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	errStop := errors.New("stop")
	calls := 0
	err = reader.VisitRects(func(geom.Rect) error {
		calls++
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 1, calls)
}

func TestMissingFile(t *testing.T) {
	_, err := store.NewReader(filepath.Join(t.TempDir(), "missing.sqlite"))
	require.Error(t, err)
}

func TestMissingBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE metadata (name TEXT, value TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reader, err := store.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.ReadBounds()
	require.ErrorIs(t, err, store.ErrNoBounds)
}

func TestCloseWithoutFinalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")

	writer, err := store.NewWriter(path, geom.R(0, 0, 10, 10))
	require.NoError(t, err)
	require.NoError(t, writer.WriteRect(geom.R(1, 1, 2, 2)))
	require.NoError(t, writer.Close())

	reader, err := store.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	bounds, err := reader.ReadBounds()
	require.NoError(t, err)
	require.Equal(t, geom.R(0, 0, 10, 10), bounds)

	calls := 0
	require.NoError(t, reader.VisitRects(func(geom.Rect) error {
		calls++
		return nil
	}))
	require.Equal(t, 0, calls)
}

func TestWriteInvalidRect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")

	writer, err := store.NewWriter(path, geom.R(0, 0, 10, 10))
	require.NoError(t, err)
	defer writer.Close()

	require.Error(t, writer.WriteRect(geom.R(1, 1, 0, 2)))
	require.NoError(t, writer.WriteRect(geom.R(1, 1, 1, 2)))
	require.NoError(t, writer.Finalize())
}

func TestDuplicateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.sqlite")

	writer, err := store.NewWriter(path, geom.R(0, 0, 10, 10))
	require.NoError(t, err)
	require.NoError(t, writer.Finalize())
	require.NoError(t, writer.Close())

	_, err = store.NewWriter(path, geom.R(0, 0, 10, 10))
	require.Error(t, err)
}
