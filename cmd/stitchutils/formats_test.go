package main

import (
	"path/filepath"
	"testing"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/internal"
	"github.com/eak1mov/go-stitch/layout"
	"github.com/stretchr/testify/require"
)

func TestDeduceFormat(t *testing.T) {
	require.Equal(t, "stch", deduceFormat("", "a/b.stch"))
	require.Equal(t, "sqlite", deduceFormat("", "a/b.sqlite"))
	require.Equal(t, "sqlite", deduceFormat("", "b.db"))
	require.Equal(t, "stch", deduceFormat("stch", "b.db"))
	require.Equal(t, "", deduceFormat("", "b.txt"))
}

func TestCreateOpenLayout(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"example.stch", "example.sqlite"} {
		path := filepath.Join(dir, name)

		writer, err := createLayout("", path, internal.ExampleBounds, false)
		require.NoError(t, err)
		for _, r := range internal.ExampleRects {
			require.NoError(t, writer.WriteRect(r))
		}
		require.NoError(t, writer.Finalize())
		require.NoError(t, writer.Close())

		reader, bounds, err := openLayout("", path)
		require.NoError(t, err)
		require.Equal(t, internal.ExampleBounds, bounds)
		var rects []geom.Rect
		for r := range layout.IterRects(reader) {
			rects = append(rects, r)
		}
		require.Equal(t, internal.ExampleRects, rects)
		require.NoError(t, reader.Close())
	}

	_, _, err := openLayout("", filepath.Join(dir, "example.txt"))
	require.Error(t, err)
}
