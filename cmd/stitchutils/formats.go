package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eak1mov/go-stitch/geom"
	"github.com/eak1mov/go-stitch/layout"
	"github.com/eak1mov/go-stitch/store"
)

func deduceFormat(format, filePath string) string {
	if format == "" && strings.HasSuffix(filePath, ".stch") {
		return "stch"
	}
	if format == "" && (strings.HasSuffix(filePath, ".sqlite") || strings.HasSuffix(filePath, ".db")) {
		return "sqlite"
	}
	return format
}

type layoutReader interface {
	layout.Visitor
	io.Closer
}

type fileReader struct{ *layout.FileReader }

func (fileReader) Close() error { return nil }

// openLayout opens a layout for reading and returns its bounds.
func openLayout(format, filePath string) (layoutReader, geom.Rect, error) {
	switch deduceFormat(format, filePath) {
	case "stch":
		reader, err := layout.NewFileReader(filePath)
		if err != nil {
			return nil, geom.Rect{}, err
		}
		return fileReader{reader}, reader.Bounds, nil
	case "sqlite":
		reader, err := store.NewReader(filePath)
		if err != nil {
			return nil, geom.Rect{}, err
		}
		bounds, err := reader.ReadBounds()
		if err != nil {
			reader.Close()
			return nil, geom.Rect{}, err
		}
		return reader, bounds, nil
	}
	return nil, geom.Rect{}, fmt.Errorf("invalid input format: %q", format)
}

type layoutWriter interface {
	layout.Writer
	io.Closer
}

func createLayout(format, filePath string, bounds geom.Rect, hilbert bool) (layoutWriter, error) {
	switch deduceFormat(format, filePath) {
	case "stch":
		return layout.NewFileWriter(filePath, bounds, layout.WithHilbertOrder(hilbert))
	case "sqlite":
		return store.NewWriter(filePath, bounds,
			store.WithMetadata(map[string]string{"generator": "stitchutils"}),
			store.WithLogger(slog.Default()),
		)
	}
	return nil, fmt.Errorf("invalid output format: %q", format)
}
