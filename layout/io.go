package layout

import (
	"errors"
	"iter"
	"os"

	"github.com/eak1mov/go-stitch/geom"
)

// Writer defines an interface for writing rectangles to a layout storage.
type Writer interface {
	// WriteRect appends a single rectangle.
	WriteRect(r geom.Rect) error

	// Finalize completes the writing process: flushes buffers, writes headers and indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitRects visits all rectangles in storage order, calling the visitor for each.
	VisitRects(visitor func(geom.Rect) error) error
}

var errVisitCancelled = errors.New("visit cancelled")

// IterRects returns an iterator over all rectangles of a Visitor.
// Iteration panics on read errors.
func IterRects(v Visitor) iter.Seq[geom.Rect] {
	return func(yield func(geom.Rect) bool) {
		err := v.VisitRects(func(r geom.Rect) error {
			if !yield(r) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

// FileReader reads a layout file fully into memory.
type FileReader struct {
	Bounds geom.Rect
	Items  []Item
}

func NewFileReader(filePath string) (*FileReader, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	bounds, items, err := Read(data)
	if err != nil {
		return nil, err
	}
	return &FileReader{Bounds: bounds, Items: items}, nil
}

func (r *FileReader) VisitRects(visitor func(geom.Rect) error) error {
	for _, item := range r.Items {
		if err := visitor(item.Rect()); err != nil {
			return err
		}
	}
	return nil
}

// FileWriter buffers rectangles and writes the layout file on Finalize.
type FileWriter struct {
	file    *os.File
	bounds  geom.Rect
	items   []Item
	hilbert bool
}

type writerConfig struct {
	Hilbert bool
}

type WriterOption func(*writerConfig)

// WithHilbertOrder sorts the rectangles with SortHilbert before writing.
func WithHilbertOrder(enabled bool) WriterOption {
	return func(c *writerConfig) { c.Hilbert = enabled }
}

func NewFileWriter(filePath string, bounds geom.Rect, opts ...WriterOption) (*FileWriter, error) {
	config := writerConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	if err := CheckRange(bounds); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: file, bounds: bounds, hilbert: config.Hilbert}, nil
}

func (w *FileWriter) WriteRect(r geom.Rect) error {
	if err := CheckRange(r); err != nil {
		return err
	}
	w.items = append(w.items, FromRect(r))
	return nil
}

func (w *FileWriter) Finalize() error {
	if w.hilbert {
		if err := SortHilbert(w.items, w.bounds); err != nil {
			return err
		}
	}
	return Write(w.file, w.bounds, w.items)
}

func (w *FileWriter) Close() error {
	return w.file.Close()
}
