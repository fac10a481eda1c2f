package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eak1mov/go-stitch/geom"
)

var ErrCountMismatch = errors.New("store: stored rectangle count mismatch")

// Writer writes rectangles into a new layout database.
// Rectangles are written in a single transaction committed by Finalize;
// closing a Writer that was not finalized discards them.
type Writer struct {
	db      *sql.DB
	tx      *sql.Tx
	stmt    *sql.Stmt
	written int
	logger  *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

const schema = `
	CREATE TABLE metadata (name TEXT PRIMARY KEY, value TEXT);
	CREATE TABLE rects (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		w INTEGER NOT NULL CHECK (w > 0),
		h INTEGER NOT NULL CHECK (h > 0)
	);
`

// NewWriter creates a new layout database covering bounds.
// The schema and metadata are stored immediately, rectangles on Finalize.
func NewWriter(filePath string, bounds geom.Rect, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(db, bounds, config)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return w, nil
}

func newWriter(db *sql.DB, bounds geom.Rect, config writerConfig) (*Writer, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	metadata := map[string]string{MetadataBounds: formatBounds(bounds)}
	for k, v := range config.Metadata {
		if k != MetadataBounds {
			metadata[k] = v
		}
	}
	for k, v := range metadata {
		if _, err := db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v); err != nil {
			return nil, fmt.Errorf("store: metadata %q: %w", k, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	stmt, err := tx.Prepare("INSERT INTO rects (x, y, w, h) VALUES (?, ?, ?, ?)")
	if err != nil {
		return nil, errors.Join(err, tx.Rollback())
	}
	return &Writer{db: db, tx: tx, stmt: stmt, logger: config.Logger}, nil
}

// Close releases database resources, discarding rectangles written since
// the last Finalize.
func (w *Writer) Close() error {
	err := w.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		err = nil
	}
	return errors.Join(w.stmt.Close(), err, w.db.Close())
}

func (w *Writer) WriteRect(r geom.Rect) error {
	if _, err := w.stmt.Exec(r.X(), r.Y(), r.W(), r.H()); err != nil {
		return fmt.Errorf("store: write %v: %w", r, err)
	}
	w.written++
	return nil
}

// Finalize indexes the rectangles, checks that all of them were stored and
// commits the transaction.
func (w *Writer) Finalize() error {
	w.logger.Debug("store: creating index", "rects", w.written)
	if _, err := w.tx.Exec("CREATE INDEX rects_index ON rects (y, x)"); err != nil {
		return err
	}

	var stored int
	if err := w.tx.QueryRow("SELECT COUNT(*) FROM rects").Scan(&stored); err != nil {
		return err
	}
	if stored != w.written {
		return fmt.Errorf("%w: stored %d, written %d", ErrCountMismatch, stored, w.written)
	}

	if err := w.tx.Commit(); err != nil {
		return err
	}
	w.logger.Debug("store: done!")
	return nil
}
