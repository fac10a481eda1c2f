package stitch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/eak1mov/go-stitch/geom"
)

func examplePlane(t *testing.T, buf *bytes.Buffer) *Plane {
	t.Helper()
	p, err := New(geom.R(0, 0, 30, 24), WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, r := range []geom.Rect{
		geom.R(15, 2, 5, 5),
		geom.R(20, 2, 8, 2),
		geom.R(4, 5, 5, 8),
		geom.R(11, 11, 8, 4),
	} {
		if _, err := p.Insert(r); err != nil {
			t.Fatalf("Insert(%v) failed: %v", r, err)
		}
	}
	return p
}

func (p *Plane) find(pt geom.Pt) id {
	return p.locate(pt, p.start())
}

func TestCheckDetectsBrokenStitch(t *testing.T) {
	var buf bytes.Buffer
	p := examplePlane(t, &buf)
	n := p.find(geom.Pt{X: 15, Y: 11})
	p.tiles[n].stitch[geom.Bottom] = p.find(geom.Pt{X: 0, Y: 0})

	if got := p.CheckNeighbors(); got == 0 {
		t.Errorf("CheckNeighbors() = 0 on broken stitch")
	}
	if got := p.CheckStrip(); got == 0 {
		t.Errorf("CheckStrip() = 0 on broken stitch")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("no warnings logged:\n%s", buf.String())
	}
}

func TestCheckDetectsOverlap(t *testing.T) {
	var buf bytes.Buffer
	p := examplePlane(t, &buf)
	n := p.find(geom.Pt{X: 4, Y: 5})
	p.tiles[n].rect.Size.W++

	if got := p.CheckTiles(); got == 0 {
		t.Errorf("CheckTiles() = 0 on overlapping tiles")
	}
	// the widened tile covers column 9 of its right neighbor
	if !strings.Contains(buf.String(), "common=(9,5)+1x2") {
		t.Errorf("overlap not reported with its common part:\n%s", buf.String())
	}
}

func TestCheckDetectsMergeableSpace(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(geom.R(0, 0, 10, 10), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p.splitH(p.find(geom.Pt{X: 0, Y: 0}), 4)

	if got := p.CheckTiles(); got != 1 {
		t.Errorf("CheckTiles() = %d, want 1", got)
	}
	if got := p.CheckNeighbors(); got != 0 {
		t.Errorf("CheckNeighbors() = %d, want 0", got)
	}
}

func TestCheckDetectsSpaceNextToSpace(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(geom.R(0, 0, 10, 10), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p.splitV(p.find(geom.Pt{X: 0, Y: 0}), 4)

	if got := p.CheckStrip(); got != 2 {
		t.Errorf("CheckStrip() = %d, want 2", got)
	}
	if got := p.CheckNeighbors(); got != 0 {
		t.Errorf("CheckNeighbors() = %d, want 0", got)
	}
}

func TestSelfCheckReportsError(t *testing.T) {
	var buf bytes.Buffer
	p := examplePlane(t, &buf)
	p.selfCheck = true
	n := p.find(geom.Pt{X: 0, Y: 0})
	p.tiles[n].stitch[geom.Top] = noTile

	if _, err := p.Insert(geom.R(0, 20, 2, 2)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("no error logged after mutation:\n%s", buf.String())
	}
}
