package canvas

import (
	"testing"

	"thornvale/pkg/engine/tilemap"
)

func TestTileGeometry_Values(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)

	ts := m.GetTilesetFromID(23)
	if ts == nil {
		t.Fatal("tileset not resolved for id 23")
	}
	g := r.tileGeometryFor(23, ts)

	if g.RelativeID != 23 {
		t.Errorf("RelativeID = %d, want 23", g.RelativeID)
	}
	if g.SetWidth != 10 {
		t.Errorf("SetWidth = %d, want 10", g.SetWidth)
	}
	if g.SourceX != 3*testTileSize || g.SourceY != 2*testTileSize {
		t.Errorf("source = (%d,%d), want (%d,%d)", g.SourceX, g.SourceY, 3*testTileSize, 2*testTileSize)
	}
	if g.Width != testTileSize || g.Height != testTileSize {
		t.Errorf("size = %dx%d, want %dx%d", g.Width, g.Height, testTileSize, testTileSize)
	}
}

func TestTileGeometry_ComputedOnce(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)
	ts := m.GetTilesetFromID(5)

	first := r.tileGeometryFor(5, ts)
	second := r.tileGeometryFor(5, ts)
	if first != second {
		t.Error("second lookup recomputed tile geometry; want the cached entry")
	}
	if *first != *second {
		t.Errorf("geometry values differ between lookups: %+v vs %+v", *first, *second)
	}
}

func TestTileGeometry_NonZeroFirstID(t *testing.T) {
	m := newTestMap(t, 10, 10)
	m.AddTileset(&tilemap.Tileset{
		Width:   8 * testTileSize,
		FirstID: 100,
		Count:   32,
	})
	r, _, _, _ := newTestRenderer(t, m, 1)

	ts := m.GetTilesetFromID(109)
	if ts == nil || ts.FirstID != 100 {
		t.Fatalf("id 109 resolved to %+v, want the FirstID=100 set", ts)
	}
	g := r.tileGeometryFor(109, ts)
	if g.RelativeID != 9 {
		t.Errorf("RelativeID = %d, want 9", g.RelativeID)
	}
	if g.SetWidth != 8 {
		t.Errorf("SetWidth = %d, want 8", g.SetWidth)
	}
	if g.SourceX != 1*testTileSize || g.SourceY != 1*testTileSize {
		t.Errorf("source = (%d,%d), want (%d,%d)", g.SourceX, g.SourceY, testTileSize, testTileSize)
	}
}

func TestCellGeometry_ReusedWithoutFlips(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)

	first := r.cellGeometryFor(12, nil)
	second := r.cellGeometryFor(12, nil)
	if first != second {
		t.Error("unflipped cell geometry recomputed; want the cached entry")
	}
}

func TestCellGeometry_RecomputedWithFlips(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)

	first := r.cellGeometryFor(12, []Transform{Horizontal})
	second := r.cellGeometryFor(12, []Transform{Horizontal})
	if first == second {
		t.Error("flipped cell geometry reused; flips must recompute every call")
	}
}

func TestCellGeometry_Example(t *testing.T) {
	// Tile at map index 12, map width 10, zoom 1: destX = (12 % 10) * 16,
	// destY = (12 / 10) * 16.
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)

	g := r.cellGeometryFor(12, nil)
	if g.DestX != 32 || g.DestY != 16 {
		t.Errorf("dest = (%g,%g), want (32,16)", g.DestX, g.DestY)
	}
	if g.Width != testTileSize || g.Height != testTileSize {
		t.Errorf("size = %gx%g, want %dx%d", g.Width, g.Height, testTileSize, testTileSize)
	}
}

func TestCellGeometry_RoundsUpAtFractionalZoom(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1.5)

	// actualTileSize = 24; index 12 -> destX = ceil(2*24), destY = ceil(24).
	g := r.cellGeometryFor(12, nil)
	if g.DestX != 48 || g.DestY != 24 {
		t.Errorf("dest = (%g,%g), want (48,24)", g.DestX, g.DestY)
	}

	r.cam.SetScale(1.1)
	clear(r.cellGeometry)
	// actualTileSize = 17.6; index 3 -> destX = ceil(52.8) = 53.
	g = r.cellGeometryFor(3, nil)
	if g.DestX != 53 {
		t.Errorf("DestX = %g, want 53 (rounded up)", g.DestX)
	}
	if g.Width != 18 {
		t.Errorf("Width = %g, want 18 (rounded up)", g.Width)
	}
}

func TestResize_InvalidatesCellGeometry(t *testing.T) {
	m := newTestMap(t, 10, 10)
	r, _, _, _ := newTestRenderer(t, m, 1)

	stale := r.cellGeometryFor(12, nil)
	if stale.DestX != 32 {
		t.Fatalf("DestX = %g, want 32", stale.DestX)
	}

	r.cam.SetScale(2)
	r.Resize(640, 480)

	fresh := r.cellGeometryFor(12, nil)
	if fresh == stale {
		t.Fatal("cell geometry survived Resize; want every entry recomputed")
	}
	if fresh.DestX != 64 || fresh.DestY != 32 {
		t.Errorf("dest after resize = (%g,%g), want (64,32)", fresh.DestX, fresh.DestY)
	}
}
