package canvas

import (
	"fmt"
	"slices"
	"testing"

	"thornvale/pkg/engine/tilemap"
)

func TestRender_SuppressedIsNoOp(t *testing.T) {
	m := newTestMap(t, 4, 4)
	m.SetTile(0, 1, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	r.SetSuppressed(true)
	r.Render()

	for name, ctx := range map[string]*recordingContext{"background": bg, "foreground": fg, "overlay": ov} {
		if len(ctx.calls) != 0 {
			t.Errorf("%s touched while suppressed: %v", name, ctx.calls)
		}
	}

	r.SetSuppressed(false)
	r.Render()
	if totalBlits(bg, fg, ov) != 1 {
		t.Errorf("blits after resume = %d, want 1", totalBlits(bg, fg, ov))
	}
}

func TestDraw_SurfaceLifecycle(t *testing.T) {
	m := newTestMap(t, 4, 4)
	m.SetTile(0, 1, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)
	r.cam.LookAt(1, 0)

	r.Render()

	dx, dy := r.cam.Offset()
	translate := fmt.Sprintf("translate(%g,%g)", dx, dy)

	wantBG := []string{"clear", "save", "fill", translate, "restore"}
	if !slices.Equal(bg.calls, wantBG) {
		t.Errorf("background calls = %v, want %v", bg.calls, wantBG)
	}
	wantFG := []string{"clear", "save", translate, "restore"}
	if !slices.Equal(fg.calls, wantFG) {
		t.Errorf("foreground calls = %v, want %v", fg.calls, wantFG)
	}
	// The overlay is positioned but not cleared; the lighting system owns
	// its contents.
	wantOV := []string{"save", translate, "restore"}
	if !slices.Equal(ov.calls, wantOV) {
		t.Errorf("overlay calls = %v, want %v", ov.calls, wantOV)
	}
}

func TestDraw_LayerRouting(t *testing.T) {
	m := newTestMap(t, 4, 4)
	m.MarkHigh(7)
	m.MarkLight(7)
	m.SetTile(5, 7, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	// High tile, no overlay: foreground.
	r.Render()
	if len(fg.blits) != 1 || len(bg.blits) != 0 || len(ov.blits) != 0 {
		t.Fatalf("blits bg/fg/ov = %d/%d/%d, want 0/1/0", len(bg.blits), len(fg.blits), len(ov.blits))
	}

	// Same tile with lighting active: overlay wins over the layer choice.
	r.SetLighting(true)
	r.Render()
	if len(ov.blits) != 1 {
		t.Errorf("overlay blits = %d, want 1", len(ov.blits))
	}
	if len(fg.blits) != 1 {
		t.Errorf("foreground blits = %d, want 1 (only the lighting-off pass)", len(fg.blits))
	}
}

func TestDraw_DefaultSurfaceIsBackground(t *testing.T) {
	m := newTestMap(t, 4, 4)
	m.SetTile(5, 1, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	r.Render()
	if len(bg.blits) != 1 || len(fg.blits) != 0 || len(ov.blits) != 0 {
		t.Errorf("blits bg/fg/ov = %d/%d/%d, want 1/0/0", len(bg.blits), len(fg.blits), len(ov.blits))
	}
}

func TestDraw_SkipsEmptyAndUnresolvableTiles(t *testing.T) {
	m := newTestMap(t, 4, 4)
	// Index 1 has an id no tileset covers; every other cell is empty.
	m.SetTile(1, 500, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	r.Render()
	if n := totalBlits(bg, fg, ov); n != 0 {
		t.Errorf("blits = %d, want 0 (empty and unresolvable tiles skip)", n)
	}
}

func TestFrameCache_ShortCircuit(t *testing.T) {
	m := newTestMap(t, 4, 4)
	m.SetTile(0, 1, false, false, false)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	r.SetFrameCaching(true)
	r.Render()
	r.Render()
	if n := totalBlits(bg, fg, ov); n != 1 {
		t.Errorf("blits after two cached renders = %d, want 1", n)
	}

	r.Invalidate()
	r.Render()
	if n := totalBlits(bg, fg, ov); n != 2 {
		t.Errorf("blits after invalidate = %d, want 2", n)
	}
}

func TestDraw_RowMajorOrder(t *testing.T) {
	m := newTestMap(t, 3, 2)
	for index := 0; index < m.Len(); index++ {
		m.SetTile(index, 1, false, false, false)
	}
	r, bg, _, _ := newTestRenderer(t, m, 1)

	r.Render()
	if len(bg.blits) != 6 {
		t.Fatalf("blits = %d, want 6", len(bg.blits))
	}
	var lastY, lastX float64 = -1, -1
	for i, b := range bg.blits {
		if b.dy < lastY || (b.dy == lastY && b.dx <= lastX) {
			t.Fatalf("blit %d at (%g,%g) out of row-major order", i, b.dx, b.dy)
		}
		if b.dy > lastY {
			lastX = -1
		}
		lastY, lastX = b.dy, b.dx
	}
}

func TestDrawEntity_StampsForeground(t *testing.T) {
	m := newTestMap(t, 4, 4)
	r, _, fg, _ := newTestRenderer(t, m, 1)

	r.DrawEntity(3, 5)

	dx, dy := r.cam.Offset()
	want := []string{"save", fmt.Sprintf("translate(%g,%g)", dx, dy), "draw", "restore"}
	if !slices.Equal(fg.calls, want) {
		t.Errorf("foreground calls = %v, want %v", fg.calls, want)
	}
}

func TestResize_ResizesEverySurface(t *testing.T) {
	m := newTestMap(t, 4, 4)
	r, bg, fg, ov := newTestRenderer(t, m, 1)

	r.Resize(800, 600)
	for name, ctx := range map[string]*recordingContext{"background": bg, "foreground": fg, "overlay": ov} {
		if !slices.Contains(ctx.calls, "resize(800,600)") {
			t.Errorf("%s not resized: %v", name, ctx.calls)
		}
	}
}

// waterDef is a 3-frame animation for tests.
var waterDef = tilemap.AnimationDef{Length: 3, Row: 1, Width: testTileSize, Height: testTileSize, Speed: 100}
