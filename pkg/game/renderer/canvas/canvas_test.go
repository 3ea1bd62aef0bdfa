// Package canvas tests the layered tile rasterizer through a recording
// surface fake: geometry memoization, flip-transform expansion, animated
// tile lifecycle, surface routing and the frame cache.
package canvas

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"thornvale/pkg/engine/camera"
	"thornvale/pkg/engine/tilemap"
)

const testTileSize = 16

// blit records one DrawImage call.
type blit struct {
	sx, sy, sw, sh int
	dx, dy, dw, dh float64
}

// recordingContext is a Context fake that records every call in order.
type recordingContext struct {
	calls []string
	blits []blit
}

func (c *recordingContext) Clear() {
	c.calls = append(c.calls, "clear")
}

func (c *recordingContext) Fill(color.Color) {
	c.calls = append(c.calls, "fill")
}

func (c *recordingContext) Save() {
	c.calls = append(c.calls, "save")
}

func (c *recordingContext) Restore() {
	c.calls = append(c.calls, "restore")
}

func (c *recordingContext) Translate(x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("translate(%g,%g)", x, y))
}

func (c *recordingContext) Scale(x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("scale(%g,%g)", x, y))
}

func (c *recordingContext) Rotate(theta float64) {
	c.calls = append(c.calls, fmt.Sprintf("rotate(%.4f)", theta))
}

func (c *recordingContext) DrawImage(src *ebiten.Image, sx, sy, sw, sh int, dx, dy, dw, dh float64) {
	c.calls = append(c.calls, "draw")
	c.blits = append(c.blits, blit{sx, sy, sw, sh, dx, dy, dw, dh})
}

func (c *recordingContext) Resize(width, height int) {
	c.calls = append(c.calls, fmt.Sprintf("resize(%d,%d)", width, height))
}

// newTestMap builds a width x height map with one tileset of 100 ids laid
// out 10 tiles wide. The tileset image is nil; the fake never touches it.
func newTestMap(t *testing.T, width, height int) *tilemap.Map {
	t.Helper()
	m, err := tilemap.New(width, height, testTileSize)
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	m.AddTileset(&tilemap.Tileset{
		Width:   10 * testTileSize,
		FirstID: 0,
		Count:   100,
	})
	return m
}

// newTestRenderer wires a renderer over recording surfaces with the camera
// covering the whole map at the given zoom.
func newTestRenderer(t *testing.T, m *tilemap.Map, zoom float64) (*Renderer, *recordingContext, *recordingContext, *recordingContext) {
	t.Helper()
	cam := camera.New(testTileSize, m.Width(), m.Height(), zoom)
	bg := &recordingContext{}
	fg := &recordingContext{}
	ov := &recordingContext{}
	r := New(m, cam, bg, fg, ov)
	return r, bg, fg, ov
}

func totalBlits(contexts ...*recordingContext) int {
	n := 0
	for _, c := range contexts {
		n += len(c.blits)
	}
	return n
}
