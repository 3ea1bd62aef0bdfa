package canvas

import (
	"time"

	"thornvale/pkg/engine/camera"
	"thornvale/pkg/engine/tilemap"
	"thornvale/pkg/game/renderer"
)

// Renderer orchestrates one full frame: it clears and positions the drawing
// surfaces, walks the camera's visible tile window in row-major order, and
// routes each tile to the correct surface, delegating animated tiles to
// their per-id playback state. It exclusively owns the two geometry caches
// and the animated-tile collection; everything is mutated on the single
// frame-driven goroutine, so no locking is needed.
type Renderer struct {
	m   *tilemap.Map
	cam *camera.Camera

	background Context
	foreground Context
	overlay    Context

	tileGeometry  map[int]*TileGeometry
	cellGeometry  map[int]*CellGeometry
	animatedTiles map[string]*AnimatedTile

	// animate gates the animated-tile draw path globally.
	animate bool

	// lighting reports whether the overlay surface is active; light tiles
	// redirect there while it is.
	lighting bool

	// suppressed makes Render a no-op (e.g. while the client is hidden).
	suppressed bool

	// Frame cache: when enabled, draw short-circuits while the last frame
	// is still valid. External code invalidates on any visible change.
	frameCaching bool
	frameValid   bool

	// Frame timing bookkeeping, advanced once per Render.
	frameCount    int
	framesThisSec int
	lastFPSStamp  int64
	fps           float64

	// now is the game clock in milliseconds.
	now func() int64
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a renderer over a map and camera, drawing onto the given
// surfaces. Tile animation starts enabled; lighting and frame caching start
// disabled.
func New(m *tilemap.Map, cam *camera.Camera, background, foreground, overlay Context) *Renderer {
	return &Renderer{
		m:             m,
		cam:           cam,
		background:    background,
		foreground:    foreground,
		overlay:       overlay,
		tileGeometry:  make(map[int]*TileGeometry),
		cellGeometry:  make(map[int]*CellGeometry),
		animatedTiles: make(map[string]*AnimatedTile),
		animate:       true,
		now:           func() int64 { return time.Now().UnixMilli() },
	}
}

// SetClock replaces the game clock used for animated-tile stamps and frame
// timing.
func (r *Renderer) SetClock(now func() int64) {
	if now != nil {
		r.now = now
	}
}

// SetTileAnimation toggles the animated-tile draw path globally.
func (r *Renderer) SetTileAnimation(on bool) {
	r.animate = on
}

// TileAnimation reports whether animated tiles are enabled.
func (r *Renderer) TileAnimation() bool {
	return r.animate
}

// SetLighting toggles the lighting overlay. While active, light tiles draw
// to the overlay surface instead of their layer surface.
func (r *Renderer) SetLighting(on bool) {
	r.lighting = on
}

// Lighting reports whether the lighting overlay is active.
func (r *Renderer) Lighting() bool {
	return r.lighting
}

// SetSuppressed stops or resumes rendering wholesale.
func (r *Renderer) SetSuppressed(on bool) {
	r.suppressed = on
}

// SetFrameCaching toggles the frame cache. With caching on, a frame is
// drawn once and then skipped until Invalidate is called.
func (r *Renderer) SetFrameCaching(on bool) {
	r.frameCaching = on
	if !on {
		r.frameValid = false
	}
}

// Invalidate marks the cached frame stale so the next Render redraws.
func (r *Renderer) Invalidate() {
	r.frameValid = false
}

// FPS returns the frame rate measured over the last whole second.
func (r *Renderer) FPS() float64 {
	return r.fps
}

// Background returns the background surface.
func (r *Renderer) Background() Context {
	return r.background
}

// Foreground returns the foreground surface.
func (r *Renderer) Foreground() Context {
	return r.foreground
}

// Overlay returns the overlay surface.
func (r *Renderer) Overlay() Context {
	return r.overlay
}

// Render draws one display frame. Called once per display tick by the game
// loop; a no-op while rendering is suppressed.
func (r *Renderer) Render() {
	if r.suppressed {
		return
	}
	r.tick()
	r.draw()
}

// tick advances the shared frame-timing state.
func (r *Renderer) tick() {
	r.frameCount++
	r.framesThisSec++
	now := r.now()
	if now-r.lastFPSStamp >= 1000 {
		if r.lastFPSStamp != 0 {
			r.fps = float64(r.framesThisSec) * 1000 / float64(now-r.lastFPSStamp)
		}
		r.lastFPSStamp = now
		r.framesThisSec = 0
	}
}

// draw renders every visible tile onto the layered surfaces.
func (r *Renderer) draw() {
	if r.frameCaching && r.frameValid {
		return
	}

	r.background.Clear()
	r.foreground.Clear()

	surfaces := [...]Context{r.background, r.foreground, r.overlay}
	for _, ctx := range surfaces {
		ctx.Save()
	}

	r.background.Fill(colorClear)

	dx, dy := r.cam.Offset()
	for _, ctx := range surfaces {
		ctx.Translate(dx, dy)
	}

	r.cam.ForEachVisiblePosition(r.m.Width(), r.m.Height(), func(index int) {
		t, ok := r.m.TileAt(index)
		if !ok {
			return
		}
		flips := GetFlipped(t)
		if r.animate && r.m.IsAnimatedTile(t.ID) {
			r.drawAnimatedTile(t.ID, index, flips)
			return
		}
		r.drawTile(r.surfaceFor(t.ID), t.ID, index, flips)
	})

	if r.frameCaching {
		r.frameValid = true
	}

	for _, ctx := range surfaces {
		ctx.Restore()
	}
}

// Resize must be called when the viewport size changes: it resizes every
// surface and clears the cell-geometry cache, whose entries are scaled in
// device pixels.
func (r *Renderer) Resize(width, height int) {
	r.background.Resize(width, height)
	r.foreground.Resize(width, height)
	r.overlay.Resize(width, height)
	clear(r.cellGeometry)
	r.frameValid = false
}

// DrawEntity stamps a sprite onto the foreground surface at a map position,
// through the camera transform. The game loop draws entities with this
// after Render.
func (r *Renderer) DrawEntity(tileID, index int) {
	r.foreground.Save()
	r.foreground.Translate(r.cam.Offset())
	r.drawTile(r.foreground, tileID, index, nil)
	r.foreground.Restore()
}

// ForEachAnimatedTile calls fn for every registered animated tile. The game
// loop uses this to step frames between renders.
func (r *Renderer) ForEachAnimatedTile(fn func(t *AnimatedTile)) {
	for _, t := range r.animatedTiles {
		fn(t)
	}
}
