// Package renderer defines the surface the game loop drives each display
// tick. Concrete backends live in subpackages; the layered tile rasterizer
// is renderer/canvas.
package renderer

// Renderer is implemented by rendering backends.
type Renderer interface {
	// Render draws one frame. Safe to call every display tick; backends
	// may skip work when nothing changed.
	Render()

	// Resize must be called when the viewport size changes. Backends
	// invalidate any size-dependent cached state.
	Resize(width, height int)

	// Invalidate marks any cached frame stale so the next Render redraws.
	Invalidate()
}
