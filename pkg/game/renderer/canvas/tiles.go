package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// surfaceRule picks a drawing surface for a tile id. Rules are evaluated
// top to bottom and the first match wins, which keeps the precedence
// (overlay overrides layer choice) auditable.
type surfaceRule struct {
	match func(r *Renderer, tileID int) bool
	pick  func(r *Renderer) Context
}

var surfaceRules = []surfaceRule{
	// Light tiles redirect to the overlay while lighting is active,
	// regardless of their high/low classification.
	{
		match: func(r *Renderer, tileID int) bool { return r.lighting && r.m.IsLightTile(tileID) },
		pick:  func(r *Renderer) Context { return r.overlay },
	},
	// High tiles draw above entities.
	{
		match: func(r *Renderer, tileID int) bool { return r.m.IsHighTile(tileID) },
		pick:  func(r *Renderer) Context { return r.foreground },
	},
	// Everything else is background.
	{
		match: func(r *Renderer, tileID int) bool { return true },
		pick:  func(r *Renderer) Context { return r.background },
	},
}

// surfaceFor classifies a tile id's destination surface.
func (r *Renderer) surfaceFor(tileID int) Context {
	for _, rule := range surfaceRules {
		if rule.match(r, tileID) {
			return rule.pick(r)
		}
	}
	return r.background
}

// drawAnimatedTile draws a tile through its animated-tile state, creating
// that state lazily on first encounter.
func (r *Renderer) drawAnimatedTile(tileID, index int, flips []Transform) {
	if !r.animate {
		return
	}

	key := animatedTileKey(tileID, index, r.m.IsDynamicAnimated(index))
	t, ok := r.animatedTiles[key]
	if !ok {
		t = r.addAnimatedTile(key, tileID, index, flips)
	}
	if t == nil {
		// No animation definition for this id; malformed map data.
		return
	}

	t.lastAccessed = r.now()

	// A flipped and an unflipped placement can share a tile id. The flipped
	// placement's own calls carry its flips; a flip-less call for that same
	// position is the base id showing up a second time in one frame, so skip
	// it. Calls for other positions are distinct placements and still draw.
	if len(flips) == 0 && t.flipped && t.index == index {
		return
	}

	ctx := r.background
	if t.high {
		ctx = r.foreground
	}

	// Animation frames are 1-indexed relative to storage.
	r.drawTile(ctx, t.FrameID()+1, index, flips)
}

// addAnimatedTile registers a new animated tile and rewinds every existing
// one to frame zero, keeping multi-tile animations phase-synchronized.
// Returns nil when the map has no animation definition for the id.
func (r *Renderer) addAnimatedTile(key string, tileID, index int, flips []Transform) *AnimatedTile {
	def, ok := r.m.TileAnimation(tileID)
	if !ok {
		return nil
	}
	for _, t := range r.animatedTiles {
		t.Reset()
	}
	t := newAnimatedTile(tileID, index, def, len(flips) > 0, r.m.IsHighTile(tileID))
	r.animatedTiles[key] = t
	return t
}

// drawTile draws one tile id at one map position onto the given surface.
// Negative ids are the empty sentinel; ids without a resolvable tileset are
// skipped as malformed map data. Neither is an error: worst case is a
// missing tile, never a failed frame.
func (r *Renderer) drawTile(ctx Context, tileID, index int, flips []Transform) {
	if tileID < 0 {
		return
	}
	ts := r.m.GetTilesetFromID(tileID)
	if ts == nil {
		return
	}

	tg := r.tileGeometryFor(tileID, ts)
	cg := r.cellGeometryFor(index, flips)

	r.drawImage(ctx, ts.Image, tg, cg, flips)
}

// drawImage blits one tile's source rectangle to its destination rectangle,
// applying the flip transforms in order. With flips present the surface
// transform is saved, adjusted per transform, and restored after the blit.
func (r *Renderer) drawImage(ctx Context, img *ebiten.Image, tg *TileGeometry, cg *CellGeometry, flips []Transform) {
	dx, dy := cg.DestX, cg.DestY
	dw, dh := cg.Width, cg.Height

	if len(flips) == 0 {
		ctx.DrawImage(img, tg.SourceX, tg.SourceY, tg.Width, tg.Height, dx, dy, dw, dh)
		return
	}

	ctx.Save()
	for _, f := range expandFlips(flips) {
		switch f {
		case Horizontal:
			// Mirror the x-axis around the cell.
			dx = -dx - dw
			ctx.Scale(-1, 1)
		case Vertical:
			// Mirror the y-axis around the cell.
			dy = -dy - dh
			ctx.Scale(1, -1)
		case Diagonal:
			// Transpose: rotate 90 degrees and swap the destination axes.
			// expandFlips has already appended the compensating axis flip.
			ctx.Rotate(math.Pi / 2)
			ctx.Translate(0, -dh)
			dx, dy = dy, dx
		}
	}
	ctx.DrawImage(img, tg.SourceX, tg.SourceY, tg.Width, tg.Height, dx, dy, dw, dh)
	ctx.Restore()
}
