package canvas

import (
	"fmt"

	"thornvale/pkg/engine/tilemap"
)

// AnimatedTile tracks the playback state of one independently-animating
// tile id, or of one tile id at one specific map index when the map flags
// that index as dynamically animated (door-like tiles).
type AnimatedTile struct {
	startID int
	id      int // current frame id, startID..startID+length-1
	index   int
	length  int
	speed   int64 // milliseconds per frame

	flipped bool
	high    bool

	lastTime     int64 // last frame step, game clock ms
	lastAccessed int64 // last draw access, game clock ms
}

// newAnimatedTile creates an animated tile at frame zero.
func newAnimatedTile(tileID, index int, def tilemap.AnimationDef, flipped, high bool) *AnimatedTile {
	return &AnimatedTile{
		startID: tileID,
		id:      tileID,
		index:   index,
		length:  def.Length,
		speed:   def.Speed,
		flipped: flipped,
		high:    high,
	}
}

// FrameID returns the current frame's tile id.
func (t *AnimatedTile) FrameID() int {
	return t.id
}

// Index returns the map index this tile was first encountered at.
func (t *AnimatedTile) Index() int {
	return t.index
}

// Flipped reports whether the tile was flipped at creation.
func (t *AnimatedTile) Flipped() bool {
	return t.flipped
}

// LastAccessed returns the game-clock stamp of the last draw access,
// for use by an external eviction pass.
func (t *AnimatedTile) LastAccessed() int64 {
	return t.lastAccessed
}

// Reset rewinds the animation to frame zero.
func (t *AnimatedTile) Reset() {
	t.id = t.startID
}

// Tick advances one frame when the per-frame interval has elapsed,
// wrapping back to frame zero at the end. It reports whether the frame
// changed.
func (t *AnimatedTile) Tick(now int64) bool {
	if t.speed <= 0 || now-t.lastTime < t.speed {
		return false
	}
	t.lastTime = now
	if t.id-t.startID < t.length-1 {
		t.id++
	} else {
		t.id = t.startID
	}
	return true
}

// animatedTileKey builds the identity key for an animated tile: tile id
// alone for shared animations, tile id plus position for dynamically
// animated indices.
func animatedTileKey(tileID, index int, dynamic bool) string {
	if dynamic {
		return fmt.Sprintf("%d-%d", tileID, index)
	}
	return fmt.Sprintf("%d", tileID)
}
