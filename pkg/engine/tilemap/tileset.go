package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset describes one source image holding a grid of tile sprites.
// FirstID is the zero-based id of its first tile; ids FirstID..FirstID+Count-1
// resolve to this set.
type Tileset struct {
	Image   *ebiten.Image
	Width   int // image width in pixels
	FirstID int
	Count   int
}

// Columns returns the tileset width in tiles for the given tile size.
func (ts *Tileset) Columns(tileSize int) int {
	if tileSize <= 0 {
		return 0
	}
	return ts.Width / tileSize
}
