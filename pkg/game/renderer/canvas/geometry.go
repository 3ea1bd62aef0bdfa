package canvas

import (
	"math"

	"thornvale/pkg/engine/tilemap"
)

// TileGeometry locates one tile id's pixels within its tileset image.
// Computed once per tile id; the tileset never changes at runtime, so
// entries are never invalidated.
type TileGeometry struct {
	RelativeID int
	SetWidth   int // tileset width in tiles
	SourceX    int
	SourceY    int
	Width      int
	Height     int
}

// CellGeometry locates one map position's pixels on the destination
// surface, in device pixels at the camera's current zoom. Entries are
// cleared wholesale on resize.
type CellGeometry struct {
	DestX  float64
	DestY  float64
	Width  float64
	Height float64
}

// tileGeometryFor returns the cached geometry for a tile id, computing it
// on first encounter.
func (r *Renderer) tileGeometryFor(tileID int, ts *tilemap.Tileset) *TileGeometry {
	if g, ok := r.tileGeometry[tileID]; ok {
		return g
	}
	g := computeTileGeometry(tileID, ts, r.m.TileSize())
	r.tileGeometry[tileID] = g
	return g
}

func computeTileGeometry(tileID int, ts *tilemap.Tileset, tileSize int) *TileGeometry {
	rel := tileID - ts.FirstID
	setWidth := ts.Columns(tileSize)
	return &TileGeometry{
		RelativeID: rel,
		SetWidth:   setWidth,
		SourceX:    (rel % setWidth) * tileSize,
		SourceY:    (rel / setWidth) * tileSize,
		Width:      tileSize,
		Height:     tileSize,
	}
}

// cellGeometryFor returns the cached geometry for a map index. A cached
// entry is reused only when no flips apply: flips mutate the destination
// math during drawing, so flipped positions recompute every call.
func (r *Renderer) cellGeometryFor(index int, flips []Transform) *CellGeometry {
	if g, ok := r.cellGeometry[index]; ok && len(flips) == 0 {
		return g
	}
	g := computeCellGeometry(index, r.m.Width(), r.cam.ActualTileSize())
	r.cellGeometry[index] = g
	return g
}

func computeCellGeometry(index, mapWidth int, actualTileSize float64) *CellGeometry {
	return &CellGeometry{
		DestX:  math.Ceil(float64(index%mapWidth) * actualTileSize),
		DestY:  math.Ceil(float64(index/mapWidth) * actualTileSize),
		Width:  math.Ceil(actualTileSize),
		Height: math.Ceil(actualTileSize),
	}
}
