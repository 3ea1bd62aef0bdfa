// Package tilemap holds the client-side map data the renderer consumes:
// raw tile layers, tileset membership, per-tile flags and animation
// definitions. Tile entries use the Tiled GID convention, with the three
// flip bits packed into the high bits of each raw value.
package tilemap

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Flip bits carried in the high bits of a raw tile value.
const (
	FlipHorizontal uint32 = 0x80000000
	FlipVertical   uint32 = 0x40000000
	FlipDiagonal   uint32 = 0x20000000

	flipBits = FlipHorizontal | FlipVertical | FlipDiagonal
)

// Tile is one resolved map entry: an appearance id plus per-axis flip flags.
// ID is zero-based; a negative ID means "no tile here".
type Tile struct {
	ID      int
	H, V, D bool
}

// Flipped reports whether any flip applies to this tile.
func (t Tile) Flipped() bool {
	return t.H || t.V || t.D
}

// AnimationDef describes an animated tile: how many frames it has, which
// tileset row the frames live on, and the per-frame dimensions. Speed is
// milliseconds per frame.
type AnimationDef struct {
	Length int
	Row    int
	Width  int
	Height int
	Speed  int64
}

// Map is the renderer's read-only view of the world grid.
type Map struct {
	width    int
	height   int
	tileSize int

	// Raw tile values in row-major order, flip bits included. Zero means empty.
	data []uint32

	tilesets []*Tileset

	highTiles  mapset.Set[int]
	lightTiles mapset.Set[int]
	animations map[int]AnimationDef

	// Map indices that host uniquely-animating tiles (door-like tiles whose
	// animation state is per-position rather than per-id).
	dynamicAnimated mapset.Set[int]
}

// New creates an empty map of width x height tiles, with square tiles of
// tileSize pixels.
func New(width, height, tileSize int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tilemap: invalid dimensions %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile size %d", tileSize)
	}
	return &Map{
		width:           width,
		height:          height,
		tileSize:        tileSize,
		data:            make([]uint32, width*height),
		highTiles:       mapset.New[int](),
		lightTiles:      mapset.New[int](),
		animations:      make(map[int]AnimationDef),
		dynamicAnimated: mapset.New[int](),
	}, nil
}

// Width returns the map width in tiles.
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *Map) Height() int {
	return m.height
}

// TileSize returns the configured (unzoomed) tile size in pixels.
func (m *Map) TileSize() int {
	return m.tileSize
}

// Len returns the number of cells in the flattened grid.
func (m *Map) Len() int {
	return len(m.data)
}

// SetTile stores a tile at the given map index. id is the zero-based
// appearance id; the flip flags are packed into the raw value.
func (m *Map) SetTile(index, id int, h, v, d bool) {
	if index < 0 || index >= len(m.data) || id < 0 {
		return
	}
	raw := uint32(id + 1)
	if h {
		raw |= FlipHorizontal
	}
	if v {
		raw |= FlipVertical
	}
	if d {
		raw |= FlipDiagonal
	}
	m.data[index] = raw
}

// ClearTile removes any tile at the given map index.
func (m *Map) ClearTile(index int) {
	if index >= 0 && index < len(m.data) {
		m.data[index] = 0
	}
}

// TileAt resolves the tile record at a map index. ok is false for empty
// cells and out-of-range indices.
func (m *Map) TileAt(index int) (Tile, bool) {
	if index < 0 || index >= len(m.data) {
		return Tile{ID: -1}, false
	}
	raw := m.data[index]
	if raw&^flipBits == 0 {
		return Tile{ID: -1}, false
	}
	return Tile{
		ID: int(raw&^flipBits) - 1,
		H:  raw&FlipHorizontal != 0,
		V:  raw&FlipVertical != 0,
		D:  raw&FlipDiagonal != 0,
	}, true
}

// AddTileset registers a tileset. Tilesets must be added in ascending
// FirstID order.
func (m *Map) AddTileset(ts *Tileset) {
	m.tilesets = append(m.tilesets, ts)
}

// GetTilesetFromID returns the tileset owning the given tile id, or nil if
// no registered tileset covers it.
func (m *Map) GetTilesetFromID(id int) *Tileset {
	for _, ts := range m.tilesets {
		if id >= ts.FirstID && id < ts.FirstID+ts.Count {
			return ts
		}
	}
	return nil
}

// MarkHigh flags tile ids as foreground ("high") tiles.
func (m *Map) MarkHigh(ids ...int) {
	for _, id := range ids {
		m.highTiles.Put(id)
	}
}

// MarkLight flags tile ids as light tiles, drawn to the overlay surface
// while lighting is active.
func (m *Map) MarkLight(ids ...int) {
	for _, id := range ids {
		m.lightTiles.Put(id)
	}
}

// SetAnimation attaches an animation definition to a tile id.
func (m *Map) SetAnimation(id int, def AnimationDef) {
	m.animations[id] = def
}

// MarkDynamicAnimated flags a map index as hosting a uniquely-animating
// tile (its animation state is independent of other tiles with the same id).
func (m *Map) MarkDynamicAnimated(index int) {
	m.dynamicAnimated.Put(index)
}

// IsHighTile reports whether a tile id belongs to the foreground layer.
func (m *Map) IsHighTile(id int) bool {
	return m.highTiles.Has(id)
}

// IsLightTile reports whether a tile id is a light tile.
func (m *Map) IsLightTile(id int) bool {
	return m.lightTiles.Has(id)
}

// IsAnimatedTile reports whether a tile id has an animation definition.
func (m *Map) IsAnimatedTile(id int) bool {
	_, ok := m.animations[id]
	return ok
}

// TileAnimation returns the animation definition for a tile id.
func (m *Map) TileAnimation(id int) (AnimationDef, bool) {
	def, ok := m.animations[id]
	return def, ok
}

// IsDynamicAnimated reports whether the given map index hosts a
// uniquely-animating tile.
func (m *Map) IsDynamicAnimated(index int) bool {
	return m.dynamicAnimated.Has(index)
}
