// Package camera tracks the visible tile window and the zoom-dependent
// transform the renderer applies to its drawing surfaces.
package camera

import "math"

// Camera is the viewport over the tile grid. GridX/GridY are the top-left
// visible tile; Cols/Rows is the viewport size in tiles.
type Camera struct {
	gridX, gridY int
	cols, rows   int

	tileSize int
	scale    float64
}

// New creates a camera with the given viewport size in tiles. scale is the
// zoom factor; the on-screen tile size is tileSize*scale device pixels.
func New(tileSize, cols, rows int, scale float64) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		scale:    scale,
	}
}

// TileSize returns the configured (unzoomed) tile size in pixels.
func (c *Camera) TileSize() int {
	return c.tileSize
}

// ActualTileSize returns the on-screen tile size in device pixels at the
// current zoom.
func (c *Camera) ActualTileSize() float64 {
	return float64(c.tileSize) * c.scale
}

// Scale returns the current zoom factor.
func (c *Camera) Scale() float64 {
	return c.scale
}

// SetScale changes the zoom factor. Values at or below zero are ignored.
func (c *Camera) SetScale(scale float64) {
	if scale > 0 {
		c.scale = scale
	}
}

// Cols returns the viewport width in tiles.
func (c *Camera) Cols() int {
	return c.cols
}

// Rows returns the viewport height in tiles.
func (c *Camera) Rows() int {
	return c.rows
}

// GridX returns the leftmost visible tile column.
func (c *Camera) GridX() int {
	return c.gridX
}

// GridY returns the topmost visible tile row.
func (c *Camera) GridY() int {
	return c.gridY
}

// LookAt moves the viewport so its top-left tile is (col, row).
func (c *Camera) LookAt(col, row int) {
	c.gridX = col
	c.gridY = row
}

// Resize changes the viewport size in tiles.
func (c *Camera) Resize(cols, rows int) {
	c.cols = cols
	c.rows = rows
}

// Offset returns the translation, in device pixels, that positions a drawing
// surface so the camera's top-left tile lands at the surface origin.
func (c *Camera) Offset() (x, y float64) {
	size := c.ActualTileSize()
	return math.Floor(-float64(c.gridX) * size), math.Floor(-float64(c.gridY) * size)
}

// ForEachVisiblePosition calls fn for every map index inside the viewport,
// in row-major order, clipped to the map bounds.
func (c *Camera) ForEachVisiblePosition(mapWidth, mapHeight int, fn func(index int)) {
	if mapWidth <= 0 || mapHeight <= 0 {
		return
	}
	top := max(c.gridY, 0)
	left := max(c.gridX, 0)
	bottom := min(c.gridY+c.rows, mapHeight)
	right := min(c.gridX+c.cols, mapWidth)
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			fn(row*mapWidth + col)
		}
	}
}
