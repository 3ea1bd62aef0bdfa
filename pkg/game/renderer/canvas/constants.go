// Package canvas implements the layered tile rasterizer: a camera-driven
// renderer drawing the scrolling tile map onto background, foreground and
// overlay surfaces every display frame, with geometry memoization and
// animated-tile state kept across frames.
package canvas

import "image/color"

// Surface colors
var (
	// colorClear fills the background surface before tiles are drawn,
	// showing through wherever the map has no tile.
	colorClear = color.RGBA{18, 18, 32, 255} // Dark blue-gray
)
