package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context is one drawing surface with a saveable transform, mirroring the
// immediate-mode model the renderer draws through: transforms accumulate on
// the context and apply to every subsequent draw until restored.
type Context interface {
	// Clear erases the surface to transparent.
	Clear()

	// Fill floods the surface with a solid color.
	Fill(c color.Color)

	// Save pushes the current transform; Restore pops back to it.
	// Restore with no saved transform is a no-op.
	Save()
	Restore()

	// Translate, Scale and Rotate compose onto the current transform.
	// The new operation applies before anything already on the context,
	// matching 2D-canvas transform semantics.
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(theta float64)

	// DrawImage blits the source rectangle (sx, sy, sw, sh) of src to the
	// destination rectangle (dx, dy, dw, dh) through the current transform.
	DrawImage(src *ebiten.Image, sx, sy, sw, sh int, dx, dy, dw, dh float64)

	// Resize replaces the backing surface with one of the given pixel size.
	Resize(width, height int)
}

// Layer is the Ebiten-backed Context: an offscreen image plus an explicit
// GeoM stack standing in for the 2D-canvas transform matrix.
type Layer struct {
	image *ebiten.Image
	geom  ebiten.GeoM
	stack []ebiten.GeoM
}

// NewLayer creates a drawing surface of the given pixel size.
func NewLayer(width, height int) *Layer {
	return &Layer{
		image: ebiten.NewImage(width, height),
	}
}

// Image exposes the backing image for compositing onto the screen.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// Clear erases the layer to transparent.
func (l *Layer) Clear() {
	l.image.Clear()
}

// Fill floods the layer with a solid color.
func (l *Layer) Fill(c color.Color) {
	l.image.Fill(c)
}

// Save pushes the current transform onto the stack.
func (l *Layer) Save() {
	l.stack = append(l.stack, l.geom)
}

// Restore pops the most recently saved transform. With an empty stack it
// does nothing, like its 2D-canvas counterpart.
func (l *Layer) Restore() {
	if n := len(l.stack); n > 0 {
		l.geom = l.stack[n-1]
		l.stack = l.stack[:n-1]
	}
}

// Translate composes a translation onto the current transform.
func (l *Layer) Translate(x, y float64) {
	var g ebiten.GeoM
	g.Translate(x, y)
	l.compose(g)
}

// Scale composes a scale onto the current transform.
func (l *Layer) Scale(x, y float64) {
	var g ebiten.GeoM
	g.Scale(x, y)
	l.compose(g)
}

// Rotate composes a rotation (radians) onto the current transform.
func (l *Layer) Rotate(theta float64) {
	var g ebiten.GeoM
	g.Rotate(theta)
	l.compose(g)
}

// compose makes g apply before the existing transform, so the most recently
// added operation acts on coordinates first.
func (l *Layer) compose(g ebiten.GeoM) {
	g.Concat(l.geom)
	l.geom = g
}

// DrawImage blits a source rectangle of src to a destination rectangle
// through the current transform.
func (l *Layer) DrawImage(src *ebiten.Image, sx, sy, sw, sh int, dx, dy, dw, dh float64) {
	if src == nil || sw <= 0 || sh <= 0 {
		return
	}
	sub := src.SubImage(image.Rect(sx, sy, sx+sw, sy+sh)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(sw), dh/float64(sh))
	op.GeoM.Translate(dx, dy)
	op.GeoM.Concat(l.geom)
	l.image.DrawImage(sub, op)
}

// Resize replaces the backing image. Any saved transforms are dropped.
func (l *Layer) Resize(width, height int) {
	if l.image != nil {
		l.image.Deallocate()
	}
	l.image = ebiten.NewImage(width, height)
	l.geom = ebiten.GeoM{}
	l.stack = l.stack[:0]
}
