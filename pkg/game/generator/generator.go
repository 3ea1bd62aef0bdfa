// Package generator builds the demo world: a synthetic tileset image and a
// map exercising every renderer draw path (plain, flipped, shared-animated,
// dynamically-animated, high and light tiles).
package generator

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"thornvale/pkg/engine/tilemap"
)

// TileSize is the demo's configured tile size in pixels.
const TileSize = 16

// Demo tile ids within the generated tileset.
const (
	TileGrass  = 0
	TileDirt   = 1
	TileStone  = 2
	TileWater  = 8 // animated, frames 8..10
	TileTree   = 17
	TileRock   = 18
	TileLamp   = 20 // light tile
	TileDoor   = 24 // dynamically animated, frames 24..26
	TileSprite = 32 // first entity sprite
)

// Generator produces demo maps of a fixed size.
type Generator struct {
	Width  int
	Height int
}

// DefaultGenerator builds maps sized for the demo window.
var DefaultGenerator = Generator{Width: 60, Height: 40}

// BuildTileset generates a synthetic tileset image: an 8-column grid of
// flat-colored tiles with a white marker block in the top-left corner so
// flip transforms are visually obvious.
func BuildTileset(count int) *tilemap.Tileset {
	const cols = 8
	rows := (count + cols - 1) / cols
	img := ebiten.NewImage(cols*TileSize, rows*TileSize)

	for i := 0; i < count; i++ {
		x := float32((i % cols) * TileSize)
		y := float32((i / cols) * TileSize)
		c := color.RGBA{
			R: uint8(40 + (i*53)%180),
			G: uint8(60 + (i*97)%160),
			B: uint8(50 + (i*31)%190),
			A: 255,
		}
		vector.DrawFilledRect(img, x, y, TileSize, TileSize, c, false)
		vector.DrawFilledRect(img, x, y, 4, 4, color.RGBA{255, 255, 255, 255}, false)
	}

	return &tilemap.Tileset{
		Image:   img,
		Width:   cols * TileSize,
		FirstID: 0,
		Count:   count,
	}
}

// Generate assembles the demo map from a seed.
func (gen Generator) Generate(seed int64) (*tilemap.Map, error) {
	m, err := tilemap.New(gen.Width, gen.Height, TileSize)
	if err != nil {
		return nil, err
	}
	m.AddTileset(BuildTileset(64))

	m.MarkHigh(TileTree)
	m.MarkLight(TileLamp)
	m.SetAnimation(TileWater, tilemap.AnimationDef{
		Length: 3, Row: 1, Width: TileSize, Height: TileSize, Speed: 250,
	})
	m.SetAnimation(TileDoor, tilemap.AnimationDef{
		Length: 3, Row: 3, Width: TileSize, Height: TileSize, Speed: 400,
	})

	rng := rand.New(rand.NewSource(seed))
	for index := 0; index < m.Len(); index++ {
		switch roll := rng.Intn(100); {
		case roll < 6:
			m.SetTile(index, TileWater, false, false, false)
		case roll < 10:
			m.SetTile(index, TileTree, false, false, false)
		case roll < 12:
			// Flipped rocks exercise the transform paths.
			m.SetTile(index, TileRock, rng.Intn(2) == 0, rng.Intn(2) == 0, rng.Intn(4) == 0)
		case roll < 13:
			m.SetTile(index, TileLamp, false, false, false)
		case roll < 40:
			m.SetTile(index, TileDirt, false, false, false)
		case roll < 45:
			m.SetTile(index, TileStone, false, false, false)
		default:
			m.SetTile(index, TileGrass, false, false, false)
		}
	}

	// A couple of doors that animate independently of each other.
	for _, index := range []int{gen.Width*3 + 5, gen.Width*7 + 12} {
		m.SetTile(index, TileDoor, false, false, false)
		m.MarkDynamicAnimated(index)
	}

	return m, nil
}
