package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/goregular"

	"thornvale/pkg/engine/camera"
	"thornvale/pkg/engine/input"
	"thornvale/pkg/game/devtools"
	"thornvale/pkg/game/entities"
	"thornvale/pkg/game/generator"
	"thornvale/pkg/game/renderer/canvas"
	"thornvale/pkg/game/state"
)

func initGettext() {
	gotext.Configure("locales", "en_GB", "default")
}

// client is the Ebiten game driving the renderer.
type client struct {
	g        *state.Game
	r        *canvas.Renderer
	bg       *canvas.Layer
	fg       *canvas.Layer
	ov       *canvas.Layer
	hudFace  *text.GoTextFace
	width    int
	height   int
	shotNext bool
}

func (c *client) Update() error {
	for _, intent := range input.Poll() {
		switch intent.Action {
		case input.ActionScrollNorth:
			c.g.Camera.LookAt(c.g.Camera.GridX(), c.g.Camera.GridY()-1)
		case input.ActionScrollSouth:
			c.g.Camera.LookAt(c.g.Camera.GridX(), c.g.Camera.GridY()+1)
		case input.ActionScrollWest:
			c.g.Camera.LookAt(c.g.Camera.GridX()-1, c.g.Camera.GridY())
		case input.ActionScrollEast:
			c.g.Camera.LookAt(c.g.Camera.GridX()+1, c.g.Camera.GridY())
		case input.ActionZoomIn:
			c.setZoom(c.g.Camera.Scale() * 1.25)
		case input.ActionZoomOut:
			c.setZoom(c.g.Camera.Scale() / 1.25)
		case input.ActionToggleLighting:
			c.g.Lighting = !c.g.Lighting
			c.r.SetLighting(c.g.Lighting)
			c.g.AddMessage(gotext.Get("Lighting toggled"))
		case input.ActionToggleAnimation:
			c.r.SetTileAnimation(!c.r.TileAnimation())
			c.g.AddMessage(gotext.Get("Tile animation toggled"))
		case input.ActionScreenshot:
			c.shotNext = true
		case input.ActionMapDump:
			devtools.DumpVisibleMap(c.g, os.Stdout)
		case input.ActionQuit:
			return ebiten.Termination
		}
	}

	// Step animated-tile frames on the game clock.
	now := c.g.CurrentTime()
	c.r.ForEachAnimatedTile(func(t *canvas.AnimatedTile) {
		t.Tick(now)
	})

	return nil
}

func (c *client) setZoom(scale float64) {
	if scale < 0.25 || scale > 4 {
		return
	}
	c.g.Camera.SetScale(scale)
	// Zoom changes the device-pixel cell geometry wholesale.
	c.r.Resize(c.width, c.height)
}

func (c *client) Draw(screen *ebiten.Image) {
	c.r.Render()

	screen.DrawImage(c.bg.Image(), nil)

	// Entities stamp onto the foreground between the two tile layers.
	for _, e := range c.g.Entities {
		if e.Drawable() {
			c.r.DrawEntity(e.SpriteID, e.MapIndex(c.g.Map.Width()))
		}
	}

	screen.DrawImage(c.fg.Image(), nil)
	if c.g.Lighting {
		screen.DrawImage(c.ov.Image(), nil)
	}

	c.drawHUD(screen)

	if c.shotNext {
		c.shotNext = false
		if name, err := devtools.SaveScreenshotPNG(screen); err != nil {
			fmt.Fprintf(os.Stderr, "screenshot failed: %v\n", err)
		} else {
			c.g.AddMessage(gotext.Get("Saved %s", name))
		}
	}
}

func (c *client) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%.0f fps  cam (%d,%d)  zoom %.2f",
		c.r.FPS(), c.g.Camera.GridX(), c.g.Camera.GridY(), c.g.Camera.Scale())

	vector.DrawFilledRect(screen, 4, 4, 280, float32(18+14*len(c.g.Messages)),
		color.RGBA{20, 20, 40, 200}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	text.Draw(screen, hud, c.hudFace, op)

	for i, msg := range c.g.Messages {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(20+14*i))
		text.Draw(screen, msg, c.hudFace, op)
	}
}

func (c *client) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.width || outsideHeight != c.height {
		c.width, c.height = outsideWidth, outsideHeight
		c.g.Camera.Resize(
			outsideWidth/int(c.g.Camera.ActualTileSize())+2,
			outsideHeight/int(c.g.Camera.ActualTileSize())+2,
		)
		c.r.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	windowWidth := flag.Int("width", 960, "window width in pixels")
	windowHeight := flag.Int("height", 640, "window height in pixels")
	zoom := flag.Float64("zoom", 2.0, "initial zoom factor")
	seed := flag.Int64("seed", 1, "map generation seed")
	lighting := flag.Bool("lighting", false, "start with the lighting overlay active")
	flag.Parse()

	initGettext()

	m, err := generator.DefaultGenerator.Generate(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build map: %v\n", err)
		os.Exit(1)
	}

	actual := float64(generator.TileSize) * *zoom
	cam := camera.New(generator.TileSize,
		int(float64(*windowWidth)/actual)+2,
		int(float64(*windowHeight)/actual)+2,
		*zoom)

	g := state.NewGame(m, cam)
	g.Lighting = *lighting
	g.AddEntity(&entities.Entity{
		ID: 1, Kind: entities.KindPlayer, Name: "Wanderer",
		Col: 8, Row: 6, SpriteID: generator.TileSprite,
	})
	g.AddEntity(&entities.Entity{
		ID: 2, Kind: entities.KindMob, Name: "Thicket Boar",
		Col: 14, Row: 9, SpriteID: generator.TileSprite + 1,
	})

	bg := canvas.NewLayer(*windowWidth, *windowHeight)
	fg := canvas.NewLayer(*windowWidth, *windowHeight)
	ov := canvas.NewLayer(*windowWidth, *windowHeight)

	r := canvas.New(m, cam, bg, fg, ov)
	r.SetClock(g.CurrentTime)
	r.SetLighting(g.Lighting)

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load font: %v\n", err)
		os.Exit(1)
	}

	c := &client{
		g:       g,
		r:       r,
		bg:      bg,
		fg:      fg,
		ov:      ov,
		hudFace: &text.GoTextFace{Source: fontSource, Size: 12},
		width:   *windowWidth,
		height:  *windowHeight,
	}

	ebiten.SetWindowSize(*windowWidth, *windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Thornvale"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(c); err != nil {
		fmt.Fprintf(os.Stderr, "thornvale: %v\n", err)
		os.Exit(1)
	}
}
