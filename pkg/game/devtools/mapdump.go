// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"thornvale/pkg/engine/tilemap"
	"thornvale/pkg/game/entities"
	"thornvale/pkg/game/state"
)

// tileSymbol returns the single-character symbol for a map cell.
func tileSymbol(m *tilemap.Map, index int) rune {
	t, ok := m.TileAt(index)
	if !ok {
		return ' '
	}
	switch {
	case m.IsAnimatedTile(t.ID):
		return '~'
	case m.IsHighTile(t.ID):
		return '^'
	case m.IsLightTile(t.ID):
		return 'o'
	case t.Flipped():
		return '/'
	default:
		return '.'
	}
}

// tileStyle returns the terminal style for a map cell symbol.
func tileStyle(m *tilemap.Map, index int) color.Color {
	t, ok := m.TileAt(index)
	if !ok {
		return color.FgDefault
	}
	switch {
	case m.IsAnimatedTile(t.ID):
		return color.FgCyan
	case m.IsHighTile(t.ID):
		return color.FgGreen
	case m.IsLightTile(t.ID):
		return color.FgYellow
	default:
		return color.FgGray
	}
}

// entityStyle returns the terminal style for an entity kind. The switch is
// exhaustive over entities.Kind.
func entityStyle(k entities.Kind) color.Color {
	switch k {
	case entities.KindPlayer:
		return color.FgLightGreen
	case entities.KindMob:
		return color.FgRed
	case entities.KindNPC:
		return color.FgLightBlue
	case entities.KindItem:
		return color.FgMagenta
	case entities.KindChest:
		return color.FgYellow
	case entities.KindDecoration:
		return color.FgGray
	default:
		return color.FgDefault
	}
}

// DumpVisibleMap writes a colored ASCII rendering of the camera's visible
// window to w, entities overlaid on tiles. Intended for quick terminal
// inspection of what the renderer is about to draw.
func DumpVisibleMap(g *state.Game, w io.Writer) {
	m, cam := g.Map, g.Camera

	cols := cam.Cols()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if termCols, _, err := term.GetSize(int(f.Fd())); err == nil && termCols > 0 && termCols < cols {
			cols = termCols
		}
	}

	// Entities by map index for the overlay.
	byIndex := make(map[int]*entities.Entity)
	for _, e := range g.Entities {
		byIndex[e.MapIndex(m.Width())] = e
	}

	fmt.Fprintf(w, "camera (%d,%d) %dx%d zoom %.2f lighting %v\n",
		cam.GridX(), cam.GridY(), cam.Cols(), cam.Rows(), cam.Scale(), g.Lighting)

	for row := cam.GridY(); row < cam.GridY()+cam.Rows() && row < m.Height(); row++ {
		for col := cam.GridX(); col < cam.GridX()+cols && col < m.Width(); col++ {
			if row < 0 || col < 0 {
				fmt.Fprint(w, " ")
				continue
			}
			index := row*m.Width() + col
			if e, ok := byIndex[index]; ok {
				fmt.Fprint(w, entityStyle(e.Kind).Render(string(entities.Symbol(e.Kind))))
				continue
			}
			fmt.Fprint(w, tileStyle(m, index).Render(string(tileSymbol(m, index))))
		}
		fmt.Fprintln(w)
	}
}
