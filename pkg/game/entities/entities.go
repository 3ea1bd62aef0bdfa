// Package entities contains the client-side entity layer: every drawable
// thing that is not a map tile. Entity kinds are a closed set; anything
// that needs per-kind behavior switches exhaustively on Kind rather than
// probing with runtime type checks.
package entities

import "fmt"

// Kind identifies what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindMob
	KindNPC
	KindItem
	KindChest
	KindDecoration
)

// String returns a human-friendly kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMob:
		return "mob"
	case KindNPC:
		return "npc"
	case KindItem:
		return "item"
	case KindChest:
		return "chest"
	case KindDecoration:
		return "decoration"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entity is one drawable game object with a position on the tile grid.
// Sprite selection and animation bookkeeping live on the entity; the
// renderer only reads position and the current sprite tile id.
type Entity struct {
	ID   int
	Kind Kind
	Name string

	// Position in tile coordinates.
	Col int
	Row int

	// SpriteID is the tile id used when stamping the entity onto the
	// foreground surface. Negative means "not currently drawable".
	SpriteID int
}

// MapIndex returns the entity's position as a flattened map index.
func (e *Entity) MapIndex(mapWidth int) int {
	return e.Row*mapWidth + e.Col
}

// Drawable reports whether the entity currently has a sprite to draw.
func (e *Entity) Drawable() bool {
	return e.SpriteID >= 0
}

// Symbol returns the single-character map-dump symbol for an entity kind.
func Symbol(k Kind) rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindMob:
		return 'm'
	case KindNPC:
		return 'n'
	case KindItem:
		return 'i'
	case KindChest:
		return 'c'
	case KindDecoration:
		return '*'
	default:
		return '?'
	}
}
