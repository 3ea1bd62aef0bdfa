// Package state holds the shared client state the renderer and game loop
// both read: the map, the camera, the entity list and a monotonic game clock.
package state

import (
	"time"

	"thornvale/pkg/engine/camera"
	"thornvale/pkg/engine/tilemap"
	"thornvale/pkg/game/entities"
)

// Game represents the client-side game state for Thornvale.
type Game struct {
	Map    *tilemap.Map
	Camera *camera.Camera

	Entities []*entities.Entity

	// Lighting reports whether the lighting overlay is active.
	Lighting bool

	Messages []string

	started time.Time
}

// NewGame creates a new client state around a map and camera.
func NewGame(m *tilemap.Map, cam *camera.Camera) *Game {
	return &Game{
		Map:      m,
		Camera:   cam,
		Messages: make([]string, 0),
		started:  time.Now(),
	}
}

// CurrentTime returns the game clock in milliseconds since the client
// started. Animated-tile stamps and animation stepping use this clock.
func (g *Game) CurrentTime() int64 {
	return time.Since(g.started).Milliseconds()
}

// AddEntity appends an entity to the client's entity list.
func (g *Game) AddEntity(e *entities.Entity) {
	g.Entities = append(g.Entities, e)
}

// AddMessage adds a message to the game's message log.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
