// Package scene holds the map being edited: placed tiles plus creatures
// at positions. It knows nothing about drawing; the engine composes it
// into the viewport surface.
package scene

import (
	"github.com/gridmire/gridmire/content"
	"github.com/gridmire/gridmire/core"
)

// Scene is a bounded grid of placed tiles and mobs
type Scene struct {
	width  int
	height int
	tiles  map[core.Point]content.Tile
	mobs   map[core.Point]content.Mob
}

// New creates an empty scene with the given bounds
func New(width, height int) *Scene {
	return &Scene{
		width:  width,
		height: height,
		tiles:  make(map[core.Point]content.Tile),
		mobs:   make(map[core.Point]content.Mob),
	}
}

// Size returns the scene bounds
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

func (s *Scene) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetTile places a tile, replacing whatever tile was there. Out-of-bounds
// placements are rejected
func (s *Scene) SetTile(x, y int, t content.Tile) bool {
	if !s.inBounds(x, y) {
		return false
	}
	s.tiles[core.Point{X: x, Y: y}] = t
	return true
}

// TileAt returns the tile at the given position, if any
func (s *Scene) TileAt(x, y int) (content.Tile, bool) {
	t, ok := s.tiles[core.Point{X: x, Y: y}]
	return t, ok
}

// SetMob places a mob, replacing whatever mob was there
func (s *Scene) SetMob(x, y int, m content.Mob) bool {
	if !s.inBounds(x, y) {
		return false
	}
	s.mobs[core.Point{X: x, Y: y}] = m
	return true
}

// MobAt returns the mob at the given position, if any
func (s *Scene) MobAt(x, y int) (content.Mob, bool) {
	m, ok := s.mobs[core.Point{X: x, Y: y}]
	return m, ok
}

// Erase removes both the tile and the mob at the given position
func (s *Scene) Erase(x, y int) {
	p := core.Point{X: x, Y: y}
	delete(s.tiles, p)
	delete(s.mobs, p)
}

// Clear removes all placed content
func (s *Scene) Clear() {
	s.tiles = make(map[core.Point]content.Tile)
	s.mobs = make(map[core.Point]content.Mob)
}

// Resize changes the scene bounds, dropping content that falls outside
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
	for p := range s.tiles {
		if !s.inBounds(p.X, p.Y) {
			delete(s.tiles, p)
		}
	}
	for p := range s.mobs {
		if !s.inBounds(p.X, p.Y) {
			delete(s.mobs, p)
		}
	}
}
