package render

import (
	"errors"
)

// ErrUnknownSurface reports a lookup with a surface that is not a registry
// member. It indicates a caller bug (a stale or foreign handle), not a
// transient condition; callers should fail fast rather than retry
var ErrUnknownSurface = errors.New("render: surface not in registry")

// Registry index of each well-known surface
const (
	indexRoot = iota
	indexContainer
	indexViewport
	indexStatus
	surfaceCount
)

// Registry holds the fixed surface stack, bottom to top. The order is set
// at construction and never changes; it is the authoritative z-order. The
// container paints over the root, the viewport over the container, and the
// status bar last so it stays visible above the border
type Registry struct {
	surfaces [surfaceCount]*Surface
}

// NewRegistry builds the registry from the four well-known surfaces in
// bottom-to-top order
func NewRegistry(root, container, viewport, status *Surface) *Registry {
	return &Registry{
		surfaces: [surfaceCount]*Surface{root, container, viewport, status},
	}
}

// Surfaces returns the surface stack, bottom to top. The returned slice is
// a copy; the registry's own order cannot be mutated through it
func (r *Registry) Surfaces() []*Surface {
	out := make([]*Surface, surfaceCount)
	copy(out, r.surfaces[:])
	return out
}

// IndexOf returns the surface's fixed position in the stack, or
// ErrUnknownSurface if the surface is not a registry member
func (r *Registry) IndexOf(s *Surface) (int, error) {
	for i, member := range r.surfaces {
		if member == s {
			return i, nil
		}
	}
	return 0, ErrUnknownSurface
}

// Root returns the bottommost surface (full screen, title line)
func (r *Registry) Root() *Surface {
	return r.surfaces[indexRoot]
}

// Container returns the bordered container surface
func (r *Registry) Container() *Surface {
	return r.surfaces[indexContainer]
}

// Viewport returns the content viewport nested inside the container
func (r *Registry) Viewport() *Surface {
	return r.surfaces[indexViewport]
}

// Status returns the topmost surface, the status bar
func (r *Registry) Status() *Surface {
	return r.surfaces[indexStatus]
}
