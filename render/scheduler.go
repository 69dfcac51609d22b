package render

import (
	"github.com/gdamore/tcell/v2"
)

// Display is the terminal backend boundary the scheduler drives:
// SetContent stages a cell into the back buffer, Show commits everything
// staged since the last commit in one atomic screen update. tcell.Screen
// satisfies it directly
type Display interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Scheduler accepts redraw requests for surfaces, deduplicates them, and
// flushes them to the display strictly in registry order followed by a
// single commit. Painting in request-arrival order could put the status
// bar under the container it sits above, so arrival order is never used.
//
// The scheduler performs no locking; exactly one frame-driving loop must
// own it
type Scheduler struct {
	registry *Registry
	display  Display
	pending  map[*Surface]struct{}

	recompose bool
}

// NewScheduler creates a scheduler over the given registry and display
// with an empty request set
func NewScheduler(registry *Registry, display Display) *Scheduler {
	return &Scheduler{
		registry: registry,
		display:  display,
		pending:  make(map[*Surface]struct{}, surfaceCount),
	}
}

// Registry returns the registry the scheduler flushes against
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Queue buffers a redraw request for the surface. Requesting the same
// surface again before the next flush is a no-op. Nothing is written to
// the display. Returns ErrUnknownSurface, leaving the request set
// untouched, if the surface is not a registry member
func (s *Scheduler) Queue(surface *Surface) error {
	if _, err := s.registry.IndexOf(surface); err != nil {
		return err
	}
	s.pending[surface] = struct{}{}
	return nil
}

// Pending reports how many surfaces are queued for the next flush
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// FlushQueued drains the request set, refreshing each queued surface in
// registry order regardless of request arrival order, then commits once.
// An empty request set skips the commit entirely; calling repeatedly is
// safe
func (s *Scheduler) FlushQueued() {
	if len(s.pending) == 0 {
		return
	}

	for _, surface := range s.registry.surfaces {
		if _, ok := s.pending[surface]; ok {
			surface.refresh(s.display)
		}
	}
	clear(s.pending)

	s.display.Show()
}

// RedrawAll refreshes every surface in registry order and commits once.
// Used for first paint and full invalidation such as a terminal resize.
// Pending queued requests are left in place for the next FlushQueued;
// a full redraw does not acknowledge partial ones
func (s *Scheduler) RedrawAll() {
	for _, surface := range s.registry.surfaces {
		surface.refresh(s.display)
	}
	s.display.Show()
}

// MarkRecompose records that the viewport content needs full
// recomposition before the next flush. The scheduler only stores the
// flag; the frame loop consumes it via TakeRecompose
func (s *Scheduler) MarkRecompose() {
	s.recompose = true
}

// TakeRecompose returns the recompose flag and clears it
func (s *Scheduler) TakeRecompose() bool {
	was := s.recompose
	s.recompose = false
	return was
}
