package render

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeDisplay records every staged cell and commit so tests can assert
// refresh order and commit atomicity. Each test surface is filled with a
// distinct rune, so runs of identical runes in the op log identify which
// surface was refreshed and in what order.
type drawOp struct {
	r    rune
	show bool
}

type fakeDisplay struct {
	ops []drawOp
}

func (d *fakeDisplay) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	d.ops = append(d.ops, drawOp{r: primary})
}

func (d *fakeDisplay) Show() {
	d.ops = append(d.ops, drawOp{show: true})
}

func (d *fakeDisplay) reset() {
	d.ops = nil
}

// runs collapses consecutive identical cell writes into one entry per
// refreshed surface
func (d *fakeDisplay) runs() []rune {
	var out []rune
	for _, op := range d.ops {
		if op.show {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != op.r {
			out = append(out, op.r)
		}
	}
	return out
}

func (d *fakeDisplay) shows() int {
	n := 0
	for _, op := range d.ops {
		if op.show {
			n++
		}
	}
	return n
}

// showIsLast reports whether the op log ends with exactly the commit
func (d *fakeDisplay) showIsLast() bool {
	if len(d.ops) == 0 {
		return false
	}
	return d.ops[len(d.ops)-1].show
}

func newTestRig() (*Registry, *Scheduler, *fakeDisplay) {
	root := NewSurface(RoleRoot, 0, 0, 20, 8)
	container := NewSurface(RoleContainer, 0, 1, 20, 6)
	viewport := NewSurface(RoleViewport, 2, 3, 8, 3)
	status := NewSurface(RoleStatus, 0, 7, 17, 1)

	root.Fill('R', tcell.StyleDefault)
	container.Fill('C', tcell.StyleDefault)
	viewport.Fill('V', tcell.StyleDefault)
	status.Fill('S', tcell.StyleDefault)

	registry := NewRegistry(root, container, viewport, status)
	display := &fakeDisplay{}
	return registry, NewScheduler(registry, display), display
}

func expectRuns(t *testing.T, display *fakeDisplay, want []rune) {
	t.Helper()
	got := display.runs()
	if len(got) != len(want) {
		t.Fatalf("Expected refresh runs %q, got %q", string(want), string(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected refresh runs %q, got %q", string(want), string(got))
		}
	}
}

func TestFlushQueuedRegistryOrder(t *testing.T) {
	reg, sched, display := newTestRig()

	// Queue in reverse of stacking order; flush must ignore arrival order
	if err := sched.Queue(reg.Status()); err != nil {
		t.Fatalf("Queue(status) failed: %v", err)
	}
	if err := sched.Queue(reg.Root()); err != nil {
		t.Fatalf("Queue(root) failed: %v", err)
	}
	if err := sched.Queue(reg.Viewport()); err != nil {
		t.Fatalf("Queue(viewport) failed: %v", err)
	}

	if len(display.ops) != 0 {
		t.Errorf("Expected Queue to stage nothing, got %d ops", len(display.ops))
	}

	sched.FlushQueued()

	expectRuns(t, display, []rune{'R', 'V', 'S'})
	if display.shows() != 1 {
		t.Errorf("Expected exactly 1 commit, got %d", display.shows())
	}
	if !display.showIsLast() {
		t.Error("Expected the commit to come after all refreshes")
	}
}

func TestQueueDeduplicates(t *testing.T) {
	reg, sched, display := newTestRig()

	for i := 0; i < 5; i++ {
		if err := sched.Queue(reg.Viewport()); err != nil {
			t.Fatalf("Queue failed: %v", err)
		}
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected 1 pending surface, got %d", sched.Pending())
	}

	sched.FlushQueued()

	w, h := reg.Viewport().Size()
	cells := 0
	for _, op := range display.ops {
		if !op.show && op.r == 'V' {
			cells++
		}
	}
	if cells != w*h {
		t.Errorf("Expected viewport refreshed exactly once (%d cells), got %d", w*h, cells)
	}
}

func TestFlushDrains(t *testing.T) {
	reg, sched, display := newTestRig()

	sched.Queue(reg.Container())
	sched.Queue(reg.Status())
	sched.FlushQueued()

	if sched.Pending() != 0 {
		t.Errorf("Expected empty request set after flush, got %d pending", sched.Pending())
	}

	display.reset()
	sched.FlushQueued()

	if len(display.ops) != 0 {
		t.Errorf("Expected second flush to be a no-op, got %d ops", len(display.ops))
	}
}

func TestEmptyFlushSkipsCommit(t *testing.T) {
	_, sched, display := newTestRig()

	sched.FlushQueued()
	sched.FlushQueued()

	if display.shows() != 0 {
		t.Errorf("Expected no commits for empty flushes, got %d", display.shows())
	}
	if len(display.ops) != 0 {
		t.Errorf("Expected no refreshes for empty flushes, got %d ops", len(display.ops))
	}
}

func TestQueueUnknownSurface(t *testing.T) {
	reg, sched, _ := newTestRig()

	foreign := NewSurface(RoleViewport, 0, 0, 4, 4)

	err := sched.Queue(foreign)
	if !errors.Is(err, ErrUnknownSurface) {
		t.Fatalf("Expected ErrUnknownSurface, got %v", err)
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected rejected queue to leave request set untouched, got %d pending", sched.Pending())
	}

	if _, err := reg.IndexOf(foreign); !errors.Is(err, ErrUnknownSurface) {
		t.Errorf("Expected IndexOf to reject foreign surface, got %v", err)
	}
}

func TestRedrawAllCompleteness(t *testing.T) {
	reg, sched, display := newTestRig()

	// A pending request must survive a full redraw untouched
	sched.Queue(reg.Viewport())

	sched.RedrawAll()

	expectRuns(t, display, []rune{'R', 'C', 'V', 'S'})
	if display.shows() != 1 {
		t.Errorf("Expected exactly 1 commit, got %d", display.shows())
	}
	if !display.showIsLast() {
		t.Error("Expected the commit to come after all refreshes")
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected pending request to survive RedrawAll, got %d", sched.Pending())
	}

	display.reset()
	sched.FlushQueued()
	expectRuns(t, display, []rune{'V'})
	if display.shows() != 1 {
		t.Errorf("Expected surviving request to flush with 1 commit, got %d", display.shows())
	}
}

func TestFlushScenario(t *testing.T) {
	reg, sched, display := newTestRig()

	// queue(viewport), queue(status), queue(viewport) again
	sched.Queue(reg.Viewport())
	sched.Queue(reg.Status())
	sched.Queue(reg.Viewport())

	sched.FlushQueued()

	// Refresh order follows registry index (viewport < status), one
	// commit, request set drained
	expectRuns(t, display, []rune{'V', 'S'})
	if display.shows() != 1 {
		t.Errorf("Expected exactly 1 commit, got %d", display.shows())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected empty request set, got %d pending", sched.Pending())
	}
}

func TestRecomposeFlag(t *testing.T) {
	_, sched, _ := newTestRig()

	if sched.TakeRecompose() {
		t.Error("Expected recompose flag to start clear")
	}

	sched.MarkRecompose()
	sched.MarkRecompose()

	if !sched.TakeRecompose() {
		t.Error("Expected recompose flag to be set")
	}
	if sched.TakeRecompose() {
		t.Error("Expected TakeRecompose to clear the flag")
	}
}
