package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func cellRune(t *testing.T, s *Surface, x, y int) rune {
	t.Helper()
	c, ok := s.buf.GetCell(x, y)
	if !ok {
		t.Fatalf("Expected cell at (%d, %d) to exist", x, y)
	}
	return c.Rune
}

func TestPrintClipsAtRightEdge(t *testing.T) {
	s := NewSurface(RoleStatus, 0, 0, 5, 1)
	s.Print(0, 0, "abcdefgh", tcell.StyleDefault)

	want := "abcde"
	for i, r := range want {
		if got := cellRune(t, s, i, 0); got != r {
			t.Errorf("Expected %q at column %d, got %q", r, i, got)
		}
	}
}

func TestPrintWideRunes(t *testing.T) {
	s := NewSurface(RoleStatus, 0, 0, 5, 1)
	s.Print(0, 0, "界x", tcell.StyleDefault)

	if got := cellRune(t, s, 0, 0); got != '界' {
		t.Errorf("Expected wide rune at column 0, got %q", got)
	}
	if got := cellRune(t, s, 1, 0); got != ' ' {
		t.Errorf("Expected padding after wide rune, got %q", got)
	}
	if got := cellRune(t, s, 2, 0); got != 'x' {
		t.Errorf("Expected 'x' at column 2, got %q", got)
	}
}

func TestBox(t *testing.T) {
	s := NewSurface(RoleContainer, 0, 0, 4, 3)
	s.Box(tcell.StyleDefault)

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'}, {3, 0, '┐'}, {0, 2, '└'}, {3, 2, '┘'},
		{1, 0, '─'}, {2, 2, '─'}, {0, 1, '│'}, {3, 1, '│'},
		{1, 1, ' '}, // interior untouched
	}
	for _, c := range checks {
		if got := cellRune(t, s, c.x, c.y); got != c.want {
			t.Errorf("Expected %q at (%d, %d), got %q", c.want, c.x, c.y, got)
		}
	}
}

func TestRefreshOffsetsByOrigin(t *testing.T) {
	s := NewSurface(RoleViewport, 3, 2, 2, 1)
	s.SetCell(0, 0, 'a', tcell.StyleDefault)
	s.SetCell(1, 0, 'b', tcell.StyleDefault)

	d := &positionDisplay{cells: map[[2]int]rune{}}
	s.refresh(d)

	if d.cells[[2]int{3, 2}] != 'a' {
		t.Errorf("Expected 'a' staged at terminal (3, 2), got %q", d.cells[[2]int{3, 2}])
	}
	if d.cells[[2]int{4, 2}] != 'b' {
		t.Errorf("Expected 'b' staged at terminal (4, 2), got %q", d.cells[[2]int{4, 2}])
	}
}

type positionDisplay struct {
	cells map[[2]int]rune
}

func (d *positionDisplay) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	d.cells[[2]int{x, y}] = primary
}

func (d *positionDisplay) Show() {}
