// Package ui builds the editor's fixed surface stack and owns its screen
// geometry: a full-screen root carrying the title line, a bordered
// container, the content viewport inset inside it, and a short status bar
// in the bottom-left corner.
package ui

import (
	"fmt"

	"github.com/gridmire/gridmire/render"
)

// Screen geometry. The viewport sits inside the container border with a
// margin, so its size trails the terminal by the fixed offsets below
const (
	MainOffsetX = 4
	MainOffsetY = 6
	MainX       = 2
	MainY       = 3

	SelectWidth  = 20
	SelectHeight = 6

	StatusWidth = 17
)

// MinWidth and MinHeight are the smallest terminal the layout fits in
const (
	MinWidth  = StatusWidth
	MinHeight = MainOffsetY + 1
)

// BuildSurfaces creates the four standard surfaces for a terminal of the
// given size, draws their static chrome (title line, container border),
// and returns them as a registry in stacking order
func BuildSurfaces(width, height int, title string) (*render.Registry, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("ui: terminal %dx%d below minimum %dx%d",
			width, height, MinWidth, MinHeight)
	}

	root := render.NewSurface(render.RoleRoot, 0, 0, width, height)
	root.FillRow(0, ' ', StyleTitle)
	root.Print(0, 0, title, StyleTitle)

	container := render.NewSurface(render.RoleContainer, 0, 1, width, height-2)
	container.Box(StyleDefault)

	viewport := render.NewSurface(render.RoleViewport, MainX, MainY,
		width-MainOffsetX, height-MainOffsetY)

	status := render.NewSurface(render.RoleStatus, 0, height-1, StatusWidth, 1)
	status.FillRow(0, ' ', StyleStatus)

	return render.NewRegistry(root, container, viewport, status), nil
}
