package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/tubeflow/internal/palette"
)

// themedNode wraps a canvas object so the palette walk can recolor it.
// Each node owns a theme override, so a node the walk does not reach keeps
// its previous colors even when its parent changes.
type themedNode struct {
	role       palette.Role
	background color.Color
	foreground color.Color
	rect       *canvas.Rectangle
	override   *container.ThemeOverride
	children   []palette.Node
}

func newThemedNode(role palette.Role, content fyne.CanvasObject, children ...palette.Node) *themedNode {
	bg, fg := palette.Light.Colors(role)
	n := &themedNode{
		role:       role,
		background: bg,
		foreground: fg,
		rect:       canvas.NewRectangle(bg),
		children:   children,
	}
	n.override = container.NewThemeOverride(container.NewStack(n.rect, content), newSwatchTheme(bg, fg))
	return n
}

// Object returns the canvas object to place in a layout
func (n *themedNode) Object() fyne.CanvasObject {
	return n.override
}

func (n *themedNode) Role() palette.Role {
	return n.role
}

func (n *themedNode) Children() []palette.Node {
	return n.children
}

func (n *themedNode) SetBackground(c color.Color) {
	n.background = c
	n.rect.FillColor = c
	n.refresh()
}

func (n *themedNode) SetForeground(c color.Color) {
	n.foreground = c
	n.refresh()
}

// Colors returns the colors currently painted
func (n *themedNode) Colors() (background, foreground color.Color) {
	return n.background, n.foreground
}

func (n *themedNode) refresh() {
	n.override.Theme = newSwatchTheme(n.background, n.foreground)
	n.override.Refresh()
	n.rect.Refresh()
}

// windowNode is the root of the themed tree. Besides its own override it
// installs its colors as the application theme so dialogs follow the palette.
type windowNode struct {
	*themedNode
	app fyne.App
}

func newWindowNode(app fyne.App, content fyne.CanvasObject, children ...palette.Node) *windowNode {
	w := &windowNode{
		themedNode: newThemedNode(palette.RoleWindow, content, children...),
		app:        app,
	}
	w.installAppTheme()
	return w
}

func (w *windowNode) SetBackground(c color.Color) {
	w.themedNode.SetBackground(c)
	w.installAppTheme()
}

func (w *windowNode) SetForeground(c color.Color) {
	w.themedNode.SetForeground(c)
	w.installAppTheme()
}

func (w *windowNode) installAppTheme() {
	if w.app == nil {
		return
	}
	w.app.Settings().SetTheme(newSwatchTheme(w.background, w.foreground))
}
