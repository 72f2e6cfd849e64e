// Package palette recolors a tree of themeable widgets with one of two fixed
// palettes. The walk stops at DefaultDepth levels below the root, so widgets
// nested deeper keep whatever colors they already had.
package palette

import (
	"image/color"

	"github.com/ytget/tubeflow/internal/model"
)

// DefaultDepth is how far below the root Apply recolors (children and grandchildren)
const DefaultDepth = 2

// Unlimited makes Apply walk the whole tree
const Unlimited = -1

// Role tells the palette which color pair a node takes
type Role int

const (
	RoleWindow Role = iota
	RolePanel
	RoleLabel
	RoleButton
	RoleInput
	RoleToggle
)

// Themeable is anything whose colors can be set
type Themeable interface {
	SetBackground(c color.Color)
	SetForeground(c color.Color)
}

// Node is a themeable element of the widget tree
type Node interface {
	Themeable
	Role() Role
	Children() []Node
}

// Palette is a fixed set of colors for one theme
type Palette struct {
	Window  color.Color // window, panels, labels and toggles
	Control color.Color // buttons and text inputs
	Text    color.Color
}

var (
	// systemButtonFace is the classic desktop dialog grey
	systemButtonFace = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	gray20           = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	gray30           = color.NRGBA{R: 0x4D, G: 0x4D, B: 0x4D, A: 0xFF}
)

// Light is the default palette
var Light = Palette{
	Window:  systemButtonFace,
	Control: systemButtonFace,
	Text:    color.NRGBA{A: 0xFF},
}

// Dark is the dark palette
var Dark = Palette{
	Window:  gray20,
	Control: gray30,
	Text:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// For returns the palette of a theme
func For(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return Dark
	}
	return Light
}

// Colors returns the background and foreground for a role
func (p Palette) Colors(role Role) (background, foreground color.Color) {
	switch role {
	case RoleButton, RoleInput:
		return p.Control, p.Text
	default:
		return p.Window, p.Text
	}
}

// Apply recolors root and its descendants down to depth levels below it and
// returns the number of nodes recolored. A negative depth walks everything.
func Apply(root Node, p Palette, depth int) int {
	if root == nil {
		return 0
	}
	return apply(root, p, 0, depth)
}

func apply(n Node, p Palette, level, depth int) int {
	bg, fg := p.Colors(n.Role())
	n.SetBackground(bg)
	n.SetForeground(fg)

	count := 1
	if depth >= 0 && level >= depth {
		return count
	}
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		count += apply(child, p, level+1, depth)
	}
	return count
}
