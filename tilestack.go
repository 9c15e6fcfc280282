package tilestack

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Bounds is an axis-aligned box given by its two corners. X0 <= X1 and
// Y0 <= Y1 for every Bounds returned by this package.
type Bounds struct {
	X0, Y0, X1, Y1 float64
}

// Contains reports whether (x, y) lies strictly inside the box.
// Points on an edge are NOT inside.
func (b Bounds) Contains(x, y float64) bool {
	return b.X0 < x && x < b.X1 && b.Y0 < y && y < b.Y1
}

// Width returns X1 - X0.
func (b Bounds) Width() float64 { return b.X1 - b.X0 }

// Height returns Y1 - Y0.
func (b Bounds) Height() float64 { return b.Y1 - b.Y0 }

// boundsFrom builds a normalized box from an origin and a signed extent.
func boundsFrom(x, y, w, h float64) Bounds {
	b := Bounds{X0: x, Y0: y, X1: x + w, Y1: y + h}
	if b.X1 < b.X0 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Y1 < b.Y0 {
		b.Y0, b.Y1 = b.Y1, b.Y0
	}
	return b
}

// EventType identifies a kind of pointer event delivered by an EventSource.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventDrag                         // fires on movement while a button is held
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ebitenButton maps a MouseButton to its ebiten counterpart.
func (b MouseButton) ebitenButton() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
