package tilestack

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Leaf is a visual whose transform can be driven by a CompositeNode.
// Implementations are owned by the caller; the core only calls the setters.
type Leaf interface {
	SetX(x float64)
	SetY(y float64)
	// SetRotation sets the rotation in degrees, clockwise.
	SetRotation(deg float64)
	SetScaleX(sx float64)
	SetScaleY(sy float64)
	// Size returns the unscaled footprint.
	Size() (w, h float64)
}

// Drawable is anything the frame driver can draw in draw-order.
type Drawable interface {
	Draw(dst *ebiten.Image)
}

// whitePixel is a 1x1 white image used for solid-color sprites.
// Created on first use from the game goroutine.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Sprite is a single ebiten-backed leaf visual. It can be grouped into a
// CompositeNode or dragged on its own.
type Sprite struct {
	Name string

	// Transform
	X, Y     float64
	Rotation float64 // degrees, clockwise
	ScaleX   float64
	ScaleY   float64

	// Unscaled footprint, taken from Image when set.
	Width, Height float64

	Image   *ebiten.Image // nil draws a solid Color rectangle of Width x Height
	Color   Color
	Visible bool

	op ebiten.DrawImageOptions // reused every Draw
}

func spriteDefaults(s *Sprite) {
	s.ScaleX = 1
	s.ScaleY = 1
	s.Color = ColorWhite
	s.Visible = true
}

// NewSprite creates a sprite that draws img. Width and Height come from the
// image bounds.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	s := &Sprite{Name: name, Image: img}
	spriteDefaults(s)
	if img != nil {
		b := img.Bounds()
		s.Width = float64(b.Dx())
		s.Height = float64(b.Dy())
	}
	return s
}

// NewSizedSprite creates an image-less sprite with the given footprint. It
// draws as a solid rectangle tinted by Color.
func NewSizedSprite(name string, w, h float64) *Sprite {
	s := &Sprite{Name: name, Width: w, Height: h}
	spriteDefaults(s)
	return s
}

// SetX sets the horizontal position.
func (s *Sprite) SetX(x float64) { s.X = x }

// SetY sets the vertical position.
func (s *Sprite) SetY(y float64) { s.Y = y }

// SetRotation sets the rotation in degrees.
func (s *Sprite) SetRotation(deg float64) { s.Rotation = deg }

// SetScaleX sets the horizontal scale.
func (s *Sprite) SetScaleX(sx float64) { s.ScaleX = sx }

// SetScaleY sets the vertical scale.
func (s *Sprite) SetScaleY(sy float64) { s.ScaleY = sy }

// Size returns the unscaled footprint.
func (s *Sprite) Size() (w, h float64) { return s.Width, s.Height }

// Position returns the sprite's origin.
func (s *Sprite) Position() (x, y float64) { return s.X, s.Y }

// Bounds returns the sprite's scaled axis-aligned footprint. Rotation is not
// taken into account.
func (s *Sprite) Bounds() Bounds {
	return boundsFrom(s.X, s.Y, s.Width*s.ScaleX, s.Height*s.ScaleY)
}

// Update applies a partial transform to the sprite.
func (s *Sprite) Update(u TransformUpdate) {
	u.applyTo(s)
}

// Draw renders the sprite onto dst: scale, then rotate about the origin,
// then translate to (X, Y).
func (s *Sprite) Draw(dst *ebiten.Image) {
	if !s.Visible {
		return
	}
	img := s.Image
	sx, sy := s.ScaleX, s.ScaleY
	if img == nil {
		if s.Width == 0 || s.Height == 0 {
			return
		}
		img = ensureWhitePixel()
		sx *= s.Width
		sy *= s.Height
	}

	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Scale(sx, sy)
	if s.Rotation != 0 {
		op.GeoM.Rotate(s.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(s.X, s.Y)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(s.Color.R), float32(s.Color.G), float32(s.Color.B), 1)
	op.ColorScale.ScaleAlpha(float32(s.Color.A))
	dst.DrawImage(img, op)
}
