package tilestack

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrInvalidConfiguration is returned when a component is constructed with
// arguments it cannot work with.
var ErrInvalidConfiguration = errors.New("tilestack: invalid configuration")

// CompositeNode groups leaves under one rigid transform. Every transform
// change is fanned out to all members, in the order they were given, with
// the same value for each.
//
// Members are not owned: the node never creates, removes or reorders them.
// Member order is draw order and is fixed at construction.
type CompositeNode struct {
	name    string
	members []Leaf

	x, y           float64
	rotation       float64
	scaleX, scaleY float64
}

// NewComposite creates a composite over members. The slice order is kept
// verbatim (no sorting, no dedupe). The first member is the reference member
// used by Bounds.
//
// Returns an error wrapping ErrInvalidConfiguration when members is empty or
// holds a nil leaf. Members are not touched: the node starts at the origin
// with unit scale regardless of where the members are.
func NewComposite(name string, members ...Leaf) (*CompositeNode, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("composite %q: no members: %w", name, ErrInvalidConfiguration)
	}
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("composite %q: member %d is nil: %w", name, i, ErrInvalidConfiguration)
		}
	}
	n := &CompositeNode{
		name:    name,
		members: append([]Leaf(nil), members...),
		scaleX:  1,
		scaleY:  1,
	}
	if globalDebug {
		debugCheckMemberCount(n)
	}
	return n, nil
}

// Name returns the diagnostic name given at construction.
func (n *CompositeNode) Name() string { return n.name }

// Members returns the member list in draw order. The returned slice MUST NOT
// be mutated by the caller.
func (n *CompositeNode) Members() []Leaf { return n.members }

// Len returns the number of members.
func (n *CompositeNode) Len() int { return len(n.members) }

// Reference returns the member whose footprint defines Bounds.
func (n *CompositeNode) Reference() Leaf { return n.members[0] }

// Position returns the node's own position.
func (n *CompositeNode) Position() (x, y float64) { return n.x, n.y }

// Rotation returns the node's rotation in degrees.
func (n *CompositeNode) Rotation() float64 { return n.rotation }

// Scale returns the node's per-axis scale.
func (n *CompositeNode) Scale() (sx, sy float64) { return n.scaleX, n.scaleY }

// Update applies u to the node and then to each member, in member order.
// Omitted fields are left untouched on all of them. The zero TransformUpdate
// is a no-op and does not allocate.
func (n *CompositeNode) Update(u TransformUpdate) {
	if u.Fields == 0 {
		return
	}
	if u.Fields&FieldX != 0 {
		n.x = u.X
	}
	if u.Fields&FieldY != 0 {
		n.y = u.Y
	}
	if u.Fields&FieldRotation != 0 {
		n.rotation = u.Rotation
	}
	sx, sy, setX, setY := u.effectiveScale()
	if setX {
		n.scaleX = sx
	}
	if setY {
		n.scaleY = sy
	}
	for _, m := range n.members {
		u.applyTo(m)
	}
}

// Refresh is the per-tick steady-state call made by a frame driver. It
// applies no fields.
func (n *CompositeNode) Refresh() {
	n.Update(TransformUpdate{})
}

// Bounds returns the hit-test box: the node position extended by the
// reference member's unscaled size times the node scale. Other members are
// not included.
func (n *CompositeNode) Bounds() Bounds {
	w, h := n.members[0].Size()
	return boundsFrom(n.x, n.y, w*n.scaleX, h*n.scaleY)
}

// Draw draws every drawable member in member order. Members that cannot draw
// themselves are skipped.
func (n *CompositeNode) Draw(dst *ebiten.Image) {
	for _, m := range n.members {
		if d, ok := m.(Drawable); ok {
			d.Draw(dst)
		}
	}
}

// --- Leaf implementation, so composites can nest ---

// SetX moves the whole group horizontally.
func (n *CompositeNode) SetX(x float64) { n.Update(TransformUpdate{}.WithX(x)) }

// SetY moves the whole group vertically.
func (n *CompositeNode) SetY(y float64) { n.Update(TransformUpdate{}.WithY(y)) }

// SetRotation rotates the whole group.
func (n *CompositeNode) SetRotation(deg float64) { n.Update(TransformUpdate{}.WithRotation(deg)) }

// SetScaleX scales the whole group horizontally.
func (n *CompositeNode) SetScaleX(sx float64) { n.Update(TransformUpdate{}.WithScaleX(sx)) }

// SetScaleY scales the whole group vertically.
func (n *CompositeNode) SetScaleY(sy float64) { n.Update(TransformUpdate{}.WithScaleY(sy)) }

// Size returns the reference member's unscaled size.
func (n *CompositeNode) Size() (w, h float64) { return n.members[0].Size() }
