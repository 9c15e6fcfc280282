package tilestack

// TransformField is a bitmask naming the fields carried by a TransformUpdate.
type TransformField uint8

const (
	FieldX        TransformField = 1 << iota // X position
	FieldY                                   // Y position
	FieldRotation                            // rotation in degrees
	FieldScale                               // uniform scale (both axes)
	FieldScaleX                              // horizontal scale
	FieldScaleY                              // vertical scale
)

// TransformUpdate is a partial transform. Only the fields named in Fields are
// applied; everything else is left as is. The zero value changes nothing.
//
// Build one with Move or the With* methods:
//
//	node.Update(tilestack.Move(100, 50).WithRotation(45))
type TransformUpdate struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	ScaleX   float64
	ScaleY   float64
	Fields   TransformField
}

// Move returns an update that sets X and Y.
func Move(x, y float64) TransformUpdate {
	return TransformUpdate{X: x, Y: y, Fields: FieldX | FieldY}
}

// Has reports whether every field in f is set on u.
func (u TransformUpdate) Has(f TransformField) bool {
	return u.Fields&f == f
}

// IsZero reports whether u carries no fields.
func (u TransformUpdate) IsZero() bool {
	return u.Fields == 0
}

// WithX returns a copy of u that also sets X.
func (u TransformUpdate) WithX(x float64) TransformUpdate {
	u.X = x
	u.Fields |= FieldX
	return u
}

// WithY returns a copy of u that also sets Y.
func (u TransformUpdate) WithY(y float64) TransformUpdate {
	u.Y = y
	u.Fields |= FieldY
	return u
}

// WithRotation returns a copy of u that also sets the rotation, in degrees.
func (u TransformUpdate) WithRotation(deg float64) TransformUpdate {
	u.Rotation = deg
	u.Fields |= FieldRotation
	return u
}

// WithScale returns a copy of u that also sets a uniform scale. A ScaleX or
// ScaleY carried by the same update overrides it for that axis, regardless
// of the order the builders are called in.
func (u TransformUpdate) WithScale(s float64) TransformUpdate {
	u.Scale = s
	u.Fields |= FieldScale
	return u
}

// WithScaleX returns a copy of u that also sets the horizontal scale.
func (u TransformUpdate) WithScaleX(sx float64) TransformUpdate {
	u.ScaleX = sx
	u.Fields |= FieldScaleX
	return u
}

// WithScaleY returns a copy of u that also sets the vertical scale.
func (u TransformUpdate) WithScaleY(sy float64) TransformUpdate {
	u.ScaleY = sy
	u.Fields |= FieldScaleY
	return u
}

// effectiveScale resolves the per-axis scale carried by u. Axis-specific
// values beat the uniform Scale. setX/setY report whether the axis changes.
func (u TransformUpdate) effectiveScale() (sx, sy float64, setX, setY bool) {
	if u.Fields&FieldScale != 0 {
		sx, sy = u.Scale, u.Scale
		setX, setY = true, true
	}
	if u.Fields&FieldScaleX != 0 {
		sx = u.ScaleX
		setX = true
	}
	if u.Fields&FieldScaleY != 0 {
		sy = u.ScaleY
		setY = true
	}
	return sx, sy, setX, setY
}

// applyTo writes the fields carried by u to leaf, leaving the rest untouched.
func (u TransformUpdate) applyTo(leaf Leaf) {
	if u.Fields == 0 {
		return
	}
	if u.Fields&FieldX != 0 {
		leaf.SetX(u.X)
	}
	if u.Fields&FieldY != 0 {
		leaf.SetY(u.Y)
	}
	if u.Fields&FieldRotation != 0 {
		leaf.SetRotation(u.Rotation)
	}
	sx, sy, setX, setY := u.effectiveScale()
	if setX {
		leaf.SetScaleX(sx)
	}
	if setY {
		leaf.SetScaleY(sy)
	}
}
