package engine

// Transform is the one component kind carrying nested game objects:
// every other component is a leaf. Position, rotation, and scale are
// true Option<T> fields (nil means "producer never wrote one"), unlike
// the "keep current value on empty marker" contract most other vector
// fields in this format use.
type Transform struct {
	Position *Vector3
	Rotation *Quaternion
	Scale    *Vector3
	Children []GameObject
}

func (*Transform) ComponentVersion() int32 { return 0 }

func (t *Transform) Accept(v Visitor, version int32) error {
	if err := v.VisitOptionalVector3(&t.Position); err != nil {
		return err
	}
	if err := v.VisitOptionalQuaternion(&t.Rotation); err != nil {
		return err
	}
	if err := v.VisitOptionalVector3(&t.Scale); err != nil {
		return err
	}
	if err := v.VisitChildren(&t.Children); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		t.normalize()
	}
	return nil
}

// normalize replaces non-finite components with the documented
// canonical defaults, and clamps finite scale components away from
// zero, matching what a renderer would do with a corrupt transform
// rather than propagating NaN/Inf into the scene graph.
func (t *Transform) normalize() {
	if t.Position != nil && !vector3Finite(*t.Position) {
		*t.Position = ZerosVector3
	}
	if t.Rotation != nil && !quaternionFinite(*t.Rotation) {
		*t.Rotation = DefaultQuaternion
	}
	if t.Scale != nil {
		if !vector3Finite(*t.Scale) {
			*t.Scale = OnesVector3
		} else {
			t.Scale.X = clampScaleComponent(t.Scale.X)
			t.Scale.Y = clampScaleComponent(t.Scale.Y)
			t.Scale.Z = clampScaleComponent(t.Scale.Z)
		}
	}
}

func vector3Finite(v Vector3) bool {
	return isFinite32(v.X) && isFinite32(v.Y) && isFinite32(v.Z)
}

func quaternionFinite(q Quaternion) bool {
	return isFinite32(q.X) && isFinite32(q.Y) && isFinite32(q.Z) && isFinite32(q.W)
}

func clampScaleComponent(x float32) float32 {
	if x < 0 {
		x = -x
	}
	if x < 1e-5 {
		return 1e-5
	}
	return x
}
