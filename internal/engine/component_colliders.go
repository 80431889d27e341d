package engine

// CapsuleDirection names a CapsuleCollider's long axis, matching the
// engine's X/Y/Z axis-index convention.
type CapsuleDirection int32

const (
	CapsuleDirectionX CapsuleDirection = 0
	CapsuleDirectionY CapsuleDirection = 1
	CapsuleDirectionZ CapsuleDirection = 2
)

// BoxCollider (VERSION 2). Version 0 wrote an extra, now-ignored Extents
// vector ahead of size; versions below 2 carried the deprecated
// trigger/physic-material fields after size.
type BoxCollider struct {
	Center Vector3
	Size   Vector3
}

func (*BoxCollider) ComponentVersion() int32 { return 2 }

func (c *BoxCollider) Accept(v Visitor, version int32) error {
	if err := v.VisitVector3(&c.Center); err != nil {
		return err
	}
	if version == 0 {
		var extents Vector3
		if err := v.VisitVector3(&extents); err != nil {
			return err
		}
	}
	if err := v.VisitVector3(&c.Size); err != nil {
		return err
	}
	if version < 2 {
		return v.VisitSerialColliderDeprecated()
	}
	return nil
}

// CapsuleCollider (VERSION 1). Direction was introduced at version 1;
// version 0 carries the deprecated legacy collider fields in its place.
type CapsuleCollider struct {
	Center    Vector3
	Radius    float32
	Height    float32
	Direction CapsuleDirection
}

func (*CapsuleCollider) ComponentVersion() int32 { return 1 }

func (c *CapsuleCollider) Accept(v Visitor, version int32) error {
	if err := v.VisitVector3(&c.Center); err != nil {
		return err
	}
	if err := v.VisitF32(&c.Radius); err != nil {
		return err
	}
	if err := v.VisitF32(&c.Height); err != nil {
		return err
	}
	if version >= 1 {
		return VisitEnum(v, &c.Direction)
	}
	return v.VisitSerialColliderDeprecated()
}

// SphereCollider (VERSION 1). Version 0 carries the deprecated legacy
// collider fields in place of nothing (there is no version-gated field
// here besides the legacy tail).
type SphereCollider struct {
	Center Vector3
	Radius float32
}

func (*SphereCollider) ComponentVersion() int32 { return 1 }

func (c *SphereCollider) Accept(v Visitor, version int32) error {
	if err := v.VisitVector3(&c.Center); err != nil {
		return err
	}
	if err := v.VisitF32(&c.Radius); err != nil {
		return err
	}
	if version == 0 {
		return v.VisitSerialColliderDeprecated()
	}
	return nil
}
