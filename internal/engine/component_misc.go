package engine

// CustomName (VERSION 0). A single override name shown in place of the
// game object's prefab-derived display name.
type CustomName struct {
	Name *string
}

func (*CustomName) ComponentVersion() int32 { return 0 }

func (c *CustomName) Accept(v Visitor, version int32) error {
	return v.VisitString(&c.Name)
}

// GroupInspectChildrenType controls whether a Group's children are
// shown expanded in the level editor's hierarchy view.
type GroupInspectChildrenType int32

const (
	GroupInspectChildrenDefault GroupInspectChildrenType = 0
	GroupInspectChildrenAlways  GroupInspectChildrenType = 1
	GroupInspectChildrenNever   GroupInspectChildrenType = 2
)

// Group (VERSION 1). Versions below 1 predate the inspectChildren field
// entirely; it keeps its zero-value default.
type Group struct {
	InspectChildren GroupInspectChildrenType
}

func (*Group) ComponentVersion() int32 { return 1 }

func (g *Group) Accept(v Visitor, version int32) error {
	if version >= 1 {
		return VisitEnum(v, &g.InspectChildren)
	}
	if v.Direction() == DirectionIn {
		g.InspectChildren = GroupInspectChildrenDefault
	}
	return nil
}

// TrackLink (VERSION 2). Parent and Link are GUID back-references to
// the track segment and link object this node sits on; ManipulatorNode
// was also a reference at version 1, widened to a plain ID at version
// 2 alongside the new ownership flag.
type TrackLink struct {
	Parent                         uint32
	Link                           uint32
	ManipulatorNode                uint32
	OwnedNodeBetweenConnectedLinks bool
}

func (*TrackLink) ComponentVersion() int32 { return 2 }

func (t *TrackLink) Accept(v Visitor, version int32) error {
	switch version {
	case 1:
		if err := v.VisitReference(&t.Parent); err != nil {
			return err
		}
		if err := v.VisitReference(&t.Link); err != nil {
			return err
		}
		return v.VisitReference(&t.ManipulatorNode)
	case 2:
		if err := v.VisitReference(&t.Parent); err != nil {
			return err
		}
		if err := v.VisitReference(&t.Link); err != nil {
			return err
		}
		if err := v.VisitU32(&t.ManipulatorNode); err != nil {
			return err
		}
		return v.VisitBool(&t.OwnedNodeBetweenConnectedLinks)
	default:
		return nil
	}
}

// MeshRenderer (VERSION 2). Versions below 1 carried a single shared
// material slot and no shadow flags; version 1 and up carry the shadow
// flags plus a proper material array.
type MeshRenderer struct {
	CastShadows    bool
	ReceiveShadows bool
	Materials      []MaterialInfo
}

func (*MeshRenderer) ComponentVersion() int32 { return 2 }

func (m *MeshRenderer) Accept(v Visitor, version int32) error {
	if version < 1 {
		var legacy MaterialInfo
		if err := v.VisitMaterialInfo(&legacy); err != nil {
			return err
		}
		if v.Direction() == DirectionIn {
			m.Materials = []MaterialInfo{legacy}
		}
		return nil
	}

	if err := v.VisitBool(&m.CastShadows); err != nil {
		return err
	}
	if err := v.VisitBool(&m.ReceiveShadows); err != nil {
		return err
	}
	return VisitArray(v, &m.Materials, func(v Visitor, item *MaterialInfo) error {
		return v.VisitMaterialInfo(item)
	})
}
