package engine

import "fmt"

// componentFactory builds a fresh, default-valued typed schema instance
// for the component kinds this codec understands structurally. A kind
// absent from this table round-trips as opaque RawComponentData.
var componentFactory = map[ComponentID]func() ComponentData{
	ComponentTransform:       func() ComponentData { return &Transform{} },
	ComponentBoxCollider:     func() ComponentData { return &BoxCollider{Size: OnesVector3} },
	ComponentCapsuleCollider: func() ComponentData { return &CapsuleCollider{Radius: 0.5, Height: 2.0, Direction: CapsuleDirectionY} },
	ComponentSphereCollider:  func() ComponentData { return &SphereCollider{Radius: 0.5} },
	ComponentCustomName:      func() ComponentData { return &CustomName{} },
	ComponentGroup:           func() ComponentData { return &Group{} },
	ComponentTrackLink:       func() ComponentData { return &TrackLink{} },
	ComponentMeshRenderer:    func() ComponentData { return &MeshRenderer{} },
	ComponentZEventListener:  func() ComponentData { return &ZEventListener{} },
	ComponentZEventTrigger:   func() ComponentData { return &ZEventTrigger{} },
	ComponentGoldenSimples:   func() ComponentData { return &GoldenSimples{} },
	ComponentAnimated: func() ComponentData { a := NewAnimated(); return &a },
	ComponentProfileProgress: func() ComponentData { return &ProfileProgress{} },
	ComponentProfileStats:    func() ComponentData { return &ProfileStats{} },
	ComponentCarReplayData:   func() ComponentData { return &CarReplayData{} },
	ComponentLevelInfos:      func() ComponentData { return &LevelInfos{} },
}

// readComponents reads a GameObject's component list: a plain i32 count
// (no surrounding scope of its own), followed by that many components.
// Components with an unrecognized scope mark, named-unknown components,
// and the Invalid ID are skipped rather than appended; a numeric ID with
// no typed schema (including one missing from ComponentID) is kept as
// RawComponentData, matching the format's forward-compatibility contract.
func (r *Reader) readComponents() ([]Component, error) {
	var count int32
	if err := r.VisitI32(&count); err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	components := make([]Component, 0, count)
	for i := int32(0); i < count; i++ {
		c, ok, err := r.readComponent()
		if err != nil {
			return nil, err
		}
		if ok {
			components = append(components, c)
		}
	}
	return components, nil
}

// readComponent reads one component scope. The scope mark selects the
// header shape: 22222222/33333333/32323232 carry a numeric componentID
// plus version, 23232323 carries a name string in place of a typed ID
// (always unknown to this codec, logged and skipped), anything else is
// an invalid mark (logged and skipped). The bool result is false when
// the component was skipped and should not appear in the component list.
func (r *Reader) readComponent() (Component, bool, error) {
	mark, err := r.readRawI32()
	if err != nil {
		return Component{}, false, err
	}

	id := ComponentInvalid
	var version int32
	var name string

	switch {
	case isComponentMark(mark):
		if err := r.enterScopeWithMark(mark, "Component"); err != nil {
			return Component{}, false, err
		}
		var rawID int32
		if err := r.VisitI32(&rawID); err != nil {
			return Component{}, false, err
		}
		id = ComponentID(rawID)
		if _, known := componentIDNames[id]; !known {
			r.warnf("unknown componentID %d", rawID)
		}
		name = id.String()
		if err := r.VisitI32(&version); err != nil {
			return Component{}, false, err
		}
	case mark == MarkComponentNamed:
		if err := r.enterScopeWithMark(mark, "NamedComponent"); err != nil {
			return Component{}, false, err
		}
		var versionName *string
		if err := r.VisitString(&versionName); err != nil {
			return Component{}, false, err
		}
		if versionName != nil {
			name = *versionName
		}
		r.warnf("named-unknown component %q: skipping", name)
	default:
		if err := r.enterScopeWithMark(mark, "InvalidComponent"); err != nil {
			return Component{}, false, err
		}
		name = "Invalid"
		r.warnf("invalid component mark %d", mark)
	}

	var guid uint32
	if err := r.VisitU32(&guid); err != nil {
		return Component{}, false, err
	}
	r.SetCurrentScopeName(fmt.Sprintf("Comp:%s", name))

	if id == ComponentInvalid {
		if err := r.ExitScope(); err != nil {
			return Component{}, false, err
		}
		return Component{}, false, nil
	}

	top, _ := r.top()
	isDefault := r.pos() == top.end

	var data ComponentData
	if factory, ok := componentFactory[id]; ok {
		inst := factory()
		if !isDefault {
			if err := inst.Accept(r, version); err != nil {
				return Component{}, false, err
			}
		}
		data = inst
	} else if isDefault {
		data = &RawComponentData{}
	} else {
		remaining := top.end - r.pos()
		buf := make([]byte, remaining)
		if err := r.readRaw(buf); err != nil {
			return Component{}, false, err
		}
		data = &RawComponentData{Bytes: buf}
	}

	if err := r.ExitScope(); err != nil {
		return Component{}, false, err
	}

	return Component{ID: id, Version: version, Guid: guid, Data: data}, true, nil
}

// writeComponents writes a GameObject's component list: the count, then
// each component in turn.
func (w *Writer) writeComponents(components []Component) error {
	count := int32(len(components))
	if err := w.VisitI32(&count); err != nil {
		return err
	}
	for i := range components {
		if err := w.writeComponent(&components[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeComponent writes one component scope, always under the canonical
// mark 32323232 regardless of which mark it was originally read under.
func (w *Writer) writeComponent(c *Component) error {
	if err := w.StartScope(MarkComponentCanon); err != nil {
		return err
	}

	rawID := int32(c.ID)
	if err := w.VisitI32(&rawID); err != nil {
		return err
	}

	version := c.ComponentVersion()
	if err := w.VisitI32(&version); err != nil {
		return err
	}

	if err := w.VisitU32(&c.Guid); err != nil {
		return err
	}

	if raw, ok := c.Data.(*RawComponentData); ok {
		if err := w.writeRaw(raw.Bytes); err != nil {
			return err
		}
	} else if err := c.Data.Accept(w, version); err != nil {
		return err
	}

	return w.EndScope()
}

// ComponentVersion resolves to the underlying ComponentData's version,
// or to the version a raw component was originally read at.
func (c *Component) ComponentVersion() int32 {
	if c.Data == nil {
		return c.Version
	}
	if _, ok := c.Data.(*RawComponentData); ok {
		return c.Version
	}
	return c.Data.ComponentVersion()
}
