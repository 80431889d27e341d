package engine

import "fmt"

// GameObject is a named tree node: a GUID, an ordered list of components,
// and (via a Transform component's children) possibly nested objects.
type GameObject struct {
	Name       string
	Guid       uint32
	Components []Component
}

// Component is one entry of a GameObject's component list: a numeric ID,
// the on-wire schema version it was read at (or, for a freshly
// constructed component, the version it will be written at), a
// file-unique GUID, and its payload.
type Component struct {
	ID      ComponentID
	Version int32
	Guid    uint32
	Data    ComponentData
}

// ComponentData is implemented by every typed component schema and by
// RawComponentData, the byte-preserving fallback for the ~200 component
// kinds this spec does not give a typed schema.
type ComponentData interface {
	// ComponentVersion returns the current schema VERSION this type
	// writes at, regardless of what version was read.
	ComponentVersion() int32
	// Accept drives the shared read/write path: v.Direction() tells the
	// implementation which way data is flowing. version is the on-wire
	// version for a read, or ComponentVersion() for a write.
	Accept(v Visitor, version int32) error
}

// RawComponentData is the opaque byte-preserving fallback for every
// component kind without a typed schema: the exact bytes between the
// header and the scope end, re-emitted verbatim on write.
type RawComponentData struct {
	Bytes []byte
}

func (RawComponentData) ComponentVersion() int32 { return 0 }

func (r *RawComponentData) Accept(v Visitor, version int32) error {
	// RawComponentData never drives the visitor: the reader copies bytes
	// directly from the stream and the writer copies them directly to
	// the sink (see readComponent/writeComponent below), since its
	// payload has no field schema to walk.
	return nil
}

// ReadGameObject reads one GameObject scope (mark 66666666): name,
// historical prefab string (discarded), guid, then its component list.
func (r *Reader) ReadGameObject() (GameObject, error) {
	if err := r.EnterScope(MarkGameObject, "GameObject"); err != nil {
		return GameObject{}, err
	}

	var name *string
	if err := r.VisitString(&name); err != nil {
		return GameObject{}, err
	}
	nameStr := ""
	if name != nil {
		nameStr = *name
	}
	r.SetCurrentScopeName(fmt.Sprintf("GO:%s", nameStr))

	var prefab *string
	if err := r.VisitString(&prefab); err != nil {
		return GameObject{}, err
	}

	var guid uint32
	if err := r.VisitU32(&guid); err != nil {
		return GameObject{}, err
	}

	components, err := r.readComponents()
	if err != nil {
		return GameObject{}, err
	}

	if err := r.ExitScope(); err != nil {
		return GameObject{}, err
	}

	return GameObject{Name: nameStr, Guid: guid, Components: components}, nil
}

// WriteGameObject writes one GameObject scope, mirroring ReadGameObject
// exactly: name, an empty historical prefab string, guid, component
// list, with the scope length patched on exit.
func (w *Writer) WriteGameObject(obj *GameObject) error {
	if err := w.StartScope(MarkGameObject); err != nil {
		return err
	}

	name := &obj.Name
	if err := w.VisitString(&name); err != nil {
		return err
	}

	prefab := ""
	emptyPrefab := &prefab
	if err := w.VisitString(&emptyPrefab); err != nil {
		return err
	}

	if err := w.VisitU32(&obj.Guid); err != nil {
		return err
	}

	if err := w.writeComponents(obj.Components); err != nil {
		return err
	}

	return w.EndScope()
}

// ReadGameObjectFromStream is the public entry point: decode exactly one
// root game object from a seekable byte source.
func ReadGameObjectFromStream(r *Reader) (GameObject, error) {
	return r.ReadGameObject()
}

// WriteGameObjectToStream is the public entry point: encode exactly one
// root game object to a seekable byte sink.
func WriteGameObjectToStream(w *Writer, obj *GameObject) error {
	return w.WriteGameObject(obj)
}
