package engine

// Direction distinguishes a read pass from a write pass. Schema code is
// direction-agnostic except for post-read normalization, which checks
// this value explicitly.
type Direction int

const (
	DirectionIn  Direction = iota // reading: populating in-memory values from the wire
	DirectionOut                 // writing: emitting in-memory values to the wire
)

// Visitor is the single abstraction a component schema's Accept method
// drives to read or write every field it owns. One Reader and one Writer
// each implement this contract; schema code never branches on which one
// it's talking to except via Direction().
type Visitor interface {
	Direction() Direction

	VisitBool(v *bool) error
	VisitI32(v *int32) error
	VisitU32(v *uint32) error
	VisitI64(v *int64) error
	VisitF32(v *float32) error
	VisitF64(v *float64) error
	VisitU8(v *byte) error

	// VisitString visits a nullable length-prefixed UTF-16 string. *s may
	// be nil on entry (write side) or come back nil (read side, absent).
	VisitString(s **string) error

	VisitDateTime(d *DateTime) error

	// VisitVector3/VisitQuaternion carry "keep current value on empty
	// marker" semantics: a mandatory field whose wire slot holds the
	// empty marker is left untouched rather than becoming optional.
	VisitVector3(v *Vector3) error
	VisitQuaternion(q *Quaternion) error

	// VisitOptionalVector3/VisitOptionalQuaternion carry true Option<T>
	// semantics, used by fields the data model documents as optional
	// (Transform's position/rotation/scale).
	VisitOptionalVector3(v **Vector3) error
	VisitOptionalQuaternion(q **Quaternion) error

	// VisitReference visits a raw GUID back-reference; the empty marker
	// is never recognized here.
	VisitReference(guid *uint32) error
	VisitReferenceArray(guids *[]uint32) error

	// VisitArrayHeader and VisitDictionaryHeader read/write just the
	// framing (mark + count); callers loop the element count themselves,
	// which is how VisitArray/VisitDictionary below provide a generic,
	// per-element visit on top of a non-generic interface method.
	VisitArrayHeader(count *int32) error
	VisitDictionaryHeader(count *int32) error

	VisitChildren(children *[]GameObject) error

	VisitColor(c *Color) error
	VisitMaterialInfo(m *MaterialInfo) error
	VisitMaterialColorInfo(m *MaterialColorInfo) error

	// VisitSerialColliderDeprecated visits the legacy collider fields
	// (IsTrigger bool, PhysicMaterialName string) that old collider
	// schema versions still carry on the wire but which no longer
	// influence in-memory state.
	VisitSerialColliderDeprecated() error
}

// VisitEnum round-trips an integer-backed enum through the wire's i32
// representation, only writing the decoded value back on a read pass.
func VisitEnum[E ~int32](v Visitor, e *E) error {
	i := int32(*e)
	if err := v.VisitI32(&i); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		*e = E(i)
	}
	return nil
}

// VisitArray visits an array-framed field of arbitrary element type: the
// header (mark + count) via VisitArrayHeader, then each element via the
// supplied function.
func VisitArray[T any](v Visitor, list *[]T, each func(v Visitor, item *T) error) error {
	var count int32
	if v.Direction() == DirectionOut {
		count = int32(len(*list))
	}
	if err := v.VisitArrayHeader(&count); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		if count < 0 {
			count = 0
		}
		*list = make([]T, count)
	}
	for i := range *list {
		if err := each(v, &(*list)[i]); err != nil {
			return err
		}
	}
	return nil
}

// VisitDictionary visits a dictionary-framed field: the header (mark +
// count), then count key/value pairs via the supplied functions. On a
// read pass the map is (re)allocated.
func VisitDictionary[K comparable, V any](v Visitor, m *map[K]V, visitKey func(v Visitor, k *K) error, visitValue func(v Visitor, val *V) error) error {
	var count int32
	if v.Direction() == DirectionOut {
		count = int32(len(*m))
	}
	if err := v.VisitDictionaryHeader(&count); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		if count < 0 {
			count = 0
		}
		*m = make(map[K]V, count)
		for i := int32(0); i < count; i++ {
			var k K
			var val V
			if err := visitKey(v, &k); err != nil {
				return err
			}
			if err := visitValue(v, &val); err != nil {
				return err
			}
			(*m)[k] = val
		}
		return nil
	}

	for k, val := range *m {
		kk, vv := k, val
		if err := visitKey(v, &kk); err != nil {
			return err
		}
		if err := visitValue(v, &vv); err != nil {
			return err
		}
	}
	return nil
}
