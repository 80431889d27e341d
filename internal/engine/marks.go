package engine

// Scope marks. Every framed scope in the wire format begins with one of
// these i32 magics.
const (
	MarkArray            int32 = 11111111
	MarkDictionary       int32 = 12121212
	MarkComponentA       int32 = 22222222
	MarkComponentB       int32 = 33333333
	MarkComponentCanon   int32 = 32323232 // the mark the writer emits
	MarkComponentNamed   int32 = 23232323 // named-unknown component, todo
	MarkGeneral          int32 = 44444444
	MarkChildren         int32 = 55555555
	MarkGameObject       int32 = 66666666
	MarkLevelSettings    int32 = 88888888
	MarkLevel            int32 = 99999999
)

func isComponentMark(mark int32) bool {
	return mark == MarkComponentA || mark == MarkComponentB || mark == MarkComponentCanon
}

// scopeMarkString names a scope mark for diagnostics, matching every
// magic number this format defines.
func scopeMarkString(mark int32) string {
	switch mark {
	case MarkArray:
		return "Array"
	case MarkDictionary:
		return "Dictionary"
	case MarkComponentA:
		return "Component(22222222)"
	case MarkComponentB:
		return "Component(33333333)"
	case MarkComponentCanon:
		return "Component(32323232)"
	case MarkComponentNamed:
		return "NamedComponent"
	case MarkGeneral:
		return "General"
	case MarkChildren:
		return "Children"
	case MarkGameObject:
		return "GameObject"
	case MarkLevelSettings:
		return "LevelSettings"
	case MarkLevel:
		return "Level"
	case EmptyMark:
		return "Empty"
	default:
		return "Unknown"
	}
}
