package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"
)

// Writer is the Out-direction Visitor implementation: it encodes a
// game-object tree to a seekable byte sink, patching scope lengths on
// exit since payload sizes aren't known in advance.
type Writer struct {
	w     io.WriteSeeker
	stack []int64 // start offsets (just past each scope's header) awaiting a length patch
}

// NewWriter wraps a seekable sink for encoding.
func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Direction() Direction { return DirectionOut }

func (w *Writer) pos() int64 {
	off, _ := w.w.Seek(0, io.SeekCurrent)
	return off
}

func (w *Writer) writeRaw(buf []byte) error {
	_, err := w.w.Write(buf)
	return err
}

func (w *Writer) writeRawI32(v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	return w.writeRaw(buf[:])
}

func (w *Writer) writeRawU32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.writeRaw(buf[:])
}

func (w *Writer) writeRawI64(v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return w.writeRaw(buf[:])
}

func (w *Writer) writeRawF32(v float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return w.writeRaw(buf[:])
}

func (w *Writer) writeRawF64(v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return w.writeRaw(buf[:])
}

func (w *Writer) writeEmptyMarker() error {
	return w.writeRawI32(EmptyMark)
}

// StartScope emits a scope header (mark + reserved length slot) and
// pushes the position to patch once the payload is known.
func (w *Writer) StartScope(mark int32) error {
	if err := w.writeRawI32(mark); err != nil {
		return err
	}
	if err := w.writeRawI64(0); err != nil { // placeholder, patched in EndScope
		return err
	}
	w.stack = append(w.stack, w.pos())
	return nil
}

// EndScope patches the most recently started scope's length slot with
// the number of bytes written since StartScope.
func (w *Writer) EndScope() error {
	if len(w.stack) == 0 {
		return fmt.Errorf("distance-bytes: scope stack underflow on exit")
	}
	start := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	cur := w.pos()
	sectionLen := cur - start
	if _, err := w.w.Seek(start-8, io.SeekStart); err != nil {
		return err
	}
	if err := w.writeRawI64(sectionLen); err != nil {
		return err
	}
	if _, err := w.w.Seek(cur, io.SeekStart); err != nil {
		return err
	}
	return nil
}

// --- Visitor implementation ---

func (w *Writer) VisitBool(v *bool) error {
	var b byte
	if *v {
		b = 1
	}
	return w.writeRaw([]byte{b})
}

func (w *Writer) VisitU8(v *byte) error {
	return w.writeRaw([]byte{*v})
}

func (w *Writer) VisitI32(v *int32) error {
	if *v == InvalidInt {
		return w.writeEmptyMarker()
	}
	return w.writeRawI32(*v)
}

func (w *Writer) VisitU32(v *uint32) error {
	if int32(*v) == InvalidInt {
		return w.writeEmptyMarker()
	}
	return w.writeRawU32(*v)
}

func (w *Writer) VisitI64(v *int64) error {
	if *v == int64(InvalidInt) {
		return w.writeEmptyMarker()
	}
	return w.writeRawI64(*v)
}

func (w *Writer) VisitF32(v *float32) error {
	if approxEqualF32(*v, InvalidFloat) {
		return w.writeEmptyMarker()
	}
	return w.writeRawF32(*v)
}

func (w *Writer) VisitF64(v *float64) error {
	return w.writeRawF64(*v)
}

func (w *Writer) VisitDateTime(d *DateTime) error {
	raw := int64(*d)
	return w.VisitI64(&raw)
}

func (w *Writer) writeVector3Fields(v Vector3) error {
	if err := w.writeRawF32(v.X); err != nil {
		return err
	}
	if err := w.writeRawF32(v.Y); err != nil {
		return err
	}
	return w.writeRawF32(v.Z)
}

func (w *Writer) writeQuaternionFields(q Quaternion) error {
	if err := w.writeRawF32(q.X); err != nil {
		return err
	}
	if err := w.writeRawF32(q.Y); err != nil {
		return err
	}
	if err := w.writeRawF32(q.Z); err != nil {
		return err
	}
	return w.writeRawF32(q.W)
}

func (w *Writer) VisitVector3(v *Vector3) error {
	if approxEqualVector3(*v, InvalidVector3) {
		return w.writeEmptyMarker()
	}
	return w.writeVector3Fields(*v)
}

func (w *Writer) VisitQuaternion(q *Quaternion) error {
	if approxEqualQuaternion(*q, InvalidQuaternion) {
		return w.writeEmptyMarker()
	}
	return w.writeQuaternionFields(*q)
}

func (w *Writer) VisitOptionalVector3(v **Vector3) error {
	if *v == nil {
		return w.writeEmptyMarker()
	}
	return w.writeVector3Fields(**v)
}

func (w *Writer) VisitOptionalQuaternion(q **Quaternion) error {
	if *q == nil {
		return w.writeEmptyMarker()
	}
	return w.writeQuaternionFields(**q)
}

func (w *Writer) VisitReference(guid *uint32) error {
	return w.writeRawU32(*guid)
}

func (w *Writer) VisitReferenceArray(guids *[]uint32) error {
	return VisitArray(w, guids, func(v Visitor, item *uint32) error {
		return v.VisitReference(item)
	})
}

func (w *Writer) VisitArrayHeader(count *int32) error {
	if err := w.writeRawI32(MarkArray); err != nil {
		return err
	}
	return w.writeRawI32(*count)
}

func (w *Writer) VisitDictionaryHeader(count *int32) error {
	if err := w.writeRawI32(MarkDictionary); err != nil {
		return err
	}
	return w.writeRawI32(*count)
}

func (w *Writer) VisitChildren(children *[]GameObject) error {
	if err := w.StartScope(MarkChildren); err != nil {
		return err
	}
	count := int32(len(*children))
	if err := w.VisitI32(&count); err != nil {
		return err
	}
	for i := range *children {
		if err := w.WriteGameObject(&(*children)[i]); err != nil {
			return err
		}
	}
	return w.EndScope()
}

func (w *Writer) VisitColor(c *Color) error {
	if err := w.VisitF32(&c.R); err != nil {
		return err
	}
	if err := w.VisitF32(&c.G); err != nil {
		return err
	}
	if err := w.VisitF32(&c.B); err != nil {
		return err
	}
	return w.VisitF32(&c.A)
}

func (w *Writer) VisitMaterialColorInfo(m *MaterialColorInfo) error {
	if err := w.VisitString(&m.Name); err != nil {
		return err
	}
	return w.VisitColor(&m.Color)
}

func (w *Writer) VisitMaterialInfo(m *MaterialInfo) error {
	if err := w.VisitString(&m.MaterialName); err != nil {
		return err
	}
	return VisitArray(w, &m.Colors, func(v Visitor, item *MaterialColorInfo) error {
		return v.VisitMaterialColorInfo(item)
	})
}

func (w *Writer) VisitSerialColliderDeprecated() error {
	isTrigger := false
	if err := w.VisitBool(&isTrigger); err != nil {
		return err
	}
	var name *string
	return w.VisitString(&name)
}

// VisitString writes a nullable length-prefixed UTF-16LE string, emitting
// the empty marker in place of the length prefix when the string is nil.
func (w *Writer) VisitString(s **string) error {
	if *s == nil {
		return w.writeEmptyMarker()
	}
	units := utf16.Encode([]rune(**s))
	byteLen := len(units) * 2
	if err := w.writeVarLen(byteLen); err != nil {
		return err
	}
	buf := make([]byte, byteLen)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return w.writeRaw(buf)
}

// writeVarLen encodes n as a 7-bit little-endian continuation integer, at
// most 5 bytes.
func (w *Writer) writeVarLen(n int) error {
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		if err := w.writeRaw([]byte{b}); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}
