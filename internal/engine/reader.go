package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"unicode/utf16"

	"github.com/seeker14491/distance-bytes/internal/scopeerr"
)

// Reader is the In-direction Visitor implementation: it pulls a decoded
// game-object tree out of a seekable byte stream.
type Reader struct {
	r      io.ReadSeeker
	stack  []scopeInfo
	logger *slog.Logger
}

// NewReader wraps a seekable stream for decoding. A nil logger falls back
// to slog.Default().
func NewReader(r io.ReadSeeker, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{r: r, logger: logger}
}

func (r *Reader) Direction() Direction { return DirectionIn }

func (r *Reader) pos() int64 {
	off, err := r.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return off
}

func (r *Reader) seekAbs(off int64) error {
	_, err := r.r.Seek(off, io.SeekStart)
	return err
}

func (r *Reader) top() (scopeInfo, bool) {
	if len(r.stack) == 0 {
		return scopeInfo{}, false
	}
	return r.stack[len(r.stack)-1], true
}

// checkBounds enforces the scope-bounds guard: if reading size more bytes
// would overstep the innermost active scope, the stream is advanced to
// the scope end and the read is skipped (the target is left untouched).
// Returns false when the read must be skipped.
func (r *Reader) checkBounds(size int64) bool {
	top, ok := r.top()
	if !ok {
		return true
	}
	if r.pos()+size > top.end {
		_ = r.seekAbs(top.end)
		return false
	}
	return true
}

func (r *Reader) readRaw(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: %v", scopeerr.ErrShortRead, err)
		}
		return err
	}
	return nil
}

func (r *Reader) readRawI32() (int32, error) {
	var buf [4]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (r *Reader) readRawU32() (uint32, error) {
	var buf [4]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (r *Reader) readRawI64() (int64, error) {
	var buf [8]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func (r *Reader) readRawF32() (float32, error) {
	var buf [4]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

func (r *Reader) readRawF64() (float64, error) {
	var buf [8]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func (r *Reader) readRawByte() (byte, error) {
	var buf [1]byte
	if err := r.readRaw(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// peekEmptyMarker implements the empty-marker protocol's peek-and-rewind:
// it consumes four bytes only when they encode the empty marker;
// otherwise it rewinds. A short read at end-of-stream also counts as the
// marker being present (the field is absent), per the format's
// forward-compatibility contract, and rewinds by whatever was consumed.
func (r *Reader) peekEmptyMarker() (bool, error) {
	buf := make([]byte, 4)
	n, err := io.ReadFull(r.r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	if n < 4 {
		if n > 0 {
			if _, serr := r.r.Seek(-int64(n), io.SeekCurrent); serr != nil {
				return false, serr
			}
		}
		return true, nil
	}
	if int32(binary.LittleEndian.Uint32(buf)) == EmptyMark {
		return true, nil
	}
	if _, serr := r.r.Seek(-4, io.SeekCurrent); serr != nil {
		return false, serr
	}
	return false, nil
}

func (r *Reader) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.logger.Warn(msg, slog.String("scopes", scopeStackString(r.stack)))
}

// EnterScope expects the next scope to carry the given mark, reads its
// length, and pushes it onto the scope stack. A mismatched mark is
// tolerated (warned, then entered anyway) so drift from unknown
// producers never aborts decoding.
func (r *Reader) EnterScope(expectedMark int32, name string) error {
	mark, err := r.readRawI32()
	if err != nil {
		return err
	}
	if mark != expectedMark {
		r.warnf("unexpected scope mark %d for %s, expected %d", mark, name, expectedMark)
	}
	return r.enterScopeWithMark(mark, name)
}

// EnterAnyScope reads whatever mark is present without an expectation,
// returning it so the caller (component dispatch) can decide what to do.
func (r *Reader) EnterAnyScope(name string) (int32, error) {
	mark, err := r.readRawI32()
	if err != nil {
		return 0, err
	}
	if err := r.enterScopeWithMark(mark, name); err != nil {
		return 0, err
	}
	return mark, nil
}

func (r *Reader) enterScopeWithMark(mark int32, name string) error {
	length, err := r.readRawI64()
	if err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: negative scope length %d", scopeerr.ErrScopeOverflow, length)
	}
	start := r.pos()
	r.stack = append(r.stack, scopeInfo{name: name, mark: mark, start: start, end: start + length})
	return nil
}

// ExitScope pops the innermost scope and reconciles the stream position
// with its recorded end, warning (never failing) on understep or
// overstep.
func (r *Reader) ExitScope() error {
	if len(r.stack) == 0 {
		return fmt.Errorf("distance-bytes: scope stack underflow on exit")
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]

	cur := r.pos()
	switch {
	case cur < top.end:
		r.warnf("scope %s understepped: consumed %d of %d bytes", top, cur-top.start, top.end-top.start)
	case cur > top.end:
		r.warnf("scope %s overstepped: consumed %d of %d bytes", top, cur-top.start, top.end-top.start)
	}
	return r.seekAbs(top.end)
}

func (r *Reader) SetCurrentScopeName(name string) {
	if len(r.stack) == 0 {
		return
	}
	r.stack[len(r.stack)-1].name = name
}

// --- Visitor implementation ---

func (r *Reader) VisitBool(v *bool) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(1) {
		return nil
	}
	b, err := r.readRawByte()
	if err != nil {
		return err
	}
	*v = b != 0
	return nil
}

func (r *Reader) VisitU8(v *byte) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(1) {
		return nil
	}
	b, err := r.readRawByte()
	if err != nil {
		return err
	}
	*v = b
	return nil
}

func (r *Reader) VisitI32(v *int32) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(4) {
		return nil
	}
	n, err := r.readRawI32()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (r *Reader) VisitU32(v *uint32) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(4) {
		return nil
	}
	n, err := r.readRawU32()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (r *Reader) VisitI64(v *int64) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(8) {
		return nil
	}
	n, err := r.readRawI64()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (r *Reader) VisitF32(v *float32) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(4) {
		return nil
	}
	n, err := r.readRawF32()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (r *Reader) VisitF64(v *float64) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if !r.checkBounds(8) {
		return nil
	}
	n, err := r.readRawF64()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (r *Reader) VisitDateTime(d *DateTime) error {
	var raw int64
	if err := r.VisitI64(&raw); err != nil {
		return err
	}
	*d = DateTime(raw)
	return nil
}

func (r *Reader) visitVector3Fields(v *Vector3) error {
	if !r.checkBounds(12) {
		return nil
	}
	x, err := r.readRawF32()
	if err != nil {
		return err
	}
	y, err := r.readRawF32()
	if err != nil {
		return err
	}
	z, err := r.readRawF32()
	if err != nil {
		return err
	}
	*v = Vector3{x, y, z}
	return nil
}

func (r *Reader) visitQuaternionFields(q *Quaternion) error {
	if !r.checkBounds(16) {
		return nil
	}
	x, err := r.readRawF32()
	if err != nil {
		return err
	}
	y, err := r.readRawF32()
	if err != nil {
		return err
	}
	z, err := r.readRawF32()
	if err != nil {
		return err
	}
	w, err := r.readRawF32()
	if err != nil {
		return err
	}
	*q = Quaternion{x, y, z, w}
	return nil
}

func (r *Reader) VisitVector3(v *Vector3) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	return r.visitVector3Fields(v)
}

func (r *Reader) VisitQuaternion(q *Quaternion) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	return r.visitQuaternionFields(q)
}

func (r *Reader) VisitOptionalVector3(v **Vector3) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		*v = nil
		return nil
	}
	var val Vector3
	if err := r.visitVector3Fields(&val); err != nil {
		return err
	}
	*v = &val
	return nil
}

func (r *Reader) VisitOptionalQuaternion(q **Quaternion) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		*q = nil
		return nil
	}
	var val Quaternion
	if err := r.visitQuaternionFields(&val); err != nil {
		return err
	}
	*q = &val
	return nil
}

func (r *Reader) VisitReference(guid *uint32) error {
	if !r.checkBounds(4) {
		return nil
	}
	n, err := r.readRawU32()
	if err != nil {
		return err
	}
	*guid = n
	return nil
}

func (r *Reader) VisitReferenceArray(guids *[]uint32) error {
	return VisitArray(r, guids, func(v Visitor, item *uint32) error {
		return v.VisitReference(item)
	})
}

func (r *Reader) VisitArrayHeader(count *int32) error {
	mark, err := r.readRawI32()
	if err != nil {
		return err
	}
	if mark != MarkArray {
		r.warnf("expected array mark, found %d", mark)
		*count = -1
		return nil
	}
	n, err := r.readRawI32()
	if err != nil {
		return err
	}
	*count = n
	return nil
}

func (r *Reader) VisitDictionaryHeader(count *int32) error {
	mark, err := r.readRawI32()
	if err != nil {
		return err
	}
	if mark != MarkDictionary {
		r.warnf("expected dictionary mark, found %d", mark)
		*count = -1
		return nil
	}
	n, err := r.readRawI32()
	if err != nil {
		return err
	}
	*count = n
	return nil
}

func (r *Reader) VisitChildren(children *[]GameObject) error {
	if err := r.EnterScope(MarkChildren, "Children"); err != nil {
		return err
	}
	var count int32
	if err := r.VisitI32(&count); err != nil {
		return err
	}
	if count < 0 {
		count = 0
	}
	r.SetCurrentScopeName(fmt.Sprintf("ChildNum:%d", count))
	result := make([]GameObject, count)
	for i := range result {
		obj, err := r.ReadGameObject()
		if err != nil {
			return err
		}
		result[i] = obj
	}
	*children = result
	return r.ExitScope()
}

func (r *Reader) VisitColor(c *Color) error {
	if err := r.VisitF32(&c.R); err != nil {
		return err
	}
	if err := r.VisitF32(&c.G); err != nil {
		return err
	}
	if err := r.VisitF32(&c.B); err != nil {
		return err
	}
	return r.VisitF32(&c.A)
}

func (r *Reader) VisitMaterialColorInfo(m *MaterialColorInfo) error {
	if err := r.VisitString(&m.Name); err != nil {
		return err
	}
	return r.VisitColor(&m.Color)
}

func (r *Reader) VisitMaterialInfo(m *MaterialInfo) error {
	if err := r.VisitString(&m.MaterialName); err != nil {
		return err
	}
	return VisitArray(r, &m.Colors, func(v Visitor, item *MaterialColorInfo) error {
		return v.VisitMaterialColorInfo(item)
	})
}

func (r *Reader) VisitSerialColliderDeprecated() error {
	var isTrigger bool
	if err := r.VisitBool(&isTrigger); err != nil {
		return err
	}
	var name *string
	return r.VisitString(&name)
}

// VisitString reads a nullable length-prefixed UTF-16LE string, honoring
// the empty-marker protocol ahead of the length prefix.
func (r *Reader) VisitString(s **string) error {
	empty, err := r.peekEmptyMarker()
	if err != nil {
		return err
	}
	if empty {
		*s = nil
		return nil
	}

	byteLen, err := r.readVarLen()
	if err != nil {
		return err
	}
	if byteLen%2 != 0 {
		return fmt.Errorf("%w: odd string byte length %d", scopeerr.ErrInvalidUTF16, byteLen)
	}
	buf := make([]byte, byteLen)
	if byteLen > 0 {
		if err := r.readRaw(buf); err != nil {
			return err
		}
	}
	units := make([]uint16, byteLen/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00 && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] < 0xE000:
			i++
		case u >= 0xD800 && u < 0xE000:
			return fmt.Errorf("%w: unpaired surrogate at code unit %d", scopeerr.ErrInvalidUTF16, i)
		}
	}
	decoded := string(utf16.Decode(units))
	*s = &decoded
	return nil
}

// readVarLen decodes the 7-bit little-endian continuation length prefix,
// at most 5 bytes.
func (r *Reader) readVarLen() (int, error) {
	var result int
	for shift := 0; shift < 35; shift += 7 {
		b, err := r.readRawByte()
		if err != nil {
			return 0, err
		}
		result |= int(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, fmt.Errorf("%w: string length prefix too long", scopeerr.ErrScopeOverflow)
}
