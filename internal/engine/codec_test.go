package engine

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestMinimalGameObject decodes the worked example: a GameObject scope
// with name "A", an empty prefab, guid 1, and no components.
func TestMinimalGameObject(t *testing.T) {
	buf := &memBuffer{data: []byte{
		// mark 66666666 LE
		0xaa, 0x40, 0xf9, 0x03,
		// length = 12
		0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		// name "A": varlen 2, then UTF-16LE 'A'
		0x02, 0x41, 0x00,
		// prefab "": varlen 0
		0x00,
		// guid = 1
		0x01, 0x00, 0x00, 0x00,
		// numComponents = 0
		0x00, 0x00, 0x00, 0x00,
	}}

	r := NewReader(buf, discardLogger())
	obj, err := r.ReadGameObject()
	if err != nil {
		t.Fatalf("ReadGameObject: %v", err)
	}
	if obj.Name != "A" {
		t.Errorf("Name = %q, want %q", obj.Name, "A")
	}
	if obj.Guid != 1 {
		t.Errorf("Guid = %d, want 1", obj.Guid)
	}
	if len(obj.Components) != 0 {
		t.Errorf("Components = %v, want empty", obj.Components)
	}

	out := &memBuffer{}
	w := NewWriter(out)
	if err := w.WriteGameObject(&obj); err != nil {
		t.Fatalf("WriteGameObject: %v", err)
	}
	if !bytes.Equal(out.data, buf.data) {
		t.Errorf("re-encoded bytes = % x, want % x", out.data, buf.data)
	}
}

// TestEmptyMarkerTransform confirms a Transform position field encoded
// as the empty marker round-trips to a nil position and back to the
// same four bytes.
func TestEmptyMarkerTransform(t *testing.T) {
	tr := &Transform{Position: nil}

	out := &memBuffer{}
	w := NewWriter(out)
	if err := w.StartScope(MarkComponentCanon); err != nil {
		t.Fatal(err)
	}
	if err := tr.Accept(w, tr.ComponentVersion()); err != nil {
		t.Fatal(err)
	}
	if err := w.EndScope(); err != nil {
		t.Fatal(err)
	}

	want := []byte{0xFD, 0xFF, 0xFF, 0x7F}
	if len(out.data) < 16 || !bytes.Equal(out.data[12:16], want) {
		t.Errorf("position bytes = % x, want % x", out.data[12:16], want)
	}

	in := &memBuffer{data: out.data}
	r := NewReader(in, discardLogger())
	mark, err := r.EnterAnyScope("Component")
	if err != nil {
		t.Fatal(err)
	}
	if mark != MarkComponentCanon {
		t.Fatalf("mark = %d, want %d", mark, MarkComponentCanon)
	}
	got := &Transform{}
	if err := got.Accept(r, got.ComponentVersion()); err != nil {
		t.Fatal(err)
	}
	if got.Position != nil {
		t.Errorf("Position = %v, want nil", got.Position)
	}
}

// TestGoldenSimplesTextureRemap checks the worked example: version 2,
// imageIndex 46 remaps to 72.
func TestGoldenSimplesTextureRemap(t *testing.T) {
	gs := &GoldenSimples{ImageIndex: 46}
	gs.remapImageIndex(2)
	if gs.ImageIndex != 72 {
		t.Errorf("ImageIndex after remap = %d, want 72", gs.ImageIndex)
	}
}

// TestVariableLengthStringPrefix checks the worked example: a string
// whose UTF-16 byte length is 300 encodes its length prefix as the two
// bytes 0xAC 0x02.
func TestVariableLengthStringPrefix(t *testing.T) {
	runes := make([]rune, 150) // 150 UTF-16 code units == 300 bytes
	for i := range runes {
		runes[i] = 'x'
	}
	str := string(runes)
	ptr := &str

	out := &memBuffer{}
	w := NewWriter(out)
	if err := w.VisitString(&ptr); err != nil {
		t.Fatal(err)
	}

	want := []byte{0xAC, 0x02}
	if len(out.data) < 2 || !bytes.Equal(out.data[:2], want) {
		t.Errorf("length prefix = % x, want % x", out.data[:2], want)
	}
}

// TestScopeUnderstepTolerated verifies that a scope which declares more
// bytes than its schema reads is tolerated rather than treated as fatal.
func TestScopeUnderstepTolerated(t *testing.T) {
	buf := &memBuffer{data: []byte{
		0xaa, 0x40, 0xf9, 0x03, // GameObject mark
		0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // length = 20, more than consumed
		0x02, 0x41, 0x00, // name "A"
		0x00,             // prefab ""
		0x01, 0x00, 0x00, 0x00, // guid
		0x00, 0x00, 0x00, 0x00, // numComponents = 0
		0xAA, 0xAA, 0xAA, 0xAA, // trailing unconsumed bytes (understep)
	}}

	r := NewReader(buf, discardLogger())
	obj, err := r.ReadGameObject()
	if err != nil {
		t.Fatalf("ReadGameObject should tolerate understep, got error: %v", err)
	}
	if obj.Name != "A" {
		t.Errorf("Name = %q, want %q", obj.Name, "A")
	}
}

// TestUnknownComponentPassthrough confirms a component with an ID this
// codec has no typed schema for round-trips its raw bytes verbatim.
func TestUnknownComponentPassthrough(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	out := &memBuffer{}
	w := NewWriter(out)
	if err := w.StartScope(MarkComponentCanon); err != nil {
		t.Fatal(err)
	}
	rawID := int32(99999) // an ID with no typed schema
	if err := w.VisitI32(&rawID); err != nil {
		t.Fatal(err)
	}
	version := int32(3)
	if err := w.VisitI32(&version); err != nil {
		t.Fatal(err)
	}
	guid := uint32(7)
	if err := w.VisitU32(&guid); err != nil {
		t.Fatal(err)
	}
	if err := w.writeRaw(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.EndScope(); err != nil {
		t.Fatal(err)
	}

	in := &memBuffer{data: out.data}
	r := NewReader(in, discardLogger())
	comp, ok, err := r.readComponent()
	if err != nil {
		t.Fatalf("readComponent: %v", err)
	}
	if !ok {
		t.Fatal("component unexpectedly dropped")
	}
	raw, isRaw := comp.Data.(*RawComponentData)
	if !isRaw {
		t.Fatalf("Data = %T, want *RawComponentData", comp.Data)
	}
	if !bytes.Equal(raw.Bytes, payload) {
		t.Errorf("raw bytes = % x, want % x", raw.Bytes, payload)
	}
	if comp.Version != 3 {
		t.Errorf("Version = %d, want 3 (preserved as read)", comp.Version)
	}

	out2 := &memBuffer{}
	w2 := NewWriter(out2)
	if err := w2.writeComponent(&comp); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out2.data, out.data) {
		t.Errorf("re-encoded component = % x, want % x", out2.data, out.data)
	}
}
