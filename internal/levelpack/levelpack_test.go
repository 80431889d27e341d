package levelpack

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/seeker14491/distance-bytes/internal/engine"
)

func TestBuildAndReadManifest(t *testing.T) {
	obj := engine.GameObject{Name: "Test Level", Guid: 42}
	levelBytes := []byte{0x01, 0x02, 0x03}
	preview := []byte{0x04, 0x05}

	var buf bytes.Buffer
	if err := Build(&buf, obj, levelBytes, preview); err != nil {
		t.Fatalf("Build: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"level.bytes", "preview.tga", "manifest.json"} {
		if !names[want] {
			t.Errorf("archive missing entry %q", want)
		}
	}

	manifest, err := ReadManifest(zr)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if manifest.Name != "Test Level" {
		t.Errorf("manifest.Name = %q, want %q", manifest.Name, "Test Level")
	}
	if manifest.Guid != 42 {
		t.Errorf("manifest.Guid = %d, want 42", manifest.Guid)
	}
	if !manifest.HasPreview {
		t.Error("manifest.HasPreview = false, want true")
	}
}

func TestBuildWithoutPreview(t *testing.T) {
	obj := engine.GameObject{Name: "No Preview", Guid: 1}

	var buf bytes.Buffer
	if err := Build(&buf, obj, []byte{0xFF}, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == "preview.tga" {
			t.Error("archive has preview.tga entry when no preview was given")
		}
	}

	manifest, err := ReadManifest(zr)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if manifest.HasPreview {
		t.Error("manifest.HasPreview = true, want false")
	}
}
