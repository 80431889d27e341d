package replaypack

import (
	"bytes"
	"testing"

	"github.com/seeker14491/distance-bytes/internal/engine"
)

func TestExportImportRoundTrip(t *testing.T) {
	original := &engine.CarReplayData{
		TransformBuffer: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		DirectiveBuffer: []byte{1, 0, 2, 2},
	}

	var buf bytes.Buffer
	if err := Export(&buf, original); err != nil {
		t.Fatalf("Export: %v", err)
	}

	got := &engine.CarReplayData{}
	if err := Import(&buf, got); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !bytes.Equal(got.TransformBuffer, original.TransformBuffer) {
		t.Errorf("TransformBuffer = %v, want %v", got.TransformBuffer, original.TransformBuffer)
	}
	if !bytes.Equal(got.DirectiveBuffer, original.DirectiveBuffer) {
		t.Errorf("DirectiveBuffer = %v, want %v", got.DirectiveBuffer, original.DirectiveBuffer)
	}
}

func TestImportRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not a replaypack blob at all")
	got := &engine.CarReplayData{}
	if err := Import(buf, got); err == nil {
		t.Error("Import succeeded on non-replaypack input, want error")
	}
}
