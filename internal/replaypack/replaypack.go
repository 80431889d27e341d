// Package replaypack exports and imports CarReplayData's transform and
// directive buffers as zstd-compressed blobs, following the teacher's
// own zstd decode/encode idiom for its frame streams.
package replaypack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/seeker14491/distance-bytes/internal/engine"
)

// frameMagic identifies a replaypack blob before the zstd stream begins,
// so a truncated or unrelated file is rejected up front rather than
// surfacing a confusing zstd error.
var frameMagic = [4]byte{'D', 'B', 'R', '1'}

// Export compresses a CarReplayData's transform and directive buffers
// into a single zstd frame. A 4-byte magic precedes the frame so Import
// can validate the blob; inside the compressed payload each buffer is
// preceded by its i32 length so Import can size it.
func Export(w io.Writer, data *engine.CarReplayData) error {
	if _, err := w.Write(frameMagic[:]); err != nil {
		return fmt.Errorf("replaypack: write magic: %w", err)
	}

	var raw bytes.Buffer
	if err := binary.Write(&raw, binary.LittleEndian, int32(len(data.TransformBuffer))); err != nil {
		return fmt.Errorf("replaypack: write transform buffer length: %w", err)
	}
	if _, err := raw.Write(data.TransformBuffer); err != nil {
		return fmt.Errorf("replaypack: write transform buffer: %w", err)
	}
	if err := binary.Write(&raw, binary.LittleEndian, int32(len(data.DirectiveBuffer))); err != nil {
		return fmt.Errorf("replaypack: write directive buffer length: %w", err)
	}
	if _, err := raw.Write(data.DirectiveBuffer); err != nil {
		return fmt.Errorf("replaypack: write directive buffer: %w", err)
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("replaypack: init zstd encoder: %w", err)
	}
	if _, err := encoder.Write(raw.Bytes()); err != nil {
		encoder.Close()
		return fmt.Errorf("replaypack: compress replay: %w", err)
	}
	return encoder.Close()
}

// Import decompresses a blob written by Export and fills in
// TransformBuffer and DirectiveBuffer on data, leaving every other
// field untouched.
func Import(r io.Reader, data *engine.CarReplayData) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return fmt.Errorf("replaypack: read magic: %w", err)
	}
	if magic != frameMagic {
		return fmt.Errorf("replaypack: not a replaypack blob")
	}

	decoder, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("replaypack: init zstd decoder: %w", err)
	}
	defer decoder.Close()

	decompressed, err := io.ReadAll(decoder)
	if errors.Is(err, zstd.ErrMagicMismatch) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("replaypack: decompress replay: %w", err)
	}

	br := bytes.NewReader(decompressed)

	transformBuffer, err := readLengthPrefixedBuffer(br, "transform")
	if err != nil {
		return err
	}
	directiveBuffer, err := readLengthPrefixedBuffer(br, "directive")
	if err != nil {
		return err
	}

	data.TransformBuffer = transformBuffer
	data.DirectiveBuffer = directiveBuffer
	return nil
}

func readLengthPrefixedBuffer(br *bytes.Reader, name string) ([]byte, error) {
	var length int32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("replaypack: read %s buffer length: %w", name, err)
	}
	if length < 0 || int64(length) > int64(br.Len()) {
		return nil, fmt.Errorf("replaypack: implausible %s buffer length %d", name, length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("replaypack: read %s buffer: %w", name, err)
	}
	return buf, nil
}
