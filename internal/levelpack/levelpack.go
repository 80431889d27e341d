// Package levelpack bundles a decoded level's .bytes file together with
// an optional preview image and a generated manifest into a single .zip
// archive, adapting the teacher's own pk3 archive-building idiom to this
// domain's artifact.
package levelpack

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/seeker14491/distance-bytes/internal/engine"
)

// Manifest describes the contents of a level pack archive.
type Manifest struct {
	Name       string    `json:"name"`
	Guid       uint32    `json:"guid"`
	PackedAt   time.Time `json:"packedAt"`
	HasPreview bool      `json:"hasPreview"`
}

// Build writes a level pack archive to w: the level's raw .bytes file
// under "level.bytes", an optional "preview.tga", and a "manifest.json"
// describing both, using Deflate compression like the teacher's own pk3
// writer.
func Build(w io.Writer, root engine.GameObject, levelBytes []byte, preview []byte) error {
	manifest := Manifest{
		Name:       root.Name,
		Guid:       root.Guid,
		PackedAt:   time.Now().UTC(),
		HasPreview: len(preview) > 0,
	}
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("levelpack: marshal manifest: %w", err)
	}

	entries := map[string][]byte{
		"level.bytes":   levelBytes,
		"manifest.json": manifestJSON,
	}
	if len(preview) > 0 {
		entries["preview.tga"] = preview
	}

	return writeZip(w, entries)
}

// writeZip writes files to w as a deflate-compressed zip, in the
// teacher's WritePk3ToWriter style: sorted entry names for deterministic
// output.
func writeZip(w io.Writer, files map[string][]byte) error {
	zw := zip.NewWriter(w)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		header := &zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		}
		fw, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("levelpack: create entry %s: %w", name, err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			return fmt.Errorf("levelpack: write entry %s: %w", name, err)
		}
	}

	return zw.Close()
}

// ReadManifest reads back the manifest.json entry of a level pack
// archive.
func ReadManifest(r *zip.Reader) (Manifest, error) {
	for _, f := range r.File {
		if f.Name != "manifest.json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Manifest{}, fmt.Errorf("levelpack: open manifest: %w", err)
		}
		defer rc.Close()

		var m Manifest
		if err := json.NewDecoder(rc).Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("levelpack: decode manifest: %w", err)
		}
		return m, nil
	}
	return Manifest{}, fmt.Errorf("levelpack: manifest.json not found in archive")
}
