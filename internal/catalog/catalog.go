// Package catalog indexes decoded save/level files into a small SQLite
// database, so repeated inspect calls over a large level-pack directory
// don't have to re-decode every file to list them.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/seeker14491/distance-bytes/internal/engine"
)

// Entry is one indexed file: its in-file GUID, a cache-row UUID
// (globally unique, unlike the in-file GUID which is only unique
// per-file), and the metadata pulled from its LevelInfo component, if
// present.
type Entry struct {
	RowID      string
	FileGuid   uint32
	Path       string
	Name       string
	LevelType  int32
	ModifiedAt time.Time
}

// Catalog wraps a SQLite-backed index of decoded files.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if necessary) the catalog database at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	row_id      TEXT PRIMARY KEY,
	file_guid   INTEGER NOT NULL,
	path        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	level_type  INTEGER NOT NULL,
	modified_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_name_idx ON entries(name);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: create schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// IndexGameObject upserts one decoded file's entry, deriving name and
// level type from a LevelInfo component on the object if one exists, or
// falling back to the object's own name with an unknown level type
// otherwise.
func (c *Catalog) IndexGameObject(path string, obj engine.GameObject, modifiedAt time.Time) (Entry, error) {
	name := obj.Name
	var levelType int32 = -1

	for _, comp := range obj.Components {
		info, ok := comp.Data.(*engine.LevelInfo)
		if !ok {
			continue
		}
		if info.Name != nil && *info.Name != "" {
			name = *info.Name
		}
		levelType = int32(info.Type)
		break
	}

	var rowID string
	err := c.db.QueryRow(`SELECT row_id FROM entries WHERE path = ?`, path).Scan(&rowID)
	switch {
	case err == sql.ErrNoRows:
		rowID = uuid.NewString()
	case err != nil:
		return Entry{}, fmt.Errorf("catalog: lookup %s: %w", path, err)
	}

	_, err = c.db.Exec(`
INSERT INTO entries (row_id, file_guid, path, name, level_type, modified_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	file_guid = excluded.file_guid,
	name = excluded.name,
	level_type = excluded.level_type,
	modified_at = excluded.modified_at
`, rowID, obj.Guid, path, name, levelType, modifiedAt.Unix())
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: upsert %s: %w", path, err)
	}

	return Entry{
		RowID:      rowID,
		FileGuid:   obj.Guid,
		Path:       path,
		Name:       name,
		LevelType:  levelType,
		ModifiedAt: modifiedAt,
	}, nil
}

// List returns every indexed entry, ordered by name.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query(`SELECT row_id, file_guid, path, name, level_type, modified_at FROM entries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var modifiedUnix int64
		if err := rows.Scan(&e.RowID, &e.FileGuid, &e.Path, &e.Name, &e.LevelType, &modifiedUnix); err != nil {
			return nil, fmt.Errorf("catalog: scan row: %w", err)
		}
		e.ModifiedAt = time.Unix(modifiedUnix, 0).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByName returns every indexed entry whose name exactly matches,
// letting a caller notice when two workshop authors reused the same
// level name (distinguished by their separate row UUIDs).
func (c *Catalog) FindByName(name string) ([]Entry, error) {
	rows, err := c.db.Query(`SELECT row_id, file_guid, path, name, level_type, modified_at FROM entries WHERE name = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: find %s: %w", name, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var modifiedUnix int64
		if err := rows.Scan(&e.RowID, &e.FileGuid, &e.Path, &e.Name, &e.LevelType, &modifiedUnix); err != nil {
			return nil, fmt.Errorf("catalog: scan row: %w", err)
		}
		e.ModifiedAt = time.Unix(modifiedUnix, 0).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
