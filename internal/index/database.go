// Package index persists recalculated entity usages in a SQLite database
// so they can be queried without re-scanning every draft.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/sqlutil"
)

// Database is the SQLite usage index handle.
type Database struct {
	db *sql.DB
}

var (
	// ErrEntityNotFound indicates the requested entity ID is not indexed.
	ErrEntityNotFound = errors.New("entity not found in index")
)

// Open opens or creates the usage index inside a workspace.
func Open(workspacePath string) (*Database, error) {
	dbDir := filepath.Join(workspacePath, ".vellum")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .vellum directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, "index.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open usage index: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entities (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			display    TEXT NOT NULL,
			match_text TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS usages (
			entity_id   TEXT NOT NULL REFERENCES entities(id) ON DELETE CASCADE,
			seq         INTEGER NOT NULL,
			block_id    TEXT NOT NULL,
			node_id     TEXT NOT NULL,
			node_prefix TEXT NOT NULL,
			node_label  TEXT NOT NULL,
			count       INTEGER NOT NULL,
			PRIMARY KEY (entity_id, seq)
		);

		CREATE INDEX IF NOT EXISTS idx_usages_entity ON usages(entity_id);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize usage index schema: %w", err)
	}
	return nil
}

// Rebuild replaces the entire index with the given entities and their
// current usages. Wholesale replacement mirrors the recalculation
// discipline: usages are derived data and are never merged.
func (d *Database) Rebuild(entities []model.TaggedEntity) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin index rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM usages`); err != nil {
		return fmt.Errorf("failed to clear usages: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM entities`); err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}

	entStmt, err := tx.Prepare(`INSERT INTO entities (id, kind, display, match_text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer entStmt.Close()

	useStmt, err := tx.Prepare(`
		INSERT INTO usages (entity_id, seq, block_id, node_id, node_prefix, node_label, count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer useStmt.Close()

	for _, entity := range entities {
		if _, err := entStmt.Exec(entity.ID, string(entity.Kind), entity.DisplayName(), entity.MatchText()); err != nil {
			return fmt.Errorf("failed to index entity %s: %w", entity.ID, err)
		}
		for seq, usage := range entity.Usages {
			if _, err := useStmt.Exec(entity.ID, seq, usage.BlockID, usage.NodeID, usage.NodePrefix, usage.NodeLabel, usage.Count); err != nil {
				return fmt.Errorf("failed to index usage for %s: %w", entity.ID, err)
			}
		}
	}

	return tx.Commit()
}

// UsagesFor returns the indexed usages for an entity, in scan order.
// Returns ErrEntityNotFound if the entity is not indexed; an indexed entity
// with zero usages yields an empty slice.
func (d *Database) UsagesFor(entityID string) ([]model.EntityUsage, error) {
	var exists int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM entities WHERE id = ?`, entityID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to look up entity: %w", err)
	}
	if exists == 0 {
		return nil, ErrEntityNotFound
	}

	rows, err := d.db.Query(`
		SELECT block_id, node_id, node_prefix, node_label, count
		FROM usages WHERE entity_id = ? ORDER BY seq`, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query usages: %w", err)
	}

	usages, err := sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.EntityUsage, error) {
		var u model.EntityUsage
		err := rows.Scan(&u.BlockID, &u.NodeID, &u.NodePrefix, &u.NodeLabel, &u.Count)
		return u, err
	})
	if err != nil {
		return nil, err
	}
	if usages == nil {
		usages = []model.EntityUsage{}
	}
	return usages, nil
}

// EntityIDsMatching returns the IDs of indexed entities whose display name
// or match text contains text (case-insensitively), in ID order.
func (d *Database) EntityIDsMatching(text string) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT id FROM entities
		WHERE display LIKE '%' || ? || '%' COLLATE NOCASE
		   OR match_text LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY id`, text, text)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
}
