// internal/adapters/output/sqlite.go
package output

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS results (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	scan_id   TEXT NOT NULL,
	endpoint  TEXT NOT NULL,
	result    TEXT NOT NULL,
	probed_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_scan ON results(scan_id);
CREATE INDEX IF NOT EXISTS idx_results_endpoint ON results(endpoint);`

// SQLiteWriter guarda cada registro en una tabla results. La base de datos
// acumula escaneos; scan_id separa una ejecución de otra.
type SQLiteWriter struct {
	path   string
	scanID string
	db     *sql.DB
	insert *sql.Stmt
}

var _ ports.RecordWriter = (*SQLiteWriter)(nil)

// OpenSQLite abre la base, crea el esquema y prepara el INSERT.
func OpenSQLite(path, scanID string) (*SQLiteWriter, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite output: %w", err)
	}
	// El Sink ya serializa; una sola conexión evita SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	stmt, err := db.Prepare(`INSERT INTO results (scan_id, endpoint, result, probed_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare sqlite insert: %w", err)
	}
	return &SQLiteWriter{path: path, scanID: scanID, db: db, insert: stmt}, nil
}

func (w *SQLiteWriter) Name() string { return w.path }

func (w *SQLiteWriter) Write(rec domain.ResultRecord) error {
	if _, err := w.insert.Exec(w.scanID, rec.Endpoint, rec.Label, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert sqlite record: %w", err)
	}
	return nil
}

func (w *SQLiteWriter) Close() error {
	stmtErr := w.insert.Close()
	dbErr := w.db.Close()
	if stmtErr != nil {
		return stmtErr
	}
	return dbErr
}
