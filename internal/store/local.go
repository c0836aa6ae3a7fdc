// Package store implements the durable record store backing phytocert.
// A single SQLite database holds two logical keys: the ordered
// certificate list and the global branding singleton, each persisted as
// one JSON document. Reads never fail on corrupt content - unparseable
// rows degrade to absent/empty so a damaged store behaves like a fresh
// one.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"phytocert/internal/logging"
	"phytocert/internal/types"

	_ "modernc.org/sqlite"
)

// Logical record keys. The store is a two-key namespace by contract.
const (
	KeyCertificates = "certificates"
	KeyBranding     = "branding"
)

// LocalStore is the SQLite-backed record store. Access is synchronous
// and single-session; the mutex only guards against concurrent use of
// one store value from multiple goroutines within the process.
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewLocalStore initializes the SQLite database at the given path.
// ":memory:" is supported for tests.
func NewLocalStore(path string) (*LocalStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewLocalStore")
	defer timer.Stop()

	logging.Store("Initializing LocalStore at path: %s", path)

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
		}
	}

	s := &LocalStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required table.
func (s *LocalStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Path returns the database path the store was opened with.
func (s *LocalStore) Path() string {
	return s.dbPath
}

// readRaw returns the raw JSON document for a key, or ok=false when the
// key is absent or the row cannot be read.
func (s *LocalStore) readRaw(key string) (raw []byte, ok bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		logging.Get(logging.CategoryStore).Warn("Failed to read record %q: %v", key, err)
		return nil, false
	}
	return []byte(value), true
}

// writeRaw replaces the document stored under a key.
func (s *LocalStore) writeRaw(key string, raw []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// ReadCertificates returns the stored certificate list in storage
// order. An absent key or unparseable content yields an empty list,
// never an error: storage corruption is recovered locally. Labels on
// every loaded certificate are reconciled against the current schema.
func (s *LocalStore) ReadCertificates() []types.CertificateData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.readRaw(KeyCertificates)
	if !ok {
		return []types.CertificateData{}
	}

	var certs []types.CertificateData
	if err := json.Unmarshal(raw, &certs); err != nil {
		logging.Get(logging.CategoryStore).Warn("Certificate list unparseable, treating as empty: %v", err)
		return []types.CertificateData{}
	}
	for i := range certs {
		certs[i].Labels = types.ReconcileLabels(certs[i].Labels)
	}
	logging.StoreDebug("Read %d certificates", len(certs))
	return certs
}

// WriteCertificates replaces the whole certificate list. A failed write
// is returned to the caller as a non-fatal error; in-memory state is
// unaffected and the caller decides whether to retry.
func (s *LocalStore) WriteCertificates(certs []types.CertificateData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(certs)
	if err != nil {
		return fmt.Errorf("failed to encode certificate list: %w", err)
	}
	if err := s.writeRaw(KeyCertificates, raw); err != nil {
		logging.Get(logging.CategoryStore).Warn("Certificate write failed: %v", err)
		return err
	}
	logging.StoreDebug("Wrote %d certificates", len(certs))
	return nil
}

// ReadBranding returns the stored branding singleton, or ok=false when
// absent or unparseable. Legacy fixed-slot records decode into the
// canonical partner-list shape.
func (s *LocalStore) ReadBranding() (types.GlobalBranding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.readRaw(KeyBranding)
	if !ok {
		return types.GlobalBranding{}, false
	}

	var b types.GlobalBranding
	if err := json.Unmarshal(raw, &b); err != nil {
		logging.Get(logging.CategoryStore).Warn("Branding record unparseable, treating as absent: %v", err)
		return types.GlobalBranding{}, false
	}
	return b, true
}

// WriteBranding replaces the branding singleton.
func (s *LocalStore) WriteBranding(b types.GlobalBranding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode branding: %w", err)
	}
	if err := s.writeRaw(KeyBranding, raw); err != nil {
		logging.Get(logging.CategoryStore).Warn("Branding write failed: %v", err)
		return err
	}
	return nil
}

// Stats returns row counts per logical key, used by diagnostics.
func (s *LocalStore) Stats() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]int{KeyCertificates: 0, KeyBranding: 0}
	if raw, ok := s.readRaw(KeyCertificates); ok {
		var certs []types.CertificateData
		if err := json.Unmarshal(raw, &certs); err == nil {
			stats[KeyCertificates] = len(certs)
		}
	}
	if _, ok := s.readRaw(KeyBranding); ok {
		stats[KeyBranding] = 1
	}
	return stats, nil
}
