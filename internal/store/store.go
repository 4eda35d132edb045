// Package store implements the incremental symbol-table cache
// supplementing C4 (SPEC_FULL.md, additive — not in spec.md): a small
// sqlite-backed content-hash index that resource.BuildTreesCached uses
// to mark, in Tree.Stale, the files whose content changed since the
// last run. resource.Tree.BuildTables does not consult it and walks
// every file. Grounded on the teacher's db/sqlite.go, which opens gorm
// against a local sqlite file the same way.
package store

import (
	"crypto/sha256"
	"encoding/hex"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// FileRecord is one cached file's last-seen content hash.
type FileRecord struct {
	Path string `gorm:"primaryKey"`
	Hash string
}

// Store wraps a gorm/sqlite handle over the cache database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// migrates the FileRecord schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&FileRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying sqlite connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Hash returns the content hash Store uses to detect changes.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Stale reports whether path's cached hash differs from (or is absent
// for) hash, meaning the caller should re-parse and re-walk the file.
func (s *Store) Stale(path, hash string) bool {
	var rec FileRecord
	if err := s.db.First(&rec, "path = ?", path).Error; err != nil {
		return true
	}
	return rec.Hash != hash
}

// Touch records path's current content hash, marking it fresh.
func (s *Store) Touch(path, hash string) error {
	return s.db.Save(&FileRecord{Path: path, Hash: hash}).Error
}
