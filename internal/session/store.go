package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sessionRecord struct {
	Role      string `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	Identity  string `gorm:"not null"`
	UpdatedAt time.Time
}

func (sessionRecord) TableName() string { return "sessions" }

// Store persists sessions in a local sqlite database, one row per role.
// Token and identity land in the same row in one transaction, so a reader
// never observes a token without its matching identity.
type Store struct {
	db *gorm.DB
}

// NewStore opens (or creates) the session database at path.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to prepare sessions table: %w", err)
	}
	return &Store{db: db}, nil
}

// Set replaces the session for role. No validation of token shape is done.
func (s *Store) Set(role Role, token string, identity Identity) error {
	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&sessionRecord{}, "role = ?", string(role)).Error; err != nil {
			return err
		}
		record := sessionRecord{
			Role:      string(role),
			Token:     token,
			Identity:  string(blob),
			UpdatedAt: time.Now(),
		}
		return tx.Create(&record).Error
	})
}

// Get returns the session for role. A missing row and a row whose identity
// blob no longer decodes both read as absent; a corrupt entry must never
// propagate a decoding fault to callers.
func (s *Store) Get(role Role) (Session, bool, error) {
	var record sessionRecord
	if err := s.db.First(&record, "role = ?", string(role)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("failed to read session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(record.Identity), &identity); err != nil {
		return Session{}, false, nil
	}

	return Session{Role: role, Token: record.Token, Identity: identity}, true, nil
}

// Token returns the stored token for role, if any.
func (s *Store) Token(role Role) (string, bool, error) {
	sess, ok, err := s.Get(role)
	if err != nil || !ok {
		return "", false, err
	}
	return sess.Token, true, nil
}

// Clear removes the session for role. Clearing an absent session is a no-op.
func (s *Store) Clear(role Role) error {
	if err := s.db.Delete(&sessionRecord{}, "role = ?", string(role)).Error; err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
