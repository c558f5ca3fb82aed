package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// ErrPersistedStateCorrupt marks a session record that failed to parse.
// Callers recover by discarding the record, never by reporting it.
var ErrPersistedStateCorrupt = errors.New("persisted session state corrupt")

// FilePersistence keeps the session record as a single JSON document at
// a fixed path. The exact format is not load-bearing; anything that
// round-trips the user fields is acceptable.
type FilePersistence struct {
	path string
}

// NewFilePersistence creates file-backed session persistence
func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

// Save writes the session subject
func (p *FilePersistence) Save(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return os.WriteFile(p.path, data, 0o600)
}

// Load reads the persisted session subject. Returns (nil, nil) when no
// record exists and ErrPersistedStateCorrupt when the record does not
// parse.
func (p *FilePersistence) Load() (*domain.User, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, ErrPersistedStateCorrupt
	}
	if user.Email == "" {
		return nil, ErrPersistedStateCorrupt
	}
	return &user, nil
}

// Clear removes the persisted record. Missing records are not an error.
func (p *FilePersistence) Clear() error {
	err := os.Remove(p.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
