package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrNoSession is returned when no saved session exists
var ErrNoSession = errors.New("no saved session")

// Session is the host state persisted across save/restore lifecycle events
type Session struct {
	CursorX        int  `toml:"cursor_x"`
	CursorY        int  `toml:"cursor_y"`
	OverlayVisible bool `toml:"overlay_visible"`
}

// SessionStore persists a Session as TOML at a fixed path
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save writes s, replacing any previous session
func (st *SessionStore) Save(s Session) error {
	tmp := st.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("session encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("session save: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Load reads the saved session
func (st *SessionStore) Load() (Session, error) {
	var s Session
	if _, err := toml.DecodeFile(st.path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, ErrNoSession
		}
		return s, fmt.Errorf("session load: %w", err)
	}
	return s, nil
}

// Clear removes the saved session; a missing file is not an error
func (st *SessionStore) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
