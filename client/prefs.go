package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const DefaultLanguage = "en"

// Preferences is the persisted client state: the bearer token and the
// language choice, stored as a small JSON file.
type Preferences struct {
	path string

	mu       sync.Mutex
	token    string
	language string
}

type prefsFile struct {
	Token    string `json:"token,omitempty"`
	Language string `json:"language,omitempty"`
}

// LoadPreferences reads path; a missing file yields empty preferences.
func LoadPreferences(path string) (*Preferences, error) {
	p := &Preferences{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	var f prefsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	p.token, p.language = f.Token, f.Language
	return p, nil
}

func (p *Preferences) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

func (p *Preferences) SetToken(token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	return p.saveLocked()
}

func (p *Preferences) ClearToken() error {
	return p.SetToken("")
}

// Language returns the saved language or DefaultLanguage.
func (p *Preferences) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.language == "" {
		return DefaultLanguage
	}
	return p.language
}

func (p *Preferences) SetLanguage(lang string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.language = lang
	return p.saveLocked()
}

func (p *Preferences) saveLocked() error {
	if p.path == "" {
		return nil
	}
	raw, err := json.Marshal(prefsFile{Token: p.token, Language: p.language})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return os.Rename(tmp, p.path)
}

// Theme is the light/dark toggle. It lives for the session only.
type Theme struct {
	mu   sync.Mutex
	dark bool
}

func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}
