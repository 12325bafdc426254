// Package session keeps the CLI's login between invocations in a private
// JSON file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerich15/TemplateHub/internal/client/client"
	"github.com/gerich15/TemplateHub/internal/filex"
)

const (
	dirName  = ".templatehub"
	fileName = "session.json"
)

// ErrNoSession is returned by Load when nobody is logged in.
var ErrNoSession = errors.New("not logged in")

// Session is what survives between CLI invocations.
type Session struct {
	Login  string        `json:"login"`
	Tokens client.Tokens `json:"tokens"`
}

type Store struct {
	path string
}

// NewStore keeps the session under dir. An empty dir means ~/.templatehub.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home dir: %w", err)
		}
		created, err := filex.EnsureDir(home, dirName)
		if err != nil {
			return nil, err
		}
		dir = created
	} else if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Dir is the directory holding the session file.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", s.path, err)
	}
	if sess.Tokens.RefreshToken == "" && sess.Tokens.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return filex.WritePrivate(s.path, data)
}

func (s *Store) Clear() error {
	return filex.RemoveIfExists(s.path)
}
