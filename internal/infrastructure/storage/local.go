package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// LocalStore persists uploaded audio to local disk for the duration of one
// analysis request. Every Acquire must be paired with exactly one Release.
type LocalStore struct {
	dir    string
	prefix string
	logger *zap.Logger
}

// NewLocalStore creates a store rooted at dir. An empty dir falls back to
// the OS temp directory.
func NewLocalStore(dir, prefix string, logger *zap.Logger) (*LocalStore, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &LocalStore{dir: dir, prefix: prefix, logger: logger}, nil
}

// Acquire writes the audio bytes to a uniquely named file with the given
// extension and returns a handle to it
func (s *LocalStore) Acquire(data []byte, ext string) (*entities.AudioArtifact, error) {
	name := uuid.New().String() + ext
	if s.prefix != "" {
		name = s.prefix + "-" + name
	}
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write audio artifact: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("audio artifact persisted",
			zap.String("path", path),
			zap.Int("size_bytes", len(data)),
		)
	}

	return &entities.AudioArtifact{Path: path, CreatedAt: time.Now()}, nil
}

// Release deletes the backing file. Deletion failures are logged, never
// surfaced: a leftover temp file does not affect the returned report.
func (s *LocalStore) Release(a *entities.AudioArtifact) {
	if a == nil {
		return
	}
	if err := os.Remove(a.Path); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to delete audio artifact",
				zap.String("path", a.Path),
				zap.Error(err),
			)
		}
		return
	}
	if s.logger != nil {
		s.logger.Info("audio artifact deleted", zap.String("path", a.Path))
	}
}
