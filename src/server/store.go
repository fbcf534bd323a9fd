package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mockapi/src/domain"
	"mockapi/src/encoders"
)

// ArtifactStore resolves a published file name to its content.
type ArtifactStore interface {
	Get(ctx context.Context, name string) ([]byte, string, error)
}

// DirStore reads artifacts straight from the generator output directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) Get(_ context.Context, name string) ([]byte, string, error) {
	_, format, err := encoders.ResolveName(name)
	if err != nil {
		return nil, "", fmt.Errorf("DirStore.Get - %s: %w", name, domain.ErrArtifactNotFound)
	}

	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("DirStore.Get - %s: %w", name, domain.ErrArtifactNotFound)
		}
		return nil, "", fmt.Errorf("DirStore.Get - reading %s: %w", name, err)
	}
	return content, format.ContentType(), nil
}

type artifactCache interface {
	GetArtifact(ctx context.Context, name string) ([]byte, string, bool, error)
	SetArtifact(ctx context.Context, name string, contentType string, content []byte) error
}

// CachedStore serves from Redis first and fills it from next on a miss.
// Cache errors only degrade to next, they never fail the request.
type CachedStore struct {
	cache  artifactCache
	next   ArtifactStore
	logger *zap.Logger
}

func NewCachedStore(cache artifactCache, next ArtifactStore, logger *zap.Logger) *CachedStore {
	return &CachedStore{cache: cache, next: next, logger: logger}
}

func (s *CachedStore) Get(ctx context.Context, name string) ([]byte, string, error) {
	if _, _, err := encoders.ResolveName(name); err != nil {
		return nil, "", fmt.Errorf("CachedStore.Get - %s: %w", name, domain.ErrArtifactNotFound)
	}

	content, contentType, found, err := s.cache.GetArtifact(ctx, name)
	if err != nil {
		s.logger.Warn("artifact cache read failed", zap.String("artifact", name), zap.Error(err))
	} else if found {
		return content, contentType, nil
	}

	content, contentType, err = s.next.Get(ctx, name)
	if err != nil {
		return nil, "", err
	}

	if err := s.cache.SetArtifact(ctx, name, contentType, content); err != nil {
		s.logger.Warn("artifact cache write failed", zap.String("artifact", name), zap.Error(err))
	}
	return content, contentType, nil
}
