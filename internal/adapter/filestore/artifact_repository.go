package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// indexName holds the metadata of every artifact in a session directory.
const indexName = ".index.json"

// ArtifactRepository implements port.ArtifactRepository on the local file
// system. Artifacts live in <root>/<session id>/<name>; their kind,
// attribute and day are kept in a per-session index next to them.
type ArtifactRepository struct {
	root string
	mu   sync.RWMutex
}

// NewArtifactRepository returns a repository rooted at dir. The directory is
// created on first save.
func NewArtifactRepository(dir string) *ArtifactRepository {
	return &ArtifactRepository{root: dir}
}

// Save writes the artifact, replacing an existing file of the same name.
func (r *ArtifactRepository) Save(_ context.Context, sessionID string, a *domain.Artifact) error {
	dir, err := r.sessionDir(sessionID)
	if err != nil {
		return err
	}
	if err = checkName(a.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err = writeFile(dir, a.Name, a.Content); err != nil {
		return fmt.Errorf("write %s: %w", a.Name, err)
	}

	index, err := readIndex(dir)
	if err != nil {
		return err
	}
	index[a.Name] = a.ArtifactInfo
	raw, err := json.Marshal(index)
	if err != nil {
		return err
	}
	return writeFile(dir, indexName, raw)
}

// List returns the artifacts of a session ordered by name. A session
// without artifacts yields an empty list.
func (r *ArtifactRepository) List(_ context.Context, sessionID string) ([]domain.ArtifactInfo, error) {
	dir, err := r.sessionDir(sessionID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	index, err := readIndex(dir)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	infos := make([]domain.ArtifactInfo, 0, len(index))
	for _, info := range index {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Get reads one artifact.
func (r *ArtifactRepository) Get(_ context.Context, sessionID, name string) (*domain.Artifact, error) {
	dir, err := r.sessionDir(sessionID)
	if err != nil {
		return nil, err
	}
	if checkName(name) != nil {
		return nil, port.ErrArtifactNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	index, err := readIndex(dir)
	if err != nil {
		return nil, err
	}
	info, ok := index[name]
	if !ok {
		return nil, port.ErrArtifactNotFound
	}
	content, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, port.ErrArtifactNotFound
	}
	if err != nil {
		return nil, err
	}
	info.Size = len(content)
	return &domain.Artifact{ArtifactInfo: info, Content: content}, nil
}

func (r *ArtifactRepository) sessionDir(sessionID string) (string, error) {
	if err := checkName(sessionID); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return filepath.Join(r.root, sessionID), nil
}

func readIndex(dir string) (map[string]domain.ArtifactInfo, error) {
	index := make(map[string]domain.ArtifactInfo)
	raw, err := os.ReadFile(filepath.Join(dir, indexName))
	if errors.Is(err, fs.ErrNotExist) {
		return index, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("decode %s index: %w", dir, err)
	}
	return index, nil
}

// writeFile writes through a temporary file so readers never see a partial
// document.
func writeFile(dir, name string, content []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}

// checkName rejects anything that is not a plain file name.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || name == indexName || filepath.Base(name) != name {
		return fmt.Errorf("invalid name %q", name)
	}
	return nil
}
