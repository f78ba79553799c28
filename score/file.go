package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the score list in a small JSON document
type FileStore struct {
	mu    sync.Mutex
	path  string
	slots int
}

type scoreFile struct {
	Scores []int `json:"scores"`
}

// NewFileStore creates a store at path; the file is created on first save
func NewFileStore(path string, slots int) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("score file path is empty")
	}
	return &FileStore{path: path, slots: slots}, nil
}

func (f *FileStore) Load(context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) Save(_ context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return err
	}
	return f.write(Insert(scores, score, f.slots))
}

func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) read() ([]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores %s: %w", f.path, err)
	}

	var sf scoreFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scores %s: %w", f.path, err)
	}
	if len(sf.Scores) > f.slots {
		sf.Scores = sf.Scores[:f.slots]
	}
	return sf.Scores, nil
}

// write replaces the file through a temp file and rename so a crash never leaves it truncated
func (f *FileStore) write(scores []int) error {
	data, err := json.MarshalIndent(scoreFile{Scores: scores}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace scores %s: %w", f.path, err)
	}
	return nil
}
