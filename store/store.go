package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/marl-lab/gridwalk/policies"
)

// PolicyStore checkpoints learnt q tables under a name
type PolicyStore interface {
	Save(ctx context.Context, name string, q *policies.QTable) error
	Load(ctx context.Context, name string) (*policies.QTable, error)
	List(ctx context.Context) ([]string, error)
}

// FileStore keeps one json file per policy in a directory
type FileStore struct {
	Dir string
}

var _ PolicyStore = &FileStore{}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) file(name string) string {
	return path.Join(f.Dir, name+".json")
}

func (f *FileStore) Save(_ context.Context, name string, q *policies.QTable) error {
	bs, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal policy %s: %w", name, err)
	}
	if err := os.MkdirAll(f.Dir, 0777); err != nil {
		return err
	}
	return os.WriteFile(f.file(name), bs, 0644)
}

func (f *FileStore) Load(_ context.Context, name string) (*policies.QTable, error) {
	bs, err := os.ReadFile(f.file(name))
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", name, err)
	}
	q := policies.NewQTable()
	if err := json.Unmarshal(bs, q); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", name, err)
	}
	return q, nil
}

func (f *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
