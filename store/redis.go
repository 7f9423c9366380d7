package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/marl-lab/gridwalk/policies"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps policies in a redis instance, one key per name.
// Useful to hand a trained policy from an experiment machine to
// wherever the interactive session runs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ PolicyStore = &RedisStore{}

func NewRedisStore(addr, prefix string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		prefix: prefix,
	}
}

func (r *RedisStore) key(name string) string {
	return r.prefix + name
}

func (r *RedisStore) Save(ctx context.Context, name string, q *policies.QTable) error {
	bs, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal policy %s: %w", name, err)
	}
	return r.client.Set(ctx, r.key(name), bs, 0).Err()
}

func (r *RedisStore) Load(ctx context.Context, name string) (*policies.QTable, error) {
	bs, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("fetch policy %s: %w", name, err)
	}
	q := policies.NewQTable()
	if err := json.Unmarshal(bs, q); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", name, err)
	}
	return q, nil
}

func (r *RedisStore) List(ctx context.Context) ([]string, error) {
	keys, err := r.client.Keys(ctx, r.prefix+"*").Result()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, r.prefix))
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
