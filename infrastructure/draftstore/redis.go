package draftstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "settings_draft:"

// redisCmd é o subconjunto do cliente Redis usado pelo store
type redisCmd interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore guarda os rascunhos em JSON. Cada Put renova o TTL,
// então rascunhos abandonados expiram sozinhos.
type RedisStore struct {
	client redisCmd
	ttl    time.Duration
}

func NewRedisStore(client redisCmd, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient cria o cliente a partir de uma URL redis://
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "URL do Redis inválida")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "erro ao conectar ao Redis")
	}

	return client, nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*domain.SettingsDraft, error) {
	raw, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler rascunho do Redis")
	}

	var draft domain.SettingsDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar rascunho")
	}

	return &draft, nil
}

func (s *RedisStore) Put(ctx context.Context, draft *domain.SettingsDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar rascunho")
	}

	if err := s.client.Set(ctx, keyPrefix+draft.UserID, raw, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar rascunho no Redis")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return errors.Wrap(err, "erro ao remover rascunho do Redis")
	}
	return nil
}
