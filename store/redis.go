package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventhub-cli/account"
	"eventhub-cli/model"
)

const DefaultSessionKey = "eventhub:user"

// RedisSessions keeps the user record under a single Redis key, for setups
// where the session should outlive the local machine.
type RedisSessions struct {
	client redis.Cmdable
	key    string
}

var _ account.SessionStore = (*RedisSessions)(nil)

func NewRedisSessions(client redis.Cmdable, key string) *RedisSessions {
	if key == "" {
		key = DefaultSessionKey
	}
	return &RedisSessions{client: client, key: key}
}

// DialRedis parses url (redis://…) or treats it as host:port, then pings
// the server.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

func (s *RedisSessions) Get(ctx context.Context) (model.User, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.User{}, account.ErrNoSession
	}
	if err != nil {
		return model.User{}, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return model.User{}, errors.New("invalid session format")
	}
	return user, nil
}

func (s *RedisSessions) Set(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisSessions) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key, err)
	}
	return nil
}
