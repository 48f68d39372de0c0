package cmd

import (
	"context"

	"eventhub-cli/account"
	"eventhub-cli/config"
	"eventhub-cli/store"
)

// openSessions builds the configured session store. The returned func
// releases its connection.
func openSessions(ctx context.Context, cfg config.Config) (account.SessionStore, func(), error) {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		client, err := store.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisSessions(client, cfg.SessionKey), func() { _ = client.Close() }, nil
	default:
		return store.NewFileSessions(), func() {}, nil
	}
}
