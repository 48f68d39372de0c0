package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventhub-cli/account"
	"eventhub-cli/model"
)

const (
	appDir          = "eventhub-cli"
	DefaultCacheTTL = 30 * time.Minute
	maxRecentEvents = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type RecentEvent struct {
	Site    string `json:"site"`
	EventID string `json:"event_id"`
	Title   string `json:"title"`
}

type eventHistory struct {
	Events []RecentEvent `json:"events"`
}

// LoadCatalogCache returns the cached remote catalog of a site and whether
// it is younger than ttl.
func LoadCatalogCache(site string, ttl time.Duration) ([]model.Event, bool, error) {
	path, err := cachePath(fmt.Sprintf("catalog_%s.json", site))
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Event](path)
	if err != nil {
		return nil, false, err
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= ttl, nil
}

func SaveCatalogCache(site string, events []model.Event) error {
	path, err := cachePath(fmt.Sprintf("catalog_%s.json", site))
	if err != nil {
		return err
	}
	return saveCache(path, events)
}

func LoadRecentEvents() ([]RecentEvent, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history eventHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid event history format")
	}
	return history.Events, nil
}

// RememberEvent puts event first in the site's history, dropping an older
// entry for the same event.
func RememberEvent(site string, event model.Event) error {
	if strings.TrimSpace(event.ID) == "" {
		return errors.New("event id is required")
	}
	history, _ := LoadRecentEvents()
	next := []RecentEvent{{Site: site, EventID: event.ID, Title: event.Title}}

	for _, existing := range history {
		if existing.Site == site && existing.EventID == event.ID {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentEvents {
			break
		}
	}

	path, err := configPath("history.json")
	if err != nil {
		return err
	}
	return writeJSON(path, eventHistory{Events: next})
}

// RecentEventIDs lists the remembered events of one site.
func RecentEventIDs(site string) map[string]bool {
	history, _ := LoadRecentEvents()
	ids := map[string]bool{}
	for _, recent := range history {
		if recent.Site == site && recent.EventID != "" {
			ids[recent.EventID] = true
		}
	}
	return ids
}

// FileSessions keeps the user record as a JSON file in the user config dir,
// the terminal counterpart of the browser's local storage.
type FileSessions struct {
	name string
}

var _ account.SessionStore = (*FileSessions)(nil)

func NewFileSessions() *FileSessions {
	return &FileSessions{name: "user.json"}
}

func (s *FileSessions) Get(ctx context.Context) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	path, err := configPath(s.name)
	if err != nil {
		return model.User{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.User{}, account.ErrNoSession
		}
		return model.User{}, err
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return model.User{}, errors.New("invalid session format")
	}
	return user, nil
}

func (s *FileSessions) Set(ctx context.Context, user model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := configPath(s.name)
	if err != nil {
		return err
	}
	return writeJSON(path, user)
}

func (s *FileSessions) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := configPath(s.name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	return writeJSON(path, cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	})
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
