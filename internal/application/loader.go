package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// ConfigLoader parses, validates, and caches SearchConfig values by the
// SHA-256 of their content. Concurrent benchmark workers reading the same
// config content only parse and validate it once, via singleflight.
type ConfigLoader struct {
	validator *validator.Validate

	cacheMu sync.RWMutex
	cache   map[string]*SearchConfig // sha256(content) -> config

	sf singleflight.Group
}

// NewConfigLoader constructs an empty, ready-to-use loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		validator: newValidator(),
		cache:     make(map[string]*SearchConfig),
	}
}

// LoadFile reads, parses, and validates the YAML file at path.
func (l *ConfigLoader) LoadFile(ctx context.Context, path string) (*SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mcts: reading config %s: %w", path, err)
	}
	return l.Load(ctx, data)
}

// Load parses and validates raw YAML bytes, deduplicating concurrent
// calls for identical content and caching the validated result.
func (l *ConfigLoader) Load(ctx context.Context, data []byte) (*SearchConfig, error) {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])

	l.cacheMu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cfg, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.sf.Do(key, func() (any, error) {
		// A flight for the same key may have finished between the cache
		// check above and this call; reuse its result.
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		var cfg SearchConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("mcts: parsing config: %w", err)
		}
		if err := cfg.Validate(l.validator); err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = &cfg
		l.cacheMu.Unlock()

		return &cfg, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*SearchConfig), nil
}
