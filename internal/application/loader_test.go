package application

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
version: "1.0.0"
game:
  name: sticks
workers:
  count: 8
  visit_budget: 5000
`

func TestConfigLoaderLoadParsesAndValidates(t *testing.T) {
	l := NewConfigLoader()

	cfg, err := l.Load(context.Background(), []byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, "sticks", cfg.Game.Name)
	assert.Equal(t, 8, cfg.Workers.Count)
	assert.Equal(t, 5000, cfg.Workers.VisitBudget)
}

func TestConfigLoaderLoadRejectsInvalidYAML(t *testing.T) {
	l := NewConfigLoader()

	_, err := l.Load(context.Background(), []byte("game: [unterminated"))
	require.Error(t, err)
}

func TestConfigLoaderLoadRejectsFailedValidation(t *testing.T) {
	l := NewConfigLoader()

	_, err := l.Load(context.Background(), []byte(`
version: "1.0.0"
game:
  name: unknown-game
workers:
  count: 1
  visit_budget: 1
`))
	require.Error(t, err)
}

func TestConfigLoaderLoadCachesBySHA(t *testing.T) {
	l := NewConfigLoader()

	first, err := l.Load(context.Background(), []byte(validYAML))
	require.NoError(t, err)

	second, err := l.Load(context.Background(), []byte(validYAML))
	require.NoError(t, err)

	assert.Same(t, first, second, "identical content must return the cached pointer")
}

func TestConfigLoaderLoadFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	l := NewConfigLoader()
	cfg, err := l.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "sticks", cfg.Game.Name)
}

func TestConfigLoaderLoadFileMissingPath(t *testing.T) {
	l := NewConfigLoader()
	_, err := l.LoadFile(context.Background(), "/nonexistent/search.yaml")
	require.Error(t, err)
}

func TestConfigLoaderLoadConcurrentDuplicatesDedup(t *testing.T) {
	l := NewConfigLoader()

	var wg sync.WaitGroup
	results := make([]*SearchConfig, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := l.Load(context.Background(), []byte(validYAML))
			require.NoError(t, err)
			results[i] = cfg
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
