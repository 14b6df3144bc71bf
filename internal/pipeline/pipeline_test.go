package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ppiankov/texsift/internal/cache"
	"github.com/ppiankov/texsift/internal/fsio"
	"github.com/ppiankov/texsift/internal/model"
)

var fixedTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// newTestPipeline returns a pipeline over the real filesystem with a fixed
// clock
func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	fs, err := fsio.New(cfg.IO, cache.NewMemoryCache(time.Minute, time.Minute))
	require.NoError(t, err)

	p := NewPipeline(cfg, fs)
	p.now = func() time.Time { return fixedTime }
	return p
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
