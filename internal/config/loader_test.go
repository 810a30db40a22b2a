package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "grid:\n  size: 30\ntick_ms: 80\n")

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Grid.Size != 30 || cfg.TickMS != 80 {
		t.Errorf("cfg = %+v, expected size 30 tick 80", cfg)
	}
	// Unset fields keep defaults
	if cfg.ScorePerFood != 10 || cfg.Spawn.Length != 3 {
		t.Errorf("cfg = %+v, expected default score and spawn", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "grid: [not, a, map")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "grid:\n  size: 2\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", broken},
		{"invalid values", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Load(tc.path); err == nil {
				t.Errorf("Load(%q) expected error", tc.path)
			}
		})
	}

	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", FileName), "tick_ms: 200\n")

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceLocal || cfg.TickMS != 200 {
		t.Errorf("Load() = %+v from %q, expected local tick 200", cfg, src)
	}

	writeFile(t, filepath.Join(home, ".snake", "configs", FileName), "tick_ms: 100\n")
	cfg, src, _ = Load("")
	if src != SourceUser || cfg.TickMS != 100 {
		t.Errorf("Load() = %+v from %q, expected user tick 100", cfg, src)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "configs", FileName), "tick_ms: -5\n")

	_, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected invalid user file to be skipped", src)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnakeConfig)
		ok     bool
	}{
		{"defaults", func(c *SnakeConfig) {}, true},
		{"small grid", func(c *SnakeConfig) { c.Grid.Size = 4 }, false},
		{"minimum grid", func(c *SnakeConfig) { c.Grid.Size = 5; c.Spawn = SpawnConfig{X: 2, Y: 2, Length: 3} }, true},
		{"zero tick", func(c *SnakeConfig) { c.TickMS = 0 }, false},
		{"negative score", func(c *SnakeConfig) { c.ScorePerFood = -1 }, false},
		{"short snake", func(c *SnakeConfig) { c.Spawn.Length = 2 }, false},
		{"tail off grid", func(c *SnakeConfig) { c.Spawn.X = 1 }, false},
		{"head off grid", func(c *SnakeConfig) { c.Spawn.Y = 20 }, false},
		{"full row", func(c *SnakeConfig) { c.Grid.Size = 5; c.Spawn = SpawnConfig{X: 4, Y: 0, Length: 5} }, true},
		{"longer than a row", func(c *SnakeConfig) { c.Grid.Size = 5; c.Spawn = SpawnConfig{X: 4, Y: 0, Length: 6} }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	rc := DefaultSnakeConfig().RuntimeConfig(42)

	expected := core.DefaultConfig()
	expected.Seed = 42
	if rc != expected {
		t.Errorf("RuntimeConfig() = %+v, expected %+v", rc, expected)
	}
	if rc.TickInterval != 150*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 150ms", rc.TickInterval)
	}
}
