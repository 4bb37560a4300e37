package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framepace/pkg/framepace"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.DepthPolicy != string(framepace.DepthAsReported) {
		t.Errorf("DepthPolicy = %q, want %q", cfg.DepthPolicy, framepace.DepthAsReported)
	}
	if cfg.Quality != 25 {
		t.Errorf("Quality = %d, want 25", cfg.Quality)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("DebugDir = %q, want ./debug", cfg.DebugDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempConfig(t, `
input: clip.mp4
output: paced.mp4
depth_policy: fixed
reorder_depth: 3
gop_size: 120
chapters:
  - frame: 0
    id: 1
  - frame: 240
    id: 2
debug: true
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.InputPath != "clip.mp4" {
		t.Errorf("InputPath = %q, want clip.mp4", cfg.InputPath)
	}
	if cfg.DepthPolicy != "fixed" {
		t.Errorf("DepthPolicy = %q, want fixed", cfg.DepthPolicy)
	}
	if cfg.ReorderDepth != 3 {
		t.Errorf("ReorderDepth = %d, want 3", cfg.ReorderDepth)
	}
	if cfg.GopSize != 120 {
		t.Errorf("GopSize = %d, want 120", cfg.GopSize)
	}
	if len(cfg.Chapters) != 2 || cfg.Chapters[1].Frame != 240 {
		t.Errorf("Chapters = %+v", cfg.Chapters)
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true")
	}

	// Unset fields keep defaults
	if cfg.Quality != 25 {
		t.Errorf("Quality = %d, want default 25", cfg.Quality)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"fixed policy", func(c *Config) { c.DepthPolicy = "fixed"; c.ReorderDepth = 4 }, false},
		{"unknown policy", func(c *Config) { c.DepthPolicy = "quadrupled" }, true},
		{"depth too large", func(c *Config) { c.ReorderDepth = 99 }, true},
		{"negative chapter frame", func(c *Config) {
			c.Chapters = []ChapterConfig{{Frame: -1, ID: 1}}
		}, true},
		{"duplicate chapter frame", func(c *Config) {
			c.Chapters = []ChapterConfig{{Frame: 10, ID: 1}, {Frame: 10, ID: 2}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.InputPath = "in.mp4"
	cfg.OutputPath = "out.mp4"
	cfg.Chapters = []ChapterConfig{{Frame: 30, ID: 1}}

	oc := cfg.ToOrchestratorConfig(2)

	if oc.InputPath != "in.mp4" || oc.OutputPath != "out.mp4" {
		t.Errorf("paths = %q, %q", oc.InputPath, oc.OutputPath)
	}
	if oc.ReorderDepth != 2 {
		t.Errorf("ReorderDepth = %d, want 2", oc.ReorderDepth)
	}
	if len(oc.Chapters) != 1 || oc.Chapters[0].Frame != 30 {
		t.Errorf("Chapters = %+v", oc.Chapters)
	}
}
