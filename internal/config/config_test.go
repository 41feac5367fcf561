package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Session != DefaultSession {
		t.Errorf("expected session %q, got %q", DefaultSession, cfg.Session)
	}
	if cfg.DataDir != filepath.Join(dir, DataDirName) {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if !cfg.SyncWrites {
		t.Error("expected sync writes by default")
	}
	if cfg.Logger == nil {
		t.Error("expected a logger")
	}
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "session: work\ndata_dir: db\nlisten_addr: \":9000\"\nsync_writes: false\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Session != "work" {
		t.Errorf("expected session work, got %q", cfg.Session)
	}
	if cfg.DataDir != filepath.Join(dir, "db") {
		t.Errorf("expected relative data dir resolved against config dir, got %q", cfg.DataDir)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.ListenAddr)
	}
	if cfg.SyncWrites {
		t.Error("expected sync writes disabled")
	}
}

func TestNew_AbsoluteDataDir(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("data_dir: "+abs+"\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != abs {
		t.Errorf("expected %q, got %q", abs, cfg.DataDir)
	}
}

func TestNew_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("session: [unclosed\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := New(dir)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("expected invalid config error, got %v", err)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestSetLogger_Levels(t *testing.T) {
	cfg := &Config{}
	var buf bytes.Buffer

	cfg.SetLogger(&buf, false)
	cfg.Logger.Debug("hidden")
	cfg.Logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	cfg.SetLogger(&buf, true)
	cfg.Logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") || !cfg.Debug {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}

func TestSetLogger_RedirectedFileIsJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	cfg := &Config{}
	cfg.SetLogger(f, false)
	cfg.Logger.Warn("shown", "k", "v")

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.HasPrefix(string(data), "{") || !strings.Contains(string(data), `"k":"v"`) {
		t.Errorf("expected JSON log line, got %q", data)
	}
}

func TestTokenPaths(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("expected no credentials in empty dir")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if !cfg.HasToken() {
		t.Error("expected token")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("remove token: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token removed")
	}
}
