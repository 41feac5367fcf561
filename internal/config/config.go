// Package config handles the XDG configuration directory, the optional
// config.yaml file and the paths derived from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todos"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// DataDirName is the default database directory inside the config dir.
	DataDirName = "data"

	// OAuthClientFile is the Google OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored Google OAuth token filename.
	TokenFile = "token.json"

	// DefaultListenAddr is the address used by the serve command.
	DefaultListenAddr = "localhost:3000"

	// DefaultSession is the session used when none is configured.
	DefaultSession = "default"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Session is the session whose lists the CLI operates on.
	Session string

	// DataDir is the database directory.
	DataDir string

	// ListenAddr is the HTTP address for the serve command.
	ListenAddr string

	// SyncWrites makes every database write durable before returning.
	SyncWrites bool

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is the process logger. Never nil after New.
	Logger *slog.Logger
}

// File is the on-disk shape of config.yaml. Every field is optional.
type File struct {
	Session    string `yaml:"session"`
	DataDir    string `yaml:"data_dir"`
	ListenAddr string `yaml:"listen_addr"`
	SyncWrites *bool  `yaml:"sync_writes"`
}

// New creates a Config for the default or specified config directory,
// applying config.yaml if present.
// If configDir is empty, uses XDG_CONFIG_HOME/todos or $HOME/.config/todos.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:        dir,
		Session:    DefaultSession,
		DataDir:    filepath.Join(dir, DataDirName),
		ListenAddr: DefaultListenAddr,
		SyncWrites: true,
		Logger:     discard,
	}

	f, err := LoadFile(cfg.FilePath())
	if err != nil {
		return nil, err
	}
	cfg.apply(f)
	return cfg, nil
}

// LoadFile reads a config.yaml. A missing file yields an empty File.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("invalid %s: %w", path, err)
	}
	return f, nil
}

func (c *Config) apply(f File) {
	if f.Session != "" {
		c.Session = f.Session
	}
	if f.DataDir != "" {
		dataDir := f.DataDir
		if !filepath.IsAbs(dataDir) {
			dataDir = filepath.Join(c.Dir, dataDir)
		}
		c.DataDir = dataDir
	}
	if f.ListenAddr != "" {
		c.ListenAddr = f.ListenAddr
	}
	if f.SyncWrites != nil {
		c.SyncWrites = *f.SyncWrites
	}
}

// SetLogger installs a logger writing to w. Debug level when debug is set,
// warnings and errors otherwise. Logs are JSON when w is a file that is not
// a terminal, text otherwise.
func (c *Config) SetLogger(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	c.Debug = debug
	opts := &slog.HandlerOptions{Level: level}
	if redirected(w) {
		c.Logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	c.Logger = slog.New(slog.NewTextHandler(w, opts))
}

func redirected(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// Log returns the configured logger, or one that discards everything when
// the Config was built by hand.
func (c *Config) Log() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
