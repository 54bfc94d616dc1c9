package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "vonsh.yaml"

// SourceKind tells where a Settings value came from.
type SourceKind string

const (
	SourceCustom   SourceKind = "custom"
	SourceUser     SourceKind = "user"
	SourceLocal    SourceKind = "local"
	SourceEmbedded SourceKind = "embedded"
	SourceBuiltin  SourceKind = "builtin"
)

// Source describes the file settings were read from.
type Source struct {
	Kind SourceKind
	Path string // empty for embedded and builtin settings
}

// SavePath returns the file changes should be written to. Settings that
// did not come from a file are saved to the user config directory.
func (s Source) SavePath() string {
	if s.Path != "" {
		return s.Path
	}
	return UserConfigPath()
}

// Load reads settings.
// Search order: customPath -> ~/.vonsh/configs/vonsh.yaml -> ./configs/vonsh.yaml -> embedded default
func Load(customPath string) (Settings, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Settings{}, Source{}, err
		}
		return cfg, Source{Kind: SourceCustom, Path: customPath}, nil
	}

	// Try user config directory
	if p := UserConfigPath(); p != "" {
		if cfg, err := readFile(p); err == nil {
			return cfg, Source{Kind: SourceUser, Path: p}, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", fileName)
	if cfg, err := readFile(local); err == nil {
		return cfg, Source{Kind: SourceLocal, Path: local}, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultSettings(), Source{Kind: SourceBuiltin}, nil // Fallback to hardcoded if embed fails
	}
	return cfg, Source{Kind: SourceEmbedded}, nil
}

func readFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the defaults, so omitted fields keep their
// default values, then normalizes the result.
func parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vonsh", "configs", fileName)
}

// FileStore writes settings back to a YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store writes to.
func (f *FileStore) Path() string { return f.path }

// Save writes s, creating parent directories as needed.
func (f *FileStore) Save(s Settings) error {
	if f.path == "" {
		return fmt.Errorf("config: no path to save settings to")
	}
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", f.path, err)
	}
	return nil
}
