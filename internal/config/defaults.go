package config

import (
	_ "embed"
)

//go:embed defaults/vonsh.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
