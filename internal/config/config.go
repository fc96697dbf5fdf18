package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadLocal when the repository has no config file.
var ErrNoConfig = errors.New("no local config")

// LocalNames are searched, in order, at the repository root.
var LocalNames = []string{".secretscan.yml", ".secretscan.yaml", "secretscan.yml", "secretscan.yaml"}

// FileConfig is the on-disk YAML configuration shape. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	Mode     *string `yaml:"mode"`
	MaxBytes *int64  `yaml:"max_bytes"`
	Format   *string `yaml:"format"`
	Backend  *string `yaml:"backend"`
	Exclude  *string `yaml:"exclude"`

	ExtraScanExtensions   []string `yaml:"extra_scan_extensions"`
	ExtraBannedExtensions []string `yaml:"extra_banned_extensions"`
	ExtraReservedDirs     []string `yaml:"extra_reserved_dirs"`
}

// LoadFile reads a YAML config file from the provided path. Unknown keys are
// rejected so typos do not silently weaken the policy.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal loads the first config file found at repoRoot. It returns the
// path it loaded, or ErrNoConfig.
func LoadLocal(repoRoot string) (FileConfig, string, error) {
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFile(p)
			return cfg, p, err
		}
	}
	return FileConfig{}, "", ErrNoConfig
}
