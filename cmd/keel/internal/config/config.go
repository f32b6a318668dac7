// Package config loads the optional keel.yaml configuration.
package config

import (
	"os"
	"sort"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/keel/pkg/errors"
	"github.com/go-drift/keel/pkg/graphics"
)

// DefaultFile is the configuration file name looked up in the working
// directory when no --config flag is given.
const DefaultFile = "keel.yaml"

// Config mirrors the keel.yaml schema.
type Config struct {
	Requires  string            `yaml:"requires,omitempty"`
	Palette   map[string]string `yaml:"palette,omitempty"`
	Partition PartitionConfig   `yaml:"partition"`
	Serialize SerializeConfig   `yaml:"serialize"`
}

// PartitionConfig tunes the partition command.
type PartitionConfig struct {
	Chunks int `yaml:"chunks,omitempty"`
}

// SerializeConfig tunes the serialize command.
type SerializeConfig struct {
	Compress bool `yaml:"compress,omitempty"`
}

// Resolved contains the configuration after defaults and validation.
type Resolved struct {
	// Palette is the default color vocabulary extended with the
	// file's palette entries.
	Palette graphics.Palette
	// Chunks is the partition chunk count, 0 meaning automatic.
	Chunks int
	// Compress selects compressed file storage for serialize.
	Compress bool
}

// LoadOptional reads the configuration file at path if present.
// A missing file yields the zero configuration.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.E("config.LoadOptional", errors.KindIO, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.E("config.LoadOptional", errors.KindConfig, err)
	}

	return &cfg, nil
}

// Resolve loads the file at path and validates it against the running
// CLI version. Versions that do not parse as semantic versions bypass
// the requires gate, so ad-hoc dev builds keep working.
func Resolve(path, version string) (*Resolved, error) {
	const op = "config.Resolve"

	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	if cfg.Requires != "" {
		want := canonical(cfg.Requires)
		if !semver.IsValid(want) {
			return nil, errors.Errorf(op, errors.KindConfig,
				"requires %q is not a semantic version", cfg.Requires)
		}
		if have := canonical(version); semver.IsValid(have) && semver.Compare(have, want) < 0 {
			return nil, errors.Errorf(op, errors.KindConfig,
				"keel %s is older than the required %s", version, cfg.Requires)
		}
	}

	if cfg.Partition.Chunks < 0 {
		return nil, errors.Errorf(op, errors.KindConfig,
			"partition.chunks must not be negative, got %d", cfg.Partition.Chunks)
	}

	palette := graphics.DefaultPalette()
	names := make([]string, 0, len(cfg.Palette))
	for name := range cfg.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		// Entries must spell colors out; resolving one entry against
		// another would make the file order-sensitive.
		var hexOnly graphics.Palette
		c, err := hexOnly.Parse(cfg.Palette[name])
		if err != nil {
			return nil, errors.Errorf(op, errors.KindConfig,
				"palette entry %q: %q is not a #RRGGBB color", name, cfg.Palette[name])
		}
		palette = palette.With(name, c)
	}

	return &Resolved{
		Palette:  palette,
		Chunks:   cfg.Partition.Chunks,
		Compress: cfg.Serialize.Compress,
	}, nil
}

// canonical prefixes v so x/mod/semver accepts the bare form users
// write in yaml.
func canonical(v string) string {
	if v == "" || v[0] == 'v' {
		return v
	}
	return "v" + v
}
