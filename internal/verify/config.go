package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const ConfigFile = "zcheck.toml"

var ErrConfigNotFound = errors.New("config file not found")

// Config represents the zcheck.toml configuration file.
type Config struct {
	Default Default `toml:"default"`
	Checks  []Check `toml:"check"`
}

// Default holds values inherited by all checks unless overridden.
type Default struct {
	Text          string   `toml:"text"`
	Codecs        []string `toml:"codecs"`
	CompressCap   int      `toml:"compress-capacity"`
	DecompressCap int      `toml:"decompress-capacity"`
}

// Check defines a named verification.
type Check struct {
	Name string `toml:"name"`

	// Input (overrides default)
	Text  string `toml:"text"`
	Codec string `toml:"codec"`

	// Capacities (override default)
	CompressCap   int `toml:"compress-capacity"`
	DecompressCap int `toml:"decompress-capacity"`
}

// LoadConfig loads configuration from path, or searches upward from cwd.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		if path = findConfig(); path == "" {
			return nil, ErrConfigNotFound
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &cfg, nil
}

func findConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for dir := cwd; ; {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ToSpecs converts selected checks to Spec slice. A check without a codec
// expands into one spec per default codec; with no checks at all, the
// defaults alone produce the spec list.
func (c *Config) ToSpecs(names []string) ([]*Spec, error) {
	checks, err := c.selectChecks(names)
	if err != nil {
		return nil, err
	}

	if len(checks) == 0 {
		return c.defaultSpecs(), nil
	}

	var specs []*Spec
	for _, chk := range checks {
		specs = append(specs, c.toSpecs(chk)...)
	}
	return specs, nil
}

func (c *Config) selectChecks(names []string) ([]*Check, error) {
	if len(names) == 0 {
		checks := make([]*Check, len(c.Checks))
		for i := range c.Checks {
			checks[i] = &c.Checks[i]
		}
		return checks, nil
	}

	checks := make([]*Check, 0, len(names))
	for _, name := range names {
		found := false
		for i := range c.Checks {
			if c.Checks[i].Name == name {
				checks = append(checks, &c.Checks[i])
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("check %q not found", name)
		}
	}
	return checks, nil
}

func (c *Config) defaultSpecs() []*Spec {
	d := &c.Default
	codecs := d.Codecs
	if len(codecs) == 0 {
		codecs = []string{""}
	}

	specs := make([]*Spec, len(codecs))
	for i, name := range codecs {
		specs[i] = &Spec{
			Text:          d.Text,
			Codec:         name,
			CompressCap:   d.CompressCap,
			DecompressCap: d.DecompressCap,
		}
	}
	return specs
}

func (c *Config) toSpecs(chk *Check) []*Spec {
	d := &c.Default

	codecs := []string{chk.Codec}
	if chk.Codec == "" && len(d.Codecs) > 0 {
		codecs = d.Codecs
	}

	specs := make([]*Spec, len(codecs))
	for i, name := range codecs {
		specs[i] = &Spec{
			Name:          chk.Name,
			Text:          or(chk.Text, d.Text),
			Codec:         name,
			CompressCap:   orInt(chk.CompressCap, d.CompressCap),
			DecompressCap: orInt(chk.DecompressCap, d.DecompressCap),
		}
	}
	return specs
}

func or(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func orInt(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
