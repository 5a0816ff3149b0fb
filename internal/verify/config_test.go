package verify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
[default]
text = "default text"
codecs = ["zlib", "zstd"]
compress-capacity = 128
decompress-capacity = 128

[[check]]
name = "demo"

[[check]]
name = "tight"
codec = "snappy"
text = "tight text"
compress-capacity = 64
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Default.Text != "default text" {
		t.Errorf("Default.Text = %q", cfg.Default.Text)
	}
	if len(cfg.Default.Codecs) != 2 {
		t.Errorf("len(Default.Codecs) = %d, want 2", len(cfg.Default.Codecs))
	}
	if len(cfg.Checks) != 2 {
		t.Errorf("len(Checks) = %d, want 2", len(cfg.Checks))
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "[default\ntext = ")

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of malformed TOML succeeded")
	}
}

func TestConfig_ToSpecs(t *testing.T) {
	path := writeConfig(t, testConfig)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("all checks", func(t *testing.T) {
		specs, err := cfg.ToSpecs(nil)
		if err != nil {
			t.Fatalf("ToSpecs() error = %v", err)
		}
		// "demo" expands to both default codecs, "tight" pins snappy.
		if len(specs) != 3 {
			t.Fatalf("len(specs) = %d, want 3", len(specs))
		}
	})

	t.Run("inherits defaults", func(t *testing.T) {
		specs, err := cfg.ToSpecs([]string{"demo"})
		if err != nil {
			t.Fatalf("ToSpecs() error = %v", err)
		}
		if len(specs) != 2 {
			t.Fatalf("len(specs) = %d, want 2", len(specs))
		}
		if specs[0].Text != "default text" {
			t.Errorf("Text = %q, want inherited default", specs[0].Text)
		}
		if specs[0].Codec != "zlib" || specs[1].Codec != "zstd" {
			t.Errorf("codecs = %q, %q; want zlib, zstd", specs[0].Codec, specs[1].Codec)
		}
		if specs[0].CompressCap != 128 {
			t.Errorf("CompressCap = %d, want 128", specs[0].CompressCap)
		}
	})

	t.Run("check overrides", func(t *testing.T) {
		specs, err := cfg.ToSpecs([]string{"tight"})
		if err != nil {
			t.Fatalf("ToSpecs() error = %v", err)
		}
		if len(specs) != 1 {
			t.Fatalf("len(specs) = %d, want 1", len(specs))
		}
		s := specs[0]
		if s.Codec != "snappy" || s.Text != "tight text" {
			t.Errorf("spec = %+v, want snappy/tight text", s)
		}
		if s.CompressCap != 64 {
			t.Errorf("CompressCap = %d, want 64", s.CompressCap)
		}
		if s.DecompressCap != 128 {
			t.Errorf("DecompressCap = %d, want inherited 128", s.DecompressCap)
		}
	})

	t.Run("unknown check", func(t *testing.T) {
		if _, err := cfg.ToSpecs([]string{"missing"}); err == nil {
			t.Error("ToSpecs() with unknown name succeeded")
		}
	})
}

func TestConfig_ToSpecs_NoChecks(t *testing.T) {
	cfg := &Config{Default: Default{Codecs: []string{"gzip"}, CompressCap: 256}}

	specs, err := cfg.ToSpecs(nil)
	if err != nil {
		t.Fatalf("ToSpecs() error = %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("len(specs) = %d, want 1", len(specs))
	}
	if specs[0].Codec != "gzip" || specs[0].CompressCap != 256 {
		t.Errorf("spec = %+v", specs[0])
	}
}
