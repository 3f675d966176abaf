package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	content := `{
  // scaffolded by the template command
  "projectBaseName": "Demo",
  "srcDirectory": "src",
  "testDirectory": "tests",
  "dbProvider": "postgres",
}
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ProjectBaseName != "Demo" {
		t.Errorf("ProjectBaseName = %q, want %q", cfg.ProjectBaseName, "Demo")
	}
	if cfg.SrcDirectory != filepath.Join(dir, "src") {
		t.Errorf("SrcDirectory = %q, want %q", cfg.SrcDirectory, filepath.Join(dir, "src"))
	}
	if cfg.DbProvider != "postgres" {
		t.Errorf("DbProvider = %q, want %q", cfg.DbProvider, "postgres")
	}
	if cfg.Journal != "" {
		t.Errorf("Journal = %q, want empty", cfg.Journal)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`{"projectBaseName": `), 0644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := LoadConfig(dir)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Errorf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere")
	cfg := &Config{ProjectBaseName: "Demo", SrcDirectory: abs, DbProvider: "sqlserver"}

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", *got, *cfg)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := Config{ProjectBaseName: "Demo", SrcDirectory: "/src", DbProvider: "postgres"}

	got := base.Merge(Config{DbProvider: "sqlite", Journal: "/tmp/j.db"})

	want := Config{ProjectBaseName: "Demo", SrcDirectory: "/src", DbProvider: "sqlite", Journal: "/tmp/j.db"}
	if got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{ProjectBaseName: "Demo", SrcDirectory: "/src"}, false},
		{"missing base name", Config{SrcDirectory: "/src"}, true},
		{"missing src", Config{ProjectBaseName: "Demo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
