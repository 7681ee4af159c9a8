package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("connector: tekla\noutput: /tmp/out\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Connector != "tekla" || c.OutputDir != "/tmp/out" {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("connector: tekla\n"), 0644)

	c := Config{Connector: "rhino"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Connector != "rhino" {
		t.Errorf("flag value should win, got %q", c.Connector)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveProfile_Builtin(t *testing.T) {
	c := Config{Connector: "navisworks"}
	p, err := c.ResolveProfile()
	if err != nil {
		t.Fatalf("ResolveProfile: %v", err)
	}
	if p.Name != "navisworks" {
		t.Errorf("profile = %q", p.Name)
	}
}

func TestResolveProfile_Unknown(t *testing.T) {
	c := Config{Connector: "revit"}
	if _, err := c.ResolveProfile(); err == nil {
		t.Fatal("expected error for unknown connector")
	}
}

func TestResolveProfile_Missing(t *testing.T) {
	var c Config
	if _, err := c.ResolveProfile(); err == nil {
		t.Fatal("expected error when neither connector nor profile is set")
	}
}

func TestValidate(t *testing.T) {
	var c Config
	if err := c.Validate(nil); err == nil {
		t.Fatal("expected error without inputs")
	}
	if err := c.Validate([]string{"a.csv"}); err != nil {
		t.Errorf("file args should satisfy input requirement: %v", err)
	}

	c.InputDir = t.TempDir()
	if err := c.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}

	c.InputDir = "/nonexistent/dir"
	if err := c.Validate(nil); err == nil {
		t.Error("expected error for missing dir")
	}
}
