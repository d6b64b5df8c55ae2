package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTexfmtToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "texfmt.toml")
	if err := os.WriteFile(want, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findTexfmtToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected to find texfmt.toml in an ancestor")
	}
	if got != want {
		t.Errorf("found %q, want %q", got, want)
	}
}

func TestFindTexfmtToml_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{root, nested} {
		if err := os.WriteFile(filepath.Join(dir, "texfmt.toml"), []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, ok, err := findTexfmtToml(nested)
	if err != nil || !ok {
		t.Fatalf("lookup failed: ok=%v err=%v", ok, err)
	}
	if got != filepath.Join(nested, "texfmt.toml") {
		t.Errorf("found %q, want the nearest one", got)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texfmt.toml")
	content := `
[format]
color = "off"

[tokenize]
format = "json"
jobs = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.Color != "off" {
		t.Errorf("format.color = %q, want %q", cfg.Format.Color, "off")
	}
	if cfg.Tokenize.Format != "json" {
		t.Errorf("tokenize.format = %q, want %q", cfg.Tokenize.Format, "json")
	}
	if cfg.Tokenize.Jobs != 3 {
		t.Errorf("tokenize.jobs = %d, want 3", cfg.Tokenize.Jobs)
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texfmt.toml")
	if err := os.WriteFile(path, []byte("[format\ncolor="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFileConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestUseColorFor_ExplicitChoices(t *testing.T) {
	if !useColorFor("on", os.Stdout) {
		t.Error(`"on" must force color`)
	}
	if useColorFor("off", os.Stdout) {
		t.Error(`"off" must disable color`)
	}
}
