package config

import (
	"os"
	"path/filepath"
	"testing"

	"vaultdedup/internal/platform/errors"
	"vaultdedup/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"-i", "export.csv"})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Input, "export.csv", "input")
	testutil.AssertEqual(t, cfg.Output, "export_deduplicated.csv", "derived output")
	testutil.AssertEqual(t, cfg.DefaultFolder, "Personal", "default folder")
	testutil.AssertFalse(t, cfg.Analyze, "analyze defaults off")
	testutil.AssertFalse(t, cfg.Quiet, "quiet defaults off")
	testutil.AssertEqual(t, len(cfg.Filter), 0, "no filter keywords")
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--input", "vault.csv",
		"--output", "clean.csv",
		"--filter", "myspace,old bank",
		"--filter", "deprecated",
		"--default-folder", "Archive",
		"--analyze",
		"--quiet",
	})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Output, "clean.csv", "explicit output")
	testutil.AssertEqual(t, len(cfg.Filter), 3, "filter keywords accumulate")
	testutil.AssertEqual(t, cfg.Filter[1], "old bank", "comma-separated keyword")
	testutil.AssertEqual(t, cfg.DefaultFolder, "Archive", "default folder override")
	testutil.AssertTrue(t, cfg.Analyze, "analyze flag")
	testutil.AssertTrue(t, cfg.Quiet, "quiet flag")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VAULTDEDUP_INPUT", "env.csv")
	t.Setenv("VAULTDEDUP_FILTER", "a,b")
	t.Setenv("VAULTDEDUP_ANALYZE", "yes")

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Input, "env.csv", "input from env")
	testutil.AssertEqual(t, len(cfg.Filter), 2, "filter from env")
	testutil.AssertTrue(t, cfg.Analyze, "analyze from env")
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VAULTDEDUP_INPUT", "env.csv")
	t.Setenv("VAULTDEDUP_QUIET", "true")

	cfg, err := Load([]string{"-i", "flag.csv"})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Input, "flag.csv", "flag wins over env")
	testutil.AssertTrue(t, cfg.Quiet, "untouched env value survives")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultdedup.yaml")
	content := "input: file.csv\nfilter: [one, two]\ndefault_folder: Imported\nquiet: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Input, "file.csv", "input from file")
	testutil.AssertEqual(t, len(cfg.Filter), 2, "filter from file")
	testutil.AssertEqual(t, cfg.DefaultFolder, "Imported", "folder from file")
	testutil.AssertTrue(t, cfg.Quiet, "quiet from file")
	testutil.AssertEqual(t, cfg.ConfigFile, path, "config path recorded")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultdedup.yaml")
	if err := os.WriteFile(path, []byte("input: file.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VAULTDEDUP_INPUT", "env.csv")

	cfg, err := Load([]string{"--config", path})
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, cfg.Input, "env.csv", "env wins over file")
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load([]string{"--config", path})
	testutil.AssertError(t, err, "broken yaml")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidConfig), "config sentinel")
}

func TestLoadUnknownFlag(t *testing.T) {
	_, err := Load([]string{"--no-such-flag"})
	testutil.AssertError(t, err, "unknown flag")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidConfig), "config sentinel")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	testutil.AssertError(t, err, "input required")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidConfig), "config sentinel")

	cfg.Input = "export.csv"
	testutil.AssertNoError(t, cfg.Validate(), "valid config")

	version := DefaultConfig()
	version.PrintVersion = true
	testutil.AssertNoError(t, version.Validate(), "version run needs no input")
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"export.csv", "export_deduplicated.csv"},
		{"/tmp/vault.csv", "/tmp/vault_deduplicated.csv"},
		{"noext", "noext_deduplicated"},
		{"two.dots.csv", "two.dots_deduplicated.csv"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, DeriveOutputPath(tt.input), tt.expected, tt.input)
	}
}
