package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
[interpreter]
max_call_depth = 50

[repl]
prompt = ">> "

[log]
level = "debug"
color = false
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Interpreter.MaxCallDepth != 50 {
		t.Errorf("max_call_depth should be 50, got %d", cfg.Interpreter.MaxCallDepth)
	}
	if cfg.Repl.Prompt != ">> " {
		t.Errorf("prompt should be '>> ', got %q", cfg.Repl.Prompt)
	}
	if cfg.Repl.Continuation != "... " || cfg.Repl.HistoryFile != ".pulse_history" {
		t.Errorf("missing keys should keep their defaults, got %+v", cfg.Repl)
	}
	if cfg.LogLevel() != logrus.DebugLevel || cfg.Log.Color {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		data  string
		field string
	}{
		{"[interpreter]\nmax_call_depth = 0\n", "interpreter.max_call_depth"},
		{"[log]\nlevel = \"loud\"\n", "log.level"},
		{"[interpreter\n", "parse error"},
	}
	for _, c := range cases {
		_, err := ParseConfig(c.data)
		if err == nil || !strings.Contains(err.Error(), c.field) {
			t.Errorf("%q should fail mentioning %s, got %v", c.data, c.field, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "pulse.toml")
	if err := os.WriteFile(path, []byte("[interpreter]\nmax_call_depth = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Interpreter.MaxCallDepth != 7 {
		t.Errorf("max_call_depth should be 7, got %d", cfg.Interpreter.MaxCallDepth)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("an explicit missing file should fail")
	}

	// Without a path the default file is optional
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	empty := t.TempDir()
	if err := os.Chdir(empty); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
