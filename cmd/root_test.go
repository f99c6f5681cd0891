package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/pick/internal/config"
)

func TestCatalogPath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		db   string
		want string
	}{
		{
			name: "relative path joins base dir",
			dir:  "/work",
			db:   ".pick/catalog.db",
			want: filepath.Join("/work", ".pick", "catalog.db"),
		},
		{
			name: "absolute path kept",
			dir:  "/work",
			db:   "/var/lib/pick.db",
			want: "/var/lib/pick.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalogPath(tt.dir, config.Settings{DBPath: tt.db}); got != tt.want {
				t.Errorf("catalogPath(%q, %q) = %q, want %q", tt.dir, tt.db, got, tt.want)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	oldBase, oldDB := baseDir, dbPath
	t.Cleanup(func() { baseDir, dbPath = oldBase, oldDB })
	baseDir, dbPath = dir, ""

	if err := config.Save(dir, &config.Settings{Placeholder: "Choose...", Width: 20}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if s.Placeholder != "Choose..." || s.Width != 20 {
		t.Errorf("file values lost: %+v", s)
	}
	if s.MaxVisible != 6 || s.DBPath != config.DefaultDBPath {
		t.Errorf("defaults not applied: %+v", s)
	}

	dbPath = "other.db"
	s, err = loadSettings()
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if s.DBPath != "other.db" {
		t.Errorf("--db not applied: DBPath = %q", s.DBPath)
	}
}

func TestOpenCatalogMissing(t *testing.T) {
	oldBase := baseDir
	t.Cleanup(func() { baseDir = oldBase })
	baseDir = t.TempDir()

	if _, err := openCatalog(config.Settings{}.WithDefaults()); err == nil {
		t.Fatal("expected error for a missing catalog")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"demo": false, "select": false, "seed": false, "lists": false, "add": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestNormalizeFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(normalizeFlag)
	var out string
	fs.StringVar(&out, "log-file", "", "")

	if err := fs.Parse([]string{"--log_file", "x.log"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out != "x.log" {
		t.Errorf("log-file = %q, want x.log", out)
	}
}
