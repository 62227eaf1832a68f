package config_test

import (
	"testing"

	"github.com/km-arc/go-cleanarch/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "CleanArch"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Storage.Driver", cfg.Storage.Driver, "memory"},
		{"Storage.Path", cfg.Storage.Path, "data/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "UsersAPI")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", "/var/lib/users")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "UsersAPI" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "UsersAPI")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Debug {
		t.Error("App.Debug: got true, want false")
	}
	if cfg.Storage.Driver != "file" {
		t.Errorf("Storage.Driver: got %q want %q", cfg.Storage.Driver, "file")
	}
	if cfg.Storage.Path != "/var/lib/users" {
		t.Errorf("Storage.Path: got %q want %q", cfg.Storage.Path, "/var/lib/users")
	}
}

// ── Raw accessors ────────────────────────────────────────────────────────────

func TestGet_FallsBackWhenUnset(t *testing.T) {
	if got := config.Get("NOT_SET_AT_ALL", "fallback"); got != "fallback" {
		t.Errorf("Get: got %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 7); got != 42 {
		t.Errorf("GetInt: got %d, want 42", got)
	}
	if got := config.GetInt("SOME_OTHER_INT", 7); got != 7 {
		t.Errorf("GetInt fallback: got %d, want 7", got)
	}

	t.Setenv("BAD_INT", "nope")
	if got := config.GetInt("BAD_INT", 7); got != 7 {
		t.Errorf("GetInt invalid: got %d, want 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("SOME_BOOL", "true")
	if !config.GetBool("SOME_BOOL", false) {
		t.Error("GetBool: got false, want true")
	}

	t.Setenv("BAD_BOOL", "definitely")
	if !config.GetBool("BAD_BOOL", true) {
		t.Error("GetBool invalid: got false, want the fallback true")
	}
}
