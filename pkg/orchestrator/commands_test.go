package orchestrator

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/simulated"
)

func TestConfigDirUsesExplicitOverride(t *testing.T) {
	o := New(simulated.NewInput(), simulated.NewOutput(), WithEnvProvider(MapEnvProvider{
		"KEYRX_CONFIG_DIR": "/custom/config",
		"XDG_CONFIG_HOME":  "/should/not/be/used",
	}))

	dir, err := o.ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if dir != "/custom/config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/custom/config")
	}
}

func TestConfigDirFallsBackToHome(t *testing.T) {
	homeVar := "HOME"
	if runtime.GOOS == "windows" {
		homeVar = "USERPROFILE"
	}
	o := New(simulated.NewInput(), simulated.NewOutput(), WithEnvProvider(MapEnvProvider{
		homeVar: filepath.FromSlash("/home/testuser"),
	}))

	dir, err := o.ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	want := filepath.Join(filepath.FromSlash("/home/testuser"), ".config", "keyrx")
	if dir != want {
		t.Fatalf("ConfigDir = %q, want %q", dir, want)
	}
}

func TestConfigDirErrorsWithoutAnyVariable(t *testing.T) {
	o := New(simulated.NewInput(), simulated.NewOutput(), WithEnvProvider(MapEnvProvider{}))
	if _, err := o.ConfigDir(); err == nil {
		t.Fatal("expected an error when no config-dir environment variable is set")
	}
}

func TestLoadProfileResolvesBareNameAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	o := New(simulated.NewInput(), simulated.NewOutput(), WithEnvProvider(MapEnvProvider{
		"KEYRX_CONFIG_DIR": dir,
	}))

	if _, err := o.LoadProfile("default.krx"); err == nil {
		t.Fatal("expected an error: default.krx does not exist in the temp config dir")
	} else if !strings.Contains(err.Error(), dir) {
		t.Fatalf("error %q does not reference resolved config dir %q", err, dir)
	}
}
