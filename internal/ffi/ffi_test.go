//go:build darwin || linux || freebsd || windows

package ffi

import (
	"path/filepath"
	"testing"
)

func TestLibraryPathFromEnv(t *testing.T) {
	t.Setenv("TINYGUI_DRIVER", "/opt/lcd/libpanel.so")
	if got := LibraryPath(); got != "/opt/lcd/libpanel.so" {
		t.Errorf("LibraryPath() = %q, want env override", got)
	}
}

func TestLibraryPathDefault(t *testing.T) {
	t.Setenv("TINYGUI_DRIVER", "")
	t.Chdir(t.TempDir())
	if got := LibraryPath(); got == "" || filepath.Dir(got) != "." {
		t.Errorf("LibraryPath() = %q, want bare library name for the system loader", got)
	}
}

func TestOpenMissing(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "missing-driver"))
	if err == nil {
		d.Close()
		t.Fatal("Open of a missing library succeeded")
	}
}
