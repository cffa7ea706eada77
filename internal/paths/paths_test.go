package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteCreatesParents(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "out.bin")
	if err := AtomicWrite(p, []byte("hello")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestAtomicWriteOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.bin")
	if err := AtomicWrite(p, []byte("first version")); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(p)
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestAtomicWriteFailedRenameCleansUp(t *testing.T) {
	// A non-empty directory at the target path makes the rename fail.
	p := filepath.Join(t.TempDir(), "icon16.png")
	if err := os.MkdirAll(filepath.Join(p, "keep"), DirPerm); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("png")); err == nil {
		t.Fatal("expected error renaming over a directory")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
	if _, err := os.Stat(filepath.Join(p, "keep")); err != nil {
		t.Errorf("existing target disturbed: %v", err)
	}
}

func TestDataDirUsesAPPDATA(t *testing.T) {
	t.Setenv("APPDATA", "/fake/appdata")
	got := DataDir()
	want := filepath.Join("/fake/appdata", AppDirName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestDataDirFallsBackWithoutAPPDATA(t *testing.T) {
	t.Setenv("APPDATA", "")
	got := DataDir()

	// Should use ~/.config/bubbleicon or temp dir — either way must end with "bubbleicon".
	if filepath.Base(got) != AppDirName {
		t.Errorf("DataDir() = %q, expected base dir %q", got, AppDirName)
	}
}
