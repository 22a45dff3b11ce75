package minecraft

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeZip creates a zip archive at path containing the given name → content entries
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write([]byte(entries[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExtractNatives(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "natives-linux.jar")
	writeZip(t, archive, map[string]string{
		"META-INF/MANIFEST.MF":  "Manifest-Version: 1.0",
		"foo/bar/libX.so":       "linux",
		"lwjgl64.dll":           "windows",
		"macos/liblwjgl.dylib":  "mac",
		"org/lwjgl/Sys.class":   "class",
		"foo/bar/libX.so.1.txt": "not a library",
	})

	target := filepath.Join(dir, "natives")
	if err := ExtractNatives(archive, target); err != nil {
		t.Fatal(err)
	}

	got := listDir(t, target)
	want := []string{"libX.so", "liblwjgl.dylib", "lwjgl64.dll"}
	if len(got) != len(want) {
		t.Fatalf("extracted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extracted %v, want %v", got, want)
		}
	}

	content, err := os.ReadFile(filepath.Join(target, "libX.so"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "linux" {
		t.Errorf("libX.so has content %q", content)
	}
	if _, err := os.Stat(filepath.Join(target, "foo")); !os.IsNotExist(err) {
		t.Error("directory structure of the archive was kept")
	}
}

func TestExtractNatives_lastWriteWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.jar")
	second := filepath.Join(dir, "second.jar")
	writeZip(t, first, map[string]string{"a/libshared.so": "first"})
	writeZip(t, second, map[string]string{"b/libshared.so": "second"})

	target := filepath.Join(dir, "natives")
	for _, archive := range []string{first, second} {
		if err := ExtractNatives(archive, target); err != nil {
			t.Fatal(err)
		}
	}

	content, _ := os.ReadFile(filepath.Join(target, "libshared.so"))
	if string(content) != "second" {
		t.Errorf("expected the last archive to win, got %q", content)
	}
}

func TestExtractNatives_invalidArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "broken.jar")
	if err := os.WriteFile(archive, []byte("this is not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	err := ExtractNatives(archive, filepath.Join(dir, "natives"))
	var invalid *InvalidArchiveError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArchiveError, got %v", err)
	}
}

func TestExtractNatives_missingArchive(t *testing.T) {
	dir := t.TempDir()
	err := ExtractNatives(filepath.Join(dir, "missing.jar"), filepath.Join(dir, "natives"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not exist error, got %v", err)
	}
}

func TestIsNativeLibrary(t *testing.T) {
	tests := map[string]bool{
		"liblwjgl.so":      true,
		"lwjgl.dll":        true,
		"libglfw.dylib":    true,
		"lwjgl.jar":        false,
		"libfoo.so.sha1":   false,
		"META-INF/foo.txt": false,
	}
	for name, want := range tests {
		if got := IsNativeLibrary(name); got != want {
			t.Errorf("IsNativeLibrary(%q) = %v, want %v", name, got, want)
		}
	}
}
