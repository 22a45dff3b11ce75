package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLayout_paths(t *testing.T) {
	root := filepath.FromSlash("/games/mc")
	l := New(root)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"manifest", l.ManifestPath(), "/games/mc/version_manifest.json"},
		{"profiles", l.ProfilesPath(), "/games/mc/launcher_profiles.json"},
		{"descriptor", l.DescriptorPath("1.20.2"), "/games/mc/versions/1.20.2/1.20.2.json"},
		{"jar", l.ClientJarPath("1.20.2"), "/games/mc/versions/1.20.2/1.20.2.jar"},
		{"library", l.LibraryPath("org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar"), "/games/mc/libraries/org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar"},
		{"asset index", l.AssetIndexPath("1.20.2"), "/games/mc/assets/indexes/1.20.2.json"},
		{"asset object", l.AssetObjectPath("abc123def"), "/games/mc/assets/objects/ab/abc123def"},
		{"natives", l.NativesDir("1.20.2"), "/games/mc/natives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("got %s, want %s", tt.got, filepath.FromSlash(tt.want))
			}
		})
	}
}

func TestLayout_NativesPerVersion(t *testing.T) {
	l := New("root")
	l.NativesPerVersion = true
	if got := l.NativesDir("1.8.9"); got != filepath.Join(l.Root, "natives", "1.8.9") {
		t.Errorf("NativesDir() = %s", got)
	}
}

func TestNew_relativeRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	l := New("mc")
	if want := filepath.Join(wd, "mc"); l.Root != want {
		t.Errorf("Root = %s, want %s", l.Root, want)
	}
	for _, p := range []string{l.ClientJarPath("1.0"), l.LibraryPath("a/b.jar"), l.NativesDir("1.0"), l.AssetsDir()} {
		if !filepath.IsAbs(p) {
			t.Errorf("%s is not absolute", p)
		}
	}
}

func TestLayout_InstalledVersions(t *testing.T) {
	l := New(t.TempDir())

	ids, err := l.InstalledVersions()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no versions, got %v", ids)
	}

	for _, id := range []string{"1.20.2", "1.8.9"} {
		if err := os.MkdirAll(l.VersionDir(id), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// plain files are not versions
	if err := os.WriteFile(filepath.Join(l.VersionsDir(), "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	ids, err = l.InstalledVersions()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1.20.2", "1.8.9"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("InstalledVersions() = %v, want %v", ids, want)
	}
}
