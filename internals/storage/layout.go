package storage

import (
	"os"
	"path/filepath"
	"sort"
)

// Layout describes where everything required to launch minecraft lives on disk.
// All paths are derived from Root, so a Layout pointed at a temporary directory
// is fully isolated from the real installation.
type Layout struct {
	// Root is the directory containing the manifest, versions, libraries,
	// assets & natives folders. it defaults to $HOME/.minecraft
	Root string
	// NativesPerVersion scopes extracted natives to a subdirectory per version id.
	// If false, all versions share one natives directory.
	NativesPerVersion bool
}

// New returns a Layout rooted at the given directory. A relative root is made
// absolute, so paths stay valid for processes started in another directory
func New(root string) *Layout {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Layout{Root: root}
}

// Default returns a Layout rooted at $HOME/.minecraft
func Default() (*Layout, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return New(filepath.Join(home, ".minecraft")), nil
}

// ManifestPath returns the path of the cached version manifest
func (l *Layout) ManifestPath() string {
	return filepath.Join(l.Root, "version_manifest.json")
}

// ProfilesPath returns the path of the launcher profiles file
func (l *Layout) ProfilesPath() string {
	return filepath.Join(l.Root, "launcher_profiles.json")
}

// VersionsDir returns the path to the versions directory
func (l *Layout) VersionsDir() string {
	return filepath.Join(l.Root, "versions")
}

// VersionDir returns the directory of one version
func (l *Layout) VersionDir(id string) string {
	return filepath.Join(l.VersionsDir(), id)
}

// DescriptorPath returns the path of the version json
func (l *Layout) DescriptorPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".json")
}

// ClientJarPath returns the path of the client jar
func (l *Layout) ClientJarPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".jar")
}

// LibrariesDir returns the path to the libraries directory
func (l *Layout) LibrariesDir() string {
	return filepath.Join(l.Root, "libraries")
}

// LibraryPath returns the absolute path of a library artifact.
// p is the slash separated path from the version json
func (l *Layout) LibraryPath(p string) string {
	return filepath.Join(l.LibrariesDir(), filepath.FromSlash(p))
}

// AssetsDir returns the path to the assets directory
func (l *Layout) AssetsDir() string {
	return filepath.Join(l.Root, "assets")
}

// AssetIndexPath returns the path of the asset index for a version
func (l *Layout) AssetIndexPath(id string) string {
	return filepath.Join(l.AssetsDir(), "indexes", id+".json")
}

// AssetObjectPath returns the content addressed path of an asset object
func (l *Layout) AssetObjectPath(hash string) string {
	return filepath.Join(l.AssetsDir(), "objects", hash[:2], hash)
}

// NativesDir returns the directory natives get extracted to
func (l *Layout) NativesDir(id string) string {
	if l.NativesPerVersion {
		return filepath.Join(l.Root, "natives", id)
	}
	return filepath.Join(l.Root, "natives")
}

// InstalledVersions returns the ids of all directories in the versions folder, sorted
func (l *Layout) InstalledVersions() ([]string, error) {
	entries, err := os.ReadDir(l.VersionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
