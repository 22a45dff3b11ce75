package minecraft

import (
	"encoding/json"
	"os"
)

// DefaultManifestURL is the url of the official version manifest
const DefaultManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

var (
	// TypeSnapshot is a snapshot release
	TypeSnapshot = "snapshot"
	// TypeRelease is a full "normal" release
	TypeRelease = "release"
	// TypeOldBeta is a "old_beta" release
	TypeOldBeta = "old_beta"
	// TypeOldAlpha is a "old_alpha" release
	TypeOldAlpha = "old_alpha"
)

// VersionEntry is one released minecraft version in the version manifest
type VersionEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
}

// VersionManifest lists all available minecraft versions (newest first)
type VersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []VersionEntry `json:"versions"`
}

// Find returns the entry with exactly the given id
func (m *VersionManifest) Find(id string) (*VersionEntry, error) {
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			return &m.Versions[i], nil
		}
	}
	return nil, &VersionNotFoundError{ID: id}
}

// OfType returns all versions of the given type (eg. TypeRelease), keeping the order.
// An empty type returns all versions
func (m *VersionManifest) OfType(t string) []VersionEntry {
	if t == "" {
		return m.Versions
	}
	filtered := make([]VersionEntry, 0, len(m.Versions))
	for _, v := range m.Versions {
		if v.Type == t {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// ReadVersionManifest parses the version manifest at path
func ReadVersionManifest(path string) (*VersionManifest, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest := VersionManifest{}
	if err := json.Unmarshal(buf, &manifest); err != nil {
		return nil, &MalformedDescriptorError{Source: path, Err: err}
	}
	if manifest.Versions == nil {
		return nil, &MalformedDescriptorError{Source: path, Field: "versions"}
	}
	return &manifest, nil
}
