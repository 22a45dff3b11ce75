package minecraft

import (
	"encoding/json"
	"path"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultLibrariesURL is used for libraries that only have a maven name
const DefaultLibrariesURL = "https://libraries.minecraft.net/"

// Artifact is an object describing a "thing" that can be downloaded
// It is used to download libraries and the minecraft client itself
type Artifact struct {
	// Path of the jar file relative to the libraries folder
	// Path is not set for the minecraft client itself
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size json.Number `json:"size,omitempty"`
	// URL to download the jar file
	URL string `json:"url"`
}

// Libraries as a collection of minecraft libs
type Libraries []Library

// Required returns only the libraries whose rules allow them on p.
// Libraries with a natives map are skipped if they have no native for p
func (l Libraries) Required(p Platform) Libraries {
	required := make(Libraries, 0, len(l))

	for _, lib := range l {
		include := true
		for _, rule := range lib.Rules {
			if !rule.AppliesTo(p) {
				include = false
				break
			}
		}
		// did some rules not apply? skip this library
		if !include {
			continue
		}

		// skip native not available for this platform
		if len(lib.Natives) != 0 && lib.Natives[p.osName()] == "" {
			continue
		}

		required = append(required, lib)
	}

	return required
}

// Library is a minecraft library
type Library struct {
	// Name is the maven coordinate of the library (group:name:version)
	Name      string `json:"name"`
	Downloads struct {
		// Artifact is the jar that goes on the classpath. nil for natives-only libraries
		Artifact *Artifact `json:"artifact,omitempty"`
		// Classifiers is a list of additional artifacts.
		// Keys containing "natives" are native bundles.
		// This field is no longer used after 1.19
		Classifiers map[string]Artifact `json:"classifiers,omitempty"`
	} `json:"downloads"`
	// Rules is a list of rules that determine whether this library should be included.
	// If no rules are specified, the library is included by default.
	Rules []Rule `json:"rules,omitempty"`
	// Natives is a map of OS names to native classifier names.
	// This field is no longer used after 1.19
	Natives map[string]string `json:"natives,omitempty"`
}

// HasArtifact returns true if this library declares a plain (classpath) artifact
func (l *Library) HasArtifact() bool {
	return l.Downloads.Artifact != nil
}

// ArtifactPath returns the slash separated artifact path relative to the libraries folder.
// It falls back to the maven path derived from Name
func (l *Library) ArtifactPath() string {
	if l.Downloads.Artifact != nil && l.Downloads.Artifact.Path != "" {
		return l.Downloads.Artifact.Path
	}
	return mavenPath(l.Name)
}

// ArtifactURL returns the download url of the artifact
func (l *Library) ArtifactURL() string {
	if l.Downloads.Artifact != nil && l.Downloads.Artifact.URL != "" {
		return l.Downloads.Artifact.URL
	}
	return DefaultLibrariesURL + l.ArtifactPath()
}

// ArtifactSha1 returns the declared sha1 of the artifact (can be empty)
func (l *Library) ArtifactSha1() string {
	if l.Downloads.Artifact == nil {
		return ""
	}
	return l.Downloads.Artifact.Sha1
}

// NativeClassifiers returns the keys of all native bundles in sorted order.
// If p is set and the library has a natives map, only the classifier for p is returned
func (l *Library) NativeClassifiers(p *Platform) []string {
	if p != nil && len(l.Natives) != 0 {
		key := strings.ReplaceAll(l.Natives[p.osName()], "${arch}", p.bits())
		if _, ok := l.Downloads.Classifiers[key]; ok && IsNativeClassifier(key) {
			return []string{key}
		}
		return nil
	}

	keys := maps.Keys(l.Downloads.Classifiers)
	natives := keys[:0]
	for _, key := range keys {
		if IsNativeClassifier(key) {
			natives = append(natives, key)
		}
	}
	slices.Sort(natives)
	return natives
}

// IsNativeClassifier returns true if the classifier key denotes a native bundle
func IsNativeClassifier(key string) bool {
	return strings.Contains(key, "natives")
}

// mavenPath turns "group:name:version" into "group/path/name/version/name-version.jar".
// It returns an empty string for invalid coordinates
func mavenPath(name string) string {
	grouped := strings.Split(name, ":")
	if len(grouped) < 3 || grouped[0] == "" || grouped[1] == "" || grouped[2] == "" {
		return ""
	}
	basePath := strings.ReplaceAll(grouped[0], ".", "/")
	artifact := grouped[1]
	version := grouped[2]

	return path.Join(basePath, artifact, version, artifact+"-"+version+".jar")
}
