package minecraft

import (
	"strings"

	"github.com/minepkg/mclaunch/internals/storage"
)

// Classpath is an ordered list of jar paths
type Classpath []string

// BuildClasspath returns the client jar followed by every library that declares
// a plain artifact, in the order of the version json. Natives-only libraries are skipped
func BuildClasspath(layout *storage.Layout, man *LaunchManifest, versionID string) Classpath {
	cp := make(Classpath, 0, len(man.Libraries)+1)
	cp = append(cp, layout.ClientJarPath(versionID))

	for _, lib := range man.Libraries {
		if !lib.HasArtifact() {
			continue
		}
		cp = append(cp, layout.LibraryPath(lib.ArtifactPath()))
	}
	return cp
}

// Join returns the classpath as a single string using the separator of goos
func (c Classpath) Join(goos string) string {
	return strings.Join(c, Separator(goos))
}

// Separator returns the path list separator of goos
func Separator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}
