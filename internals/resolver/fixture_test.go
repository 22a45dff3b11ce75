package resolver

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/downloadmgr/proxytest"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/storage"
)

const (
	manifestURL = "https://launchermeta.test/mc/game/version_manifest.json"
	assetsURL   = "https://resources.test/"
	version     = "1.8.9"
)

// fixture is a fake remote with one complete version
type fixture struct {
	srv      *proxytest.Server
	layout   *storage.Layout
	resolver *Resolver

	descriptor *minecraft.LaunchManifest
	// libURLs are the artifact urls of the libraries, in order
	libURLs   []string
	nativeURL string
	assets    map[string]minecraft.AssetObject
}

func zipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		entry.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func jsonBytes(t *testing.T, v interface{}) []byte {
	t.Helper()
	buf, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

// newFixture serves a version with five libraries: four plain artifacts with a
// natives-only library in the middle (index 2)
func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := proxytest.New()
	t.Cleanup(srv.Close)

	f := &fixture{srv: srv, layout: storage.New(t.TempDir())}

	man := &minecraft.LaunchManifest{ID: version, Type: "release", MainClass: "net.minecraft.client.main.Main", Assets: "1.8"}
	man.Downloads.Client = minecraft.Artifact{
		URL:  "https://launcher.test/client.jar",
		Sha1: srv.Add("https://launcher.test/client.jar", []byte("client jar")),
	}

	for i := 0; i < 5; i++ {
		lib := minecraft.Library{Name: fmt.Sprintf("com.example:lib%d:1.0", i)}
		if i == 2 {
			lib.Name = "org.lwjgl:lwjgl-platform:2.9.4"
			f.nativeURL = "https://libraries.test/lwjgl-natives-linux.jar"
			sha := srv.Add(f.nativeURL, zipBytes(t, map[string]string{
				"META-INF/MANIFEST.MF": "Manifest-Version: 1.0",
				"linux/x64/liblwjgl.so": "native code",
			}))
			lib.Downloads.Classifiers = map[string]minecraft.Artifact{
				"natives-linux": {Path: "org/lwjgl/lwjgl-platform-natives-linux.jar", URL: f.nativeURL, Sha1: sha},
				"javadoc":       {Path: "org/lwjgl/javadoc.jar", URL: "https://libraries.test/javadoc.jar"},
			}
			lib.Natives = map[string]string{"linux": "natives-linux"}
			man.Libraries = append(man.Libraries, lib)
			continue
		}

		u := fmt.Sprintf("https://libraries.test/lib%d.jar", i)
		lib.Downloads.Artifact = &minecraft.Artifact{
			Path: fmt.Sprintf("com/example/lib%d/1.0/lib%d-1.0.jar", i, i),
			URL:  u,
			Sha1: srv.Add(u, []byte(u)),
		}
		f.libURLs = append(f.libURLs, u)
		man.Libraries = append(man.Libraries, lib)
	}

	f.assets = make(map[string]minecraft.AssetObject)
	for _, name := range []string{"icons/icon_16x16.png", "sounds/step.ogg", "sounds/step_copy.ogg"} {
		content := name
		// two names share one object
		if name == "sounds/step_copy.ogg" {
			content = "sounds/step.ogg"
		}
		obj := minecraft.AssetObject{Hash: proxytest.Sha1([]byte(content)), Size: len(content)}
		srv.Add(obj.DownloadURL(assetsURL), []byte(content))
		f.assets[name] = obj
	}
	indexURL := "https://launchermeta.test/indexes/1.8.json"
	man.AssetIndex.ID = "1.8"
	man.AssetIndex.URL = indexURL
	man.AssetIndex.Sha1 = srv.Add(indexURL, jsonBytes(t, minecraft.AssetIndex{Objects: f.assets}))

	f.descriptor = man
	srv.Add("https://launchermeta.test/1.8.9.json", jsonBytes(t, man))

	versions := minecraft.VersionManifest{Versions: []minecraft.VersionEntry{
		{ID: "1.20.2", Type: minecraft.TypeRelease, URL: "https://launchermeta.test/1.20.2.json"},
		{ID: version, Type: minecraft.TypeRelease, URL: "https://launchermeta.test/1.8.9.json"},
	}}
	srv.Add(manifestURL, jsonBytes(t, versions))

	fetcher := downloadmgr.NewFetcher(srv.Client(), downloadmgr.Proxy{Prefix: srv.Prefix()})
	f.resolver = New(f.layout, fetcher)
	f.resolver.ManifestURL = manifestURL
	f.resolver.AssetsURL = assetsURL
	return f
}
