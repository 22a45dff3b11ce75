package resolver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/storage"
	"golang.org/x/sync/singleflight"
)

// Stage names passed to OnProgress
const (
	StageLibraries = "libraries"
	StageAssets    = "assets"
)

// Resolver makes sure everything a minecraft version needs to launch is on disk:
// the version json, client jar, libraries, natives & assets.
// It is safe for concurrent use. Concurrent resolves of the same version are coalesced
type Resolver struct {
	Layout  *storage.Layout
	Fetcher *downloadmgr.Fetcher
	Logger  *cmdlog.Logger

	// ManifestURL is where the version manifest is fetched from if it is not cached
	ManifestURL string
	// AssetsURL is the base url of asset objects
	AssetsURL string
	// Platform enables rule based library filtering. If nil every library
	// and every native classifier is installed
	Platform *minecraft.Platform
	// Concurrency is the number of asset objects downloaded in parallel
	Concurrency int
	// OnProgress gets called after each library and asset object.
	// It may be called from multiple goroutines, but never concurrently
	OnProgress func(stage string, done int, total int)

	group singleflight.Group
}

// New returns a Resolver with the official manifest & assets urls
func New(layout *storage.Layout, fetcher *downloadmgr.Fetcher) *Resolver {
	return &Resolver{
		Layout:      layout,
		Fetcher:     fetcher,
		ManifestURL: minecraft.DefaultManifestURL,
		AssetsURL:   minecraft.DefaultAssetsURL,
		Concurrency: 8,
	}
}

// Manifest returns the version manifest. It is only downloaded if it is not cached yet
func (r *Resolver) Manifest(ctx context.Context) (*minecraft.VersionManifest, error) {
	path := r.Layout.ManifestPath()
	if err := r.Fetcher.Fetch(ctx, downloadmgr.NewItem(r.ManifestURL, path, "")); err != nil {
		return nil, err
	}
	manifest, err := minecraft.ReadVersionManifest(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return manifest, nil
}

// RefreshManifest removes the cached version manifest and fetches it again
func (r *Resolver) RefreshManifest(ctx context.Context) (*minecraft.VersionManifest, error) {
	path := r.Layout.ManifestPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, ioError("remove", path, err)
	}
	return r.Manifest(ctx)
}

// Resolve downloads everything required to launch versionID and returns its
// launch manifest. The first failing artifact aborts the resolve and its error
// is returned unchanged. Files downloaded before the failure are kept, so
// the next attempt only fetches what is still missing
func (r *Resolver) Resolve(ctx context.Context, versionID string) (*minecraft.LaunchManifest, error) {
	res, err, shared := r.group.Do(versionID, func() (interface{}, error) {
		return r.resolve(ctx, versionID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.Logger.Debugf("resolve of %s was shared with another caller", versionID)
	}
	// every caller gets its own copy
	man := *res.(*minecraft.LaunchManifest)
	return &man, nil
}

func (r *Resolver) resolve(ctx context.Context, versionID string) (*minecraft.LaunchManifest, error) {
	versions, err := r.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := versions.Find(versionID)
	if err != nil {
		return nil, err
	}

	man, err := r.ensureDescriptor(ctx, entry)
	if err != nil {
		return nil, err
	}

	if r.Platform != nil {
		man.Libraries = man.Libraries.Required(*r.Platform)
	}

	client := downloadmgr.NewItem(
		man.Downloads.Client.URL,
		r.Layout.ClientJarPath(versionID),
		man.Downloads.Client.Sha1,
	)
	r.Logger.Debugf("client jar %s (%s)", client.Target, client.Policy())
	if err := r.Fetcher.Fetch(ctx, client); err != nil {
		return nil, err
	}

	if err := r.ensureLibraries(ctx, man, versionID); err != nil {
		return nil, err
	}

	if err := r.ensureAssets(ctx, man, versionID); err != nil {
		return nil, err
	}

	return man, nil
}

// ensureDescriptor fetches the version json if it is missing. There is no hash to check it against
func (r *Resolver) ensureDescriptor(ctx context.Context, entry *minecraft.VersionEntry) (*minecraft.LaunchManifest, error) {
	path := r.Layout.DescriptorPath(entry.ID)
	if err := r.Fetcher.Fetch(ctx, downloadmgr.NewItem(entry.URL, path, "")); err != nil {
		return nil, err
	}
	man, err := minecraft.ReadLaunchManifest(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return man, nil
}

// ensureLibraries fetches libraries one by one, in the order of the version json.
// Native bundles are extracted right after they are downloaded, so if two bundles
// contain the same file, the later library wins
func (r *Resolver) ensureLibraries(ctx context.Context, man *minecraft.LaunchManifest, versionID string) error {
	nativesDir := r.Layout.NativesDir(versionID)

	for i, lib := range man.Libraries {
		if lib.HasArtifact() {
			item := downloadmgr.NewItem(lib.ArtifactURL(), r.Layout.LibraryPath(lib.ArtifactPath()), lib.ArtifactSha1())
			if err := r.Fetcher.Fetch(ctx, item); err != nil {
				return err
			}
		}

		for _, classifier := range lib.NativeClassifiers(r.Platform) {
			native := lib.Downloads.Classifiers[classifier]
			item := downloadmgr.NewItem(native.URL, r.Layout.LibraryPath(native.Path), native.Sha1)
			if err := r.Fetcher.Fetch(ctx, item); err != nil {
				return err
			}

			r.Logger.Debugf("extracting %s (%s) to %s", lib.Name, classifier, nativesDir)
			if err := minecraft.ExtractNatives(item.Target, nativesDir); err != nil {
				return ioError("extract", item.Target, err)
			}
		}

		r.progress(StageLibraries, i+1, len(man.Libraries))
	}
	return nil
}

// ensureAssets fetches the asset index and all asset objects it references.
// Objects are content addressed and are fetched concurrently
func (r *Resolver) ensureAssets(ctx context.Context, man *minecraft.LaunchManifest, versionID string) error {
	indexPath := r.Layout.AssetIndexPath(versionID)
	indexItem := downloadmgr.NewItem(man.AssetIndex.URL, indexPath, man.AssetIndex.Sha1)
	if err := r.Fetcher.Fetch(ctx, indexItem); err != nil {
		return err
	}

	index, err := minecraft.ReadAssetIndex(indexPath)
	if err != nil {
		return ioError("read", indexPath, err)
	}

	// multiple names can point to the same object. every object is fetched only once
	// so no two downloads write the same file
	names := make([]string, 0, len(index.Objects))
	for name := range index.Objects {
		names = append(names, name)
	}
	sort.Strings(names)

	mgr := downloadmgr.New(r.Fetcher)
	mgr.Concurrency = r.Concurrency
	mgr.OnProgress = func(done int, total int) {
		r.progress(StageAssets, done, total)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		obj := index.Objects[name]
		if seen[obj.Hash] {
			continue
		}
		seen[obj.Hash] = true
		mgr.Add(downloadmgr.NewItem(obj.DownloadURL(r.AssetsURL), r.Layout.AssetObjectPath(obj.Hash), obj.Hash))
	}

	r.Logger.Debugf("asset index %s references %d objects (%s)", man.AssetIndex.ID, mgr.Len(), humanize.Bytes(uint64(index.TotalSize())))
	return mgr.Start(ctx)
}

func (r *Resolver) progress(stage string, done int, total int) {
	if r.OnProgress != nil {
		r.OnProgress(stage, done, total)
	}
}

// ioError turns filesystem errors into *downloadmgr.IOError and passes everything else through
func ioError(op string, path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &downloadmgr.IOError{Op: op, Path: path, Err: err}
	}
	return err
}
