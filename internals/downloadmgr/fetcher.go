package downloadmgr

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/minepkg/mclaunch/internals/cmdlog"
)

// chunkSize is the buffer size used to stream downloads and hash files
const chunkSize = 1024 * 1024

// Fetcher downloads items through a proxy. Existing files are reused
// according to the item's Policy. It is safe for concurrent use
type Fetcher struct {
	Client *http.Client
	Proxy  Proxy
	Logger *cmdlog.Logger

	requests atomic.Int64
	bytes    atomic.Int64
}

// NewFetcher returns a Fetcher using the given client and proxy.
// A nil client falls back to http.DefaultClient
func NewFetcher(client *http.Client, proxy Proxy) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{Client: client, Proxy: proxy}
}

// Requests returns the number of http requests made so far
func (f *Fetcher) Requests() int64 {
	return f.requests.Load()
}

// BytesDownloaded returns the number of bytes written by downloads so far
func (f *Fetcher) BytesDownloaded() int64 {
	return f.bytes.Load()
}

// Fetch makes sure the item exists at its target. It only touches the
// network if the target is missing or does not match the declared sha1.
// There are no retries: a failed request is returned as *NetworkError
func (f *Fetcher) Fetch(ctx context.Context, item *Item) error {
	valid, err := f.isValid(item)
	if err != nil {
		return err
	}
	if valid {
		return nil
	}
	return f.download(ctx, item)
}

func (f *Fetcher) isValid(item *Item) (bool, error) {
	stat, err := os.Stat(item.Target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, &IOError{"stat", item.Target, err}
	case stat.IsDir():
		return false, &IOError{"stat", item.Target, errors.New("is a directory")}
	}

	if item.Policy() == TrustOnFirstUse {
		return true, nil
	}

	actual, err := sha1File(item.Target)
	if err != nil {
		return false, &IOError{"hash", item.Target, err}
	}
	if strings.EqualFold(actual, item.Sha1) {
		return true, nil
	}
	f.Logger.Debugf("%s does not match sha1 %s, downloading again", item.Target, item.Sha1)
	return false, nil
}

func (f *Fetcher) download(ctx context.Context, item *Item) error {
	if err := os.MkdirAll(filepath.Dir(item.Target), os.ModePerm); err != nil {
		return &IOError{"mkdir", filepath.Dir(item.Target), err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Proxy.Rewrite(item.URL), nil)
	if err != nil {
		return &NetworkError{URL: item.URL, Err: err}
	}

	f.Logger.Debugf("downloading %s", item.URL)
	f.requests.Add(1)
	res, err := f.Client.Do(req)
	if err != nil {
		return &NetworkError{URL: item.URL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &NetworkError{URL: item.URL, StatusCode: res.StatusCode, Status: res.Status}
	}

	// concurrent downloads of the same target each write their own file,
	// the last rename wins and the target is never partially written
	dest, err := os.CreateTemp(filepath.Dir(item.Target), filepath.Base(item.Target)+".*.part")
	if err != nil {
		return &IOError{"create", item.Target, err}
	}
	tmpName := dest.Name()
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmpName)
		}
	}()

	hasher := sha1.New()
	n, err := io.CopyBuffer(io.MultiWriter(dest, hasher), res.Body, make([]byte, chunkSize))
	f.bytes.Add(n)
	if err != nil {
		dest.Close()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return &IOError{"write", tmpName, err}
		}
		return &NetworkError{URL: item.URL, Err: err}
	}
	if err := dest.Chmod(0o644); err != nil {
		dest.Close()
		return &IOError{"chmod", tmpName, err}
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		return &IOError{"sync", tmpName, err}
	}
	if err := dest.Close(); err != nil {
		return &IOError{"close", tmpName, err}
	}

	// check sha if there is one set
	if item.Sha1 != "" {
		actual := hex.EncodeToString(hasher.Sum(nil))
		if !strings.EqualFold(actual, item.Sha1) {
			return &HashMismatchError{item.Target, item.Sha1, actual}
		}
	}

	if err := os.Rename(tmpName, item.Target); err != nil {
		return &IOError{"rename", item.Target, err}
	}
	renamed = true
	return nil
}

// sha1File returns the hex encoded sha1 sum of the file at path.
// The file is streamed in chunks, so this works for large jars
func sha1File(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	hasher := sha1.New()
	if _, err := io.CopyBuffer(hasher, src, make([]byte, chunkSize)); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
