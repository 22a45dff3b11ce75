package minecraft

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	archiver "github.com/mholt/archiver/v3"
)

// nativeExtensions are the shared library suffixes of windows, linux & macOS
var nativeExtensions = []string{".dll", ".so", ".dylib"}

// InvalidArchiveError is returned if a native bundle can not be read as a zip archive
type InvalidArchiveError struct {
	Path string
	Err  error
}

func (e *InvalidArchiveError) Error() string {
	return fmt.Sprintf("invalid native archive %s: %s", e.Path, e.Err)
}

func (e *InvalidArchiveError) Unwrap() error { return e.Err }

// IsNativeLibrary returns true if name ends with a shared library extension
func IsNativeLibrary(name string) bool {
	for _, ext := range nativeExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ExtractNatives copies every shared library in the archive to targetDir.
// The directory structure inside the archive is dropped: "foo/bar/libX.so"
// ends up as "<targetDir>/libX.so". Existing files are overwritten
func ExtractNatives(archivePath string, targetDir string) error {
	if _, err := os.Stat(archivePath); err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return err
	}

	// errors returned by the walk func lose their type, so we keep them here
	var extractErr error
	err := archiver.NewZip().Walk(archivePath, func(f archiver.File) error {
		// f.Name() is the base name of the entry
		if f.IsDir() || !IsNativeLibrary(f.Name()) {
			return nil
		}
		if err := writeFile(filepath.Join(targetDir, f.Name()), f); err != nil {
			extractErr = err
			return archiver.ErrStopWalk
		}
		return nil
	})
	if extractErr != nil {
		return extractErr
	}
	if err != nil {
		return &InvalidArchiveError{archivePath, err}
	}
	return nil
}

func writeFile(target string, src io.Reader) error {
	dest, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return err
	}
	return dest.Close()
}
