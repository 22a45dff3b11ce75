package launcher

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/minepkg/mclaunch/internals/storage"
	"github.com/pbnjay/memory"
)

// HeapAuto can be used as xms or xmx to derive the heap size from the system memory
const HeapAuto = "auto"

// Composer turns a resolved version and a profile into a java invocation
type Composer struct {
	Layout *storage.Layout
	// Java is the java executable. defaults to "java"
	Java string
	// DefaultXms & DefaultXmx are used if the profile does not set a heap size
	DefaultXms string
	DefaultXmx string
	// GOOS is the target os. defaults to runtime.GOOS
	GOOS string
}

// NewComposer returns a Composer with the default java & heap sizes
func NewComposer(layout *storage.Layout) *Composer {
	return &Composer{
		Layout:     layout,
		Java:       "java",
		DefaultXms: profiles.DefaultXms,
		DefaultXmx: profiles.DefaultXmx,
		GOOS:       runtime.GOOS,
	}
}

// Invocation is a fully composed process start
type Invocation struct {
	Path string
	Args []string
	Dir  string
}

// String returns the invocation as a single line, for humans
func (i *Invocation) String() string {
	return i.Path + " " + strings.Join(i.Args, " ")
}

// Cmd returns an exec.Cmd for the invocation that uses the stdio of this process
func (i *Invocation) Cmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, i.Path, i.Args...)
	cmd.Dir = i.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// some things may rely on PWD
	cmd.Env = append(os.Environ(), "PWD="+i.Dir)
	return cmd
}

// Compose builds the java invocation to launch versionID with profile.
// It does not check that java or any of the referenced files exist
func (c *Composer) Compose(profile *profiles.Profile, man *minecraft.LaunchManifest, versionID string) *Invocation {
	goos := c.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	java := c.Java
	if java == "" {
		java = "java"
	}

	username := profile.Username
	if username == "" {
		username = profiles.DefaultUsername
	}

	args := []string{}
	// HACK: prepend this so macos does not crash
	if goos == "darwin" {
		args = append(args, "-XstartOnFirstThread")
	}

	classpath := minecraft.BuildClasspath(c.Layout, man, versionID)
	args = append(args,
		"-Xms"+heapSize(profile.Xms, c.DefaultXms, profiles.DefaultXms),
		"-Xmx"+heapSize(profile.Xmx, c.DefaultXmx, profiles.DefaultXmx),
		"-Djava.library.path="+c.Layout.NativesDir(versionID),
		"-cp", classpath.Join(goos),
		man.MainClass,
		"--username", username,
		"--version", versionID,
		"--gameDir", c.Layout.Root,
		"--assetsDir", c.Layout.AssetsDir(),
		"--assetIndex", versionID,
		"--uuid", uuid.NewString(),
		"--accessToken", "0",
		"--userType", "legacy",
	)

	return &Invocation{Path: java, Args: args, Dir: c.Layout.Root}
}

// heapSize returns the first non empty value. "auto" is replaced by a size
// derived from the system memory
func heapSize(values ...string) string {
	for _, v := range values {
		switch v {
		case "":
			continue
		case HeapAuto:
			return fmt.Sprintf("%dM", autoHeapMiB(memory.TotalMemory()))
		}
		return v
	}
	return ""
}

// autoHeapMiB takes 1/4 of the system memory, at least 1 GiB,
// but never more than 85% of the system memory
func autoHeapMiB(totalBytes uint64) int {
	sysMemMiB := float64(totalBytes) / 1024 / 1024
	// unknown system memory
	if sysMemMiB == 0 {
		return 1024
	}
	maxRamMiB := math.Max(1024, sysMemMiB/4)
	return int(math.Min(maxRamMiB, sysMemMiB*0.85))
}
