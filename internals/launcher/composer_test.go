package launcher

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/minepkg/mclaunch/internals/storage"
)

func testManifest() *minecraft.LaunchManifest {
	man := &minecraft.LaunchManifest{ID: "1.20.2", MainClass: "net.minecraft.client.main.Main"}
	man.Libraries = minecraft.Libraries{
		{Name: "com.mojang:brigadier:1.1.8"},
	}
	man.Libraries[0].Downloads.Artifact = &minecraft.Artifact{Path: "com/mojang/brigadier/1.1.8/brigadier-1.1.8.jar"}
	return man
}

func TestComposer_Compose(t *testing.T) {
	root := filepath.FromSlash("/games/mc")
	layout := storage.New(root)
	c := NewComposer(layout)
	c.GOOS = "linux"

	profile := &profiles.Profile{Name: "Steve-1.20.2", Username: "Steve", Version: "1.20.2", Xms: "512M", Xmx: "4G"}
	inv := c.Compose(profile, testManifest(), "1.20.2")

	if inv.Path != "java" {
		t.Errorf("Path = %s", inv.Path)
	}
	if inv.Dir != root {
		t.Errorf("Dir = %s", inv.Dir)
	}

	// uuid is random, check it separately
	args := append([]string(nil), inv.Args...)
	session := args[len(args)-5]
	if _, err := uuid.Parse(session); err != nil {
		t.Errorf("session id %q is not a uuid", session)
	}
	args[len(args)-5] = "<uuid>"

	cp := strings.Join([]string{
		layout.ClientJarPath("1.20.2"),
		layout.LibraryPath("com/mojang/brigadier/1.1.8/brigadier-1.1.8.jar"),
	}, ":")
	want := []string{
		"-Xms512M",
		"-Xmx4G",
		"-Djava.library.path=" + filepath.Join(root, "natives"),
		"-cp", cp,
		"net.minecraft.client.main.Main",
		"--username", "Steve",
		"--version", "1.20.2",
		"--gameDir", root,
		"--assetsDir", filepath.Join(root, "assets"),
		"--assetIndex", "1.20.2",
		"--uuid", "<uuid>",
		"--accessToken", "0",
		"--userType", "legacy",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Args =\n%v\nwant\n%v", args, want)
	}
}

func TestComposer_Compose_platform(t *testing.T) {
	tests := []struct {
		goos      string
		firstFlag bool
		separator string
	}{
		{"darwin", true, ":"},
		{"linux", false, ":"},
		{"windows", false, ";"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			c := NewComposer(storage.New("mc"))
			c.GOOS = tt.goos
			inv := c.Compose(&profiles.Profile{Version: "1.20.2"}, testManifest(), "1.20.2")

			if got := inv.Args[0] == "-XstartOnFirstThread"; got != tt.firstFlag {
				t.Errorf("-XstartOnFirstThread present = %v, want %v", got, tt.firstFlag)
			}
			for i, arg := range inv.Args {
				if arg == "-cp" && !strings.Contains(inv.Args[i+1], tt.separator) {
					t.Errorf("classpath %s does not use %q", inv.Args[i+1], tt.separator)
				}
			}
		})
	}
}

func TestComposer_Compose_defaults(t *testing.T) {
	layout := storage.New("mc")
	layout.NativesPerVersion = true
	c := NewComposer(layout)
	c.GOOS = "linux"
	c.Java = "/opt/java/bin/java"
	c.DefaultXmx = "3G"

	inv := c.Compose(&profiles.Profile{Version: "1.8.9"}, testManifest(), "1.8.9")
	if inv.Path != "/opt/java/bin/java" {
		t.Errorf("Path = %s", inv.Path)
	}

	line := inv.String()
	for _, expected := range []string{
		"-Xms1G ",
		"-Xmx3G ",
		"-Djava.library.path=" + layout.NativesDir("1.8.9"),
		"--username Player ",
	} {
		if !strings.Contains(line, expected) {
			t.Errorf("%q is missing from %s", expected, line)
		}
	}
}

func TestComposer_Compose_relativeRoot(t *testing.T) {
	c := NewComposer(storage.New("mc"))
	c.GOOS = "linux"
	inv := c.Compose(&profiles.Profile{Version: "1.20.2"}, testManifest(), "1.20.2")

	if !filepath.IsAbs(inv.Dir) {
		t.Errorf("Dir %s is not absolute", inv.Dir)
	}

	var paths []string
	for i, arg := range inv.Args {
		switch {
		case strings.HasPrefix(arg, "-Djava.library.path="):
			paths = append(paths, strings.TrimPrefix(arg, "-Djava.library.path="))
		case arg == "-cp":
			paths = append(paths, strings.Split(inv.Args[i+1], ":")...)
		case arg == "--gameDir", arg == "--assetsDir":
			paths = append(paths, inv.Args[i+1])
		}
	}
	if len(paths) < 5 {
		t.Fatalf("expected natives, two classpath entries, gameDir and assetsDir, got %v", paths)
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			t.Errorf("%s is not absolute", p)
		}
	}
}

func TestComposer_Compose_sessionIsRandom(t *testing.T) {
	c := NewComposer(storage.New("mc"))
	p := &profiles.Profile{Version: "1.20.2"}
	a := c.Compose(p, testManifest(), "1.20.2").String()
	b := c.Compose(p, testManifest(), "1.20.2").String()
	if a == b {
		t.Error("two invocations share the session id")
	}
}

func TestAutoHeapMiB(t *testing.T) {
	const gib = 1024 * 1024 * 1024
	tests := []struct {
		name  string
		total uint64
		want  int
	}{
		{"unknown", 0, 1024},
		{"small machine", 1 * gib, 870},
		{"4 GiB", 4 * gib, 1024},
		{"16 GiB", 16 * gib, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := autoHeapMiB(tt.total); got != tt.want {
				t.Errorf("autoHeapMiB() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeapSize(t *testing.T) {
	if got := heapSize("", "", "2G"); got != "2G" {
		t.Errorf("heapSize() = %s", got)
	}
	if got := heapSize("6G", "2G"); got != "6G" {
		t.Errorf("heapSize() = %s", got)
	}
	if got := heapSize(HeapAuto, "2G"); !strings.HasSuffix(got, "M") {
		t.Errorf("auto heap size %s is not in MiB", got)
	}
}
