// Package java finds the java executable used to launch the game.
package java

import (
	"os"
	"path/filepath"
)

// DefaultBin is used if no java is configured and JAVA_HOME is not set.
// It is looked up in PATH when the game is started
const DefaultBin = "java"

// Bin returns the java executable inside of a java home directory
func Bin(home string, goos string) string {
	bin := "bin/java"
	if goos == "windows" {
		bin = "bin/java.exe"
	}
	return filepath.Join(home, filepath.FromSlash(bin))
}

// Find returns configured if it is set to anything but the default.
// Otherwise the java of JAVA_HOME is used, if it exists
func Find(configured string, goos string) string {
	if configured != "" && configured != DefaultBin {
		return configured
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		bin := Bin(home, goos)
		if stat, err := os.Stat(bin); err == nil && !stat.IsDir() {
			return bin
		}
	}
	return DefaultBin
}
