package java

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestBin(t *testing.T) {
	if got := Bin("/opt/jdk", "linux"); got != filepath.FromSlash("/opt/jdk/bin/java") {
		t.Errorf("Bin() = %s", got)
	}
	if got := Bin("jdk", "windows"); got != filepath.Join("jdk", "bin", "java.exe") {
		t.Errorf("Bin() = %s", got)
	}
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	bin := Bin(home, runtime.GOOS)
	if err := os.MkdirAll(filepath.Dir(bin), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bin, nil, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		configured string
		javaHome   string
		want       string
	}{
		{"configured", "/usr/lib/jvm/17/bin/java", home, "/usr/lib/jvm/17/bin/java"},
		{"java home", "", home, bin},
		{"default uses java home", "java", home, bin},
		{"no java home", "", "", DefaultBin},
		{"broken java home", "", filepath.Join(home, "missing"), DefaultBin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JAVA_HOME", tt.javaHome)
			if got := Find(tt.configured, runtime.GOOS); got != tt.want {
				t.Errorf("Find() = %s, want %s", got, tt.want)
			}
		})
	}
}
