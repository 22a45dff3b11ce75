package minecraft

import "runtime"

// Platform is an operating system & cpu architecture pair, named like Go does (GOOS/GOARCH)
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform this binary runs on
func CurrentPlatform() Platform {
	return Platform{runtime.GOOS, runtime.GOARCH}
}

// osName returns the os name as used in version jsons
func (p Platform) osName() string {
	if p.OS == "darwin" {
		return "osx"
	}
	return p.OS
}

// archName returns the arch name as used in version jsons
func (p Platform) archName() string {
	switch p.Arch {
	case "amd64", "x86_64":
		return "x64"
	case "386", "i386":
		return "x86"
	case "arm":
		return "arm32"
	}
	// note: we don't know how other platforms are named
	return p.Arch
}

// bits replaces ${arch} in native classifiers
func (p Platform) bits() string {
	switch p.archName() {
	case "x86", "arm32":
		return "32"
	}
	return "64"
}

// Rule is a rule that can be applied to an argument or library.
// It can be used to determine if the argument or library should be applied to a specific OS.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os"`
	Features map[string]bool `json:"features,omitempty"`
}

// OS defines the feature of an OS that can be used in a [Rule] to determine if it should be applied.
type OS struct {
	Name string `json:"name,omitempty"`
	// Version of the os (can be a regex string)
	Version string `json:"version,omitempty"`
	// Arch of the system
	Arch string `json:"arch,omitempty"`
}

// AppliesTo returns false if this rule excludes p
func (r Rule) AppliesTo(p Platform) bool {
	os := p.osName()
	arch := p.archName()

	// Features? Do not not know what to do with this. skip it
	if len(r.Features) != 0 {
		return false
	}

	switch r.Action {
	case "allow":
		if r.OS.Name != "" && r.OS.Name != os {
			return false
		}
		// TODO: match OS.Version as a regex against the os version, we deny it for now
		if r.OS.Version != "" {
			return false
		}
		if r.OS.Arch != "" && r.OS.Arch != arch {
			return false
		}
		// allow block matches os (or is empty)
		return true
	case "disallow":
		if r.OS.Name != "" && r.OS.Name == os {
			return false
		}
		if r.OS.Arch != "" && r.OS.Arch == arch {
			return false
		}
		// disallow block does not match os (or is empty)
		return true
	}

	// unknown action
	return true
}
