package minecraft

import (
	"encoding/json"
	"os"
)

// LaunchManifest is a version.json manifest that is used to launch minecraft instances
type LaunchManifest struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	MainClass string `json:"mainClass"`
	// Assets is the id of the asset index. Usually something like "1.20" or "legacy"
	Assets    string `json:"assets"`
	Downloads struct {
		Client Artifact `json:"client"`
		Server Artifact `json:"server"`
	} `json:"downloads"`
	Libraries  Libraries `json:"libraries"`
	AssetIndex struct {
		ID        string `json:"id"`
		Sha1      string `json:"sha1"`
		Size      int    `json:"size"`
		TotalSize int    `json:"totalSize"`
		URL       string `json:"url"`
	} `json:"assetIndex"`
}

// Validate checks that all fields required to install & launch this version are set
func (l *LaunchManifest) Validate(source string) error {
	switch {
	case l.MainClass == "":
		return &MalformedDescriptorError{Source: source, Field: "mainClass"}
	case l.Downloads.Client.URL == "":
		return &MalformedDescriptorError{Source: source, Field: "downloads.client.url"}
	case l.AssetIndex.URL == "":
		return &MalformedDescriptorError{Source: source, Field: "assetIndex.url"}
	}

	for _, lib := range l.Libraries {
		if lib.HasArtifact() && lib.ArtifactPath() == "" {
			return &MalformedDescriptorError{Source: source, Field: "libraries.downloads.artifact.path"}
		}
		for key, native := range lib.Downloads.Classifiers {
			if IsNativeClassifier(key) && (native.URL == "" || native.Path == "") {
				return &MalformedDescriptorError{Source: source, Field: "libraries.downloads.classifiers." + key}
			}
		}
	}
	return nil
}

// ParseLaunchManifest parses and validates a version json.
// source is only used for error messages
func ParseLaunchManifest(buf []byte, source string) (*LaunchManifest, error) {
	man := LaunchManifest{}
	if err := json.Unmarshal(buf, &man); err != nil {
		return nil, &MalformedDescriptorError{Source: source, Err: err}
	}
	if err := man.Validate(source); err != nil {
		return nil, err
	}
	return &man, nil
}

// ReadLaunchManifest reads and parses the version json at path
func ReadLaunchManifest(path string) (*LaunchManifest, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLaunchManifest(buf, path)
}
