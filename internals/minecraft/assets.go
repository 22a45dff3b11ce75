package minecraft

import (
	"encoding/hex"
	"encoding/json"
	"os"
)

// DefaultAssetsURL is the base url all asset objects are downloaded from
const DefaultAssetsURL = "https://resources.download.minecraft.net/"

// AssetIndex is just a map containing AssetObjects
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

// AssetObject is one minecraft asset
type AssetObject struct {
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

// UnixPath returns the content addressed path including the shard folder
// example: fe/fe32f3b8…
func (a *AssetObject) UnixPath() string {
	return a.Hash[:2] + "/" + a.Hash
}

// DownloadURL returns the download url for this asset below base
func (a *AssetObject) DownloadURL(base string) string {
	return base + a.UnixPath()
}

// TotalSize returns the sum of all object sizes in bytes
func (i *AssetIndex) TotalSize() int64 {
	var total int64
	for _, obj := range i.Objects {
		total += int64(obj.Size)
	}
	return total
}

// ReadAssetIndex parses the asset index at path. All object hashes have to be hex
// encoded, as they are used as file paths
func ReadAssetIndex(path string) (*AssetIndex, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	index := AssetIndex{}
	if err := json.Unmarshal(buf, &index); err != nil {
		return nil, &MalformedDescriptorError{Source: path, Err: err}
	}
	if index.Objects == nil {
		return nil, &MalformedDescriptorError{Source: path, Field: "objects"}
	}
	for name, obj := range index.Objects {
		if _, err := hex.DecodeString(obj.Hash); err != nil || len(obj.Hash) < 2 {
			return nil, &MalformedDescriptorError{Source: path, Field: "objects." + name + ".hash"}
		}
	}
	return &index, nil
}
