package utils

import (
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// PrettyVersion returns a version id colored by its type for terminal printing
func PrettyVersion(id string, typ string) string {
	// we trim first to avoid broken colors
	if len(id) >= 22 {
		id = id[:18] + " …"
	}

	switch typ {
	case minecraft.TypeRelease:
		return gchalk.Bold(id)
	case minecraft.TypeSnapshot:
		return gchalk.Yellow(id)
	case minecraft.TypeOldAlpha, minecraft.TypeOldBeta:
		return gchalk.Gray(id)
	}
	return id
}
