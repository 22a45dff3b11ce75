package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
	configKindFloat
)

type configEntry struct {
	kind int
	def  interface{}
	help string
}

var config = map[string]configEntry{
	"root":                  {configKindString, "", "minecraft directory (default ~/.minecraft)"},
	"proxy":                 {configKindString, downloadmgr.DefaultProxyPrefix, "prefix every download url is appended to"},
	"java":                  {configKindString, "java", "java executable used to launch"},
	"xms":                   {configKindString, "1G", "initial heap size if the profile sets none"},
	"xmx":                   {configKindString, "2G", "maximum heap size if the profile sets none (\"auto\" derives it from system memory)"},
	"concurrency":           {configKindInt, 8, "number of parallel asset downloads"},
	"ratelimit":             {configKindFloat, 0.0, "maximum requests per second (0 is unlimited)"},
	"nativesperversion":     {configKindBool, false, "extract natives to a directory per version"},
	"applyrules":            {configKindBool, false, "only install libraries whose rules allow this platform"},
	"regenerateclienttoken": {configKindBool, false, "create a new client token on every profile save"},
	"verboselogging":        {configKindBool, false, ""},
	"noninteractive":        {configKindBool, false, "disable spinners & prompts"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// Keys returns all config keys, sorted
func Keys() []string {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SetDefaults registers the default value of every key with v
func SetDefaults(v *viper.Viper) {
	for key, entry := range config {
		v.SetDefault(key, entry.def)
	}
}

// Dir returns the directory of the config file
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mclaunch"), nil
}
