package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/cmd/config"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version & Commit are set by main
var (
	Version = "dev"
	Commit  = ""
)

var logger = cmdlog.New()

var (
	cfgFile       string
	disableColors bool
	verbose       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mclaunch",
	Short: "Installs & launches Minecraft versions",
	Long:  "Resolves, downloads and launches vanilla Minecraft versions through a download proxy",

	Example: `
  mclaunch install 1.20.2
  mclaunch profiles add Steve 1.20.2
  mclaunch launch Steve-1.20.2`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	flags.StringVar(&cfgFile, "config", "", "config file (default is $UserConfigDir/mclaunch/config.toml)")
	flags.String("root", "", "minecraft directory (default is ~/.minecraft)")
	viper.BindPFlag("root", flags.Lookup("root"))

	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
		commands.EmojiEnabled = false
	}

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			logger.Fail(err.Error())
		}
		viper.SetConfigFile(filepath.Join(dir, "config.toml"))
	}

	viper.SetEnvPrefix("MCLAUNCH")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if !os.IsNotExist(err) {
		logger.Warn(fmt.Sprintf("Could not read config file: %s", err))
	}

	logger.SetVerbose(verbose || viper.GetBool("verboselogging"))
}
