package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "install <version>",
		Short:   "Downloads everything needed to launch a Minecraft version",
		Aliases: []string{"i", "resolve"},
		Args:    cobra.ExactArgs(1),
	}, &installRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type installRunner struct{}

func (i *installRunner) RunE(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	versionID := args[0]

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, commands.StyleTitle.Render("Minecraft "+versionID))

	start := time.Now()
	spinner := launcher.NewMaybeSpinner(interactive())
	e.resolver.OnProgress = spinner.Progress
	spinner.Start("Resolving " + versionID)
	man, err := e.resolver.Resolve(context.Background(), versionID)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, commands.StylePipe.Render(fmt.Sprintf(
		"%d libraries, asset index %s, main class %s",
		len(man.Libraries), man.AssetIndex.ID, man.MainClass,
	)))
	fmt.Fprintln(out, commands.StylePipe.Render(fmt.Sprintf(
		"Downloaded %s in %d requests (%s)",
		humanize.Bytes(uint64(e.fetcher.BytesDownloaded())),
		e.fetcher.Requests(),
		time.Since(start).Round(time.Millisecond),
	)))
	fmt.Fprintln(out, commands.Emoji("✅ ")+"Minecraft "+versionID+" is ready to launch")
	return nil
}
