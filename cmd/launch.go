package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/spf13/cobra"
)

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "launch <profile>",
		Short:   "Installs & launches the Minecraft version of a profile",
		Aliases: []string{"run", "play"},
		Args:    cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().BoolVar(&runner.dryRun, "dry-run", false, "print the java command instead of running it")
	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	dryRun bool
}

func (l *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	store, err := e.profiles()
	if err != nil {
		return err
	}

	profile := store.Get(args[0])
	if profile == nil {
		return unknownProfile(store, args[0])
	}

	// ctrl-c stops minecraft too
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	launcher := e.launcher()
	out := cmd.OutOrStdout()

	if l.dryRun {
		inv, _, err := launcher.Prepare(ctx, profile)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, inv.String())
		return nil
	}

	fmt.Fprintln(out, commands.StyleGrass.Render(commands.Emoji("⛏  ")+"Launching "+profile.Name))
	res := <-launcher.Play(ctx, profile)
	if res.Err != nil {
		return res.Err
	}

	switch res.ExitCode {
	case 0, 130:
		fmt.Fprintf(out, "\nMinecraft was stopped normally (exit code %d).\n", res.ExitCode)
		return nil
	}
	return &commands.CliError{
		Text: fmt.Sprintf("Minecraft exited with code %d", res.ExitCode),
		Code: "game-crashed",
		Suggestions: []string{
			"Run \"mclaunch launch --dry-run " + profile.Name + "\" to see the java command",
			"Try another java version with \"mclaunch config set java <path>\"",
		},
	}
}

func unknownProfile(store *profiles.Store, name string) error {
	names := store.Names()
	suggestions := []string{"Run \"mclaunch profiles detect\" to create profiles for installed versions"}
	if len(names) != 0 {
		suggestions = append(suggestions, fmt.Sprintf("Existing profiles: %v", names))
	}
	return &commands.CliError{
		Text:        fmt.Sprintf("profile \"%s\" does not exist", name),
		Code:        "profile-not-found",
		Suggestions: suggestions,
	}
}
