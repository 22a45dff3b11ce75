package cmd

import (
	"context"
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/manifoldco/promptui"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Short:   "Manage launch profiles",
	Aliases: []string{"profile"},
}

func init() {
	list := commands.New(&cobra.Command{
		Use:     "list",
		Short:   "Lists all profiles",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
	}, commands.RunnerFunc(listProfiles))

	add := commands.New(&cobra.Command{
		Use:   "add [username] [version]",
		Short: "Adds a profile named <username>-<version>. Installs the version first",
		Long:  "Adds a profile named <username>-<version>. Missing arguments are prompted for.",
		Args:  cobra.MaximumNArgs(2),
	}, commands.RunnerFunc(addProfile))

	remove := commands.New(&cobra.Command{
		Use:     "remove <profile>",
		Short:   "Removes a profile",
		Aliases: []string{"rm", "delete"},
		Args:    cobra.ExactArgs(1),
	}, commands.RunnerFunc(removeProfile))

	detect := commands.New(&cobra.Command{
		Use:   "detect",
		Short: "Creates an Offline-<version> profile for every installed version",
		Args:  cobra.NoArgs,
	}, commands.RunnerFunc(detectProfiles))

	profilesCmd.AddCommand(list.Command, add.Command, remove.Command, detect.Command)
	rootCmd.AddCommand(profilesCmd)
}

func listProfiles(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	store, err := e.profiles()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(store.Profiles) == 0 {
		fmt.Fprintln(out, "No profiles yet. Create one with \"mclaunch profiles add\" or \"mclaunch profiles detect\"")
		return nil
	}
	for _, name := range store.Names() {
		p := store.Get(name)
		fmt.Fprintf(out, "%s %s %s\n", gchalk.Bold(name), p.Version, gchalk.Gray(fmt.Sprintf("(%s, %s/%s)", p.Username, p.Xms, p.Xmx)))
	}
	return nil
}

func addProfile(cmd *cobra.Command, args []string) error {
	values := make([]string, 2)
	copy(values, args)

	prompts := []*promptui.Prompt{
		{Label: "Username", Validate: utils.NoWhitespace},
		{Label: "Version (e.g. 1.20.2)", Validate: utils.NoWhitespace},
	}
	for i, prompt := range prompts {
		if values[i] != "" {
			continue
		}
		if !interactive() {
			return &commands.CliError{
				Text:        "username and version are required",
				Suggestions: []string{"Run \"mclaunch profiles add <username> <version>\""},
			}
		}
		input, err := utils.StringPrompt(prompt)
		if err != nil {
			return err
		}
		values[i] = input
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	store, err := e.profiles()
	if err != nil {
		return err
	}

	profile := profiles.NewProfile(values[0], values[1])

	// the version is installed first, so unknown versions never end up in a profile
	spinner := launcher.NewMaybeSpinner(interactive())
	e.resolver.OnProgress = spinner.Progress
	spinner.Start("Installing " + profile.Version)
	_, err = e.resolver.Resolve(context.Background(), profile.Version)
	spinner.Stop()
	if err != nil {
		return err
	}

	store.Put(profile)
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added profile %s\n", gchalk.Bold(profile.Name))
	return nil
}

func removeProfile(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	store, err := e.profiles()
	if err != nil {
		return err
	}

	if !store.Remove(args[0]) {
		return unknownProfile(store, args[0])
	}
	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %s\n", args[0])
	return nil
}

func detectProfiles(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	store, err := e.profiles()
	if err != nil {
		return err
	}

	added, err := store.AutoDetect(e.layout)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(added) == 0 {
		fmt.Fprintln(out, "No new versions found")
		return nil
	}
	for _, name := range added {
		fmt.Fprintf(out, "Added profile %s\n", gchalk.Bold(name))
	}
	return nil
}
