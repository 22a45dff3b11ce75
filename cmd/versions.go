package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "versions",
		Short:   "Lists available Minecraft versions",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `
  mclaunch versions --type release --constraint ">=1.16"
  mclaunch versions --refresh`,
	}, runner)

	cmd.Flags().StringVar(&runner.typ, "type", "", "only list versions of this type (release, snapshot, old_beta, old_alpha)")
	cmd.Flags().StringVar(&runner.constraint, "constraint", "", "only list versions matching this semver constraint")
	cmd.Flags().BoolVar(&runner.refresh, "refresh", false, "fetch the version manifest again")
	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	typ        string
	constraint string
	refresh    bool
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	var constraint *semver.Constraints
	if v.constraint != "" {
		c, err := semver.NewConstraint(v.constraint)
		if err != nil {
			return &commands.CliError{
				Text:        fmt.Sprintf("invalid constraint %q: %s", v.constraint, err),
				Suggestions: []string{"Use constraints like \">=1.16\" or \"~1.20\""},
			}
		}
		constraint = c
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	manifest, err := loadManifest(context.Background(), e.resolver, v.refresh)
	if err != nil {
		return err
	}

	installed, err := e.layout.InstalledVersions()
	if err != nil {
		return err
	}
	isInstalled := make(map[string]bool, len(installed))
	for _, id := range installed {
		isInstalled[id] = true
	}

	entries := filterVersions(manifest, v.typ, constraint)
	out := cmd.OutOrStdout()
	for _, entry := range entries {
		line := fmt.Sprintf("%-22s %-10s", utils.PrettyVersion(entry.ID, entry.Type), entry.Type)
		if released, err := time.Parse(time.RFC3339, entry.ReleaseTime); err == nil {
			line += " " + gchalk.Gray(humanize.Time(released))
		}
		if isInstalled[entry.ID] {
			line += " " + gchalk.Green("(installed)")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "\n%s versions. Latest release: %s, latest snapshot: %s\n",
		humanize.Comma(int64(len(entries))), manifest.Latest.Release, manifest.Latest.Snapshot)
	return nil
}

type manifestSource interface {
	Manifest(ctx context.Context) (*minecraft.VersionManifest, error)
	RefreshManifest(ctx context.Context) (*minecraft.VersionManifest, error)
}

// loadManifest returns the cached manifest, or a freshly downloaded one if refresh is set
func loadManifest(ctx context.Context, src manifestSource, refresh bool) (*minecraft.VersionManifest, error) {
	if refresh {
		return src.RefreshManifest(ctx)
	}
	return src.Manifest(ctx)
}

// filterVersions returns the entries of typ (all if empty) that match constraint (if set).
// Ids that are no semver version never match a constraint
func filterVersions(manifest *minecraft.VersionManifest, typ string, constraint *semver.Constraints) []minecraft.VersionEntry {
	entries := manifest.OfType(typ)
	if constraint == nil {
		return entries
	}
	filtered := make([]minecraft.VersionEntry, 0, len(entries))
	for _, entry := range entries {
		version, err := semver.NewVersion(entry.ID)
		if err != nil || !constraint.Check(version) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
