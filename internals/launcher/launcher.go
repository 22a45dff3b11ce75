// Package launcher composes and starts the java process for a profile.
package launcher

import (
	"context"
	"errors"
	"os/exec"

	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/minepkg/mclaunch/internals/resolver"
)

// Result is the outcome of a Play call. Err is set if the game could not be
// resolved or started, otherwise ExitCode is the exit code of the game
type Result struct {
	ExitCode int
	Err      error
}

// Launcher resolves, composes and runs profiles. It is safe for concurrent use
type Launcher struct {
	Resolver *resolver.Resolver
	Composer *Composer
	Logger   *cmdlog.Logger

	// Run starts the invocation and waits for it to exit. defaults to RunProcess
	Run func(ctx context.Context, inv *Invocation) (int, error)
}

// New returns a Launcher that runs real processes
func New(r *resolver.Resolver, c *Composer) *Launcher {
	return &Launcher{Resolver: r, Composer: c, Run: RunProcess}
}

// Prepare resolves the version of profile and composes its invocation
func (l *Launcher) Prepare(ctx context.Context, profile *profiles.Profile) (*Invocation, *minecraft.LaunchManifest, error) {
	man, err := l.Resolver.Resolve(ctx, profile.Version)
	if err != nil {
		return nil, nil, err
	}
	inv := l.Composer.Compose(profile, man, profile.Version)
	l.Logger.Debugf("invocation: %s", inv)
	return inv, man, nil
}

// Play prepares and runs profile in the background. The returned channel
// receives exactly one Result once the game exited or failed to start
func (l *Launcher) Play(ctx context.Context, profile *profiles.Profile) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		results <- l.play(ctx, profile)
	}()
	return results
}

func (l *Launcher) play(ctx context.Context, profile *profiles.Profile) Result {
	inv, _, err := l.Prepare(ctx, profile)
	if err != nil {
		return Result{Err: err}
	}

	run := l.Run
	if run == nil {
		run = RunProcess
	}
	l.Logger.Headline("Launching Minecraft " + profile.Version)
	code, err := run(ctx, inv)
	return Result{ExitCode: code, Err: err}
}

// RunProcess starts inv and blocks until it exits. A non zero exit code is not an error
func RunProcess(ctx context.Context, inv *Invocation) (int, error) {
	cmd := inv.Cmd(ctx)
	if err := cmd.Start(); err != nil {
		return -1, err
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return -1, err
	}
	return cmd.ProcessState.ExitCode(), nil
}
