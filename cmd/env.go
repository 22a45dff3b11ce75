package cmd

import (
	"net/http"
	"runtime"

	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/java"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/ownhttp"
	"github.com/minepkg/mclaunch/internals/profiles"
	"github.com/minepkg/mclaunch/internals/resolver"
	"github.com/minepkg/mclaunch/internals/storage"
	"github.com/spf13/viper"
)

// env is everything a command needs, built from the config
type env struct {
	layout   *storage.Layout
	fetcher  *downloadmgr.Fetcher
	resolver *resolver.Resolver
}

func newEnv() (*env, error) {
	var (
		layout *storage.Layout
		err    error
	)
	if root := viper.GetString("root"); root != "" {
		layout = storage.New(root)
	} else if layout, err = storage.Default(); err != nil {
		return nil, err
	}
	layout.NativesPerVersion = viper.GetBool("nativesperversion")

	client := http.DefaultClient
	if rps := viper.GetFloat64("ratelimit"); rps > 0 {
		client = ownhttp.NewThrottled(rps)
	}

	fetcher := downloadmgr.NewFetcher(client, downloadmgr.Proxy{Prefix: viper.GetString("proxy")})
	fetcher.Logger = logger

	r := resolver.New(layout, fetcher)
	r.Logger = logger
	r.Concurrency = viper.GetInt("concurrency")
	if viper.GetBool("applyrules") {
		p := minecraft.CurrentPlatform()
		r.Platform = &p
	}

	return &env{layout: layout, fetcher: fetcher, resolver: r}, nil
}

func (e *env) launcher() *launcher.Launcher {
	composer := launcher.NewComposer(e.layout)
	composer.Java = java.Find(viper.GetString("java"), runtime.GOOS)
	composer.DefaultXms = viper.GetString("xms")
	composer.DefaultXmx = viper.GetString("xmx")

	l := launcher.New(e.resolver, composer)
	l.Logger = logger
	return l
}

func (e *env) profiles() (*profiles.Store, error) {
	store := profiles.New(e.layout)
	if viper.GetBool("regenerateclienttoken") {
		store.TokenPolicy = profiles.RegenerateToken
	}
	return store, store.Load()
}

func interactive() bool {
	return !viper.GetBool("noninteractive")
}
