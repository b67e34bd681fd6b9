package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	maplaunch "github.com/reglet-dev/reglet-maplaunch"
	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/config"
	"github.com/reglet-dev/reglet-maplaunch/picker"
	"github.com/reglet-dev/reglet-maplaunch/platform"
	"github.com/reglet-dev/reglet-maplaunch/urlbuild"
)

// deps are the host adapters, replaceable in tests.
type deps struct {
	newOpener func(logger *slog.Logger) platform.Opener
	newPicker func() applicationPicker
}

func defaultDeps() deps {
	return deps{
		newOpener: func(logger *slog.Logger) platform.Opener {
			return platform.NewDesktopOpener(platform.WithOpenerLogger(logger))
		},
		newPicker: func() applicationPicker {
			return picker.NewTerminalPicker(picker.WithIO(os.Stdin, os.Stderr))
		},
	}
}

// env is everything a command needs, built from flags and the config file.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	launcher *maplaunch.Launcher
	catalog  *catalog.Catalog
}

type rootOptions struct {
	configPath string
	verbose    bool
	dryRun     bool
	installed  []string
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "maplaunch",
		Short:         "Open directions in a navigation app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.reglet/maplaunch.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "print links instead of opening them")
	cmd.PersistentFlags().StringSliceVar(&opts.installed, "installed", nil, "scheme patterns the host can open, overriding the config file")

	build := func(cmd *cobra.Command) (*env, error) {
		return opts.buildEnv(cmd.OutOrStdout(), cmd.ErrOrStderr(), d)
	}

	cmd.AddCommand(
		newAppsCmd(build),
		newResolveCmd(build),
		newOpenCmd(build, d),
		newSchemaCmd(),
	)

	return cmd
}

func (o *rootOptions) buildEnv(stdout, stderr io.Writer, d deps) (*env, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := config.NewFileStore(config.WithPath(o.configPath))
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	if o.installed != nil {
		cfg.Installed = o.installed
	}
	logger.Debug("configuration loaded", "path", store.ConfigPath(), "installed", cfg.Installed)

	cat := catalog.Default()
	if path := cfg.DisplayNamesPath(store.ConfigPath()); path != "" {
		names, err := catalog.LoadDisplayNamesFile(path, cfg.Locale)
		if err != nil {
			return nil, err
		}
		cat = catalog.New(catalog.WithDisplayNames(names))
	}

	version, err := cfg.Version()
	if err != nil {
		return nil, err
	}
	builderOpts := []urlbuild.Option{urlbuild.WithHost(platform.StaticHost(cfg.HostIdentifier))}
	if version != nil {
		builderOpts = append(builderOpts, urlbuild.WithPlatformVersion(version))
	}

	prober, err := platform.NewStaticProber(cfg.Installed...)
	if err != nil {
		return nil, err
	}

	mws := []platform.Middleware{platform.PanicRecoveryMiddleware(), platform.LoggingMiddleware(logger)}
	if o.dryRun {
		mws = append(mws, platform.DryRunMiddleware(stdout))
	}
	opener := platform.Chain(d.newOpener(logger), mws...)

	launcher := maplaunch.NewLauncher(prober, opener,
		maplaunch.WithCatalog(cat),
		maplaunch.WithBuilder(urlbuild.New(builderOpts...)),
		maplaunch.WithLogger(logger),
		maplaunch.WithDefaultMode(cfg.Mode()),
	)

	return &env{cfg: cfg, logger: logger, launcher: launcher, catalog: cat}, nil
}
