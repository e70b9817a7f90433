package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userstore/internal/app"
)

var (
	home       string
	configPath string
	verbose    bool
	appCtx     *app.Wire
	logger     *zap.Logger

	// flag-backed overrides; applied only when the flag was set
	dataDir   string
	hideFiles bool
	codecName string
	framed    bool
	ephemeral bool
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "userstore",
		Short:        "Per-user record store backed by one file per user",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			logger, err = app.NewLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default ~/.userstore)")
	pf.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&dataDir, "dir", "", "record directory (default <home>/data)")
	pf.BoolVar(&hideFiles, "hide-files", true, "prefix record files with '.'")
	pf.StringVar(&codecName, "codec", "json", "record encoding: json or yaml")
	pf.BoolVar(&framed, "framed", true, "wrap records in a checksummed frame")
	pf.BoolVar(&ephemeral, "ephemeral", false, "keep records in memory for this run only")

	root.AddCommand(getCmd(), setCmd(), deleteCmd(), listCmd(), pathCmd())
	return root
}

// resolveConfig layers defaults, the YAML file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	path, optional := configPath, false
	if path == "" {
		path, optional = filepath.Join(home, app.ConfigFileName), true
	}
	cfg, err := app.LoadConfig(path, app.DefaultConfig(home), optional)
	if err != nil {
		return app.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = dataDir
	}
	if flags.Changed("hide-files") {
		cfg.HideFiles = hideFiles
	}
	if flags.Changed("codec") {
		cfg.Codec = codecName
	}
	if flags.Changed("framed") {
		cfg.Framed = framed
	}
	if flags.Changed("ephemeral") {
		cfg.Ephemeral = ephemeral
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}
