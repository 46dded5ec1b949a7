package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pgsql-ls/core/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "pgsql-ls",
		Short:        "pgsql-ls",
		SilenceUsage: true,
		Long:         `Statement splitter and incremental document model for a PostgreSQL language server.`,
	}

	configPath string
	debugFlag  bool
	log        = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pgsql-ls.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable splitter debug-mode assertions")
	return rootCmd.Execute()
}

// loadConfig loads the configured file, falling back to config.Default()
// when it is absent (the CLI is useful without a config file; the server
// entrypoint is not required to have one).
func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Debug("no config file, using defaults")
		cfg = config.Default()
	}
	if debugFlag {
		cfg.Debug = true
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return cfg
}

func init() {
}
