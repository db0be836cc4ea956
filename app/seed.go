package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/daemon"
	"github.com/gofolio/gofolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with default site content",
	PreRun: func(_ *cobra.Command, _ []string) {
		_ = godotenv.Load()

		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return daemon.Seed(&cfg)
	},
}
