package commands

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"frost-depth/internal/config"
	"frost-depth/internal/frost"
)

var (
	cfg      *config.Config
	logger   *slog.Logger
	frostSvc frost.Service
)

func Execute() error {
	root := &cobra.Command{
		Use:          "frostdepth",
		Short:        "Modified Berggren frost penetration depth calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}

			logger = cfg.NewLogger()
			slog.SetDefault(logger)

			frostSvc = frost.NewFrostService(cfg, logger)
			return nil
		},
	}

	root.AddCommand(computeCmd())
	return root.Execute()
}
