package main

import (
	"fmt"
	"os"

	"genpurge/internal/airtable"
	"genpurge/internal/app"
	"genpurge/internal/archive"
	"genpurge/internal/menu"
	"genpurge/internal/purge"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:           "genpurge",
		Short:         "Bulk-delete generated media from the remote base and the local downloads folder",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.GetApp()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			log.Info().Msgf("Connected to base %s, table %s", a.BaseId, a.Table)

			controller := menu.NewController(
				airtable.NewClient(a.Config),
				archive.NewArchiveService(a.DownloadsDir),
				purge.NewFixedDelay(a.MutationDelay),
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)

			return controller.Run(cmd.Context())
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("genpurge terminated")
		os.Exit(1)
	}
}
