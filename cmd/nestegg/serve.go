package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/nestegg/wealth-projector/internal/api"
	"github.com/nestegg/wealth-projector/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadServerSettings()
		if err != nil {
			return err
		}
		router := api.NewRouter(settings)
		log.Printf("listening on %s", settings.Addr)
		return router.Run(settings.Addr)
	},
}
