package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/asharish/portfolio-api/internal/config"
	"github.com/asharish/portfolio-api/internal/db"
	"github.com/asharish/portfolio-api/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate reference content (skills always re-synced, others only when empty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			if err := seed.NewLoader(database).Run(context.Background()); err != nil {
				return err
			}

			log.Println("seeding complete")
			return nil
		},
	}
}
