package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/asharish/portfolio-api/internal/api"
	"github.com/asharish/portfolio-api/internal/auth"
	"github.com/asharish/portfolio-api/internal/build"
	"github.com/asharish/portfolio-api/internal/config"
	"github.com/asharish/portfolio-api/internal/db"
	"github.com/asharish/portfolio-api/internal/notify"
	"github.com/asharish/portfolio-api/internal/seed"
	"github.com/asharish/portfolio-api/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
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

			// Migration failures must not keep the site down; the migrate
			// subcommand exists to surface them.
			db.MigrateAtStartup(database, cfg.DB.Driver)

			if cfg.SeedOnStart {
				if err := seed.NewLoader(database).Run(context.Background()); err != nil {
					log.Printf("seed failed (continuing startup): %v", err)
				}
			}

			sessions := auth.NewSessions(cfg.Session.Secret, cfg.Session.Lifetime)
			gate := auth.NewGate(cfg.Admin.Password, sessions, cfg.Admin.AllowedEmails)
			google := auth.NewGoogleVerifier(cfg.Google.ClientID, cfg.Auth.InsecureDevFallback)

			mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.To)
			notifyCh := make(chan notify.ContactMessage, 64)
			go notify.Run(context.Background(), notifyCh, mailer)

			router := api.NewRouter(api.Deps{
				DB:            database,
				Records:       store.NewRecordStore(database),
				Messages:      store.NewMessageStore(database),
				Settings:      store.NewSettingsStore(database),
				Stats:         store.NewStatsStore(database, cfg.Stats.CGPAFallback),
				Gate:          gate,
				Google:        google,
				Notifications: notifyCh,
				UploadDir:     cfg.Upload.Dir,
			})

			log.Printf("portfolio-api %s listening on %s", build.Version, cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
