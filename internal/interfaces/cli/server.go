package cli

import (
	"context"
	"time"

	"github.com/ishehara/autosched-admin/internal/app"
	"github.com/ishehara/autosched-admin/internal/application/usecases"
	"github.com/ishehara/autosched-admin/internal/infrastructure/autosched"
	"github.com/ishehara/autosched-admin/internal/infrastructure/config"
	"github.com/ishehara/autosched-admin/internal/infrastructure/postgres"
	"github.com/ishehara/autosched-admin/internal/interfaces/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the admin web console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			log := app.NewLogger(cfg.Environment)
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()

			pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}

			auth := usecases.AuthService{Users: postgres.NewUserRepo(pool)}
			api := autosched.New(cfg.APIBaseURL)
			sessions := web.NewSessionManager(cfg.SessionHashKey, cfg.SessionBlockKey)
			tmpl, err := web.ParseTemplates()
			if err != nil {
				return err
			}

			log.Info("starting admin console",
				zap.String("addr", cfg.HTTPAddr),
				zap.String("backend", cfg.APIBaseURL),
			)
			srv := web.New(cfg.HTTPAddr, sessions, auth, api, tmpl, log)
			return srv.ListenAndServe()
		},
	}
}
