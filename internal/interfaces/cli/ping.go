package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishehara/autosched-admin/internal/infrastructure/autosched"
	"github.com/ishehara/autosched-admin/internal/infrastructure/config"
)

func NewPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the AutoSched backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := config.APIBaseURL()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := autosched.New(baseURL).Ping(ctx); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", baseURL)
			return nil
		},
	}
}
