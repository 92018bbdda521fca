package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishehara/autosched-admin/internal/application/usecases"
	"github.com/ishehara/autosched-admin/internal/infrastructure/autosched"
	"github.com/ishehara/autosched-admin/internal/infrastructure/config"
)

func NewScheduleCmd() *cobra.Command {
	var fromStr, toStr string
	c := &cobra.Command{
		Use:   "schedule",
		Short: "Trigger a backend scheduling run over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fmt.Errorf("--from must be YYYY-MM-DD")
			}
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fmt.Errorf("--to must be YYYY-MM-DD")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			api := autosched.New(config.APIBaseURL())
			res, err := usecases.TriggerSchedule{API: api}.Execute(ctx, from, to)
			if err != nil {
				return err
			}
			if res.Reported {
				fmt.Printf("scheduled %d presentations\n", res.Count)
			} else {
				fmt.Println("scheduling completed; backend did not report a count")
			}
			return nil
		},
	}
	c.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD)")
	c.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD)")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
