package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosched",
		Short: "Admin console for the AutoSched presentation-scheduling backend",
	}
	cmd.AddCommand(NewServerCmd())
	cmd.AddCommand(NewUserCmd())
	cmd.AddCommand(NewPingCmd())
	cmd.AddCommand(NewScheduleCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("autosched %s (commit=%s, built=%s)\n", Version, CommitSHA, BuildDate)
		},
	}
}
