package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/tcal/internal/app"
	"github.com/five82/tcal/internal/config"
	"github.com/five82/tcal/internal/prefs"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "tcal: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := app.Options{}

	cmd := &cobra.Command{
		Use:           "tcal",
		Short:         "Month calendar for the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Show the current month
  tcal

  # Start on a given day
  tcal --date 2024-02-29

  # Keys: ←/→ day, ↑/↓ week, t today, y copy date, T theme, ? help, q quit
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	cmd.Flags().IntVar(&opts.IdleSeconds, "idle", 0, "seconds without input before redrawing, at most 86400 (default from config, 60)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append debug log to this file")
	cmd.Flags().StringVar(&opts.StartDate, "date", "", "initially selected date, YYYY-MM-DD (default today)")

	return cmd
}
