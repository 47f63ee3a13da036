package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/scheduler"
)

func newWatchCmd(a *app) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the wallpaper periodically until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched := scheduler.New(every, func() error {
				return renderVariant(a, "wallpaper")
			}, a.log)

			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()
			a.log.Info("watching", zap.Duration("every", every))

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			a.log.Info("shutting down")
			return nil
		},
	}

	cmd.Flags().DurationVar(&every, "every", 24*time.Hour, "render interval")
	return cmd
}
