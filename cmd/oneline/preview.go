package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/tui"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the widget board in the terminal",
		Long: `Show every placed widget as a card. Cards re-render at local midnight
and whenever the host app writes new state or asks for a reload.`,
		Args: cobra.NoArgs,
		RunE: runPreview,
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := tui.New(ctx, e.renderer(""), tui.Options{OpenCommand: e.cfg.App.OpenCommand, Now: e.now})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	stop, err := startRefresh(ctx, e, func(r refresh.Reason) {
		p.Send(tui.RerenderMsg{Reason: r})
	})
	if err != nil {
		return err
	}
	defer stop()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// startRefresh runs the midnight scheduler and the file watcher that turns
// writes by other processes into explicit triggers.
func startRefresh(ctx context.Context, e *env, render func(refresh.Reason)) (func(), error) {
	sched := refresh.NewScheduler(render, refresh.WithLocation(e.loc))
	// In-process writes trigger directly.
	e.bridge.Notifier = sched

	w, err := refresh.Watch(e.watchPaths(), func(string) { sched.Trigger() })
	if err != nil {
		return nil, fmt.Errorf("watch state: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{}, 2)
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("warn: scheduler: %v", err)
		}
		done <- struct{}{}
	}()
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("warn: watcher: %v", err)
		}
		done <- struct{}{}
	}()

	return func() {
		cancel()
		_ = w.Close()
		<-done
		<-done
	}, nil
}
