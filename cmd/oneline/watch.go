package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/service"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a line for every widget on each refresh",
		Long: `Headless front end. Renders once at start, then again at every local
midnight and on every reload trigger, printing one line per widget.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
	cmd.Flags().String("locale", "", "Locale tag (default from config or environment)")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	locale, _ := cmd.Flags().GetString("locale")

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := e.renderer(locale)
	out := cmd.OutOrStdout()
	lines := make(chan refresh.Reason, 1)
	lines <- refresh.ReasonExplicit

	stop, err := startRefresh(ctx, e, func(reason refresh.Reason) {
		select {
		case lines <- reason:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case reason := <-lines:
			printViews(ctx, out, e, r, reason)
		}
	}
}

func printViews(ctx context.Context, w io.Writer, e *env, r *service.Renderer, reason refresh.Reason) {
	stamp := e.now().Format("2006-01-02 15:04:05")
	for _, iv := range r.RenderAll(ctx) {
		parts := []string{iv.View.Icon, iv.View.Message}
		if iv.View.StreakBadge != nil {
			parts = append(parts, *iv.View.StreakBadge)
		}
		if iv.View.ContentPreview != nil {
			parts = append(parts, *iv.View.ContentPreview)
		}
		fmt.Fprintf(w, "%s %-9s %-6s %s\n", stamp, reason, iv.Instance.Layout, strings.Join(parts, "  "))
	}
}
