package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/service"
	"github.com/jundev/oneline/internal/widget"
)

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Write today's snapshot as the host app does",
		Long: `Overwrite the shared widget state and ask running widgets to reload.
Omitting --content clears the stored preview.`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}
	cmd.Flags().BoolP("written", "w", false, "An entry exists for today")
	cmd.Flags().IntP("streak", "s", 0, "Current streak in days")
	cmd.Flags().StringP("content", "c", "", "Text of the latest entry")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	written, _ := cmd.Flags().GetBool("written")
	streak, _ := cmd.Flags().GetInt("streak")

	st := widget.State{HasWrittenToday: written, CurrentStreak: streak}
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		st.LastEntryContent = &content
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.bridge.UpdateWidgetData(cmd.Context(), st); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Widget state updated.")
	return nil
}

func reloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Ask running widgets to render again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			if err := refresh.Touch(e.cfg.TriggerPath()); err != nil {
				return fmt.Errorf("reload: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reload requested.")
			return nil
		},
	}
}

type updatedAter interface {
	UpdatedAt(ctx context.Context) (time.Time, bool, error)
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the stored widget state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			st, err := e.store.ReadState(cmd.Context())
			if err != nil {
				return fmt.Errorf("read state: %w", err)
			}
			st = st.Normalized()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-17s %s (%s)\n", "backend:", e.cfg.State.Backend, e.cfg.State.Path)
			fmt.Fprintf(out, "%-17s %t\n", widget.KeyHasWrittenToday+":", st.HasWrittenToday)
			fmt.Fprintf(out, "%-17s %d\n", widget.KeyCurrentStreak+":", st.CurrentStreak)
			if st.LastEntryContent != nil {
				fmt.Fprintf(out, "%-17s %q\n", widget.KeyLastEntryContent+":", *st.LastEntryContent)
			} else {
				fmt.Fprintf(out, "%-17s (none)\n", widget.KeyLastEntryContent+":")
			}
			if u, ok := e.store.(updatedAter); ok {
				if at, ok, err := u.UpdatedAt(cmd.Context()); err == nil && ok {
					fmt.Fprintf(out, "%-17s %s\n", "updatedAt:", at.In(e.loc).Format(time.RFC3339))
				}
			}
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe the widget state back to its defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()

			maint := &service.MaintenanceService{Store: e.store, DB: e.db, Notifier: e.bridge.Notifier}
			if err := maint.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Widget state reset.")
			return nil
		},
	}
}
