package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jundev/oneline/internal/widget"
)

type paletteJSON struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Tertiary   string `json:"tertiary"`
	Accent     string `json:"accent"`
}

type viewJSON struct {
	Layout         string      `json:"layout"`
	Language       string      `json:"language"`
	Mode           string      `json:"mode"`
	Icon           string      `json:"icon"`
	Message        string      `json:"message"`
	StreakBadge    *string     `json:"streakBadge,omitempty"`
	ContentPreview *string     `json:"contentPreview,omitempty"`
	Palette        paletteJSON `json:"palette"`
}

func toViewJSON(v widget.RenderedView) viewJSON {
	return viewJSON{
		Layout:         string(v.Layout),
		Language:       v.Language.String(),
		Mode:           v.Mode.String(),
		Icon:           v.Icon,
		Message:        v.Message,
		StreakBadge:    v.StreakBadge,
		ContentPreview: v.ContentPreview,
		Palette: paletteJSON{
			Background: v.Palette.Background.String(),
			Primary:    v.Palette.Primary.String(),
			Secondary:  v.Palette.Secondary.String(),
			Tertiary:   v.Palette.Tertiary.String(),
			Accent:     v.Palette.Accent.String(),
		},
	}
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one widget from the stored state",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	cmd.Flags().StringP("layout", "l", string(widget.LayoutMedium), "Widget layout (small, medium)")
	cmd.Flags().String("locale", "", "Locale tag (default from config or environment)")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	layoutFlag, _ := cmd.Flags().GetString("layout")
	locale, _ := cmd.Flags().GetString("locale")
	asJSON, _ := cmd.Flags().GetBool("json")

	layout, err := widget.ParseLayout(layoutFlag)
	if err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	view := e.renderer(locale).Render(cmd.Context(), layout)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toViewJSON(view))
	}

	fmt.Fprintf(out, "%s %s\n", view.Icon, view.Message)
	if view.StreakBadge != nil {
		fmt.Fprintln(out, *view.StreakBadge)
	}
	if view.ContentPreview != nil {
		fmt.Fprintln(out, *view.ContentPreview)
	}
	fmt.Fprintf(out, "mode: %s  background: %s\n", view.Mode, view.Palette.Background)
	return nil
}
