package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("oneline: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "oneline",
		Short:         "oneline - home screen widget for the one line journal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("ONELINE_CONFIG", configPath)
			}
			return nil
		},
		RunE: runPreview,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/oneline/config.toml)")

	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(reloadCmd())
	rootCmd.AddCommand(stateCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(bridgeCmd())
	rootCmd.AddCommand(watchCmd())

	return rootCmd
}
