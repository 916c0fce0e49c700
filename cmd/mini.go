package cmd

import (
	"github.com/epibrowse/epibrowse/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
	addStartFlags(miniCmd)
}

// miniCmd launches the prompt based interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse episodes through a sequence of prompts",
	Long:  `Browse episodes without the full screen interface, one prompt at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{StartOptions: startOptions(cmd)}
		handleErr(mini.Run(commandContext(cmd), &options))
	},
}
