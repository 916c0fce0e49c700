package cmd

import (
	"fmt"
	"os"

	"github.com/epibrowse/epibrowse/color"
	"github.com/epibrowse/epibrowse/history"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("remove", "d", 0, "Forget the show with this id")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists recently viewed shows, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently viewed shows",
	Run: func(cmd *cobra.Command, args []string) {
		if id := lo.Must(cmd.Flags().GetInt("remove")); id != 0 {
			handleErr(history.Remove(id))
			cmd.Printf("%s removed show %d from history\n", style.Fg(color.Green)(icon.Get(icon.Success)), id)
			return
		}

		entries, err := history.Recent()
		handleErr(err)

		if len(entries) == 0 {
			cmd.Println(style.Faint("No shows viewed yet"))
			return
		}

		for _, entry := range entries {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Yellow)(fmt.Sprintf("%6d", entry.ShowID)),
				style.Bold(entry.String()),
				style.Faint(entry.Description()),
			)
		}
	},
}
