// Package cmd implements the command-line interface for epibrowse.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/color"
	"github.com/epibrowse/epibrowse/constant"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/key"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/style"
	"github.com/epibrowse/epibrowse/tui"
	"github.com/epibrowse/epibrowse/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember viewed shows in the history file")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().BoolP("reverse", "r", false, "List episodes from newest to oldest")
	lo.Must0(viper.BindPFlag(key.BrowseReverse, rootCmd.PersistentFlags().Lookup("reverse")))

	addStartFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(commandContext(cmd))
	})
}

// rootCmd defines the entry point for the epibrowse application.
var rootCmd = &cobra.Command{
	Use:   constant.Epibrowse,
	Short: "A terminal browser for TV show episodes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal browser for TV show episodes"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{StartOptions: startOptions(cmd)}
		handleErr(tui.Run(commandContext(cmd), &options))
	},
}

// addStartFlags registers the flags that choose the first show to open.
func addStartFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("continue", "c", false, "Open the most recently viewed show")
	cmd.Flags().StringP("show", "s", "", "Show to open, by id or name")
	cmd.MarkFlagsMutuallyExclusive("continue", "show")
}

func startOptions(cmd *cobra.Command) browse.StartOptions {
	return browse.StartOptions{
		Continue: lo.Must(cmd.Flags().GetBool("continue")),
		Show:     lo.Must(cmd.Flags().GetString("show")),
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// commandContext returns the command's context, help and version can run without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
