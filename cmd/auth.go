package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/epibrowse/epibrowse/auth"
	"github.com/epibrowse/epibrowse/color"
	"github.com/epibrowse/epibrowse/icon"
	"github.com/epibrowse/epibrowse/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the credential sent to the listings API",
	Long: `Manage the optional credential sent in the Authorization header.
The credential is kept in the system keyring, never in the config file.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("token", "t", "", "Token to store, prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API credential in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "API token",
				Help:    `A bare token is sent as "Bearer <token>"`,
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s credential saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API credential from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var confirm bool
		handleErr(survey.AskOne(&survey.Confirm{
			Message: "Remove the stored credential?",
			Default: true,
		}, &confirm))

		if !confirm {
			return
		}

		handleErr(auth.DeleteToken())
		fmt.Printf("%s credential removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
