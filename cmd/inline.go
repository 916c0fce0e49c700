package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/inline"
	"github.com/epibrowse/epibrowse/log"
	"github.com/epibrowse/epibrowse/query"
	"github.com/epibrowse/epibrowse/tvmaze"
	"github.com/epibrowse/epibrowse/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)
	addStartFlags(inlineCmd)

	inlineCmd.Flags().StringP("search", "q", "", "Only print episodes whose name or summary contains this term")
	inlineCmd.Flags().StringP("episode", "e", "", "Print a single episode, see the selectors below")
	inlineCmd.MarkFlagsMutuallyExclusive("search", "episode")

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("search", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("episode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "first", "last"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd prints episode cards without any interaction.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print episode cards without any interaction",
	Long: `Load a show and print its episode cards, for use from scripts.

Episode selectors:
  all - all episodes of the show
  first - first episode in the list
  last - last episode in the list
  [number] - select episode by index (starting from 0)`,
	Example: "  epibrowse inline --show 82 --search winter --json",
	Run: func(cmd *cobra.Command, args []string) {
		writer, closer := inlineWriter(cmd)
		defer util.Ignore(closer)

		options := &inline.Options{
			StartOptions: startOptions(cmd),
			Out:          writer,
			Search:       lo.Must(cmd.Flags().GetString("search")),
			Episode:      lo.Must(cmd.Flags().GetString("episode")),
			Json:         lo.Must(cmd.Flags().GetBool("json")),
		}

		if writer == os.Stdout {
			if width, _, err := util.TerminalSize(); err == nil {
				options.Width = width
			}
		}

		rememberSearch(options.Search)

		handleErr(inline.Run(commandContext(cmd), tvmaze.FromConfig(), options))
	},
}

// rememberSearch records term for suggestions, failures are only logged.
func rememberSearch(term string) {
	if term == "" {
		return
	}

	if err := query.Remember(term, 1); err != nil {
		log.Warnf("failed to remember query: %v", err)
	}
}

func inlineWriter(cmd *cobra.Command) (io.Writer, func() error) {
	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return os.Stdout, func() error { return nil }
	}

	file, err := filesystem.API().Create(output)
	handleErr(err)
	return file, file.Close
}

func init() {
	inlineCmd.AddCommand(inlineShowsCmd)
}

// inlineShowsCmd lists the shows offered by the listings API.
var inlineShowsCmd = &cobra.Command{
	Use:   "shows",
	Short: "List the available shows with their ids",
	Run: func(cmd *cobra.Command, args []string) {
		writer, closer := inlineWriter(cmd)
		defer util.Ignore(closer)

		options := &inline.Options{
			Out:  writer,
			Json: lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Shows(commandContext(cmd), tvmaze.FromConfig(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "show", "card", "image", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
