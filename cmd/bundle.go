package cmd

import (
	"fmt"
	"strings"

	"codebundle/pkg/bundle"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errColor = color.New(color.FgRed)

// newBundleCmd builds the bundle command. Every failure of a run is reported
// as one printed line and the command still succeeds; only argument errors
// make it fail.
func newBundleCmd(a *app) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle code files into a single file",
		Long: `Bundle concatenates the files under the current directory that match the
requested language into one output file. Paths containing bin, debug, obj or
.git are skipped.`,
		Example: `  codebundle bundle -l python
  codebundle bundle -l all -o bundle.txt --note --sort TP -r -a "Jane Doe"
  codebundle @command.rsp`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindBundleFlags(a, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := bundle.Request{
				Output:           a.v.GetString(keyOutput),
				Language:         language,
				Note:             a.v.GetBool(keyNote),
				Sort:             a.v.GetString(keySort),
				RemoveEmptyLines: a.v.GetBool(keyRemoveEmptyLines),
				Author:           a.v.GetString(keyAuthor),
			}

			out := cmd.OutOrStdout()
			b := bundle.New(a.fs, a.root, a.logger, bundle.WithOutput(out))
			res, err := b.Run(req)
			if err != nil {
				errColor.Fprintln(out, bundle.Describe(err))
				return nil
			}

			fmt.Fprintln(out, res.String())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", bundle.DefaultOutput, "File path and name of the bundle")
	flags.StringVarP(&language, "language", "l", "", fmt.Sprintf("Language to bundle: %s, or 'all'", strings.Join(bundle.DefaultLanguages.Names(), ", ")))
	flags.BoolP("note", "n", false, "Write each file's path before its content")
	flags.StringP("sort", "s", bundle.SortTokenNone, "Sort by: AB - file name, TP - file type, NO - discovery order; --sort without a value sorts by name")
	flags.BoolP("remove-empty-lines", "r", false, "Remove empty lines")
	flags.StringP("author", "a", "", "Author written as the first line of the bundle")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

// bindBundleFlags ties the bundle flags to their config keys.
func bindBundleFlags(a *app, cmd *cobra.Command) error {
	bindings := map[string]string{
		keyOutput:           "output",
		keyNote:             "note",
		keySort:             "sort",
		keyRemoveEmptyLines: "remove-empty-lines",
		keyAuthor:           "author",
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}
