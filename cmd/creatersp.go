package cmd

import (
	"fmt"

	"codebundle/pkg/rsp"

	"github.com/spf13/cobra"
)

// newCreateRspCmd builds the interactive command that saves a bundle
// invocation to a response file.
func newCreateRspCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Create a response file for the bundle command",
		Long: `Create-rsp asks for each bundle option and writes the resulting command line
to ` + rsp.DefaultFile + ` in the current directory. Run it later with:

  codebundle @` + rsp.DefaultFile,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := rsp.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := rsp.Write(a.fs, rsp.DefaultFile, answers, a.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Response file created: %s\n", rsp.DefaultFile)
			return nil
		},
	}
}
