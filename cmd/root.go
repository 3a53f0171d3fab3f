package cmd

import (
	"io"
	"os"
	"strings"

	"codebundle/pkg/logging"
	"codebundle/pkg/rsp"
	"codebundle/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what every command needs. Tests build one over an in-memory fs.
type app struct {
	fs     afero.Fs
	root   string // Directory bundles are discovered under.
	stdin  io.Reader
	stdout io.Writer
	logger *zap.Logger
	v      *viper.Viper

	cfgFile string
	debug   bool

	// setupLogger rebuilds the logger once config and flags are known. Nil
	// keeps the logger the app was created with.
	setupLogger func(debug bool, level string) (*zap.Logger, error)
}

func newApp(logger *zap.Logger) *app {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &app{
		fs:     afero.NewOsFs(),
		root:   ".",
		stdin:  os.Stdin,
		stdout: os.Stdout,
		logger: logger,
		v:      viper.New(),
		setupLogger: func(debug bool, level string) (*zap.Logger, error) {
			if err := logging.Setup(debug, level, "codebundle", version.Version); err != nil {
				return nil, err
			}
			return logging.Logger, nil
		},
	}
}

// newRootCmd builds the base command with all subcommands attached.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "codebundle",
		Short: "codebundle is a CLI tool for bundling source files",
		Long: `codebundle concatenates the source files under the current directory into a
single output file, filtered by language and optionally sorted, annotated with
file paths, stripped of empty lines and signed with an author line.

Arguments of the form @file are replaced by the contents of that response file;
"codebundle create-rsp" writes one interactively.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.codebundle.yaml or $HOME/.codebundle.yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable development logging")

	root.AddCommand(newBundleCmd(a))
	root.AddCommand(newCreateRspCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute expands response files in the process arguments and runs the root
// command.
func Execute(logger *zap.Logger) error {
	return execute(newApp(logger), os.Args[1:])
}

func execute(a *app, args []string) error {
	expanded, err := rsp.Expand(a.fs, args, a.logger)
	if err != nil {
		return err
	}
	root := newRootCmd(a)
	root.SetArgs(bareSortArgs(expanded))
	return root.Execute()
}

// bareSortArgs rewrites a valueless --sort or -s on the bundle command to
// --sort= so it selects the default order instead of failing to parse. The
// flag is valueless when it is last or followed by another flag.
func bareSortArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	inBundle := false
	for i, arg := range out {
		switch {
		case arg == "--":
			return out
		case !inBundle:
			inBundle = arg == "bundle"
		case arg == "--sort" || arg == "-s":
			if i+1 == len(out) || strings.HasPrefix(out[i+1], "-") {
				out[i] = "--sort="
			}
		}
	}
	return out
}
