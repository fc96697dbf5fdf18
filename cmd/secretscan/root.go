package secretscan

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redactyl/secretscan/internal/report"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitOffenders = 1
	ExitError     = 2
)

var version = "0.1.0"

type options struct {
	mode       string
	format     string
	maxBytes   int64
	backend    string
	configPath string
	noColor    bool
	verbose    bool
	logFormat  string
}

// Execute runs the CLI and exits the process. It should be called by the
// main package.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := ExitOK
	root := newRootCmd(stdout, stderr, &code)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		report.PrintError(stderr, err, report.PrintOptions{Color: useColor(false, stderr)})
		return ExitError
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "secretscan",
		Short:         "Block commits that carry secrets",
		Long:          "secretscan checks staged or tracked files for reserved directories, private key extensions and secret-like content.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), opts, stdout, stderr, code)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.StringVar(&opts.mode, "mode", "", "files to check: staged|tracked (default staged)")
	f.StringVar(&opts.format, "format", "", "report format: text|json|sarif (default text)")
	f.Int64Var(&opts.maxBytes, "max-bytes", 0, "bytes of each file to inspect (default 1048576)")
	f.StringVar(&opts.backend, "backend", "", "file listing backend: auto|exec|gogit (default auto)")
	f.StringVar(&opts.configPath, "config", "", "config file (default: .secretscan.yml at the repository root)")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	f.StringVar(&opts.logFormat, "log-format", "text", "log format: text|json")

	root.AddCommand(newDetectorsCmd(stdout), newHookCmd(stdout), newVersionCmd(stdout))
	return root
}
