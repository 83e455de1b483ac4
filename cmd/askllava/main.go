// askllava asks a local llava model about an image and saves the answer
// next to it, one sentence per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gastownhall/askllava/internal/description"
	"github.com/gastownhall/askllava/internal/inference"
	"github.com/gastownhall/askllava/internal/style"
	"github.com/gastownhall/askllava/internal/telemetry"
	"github.com/spf13/cobra"
)

// Version metadata injected via ldflags.
var version = "dev"

// Environment variables read at startup.
const (
	envColor     = "ASKLLAVA_COLOR"
	envSentryDSN = "ASKLLAVA_SENTRY_DSN"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// errExit is a sentinel error returned by cobra RunE functions to signal
// non-zero exit. The command has already written its own message.
var errExit = errors.New("exit")

// run executes askllava. args[0] is the program name as invoked.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "askllava"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}

	flush, err := telemetry.Init(os.Getenv(envSentryDSN), version)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", filepath.Base(prog), err) //nolint:errcheck // best-effort stderr
	}
	defer flush()

	root := newRootCmd(prog, stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		var u *usageError
		switch {
		case errors.As(err, &u):
			fmt.Fprintf(stdout, "Usage: %s <image_filename> <instruction>\n", u.prog) //nolint:errcheck // best-effort stdout
		case errors.Is(err, errExit):
		default:
			telemetry.Capture(err)
			printError(stderr, filepath.Base(prog), err)
		}
		return 1
	}
	return 0
}

// newRootCmd creates the single askllava command. Flag parsing is disabled:
// both arguments are positional and an instruction may start with a dash.
func newRootCmd(prog string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "askllava <image_filename> <instruction>",
		Short: "Describe an image in ./images with a local llava model",
		Long: `Send an image from ./images and an instruction to the llava model served by
the local ollama daemon. The answer is split on every '.' and written one
fragment per line to ./images/description_<stem>.txt, and echoed to stdout.

Environment:
  OLLAMA_HOST           ollama address (default http://127.0.0.1:11434)
  ASKLLAVA_COLOR        always, auto or never
  ASKLLAVA_SENTRY_DSN   report failures to Sentry`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &usageError{prog: prog}
			}
			return nil
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return style.SetColorMode(os.Getenv(envColor))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd.Context(), stdout, stderr, args[0], args[1])
		},
	}
	return cmd
}

func runDescribe(ctx context.Context, stdout, stderr io.Writer, fileName, instruction string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	target := description.Resolve(cwd, fileName)
	if !target.Exists() {
		fmt.Fprintf(stdout, "Error: %s not found.\n", target.ImagePath) //nolint:errcheck // best-effort stdout
		return errExit
	}

	client, err := inference.NewClient()
	if err != nil {
		return err
	}

	sp := style.StartSpinner(stderr, "Asking "+inference.DefaultModel+" about "+filepath.Base(fileName)+"...")
	result, err := inference.Run(ctx, client, &inference.Request{
		Model:     inference.DefaultModel,
		Prompt:    instruction,
		ImagePath: target.ImagePath,
	})
	sp.Stop()
	if err != nil {
		return hintInference(err)
	}

	return description.Write(target.OutputPath, description.Split(result.Output), stdout)
}
