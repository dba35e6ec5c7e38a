// Command pr paginates text files for printing.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dahc/coreutils/internal/cli"
	"github.com/dahc/coreutils/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the pr command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(cli.NormalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return reportError(stderr, err)
}

// reportError prints err unless it is silent and returns the exit code for it.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return cli.ExitSuccess
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Silent {
			_, _ = fmt.Fprintf(w, "pr: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	_, _ = fmt.Fprintf(w, "pr: %v\n", err)
	return cli.ExitFailure
}
