package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/safar/go-catalog-store/internal/models"
	"github.com/spf13/cobra"
)

const prompt = "catalog> "

func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run catalog commands interactively against one store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.inShell {
				return errors.New("already in a shell")
			}
			a.inShell = true
			defer func() { a.inShell = false }()

			out := cmd.OutOrStdout()
			a.bus.Subscribe(func(event models.Event) error {
				stats, err := a.svc.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "[%s] %s\n", event.Type(), summaryLine(stats))
				return nil
			})

			return runShell(a, cmd.InOrStdin(), out, cmd.ErrOrStderr())
		},
	}
}

func runShell(a *app, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
		case "exit", "quit":
			return nil
		default:
			if err := runLine(a, line, in, out, errOut); err != nil {
				reportError(errOut, err)
			}
		}
		fmt.Fprint(out, prompt)
	}

	fmt.Fprintln(out)
	return scanner.Err()
}

// runLine executes one shell line on a fresh command tree sharing the app.
func runLine(a *app, line string, in io.Reader, out, errOut io.Writer) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}
