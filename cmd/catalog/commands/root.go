package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/safar/go-catalog-store/internal/catalog"
	"github.com/safar/go-catalog-store/internal/config"
	"github.com/safar/go-catalog-store/internal/database"
	"github.com/safar/go-catalog-store/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the dependencies shared by every subcommand of one run.
type app struct {
	svc *catalog.Service
	bus *catalog.Bus
	cfg *config.Config

	// inShell is set while commands are driven by the interactive shell.
	inShell bool
}

func Execute() error {
	root := newRootCmd(&app{})
	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "In-memory product catalog and order book",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.svc != nil {
				return nil
			}
			return a.open(cmd)
		},
	}

	root.AddCommand(
		dashboardCmd(a),
		usersCmd(a),
		productsCmd(a),
		ordersCmd(a),
		metricsCmd(a),
		shellCmd(a),
	)
	return root
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.bus = catalog.NewBus()
	a.svc, err = catalog.Open(cmd.Context(), cfg.Store, logger, a.bus)
	return err
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch database.ClassifyError(err) {
	case database.ErrorClassValidation:
		return 2
	case database.ErrorClassNotFound:
		return 3
	default:
		return 1
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error (%s): %v\n", database.ClassifyError(err), err)
}
