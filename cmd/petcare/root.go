package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pet-care-scheduler/internal/app"
	"pet-care-scheduler/internal/domain/breeds"
	"pet-care-scheduler/internal/platform/config"
	"pet-care-scheduler/internal/platform/logger"
)

// env arma lo que comparten los subcomandos. Se llena en PersistentPreRunE.
type env struct {
	verbose bool

	log     logger.Logger
	catalog *breeds.Catalog
	closeFn func() error
}

// execute corre el CLI y libera el store aunque el comando falle.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	e := &env{}
	defer func() { _ = e.close() }()

	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "petcare",
		Short:         "Pet Care Scheduler - catálogo de razas desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log de debug a stderr")

	root.AddCommand(newBreedsCmd(e))
	return root
}

func (e *env) open(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if e.verbose {
		cfg.Log.Level = "debug"
	}
	// stdout queda para la salida del comando
	e.log = app.NewLogger(cfg, logger.Options{Output: logOut})

	store, closeFn, err := app.OpenUserStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	e.closeFn = closeFn

	cat, err := app.NewCatalog(cfg, store, e.log)
	if err != nil {
		return err
	}
	e.catalog = cat
	return nil
}

func (e *env) close() error {
	if zl, ok := e.log.(*logger.ZapLogger); ok {
		_ = zl.Zap().Sync()
	}
	if e.closeFn == nil {
		return nil
	}
	closeFn := e.closeFn
	e.closeFn = nil
	return closeFn()
}

// loadCatalog deja el catálogo en Ready o devuelve el error de la fuente primaria.
func (e *env) loadCatalog(ctx context.Context) error {
	if _, err := e.catalog.Load(ctx); err != nil {
		return fmt.Errorf("loading breeds: %w", err)
	}
	return nil
}
