// Command romaneio opera el almacén local desde la terminal: apontamentos, romaneios y pesajes.
// Usa la misma configuración que la API (STORE_DRIVER, STORE_PATH, WORKERS_FILE...).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Romaneio-api/internal/bootstrap"
	"github.com/jhoicas/Romaneio-api/pkg/config"
	"github.com/jhoicas/Romaneio-api/pkg/logger"
)

// globalFlags flags persistentes que pisan la configuración de entorno.
type globalFlags struct {
	driver   string
	path     string
	workers  string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "romaneio",
		Short:         "Libro de producción, romaneios y báscula sin conexión",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&g.driver, "driver", "", "backend del almacén: badger, sqlite o postgres (STORE_DRIVER)")
	root.PersistentFlags().StringVar(&g.path, "path", "", "directorio o archivo del almacén (STORE_PATH)")
	root.PersistentFlags().StringVar(&g.workers, "workers", "", "YAML con el catálogo de colaboradores (WORKERS_FILE)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "nivel de log en stderr")

	root.AddCommand(
		newWorkersCmd(g),
		newEntryCmd(g),
		newConsolidateCmd(g),
		newEstimateCmd(g),
		newReportCmd(g),
		newManifestCmd(g),
		newScanCmd(g),
		newWeighCmd(g),
		newReadingsCmd(g),
	)
	return root
}

// withApp abre el almacén, ejecuta fn y lo cierra.
func withApp(cmd *cobra.Command, g *globalFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if g.driver != "" {
		cfg.Store.Driver = g.driver
	}
	if g.path != "" {
		cfg.Store.Path = g.path
	}
	if g.workers != "" {
		cfg.Store.WorkersFile = g.workers
	}

	log := logger.New(logger.Config{
		Env:     "production",
		Level:   g.logLevel,
		Service: "romaneio-cli",
		Out:     cmd.ErrOrStderr(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("cerrar almacén local")
		}
	}()
	return fn(ctx, app)
}

// printJSON escribe v indentado en la salida del comando.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("escribir salida: %w", err)
	}
	return nil
}
