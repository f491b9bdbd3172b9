package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Romaneio-api/internal/application/manifest"
	"github.com/jhoicas/Romaneio-api/internal/bootstrap"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

func newManifestCmd(g *globalFlags) *cobra.Command {
	m := &cobra.Command{Use: "manifest", Short: "Ciclo de vida del romaneio"}
	m.AddCommand(
		newManifestCreateCmd(g),
		newManifestListCmd(g),
		newManifestShowCmd(g),
		newManifestCompleteCmd(g),
		newManifestDispatchCmd(g),
		newManifestQRCmd(g),
		newManifestSlipCmd(g),
		newManifestWaybillCmd(g),
	)
	return m
}

func newManifestCreateCmd(g *globalFlags) *cobra.Command {
	var in manifest.CreateInput
	var declared string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un romaneio fiscal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := decimal.NewFromString(declared)
			if err != nil {
				return domain.NewValidationError("declaredQuantity", "número inválido")
			}
			in.DeclaredQuantity = d
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.Manifests.Create(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&in.Site, "site", "", "finca")
	cmd.Flags().StringVar(&in.Number, "number", "", "número de romaneio")
	cmd.Flags().StringSliceVar(&in.Plots, "plots", nil, "parcelas (separadas por coma)")
	cmd.Flags().StringVar(&declared, "declared", "0", "cantidad declarada en kg")
	cmd.Flags().StringVar(&in.Destination, "destination", "", "destino")
	cmd.Flags().StringVar(&in.InspectorName, "inspector", "", "fiscal responsable")
	return cmd
}

func newManifestListCmd(g *globalFlags) *cobra.Command {
	var stage string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar romaneios (fiscal, completed o ambas etapas)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.Manifests.List(ctx, stage)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "", "fiscal | completed")
	return cmd
}

func newManifestShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Mostrar un romaneio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				rec, err := app.Manifests.LookupByID(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			})
		},
	}
}

func newManifestCompleteCmd(g *globalFlags) *cobra.Command {
	var in manifest.CompleteInput
	var payload string
	cmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Completar un romaneio con los datos del transportista",
		Long: `Completa un romaneio fiscal. El romaneio se toma del id local o,
con --payload, del texto leído del código QR del fiscal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				var rec entity.ManifestRecord
				var err error
				switch {
				case payload != "":
					rec, err = app.Manifests.Scan(ctx, payload)
				case len(args) == 1:
					rec, err = app.Manifests.LookupByID(ctx, args[0])
				default:
					err = domain.NewValidationError("id", "id o --payload requerido")
				}
				if err != nil {
					return err
				}
				fiscal, ok := rec.(*entity.Manifest)
				if !ok {
					return domain.NewValidationError("id", "el romaneio ya fue completado")
				}
				out, err := app.Manifests.Complete(ctx, fiscal, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "texto del código QR escaneado")
	cmd.Flags().StringVar(&in.TransporterName, "transporter", "", "nombre del conductor")
	cmd.Flags().StringVar(&in.TransporterDocID, "doc", "", "documento del conductor")
	cmd.Flags().StringVar(&in.VehiclePlate, "plate", "", "placa del vehículo")
	cmd.Flags().StringVar(&in.CarrierName, "carrier", "", "transportadora")
	return cmd
}

func newManifestDispatchCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <id>",
		Short: "Confirmar la salida del vehículo (pending → completed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.Manifests.Dispatch(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}

func newManifestQRCmd(g *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "qr <id>",
		Short: "Emitir el código QR (payload en stdout, PNG con --out)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				code, err := app.Manifests.EmitByID(ctx, args[0])
				if err != nil {
					return err
				}
				if out != "" {
					if err := writeFile(out, code.PNG); err != nil {
						return err
					}
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), code.Payload)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "archivo PNG de salida")
	return cmd
}

func newManifestSlipCmd(g *globalFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "slip <id>",
		Short: "Generar la hoja PDF del romaneio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				pdf, name, err := app.Manifests.Slip(ctx, args[0])
				if err != nil {
					return err
				}
				path := filepath.Join(dir, name)
				if err := writeFile(path, pdf); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directorio de salida")
	return cmd
}

func newManifestWaybillCmd(g *globalFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "waybill <id>",
		Short: "Exportar la guía XML y su huella SHA-384",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				wb, name, err := app.Manifests.Waybill(ctx, args[0])
				if err != nil {
					return err
				}
				path := filepath.Join(dir, name)
				if err := writeFile(path, wb.XML); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", wb.Fingerprint, path)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directorio de salida")
	return cmd
}

func newScanCmd(g *globalFlags) *cobra.Command {
	var image string
	cmd := &cobra.Command{
		Use:   "scan [payload]",
		Short: "Decodificar un código escaneado (texto o --image)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				var rec entity.ManifestRecord
				var err error
				switch {
				case image != "":
					raw, rerr := os.ReadFile(image)
					if rerr != nil {
						return fmt.Errorf("leer imagen: %w", rerr)
					}
					rec, err = app.Manifests.ScanImage(ctx, raw)
				case len(args) == 1:
					rec, err = app.Manifests.Scan(ctx, args[0])
				default:
					err = domain.NewDecodeError("payload vacío", nil)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rec)
			})
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "archivo con la imagen escaneada")
	return cmd
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
