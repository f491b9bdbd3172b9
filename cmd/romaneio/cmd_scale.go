package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Romaneio-api/internal/application/reconciliation"
	"github.com/jhoicas/Romaneio-api/internal/bootstrap"
	"github.com/jhoicas/Romaneio-api/internal/domain"
	"github.com/jhoicas/Romaneio-api/internal/domain/entity"
)

func newWeighCmd(g *globalFlags) *cobra.Command {
	var gross, tare, declared, operator, payload string
	cmd := &cobra.Command{
		Use:   "weigh [manifestId]",
		Short: "Confirmar el pesaje de un romaneio completo",
		Long: `Registra bruto y tara, calcula el neto y la divergencia contra lo declarado
y marca el romaneio como entregado. Con --payload se usa el QR escaneado.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := reconciliation.WeighingInput{OperatorName: operator}
			if len(args) == 1 {
				in.ManifestID = args[0]
			}
			var err error
			if in.GrossWeight, err = decimal.NewFromString(gross); err != nil {
				return domain.NewValidationError("grossWeight", "número inválido")
			}
			if in.TareWeight, err = decimal.NewFromString(tare); err != nil {
				return domain.NewValidationError("tareWeight", "número inválido")
			}
			if declared != "" {
				if in.DeclaredQuantity, err = decimal.NewFromString(declared); err != nil {
					return domain.NewValidationError("declaredQuantity", "número inválido")
				}
			}
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				if payload != "" {
					rec, err := app.Manifests.Scan(ctx, payload)
					if err != nil {
						return err
					}
					cm, ok := rec.(*entity.CompletedManifest)
					if !ok {
						return domain.NewValidationError("payload", "la báscula solo acepta romaneios completos")
					}
					in.Manifest = cm
				}
				out, err := app.Scale.ConfirmWeighing(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&gross, "gross", "", "peso bruto en kg")
	cmd.Flags().StringVar(&tare, "tare", "", "tara en kg")
	cmd.Flags().StringVar(&declared, "declared", "", "cantidad declarada en kg (reemplaza la guardada)")
	cmd.Flags().StringVar(&operator, "operator", "", "operador de la báscula")
	cmd.Flags().StringVar(&payload, "payload", "", "texto del código QR escaneado")
	_ = cmd.MarkFlagRequired("gross")
	_ = cmd.MarkFlagRequired("tare")
	return cmd
}

func newReadingsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "readings [manifestId]",
		Short: "Listar pesajes o mostrar el de un romaneio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				if len(args) == 1 {
					r, err := app.Scale.GetReading(ctx, args[0])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), r)
				}
				items := app.Scale.ListReadings(ctx)
				if items == nil {
					items = []entity.ScaleReading{}
				}
				return printJSON(cmd.OutOrStdout(), items)
			})
		},
	}
}
