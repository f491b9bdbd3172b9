package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Romaneio-api/internal/application/ledger"
	"github.com/jhoicas/Romaneio-api/internal/bootstrap"
)

func newWorkersCmd(g *globalFlags) *cobra.Command {
	var site string
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Listar colaboradores activos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, g, func(_ context.Context, app *bootstrap.App) error {
				return printJSON(cmd.OutOrStdout(), app.Ledger.Workers(site))
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "filtrar por finca")
	return cmd
}

func newEntryCmd(g *globalFlags) *cobra.Command {
	entry := &cobra.Command{Use: "entry", Short: "Apontamentos de producción"}

	var in ledger.RecordEntryInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Registrar cajas de un colaborador",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				e, err := app.Ledger.RecordEntry(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), e)
			})
		},
	}
	add.Flags().StringVar(&in.WorkerID, "worker", "", "ID del colaborador")
	add.Flags().StringVar(&in.Site, "site", "", "finca")
	add.Flags().StringVar(&in.Plot, "plot", "", "parcela")
	add.Flags().StringVar(&in.Date, "date", "", "fecha YYYY-MM-DD")
	add.Flags().IntVar(&in.BoxCount, "boxes", 0, "cantidad de cajas")
	add.Flags().StringVar(&in.CreatedBy, "by", "", "fiscal que registra")

	entry.AddCommand(add)
	return entry
}

func newConsolidateCmd(g *globalFlags) *cobra.Command {
	var site, plot, date string
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Total de cajas por colaborador en una parcela y día",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				return printJSON(cmd.OutOrStdout(), app.Ledger.Consolidate(ctx, site, plot, date))
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "finca")
	cmd.Flags().StringVar(&plot, "plot", "", "parcela")
	cmd.Flags().StringVar(&date, "date", "", "fecha YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("plot")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEstimateCmd(g *globalFlags) *cobra.Command {
	var site, date string
	var plots []string
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimar la cantidad declarada (kg) de un romaneio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				return printJSON(cmd.OutOrStdout(), app.Ledger.EstimateDeclaredWeight(ctx, site, date, plots))
			})
		},
	}
	cmd.Flags().StringVar(&site, "site", "", "finca")
	cmd.Flags().StringVar(&date, "date", "", "fecha YYYY-MM-DD")
	cmd.Flags().StringSliceVar(&plots, "plots", nil, "parcelas (separadas por coma)")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newReportCmd(g *globalFlags) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Reportes de producción"}
	var start, end string
	report.PersistentFlags().StringVar(&start, "start", "", "desde YYYY-MM-DD (inclusivo)")
	report.PersistentFlags().StringVar(&end, "end", "", "hasta YYYY-MM-DD (inclusivo)")

	report.AddCommand(&cobra.Command{
		Use:   "worker <id>",
		Short: "Apontamentos y días trabajados de un colaborador",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				return printJSON(cmd.OutOrStdout(), app.Ledger.ReportByWorker(ctx, args[0], start, end))
			})
		},
	})
	report.AddCommand(&cobra.Command{
		Use:   "site <finca>",
		Short: "Cajas por parcela de una finca",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site := strings.Join(args, " ")
			return withApp(cmd, g, func(ctx context.Context, app *bootstrap.App) error {
				return printJSON(cmd.OutOrStdout(), app.Ledger.ReportBySite(ctx, site, start, end))
			})
		},
	})
	return report
}
