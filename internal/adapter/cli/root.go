package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"contabilidad_orquestador/internal/adapter/export"
	response "contabilidad_orquestador/internal/adapter/http/dto/response"
	"contabilidad_orquestador/internal/usecase"

	"github.com/spf13/cobra"
)

// UseCaseFactory builds the debt use case once a command actually runs, so
// --help never loads config or touches the network.
type UseCaseFactory func(ctx context.Context) (usecase.IDebtUseCase, error)

func NewRootCommand(factory UseCaseFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "contabilidad",
		Short: "Consultas de deuda y morosidad sobre los servicios contables",
		Long: `contabilidad consulta facturas, pagos y clientes en los servicios de origen
y calcula la deuda de un cliente o el reporte de morosidad de toda la cartera.

Usa la misma configuración que el servidor HTTP (variables de entorno,
.env o contabilidad.yml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDebtCommand(factory))
	root.AddCommand(newReportCommand(factory))
	root.AddCommand(newSourcesCommand(factory))
	return root
}

func newDebtCommand(factory UseCaseFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "deuda <ci>",
		Short:   "Deuda consolidada de un cliente",
		Example: "  contabilidad deuda 10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := uc.GetCustomerDebt(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("deuda %s: %w", args[0], err)
			}
			return writeJSON(cmd.OutOrStdout(), response.FromCustomerDebt(summary))
		},
	}
}

func newReportCommand(factory UseCaseFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morosidad",
		Short: "Reporte de morosidad de todos los clientes",
		Example: `  contabilidad morosidad --top 10
  contabilidad morosidad --xlsx reporte.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")

			uc, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			report, err := uc.GetDelinquencyReport(cmd.Context(), top)
			if err != nil {
				return fmt.Errorf("morosidad: %w", err)
			}

			if xlsxPath == "" {
				return writeJSON(cmd.OutOrStdout(), response.FromDelinquencyReport(report))
			}

			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", xlsxPath, err)
			}
			if err := export.WriteDelinquencyReport(f, report); err != nil {
				_ = f.Close()
				return fmt.Errorf("write %s: %w", xlsxPath, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reporte %s escrito en %s\n", report.ID, xlsxPath)
			return nil
		},
	}
	cmd.Flags().Int("top", 0, "Cantidad de morosos en el top (1-50, 0 usa el valor configurado)")
	cmd.Flags().String("xlsx", "", "Escribe el reporte como planilla Excel en la ruta indicada")
	return cmd
}

func newSourcesCommand(factory UseCaseFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "fuentes",
		Short: "Cantidad de registros de cada fuente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			sample := uc.SampleSources(cmd.Context())
			out := cmd.OutOrStdout()
			for i, endpoint := range uc.Endpoints() {
				fmt.Fprintf(out, "endpoint %d: %s\n", i+1, endpoint)
			}
			fmt.Fprintf(out, "facturas: %d\npagos: %d\nclientes: %d\n",
				sample.TotalInvoices, sample.TotalPayments, sample.TotalCustomers)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
