package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvervaek/energy-app/pkg/export"
	"github.com/lvervaek/energy-app/pkg/services/cost"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

// AnalyzeCmd runs the cost pipeline offline against a local export.
type AnalyzeCmd struct {
	filePath   string
	supplier   string
	product    string
	postalCode string
	dataDir    string
	format     string
	outputPath string
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "energy-app",
		Short: "Analyze smart meter exports into an itemized cost report",
	}
	root.AddCommand(NewAnalyzeCmd())
	return root
}

func NewAnalyzeCmd() *cobra.Command {
	ac := &AnalyzeCmd{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one meter export",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.filePath, "file", "", "Path to the semicolon-delimited meter export")
	cmd.Flags().StringVar(&ac.supplier, "supplier", "", "Supplier name as shown on the bill")
	cmd.Flags().StringVar(&ac.product, "product", "", "Product name as shown on the bill")
	cmd.Flags().StringVar(&ac.postalCode, "postal-code", "", "Postal code of the connection point")
	cmd.Flags().StringVar(&ac.dataDir, "data-dir", "data", "Directory holding the reference workbooks")
	cmd.Flags().StringVar(&ac.format, "format", "json", "Report format: json, pdf or xlsx")
	cmd.Flags().StringVar(&ac.outputPath, "output", "", "Write the report to this path instead of stdout")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("supplier")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("postal-code")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	store, err := refdata.Load(ac.dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	file, err := os.Open(ac.filePath)
	if err != nil {
		return fmt.Errorf("failed to open meter export: %w", err)
	}
	defer file.Close()

	report, err := cost.NewAnalyzer(store).Analyze(ctx, file, cost.AnalyzeRequest{
		Supplier:   ac.supplier,
		Product:    ac.product,
		PostalCode: ac.postalCode,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ac.outputPath != "" {
		f, err := os.Create(ac.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return export.NewReporter(out, export.Format(ac.format)).Handle(report)
}
