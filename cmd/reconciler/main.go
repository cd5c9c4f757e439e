package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/config"
	"gst-reconciliation/internal/domain"
	"gst-reconciliation/internal/gateway"
	"gst-reconciliation/internal/usecase"
)

func main() {
	authorityFile := flag.String("authority", "", "Path to the authority payload JSON file (required)")
	ledgerFile := flag.String("ledger", "", "Path to the purchase ledger JSON file (required)")
	month := flag.Int("month", 0, "Target tax period month, 1-12 (required)")
	year := flag.Int("year", 0, "Target tax period year (required)")
	toleranceStr := flag.String("tolerance", "2.00", "Maximum amount difference still treated as a match")
	familiesStr := flag.String("families", "b2b,cdn", "Comma-separated record families to include (b2b, cdn)")
	csvDir := flag.String("csv", "", "Directory to write the CSV export into (optional)")
	xlsxDir := flag.String("xlsx", "", "Directory to write the XLSX export into (optional)")
	flag.Parse()

	log := config.GetLogger()

	if *authorityFile == "" || *ledgerFile == "" || *month == 0 || *year == 0 {
		fmt.Println("Error: flags -authority, -ledger, -month and -year are required.")
		flag.Usage()
		os.Exit(1)
	}

	period, err := domain.NewPeriod(*month, *year)
	if err != nil {
		log.Fatalf("Invalid period: %v", err)
	}

	tolerance, err := decimal.NewFromString(*toleranceStr)
	if err != nil {
		log.Fatalf("Invalid tolerance %q: %v", *toleranceStr, err)
	}

	families, err := domain.ParseFamilies(strings.Split(*familiesStr, ","))
	if err != nil {
		log.Fatalf("Invalid families: %v", err)
	}

	// Wiring: JSON file gateway into the reconciliation usecase.
	repo := gateway.NewJSONSourceRepository()
	reconciliationUseCase := usecase.NewReconciliationUseCase(repo)

	report, err := reconciliationUseCase.Reconcile(context.Background(), *authorityFile, *ledgerFile, usecase.ReconcileParams{
		Period:    period,
		Families:  families,
		Tolerance: tolerance,
	})
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	if *csvDir != "" {
		path, err := gateway.NewCSVReportWriter().WriteFile(*csvDir, period, report)
		if err != nil {
			log.Fatalf("CSV export failed: %v", err)
		}
		log.WithField("path", path).Info("wrote CSV export")
	}
	if *xlsxDir != "" {
		path, err := gateway.NewXLSXReportWriter().WriteFile(*xlsxDir, period, report)
		if err != nil {
			log.Fatalf("XLSX export failed: %v", err)
		}
		log.WithField("path", path).Info("wrote XLSX export")
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}
	fmt.Println(string(output))
}
