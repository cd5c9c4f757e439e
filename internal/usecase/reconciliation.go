package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"gst-reconciliation/internal/domain"
)

// ReconciliationUseCase orchestrates one reconciliation run.
type ReconciliationUseCase struct {
	repo SourceRepository
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo SourceRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

// ReconcileParams are the caller-supplied knobs of a run.
type ReconcileParams struct {
	Period    domain.Period
	Families  []domain.Family // empty means both B2B and CDN
	Tolerance decimal.Decimal
}

// Reconcile fetches both sides, filters the ledger to the target period,
// matches, and builds the report. The two fetches are independent and run
// concurrently; matching starts only after both have completed.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, authorityPath, ledgerPath string, params ReconcileParams) (*domain.ReconciliationReport, error) {
	var (
		docs     []domain.AuthorityDocument
		bills    []domain.PurchaseBill
		docsErr  error
		billsErr error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		docs, docsErr = uc.repo.GetAuthorityDocuments(ctx, authorityPath, params.Families)
	}()
	go func() {
		defer wg.Done()
		bills, billsErr = uc.repo.GetPurchaseBills(ctx, ledgerPath)
	}()
	wg.Wait()

	if docsErr != nil {
		return nil, fmt.Errorf("could not get authority documents: %w", docsErr)
	}
	if billsErr != nil {
		return nil, fmt.Errorf("could not get purchase bills: %w", billsErr)
	}

	return BuildReport(docs, bills, params), nil
}

// BuildReport runs the in-memory pipeline over already-fetched inputs: period
// filter, matching, summary counts. It is a pure function of its arguments;
// empty inputs yield an empty result list, not an error.
func BuildReport(docs []domain.AuthorityDocument, bills []domain.PurchaseBill, params ReconcileParams) *domain.ReconciliationReport {
	filtered := FilterBillsByPeriod(bills, params.Period)
	results := Match(docs, filtered, params.Tolerance)

	report := &domain.ReconciliationReport{
		ReconciliationSummary: domain.Summary{
			Period:                  params.Period.String(),
			TotalAuthorityDocuments: len(docs),
			TotalLedgerBills:        len(filtered),
		},
		Results: results,
	}
	for _, r := range results {
		switch r.Status {
		case domain.StatusMatched:
			report.ReconciliationSummary.Matched++
		case domain.StatusMismatched:
			report.ReconciliationSummary.Mismatched++
		case domain.StatusMissingInLedger:
			report.ReconciliationSummary.MissingInLedger++
		case domain.StatusMissingInAuthority:
			report.ReconciliationSummary.MissingInAuthority++
		}
	}
	return report
}
