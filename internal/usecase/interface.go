package usecase

import (
	"context"

	"gst-reconciliation/internal/domain"
)

// SourceRepository defines the interface for fetching the two reconciliation
// inputs. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go SourceRepository
type SourceRepository interface {
	// GetAuthorityDocuments returns the flattened authority records for the
	// selected families. An empty family list means all families.
	GetAuthorityDocuments(ctx context.Context, path string, families []domain.Family) ([]domain.AuthorityDocument, error)
	// GetPurchaseBills returns the organization's purchase ledger, unfiltered.
	GetPurchaseBills(ctx context.Context, path string) ([]domain.PurchaseBill, error)
}
