package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/dto"
	"github.com/ledgerlite/ledgerlite/internal/utils/accounting"
)

// journalService manages the general ledger. A transaction is admitted only
// when its posting set satisfies the double-entry law; validation happens
// here, before the store is touched, so a failed admission never leaves a
// partial mutation behind.
type journalService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(txnRepo portsrepo.TransactionRepository) portssvc.JournalSvc {
	return &journalService{txnRepo: txnRepo}
}

var _ portssvc.JournalSvc = (*journalService)(nil)

func (s *journalService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	postings := dto.ToPostings(req.Postings)
	if err := domain.ValidatePostings(postings); err != nil {
		s.LogDebug(ctx, "Rejected unbalanced journal entry", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrImbalanced, err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Description:   req.Description,
		Postings:      postings,
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("date", txn.Date.String()),
		slog.Int("postings", len(txn.Postings)))
	return &txn, nil
}

func (s *journalService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

func (s *journalService) AccountBalance(ctx context.Context, accountName string, from, to domain.Date) (decimal.Decimal, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.AccountBalance(transactions, accountName, from, to), nil
}
