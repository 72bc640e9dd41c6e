package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/dto"
)

// registerService manages register entries and the Draft -> Pending ->
// Posted approval workflow. Posted is terminal: the store rejects any
// mutation of a posted entry, and approval of an already-posted entry is an
// error rather than a duplicate posting.
type registerService struct {
	BaseService
	registerRepo portsrepo.RegisterRepository
}

// NewRegisterService creates a new register service.
func NewRegisterService(registerRepo portsrepo.RegisterRepository) portssvc.RegisterSvc {
	return &registerService{registerRepo: registerRepo}
}

var _ portssvc.RegisterSvc = (*registerService)(nil)

func (s *registerService) CreateEntry(ctx context.Context, req dto.SaveRegisterEntryRequest) (*domain.RegisterEntry, error) {
	entry, err := s.entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = uuid.NewString()

	if err := s.registerRepo.SaveRegisterEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to create register entry", slog.String("type", string(req.Type)))
		return nil, err
	}
	s.LogInfo(ctx, "Register entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)),
		slog.String("status", string(entry.Status)))
	return entry, nil
}

func (s *registerService) UpdateEntry(ctx context.Context, entryID string, req dto.SaveRegisterEntryRequest) (*domain.RegisterEntry, error) {
	entry, err := s.entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.EntryID = entryID

	if err := s.registerRepo.UpdateRegisterEntry(ctx, entryID, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update register entry", slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Register entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *registerService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.registerRepo.DeleteRegisterEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete register entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Register entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *registerService) ListEntries(ctx context.Context, typeFilter *domain.RegisterType) ([]domain.RegisterEntry, error) {
	return s.registerRepo.ListRegisterEntries(ctx, typeFilter)
}

// SubmitForApproval moves a Draft entry to Pending. The transition requires
// a balanced posting set with at least two valid lines; on violation the
// entry stays Draft.
func (s *registerService) SubmitForApproval(ctx context.Context, entryID string) error {
	entry, err := s.registerRepo.FindRegisterEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	switch entry.Status {
	case domain.StatusPosted:
		return fmt.Errorf("%w: entry %s", apperrors.ErrLockedEntry, entryID)
	case domain.StatusPending:
		return fmt.Errorf("%w: entry %s is already pending approval", apperrors.ErrValidation, entryID)
	}
	if err := domain.ValidatePostings(entry.Postings); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	entry.Status = domain.StatusPending
	if err := s.registerRepo.UpdateRegisterEntry(ctx, entryID, *entry); err != nil {
		return err
	}
	s.LogInfo(ctx, "Register entry submitted for approval", slog.String("entry_id", entryID))
	return nil
}

// ApproveEntry posts a register entry: the entry becomes Posted and exactly
// one transaction with the entry's postings lands on the ledger, as a
// single commit.
func (s *registerService) ApproveEntry(ctx context.Context, entryID string) (*domain.Transaction, error) {
	entry, err := s.registerRepo.FindRegisterEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.StatusPosted {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	}
	if err := domain.ValidatePostings(entry.Postings); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrImbalanced, err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          entry.Date,
		Description:   entry.LedgerDescription(),
		Postings:      domain.ClonePostings(entry.Postings),
	}
	if err := s.registerRepo.MarkPosted(ctx, entryID, txn); err != nil {
		s.LogError(ctx, err, "Failed to approve register entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Register entry approved",
		slog.String("entry_id", entryID),
		slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// ApproveEntries approves sequentially, best effort: a failure partway
// leaves earlier approvals committed.
func (s *registerService) ApproveEntries(ctx context.Context, entryIDs []string) dto.BatchResult {
	result := dto.BatchResult{}
	for _, id := range entryIDs {
		if _, err := s.ApproveEntry(ctx, id); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[id] = err.Error()
			continue
		}
		result.Applied = append(result.Applied, id)
	}
	return result
}

// DeleteEntries deletes sequentially with the same best-effort semantics.
func (s *registerService) DeleteEntries(ctx context.Context, entryIDs []string) dto.BatchResult {
	result := dto.BatchResult{}
	for _, id := range entryIDs {
		if err := s.DeleteEntry(ctx, id); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[id] = err.Error()
			continue
		}
		result.Applied = append(result.Applied, id)
	}
	return result
}

// entryFromRequest validates the request and builds the domain entry.
// Pending entries must balance on arrival; Draft entries only need a valid
// shape, matching the workflow that validates balance at submit time.
func (s *registerService) entryFromRequest(req dto.SaveRegisterEntryRequest) (*domain.RegisterEntry, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown register type %q", apperrors.ErrValidation, req.Type)
	}

	postings := dto.ToPostings(req.Postings)
	if req.Status == domain.StatusPending {
		if err := domain.ValidatePostings(postings); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	} else {
		for i, p := range postings {
			if p.Amount.IsNegative() {
				return nil, fmt.Errorf("%w: posting line %d has negative amount", apperrors.ErrValidation, i)
			}
		}
	}

	return &domain.RegisterEntry{
		Date:          req.Date,
		Type:          req.Type,
		Description:   req.Description,
		Entity:        req.Entity,
		Reference:     req.Reference,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Postings:      postings,
	}, nil
}
